package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueKind discriminates the concrete forms a parameter value can take.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
)

// Value is a concrete parameter value: an integer, a floating-point number,
// or an enumeration label. Values are small and passed by value everywhere.
type Value struct {
	Kind ValueKind
	Int  int64
	Flt  float64
	Str  string
}

func IntValue(v int64) Value     { return Value{Kind: ValueInt, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: ValueFloat, Flt: v} }
func StringValue(v string) Value { return Value{Kind: ValueString, Str: v} }

// Num returns the numeric form of the value. Enumeration labels that do not
// parse as numbers report ok=false.
func (v Value) Num() (float64, bool) {
	switch v.Kind {
	case ValueInt:
		return float64(v.Int), true
	case ValueFloat:
		return v.Flt, true
	default:
		f, err := strconv.ParseFloat(v.Str, 64)
		return f, err == nil
	}
}

// String renders the value the way it appears in class names and diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Flt, 'g', -1, 64)
	default:
		return v.Str
	}
}

// JavaLiteral renders the value as a Java source literal. Whole floats render
// without a fractional part; Java widening makes them valid at any numeric
// call site.
func (v Value) JavaLiteral() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		if v.Flt == math.Trunc(v.Flt) && !math.IsInf(v.Flt, 0) {
			return strconv.FormatInt(int64(v.Flt), 10)
		}
		return strconv.FormatFloat(v.Flt, 'g', -1, 64)
	default:
		return strconv.Quote(v.Str)
	}
}

// Equal reports whether two values are the same concrete value. Int and float
// values compare numerically, so IntValue(1) equals FloatValue(1).
func (v Value) Equal(o Value) bool {
	if v.Kind == ValueString || o.Kind == ValueString {
		return v.Kind == o.Kind && v.Str == o.Str
	}
	a, _ := v.Num()
	b, _ := o.Num()
	return a == b
}

// MarshalJSON emits the bare scalar so generation results read naturally.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueInt:
		return json.Marshal(v.Int)
	case ValueFloat:
		return json.Marshal(v.Flt)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON accepts scalar ints, floats and strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.fromInterface(raw)
}

// UnmarshalYAML accepts scalar ints, floats and strings from request
// documents. yaml.v3 is a JSON superset, so the same path decodes JSON.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return v.fromInterface(raw)
}

func (v *Value) fromInterface(raw interface{}) error {
	switch t := raw.(type) {
	case int:
		*v = IntValue(int64(t))
	case int64:
		*v = IntValue(t)
	case uint64:
		*v = IntValue(int64(t))
	case float64:
		// json decodes every number as float64; keep whole numbers integral.
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			*v = IntValue(int64(t))
		} else {
			*v = FloatValue(t)
		}
	case string:
		*v = StringValue(t)
	default:
		return fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
	return nil
}
