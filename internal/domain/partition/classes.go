// Package partition derives equivalence classes and boundary values from a
// parameter's declared domain. Caller-supplied overrides always win over
// derivation.
package partition

import (
	"math"

	"github.com/specforge/specforge/internal/domain"
)

// Classes returns the ordered equivalence classes for a parameter. If the
// caller supplied classes they are used verbatim, validated only for
// duplicate names.
func Classes(p domain.ParameterSpec) ([]domain.EquivalenceClass, error) {
	if p.Classes != nil {
		seen := make(map[string]bool, len(p.Classes))
		for _, ec := range p.Classes {
			if seen[ec.Name] {
				return nil, &domain.ValidationError{Param: p.Name, Reason: "duplicate equivalence class " + ec.Name}
			}
			seen[ec.Name] = true
		}
		return p.Classes, nil
	}

	switch d := p.Domain.(type) {
	case domain.IntegralDomain:
		return integralClasses(p.Name, d)
	case domain.FloatingDomain:
		return floatingClasses(p.Name, d)
	case domain.EnumerationDomain:
		return enumerationClasses(p.Name, d)
	default:
		return nil, &domain.ValidationError{Param: p.Name, Reason: "domain is required"}
	}
}

// integralClasses partitions an integer range into negative / zero / positive.
// A class whose natural representative falls outside [Min, Max] is skipped
// entirely, never substituted.
func integralClasses(name string, d domain.IntegralDomain) ([]domain.EquivalenceClass, error) {
	if d.Min > d.Max {
		return nil, &domain.ValidationError{Param: name, Reason: "range min exceeds max"}
	}

	var ecs []domain.EquivalenceClass
	if d.Min < 0 {
		hi := int64(-1)
		if d.Max < hi {
			hi = d.Max
		}
		ecs = append(ecs, domain.EquivalenceClass{
			Name:  "negative",
			Range: &domain.ValueRange{Lo: domain.IntValue(d.Min), Hi: domain.IntValue(hi)},
		})
	}
	if d.Min <= 0 && 0 <= d.Max {
		ecs = append(ecs, domain.EquivalenceClass{
			Name:   "zero",
			Values: []domain.Value{domain.IntValue(0)},
		})
	}
	if d.Max > 0 {
		lo := int64(1)
		if d.Min > lo {
			lo = d.Min
		}
		ecs = append(ecs, domain.EquivalenceClass{
			Name:  "positive",
			Range: &domain.ValueRange{Lo: domain.IntValue(lo), Hi: domain.IntValue(d.Max)},
		})
	}
	return ecs, nil
}

// floatingClasses partitions a float range into negative / zero / positive,
// with Nextafter standing in for the integral unit step. The same skip rule
// as integralClasses applies.
func floatingClasses(name string, d domain.FloatingDomain) ([]domain.EquivalenceClass, error) {
	if d.Min > d.Max {
		return nil, &domain.ValidationError{Param: name, Reason: "range min exceeds max"}
	}

	var ecs []domain.EquivalenceClass
	if d.Min < 0 {
		hi := math.Nextafter(0, math.Inf(-1))
		if d.Max < hi {
			hi = d.Max
		}
		ecs = append(ecs, domain.EquivalenceClass{
			Name:  "negative",
			Range: &domain.ValueRange{Lo: domain.FloatValue(d.Min), Hi: domain.FloatValue(hi)},
		})
	}
	if d.Min <= 0 && 0 <= d.Max {
		ecs = append(ecs, domain.EquivalenceClass{
			Name:   "zero",
			Values: []domain.Value{domain.FloatValue(0)},
		})
	}
	if d.Max > 0 {
		lo := math.Nextafter(0, math.Inf(1))
		if d.Min > lo {
			lo = d.Min
		}
		ecs = append(ecs, domain.EquivalenceClass{
			Name:  "positive",
			Range: &domain.ValueRange{Lo: domain.FloatValue(lo), Hi: domain.FloatValue(d.Max)},
		})
	}
	return ecs, nil
}

// enumerationClasses emits one class per distinct declared value, named by
// the value's string form.
func enumerationClasses(name string, d domain.EnumerationDomain) ([]domain.EquivalenceClass, error) {
	if len(d.Values) == 0 {
		return nil, &domain.ValidationError{Param: name, Reason: "enumeration domain has no values"}
	}

	var ecs []domain.EquivalenceClass
	for _, v := range d.Values {
		if containsValue(valuesOf(ecs), v) {
			continue
		}
		ecs = append(ecs, domain.EquivalenceClass{Name: v.String(), Values: []domain.Value{v}})
	}
	return ecs, nil
}

func valuesOf(ecs []domain.EquivalenceClass) []domain.Value {
	var vs []domain.Value
	for _, ec := range ecs {
		vs = append(vs, ec.Values...)
	}
	return vs
}

func containsValue(vs []domain.Value, v domain.Value) bool {
	for _, x := range vs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}
