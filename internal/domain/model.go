package domain

// Domain describes the set of values a parameter may take. It is a closed
// variant: exactly one of the three concrete kinds below.
type Domain interface {
	isDomain()
}

// IntegralDomain is a closed integer range [Min, Max].
type IntegralDomain struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FloatingDomain is a closed floating-point range [Min, Max].
type FloatingDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EnumerationDomain is an explicit ordered list of allowed values.
type EnumerationDomain struct {
	Values []Value `json:"values"`
}

func (IntegralDomain) isDomain()    {}
func (FloatingDomain) isDomain()    {}
func (EnumerationDomain) isDomain() {}

// EquivalenceClass is a named subset of a parameter's domain expected to be
// treated alike by the unit under test. It carries either explicit values
// (first one is the representative) or a numeric sub-range.
type EquivalenceClass struct {
	Name   string      `json:"name"`
	Values []Value     `json:"values,omitempty"`
	Range  *ValueRange `json:"range,omitempty"`
}

// ValueRange is a numeric sub-range used by range-backed equivalence classes.
type ValueRange struct {
	Lo Value `json:"lo"`
	Hi Value `json:"hi"`
}

// ParameterSpec declares one method parameter: its name, its domain, and
// optional caller-supplied overrides for the derived classes and boundaries.
type ParameterSpec struct {
	Name       string             `json:"name"`
	Domain     Domain             `json:"-"`
	Classes    []EquivalenceClass `json:"equivalence_classes,omitempty"`
	Boundaries []Value            `json:"boundaries,omitempty"`
}

// Integral reports whether the parameter's domain is an integer range.
func (p ParameterSpec) Integral() bool {
	_, ok := p.Domain.(IntegralDomain)
	return ok
}

// CaseKind tags how a test case was generated.
type CaseKind string

const (
	KindEquivalence CaseKind = "equivalence"
	KindBoundary    CaseKind = "boundary"
	KindCombination CaseKind = "boundary-combination"
)

// TestCase is one concrete generated case: a value for every declared
// parameter, plus the expected output when the oracle could compute one.
type TestCase struct {
	Kind     CaseKind         `json:"kind"`
	Param    string           `json:"param,omitempty"` // varying parameter; empty for combinations
	Label    string           `json:"label"`           // class name, boundary literal, or combo label
	Inputs   map[string]Value `json:"inputs"`
	Expected *Value           `json:"expected,omitempty"`
}

// CaseFailure records an oracle evaluation failure scoped to a single case.
type CaseFailure struct {
	CaseIndex int    `json:"case_index"`
	Expr      string `json:"expr"`
	Reason    string `json:"reason"`
}

// FailureFromError records a scoped evaluation error as a per-case failure.
func FailureFromError(e *EvaluationError) CaseFailure {
	return CaseFailure{CaseIndex: e.CaseIndex, Expr: e.Expr, Reason: e.Reason}
}

// GenerationRequest is the full input to the synthesizer.
type GenerationRequest struct {
	ClassUnderTest string          `json:"class_under_test"`
	Method         string          `json:"method"`
	Params         []ParameterSpec `json:"params"`
	Oracle         string          `json:"oracle,omitempty"`

	// Rendering configuration; ignored by analysis.
	Package       string `json:"package,omitempty"`
	TestClassName string `json:"test_class_name,omitempty"`
	OutputDir     string `json:"output_dir,omitempty"`
	JUnitVersion  string `json:"junit_version,omitempty"`
}

// Summary counts generated cases by kind.
type Summary struct {
	Total       int `json:"total"`
	Equivalence int `json:"equivalence"`
	Boundary    int `json:"boundary"`
	Combination int `json:"combination"`
}

// SynthesisResult is the ordered case sequence plus per-case failures.
type SynthesisResult struct {
	Cases    []TestCase       `json:"cases"`
	Failures []CaseFailure    `json:"failures,omitempty"`
	Nominal  map[string]Value `json:"nominal"`
	Summary  Summary          `json:"summary"`
}

// GenerationResult is what the application layer hands back to callers:
// the synthesis result plus, when rendering was requested, the generated
// source and where it was (or would be) written.
type GenerationResult struct {
	SynthesisResult
	Source string `json:"source,omitempty"`
	File   string `json:"file,omitempty"`
}
