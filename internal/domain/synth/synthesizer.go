// Package synth assembles concrete test cases from per-parameter equivalence
// classes and boundary values, one-variable-at-a-time, and computes expected
// outputs through the oracle expression when one was supplied.
package synth

import (
	"errors"
	"math"

	"github.com/specforge/specforge/internal/domain"
	"github.com/specforge/specforge/internal/domain/oracle"
	"github.com/specforge/specforge/internal/domain/partition"
)

// plan holds the derived artifacts for one parameter.
type plan struct {
	spec       domain.ParameterSpec
	classes    []domain.EquivalenceClass
	boundaries []domain.Value
}

// Synthesize produces the ordered case sequence for a request. The order is
// part of the contract: equivalence cases in declaration x derivation order,
// then boundary cases, then the all-min / all-max combinations. A validation
// failure aborts the whole request; oracle failures are scoped per case.
func Synthesize(req domain.GenerationRequest) (*domain.SynthesisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plans := make([]plan, 0, len(req.Params))
	for _, p := range req.Params {
		ecs, err := partition.Classes(p)
		if err != nil {
			return nil, err
		}
		bvs, err := partition.Boundaries(p)
		if err != nil {
			return nil, err
		}
		for _, probe := range partition.ZeroProbes(p) {
			if !contains(bvs, probe) {
				bvs = append(bvs, probe)
			}
		}
		plans = append(plans, plan{spec: p, classes: ecs, boundaries: bvs})
	}

	nominal := make(map[string]domain.Value, len(req.Params))
	for _, p := range req.Params {
		nominal[p.Name] = partition.Nominal(p)
	}

	res := &domain.SynthesisResult{Nominal: nominal}

	for _, pl := range plans {
		for _, ec := range pl.classes {
			inputs := cloneInputs(nominal)
			inputs[pl.spec.Name] = partition.Representative(ec, pl.spec)
			res.Cases = append(res.Cases, domain.TestCase{
				Kind:   domain.KindEquivalence,
				Param:  pl.spec.Name,
				Label:  ec.Name,
				Inputs: inputs,
			})
			res.Summary.Equivalence++
		}
	}

	for _, pl := range plans {
		for _, b := range pl.boundaries {
			inputs := cloneInputs(nominal)
			inputs[pl.spec.Name] = b
			res.Cases = append(res.Cases, domain.TestCase{
				Kind:   domain.KindBoundary,
				Param:  pl.spec.Name,
				Label:  b.String(),
				Inputs: inputs,
			})
			res.Summary.Boundary++
		}
	}

	if allMin, allMax, ok := extremes(req.Params); ok {
		res.Cases = append(res.Cases,
			domain.TestCase{Kind: domain.KindCombination, Label: "all_min", Inputs: allMin},
			domain.TestCase{Kind: domain.KindCombination, Label: "all_max", Inputs: allMax},
		)
		res.Summary.Combination = 2
	}

	if req.Oracle != "" {
		evaluate(req.Oracle, res)
	}

	res.Summary.Total = len(res.Cases)
	return res, nil
}

// extremes builds the all-minimum and all-maximum input maps. Enumerations
// carry no ordering semantics, so any enumeration parameter disables the
// combination cases entirely.
func extremes(params []domain.ParameterSpec) (allMin, allMax map[string]domain.Value, ok bool) {
	allMin = make(map[string]domain.Value, len(params))
	allMax = make(map[string]domain.Value, len(params))
	for _, p := range params {
		switch d := p.Domain.(type) {
		case domain.IntegralDomain:
			allMin[p.Name] = domain.IntValue(d.Min)
			allMax[p.Name] = domain.IntValue(d.Max)
		case domain.FloatingDomain:
			allMin[p.Name] = domain.FloatValue(d.Min)
			allMax[p.Name] = domain.FloatValue(d.Max)
		default:
			return nil, nil, false
		}
	}
	return allMin, allMax, true
}

// evaluate computes the expected output for every case the oracle can handle.
// Failures are recorded against the case index and leave Expected unset.
func evaluate(expr string, res *domain.SynthesisResult) {
	for i := range res.Cases {
		env := make(map[string]float64, len(res.Cases[i].Inputs))
		for name, v := range res.Cases[i].Inputs {
			if n, ok := v.Num(); ok {
				env[name] = n
			}
		}

		out, err := oracle.Evaluate(expr, env)
		if err != nil {
			reason := err.Error()
			if errors.Is(err, oracle.ErrDivisionByZero) {
				reason = "division by zero: expected value undefined"
			}
			res.Failures = append(res.Failures, domain.FailureFromError(
				&domain.EvaluationError{CaseIndex: i, Expr: expr, Reason: reason},
			))
			continue
		}

		expected := domain.FloatValue(out)
		if out == math.Trunc(out) && math.Abs(out) < 1<<53 {
			expected = domain.IntValue(int64(out))
		}
		res.Cases[i].Expected = &expected
	}
}

func cloneInputs(m map[string]domain.Value) map[string]domain.Value {
	out := make(map[string]domain.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func contains(vs []domain.Value, v domain.Value) bool {
	for _, x := range vs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}
