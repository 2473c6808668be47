package partition

import (
	"math"

	"github.com/specforge/specforge/internal/domain"
)

// Boundaries returns the ordered boundary values for a parameter: the domain
// edges and their immediate neighbors, deduplicated in first-seen order and
// filtered to the domain. Caller-supplied boundaries are used verbatim,
// validated only for duplicate values.
func Boundaries(p domain.ParameterSpec) ([]domain.Value, error) {
	if p.Boundaries != nil {
		for i, b := range p.Boundaries {
			if containsValue(p.Boundaries[:i], b) {
				return nil, &domain.ValidationError{Param: p.Name, Reason: "duplicate boundary value " + b.String()}
			}
		}
		return p.Boundaries, nil
	}

	switch d := p.Domain.(type) {
	case domain.IntegralDomain:
		if d.Min > d.Max {
			return nil, &domain.ValidationError{Param: p.Name, Reason: "range min exceeds max"}
		}
		var out []domain.Value
		for _, c := range []int64{d.Min, d.Min + 1, d.Max - 1, d.Max} {
			if c < d.Min || c > d.Max {
				continue
			}
			out = appendDistinct(out, domain.IntValue(c))
		}
		return out, nil

	case domain.FloatingDomain:
		if d.Min > d.Max {
			return nil, &domain.ValidationError{Param: p.Name, Reason: "range min exceeds max"}
		}
		candidates := []float64{
			d.Min,
			math.Nextafter(d.Min, math.Inf(1)),
			math.Nextafter(d.Max, math.Inf(-1)),
			d.Max,
		}
		var out []domain.Value
		for _, c := range candidates {
			if c < d.Min || c > d.Max {
				continue
			}
			out = appendDistinct(out, domain.FloatValue(c))
		}
		return out, nil

	case domain.EnumerationDomain:
		if len(d.Values) == 0 {
			return nil, &domain.ValidationError{Param: p.Name, Reason: "enumeration domain has no values"}
		}
		// Declaration order stands in for adjacency: first and last values.
		out := []domain.Value{d.Values[0]}
		return appendDistinct(out, d.Values[len(d.Values)-1]), nil

	default:
		return nil, &domain.ValidationError{Param: p.Name, Reason: "domain is required"}
	}
}

// ZeroProbes returns the near-zero values worth probing for an integral range
// with auto-derived boundaries: -1, 0 and 1, filtered to the domain.
func ZeroProbes(p domain.ParameterSpec) []domain.Value {
	if p.Boundaries != nil {
		return nil
	}
	d, ok := p.Domain.(domain.IntegralDomain)
	if !ok {
		return nil
	}
	var out []domain.Value
	for _, z := range []int64{-1, 0, 1} {
		if z >= d.Min && z <= d.Max {
			out = append(out, domain.IntValue(z))
		}
	}
	return out
}

func appendDistinct(vs []domain.Value, v domain.Value) []domain.Value {
	if containsValue(vs, v) {
		return vs
	}
	return append(vs, v)
}
