package partition

import "github.com/specforge/specforge/internal/domain"

// Nominal returns the hold-constant value for a parameter: the representative
// of its first equivalence class (caller-supplied or derived), falling back
// to the range midpoint. For [-10,10] this is -6, the negative class
// representative.
func Nominal(p domain.ParameterSpec) domain.Value {
	if ecs, err := Classes(p); err == nil && len(ecs) > 0 {
		return Representative(ecs[0], p)
	}
	return domainNominal(p)
}

// Representative resolves an equivalence class to the single concrete value
// that stands for it: its first explicit value, or its range midpoint.
func Representative(ec domain.EquivalenceClass, p domain.ParameterSpec) domain.Value {
	if len(ec.Values) > 0 {
		return ec.Values[0]
	}
	if ec.Range != nil {
		lo, _ := ec.Range.Lo.Num()
		hi, _ := ec.Range.Hi.Num()
		if p.Integral() {
			return domain.IntValue(intMidpoint(int64(lo), int64(hi)))
		}
		return domain.FloatValue((lo + hi) / 2)
	}
	return domainNominal(p)
}

func domainNominal(p domain.ParameterSpec) domain.Value {
	switch d := p.Domain.(type) {
	case domain.IntegralDomain:
		return domain.IntValue(intMidpoint(d.Min, d.Max))
	case domain.FloatingDomain:
		return domain.FloatValue((d.Min + d.Max) / 2)
	case domain.EnumerationDomain:
		return d.Values[0]
	}
	return domain.IntValue(0)
}

func intMidpoint(lo, hi int64) int64 {
	return lo + (hi-lo)/2
}
