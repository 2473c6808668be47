package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specforge/specforge/internal/domain"
	"github.com/specforge/specforge/internal/domain/partition"
)

func TestNominal_IntegralFirstClassRepresentative(t *testing.T) {
	// First derived class for [-10,10] is "negative": midpoint of [-10,-1].
	assert.Equal(t, domain.IntValue(-6), partition.Nominal(intParam("a", -10, 10)))
	// For [0,9] it is "zero".
	assert.Equal(t, domain.IntValue(0), partition.Nominal(intParam("a", 0, 9)))
	// For [1,10] it is "positive": midpoint of [1,10].
	assert.Equal(t, domain.IntValue(5), partition.Nominal(intParam("a", 1, 10)))
	assert.Equal(t, domain.IntValue(-6), partition.Nominal(intParam("a", -6, -6)))
}

func TestNominal_Floating(t *testing.T) {
	// First derived class for [1,2] is "positive"; its representative is 1.5.
	p := domain.ParameterSpec{Name: "x", Domain: domain.FloatingDomain{Min: 1, Max: 2}}
	assert.Equal(t, domain.FloatValue(1.5), partition.Nominal(p))

	// For [-10,10] it is "negative", midpoint -5.
	p = domain.ParameterSpec{Name: "x", Domain: domain.FloatingDomain{Min: -10, Max: 10}}
	assert.Equal(t, domain.FloatValue(-5), partition.Nominal(p))
}

func TestNominal_EnumerationFirstValue(t *testing.T) {
	p := domain.ParameterSpec{Name: "mode", Domain: domain.EnumerationDomain{Values: []domain.Value{
		domain.StringValue("FAST"), domain.StringValue("SLOW"),
	}}}
	assert.Equal(t, domain.StringValue("FAST"), partition.Nominal(p))
}

func TestNominal_PrefersFirstCallerClass(t *testing.T) {
	p := intParam("a", 0, 100)
	p.Classes = []domain.EquivalenceClass{
		{Name: "small", Values: []domain.Value{domain.IntValue(3)}},
		{Name: "large", Values: []domain.Value{domain.IntValue(99)}},
	}
	assert.Equal(t, domain.IntValue(3), partition.Nominal(p))
}

func TestRepresentative_RangeMidpoint(t *testing.T) {
	p := intParam("a", -10, 10)
	ec := domain.EquivalenceClass{Name: "negative", Range: &domain.ValueRange{
		Lo: domain.IntValue(-10), Hi: domain.IntValue(-1),
	}}
	assert.Equal(t, domain.IntValue(-6), partition.Representative(ec, p))
}
