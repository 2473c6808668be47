package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/internal/domain"
)

func validRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		ClassUnderTest: "com.example.Calculator",
		Method:         "add",
		Oracle:         "a + b",
		Params: []domain.ParameterSpec{
			{Name: "a", Domain: domain.IntegralDomain{Min: -10, Max: 10}},
			{Name: "b", Domain: domain.IntegralDomain{Min: -10, Max: 10}},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.GenerationRequest)
		reason string
	}{
		{
			"missing class",
			func(r *domain.GenerationRequest) { r.ClassUnderTest = "" },
			"class_under_test is required",
		},
		{
			"missing method",
			func(r *domain.GenerationRequest) { r.Method = "" },
			"method is required",
		},
		{
			"no parameters",
			func(r *domain.GenerationRequest) { r.Params = nil },
			"at least one parameter is required",
		},
		{
			"duplicate parameter",
			func(r *domain.GenerationRequest) { r.Params[1].Name = "a" },
			"duplicate parameter name",
		},
		{
			"unnamed parameter",
			func(r *domain.GenerationRequest) { r.Params[0].Name = "" },
			"parameter name must not be empty",
		},
		{
			"missing domain",
			func(r *domain.GenerationRequest) { r.Params[0].Domain = nil },
			"domain is required",
		},
		{
			"inverted range",
			func(r *domain.GenerationRequest) { r.Params[0].Domain = domain.IntegralDomain{Min: 5, Max: 1} },
			"range min exceeds max",
		},
		{
			"empty enumeration",
			func(r *domain.GenerationRequest) { r.Params[0].Domain = domain.EnumerationDomain{} },
			"enumeration domain has no values",
		},
		{
			"class without values or range",
			func(r *domain.GenerationRequest) {
				r.Params[0].Classes = []domain.EquivalenceClass{{Name: "negative"}}
			},
			"equivalence class negative has neither values nor range",
		},
		{
			"duplicate class name",
			func(r *domain.GenerationRequest) {
				r.Params[0].Classes = []domain.EquivalenceClass{
					{Name: "negative", Values: []domain.Value{domain.IntValue(-1)}},
					{Name: "negative", Values: []domain.Value{domain.IntValue(-2)}},
				}
			},
			"duplicate equivalence class negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}
