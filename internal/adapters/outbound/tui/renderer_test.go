package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/internal/adapters/outbound/tui"
	"github.com/specforge/specforge/internal/domain"
	"github.com/specforge/specforge/internal/domain/synth"
)

func TestRenderResult(t *testing.T) {
	req := domain.GenerationRequest{
		ClassUnderTest: "com.example.Calculator",
		Method:         "add",
		Oracle:         "a / b",
		Params: []domain.ParameterSpec{
			{Name: "a", Domain: domain.IntegralDomain{Min: -10, Max: 10}},
			{Name: "b", Domain: domain.IntegralDomain{Min: -10, Max: 10}},
		},
	}
	syn, err := synth.Synthesize(req)
	require.NoError(t, err)
	res := &domain.GenerationResult{SynthesisResult: *syn, File: "/tmp/CalculatorSpecTests.java"}

	out := tui.RenderResult(req, res)
	assert.Contains(t, out, "specforge")
	assert.Contains(t, out, "22 test cases")
	assert.Contains(t, out, "equivalence")
	assert.Contains(t, out, "boundary")
	assert.Contains(t, out, "without expected value")
	assert.Contains(t, out, "CalculatorSpecTests.java")
}
