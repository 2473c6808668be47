package domain

import "fmt"

// ValidationError reports a malformed ParameterSpec or GenerationRequest.
// It aborts the whole request: no partial cases are returned.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return "invalid request: " + e.Reason
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// EvaluationError reports that the oracle expression could not be evaluated
// for one specific case. It is recorded per case and never aborts the batch.
type EvaluationError struct {
	CaseIndex int
	Expr      string
	Reason    string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluating oracle %q for case %d: %s", e.Expr, e.CaseIndex, e.Reason)
}

// RenderError reports a rendering failure. The already-computed case list
// remains valid and is still returned to the caller.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "rendering test class: " + e.Reason
}
