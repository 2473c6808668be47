package domain

// Validate checks the structural invariants of a request: at least one
// parameter, unique parameter names, and a well-formed domain plus override
// lists for every parameter. Any violation is a *ValidationError.
func (r GenerationRequest) Validate() error {
	if r.ClassUnderTest == "" {
		return &ValidationError{Reason: "class_under_test is required"}
	}
	if r.Method == "" {
		return &ValidationError{Reason: "method is required"}
	}
	if len(r.Params) == 0 {
		return &ValidationError{Reason: "at least one parameter is required"}
	}

	seen := make(map[string]bool, len(r.Params))
	for _, p := range r.Params {
		if p.Name == "" {
			return &ValidationError{Reason: "parameter name must not be empty"}
		}
		if seen[p.Name] {
			return &ValidationError{Param: p.Name, Reason: "duplicate parameter name"}
		}
		seen[p.Name] = true

		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p ParameterSpec) validate() error {
	switch d := p.Domain.(type) {
	case IntegralDomain:
		if d.Min > d.Max {
			return &ValidationError{Param: p.Name, Reason: "range min exceeds max"}
		}
	case FloatingDomain:
		if d.Min > d.Max {
			return &ValidationError{Param: p.Name, Reason: "range min exceeds max"}
		}
	case EnumerationDomain:
		if len(d.Values) == 0 {
			return &ValidationError{Param: p.Name, Reason: "enumeration domain has no values"}
		}
	case nil:
		return &ValidationError{Param: p.Name, Reason: "domain is required"}
	}

	names := make(map[string]bool, len(p.Classes))
	for _, ec := range p.Classes {
		if ec.Name == "" {
			return &ValidationError{Param: p.Name, Reason: "equivalence class name must not be empty"}
		}
		if names[ec.Name] {
			return &ValidationError{Param: p.Name, Reason: "duplicate equivalence class " + ec.Name}
		}
		names[ec.Name] = true
		if len(ec.Values) == 0 && ec.Range == nil {
			return &ValidationError{Param: p.Name, Reason: "equivalence class " + ec.Name + " has neither values nor range"}
		}
	}
	return nil
}
