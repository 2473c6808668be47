// Package render turns an ordered case sequence into JUnit test class source.
// It is a pure function of its inputs; writing the result to disk is the
// writer adapter's job.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/specforge/specforge/internal/domain"
)

// Options control the rendered output.
type Options struct {
	// JUnitVersion selects the import set: "4" or "5". Empty means 5.
	JUnitVersion string
	// OmitUnverified drops cases without a computed expected value instead
	// of rendering them as bare invocations.
	OmitUnverified bool
}

// ClassName returns the effective test class name for a request: the
// configured one, or the simple name of the class under test + "SpecTests".
func ClassName(req domain.GenerationRequest) string {
	if req.TestClassName != "" {
		return req.TestClassName
	}
	return simpleName(req.ClassUnderTest) + "SpecTests"
}

// JUnit renders the cases as a JUnit test class. Method names are derived
// deterministically from case kind, varying parameter, label and a running
// index, so identical inputs always produce identical text.
func JUnit(req domain.GenerationRequest, cases []domain.TestCase, opts Options) (string, error) {
	if req.ClassUnderTest == "" {
		return "", &domain.RenderError{Reason: "class under test is required"}
	}

	var imports string
	switch opts.JUnitVersion {
	case "", "5":
		imports = "import org.junit.jupiter.api.Test;\nimport static org.junit.jupiter.api.Assertions.*;\n\n"
	case "4":
		imports = "import org.junit.Test;\nimport static org.junit.Assert.*;\n\n"
	default:
		return "", &domain.RenderError{Reason: fmt.Sprintf("unknown junit version %q", opts.JUnitVersion)}
	}

	cls := simpleName(req.ClassUnderTest)
	method := req.Method

	var b strings.Builder
	if req.Package != "" {
		fmt.Fprintf(&b, "package %s;\n\n", req.Package)
	}
	b.WriteString(imports)
	fmt.Fprintf(&b, "public class %s {\n", ClassName(req))
	fmt.Fprintf(&b, "    // Method under test: %s\n", method)

	for idx, c := range cases {
		if c.Expected == nil && opts.OmitUnverified {
			continue
		}

		call := fmt.Sprintf("obj.%s(%s)", method, argList(req.Params, c.Inputs))

		b.WriteString("    @Test\n")
		fmt.Fprintf(&b, "    public void %s() {\n", methodName(c, idx))
		fmt.Fprintf(&b, "        %s obj = new %s();\n", cls, cls)
		if c.Expected != nil {
			fmt.Fprintf(&b, "        assertEquals(%s, %s);\n", c.Expected.JavaLiteral(), call)
		} else {
			b.WriteString("        // expected value unavailable; supply an oracle\n")
			fmt.Fprintf(&b, "        %s;\n", call)
		}
		b.WriteString("    }\n\n")
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// methodName builds test_spec_<kind>_<fragments>_<index>.
func methodName(c domain.TestCase, idx int) string {
	parts := []string{"test", "spec"}
	switch c.Kind {
	case domain.KindEquivalence:
		parts = append(parts, "equivalence", fragment(c.Param), fragment(c.Label))
	case domain.KindBoundary:
		parts = append(parts, "boundary", fragment(c.Param))
	case domain.KindCombination:
		parts = append(parts, "boundary_combo", fragment(c.Label))
	}
	return fmt.Sprintf("%s_%d", strings.Join(parts, "_"), idx)
}

// fragment lowers an identifier or label into a snake_case name fragment.
func fragment(s string) string {
	words := camelcase.Split(s)
	joined := strings.ToLower(strings.Join(words, "_"))
	var b strings.Builder
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}

// argList renders the case inputs as Java literals in declared order.
func argList(params []domain.ParameterSpec, inputs map[string]domain.Value) string {
	args := make([]string, 0, len(params))
	for _, p := range params {
		args = append(args, inputs[p.Name].JavaLiteral())
	}
	return strings.Join(args, ", ")
}

func simpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
