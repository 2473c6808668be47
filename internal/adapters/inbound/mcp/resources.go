package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const grammarDoc = `SpecForge oracle expression grammar

  expr   := term (('+' | '-') term)*
  term   := factor (('*' | '/') factor)*
  factor := NUMBER | IDENT | '-' factor | '(' expr ')'

NUMBER is a decimal literal (digits, optional fractional part).
IDENT must be a declared parameter name. Any other token is rejected.
Division by zero leaves the affected case without an expected value.
`

const schemaDoc = `# Example SpecForge generation request (YAML; JSON also accepted)
class_under_test: com.example.Calculator
method: add
package: example
junit_version: "5"
oracle: a + b
params:
  - name: a
    type: int
    domain: { min: -10, max: 10 }
  - name: b
    type: int
    domain: { min: -10, max: 10 }
  # Overrides and enumerations:
  # - name: mode
  #   type: enum
  #   domain: { values: [FAST, SLOW] }
  # - name: c
  #   type: int
  #   domain: { min: 0, max: 100 }
  #   equivalence_classes:
  #     - { name: small, range: [0, 9] }
  #     - { name: large, range: [10, 100] }
  #   boundaries: [0, 100]
`

// registerResources registers all SpecForge MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. specforge://grammar - accepted oracle grammar
	s.AddResource(
		mcplib.NewResource(
			"specforge://grammar",
			"Oracle Grammar",
			mcplib.WithResourceDescription("The arithmetic grammar accepted by oracle expressions"),
			mcplib.WithMIMEType("text/plain"),
		),
		staticResource("specforge://grammar", "text/plain", grammarDoc),
	)

	// 2. specforge://schema - example request document
	s.AddResource(
		mcplib.NewResource(
			"specforge://schema",
			"Request Schema",
			mcplib.WithResourceDescription("An annotated example generation request document"),
			mcplib.WithMIMEType("application/yaml"),
		),
		staticResource("specforge://schema", "application/yaml", schemaDoc),
	)
}

func staticResource(uri, mime, text string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: mime,
				Text:     text,
			},
		}, nil
	}
}
