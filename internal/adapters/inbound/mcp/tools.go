package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/specforge/specforge/internal/adapters/outbound/config"
	"github.com/specforge/specforge/internal/adapters/outbound/gitinfo"
	"github.com/specforge/specforge/internal/adapters/outbound/writer"
	"github.com/specforge/specforge/internal/application"
	"github.com/specforge/specforge/internal/domain"
)

// registerTools registers all SpecForge MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. specforge_generate
	s.AddTool(
		mcplib.NewTool("specforge_generate",
			mcplib.WithDescription("Generate ECP/BVA test cases from a method specification. Returns the ordered case list, counts, and per-case oracle failures as JSON."),
			mcplib.WithString("spec",
				mcplib.Required(),
				mcplib.Description("The generation request as a YAML or JSON document"),
			),
			mcplib.WithBoolean("write",
				mcplib.Description("Render the JUnit class and write it under the project"),
			),
		),
		handleGenerate(projectPath),
	)

	// 2. specforge_render
	s.AddTool(
		mcplib.NewTool("specforge_render",
			mcplib.WithDescription("Generate test cases and return the rendered JUnit test class source without writing it"),
			mcplib.WithString("spec",
				mcplib.Required(),
				mcplib.Description("The generation request as a YAML or JSON document"),
			),
		),
		handleRender(projectPath),
	)

	// 3. specforge_calculator
	s.AddTool(
		mcplib.NewTool("specforge_calculator",
			mcplib.WithDescription("Evaluate a numeric expression from free text, e.g. \"what is 3 times 4?\""),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Prompt text containing an arithmetic expression"),
			),
		),
		handleCalculator(),
	)
}

// newGenerateService wires the standard outbound adapters.
func newGenerateService(projectPath string) (*application.GenerateService, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, err
	}
	return application.NewGenerateService(writer.New(), gitinfo.New(), cfg), nil
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		spec, err := request.RequireString("spec")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		req, err := config.ParseRequest([]byte(spec))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, err := newGenerateService(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		write, _ := request.GetArguments()["write"].(bool)
		result, err := svc.Generate(req, application.GenerateOptions{
			Render: true,
			Write:  write,
			Base:   projectPath,
		})
		if err != nil {
			var renderErr *domain.RenderError
			if result != nil && errors.As(err, &renderErr) {
				// The case list survived; report it with the failure.
				result.Source = ""
				return jsonResult(struct {
					*domain.GenerationResult
					RenderError string `json:"render_error"`
				}{result, renderErr.Error()})
			}
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleRender(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		spec, err := request.RequireString("spec")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		req, err := config.ParseRequest([]byte(spec))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, err := newGenerateService(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		result, err := svc.Generate(req, application.GenerateOptions{Render: true, Base: projectPath})
		if err != nil {
			return errorResult(fmt.Sprintf("rendering failed: %v", err)), nil
		}
		return textResult(result.Source), nil
	}
}

func handleCalculator() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		answer, err := application.NewExprService().Calculate(text)
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		return textResult(answer), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
