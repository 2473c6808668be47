package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSpecForgeMCPServer creates a new MCP server with all SpecForge tools and
// resources registered. The projectPath anchors project config lookup and
// relative output paths.
func NewSpecForgeMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"specforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s)

	return s
}
