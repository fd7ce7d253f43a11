// Package mcp exposes the analysis pipeline as MCP tools over stdio, so
// agent hosts can request component analyses without shelling out to the CLI.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/uiforge/designaudit/pkg/analyzer"
)

const serverVersion = "0.1.0-dev"

// Server wraps an MCP server around one analysis session.
type Server struct {
	mcpServer *server.MCPServer
	session   *analyzer.Session
	logger    *slog.Logger
}

// NewServer creates an MCP server backed by the given session.
func NewServer(session *analyzer.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{session: session, logger: logger}

	s.mcpServer = server.NewMCPServer(
		"designaudit",
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: analyzeComponentTool(), Handler: s.handleAnalyzeComponent},
		server.ServerTool{Tool: extractTokensTool(), Handler: s.handleExtractTokens},
		server.ServerTool{Tool: namingIssuesTool(), Handler: s.handleNamingIssues},
		server.ServerTool{Tool: recommendPropertiesTool(), Handler: s.handleRecommendProperties},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
