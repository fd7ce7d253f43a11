package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware records every tool call with its duration and outcome.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start)

			attrs := []any{
				"tool", req.Params.Name,
				"duration_ms", elapsed.Milliseconds(),
			}
			switch {
			case err != nil:
				s.logger.Error("tool call failed", append(attrs, "error", err)...)
			case result != nil && result.IsError:
				s.logger.Warn("tool call returned error result", attrs...)
			default:
				s.logger.Info("tool call ok", attrs...)
			}
			return result, err
		}
	}
}
