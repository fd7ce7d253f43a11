package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/uiforge/designaudit/pkg/design"
	"github.com/uiforge/designaudit/pkg/naming"
	"github.com/uiforge/designaudit/pkg/token"
)

// resolveTarget loads the document named in the request and returns the
// element addressed by element_id, or the document root when the id is
// omitted.
func (s *Server) resolveTarget(req mcp.CallToolRequest, idRequired bool) (*design.Element, error) {
	path, err := req.RequireString("document")
	if err != nil {
		return nil, err
	}
	doc, err := design.LoadDocument(path, s.logger)
	if err != nil {
		return nil, err
	}

	id := req.GetString("element_id", "")
	if id == "" {
		if idRequired {
			return nil, fmt.Errorf("element_id is required")
		}
		return doc.Root, nil
	}

	w := design.Walker{MaxDepth: 1 << 16}
	el := w.FindByID(doc.Root, id)
	if el == nil {
		return nil, fmt.Errorf("element %q not found in %s", id, path)
	}
	return el, nil
}

func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleAnalyzeComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	el, err := s.resolveTarget(req, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// With an explicit target, analyze just that subtree. Otherwise analyze
	// every component root in the document as a batch.
	if req.GetString("element_id", "") != "" {
		md, err := s.session.AnalyzeComponent(ctx, el)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return textResult(md)
	}

	roots := s.session.FindComponents(el)
	if len(roots) == 0 {
		return mcp.NewToolResultError("no components found in document"), nil
	}
	return textResult(s.session.AnalyzeBatch(ctx, roots))
}

func (s *Server) handleExtractTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	el, err := s.resolveTarget(req, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ext, sum, err := s.session.ExtractTokens(ctx, el)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(struct {
		Summary token.Summary `json:"summary"`
		Tokens  []token.Token `json:"tokens"`
	}{Summary: sum, Tokens: ext.All()})
}

func (s *Server) handleNamingIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	el, err := s.resolveTarget(req, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	issues := s.session.NamingIssues(el)
	return textResult(struct {
		Total  int            `json:"total"`
		Issues []naming.Issue `json:"issues"`
	}{Total: len(issues), Issues: issues})
}

func (s *Server) handleRecommendProperties(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	el, err := s.resolveTarget(req, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recs, err := s.session.RecommendProperties(ctx, el)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(recs)
}
