package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uiforge/designaudit/pkg/advisory"
	"github.com/uiforge/designaudit/pkg/design"
	"github.com/uiforge/designaudit/pkg/fingerprint"
	"github.com/uiforge/designaudit/pkg/naming"
	"github.com/uiforge/designaudit/pkg/reconcile"
	"github.com/uiforge/designaudit/pkg/token"
)

// AnalyzeComponent runs the full pipeline on one component subtree and
// returns reconciled metadata. The result is owned by the caller. On any
// advisory failure the error carries exactly one classification and no
// partially reconciled metadata is returned.
func (s *Session) AnalyzeComponent(ctx context.Context, el *design.Element) (*reconcile.Metadata, error) {
	if el == nil {
		return nil, fmt.Errorf("analyzer: nil element")
	}

	// Independent passes over the same traversal order.
	extractor := token.NewExtractor(s.resolver, s.logger,
		token.WithMaxDepth(s.cfg.MaxDepth), token.WithLookupFanout(s.cfg.LookupFanout))
	ext := extractor.Extract(ctx, el)
	issues := naming.AnalyzeIssues(el, s.cfg.MaxDepth)

	// The summary is computed exactly once, after extraction finalizes.
	sum := token.Summarize(ext)
	gt := reconcile.BuildGroundTruth(el, ext, sum)

	fp := fingerprint.Compute(el, ext)
	if entry, ok := s.cache.Get(fp); ok {
		var md reconcile.Metadata
		if err := json.Unmarshal(entry.Result, &md); err == nil {
			s.logger.Debug("analysis cache hit", "component", el.Name, "fingerprint", fp[:12])
			return &md, nil
		}
		// A corrupt entry is treated as a miss; the rewrite below heals it.
		s.logger.Warn("dropping unreadable cache entry", "fingerprint", fp[:12])
	}

	var candidate *advisory.Candidate
	if s.advisory != nil {
		var err error
		candidate, err = advisory.Ask(ctx, s.advisory, promptInput(gt))
		if err != nil {
			return nil, err
		}
	}

	engine := reconcile.Engine{}
	if candidate != nil {
		if ok, reasons := engine.ValidateConsistency(candidate, gt); !ok {
			s.logger.Info("candidate inconsistent with ground truth, correcting",
				"component", el.Name, "reasons", reasons)
		}
	}
	md := engine.ApplyCorrections(candidate, gt, issues)

	// Gap-filling: missing catalog properties become recommendations. The
	// candidate prose was already fuzzy-deduped during correction; catalog
	// entries are derived facts and are only filtered by exact match, so
	// similar-sounding ones ("Add Size property", "Add State property") both
	// survive.
	existing := make([]string, 0, len(gt.Properties))
	for _, p := range gt.Properties {
		existing = append(existing, p.Name)
	}
	gaps := make([]string, 0, 8)
	for _, rec := range reconcile.RecommendProperties(gt.Family, existing) {
		gaps = append(gaps, fmt.Sprintf("Add %s property", rec.Name))
	}
	md.Readiness.Recommendations = reconcile.AppendDistinct(md.Readiness.Recommendations, gaps...)

	data, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("analyzer: encode metadata: %w", err)
	}
	s.cache.Put(fp, data)
	return &md, nil
}

// BatchResult is one entry of a batch analysis; a failed component carries
// its error here instead of aborting the batch.
type BatchResult struct {
	ElementID string              `json:"elementId"`
	Component string              `json:"component"`
	Metadata  *reconcile.Metadata `json:"metadata,omitempty"`
	Err       string              `json:"error,omitempty"`
}

// AnalyzeBatch analyzes components sequentially, bounding combined cost and
// external rate limits. Failures are isolated per entry.
func (s *Session) AnalyzeBatch(ctx context.Context, els []*design.Element) []BatchResult {
	results := make([]BatchResult, 0, len(els))
	for _, el := range els {
		res := BatchResult{}
		if el != nil {
			res.ElementID = el.ID
			res.Component = el.Name
		}
		md, err := s.AnalyzeComponent(ctx, el)
		if err != nil {
			res.Err = err.Error()
		} else {
			res.Metadata = md
		}
		results = append(results, res)
	}
	return results
}

// FindComponents collects the component and component-set roots in a
// document tree, skipping components nested inside a set (the set itself is
// the unit of analysis).
func (s *Session) FindComponents(root *design.Element) []*design.Element {
	var out []*design.Element
	w := design.Walker{
		MaxDepth: s.cfg.MaxDepth,
		Prune: func(el *design.Element, depth int) bool {
			return !el.Visible && depth > 0
		},
	}
	inSet := make(map[string]bool)
	w.Walk(root, func(el *design.Element, _ int) bool {
		switch el.Kind {
		case design.KindComponentSet:
			out = append(out, el)
			for _, c := range el.Children {
				if c != nil {
					inSet[c.ID] = true
				}
			}
		case design.KindComponent:
			if !inSet[el.ID] {
				out = append(out, el)
			}
		}
		return true
	})
	return out
}

// ExtractTokens runs the extraction pass alone and returns the raw
// extraction plus its summary. Used by surfaces that want token data without
// the full pipeline.
func (s *Session) ExtractTokens(ctx context.Context, el *design.Element) (*token.Extraction, token.Summary, error) {
	if el == nil {
		return nil, token.Summary{}, fmt.Errorf("analyzer: nil element")
	}
	extractor := token.NewExtractor(s.resolver, s.logger,
		token.WithMaxDepth(s.cfg.MaxDepth), token.WithLookupFanout(s.cfg.LookupFanout))
	ext := extractor.Extract(ctx, el)
	return ext, token.Summarize(ext), nil
}

// NamingIssues runs the naming pass alone.
func (s *Session) NamingIssues(el *design.Element) []naming.Issue {
	return naming.AnalyzeIssues(el, s.cfg.MaxDepth)
}

// RecommendProperties proposes catalog properties the component does not
// already declare.
func (s *Session) RecommendProperties(ctx context.Context, el *design.Element) ([]reconcile.RecommendedProperty, error) {
	ext, sum, err := s.ExtractTokens(ctx, el)
	if err != nil {
		return nil, err
	}
	gt := reconcile.BuildGroundTruth(el, ext, sum)
	existing := make([]string, 0, len(gt.Properties))
	for _, p := range gt.Properties {
		existing = append(existing, p.Name)
	}
	return reconcile.RecommendProperties(gt.Family, existing), nil
}

// promptInput flattens ground truth into the advisory prompt schema.
func promptInput(gt reconcile.GroundTruth) advisory.PromptInput {
	in := advisory.PromptInput{
		Component:  gt.Component,
		Kind:       string(gt.Kind),
		Family:     string(gt.Family),
		States:     gt.States,
		TokenTotal: gt.Summary.TotalTokens,
	}
	for _, p := range gt.Properties {
		in.Properties = append(in.Properties, p.Name)
	}
	for _, t := range gt.Extraction.All() {
		if t.IsActualToken {
			in.Tokens = append(in.Tokens, t.Name)
		} else {
			in.HardCoded = append(in.HardCoded, t.Value)
		}
	}
	return in
}
