package reconcile

import (
	"fmt"

	"github.com/uiforge/designaudit/pkg/advisory"
	"github.com/uiforge/designaudit/pkg/naming"
)

// Engine reconciles advisory candidates against extracted ground truth.
// Structural facts always come from ground truth; the candidate contributes
// prose only.
type Engine struct{}

// ValidateConsistency reports whether the candidate's declared structural
// facts agree with ground truth and with the authoritative token summary.
// A false result is not fatal: it routes the candidate through the
// correction path.
func (Engine) ValidateConsistency(c *advisory.Candidate, gt GroundTruth) (bool, []string) {
	var reasons []string

	if len(c.Props) != len(gt.Properties) {
		reasons = append(reasons, fmt.Sprintf("candidate declares %d properties, ground truth has %d", len(c.Props), len(gt.Properties)))
	}
	if len(c.States) != len(gt.States) {
		reasons = append(reasons, fmt.Sprintf("candidate declares %d states, ground truth has %d", len(c.States), len(gt.States)))
	}
	if c.Counts != nil {
		if c.Counts.Tokens != gt.Summary.TotalTokens {
			reasons = append(reasons, fmt.Sprintf("candidate counts %d tokens, summary has %d", c.Counts.Tokens, gt.Summary.TotalTokens))
		}
		if c.Counts.Properties != len(gt.Properties) {
			reasons = append(reasons, fmt.Sprintf("candidate counts %d properties, ground truth has %d", c.Counts.Properties, len(gt.Properties)))
		}
		if c.Counts.States != len(gt.States) {
			reasons = append(reasons, fmt.Sprintf("candidate counts %d states, ground truth has %d", c.Counts.States, len(gt.States)))
		}
	}
	return len(reasons) == 0, reasons
}

// ApplyCorrections builds the reconciled metadata: ground truth overwrites
// every structural field, candidate prose is kept, and readiness is
// recomputed from the fixed feature set. The function is deterministic and
// idempotent in (candidate, ground truth).
func (e Engine) ApplyCorrections(c *advisory.Candidate, gt GroundTruth, issues []naming.Issue) Metadata {
	md := Metadata{
		Component: gt.Component,
		Props:     gt.Properties,
		States:    gt.States,
		Tokens:    gt.Extraction,
		Audit: Audit{
			TokenSummary: gt.Summary,
			NamingIssues: issues,
		},
	}
	if len(md.States) == 0 {
		md.States = []string{"default"}
	}
	md.Variants = variantMap(gt.Properties)

	if c != nil {
		md.Description = c.Description
		md.Usage = c.Usage
		md.Accessibility = c.Accessibility
		md.Slots = DedupePhrases(c.Slots)
	}
	if md.Description == "" {
		md.Description = fmt.Sprintf("%s component (%s family)", gt.Component, gt.Family)
	}

	md.Readiness = e.scoreReadiness(c, gt, issues)
	return md
}

func variantMap(props []Property) map[string][]string {
	if len(props) == 0 {
		return nil
	}
	m := make(map[string][]string, len(props))
	for _, p := range props {
		if len(p.Values) > 1 {
			m[p.Name] = p.Values
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// Readiness feature weights. The split encodes a product judgment; the
// direction (more ground-truth signal, higher score) is what matters.
const (
	weightTokens     = 25
	weightProperties = 25
	weightStates     = 20
	weightNaming     = 15
	weightBoundary   = 15
)

// scoreReadiness computes the readiness assessment from the fixed feature
// set. A candidate-supplied score is used only when it is internally
// consistent with the candidate's own strengths/gaps balance.
func (e Engine) scoreReadiness(c *advisory.Candidate, gt GroundTruth, issues []naming.Issue) Readiness {
	var r Readiness

	// Token binding ratio.
	if gt.Summary.TotalTokens > 0 {
		ratio := float64(gt.Summary.ActualTokens) / float64(gt.Summary.TotalTokens)
		r.Score += int(ratio * weightTokens)
		if ratio >= 0.8 {
			r.Strengths = append(r.Strengths, "Styles are mostly bound to design tokens")
		} else {
			r.Gaps = append(r.Gaps, "Replace hard-coded values with design tokens")
		}
	} else {
		r.Gaps = append(r.Gaps, "No style values extracted")
	}

	// Properties.
	if len(gt.Properties) > 0 {
		r.Score += weightProperties
		r.Strengths = append(r.Strengths, "Component properties are defined")
	} else {
		r.Gaps = append(r.Gaps, "Add missing component properties")
	}

	// States: interactive families need real coverage.
	switch {
	case gt.Family.Interactive() && len(gt.States) >= 3:
		r.Score += weightStates
		r.Strengths = append(r.Strengths, "Interaction states are covered")
	case gt.Family.Interactive():
		r.Gaps = append(r.Gaps, "Add interaction state variants")
	case len(gt.States) >= 1:
		r.Score += weightStates
	}

	// Naming quality.
	if !naming.IsGenericName(gt.Component) {
		r.Score += weightNaming
		r.Strengths = append(r.Strengths, "Component name is descriptive")
	} else {
		r.Gaps = append(r.Gaps, "Rename generic layers descriptively")
	}

	// Clear component boundary.
	if gt.Kind == "component" || gt.Kind == "component-set" || gt.Kind == "instance" {
		r.Score += weightBoundary
	} else {
		r.Gaps = append(r.Gaps, "Promote the element to a component")
	}

	if len(issues) > 0 {
		r.Recommendations = append(r.Recommendations, "Rename generic layers descriptively")
	}

	// Merge candidate prose into strengths/gaps/recommendations, then
	// collapse duplicates to canonical phrasings.
	if c != nil {
		r.Strengths = append(r.Strengths, c.Readiness.Strengths...)
		r.Gaps = append(r.Gaps, c.Readiness.Gaps...)
		r.Recommendations = append(r.Recommendations, c.Readiness.Recommendations...)

		if candidateScoreConsistent(c.Readiness) {
			r.Score = clampScore(c.Readiness.Score)
		}
	}

	r.Strengths = DedupePhrases(r.Strengths)
	r.Gaps = DedupePhrases(r.Gaps)
	r.Recommendations = DedupePhrases(r.Recommendations)
	r.Score = clampScore(r.Score)
	return r
}

// candidateScoreConsistent checks the candidate's number against its own
// stated strengths/gaps: a high score with more gaps than strengths, or a
// low score with more strengths than gaps, is self-contradictory.
func candidateScoreConsistent(cr advisory.CandidateReadiness) bool {
	if cr.Score <= 0 || cr.Score > 100 {
		return false
	}
	if cr.Score >= 70 && len(cr.Gaps) > len(cr.Strengths) {
		return false
	}
	if cr.Score <= 30 && len(cr.Strengths) > len(cr.Gaps) {
		return false
	}
	return len(cr.Strengths) > 0 || len(cr.Gaps) > 0
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
