package naming

import (
	"strings"

	"github.com/uiforge/designaudit/pkg/design"
)

// Severity grades a naming issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one flagged layer name with its suggested replacement.
type Issue struct {
	ElementID     string       `json:"elementId"`
	CurrentName   string       `json:"currentName"`
	SuggestedName string       `json:"suggestedName"`
	Severity      Severity     `json:"severity"`
	SemanticType  SemanticType `json:"semanticType"`
	Depth         int          `json:"depth"`
	Path          string       `json:"path"`
}

// AnalyzeIssues walks the tree and flags generic names (error) and
// numbered-suffix names (warning), attaching the semantic type and a
// breadcrumb path for each.
func AnalyzeIssues(root *design.Element, maxDepth int) []Issue {
	if maxDepth <= 0 {
		maxDepth = design.DefaultMaxDepth
	}

	var issues []Issue
	// Breadcrumbs track the current ancestor chain; the walk is pre-order
	// so trimming to the node's depth restores the right prefix.
	crumbs := make([]string, 0, maxDepth+1)

	w := design.Walker{MaxDepth: maxDepth}
	w.Walk(root, func(el *design.Element, depth int) bool {
		crumbs = append(crumbs[:depth], el.Name)
		path := strings.Join(crumbs, " / ")

		switch {
		case IsGenericName(el.Name):
			issues = append(issues, Issue{
				ElementID:     el.ID,
				CurrentName:   el.Name,
				SuggestedName: SuggestName(el),
				Severity:      SeverityError,
				SemanticType:  DetectSemanticType(el),
				Depth:         depth,
				Path:          path,
			})
		case HasNumberedSuffix(el.Name):
			suggested := TrimNumberedSuffix(el.Name)
			if IsGenericName(suggested) {
				suggested = SuggestName(el)
			}
			issues = append(issues, Issue{
				ElementID:     el.ID,
				CurrentName:   el.Name,
				SuggestedName: suggested,
				Severity:      SeverityWarning,
				SemanticType:  DetectSemanticType(el),
				Depth:         depth,
				Path:          path,
			})
		}
		return true
	})
	return issues
}
