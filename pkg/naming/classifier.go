// Package naming infers semantic element types from names and structure,
// flags low-quality layer names, and generates rename suggestions.
package naming

import (
	"regexp"
	"strings"

	"github.com/uiforge/designaudit/pkg/design"
)

// SemanticType is the inferred role of an element in the design.
type SemanticType string

const (
	TypeText      SemanticType = "text"
	TypeIcon      SemanticType = "icon"
	TypeImage     SemanticType = "image"
	TypeDivider   SemanticType = "divider"
	TypeSpacer    SemanticType = "spacer"
	TypeButton    SemanticType = "button"
	TypeCard      SemanticType = "card"
	TypeList      SemanticType = "list"
	TypeInput     SemanticType = "input"
	TypeNav       SemanticType = "nav"
	TypeContainer SemanticType = "container"
	TypeUnknown   SemanticType = "unknown"
)

// genericWords are the default layer-name stems editors assign automatically.
var genericWords = []string{
	"frame", "group", "rectangle", "ellipse", "line", "vector", "polygon",
	"star", "text", "component", "instance", "image", "boolean", "slice",
	"union", "subtract", "intersect", "exclude", "layer", "shape",
}

var (
	trailingNumberRe = regexp.MustCompile(`\s+\d+$`)
	pureNumberRe     = regexp.MustCompile(`^\d+$`)
)

// IsGenericName reports whether a layer name is an editor default: a generic
// kind word with an optional trailing number, a single character, or a purely
// numeric name.
func IsGenericName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len([]rune(trimmed)) == 1 {
		return true
	}
	if pureNumberRe.MatchString(trimmed) {
		return true
	}
	base := strings.ToLower(strings.TrimSpace(trailingNumberRe.ReplaceAllString(trimmed, "")))
	for _, w := range genericWords {
		if base == w {
			return true
		}
	}
	return false
}

// HasNumberedSuffix reports whether the name ends in whitespace plus digits,
// the pattern duplicate layers pick up.
func HasNumberedSuffix(name string) bool {
	return trailingNumberRe.MatchString(strings.TrimSpace(name))
}

// TrimNumberedSuffix returns the name without its trailing counter.
func TrimNumberedSuffix(name string) string {
	return strings.TrimSpace(trailingNumberRe.ReplaceAllString(strings.TrimSpace(name), ""))
}

// keywordEntry is one ordered keyword-table row; first match wins.
type keywordEntry struct {
	keyword string
	typ     SemanticType
}

var keywordTable = []keywordEntry{
	{"button", TypeButton},
	{"btn", TypeButton},
	{"cta", TypeButton},
	{"icon", TypeIcon},
	{"input", TypeInput},
	{"field", TypeInput},
	{"textbox", TypeInput},
	{"search", TypeInput},
	{"card", TypeCard},
	{"tile", TypeCard},
	{"nav", TypeNav},
	{"menu", TypeNav},
	{"tabbar", TypeNav},
	{"toolbar", TypeNav},
	{"list", TypeList},
	{"divider", TypeDivider},
	{"separator", TypeDivider},
	{"spacer", TypeSpacer},
	{"avatar", TypeImage},
	{"photo", TypeImage},
	{"img", TypeImage},
	{"picture", TypeImage},
	{"label", TypeText},
	{"heading", TypeText},
	{"title", TypeText},
	{"caption", TypeText},
}

// DetectSemanticType infers the role of an element. The ordered keyword table
// is consulted first; structure and kind heuristics decide the rest.
func DetectSemanticType(el *design.Element) SemanticType {
	lower := strings.ToLower(el.Name)
	for _, entry := range keywordTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.typ
		}
	}

	switch {
	case el.HasTextContent():
		return TypeText
	case el.IsVectorLike():
		return TypeIcon
	case el.Kind == design.KindRect, el.Kind == design.KindEllipse, el.Kind == design.KindLine:
		return classifyShape(el)
	case el.IsComposite():
		return classifyComposite(el)
	default:
		return TypeUnknown
	}
}

// classifyShape decides what a bare drawn shape is standing in for.
func classifyShape(el *design.Element) SemanticType {
	if el.HasImageFill() {
		return TypeImage
	}
	w, h := el.Width, el.Height
	longSide, shortSide := w, h
	if h > w {
		longSide, shortSide = h, w
	}
	switch {
	case shortSide <= 4 && longSide >= shortSide*8:
		return TypeDivider
	case longSide <= 16 && shortSide > 0 && longSide/shortSide < 1.5:
		return TypeSpacer
	default:
		return TypeUnknown
	}
}

// classifyComposite applies the structural heuristics for container nodes.
func classifyComposite(el *design.Element) SemanticType {
	children := el.Children
	textChildren := 0
	iconChildren := 0
	imageChildren := 0
	kindCounts := make(map[design.Kind]int)
	for _, c := range children {
		if c == nil {
			continue
		}
		kindCounts[c.Kind]++
		switch {
		case c.HasTextContent():
			textChildren++
		case c.IsVectorLike():
			iconChildren++
		case c.HasImageFill():
			imageChildren++
		}
	}
	maxSameKind := 0
	for _, n := range kindCounts {
		if n > maxSameKind {
			maxSameKind = n
		}
	}

	small := el.Height > 0 && el.Height <= 64 && el.Width <= 360
	hasText := textChildren > 0
	hasIcon := iconChildren > 0

	switch {
	case small && el.HasAutoLayout() && hasText && (hasIcon || len(children) <= 3):
		return TypeButton
	case hasText && imageChildren > 0 && len(children) >= 2:
		return TypeCard
	case maxSameKind >= 3:
		return TypeList
	case small && el.CornerRadius > 0 && len(children) <= 2 && hasText:
		return TypeInput
	case el.LayoutMode == design.LayoutHorizontal && len(children) >= 3 && el.Height > 0 && el.Height <= 96:
		return TypeNav
	default:
		return TypeContainer
	}
}
