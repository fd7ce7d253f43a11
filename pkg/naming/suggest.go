package naming

import (
	"strings"

	"github.com/uiforge/designaudit/pkg/design"
)

// shortTextLimit is the length under which a text layer's content is usable
// as its name directly.
const shortTextLimit = 25

// textBuckets classify long text content by keyword; checked in order.
var textBuckets = []struct {
	keywords []string
	name     string
}{
	{[]string{"error", "failed", "invalid", "wrong"}, "Error Message"},
	{[]string{"success", "completed", "saved", "done"}, "Success Message"},
	{[]string{"click", "submit", "cancel", "continue", "confirm"}, "Button Label"},
	{[]string{"learn more", "read more", "see all", "view"}, "Link Text"},
	{[]string{"welcome", "introducing", "get started"}, "Heading"},
	{[]string{"enter", "type", "your"}, "Label"},
}

// SuggestName proposes a descriptive replacement for an element's layer
// name, derived from content, structure, and the detected semantic type.
func SuggestName(el *design.Element) string {
	switch {
	case el.HasTextContent():
		return suggestTextName(el)
	case el.IsVectorLike():
		return suggestIconName(el)
	case el.IsComposite():
		return suggestContainerName(el)
	default:
		switch DetectSemanticType(el) {
		case TypeImage:
			return "Image"
		case TypeDivider:
			return "Divider"
		case TypeSpacer:
			return "Spacer"
		default:
			return cleanName(el.Name, "Element")
		}
	}
}

func suggestTextName(el *design.Element) string {
	content := strings.TrimSpace(el.Characters)
	if content == "" {
		return "Text"
	}
	if len(content) <= shortTextLimit {
		return content
	}
	lower := strings.ToLower(content)
	for _, bucket := range textBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.name
			}
		}
	}
	words := strings.Fields(content)
	if len(words) >= 2 {
		return words[0] + " " + words[1]
	}
	return words[0]
}

func suggestIconName(el *design.Element) string {
	if cleaned := cleanName(el.Name, ""); cleaned != "" && !IsGenericName(cleaned) {
		return ensureSuffix(cleaned, "icon")
	}
	// Child-shape inspection.
	for _, c := range el.Children {
		if c == nil {
			continue
		}
		switch c.Kind {
		case design.KindEllipse:
			return "circle-icon"
		case design.KindStar:
			return "star-icon"
		case design.KindRect, design.KindPolygon:
			return "shape-icon"
		}
	}
	// Elongated vectors usually draw arrows.
	if el.Height > 0 && (el.Width/el.Height >= 3 || el.Height/el.Width >= 3) {
		return "arrow-icon"
	}
	return "icon"
}

func suggestContainerName(el *design.Element) string {
	typ := DetectSemanticType(el)
	prefix := string(typ)
	if typ == TypeUnknown || typ == TypeContainer {
		prefix = "container"
	}

	// Refine with the first text child's content.
	if textChild := firstTextChild(el); textChild != nil {
		if label := shortLabel(textChild.Characters); label != "" {
			return prefix + "-" + label
		}
	}
	// Buttons and inputs without text are often identified by their icon.
	if typ == TypeButton || typ == TypeInput {
		for _, c := range el.Children {
			if c != nil && c.IsVectorLike() {
				if label := shortLabel(cleanName(c.Name, "")); label != "" {
					return prefix + "-" + label
				}
			}
		}
	}
	return prefix
}

func firstTextChild(el *design.Element) *design.Element {
	for _, c := range el.Children {
		if c != nil && c.HasTextContent() {
			return c
		}
	}
	return nil
}

// shortLabel kebab-cases the first two words of a string, or returns "" when
// there is nothing usable.
func shortLabel(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	if len(words) == 0 {
		return ""
	}
	if len(words) > 2 {
		words = words[:2]
	}
	label := strings.ToLower(strings.Join(words, "-"))
	label = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, label)
	return strings.Trim(label, "-")
}

// cleanName strips trailing counters, separators, and generic stems from an
// existing name, returning fallback when nothing meaningful remains.
func cleanName(name, fallback string) string {
	s := TrimNumberedSuffix(name)
	s = strings.NewReplacer("_", " ", "/", " ", ".", " ").Replace(s)
	words := strings.Fields(s)
	var kept []string
	for _, w := range words {
		lower := strings.ToLower(w)
		generic := false
		for _, g := range genericWords {
			if lower == g {
				generic = true
				break
			}
		}
		if !generic && !pureNumberRe.MatchString(w) {
			kept = append(kept, lower)
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, "-")
}

func ensureSuffix(s, suffix string) string {
	if strings.HasSuffix(strings.ToLower(s), suffix) {
		return s
	}
	return s + "-" + suffix
}
