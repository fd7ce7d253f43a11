package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/uiforge/designaudit/pkg/design"
)

// Strategy selects a batch rename transform.
type Strategy string

const (
	StrategySemantic Strategy = "semantic"
	StrategyBEM      Strategy = "bem"
	StrategyPrefix   Strategy = "prefix"
	StrategyCase     Strategy = "case"
)

// CaseConvention selects the casing used by StrategyCase.
type CaseConvention string

const (
	CaseKebab  CaseConvention = "kebab"
	CaseSnake  CaseConvention = "snake"
	CaseCamel  CaseConvention = "camel"
	CasePascal CaseConvention = "pascal"
)

// RenameOptions configures a batch rename pass.
type RenameOptions struct {
	Strategy Strategy
	// Prefix is the prefix applied by StrategyPrefix.
	Prefix string
	// Case is the convention applied by StrategyCase. Defaults to kebab.
	Case CaseConvention
	// Block is the BEM block name; defaults to the root's cleaned name.
	Block string
	// MaxDepth bounds the traversal. Zero means design.DefaultMaxDepth.
	MaxDepth int
}

// RenameOp is one element rename in a plan.
type RenameOp struct {
	ElementID string `json:"elementId"`
	OldName   string `json:"oldName"`
	NewName   string `json:"newName"`
}

// PlanRenames computes the batch rename plan for a tree. PreviewRenames is an
// alias for the same function: the dry-run preview and the applied plan are
// by construction the same transform, so a preview is always truthful.
func PlanRenames(root *design.Element, opts RenameOptions) ([]RenameOp, error) {
	transform, err := transformFor(root, opts)
	if err != nil {
		return nil, err
	}

	var ops []RenameOp
	dupes := make(map[string]int)
	w := design.Walker{MaxDepth: opts.MaxDepth}
	w.Walk(root, func(el *design.Element, depth int) bool {
		newName := transform(el, depth)
		if newName == "" || newName == el.Name {
			return true
		}
		// Disambiguate collisions within one plan deterministically.
		dupes[newName]++
		if n := dupes[newName]; n > 1 {
			newName = fmt.Sprintf("%s-%d", newName, n)
		}
		ops = append(ops, RenameOp{ElementID: el.ID, OldName: el.Name, NewName: newName})
		return true
	})
	return ops, nil
}

// PreviewRenames returns the exact plan PlanRenames would produce.
func PreviewRenames(root *design.Element, opts RenameOptions) ([]RenameOp, error) {
	return PlanRenames(root, opts)
}

type transformFunc func(el *design.Element, depth int) string

func transformFor(root *design.Element, opts RenameOptions) (transformFunc, error) {
	switch opts.Strategy {
	case StrategySemantic, "":
		return func(el *design.Element, _ int) string {
			if IsGenericName(el.Name) || HasNumberedSuffix(el.Name) {
				return SuggestName(el)
			}
			return el.Name
		}, nil

	case StrategyBEM:
		block := opts.Block
		if block == "" {
			block = cleanName(root.Name, "component")
		}
		return func(el *design.Element, depth int) string {
			if depth == 0 {
				return block
			}
			elem := string(DetectSemanticType(el))
			if elem == string(TypeUnknown) {
				elem = "part"
			}
			return block + "__" + elem
		}, nil

	case StrategyPrefix:
		if strings.TrimSpace(opts.Prefix) == "" {
			return nil, fmt.Errorf("prefix strategy requires a prefix")
		}
		prefix := strings.TrimRight(opts.Prefix, "/-_")
		return func(el *design.Element, _ int) string {
			if strings.HasPrefix(el.Name, prefix+"/") {
				return el.Name
			}
			return prefix + "/" + el.Name
		}, nil

	case StrategyCase:
		conv := opts.Case
		if conv == "" {
			conv = CaseKebab
		}
		return func(el *design.Element, _ int) string {
			return ConvertCase(el.Name, conv)
		}, nil

	default:
		return nil, fmt.Errorf("unknown rename strategy %q", opts.Strategy)
	}
}

// ConvertCase re-cases a layer name under the given convention. Word splits
// happen on whitespace, separators, and lower-to-upper transitions.
func ConvertCase(name string, conv CaseConvention) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}
	switch conv {
	case CaseSnake:
		return strings.Join(words, "_")
	case CaseCamel:
		out := words[0]
		for _, w := range words[1:] {
			out += capitalize(w)
		}
		return out
	case CasePascal:
		var out string
		for _, w := range words {
			out += capitalize(w)
		}
		return out
	default: // kebab
		return strings.Join(words, "-")
	}
}

func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '/' || r == '.':
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
