package token

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uiforge/designaudit/pkg/design"
)

// StyleResolver resolves style and variable ids to their published names.
// Lookups may hit the host asynchronously; a failed lookup is recovered at
// the extraction level and contributes no token.
type StyleResolver interface {
	ResolveStyle(ctx context.Context, styleID string) (string, error)
	ResolveVariable(ctx context.Context, variableID string) (string, error)
}

// MapResolver is a StyleResolver backed by in-memory maps. It covers tests
// and documents exported with an embedded style table.
type MapResolver struct {
	Styles    map[string]string
	Variables map[string]string
}

func (m MapResolver) ResolveStyle(_ context.Context, id string) (string, error) {
	if name, ok := m.Styles[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("style %q not found", id)
}

func (m MapResolver) ResolveVariable(_ context.Context, id string) (string, error) {
	if name, ok := m.Variables[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("variable %q not found", id)
}

// Extraction holds the five per-category token lists, insertion-ordered by
// traversal order. The lists are the ground truth every count derives from.
type Extraction struct {
	Colors     []Token `json:"colors"`
	Spacing    []Token `json:"spacing"`
	Typography []Token `json:"typography"`
	Effects    []Token `json:"effects"`
	Borders    []Token `json:"borders"`
}

// List returns the list for one category.
func (e *Extraction) List(c Category) []Token {
	switch c {
	case CategoryColor:
		return e.Colors
	case CategorySpacing:
		return e.Spacing
	case CategoryTypography:
		return e.Typography
	case CategoryEffect:
		return e.Effects
	case CategoryBorder:
		return e.Borders
	default:
		return nil
	}
}

// All returns every token across categories in canonical category order.
func (e *Extraction) All() []Token {
	out := make([]Token, 0, len(e.Colors)+len(e.Spacing)+len(e.Typography)+len(e.Effects)+len(e.Borders))
	for _, c := range Categories() {
		out = append(out, e.List(c)...)
	}
	return out
}

func (e *Extraction) append(t Token) {
	switch t.Category {
	case CategoryColor:
		e.Colors = append(e.Colors, t)
	case CategorySpacing:
		e.Spacing = append(e.Spacing, t)
	case CategoryTypography:
		e.Typography = append(e.Typography, t)
	case CategoryEffect:
		e.Effects = append(e.Effects, t)
	case CategoryBorder:
		e.Borders = append(e.Borders, t)
	}
}

// paddingNoise is the padding magnitude treated as layout noise rather than
// a spacing decision.
const paddingNoise = 1.0

// defaultLookupFanout bounds concurrent resolver lookups per node.
const defaultLookupFanout = 4

// Extractor walks an element tree and emits per-category token lists.
// Create one per analysis pass; the dedup sets are single-use.
type Extractor struct {
	resolver StyleResolver
	logger   *slog.Logger
	walker   design.Walker
	fanout   int

	seen map[Category]map[string]bool
	seq  map[Category]int
	out  Extraction
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxDepth overrides the traversal depth cap.
func WithMaxDepth(d int) ExtractorOption {
	return func(x *Extractor) { x.walker.MaxDepth = d }
}

// WithLookupFanout bounds concurrent resolver lookups issued per node.
func WithLookupFanout(n int) ExtractorOption {
	return func(x *Extractor) {
		if n > 0 {
			x.fanout = n
		}
	}
}

// NewExtractor creates a single-use extractor. resolver may be nil, in which
// case every bound reference is treated as unresolvable and skipped.
func NewExtractor(resolver StyleResolver, logger *slog.Logger, opts ...ExtractorOption) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	x := &Extractor{
		resolver: resolver,
		logger:   logger,
		fanout:   defaultLookupFanout,
		seen:     make(map[Category]map[string]bool),
		seq:      make(map[Category]int),
	}
	for _, c := range Categories() {
		x.seen[c] = make(map[string]bool)
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// lookup is one pending resolver call for a node, folded back in fixed slot
// order so completion order never affects the extracted set.
type lookup struct {
	category Category
	kind     Source // SourceStyle or SourceVariable
	id       string
	name     string
	err      error
}

// Extract walks root and returns the finalized per-category lists.
func (x *Extractor) Extract(ctx context.Context, root *design.Element) *Extraction {
	x.walker.Walk(root, func(el *design.Element, _ int) bool {
		if !el.Visible {
			return true
		}
		x.extractNode(ctx, el)
		return true
	})
	return &x.out
}

func (x *Extractor) extractNode(ctx context.Context, el *design.Element) {
	lookups := x.collectLookups(el)
	x.resolveAll(ctx, lookups)

	// Bound attributes first, in fixed attribute order.
	for i := range lookups {
		lk := &lookups[i]
		if lk.err != nil {
			x.logger.Debug("style lookup failed, skipping attribute",
				"element", el.ID, "id", lk.id, "category", lk.category, "error", lk.err)
			continue
		}
		x.emitActual(lk.category, lk.kind, lk.name)
	}

	// Hard-coded literals for attributes that are not bound.
	bound := boundAttrs(el, lookups)
	x.extractLiterals(el, bound)
}

// collectLookups gathers every style/variable binding the element's kind
// actually exposes, in a fixed attribute order.
func (x *Extractor) collectLookups(el *design.Element) []lookup {
	var out []lookup
	add := func(cat Category, kind Source, id string) {
		if id != "" {
			out = append(out, lookup{category: cat, kind: kind, id: id})
		}
	}

	if el.HasFills() {
		add(CategoryColor, SourceStyle, el.Styles.Fill)
		add(CategoryColor, SourceVariable, el.BoundVariables["fill"])
	}
	if el.HasStrokes() {
		add(CategoryColor, SourceStyle, el.Styles.Stroke)
		add(CategoryColor, SourceVariable, el.BoundVariables["stroke"])
	}
	if el.HasTextContent() {
		add(CategoryTypography, SourceStyle, el.Styles.Text)
	}
	add(CategoryEffect, SourceStyle, el.Styles.Effect)
	add(CategoryBorder, SourceVariable, el.BoundVariables["cornerRadius"])
	add(CategoryBorder, SourceVariable, el.BoundVariables["strokeWeight"])
	if el.HasAutoLayout() {
		add(CategorySpacing, SourceVariable, el.BoundVariables["padding"])
		add(CategorySpacing, SourceVariable, el.BoundVariables["itemSpacing"])
	}
	return out
}

// resolveAll issues resolver calls with bounded fan-out. Each result lands in
// its own slot, so scheduling order cannot reorder the folded output.
func (x *Extractor) resolveAll(ctx context.Context, lookups []lookup) {
	if len(lookups) == 0 {
		return
	}
	if x.resolver == nil {
		for i := range lookups {
			lookups[i].err = fmt.Errorf("no resolver configured")
		}
		return
	}

	sem := make(chan struct{}, x.fanout)
	var wg sync.WaitGroup
	for i := range lookups {
		wg.Add(1)
		sem <- struct{}{}
		go func(lk *lookup) {
			defer wg.Done()
			defer func() { <-sem }()
			if lk.kind == SourceVariable {
				lk.name, lk.err = x.resolver.ResolveVariable(ctx, lk.id)
			} else {
				lk.name, lk.err = x.resolver.ResolveStyle(ctx, lk.id)
			}
		}(&lookups[i])
	}
	wg.Wait()
}

// emitActual appends a style/variable-bound token, deduplicated by binding
// name within its category.
func (x *Extractor) emitActual(cat Category, src Source, name string) {
	if name == "" || x.seen[cat][name] {
		return
	}
	x.seen[cat][name] = true
	x.out.append(Token{
		Name:          name,
		Value:         name,
		Category:      cat,
		Source:        src,
		IsActualToken: true,
	})
}

// emitHardcoded appends a hard-coded token, deduplicated by normalized
// literal within its category.
func (x *Extractor) emitHardcoded(cat Category, literal string) {
	key := "lit:" + literal
	if x.seen[cat][key] {
		return
	}
	x.seen[cat][key] = true
	x.seq[cat]++
	x.out.append(Token{
		Name:          fmt.Sprintf("hardcoded-%s-%d", cat, x.seq[cat]),
		Value:         literal,
		Category:      cat,
		Source:        SourceHardcoded,
		IsActualToken: false,
	})
}

func boundAttrs(el *design.Element, lookups []lookup) map[string]bool {
	bound := make(map[string]bool, len(lookups))
	if el.Styles.Fill != "" || el.BoundVariables["fill"] != "" {
		bound["fill"] = true
	}
	if el.Styles.Stroke != "" || el.BoundVariables["stroke"] != "" {
		bound["stroke"] = true
	}
	if el.Styles.Text != "" {
		bound["text"] = true
	}
	if el.Styles.Effect != "" {
		bound["effect"] = true
	}
	if el.BoundVariables["cornerRadius"] != "" {
		bound["cornerRadius"] = true
	}
	if el.BoundVariables["strokeWeight"] != "" {
		bound["strokeWeight"] = true
	}
	if el.BoundVariables["padding"] != "" {
		bound["padding"] = true
	}
	if el.BoundVariables["itemSpacing"] != "" {
		bound["itemSpacing"] = true
	}
	return bound
}

func (x *Extractor) extractLiterals(el *design.Element, bound map[string]bool) {
	if !bound["fill"] {
		if fill, ok := el.FirstVisibleFill(); ok {
			x.emitHardcoded(CategoryColor, NormalizeHex(*fill.Color))
		}
	}
	if !bound["stroke"] && el.HasStrokes() {
		for _, s := range el.Strokes {
			if s.Visible && s.Color != nil {
				x.emitHardcoded(CategoryColor, NormalizeHex(*s.Color))
				break
			}
		}
	}
	if !bound["text"] && el.HasTextContent() && el.TextStyle != nil {
		x.emitHardcoded(CategoryTypography, NormalizeTypography(*el.TextStyle))
	}
	if !bound["effect"] {
		for _, ef := range el.Effects {
			if ef.Visible {
				x.emitHardcoded(CategoryEffect, fmt.Sprintf("%s-%s", ef.Type, NormalizePx(ef.Radius)))
			}
		}
	}
	if !bound["cornerRadius"] && el.CornerRadius > 0 {
		x.emitHardcoded(CategoryBorder, NormalizePx(el.CornerRadius))
	}
	// A stroke weight without a visible stroke paint draws nothing.
	if !bound["strokeWeight"] && el.StrokeWeight > 0 && el.VisibleStroke() {
		x.emitHardcoded(CategoryBorder, NormalizePx(el.StrokeWeight))
	}
	if el.HasAutoLayout() {
		if !bound["padding"] {
			for _, v := range el.Padding.Values() {
				if v > paddingNoise {
					x.emitHardcoded(CategorySpacing, NormalizePx(v))
				}
			}
		}
		if !bound["itemSpacing"] && el.ItemSpacing > paddingNoise {
			x.emitHardcoded(CategorySpacing, NormalizePx(el.ItemSpacing))
		}
	}
}
