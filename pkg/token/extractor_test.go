package token

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/designaudit/pkg/design"
)

// --- helpers ---

var (
	red  = design.Color{R: 1, A: 1}
	blue = design.Color{B: 1, A: 1}
)

func rectWithFill(id string, c design.Color) *design.Element {
	col := c
	return &design.Element{
		ID: id, Kind: design.KindRect, Name: id, Visible: true,
		Fills: []design.Paint{{Type: "SOLID", Visible: true, Color: &col}},
	}
}

func container(id string, children ...*design.Element) *design.Element {
	return &design.Element{
		ID: id, Kind: design.KindFrame, Name: id, Visible: true, Children: children,
	}
}

func extract(t *testing.T, resolver StyleResolver, root *design.Element) *Extraction {
	t.Helper()
	x := NewExtractor(resolver, nil)
	return x.Extract(context.Background(), root)
}

// failingResolver errors on every lookup.
type failingResolver struct{}

func (failingResolver) ResolveStyle(context.Context, string) (string, error) {
	return "", fmt.Errorf("host unavailable")
}
func (failingResolver) ResolveVariable(context.Context, string) (string, error) {
	return "", fmt.Errorf("host unavailable")
}

// --- hard-coded extraction and dedup ---

func TestExtract_HardcodedColor(t *testing.T) {
	ext := extract(t, nil, container("root", rectWithFill("r1", red)))

	require.Len(t, ext.Colors, 1)
	tok := ext.Colors[0]
	assert.Equal(t, "#ff0000", tok.Value)
	assert.Equal(t, SourceHardcoded, tok.Source)
	assert.False(t, tok.IsActualToken)
	assert.Equal(t, "hardcoded-color-1", tok.Name)
}

func TestExtract_IdenticalLiteralsDedupToOne(t *testing.T) {
	root := container("root",
		rectWithFill("r1", red),
		rectWithFill("r2", red),
		rectWithFill("r3", blue),
	)
	ext := extract(t, nil, root)

	require.Len(t, ext.Colors, 2)
	assert.Equal(t, "#ff0000", ext.Colors[0].Value)
	assert.Equal(t, "#0000ff", ext.Colors[1].Value)
}

func TestExtract_DistinctVariablesSameValueStayDistinct(t *testing.T) {
	// Two variables may resolve to the same underlying color; they are
	// distinct design decisions and both are kept.
	resolver := MapResolver{Variables: map[string]string{
		"v1": "brand/primary",
		"v2": "brand/secondary",
	}}
	r1 := rectWithFill("r1", red)
	r1.BoundVariables = map[string]string{"fill": "v1"}
	r2 := rectWithFill("r2", red)
	r2.BoundVariables = map[string]string{"fill": "v2"}

	ext := extract(t, resolver, container("root", r1, r2))

	require.Len(t, ext.Colors, 2)
	assert.Equal(t, "brand/primary", ext.Colors[0].Name)
	assert.Equal(t, "brand/secondary", ext.Colors[1].Name)
	assert.True(t, ext.Colors[0].IsActualToken)
	assert.Equal(t, SourceVariable, ext.Colors[0].Source)
}

func TestExtract_SameBindingNameDedups(t *testing.T) {
	resolver := MapResolver{Variables: map[string]string{"v1": "brand/primary"}}
	r1 := rectWithFill("r1", red)
	r1.BoundVariables = map[string]string{"fill": "v1"}
	r2 := rectWithFill("r2", red)
	r2.BoundVariables = map[string]string{"fill": "v1"}

	ext := extract(t, resolver, container("root", r1, r2))
	assert.Len(t, ext.Colors, 1)
}

func TestExtract_BoundFillSuppressesLiteral(t *testing.T) {
	resolver := MapResolver{Styles: map[string]string{"s1": "color/surface"}}
	r := rectWithFill("r1", red)
	r.Styles.Fill = "s1"

	ext := extract(t, resolver, container("root", r))

	require.Len(t, ext.Colors, 1)
	assert.Equal(t, "color/surface", ext.Colors[0].Name)
	assert.True(t, ext.Colors[0].IsActualToken)
}

func TestExtract_FailedLookupContributesNothing(t *testing.T) {
	r := rectWithFill("r1", red)
	r.Styles.Fill = "s-unknown"

	ext := extract(t, failingResolver{}, container("root", r))

	// The binding exists, so no hard-coded fallback either.
	assert.Empty(t, ext.Colors)
}

func TestExtract_InvisibleElementSkipped(t *testing.T) {
	hidden := rectWithFill("r1", red)
	hidden.Visible = false

	ext := extract(t, nil, container("root", hidden))
	assert.Empty(t, ext.Colors)
}

// --- border and stroke rules ---

func TestExtract_StrokeWeightNeedsVisibleStroke(t *testing.T) {
	noStroke := &design.Element{
		ID: "r1", Kind: design.KindRect, Name: "r1", Visible: true,
		StrokeWeight: 2,
	}
	ext := extract(t, nil, container("root", noStroke))
	assert.Empty(t, ext.Borders)

	stroked := &design.Element{
		ID: "r2", Kind: design.KindRect, Name: "r2", Visible: true,
		StrokeWeight: 2,
		Strokes:      []design.Paint{{Visible: true, Color: &red}},
	}
	ext = extract(t, nil, container("root", stroked))
	// Stroke color plus stroke weight.
	require.Len(t, ext.Borders, 1)
	assert.Equal(t, "2px", ext.Borders[0].Value)
	require.Len(t, ext.Colors, 1)
}

func TestExtract_CornerRadius(t *testing.T) {
	r := &design.Element{ID: "r1", Kind: design.KindRect, Name: "r1", Visible: true, CornerRadius: 8}
	ext := extract(t, nil, container("root", r))
	require.Len(t, ext.Borders, 1)
	assert.Equal(t, "8px", ext.Borders[0].Value)
}

// --- spacing rules ---

func TestExtract_PaddingNoiseIgnored(t *testing.T) {
	el := container("root")
	el.LayoutMode = design.LayoutHorizontal
	el.Padding = design.Padding{Left: 1, Right: 16, Top: 0.5, Bottom: 16}
	el.ItemSpacing = 0.5

	ext := extract(t, nil, el)

	// 16 appears twice but dedups; 1 and 0.5 are noise.
	require.Len(t, ext.Spacing, 1)
	assert.Equal(t, "16px", ext.Spacing[0].Value)
}

func TestExtract_SpacingRequiresAutoLayout(t *testing.T) {
	el := container("root")
	el.Padding = design.Padding{Left: 16}
	el.ItemSpacing = 8

	ext := extract(t, nil, el)
	assert.Empty(t, ext.Spacing)
}

// --- typography and effects ---

func TestExtract_TypographyLiteral(t *testing.T) {
	text := &design.Element{
		ID: "t1", Kind: design.KindText, Name: "Label", Visible: true,
		Characters: "Hi",
		TextStyle:  &design.TypeStyle{FontFamily: "Inter", FontSize: 14, FontWeight: 500},
	}
	ext := extract(t, nil, container("root", text))
	require.Len(t, ext.Typography, 1)
	assert.Equal(t, "inter/14/500", ext.Typography[0].Value)
}

func TestExtract_EffectLiteral(t *testing.T) {
	r := &design.Element{
		ID: "r1", Kind: design.KindRect, Name: "r1", Visible: true,
		Effects: []design.Effect{{Type: "DROP_SHADOW", Visible: true, Radius: 4}},
	}
	ext := extract(t, nil, container("root", r))
	require.Len(t, ext.Effects, 1)
	assert.Equal(t, "DROP_SHADOW-4px", ext.Effects[0].Value)
}

// --- summary invariant ---

func TestSummarize_CountsMatchLists(t *testing.T) {
	resolver := MapResolver{Variables: map[string]string{"v1": "brand/primary"}}
	bound := rectWithFill("r1", red)
	bound.BoundVariables = map[string]string{"fill": "v1"}

	root := container("root",
		bound,
		rectWithFill("r2", blue),
		&design.Element{
			ID: "t1", Kind: design.KindText, Name: "Label", Visible: true,
			Characters: "Hi",
			TextStyle:  &design.TypeStyle{FontFamily: "Inter", FontSize: 14, FontWeight: 500},
		},
	)
	ext := extract(t, resolver, root)
	sum := Summarize(ext)

	listTotal := 0
	for _, c := range Categories() {
		listTotal += len(ext.List(c))
		assert.Equal(t, len(ext.List(c)), sum.ByCategory[c].Total)
	}
	assert.Equal(t, listTotal, sum.TotalTokens)
	assert.Equal(t, sum.TotalTokens, sum.ActualTokens+sum.HardCodedValues+sum.AISuggestions)
	assert.Equal(t, 1, sum.ActualTokens)
	assert.Equal(t, 2, sum.HardCodedValues)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(&Extraction{})
	assert.Zero(t, sum.TotalTokens)
	assert.Len(t, sum.ByCategory, 5)
}

// --- determinism ---

func TestExtract_Deterministic(t *testing.T) {
	resolver := MapResolver{
		Styles:    map[string]string{"s1": "color/surface", "s2": "effect/raised"},
		Variables: map[string]string{"v1": "space/md"},
	}
	build := func() *design.Element {
		r := rectWithFill("r1", red)
		r.Styles.Fill = "s1"
		r.Styles.Effect = "s2"
		box := container("box", r, rectWithFill("r2", blue))
		box.LayoutMode = design.LayoutVertical
		box.BoundVariables = map[string]string{"itemSpacing": "v1"}
		return container("root", box)
	}

	first := extract(t, resolver, build())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extract(t, resolver, build()))
	}
}
