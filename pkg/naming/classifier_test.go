package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uiforge/designaudit/pkg/design"
)

// --- IsGenericName ---

func TestIsGenericName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Rectangle 2", true},
		{"Frame 123", true},
		{"Group", true},
		{"ellipse", true},
		{"Union", true},
		{"42", true},
		{"x", true},
		{"  ", true},
		{"Submit Button", false},
		{"PrimaryCard", false},
		{"nav-bar", false},
		{"Icon 3", false}, // numbered but the stem "Icon" is meaningful
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsGenericName(tc.name), "IsGenericName(%q)", tc.name)
	}
}

func TestNumberedSuffix(t *testing.T) {
	assert.True(t, HasNumberedSuffix("Icon 3"))
	assert.True(t, HasNumberedSuffix("Submit Button 12"))
	assert.False(t, HasNumberedSuffix("Icon3"))
	assert.False(t, HasNumberedSuffix("Icon"))

	assert.Equal(t, "Icon", TrimNumberedSuffix("Icon 3"))
	assert.Equal(t, "Submit Button", TrimNumberedSuffix("Submit Button 12"))
}

// --- DetectSemanticType ---

func TestDetectSemanticType_Keywords(t *testing.T) {
	cases := []struct {
		name string
		want SemanticType
	}{
		{"Primary Button", TypeButton},
		{"btn-submit", TypeButton},
		{"Search Field", TypeInput},
		{"Product Card", TypeCard},
		{"Sidebar Menu", TypeNav},
		{"section-divider", TypeDivider},
		{"User Avatar", TypeImage},
		{"page-title", TypeText},
	}
	for _, tc := range cases {
		el := &design.Element{Kind: design.KindFrame, Name: tc.name}
		assert.Equal(t, tc.want, DetectSemanticType(el), "name %q", tc.name)
	}
}

func TestDetectSemanticType_Shapes(t *testing.T) {
	divider := &design.Element{Kind: design.KindRect, Name: "Rectangle 5", Width: 320, Height: 2}
	assert.Equal(t, TypeDivider, DetectSemanticType(divider))

	spacer := &design.Element{Kind: design.KindRect, Name: "Rectangle 6", Width: 12, Height: 12}
	assert.Equal(t, TypeSpacer, DetectSemanticType(spacer))

	image := &design.Element{
		Kind: design.KindRect, Name: "Rectangle 7", Width: 200, Height: 120,
		Fills: []design.Paint{{Type: "IMAGE", Visible: true}},
	}
	assert.Equal(t, TypeImage, DetectSemanticType(image))
}

func TestDetectSemanticType_VectorIsIcon(t *testing.T) {
	el := &design.Element{Kind: design.KindVector, Name: "Vector 12"}
	assert.Equal(t, TypeIcon, DetectSemanticType(el))
}

func TestDetectSemanticType_CompositeButton(t *testing.T) {
	el := &design.Element{
		Kind: design.KindFrame, Name: "Frame 3",
		Width: 160, Height: 44, LayoutMode: design.LayoutHorizontal,
		Children: []*design.Element{
			{Kind: design.KindText, Name: "Label", Characters: "Submit"},
		},
	}
	assert.Equal(t, TypeButton, DetectSemanticType(el))
}

func TestDetectSemanticType_CompositeCard(t *testing.T) {
	el := &design.Element{
		Kind: design.KindFrame, Name: "Frame 9",
		Width: 400, Height: 320,
		Children: []*design.Element{
			{Kind: design.KindRect, Name: "Cover",
				Fills: []design.Paint{{Type: "IMAGE", Visible: true}}},
			{Kind: design.KindText, Name: "Title", Characters: "Headline"},
		},
	}
	assert.Equal(t, TypeCard, DetectSemanticType(el))
}

func TestDetectSemanticType_CompositeList(t *testing.T) {
	el := &design.Element{
		Kind: design.KindFrame, Name: "Frame 4",
		Width: 400, Height: 600,
		Children: []*design.Element{
			{Kind: design.KindInstance, Name: "Row"},
			{Kind: design.KindInstance, Name: "Row"},
			{Kind: design.KindInstance, Name: "Row"},
		},
	}
	assert.Equal(t, TypeList, DetectSemanticType(el))
}

func TestDetectSemanticType_CompositeFallback(t *testing.T) {
	el := &design.Element{
		Kind: design.KindFrame, Name: "Frame 1", Width: 1440, Height: 900,
	}
	assert.Equal(t, TypeContainer, DetectSemanticType(el))
}
