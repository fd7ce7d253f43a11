package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendedNames(recs []RecommendedProperty) []string {
	names := make([]string, 0, len(recs))
	for _, r := range recs {
		names = append(names, r.Name)
	}
	return names
}

func TestRecommendProperties_ButtonGaps(t *testing.T) {
	recs := RecommendProperties(FamilyButton, []string{"Variant", "State"})
	names := recommendedNames(recs)

	assert.Contains(t, names, "Size")
	assert.Contains(t, names, "Icon")
	assert.Contains(t, names, "Text")
	assert.NotContains(t, names, "Variant")
	assert.NotContains(t, names, "State")
}

func TestRecommendProperties_ButtonFullCatalog(t *testing.T) {
	names := recommendedNames(RecommendProperties(FamilyButton, nil))
	assert.Equal(t, []string{"Variant", "Size", "State", "Icon", "Text"}, names)
}

func TestRecommendProperties_StopsAfterAdoption(t *testing.T) {
	before := recommendedNames(RecommendProperties(FamilyButton, []string{"Variant", "State"}))
	require.Contains(t, before, "Size")

	after := recommendedNames(RecommendProperties(FamilyButton, []string{"Variant", "State", "Size"}))
	assert.NotContains(t, after, "Size")
	assert.Len(t, after, len(before)-1)
}

func TestRecommendProperties_SynonymsBlock(t *testing.T) {
	// "Label" occupies the text concept, "Type" the variant concept.
	names := recommendedNames(RecommendProperties(FamilyButton, []string{"Label", "Type"}))

	assert.NotContains(t, names, "Text")
	assert.NotContains(t, names, "Variant")
	assert.Contains(t, names, "Size")
}

func TestRecommendProperties_SubstringBlocks(t *testing.T) {
	names := recommendedNames(RecommendProperties(FamilyButton, []string{"ButtonSize"}))
	assert.NotContains(t, names, "Size")
}

func TestRecommendProperties_UnknownFamilyUsesGenericCatalog(t *testing.T) {
	recs := RecommendProperties(Family("gizmo"), nil)
	names := recommendedNames(recs)
	assert.Equal(t, []string{"Variant", "Size"}, names)
}

func TestRecommendProperties_EmptyExisting(t *testing.T) {
	recs := RecommendProperties(FamilyAvatar, nil)
	assert.Len(t, recs, len(familyCatalogs[FamilyAvatar]))
}

func TestRecommendProperties_CaseInsensitive(t *testing.T) {
	names := recommendedNames(RecommendProperties(FamilyButton, []string{"variant", "STATE"}))
	assert.NotContains(t, names, "Variant")
	assert.NotContains(t, names, "State")
}
