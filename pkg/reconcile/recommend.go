package reconcile

import "strings"

// RecommendedProperty is one missing property proposal.
type RecommendedProperty struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // "variant", "text", "boolean", "slot"
	Values      []string `json:"values,omitempty"`
	Description string   `json:"description,omitempty"`
}

// familyCatalogs fixes the property proposals per component family.
var familyCatalogs = map[Family][]RecommendedProperty{
	FamilyButton: {
		{Name: "Variant", Kind: "variant", Values: []string{"primary", "secondary", "ghost", "destructive"}, Description: "Visual emphasis of the button"},
		{Name: "Size", Kind: "variant", Values: []string{"sm", "md", "lg"}, Description: "Button size"},
		{Name: "State", Kind: "variant", Values: []string{"default", "hover", "pressed", "disabled"}, Description: "Interaction state"},
		{Name: "Icon", Kind: "slot", Description: "Optional leading or trailing icon"},
		{Name: "Text", Kind: "text", Description: "Button label text"},
	},
	FamilyInput: {
		{Name: "Label", Kind: "text", Description: "Field label"},
		{Name: "Placeholder", Kind: "text", Description: "Placeholder text"},
		{Name: "Size", Kind: "variant", Values: []string{"sm", "md", "lg"}, Description: "Field size"},
		{Name: "State", Kind: "variant", Values: []string{"default", "focus", "error", "disabled"}, Description: "Interaction state"},
		{Name: "Icon", Kind: "slot", Description: "Optional leading icon"},
	},
	FamilyCard: {
		{Name: "Title", Kind: "text", Description: "Card heading"},
		{Name: "Description", Kind: "text", Description: "Supporting copy"},
		{Name: "Image", Kind: "slot", Description: "Media slot"},
		{Name: "Footer", Kind: "slot", Description: "Actions or metadata slot"},
		{Name: "Elevated", Kind: "boolean", Description: "Shadow emphasis toggle"},
	},
	FamilyBadge: {
		{Name: "Variant", Kind: "variant", Values: []string{"neutral", "info", "success", "warning", "danger"}, Description: "Badge tone"},
		{Name: "Size", Kind: "variant", Values: []string{"sm", "md"}, Description: "Badge size"},
		{Name: "Text", Kind: "text", Description: "Badge label"},
	},
	FamilyAvatar: {
		{Name: "Size", Kind: "variant", Values: []string{"xs", "sm", "md", "lg", "xl"}, Description: "Avatar size"},
		{Name: "Shape", Kind: "variant", Values: []string{"circle", "square"}, Description: "Avatar shape"},
		{Name: "Image", Kind: "slot", Description: "Avatar image"},
		{Name: "Fallback", Kind: "text", Description: "Initials fallback"},
		{Name: "ShowStatus", Kind: "boolean", Description: "Presence indicator toggle"},
	},
	FamilyIcon: {
		{Name: "Size", Kind: "variant", Values: []string{"16", "20", "24", "32"}, Description: "Icon size in px"},
		{Name: "Color", Kind: "variant", Description: "Icon color token"},
	},
	FamilyGeneric: {
		{Name: "Variant", Kind: "variant", Description: "Visual variant"},
		{Name: "Size", Kind: "variant", Description: "Size variant"},
	},
}

// synonymGroups treat differently-named properties as the same concept; a
// candidate whose name shares a group with an existing property is filtered.
var synonymGroups = [][]string{
	{"text", "label", "content", "caption"},
	{"size", "scale", "dimension"},
	{"variant", "type", "style", "kind", "appearance"},
	{"state", "status", "mode"},
	{"icon", "glyph", "symbol"},
	{"image", "img", "picture", "photo", "src", "media"},
	{"disabled", "inactive"},
}

// RecommendProperties proposes the catalog entries for the family that do
// not overlap an existing property by exact match, substring, or synonym
// group.
func RecommendProperties(family Family, existing []string) []RecommendedProperty {
	catalog, ok := familyCatalogs[family]
	if !ok {
		catalog = familyCatalogs[FamilyGeneric]
	}

	existingLower := make([]string, 0, len(existing))
	for _, e := range existing {
		if s := strings.ToLower(strings.TrimSpace(e)); s != "" {
			existingLower = append(existingLower, s)
		}
	}

	var out []RecommendedProperty
	for _, candidate := range catalog {
		if !overlapsExisting(candidate.Name, existingLower) {
			out = append(out, candidate)
		}
	}
	return out
}

func overlapsExisting(name string, existing []string) bool {
	lower := strings.ToLower(name)
	for _, e := range existing {
		if e == lower || strings.Contains(e, lower) || strings.Contains(lower, e) {
			return true
		}
		if sameSynonymGroup(lower, e) {
			return true
		}
	}
	return false
}

func sameSynonymGroup(a, b string) bool {
	for _, group := range synonymGroups {
		inA, inB := false, false
		for _, word := range group {
			if a == word || strings.Contains(a, word) {
				inA = true
			}
			if b == word || strings.Contains(b, word) {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}
