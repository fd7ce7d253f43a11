// Package fingerprint derives stable cache keys from component content and
// keeps reconciled analyses behind them.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/uiforge/designaudit/pkg/design"
	"github.com/uiforge/designaudit/pkg/token"
)

// tokenRef is the part of a token that participates in the fingerprint.
type tokenRef struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// canonical is the struct that gets digested. Field order is fixed by the
// struct definition and the token set is sorted, so two extraction runs over
// unchanged content marshal to byte-identical input regardless of traversal
// or map iteration order.
type canonical struct {
	Name         string     `json:"name"`
	Kind         string     `json:"kind"`
	Width        float64    `json:"width"`
	Height       float64    `json:"height"`
	LayoutMode   string     `json:"layoutMode"`
	CornerRadius float64    `json:"cornerRadius"`
	HasFillRef   bool       `json:"hasFillRef"`
	HasStrokeRef bool       `json:"hasStrokeRef"`
	HasTextRef   bool       `json:"hasTextRef"`
	HasEffectRef bool       `json:"hasEffectRef"`
	Tokens       []tokenRef `json:"tokens"`
}

// Compute canonicalizes the element's style-relevant attributes plus the
// extracted token set and returns the hex digest used as a cache key. The
// element id is deliberately excluded: identical visual content fingerprints
// identically after an id reassignment.
func Compute(el *design.Element, ext *token.Extraction) string {
	refs := make([]tokenRef, 0)
	for _, t := range ext.All() {
		refs = append(refs, tokenRef{Category: string(t.Category), Name: t.Name, Value: t.Value})
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Category != refs[j].Category {
			return refs[i].Category < refs[j].Category
		}
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].Value < refs[j].Value
	})

	c := canonical{
		Name:         el.Name,
		Kind:         string(el.Kind),
		Width:        el.Width,
		Height:       el.Height,
		LayoutMode:   string(el.LayoutMode),
		CornerRadius: el.CornerRadius,
		HasFillRef:   el.Styles.Fill != "",
		HasStrokeRef: el.Styles.Stroke != "",
		HasTextRef:   el.Styles.Text != "",
		HasEffectRef: el.Styles.Effect != "",
		Tokens:       refs,
	}

	data, err := json.Marshal(c)
	if err != nil {
		// canonical contains only marshalable fields; this cannot fail.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
