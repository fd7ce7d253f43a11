// Package token extracts design-token usage from an element tree and
// aggregates it into the single authoritative summary every downstream
// consumer reads token counts from.
package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uiforge/designaudit/pkg/design"
)

// Category is the style class a token belongs to.
type Category string

const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryTypography Category = "typography"
	CategoryEffect     Category = "effect"
	CategoryBorder     Category = "border"
)

// Categories lists all categories in their canonical order.
func Categories() []Category {
	return []Category{CategoryColor, CategorySpacing, CategoryTypography, CategoryEffect, CategoryBorder}
}

// Source says where a token value came from.
type Source string

const (
	SourceStyle       Source = "style"
	SourceVariable    Source = "variable"
	SourceHardcoded   Source = "hardcoded"
	SourceAISuggested Source = "ai-suggested"
)

// Token is one extracted style value. Tokens are created fresh on each
// extraction pass and never mutated afterwards.
type Token struct {
	Name          string   `json:"name"`
	Value         string   `json:"value"`
	Category      Category `json:"category"`
	Source        Source   `json:"source"`
	IsActualToken bool     `json:"isActualToken"`
}

// NormalizeHex renders a paint color as a lowercase 6-digit hex literal, the
// dedup key for hard-coded colors.
func NormalizeHex(c design.Color) string {
	to255 := func(v float64) int {
		n := int(math.Round(v * 255))
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B))
}

// NormalizePx renders a numeric style value as an "Npx" literal, trimming
// trailing zeros so 8.0 and 8 dedup to the same key.
func NormalizePx(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s + "px"
}

// NormalizeTypography renders a literal text style as its dedup key.
func NormalizeTypography(ts design.TypeStyle) string {
	family := strings.TrimSpace(ts.FontFamily)
	if family == "" {
		family = "unknown"
	}
	return fmt.Sprintf("%s/%s/%s",
		strings.ToLower(family),
		strconv.FormatFloat(ts.FontSize, 'f', -1, 64),
		strconv.FormatFloat(ts.FontWeight, 'f', -1, 64))
}
