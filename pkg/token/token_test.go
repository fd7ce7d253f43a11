package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uiforge/designaudit/pkg/design"
)

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		name string
		in   design.Color
		want string
	}{
		{"white", design.Color{R: 1, G: 1, B: 1, A: 1}, "#ffffff"},
		{"black", design.Color{A: 1}, "#000000"},
		{"brand blue", design.Color{R: 0.2, G: 0.4, B: 0.8, A: 1}, "#3366cc"},
		{"clamped", design.Color{R: 1.5, G: -0.2, B: 0.5}, "#ff0080"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeHex(tc.in))
		})
	}
}

func TestNormalizeHex_AlphaIgnored(t *testing.T) {
	opaque := design.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	faint := design.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.1}
	assert.Equal(t, NormalizeHex(opaque), NormalizeHex(faint))
}

func TestNormalizePx(t *testing.T) {
	assert.Equal(t, "8px", NormalizePx(8))
	assert.Equal(t, "8px", NormalizePx(8.0))
	assert.Equal(t, "8.5px", NormalizePx(8.5))
	assert.Equal(t, "0px", NormalizePx(0))
}

func TestNormalizeTypography(t *testing.T) {
	ts := design.TypeStyle{FontFamily: "Inter", FontSize: 16, FontWeight: 600}
	assert.Equal(t, "inter/16/600", NormalizeTypography(ts))

	empty := design.TypeStyle{FontSize: 14, FontWeight: 400}
	assert.Equal(t, "unknown/14/400", NormalizeTypography(empty))
}
