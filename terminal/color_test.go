package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorCode(t *testing.T) {
	tests := []struct {
		color Color
		code  int
	}{
		{ColorBlack, 30},
		{ColorRed, 31},
		{ColorGreen, 32},
		{ColorYellow, 33},
		{ColorBlue, 34},
		{ColorMagenta, 35},
		{ColorCyan, 36},
		{ColorWhite, 37},
		{ColorDefault, 39},
		{Color(200), 39},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.color.Code(), "%v.Code()", tt.color)
	}
}

func TestColorZeroValueIsDefault(t *testing.T) {
	var c Color
	require.Equal(t, ColorDefault, c)
	assert.Equal(t, -1, c.Index())
}

func TestParseColor(t *testing.T) {
	for _, c := range Colors() {
		got, err := ParseColor(c.String())
		require.NoError(t, err, "ParseColor(%q)", c.String())
		assert.Equal(t, c, got)
	}

	c, err := ParseColor("  MaGeNtA ")
	require.NoError(t, err)
	assert.Equal(t, ColorMagenta, c)

	c, err = ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, ColorDefault, c)

	_, err = ParseColor("chartreuse")
	assert.Error(t, err)
}

func TestColorsCoversPalette(t *testing.T) {
	colors := Colors()
	require.Len(t, colors, 9)

	seen := make(map[int]bool)
	for _, c := range colors {
		seen[c.Code()] = true
	}
	for code := 30; code <= 37; code++ {
		assert.True(t, seen[code], "code %d missing from palette", code)
	}
	assert.True(t, seen[39], "default code 39 missing from palette")
}

func TestColorRGB(t *testing.T) {
	assert.Equal(t, RGB{0, 0, 0}, ColorBlack.RGB())

	red := ColorRed.RGB()
	assert.NotZero(t, red.R)
	assert.Zero(t, red.G)
	assert.Zero(t, red.B)

	assert.Equal(t, ColorDefault.RGB(), Color(99).RGB(), "invalid color should map to default RGB")
}
