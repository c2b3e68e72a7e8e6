package terminal

import (
	"fmt"
	"strings"
)

// Color is one of the eight standard ANSI foreground colors or the
// terminal default. The zero value is ColorDefault
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// sgrDefaultFg selects the terminal's default foreground
const sgrDefaultFg = 39

var colorNames = [...]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// xterm default palette for the standard colors
var colorRGB = [...]RGB{
	ColorDefault: {229, 229, 229},
	ColorBlack:   {0, 0, 0},
	ColorRed:     {205, 0, 0},
	ColorGreen:   {0, 205, 0},
	ColorYellow:  {205, 205, 0},
	ColorBlue:    {0, 0, 238},
	ColorMagenta: {205, 0, 205},
	ColorCyan:    {0, 205, 205},
	ColorWhite:   {229, 229, 229},
}

// Colors returns every color in palette order, default last
func Colors() []Color {
	return []Color{
		ColorBlack, ColorRed, ColorGreen, ColorYellow,
		ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
		ColorDefault,
	}
}

// Valid reports whether c is a known color
func (c Color) Valid() bool {
	return c <= ColorWhite
}

// Code returns the SGR foreground parameter: 30-37, or 39 for default
// Unknown colors fall back to the default
func (c Color) Code() int {
	if c == ColorDefault || !c.Valid() {
		return sgrDefaultFg
	}
	return 30 + int(c-ColorBlack)
}

// Index returns the ANSI palette index 0-7, or -1 for the default color
func (c Color) Index() int {
	if c == ColorDefault || !c.Valid() {
		return -1
	}
	return int(c - ColorBlack)
}

// RGB returns the xterm rendition of c
func (c Color) RGB() RGB {
	if !c.Valid() {
		return colorRGB[ColorDefault]
	}
	return colorRGB[c]
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor resolves a color name, case-insensitively
// An empty name is the default color
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorDefault, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q (want one of %s)", name, strings.Join(colorNames[:], ", "))
}
