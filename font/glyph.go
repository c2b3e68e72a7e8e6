package font

// InkMarker marks a drawn cell in a glyph row
const InkMarker = '*'

// Glyph is the bitmap of one character, top row first
// Rows are kept verbatim and may differ in length
type Glyph []string

// Height returns the number of rows
func (g Glyph) Height() int {
	return len(g)
}

// Width returns the length of the longest row
func (g Glyph) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Ink reports whether the cell at row, col is drawn
// Out of range cells are blank
func (g Glyph) Ink(row, col int) bool {
	if row < 0 || row >= len(g) {
		return false
	}
	if col < 0 || col >= len(g[row]) {
		return false
	}
	return g[row][col] == InkMarker
}

// clone returns a copy sharing no backing array with g
func (g Glyph) clone() Glyph {
	if g == nil {
		return nil
	}
	c := make(Glyph, len(g))
	copy(c, g)
	return c
}
