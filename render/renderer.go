// @lixen: #focus{render[layout,print]}
package render

import (
	"io"

	"github.com/lixenwraith/bigtext/font"
	"github.com/lixenwraith/bigtext/terminal"
)

const (
	// SpaceWidth is the number of blank cells printed for a space
	SpaceWidth = 5
	// GapWidth is the number of blank cells after every other character
	GapWidth = 1
	// DefaultFill replaces ink when a request leaves Fill unset
	DefaultFill = '#'
)

// Position is a screen anchor in terminal cursor coordinates: 1-based, with
// Row 1, Col 1 the top-left cell. Values below 1 clamp to the first row or
// column, so the zero value is also the top-left cell
type Position struct {
	Row, Col int
}

// origin returns the zero-based cell of the top-left corner
func (p Position) origin() (x, y int) {
	return max(p.Col, 1) - 1, max(p.Row, 1) - 1
}

// Request describes one render call
type Request struct {
	Text  string
	Color terminal.Color
	// Position is kept with the request but line output never moves the
	// cursor; only Draw places glyphs at it
	Position Position
	Fill     byte
}

func (q Request) fill() byte {
	return fillOrDefault(q.Fill)
}

func fillOrDefault(fill byte) byte {
	if fill == 0 {
		return DefaultFill
	}
	return fill
}

// Renderer lays out text with a font table
// The table may keep growing; each call sees the glyphs present at that time
type Renderer struct {
	font *font.Table
}

// New creates a renderer over t
func New(t *font.Table) *Renderer {
	return &Renderer{font: t}
}

// Height returns the canvas height: the row count of the table's reference
// glyph, or 0 for an empty table
func (r *Renderer) Height() int {
	ref, ok := r.font.Reference()
	if !ok {
		return 0
	}
	return ref.Height()
}

// canvas holds ink flags per output row; rows may differ in length
type canvas [][]bool

func (cv canvas) width() int {
	w := 0
	for _, line := range cv {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

// layout places text on a canvas
func (r *Renderer) layout(text string) canvas {
	height := r.Height()
	if height == 0 {
		return nil
	}

	upper := []byte(text)
	glyphs := make([]font.Glyph, len(upper))
	for i, c := range upper {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
			upper[i] = c
		}
		if c != ' ' {
			glyphs[i], _ = r.font.Lookup(c)
		}
	}

	cv := make(canvas, height)
	for row := range cv {
		var line []bool
		for i, c := range upper {
			if c == ' ' {
				line = append(line, make([]bool, SpaceWidth)...)
				continue
			}
			if g := glyphs[i]; row < len(g) {
				for j := 0; j < len(g[row]); j++ {
					line = append(line, g[row][j] == font.InkMarker)
				}
			}
			line = append(line, make([]bool, GapWidth)...)
		}
		cv[row] = line
	}
	return cv
}

// Rows renders text into lines of fill and space characters
// A zero fill selects DefaultFill
func (r *Renderer) Rows(text string, fill byte) []string {
	cv := r.layout(text)
	if cv == nil {
		return nil
	}
	fill = fillOrDefault(fill)

	rows := make([]string, len(cv))
	buf := make([]byte, 0, cv.width())
	for i, line := range cv {
		buf = buf[:0]
		for _, ink := range line {
			if ink {
				buf = append(buf, fill)
			} else {
				buf = append(buf, ' ')
			}
		}
		rows[i] = string(buf)
	}
	return rows
}

// Print writes the rendered rows to w, each terminated by a newline, inside
// the request color. The color reset follows the last row even when a write
// fails
func (r *Renderer) Print(w io.Writer, req Request) error {
	rows := r.Rows(req.Text, req.fill())
	return terminal.Styled(w, req.Color, func(w io.Writer) error {
		return writeRows(w, rows)
	})
}

// PrintPlain writes the rendered rows without any escape sequences
func (r *Renderer) PrintPlain(w io.Writer, req Request) error {
	return writeRows(w, r.Rows(req.Text, req.fill()))
}

func writeRows(w io.Writer, rows []string) error {
	for _, row := range rows {
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
