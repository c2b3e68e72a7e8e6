package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bigtext/font"
	"github.com/lixenwraith/bigtext/terminal"
)

func tableFrom(t *testing.T, src string) *font.Table {
	t.Helper()
	tbl := font.NewTable()
	require.NoError(t, tbl.Load(strings.NewReader(src), t.Name()))
	return tbl
}

const twoRowFont = `
[A]
.*.
*.*

[B]
**
*.
`

func TestRows(t *testing.T) {
	r := New(tableFrom(t, twoRowFont))

	tests := []struct {
		name string
		text string
		fill byte
		want []string
	}{
		{
			name: "single glyph",
			text: "A",
			fill: '#',
			want: []string{" #  ", "# # "},
		},
		{
			name: "lowercase is uppercased",
			text: "ab",
			fill: '%',
			want: []string{" %  %% ", "% % %  "},
		},
		{
			name: "space is five cells without gap",
			text: "A B",
			fill: '#',
			want: []string{" #       ## ", "# #      #  "},
		},
		{
			name: "unknown character keeps its gap",
			text: "?A",
			fill: '#',
			want: []string{"  #  ", " # # "},
		},
		{
			name: "empty text",
			text: "",
			fill: '#',
			want: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Rows(tt.text, tt.fill))
		})
	}
}

func TestRows_MinimalFontLowercaseQuery(t *testing.T) {
	r := New(tableFrom(t, "[A]\n*\n\n"))
	assert.Equal(t, []string{"% "}, r.Rows("a", '%'))
}

func TestRows_LowercaseDefinitionsUnreachable(t *testing.T) {
	r := New(tableFrom(t, "[a]\n*\n\n"))
	assert.Equal(t, []string{" "}, r.Rows("a", '#'))
	assert.Equal(t, []string{" "}, r.Rows("A", '#'))
}

func TestRows_SpacesOnly(t *testing.T) {
	r := New(font.Builtin())
	height := r.Height()
	require.Equal(t, 5, height)

	for n := 0; n < 4; n++ {
		rows := r.Rows(strings.Repeat(" ", n), '#')
		require.Len(t, rows, height)
		for _, row := range rows {
			assert.Equal(t, strings.Repeat(" ", n*SpaceWidth), row)
		}
	}
}

func TestRows_FillMatchesInkLayout(t *testing.T) {
	tbl := font.Builtin()
	r := New(tbl)
	glyph, ok := tbl.Lookup('K')
	require.True(t, ok)

	rows := r.Rows("K", '%')
	require.Len(t, rows, glyph.Height())
	for i, row := range rows {
		require.Len(t, row, len(glyph[i])+GapWidth)
		for j := 0; j < len(glyph[i]); j++ {
			if glyph.Ink(i, j) {
				assert.Equal(t, byte('%'), row[j], "row %d col %d", i, j)
			} else {
				assert.Equal(t, byte(' '), row[j], "row %d col %d", i, j)
			}
		}
		assert.Equal(t, byte(' '), row[len(row)-1], "gap")
	}
}

func TestRows_UnknownCharactersKeepAlignment(t *testing.T) {
	r := New(font.Builtin())

	a := r.Rows("~~A", '#')
	b := r.Rows("^^A", '#')
	assert.Equal(t, a, b)
	for _, row := range a {
		assert.True(t, strings.HasPrefix(row, "  "), "two gap cells before A: %q", row)
	}
}

func TestRows_EmptyTable(t *testing.T) {
	r := New(font.NewTable())
	assert.Equal(t, 0, r.Height())
	assert.Nil(t, r.Rows("ABC", '#'))
}

func TestRows_HeightFromLowestKey(t *testing.T) {
	// '1' sorts before 'A', so the canvas is one row high
	r := New(tableFrom(t, "[A]\n*\n*\n*\n\n[1]\n**\n\n"))
	assert.Equal(t, 1, r.Height())
	assert.Equal(t, []string{"# ## "}, r.Rows("A1", '#'))

	// Shorter glyphs contribute only their gap past their last row
	r = New(tableFrom(t, "[0]\n*\n*\n*\n\n[A]\n**\n\n"))
	assert.Equal(t, []string{"# ## ", "#  ", "#  "}, r.Rows("0A", '#'))
}

func TestRows_SeesLaterLoads(t *testing.T) {
	tbl := tableFrom(t, "[A]\n*\n\n")
	r := New(tbl)
	assert.Equal(t, []string{" "}, r.Rows("B", '#'))

	require.NoError(t, tbl.Load(strings.NewReader("[B]\n**\n\n"), "second"))
	assert.Equal(t, []string{"## "}, r.Rows("B", '#'))
}

func TestPrint(t *testing.T) {
	r := New(tableFrom(t, twoRowFont))

	var buf bytes.Buffer
	err := r.Print(&buf, Request{Text: "A", Color: terminal.ColorGreen, Fill: '@'})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32m @  \n@ @ \n\x1b[0m", buf.String())
}

func TestPrint_DefaultsAndPosition(t *testing.T) {
	r := New(tableFrom(t, twoRowFont))

	var plain, moved bytes.Buffer
	require.NoError(t, r.Print(&plain, Request{Text: "B"}))
	require.NoError(t, r.Print(&moved, Request{Text: "B", Position: Position{Row: 7, Col: 9}}))

	assert.Equal(t, "\x1b[39m## \n#  \n\x1b[0m", plain.String())
	assert.Equal(t, plain.String(), moved.String(), "position never moves the cursor")
}

func TestPrint_EmptyTableOnlyStyles(t *testing.T) {
	r := New(font.NewTable())

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf, Request{Text: "HELLO", Color: terminal.ColorRed}))
	assert.Equal(t, "\x1b[31m\x1b[0m", buf.String())
}

type limitWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		return 0, errors.New("sink full")
	}
	return w.buf.Write(p)
}

func TestPrintPlain(t *testing.T) {
	r := New(tableFrom(t, twoRowFont))

	var buf bytes.Buffer
	require.NoError(t, r.PrintPlain(&buf, Request{Text: "A", Color: terminal.ColorRed}))
	assert.Equal(t, " #  \n# # \n", buf.String())

	w := &limitWriter{limit: 3}
	assert.Error(t, r.PrintPlain(w, Request{Text: "A"}))
}

func TestRows_ZeroFillUsesDefault(t *testing.T) {
	r := New(tableFrom(t, twoRowFont))

	rows := r.Rows("B", 0)
	assert.Equal(t, []string{"## ", "#  "}, rows)
	for _, row := range rows {
		assert.NotContains(t, row, "\x00")
	}
}
