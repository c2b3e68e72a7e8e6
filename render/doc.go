// Package render draws text as large glyphs from a font.Table.
//
// All surfaces share one layout: every input byte is uppercased, a space
// takes SpaceWidth blank cells, and any other character contributes its glyph
// row followed by a single gap cell. Missing glyphs and rows past a glyph's
// height contribute only the gap. The number of rows is the height of the
// table's reference glyph.
package render
