// @lixen: #focus{font[table,load,encode]}
// Package font holds bitmap banner fonts.
//
// A font is a Table mapping single-byte characters to Glyphs. Glyphs are
// loaded from a plain text format:
//
//	[A]
//	.***.
//	*...*
//	*****
//	*...*
//	*...*
//
// A line starting with '[' and containing ']' opens a definition for the byte
// right after the bracket. Following non-empty lines are the glyph rows, '*'
// marking ink and any other byte marking no ink. A blank line or the end of
// the input commits the definition. Definitions without rows are dropped, and
// later definitions of the same character replace earlier ones, across loads.
//
// Keys are stored exactly as written; lookups are case-sensitive.
package font
