package font

import (
	"bufio"
	"fmt"
	"io"
)

// Encode writes the table in font text format, characters in ascending order
// Loading the output into an empty table reproduces t
func Encode(w io.Writer, t *Table) error {
	chars := t.Chars()
	glyphs := make([]Glyph, len(chars))
	for i, c := range chars {
		glyphs[i], _ = t.Lookup(c)
		if err := checkEncodable(c, glyphs[i]); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	for i, c := range chars {
		g := glyphs[i]
		bw.WriteByte('[')
		bw.WriteByte(c)
		bw.WriteString("]\n")
		for _, row := range g {
			bw.WriteString(row)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// checkEncodable rejects glyphs that would not survive a reload
func checkEncodable(c byte, g Glyph) error {
	if c == '\n' || c == '\r' {
		return fmt.Errorf("font: character 0x%02X cannot appear in a header", c)
	}
	for i, row := range g {
		switch {
		case row == "":
			return fmt.Errorf("font: glyph 0x%02X row %d is empty", c, i)
		case isHeader(row):
			return fmt.Errorf("font: glyph 0x%02X row %d reads as a header", c, i)
		case row[len(row)-1] == '\r':
			return fmt.Errorf("font: glyph 0x%02X row %d ends with a carriage return", c, i)
		}
		for j := 0; j < len(row); j++ {
			if row[j] == '\n' {
				return fmt.Errorf("font: glyph 0x%02X row %d contains a line break", c, i)
			}
		}
	}
	return nil
}
