package font

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LoadError reports a font source that could not be opened or read
// The table is left unchanged when it is returned
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("font: cannot load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile reads a font file and merges its glyphs into the table
func (t *Table) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return t.Load(f, path)
}

// Load parses font text from r and merges its glyphs into the table
// name identifies the source in errors and logs
// The source is parsed completely before the table is touched
func (t *Table) Load(r io.Reader, name string) error {
	batch, err := parse(r)
	if err != nil {
		return &LoadError{Source: name, Err: err}
	}

	t.merge(batch)
	log.Printf("font: loaded %d glyph(s) from %s", len(batch), name)
	return nil
}

// parser accumulates rows for the definition in progress
type parser struct {
	current byte
	active  bool
	rows    []string
	glyphs  map[byte]Glyph
}

func parse(r io.Reader) (map[byte]Glyph, error) {
	p := &parser{glyphs: make(map[byte]Glyph)}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if len(line) > 0 {
			p.feed(strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err != nil {
			break
		}
	}

	p.commit()
	return p.glyphs, nil
}

// feed processes one line with its terminator already stripped
func (p *parser) feed(line string) {
	if line == "" {
		p.commit()
		return
	}

	if isHeader(line) {
		// Uncommitted rows of the previous definition are dropped
		p.current = line[1]
		p.active = true
		p.rows = nil
		return
	}

	if p.active {
		p.rows = append(p.rows, line)
	}
}

// commit stores buffered rows under the current character
// The character stays current, so rows after a blank line start a new
// definition of the same character
func (p *parser) commit() {
	if !p.active || len(p.rows) == 0 {
		return
	}
	p.glyphs[p.current] = Glyph(p.rows)
	p.rows = nil
}

// isHeader matches "[X]..." lines; the byte after '[' is the character
func isHeader(line string) bool {
	return line[0] == '[' && strings.IndexByte(line, ']') > 0
}
