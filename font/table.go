package font

import (
	"slices"
	"sync"
)

// Table maps single-byte characters to glyphs
// Safe for concurrent use: loads take the write lock, lookups the read lock
type Table struct {
	mu     sync.RWMutex
	glyphs map[byte]Glyph
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		glyphs: make(map[byte]Glyph),
	}
}

// Set stores a copy of g under c, replacing any previous glyph
// Glyphs without rows are ignored
func (t *Table) Set(c byte, g Glyph) {
	if len(g) == 0 {
		return
	}
	t.mu.Lock()
	t.glyphs[c] = g.clone()
	t.mu.Unlock()
}

// Lookup returns the glyph stored under c
// The returned glyph is shared with the table and must not be modified
func (t *Table) Lookup(c byte) (Glyph, bool) {
	t.mu.RLock()
	g, ok := t.glyphs[c]
	t.mu.RUnlock()
	return g, ok
}

// Len returns the number of defined characters
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.glyphs)
}

// Chars returns the defined characters in ascending order
func (t *Table) Chars() []byte {
	t.mu.RLock()
	chars := make([]byte, 0, len(t.glyphs))
	for c := range t.glyphs {
		chars = append(chars, c)
	}
	t.mu.RUnlock()

	slices.Sort(chars)
	return chars
}

// Reference returns the glyph with the lowest character key
// Renderers take the canvas height from it
func (t *Table) Reference() (Glyph, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		best  byte
		found bool
	)
	for c := range t.glyphs {
		if !found || c < best {
			best = c
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return t.glyphs[best], true
}

// merge commits a parsed batch, overwriting existing keys
func (t *Table) merge(batch map[byte]Glyph) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for c, g := range batch {
		t.glyphs[c] = g
	}
}
