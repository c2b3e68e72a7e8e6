package font

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// unmappable replaces runes a code page cannot represent; no font defines it
const unmappable = 0x1A

// Charset converts text into the single-byte keys of a font table
// The zero value passes bytes through unchanged
type Charset struct {
	name string
	cm   *charmap.Charmap
}

// CharsetRaw uses the text's bytes as keys, folding only ASCII letters at
// render time
var CharsetRaw = Charset{}

// Single-byte code pages accepted by ParseCharset
var (
	CharsetCP1251 = Charset{name: "cp1251", cm: charmap.Windows1251}
	CharsetCP1252 = Charset{name: "cp1252", cm: charmap.Windows1252}
	CharsetCP866  = Charset{name: "cp866", cm: charmap.CodePage866}
	CharsetKOI8R  = Charset{name: "koi8-r", cm: charmap.KOI8R}
	CharsetLatin1 = Charset{name: "iso-8859-1", cm: charmap.ISO8859_1}
)

var charsetAliases = map[string]Charset{
	"":             CharsetRaw,
	"raw":          CharsetRaw,
	"bytes":        CharsetRaw,
	"cp1251":       CharsetCP1251,
	"windows-1251": CharsetCP1251,
	"cp1252":       CharsetCP1252,
	"windows-1252": CharsetCP1252,
	"cp866":        CharsetCP866,
	"ibm866":       CharsetCP866,
	"koi8-r":       CharsetKOI8R,
	"koi8r":        CharsetKOI8R,
	"iso-8859-1":   CharsetLatin1,
	"latin1":       CharsetLatin1,
}

// ParseCharset resolves a code page name, case-insensitively
// An empty name selects CharsetRaw
func ParseCharset(name string) (Charset, error) {
	cs, ok := charsetAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CharsetRaw, fmt.Errorf("unknown charset %q (want raw, cp1251, cp1252, cp866, koi8-r or iso-8859-1)", name)
	}
	return cs, nil
}

func (cs Charset) String() string {
	if cs.cm == nil {
		return "raw"
	}
	return cs.name
}

// Encode turns UTF-8 text into font keys. Each rune is uppercased with
// Unicode case mapping and then encoded; runes outside the code page become
// a byte no font defines, so they render as a blank gap
func (cs Charset) Encode(text string) string {
	if cs.cm == nil {
		return text
	}

	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := cs.cm.EncodeRune(unicode.ToUpper(r))
		if !ok {
			b = unmappable
		}
		out = append(out, b)
	}
	return string(out)
}
