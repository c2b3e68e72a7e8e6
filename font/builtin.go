package font

import (
	"strings"

	"github.com/lixenwraith/bigtext/asset"
)

// Builtin returns a new table holding the default font
func Builtin() *Table {
	t := NewTable()
	// Reading from a string cannot fail
	if err := t.Load(strings.NewReader(asset.DefaultFont), "builtin"); err != nil {
		panic(err)
	}
	return t
}
