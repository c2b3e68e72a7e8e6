package font

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileExt is the extension of font files picked up by Discover
const FileExt = ".txt"

// Discover lists the font files directly inside dir in lexical order, so that
// loading them in sequence lets later files override earlier glyphs.
// Subdirectories and hidden files are skipped
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("font: read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			log.Printf("font: skipping hidden file %s", name)
			continue
		}
		if filepath.Ext(name) != FileExt {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	slices.Sort(paths)
	log.Printf("font: discovered %d font file(s) in %s", len(paths), dir)
	return paths, nil
}
