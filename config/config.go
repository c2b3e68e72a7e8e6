// Package config resolves banner settings from .env files and the environment
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/bigtext/font"
	"github.com/lixenwraith/bigtext/terminal"
)

// Environment keys
const (
	EnvFont    = "BIGTEXT_FONT"     // font files, separated by os.PathListSeparator
	EnvFontDir = "BIGTEXT_FONT_DIR" // directory of font files loaded before EnvFont
	EnvColor   = "BIGTEXT_COLOR"    // color name
	EnvFill    = "BIGTEXT_FILL"     // single fill character
	EnvRow     = "BIGTEXT_ROW"
	EnvCol     = "BIGTEXT_COL"
	EnvMode    = "BIGTEXT_MODE"    // auto, always or never
	EnvCharset = "BIGTEXT_CHARSET" // code page of the text, e.g. cp1251
)

// envFiles are tried in order when no file is named; the first one found wins
var envFiles = []string{".env.local", ".env", ".env.example"}

// Config holds resolved settings
type Config struct {
	FontDir string
	Fonts   []string
	Color   terminal.Color
	Fill    byte
	Row     int
	Col     int
	Mode    terminal.StyleMode
	Charset font.Charset
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Color:   terminal.ColorDefault,
		Fill:    '#',
		Row:     1,
		Col:     1,
		Mode:    terminal.StyleAuto,
		Charset: font.CharsetRaw,
	}
}

// Load resolves settings from the process environment layered over an env
// file. When envFile is empty the first of .env.local, .env and .env.example
// in dir is used, if any. Process variables take precedence over file values
func Load(dir, envFile string) (Config, error) {
	fileVars, err := readEnvFile(dir, envFile)
	if err != nil {
		return Config{}, err
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

func readEnvFile(dir, envFile string) (map[string]string, error) {
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		log.Printf("config: loaded %s", envFile)
		return vars, nil
	}

	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		vars, err := godotenv.Read(path)
		if err != nil {
			// A broken candidate falls through to the next one
			log.Printf("config: skipping %s: %v", path, err)
			continue
		}
		log.Printf("config: loaded %s", path)
		return vars, nil
	}

	return nil, nil
}

// FromLookup builds a Config from key lookups, starting from Default
// Every invalid value is reported
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	if v, ok := lookup(EnvFont); ok && v != "" {
		for _, p := range filepath.SplitList(v) {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Fonts = append(cfg.Fonts, p)
			}
		}
	}

	if v, ok := lookup(EnvFontDir); ok {
		cfg.FontDir = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvColor); ok {
		c, err := terminal.ParseColor(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvColor, err))
		} else {
			cfg.Color = c
		}
	}

	if v, ok := lookup(EnvFill); ok && v != "" {
		fill, err := ParseFill(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFill, err))
		} else {
			cfg.Fill = fill
		}
	}

	for _, pos := range []struct {
		key string
		dst *int
	}{
		{EnvRow, &cfg.Row},
		{EnvCol, &cfg.Col},
	} {
		v, ok := lookup(pos.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", pos.key, err))
			continue
		}
		*pos.dst = n
	}

	if v, ok := lookup(EnvMode); ok {
		m, err := terminal.ParseStyleMode(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMode, err))
		} else {
			cfg.Mode = m
		}
	}

	if v, ok := lookup(EnvCharset); ok {
		cs, err := font.ParseCharset(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCharset, err))
		} else {
			cfg.Charset = cs
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFill accepts exactly one single-byte character
func ParseFill(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("fill must be a single-byte character, got %q", s)
	}
	if s[0] < ' ' || s[0] == 0x7f {
		return 0, fmt.Errorf("fill must be printable, got %q", s)
	}
	return s[0], nil
}
