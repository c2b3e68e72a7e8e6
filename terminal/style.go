package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// WriteColor emits the SGR sequence selecting c as the foreground color
func WriteColor(w io.Writer, c Color) error {
	bw := bufio.NewWriterSize(w, 8)
	writeSGR(bw, c.Code())
	return bw.Flush()
}

// WriteReset emits the SGR reset sequence
func WriteReset(w io.Writer) error {
	_, err := w.Write(csiSGR0)
	return err
}

// Styled writes the color sequence for c, runs fn against a buffered view of
// w, then writes the reset sequence. The reset is emitted on every exit path,
// including errors and panics raised by fn. The first error is returned
func Styled(w io.Writer, c Color, fn func(io.Writer) error) (err error) {
	bw := bufio.NewWriter(w)
	writeSGR(bw, c.Code())

	defer func() {
		bw.Write(csiSGR0)
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	return fn(bw)
}

// StyleMode decides whether color sequences are emitted
type StyleMode uint8

const (
	StyleAuto   StyleMode = iota // color only when writing to a terminal
	StyleAlways                  // always color
	StyleNever                   // plain text
)

var styleModeNames = [...]string{
	StyleAuto:   "auto",
	StyleAlways: "always",
	StyleNever:  "never",
}

func (m StyleMode) String() string {
	if int(m) < len(styleModeNames) {
		return styleModeNames[m]
	}
	return fmt.Sprintf("StyleMode(%d)", uint8(m))
}

// ParseStyleMode resolves auto, always or never; empty means auto
func ParseStyleMode(s string) (StyleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return StyleAuto, nil
	case "always", "on", "true":
		return StyleAlways, nil
	case "never", "off", "false":
		return StyleNever, nil
	}
	return StyleAuto, fmt.Errorf("unknown style mode %q (want auto, always or never)", s)
}

// Enabled reports whether output written to w should carry color
func (m StyleMode) Enabled(w io.Writer) bool {
	switch m {
	case StyleAlways:
		return true
	case StyleNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
