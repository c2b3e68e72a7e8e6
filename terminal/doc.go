// @focus: #sys { term }
// Package terminal provides ANSI foreground styling for line-oriented output.
//
// Features:
//   - The eight standard ANSI colors plus the terminal default (SGR 30-37, 39)
//   - Scoped styling with a guaranteed SGR reset on every exit path
//   - Terminal detection for automatic plain-text fallback
//   - Clean terminal restoration on panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
