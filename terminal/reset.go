package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery, where deferred cleanup of a full-screen
// session may not have run
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		if IsTerminal(f) {
			// Full reset only makes sense on a real terminal
			f.Write(csiRIS)
		}
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
