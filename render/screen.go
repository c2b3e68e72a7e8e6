package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bigtext/terminal"
)

// tcellColor maps a palette color to its tcell equivalent
func tcellColor(c terminal.Color) tcell.Color {
	if idx := c.Index(); idx >= 0 {
		return tcell.PaletteColor(idx)
	}
	return tcell.ColorDefault
}

// Draw puts the ink cells of req on s with the top-left corner at
// req.Position, so Row 1, Col 1 is the screen's first cell
// Cells outside the glyphs are left untouched
// The caller shows the screen
func (r *Renderer) Draw(s tcell.Screen, req Request) {
	cv := r.layout(req.Text)
	style := tcell.StyleDefault.Foreground(tcellColor(req.Color))
	fill := rune(req.fill())
	ox, oy := req.Position.origin()

	for y, line := range cv {
		for x, ink := range line {
			if !ink {
				continue
			}
			s.SetContent(ox+x, oy+y, fill, nil, style)
		}
	}
}

// Preview shows req on an initialized screen until a quit key is pressed:
// Escape, Enter, Ctrl-C or q. Resizes redraw the banner
func (r *Renderer) Preview(s tcell.Screen, req Request) {
	redraw := func() {
		s.Clear()
		r.Draw(s, req)
		s.Show()
	}
	redraw()

	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized
			return
		case *tcell.EventResize:
			s.Sync()
			redraw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}
		}
	}
}
