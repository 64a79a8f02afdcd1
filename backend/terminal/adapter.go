package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/textinput"
)

// Adapter translates tcell events into widget events.
type Adapter struct {
	surface *Surface
	target  textinput.Widget

	// button1 tracks the primary button so a click fires on release.
	button1 bool
}

// NewAdapter forwards events on surface's screen to target, usually a
// *textinput.Group.
func NewAdapter(surface *Surface, target textinput.Widget) *Adapter {
	return &Adapter{surface: surface, target: target}
}

// HandleEvent dispatches ev and reports whether it was a pointer or key
// event the adapter understood.
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		p := a.surface.CellCenter(col, row)
		a.target.OnPointerMove(p)

		pressed := ev.Buttons()&tcell.Button1 != 0
		released := a.button1 && !pressed
		a.button1 = pressed
		if released {
			a.target.OnPointerClick(p)
		}
		return true

	case *tcell.EventKey:
		key, ok := KeyName(ev)
		if !ok {
			return false
		}
		a.target.OnKeyPress(key)
		return true
	}
	return false
}

// KeyName returns the widget key name for a tcell key event: a single
// character for printable runes, or one of the textinput.Key* names.
// Other keys report false.
func KeyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune()), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return textinput.KeyBackspace, true
	case tcell.KeyEnter:
		return textinput.KeyEnter, true
	case tcell.KeyLeft:
		return textinput.KeyArrowLeft, true
	case tcell.KeyRight:
		return textinput.KeyArrowRight, true
	case tcell.KeyUp:
		return textinput.KeyArrowUp, true
	case tcell.KeyDown:
		return textinput.KeyArrowDown, true
	}
	return "", false
}
