package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textinput"
)

// InputAdapter forwards GLFW window events to a widget.
// Positions are in window coordinates, the same space the Renderer projects.
type InputAdapter struct {
	window *glfw.Window
	target textinput.Widget
}

// NewInputAdapter installs window callbacks that drive target.
// It replaces any key, char, mouse button and cursor position callbacks.
func NewInputAdapter(window *glfw.Window, target textinput.Widget) *InputAdapter {
	a := &InputAdapter{
		window: window,
		target: target,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Detach removes the callbacks installed by NewInputAdapter.
func (a *InputAdapter) Detach() {
	a.window.SetKeyCallback(nil)
	a.window.SetCharCallback(nil)
	a.window.SetMouseButtonCallback(nil)
	a.window.SetCursorPosCallback(nil)
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if name, ok := KeyName(key); ok {
		a.target.OnKeyPress(name)
	}
}

// Printable characters arrive here, already composed by the platform.
func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.target.OnKeyPress(string(char))
}

// A click is a left button release, so press-drag-release outside the
// widget still deselects it.
func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Release {
		return
	}
	x, y := w.GetCursorPos()
	a.target.OnPointerClick(textinput.Vec2{X: float32(x), Y: float32(y)})
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.target.OnPointerMove(textinput.Vec2{X: float32(xpos), Y: float32(ypos)})
}

// KeyName maps a GLFW key to a widget key name. Printable keys are not
// mapped; they arrive through the char callback instead.
func KeyName(key glfw.Key) (string, bool) {
	switch key {
	case glfw.KeyBackspace:
		return textinput.KeyBackspace, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return textinput.KeyEnter, true
	case glfw.KeyLeft:
		return textinput.KeyArrowLeft, true
	case glfw.KeyRight:
		return textinput.KeyArrowRight, true
	case glfw.KeyUp:
		return textinput.KeyArrowUp, true
	case glfw.KeyDown:
		return textinput.KeyArrowDown, true
	default:
		return "", false
	}
}

// WindowCursor switches the window's pointer shape between the standard
// arrow and I-beam cursors.
type WindowCursor struct {
	window *glfw.Window
	arrow  *glfw.Cursor
	ibeam  *glfw.Cursor
}

// NewWindowCursor creates the standard cursors for window.
// Call Destroy before terminating GLFW.
func NewWindowCursor(window *glfw.Window) *WindowCursor {
	return &WindowCursor{
		window: window,
		arrow:  glfw.CreateStandardCursor(glfw.ArrowCursor),
		ibeam:  glfw.CreateStandardCursor(glfw.IBeamCursor),
	}
}

// Set shows c on the window. It matches drawlist.WithCursorFunc.
func (c *WindowCursor) Set(cur textinput.Cursor) {
	switch cur {
	case textinput.CursorText:
		c.window.SetCursor(c.ibeam)
	default:
		c.window.SetCursor(c.arrow)
	}
}

// Destroy releases the cursors.
func (c *WindowCursor) Destroy() {
	c.window.SetCursor(nil)
	c.arrow.Destroy()
	c.ibeam.Destroy()
}
