package textinput_test

import (
	"testing"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/surfacetest"
)

func newGroup(t *testing.T) (*textinput.Group, *textinput.TextInput, *textinput.TextInput, *surfacetest.Recorder) {
	t.Helper()
	rec := surfacetest.NewRecorder()
	top, err := textinput.New(rec, textinput.WithPosition(0, 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bottom, err := textinput.New(rec, textinput.WithPosition(0, 40))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return textinput.NewGroup(top, bottom), top, bottom, rec
}

func TestGroupClickSelectsOne(t *testing.T) {
	g, top, bottom, _ := newGroup(t)

	g.OnPointerClick(textinput.Vec2{X: 10, Y: 50})
	if top.Selected() || !bottom.Selected() {
		t.Fatalf("selected top=%v bottom=%v, want only bottom", top.Selected(), bottom.Selected())
	}

	for _, r := range "hi" {
		g.OnKeyPress(string(r))
	}
	if top.Text() != "" || bottom.Text() != "hi" {
		t.Errorf("text top=%q bottom=%q", top.Text(), bottom.Text())
	}

	g.OnPointerClick(textinput.Vec2{X: 10, Y: 10})
	if !top.Selected() || bottom.Selected() {
		t.Errorf("selected top=%v bottom=%v, want only top", top.Selected(), bottom.Selected())
	}
}

func TestGroupHoverKeepsTextCursor(t *testing.T) {
	g, _, _, rec := newGroup(t)

	// The pointer is over the first widget; the second must not reset it.
	g.OnPointerMove(textinput.Vec2{X: 10, Y: 10})
	if got := rec.Cursor(); got != textinput.CursorText {
		t.Errorf("cursor over top widget = %v, want text", got)
	}

	g.OnPointerMove(textinput.Vec2{X: 10, Y: 35})
	if got := rec.Cursor(); got != textinput.CursorDefault {
		t.Errorf("cursor between widgets = %v, want default", got)
	}
}

func TestGroupRenderOrder(t *testing.T) {
	g, _, _, rec := newGroup(t)
	g.Add(textinput.NewGroup())
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	g.Render()
	var rects []string
	for _, op := range rec.DrawOps() {
		if len(op) > 5 && op[:5] == "rect " {
			rects = append(rects, op)
		}
	}
	if len(rects) != 2 || rects[0] != "rect 0 0 150 30" || rects[1] != "rect 0 40 150 30" {
		t.Errorf("rects = %q", rects)
	}
}
