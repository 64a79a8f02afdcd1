package textinput

// Widget is the event and render surface of a TextInput as seen by a host.
type Widget interface {
	HitTest(p Vec2) bool
	OnPointerMove(p Vec2)
	OnPointerClick(p Vec2)
	OnKeyPress(key string)
	Render()
}

var (
	_ Widget = (*TextInput)(nil)
	_ Widget = (*Group)(nil)
)

// Group forwards host events to several widgets sharing one surface.
//
// Widgets never register listeners themselves; the host owns its event loop
// and calls the Group (or each widget) explicitly.
type Group struct {
	widgets []Widget
}

// NewGroup creates a group containing widgets in order.
func NewGroup(widgets ...Widget) *Group {
	return &Group{widgets: widgets}
}

// Add appends a widget. Widgets render in the order they were added.
func (g *Group) Add(w Widget) {
	g.widgets = append(g.widgets, w)
}

// Len returns the number of widgets.
func (g *Group) Len() int {
	return len(g.widgets)
}

// HitTest reports whether p hits any widget in the group.
func (g *Group) HitTest(p Vec2) bool {
	for _, w := range g.widgets {
		if w.HitTest(p) {
			return true
		}
	}
	return false
}

// OnPointerMove forwards a pointer move to every widget. Widgets under the
// pointer go last so a neighbour leaving hover cannot undo their text cursor.
func (g *Group) OnPointerMove(p Vec2) {
	for _, w := range g.widgets {
		if !w.HitTest(p) {
			w.OnPointerMove(p)
		}
	}
	for _, w := range g.widgets {
		if w.HitTest(p) {
			w.OnPointerMove(p)
		}
	}
}

// OnPointerClick forwards a click to every widget, so a click selects the
// widget under the pointer and deselects the others.
func (g *Group) OnPointerClick(p Vec2) {
	for _, w := range g.widgets {
		w.OnPointerClick(p)
	}
}

// OnKeyPress forwards a key press to every widget. Only selected widgets act on it.
func (g *Group) OnKeyPress(key string) {
	for _, w := range g.widgets {
		w.OnKeyPress(key)
	}
}

// Render draws every widget in insertion order.
func (g *Group) Render() {
	for _, w := range g.widgets {
		w.Render()
	}
}
