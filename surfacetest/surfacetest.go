// Package surfacetest provides a recording textinput.Surface for tests.
//
// Text metrics are fixed-advance so expected geometry can be written by hand:
// every rune is Advance pixels wide unless Widths overrides it.
package surfacetest

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-theft-auto/textinput"
)

var (
	_ textinput.Surface    = (*Recorder)(nil)
	_ textinput.CursorHost = (*Recorder)(nil)
)

// DefaultAdvance is the per-rune width used by NewRecorder.
const DefaultAdvance = 10

// Recorder implements textinput.Surface and textinput.CursorHost and keeps a
// readable log of the draw operations it receives.
type Recorder struct {
	// Advance is the width of a rune without an entry in Widths.
	Advance float32
	// Widths overrides the advance of individual runes.
	Widths map[rune]float32

	ops      []string
	path     []string
	measures int
	cursor   textinput.Cursor
	cursors  []textinput.Cursor

	family string
	size   float32
}

// NewRecorder returns a Recorder with DefaultAdvance metrics.
func NewRecorder() *Recorder {
	return &Recorder{Advance: DefaultAdvance}
}

// DrawOps returns the operations recorded since the last Clear.
func (r *Recorder) DrawOps() []string {
	return append([]string(nil), r.ops...)
}

// Clear forgets recorded operations and the measurement count.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.path = r.path[:0]
	r.measures = 0
}

// Measures returns how many times MeasureText was called since the last Clear.
func (r *Recorder) Measures() int {
	return r.measures
}

// CursorChanges returns every cursor passed to SetCursor, in order.
func (r *Recorder) CursorChanges() []textinput.Cursor {
	return append([]textinput.Cursor(nil), r.cursors...)
}

// Font returns the font most recently selected.
func (r *Recorder) Font() (family string, size float32) {
	return r.family, r.size
}

// Width returns the fixed-metric width of text.
func (r *Recorder) Width(text string) float32 {
	var w float32
	for _, c := range text {
		if adv, ok := r.Widths[c]; ok {
			w += adv
			continue
		}
		w += r.Advance
	}
	return w
}

func (r *Recorder) record(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

// SetFont is recorded only when the font changes, which keeps logs short.
func (r *Recorder) SetFont(family string, size float32) {
	if family == r.family && size == r.size {
		return
	}
	r.family, r.size = family, size
	r.record("font %s %g", family, size)
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.record("fill %s", Hex(c))
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record("strokecolor %s", Hex(c))
}

func (r *Recorder) SetLineWidth(w float32) {
	r.record("linewidth %g", w)
}

func (r *Recorder) MeasureText(text string) float32 {
	r.measures++
	return r.Width(text)
}

func (r *Recorder) FillText(text string, x, y float32) {
	r.record("text %q %g %g", text, x, y)
}

func (r *Recorder) Rect(x, y, w, h float32) {
	r.path = append(r.path, fmt.Sprintf("%g %g %g %g", x, y, w, h))
	r.record("rect %g %g %g %g", x, y, w, h)
}

func (r *Recorder) FillRect(x, y, w, h float32) {
	r.record("fillrect %g %g %g %g", x, y, w, h)
}

func (r *Recorder) Stroke() {
	r.record("stroke [%s]", strings.Join(r.path, ", "))
	r.path = r.path[:0]
}

func (r *Recorder) SetCursor(c textinput.Cursor) {
	r.cursor = c
	r.cursors = append(r.cursors, c)
}

func (r *Recorder) Cursor() textinput.Cursor {
	return r.cursor
}

// Hex formats c as #rrggbbaa.
func Hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}
