package textinput

import (
	"errors"
	"fmt"
	"image/color"
	"unicode"
	"unicode/utf8"
)

// ErrNilSurface is returned by New when no drawing surface is given.
var ErrNilSurface = errors.New("text input: nil surface")

// Key names delivered by hosts for non-printable keys.
// Any key name longer than one character is treated as a named key.
const (
	KeyBackspace  = "Backspace"
	KeyEnter      = "Enter"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
)

// selectorGlyph is drawn at the selector position while the input is selected.
const selectorGlyph = "|"

// State is a snapshot of the mutable part of a TextInput.
type State struct {
	Text     string
	Selected bool

	// SelectorIndex is the caret position in characters, 0..len(Text).
	SelectorIndex int

	// OverflowOffset is the number of leading characters scrolled out of view.
	OverflowOffset int
}

// inputState is the widget-owned mutable state. Indices count runes.
type inputState struct {
	text           []rune
	selected       bool
	selectorIndex  int
	overflowOffset int
}

// TextInput is a single-line text field drawn on a Surface.
//
// It is purely reactive: the host forwards pointer and key events to the
// OnPointerMove, OnPointerClick and OnKeyPress methods and calls Render when
// it repaints. A TextInput is not safe for concurrent use; all calls are
// expected to come from the host's UI thread.
type TextInput struct {
	surface Surface
	cursor  CursorHost
	cfg     Config
	colors  palette

	state inputState

	// anchor is where the visible text starts: left edge, baseline.
	anchor Vec2

	// namedKeys dispatches keys whose name is longer than one character.
	namedKeys map[string]func(key string)
}

// New creates a TextInput drawing on surface. Options are applied over
// DefaultConfig and the result is validated.
func New(surface Surface, opts ...Option) (*TextInput, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}

	colors, err := s.cfg.palette()
	if err != nil {
		return nil, fmt.Errorf("new text input: %w", err)
	}

	w := &TextInput{
		surface: surface,
		cursor:  s.cursorHost,
		cfg:     s.cfg,
		colors:  colors,
	}
	if w.cursor == nil {
		if ch, ok := surface.(CursorHost); ok {
			w.cursor = ch
		}
	}

	w.namedKeys = map[string]func(string){
		KeyBackspace:  func(string) { w.backspace() },
		KeyEnter:      func(string) { w.enter() },
		KeyArrowLeft:  w.arrow,
		KeyArrowRight: w.arrow,
		KeyArrowUp:    w.arrow,
		KeyArrowDown:  w.arrow,
	}

	w.updateAnchor()
	return w, nil
}

// Config returns the configuration the widget was built with, including the
// current position.
func (w *TextInput) Config() Config {
	return w.cfg
}

// State returns a copy of the widget state.
func (w *TextInput) State() State {
	return State{
		Text:           string(w.state.text),
		Selected:       w.state.selected,
		SelectorIndex:  w.state.selectorIndex,
		OverflowOffset: w.state.overflowOffset,
	}
}

// Text returns the current input text.
func (w *TextInput) Text() string {
	return string(w.state.text)
}

// Selected reports whether the input receives key presses.
func (w *TextInput) Selected() bool {
	return w.state.selected
}

// SetSelected selects or deselects the input programmatically.
func (w *TextInput) SetSelected(selected bool) {
	w.state.selected = selected
}

// SetSubmit replaces the Enter callback. Nil disables submission.
func (w *TextInput) SetSubmit(fn func(text string)) {
	w.cfg.Submit = fn
}

// Bounds returns the widget rectangle.
func (w *TextInput) Bounds() Rect {
	return Rect{X: w.cfg.X, Y: w.cfg.Y, W: w.cfg.Width, H: w.cfg.Height}
}

// TextAnchor returns the left edge and baseline of the visible text.
func (w *TextInput) TextAnchor() Vec2 {
	return w.anchor
}

// HitTest reports whether p lies within the widget, edges included.
func (w *TextInput) HitTest(p Vec2) bool {
	return w.Bounds().Contains(p)
}

// Reposition moves the widget so its top-left corner is at (x, y).
func (w *TextInput) Reposition(x, y float32) {
	w.cfg.X = x
	w.cfg.Y = y
	w.updateAnchor()
}

// updateAnchor centers the baseline vertically. FontSize/3 approximates the
// distance from the middle of a line to its baseline for typical fonts.
func (w *TextInput) updateAnchor() {
	w.anchor = Vec2{
		X: w.cfg.X,
		Y: w.cfg.Y + w.cfg.Height/2 + w.cfg.FontSize/3,
	}
}

// OnPointerMove switches the host pointer to a text cursor while it is over
// the widget and back to the default cursor when it leaves.
func (w *TextInput) OnPointerMove(p Vec2) {
	if !w.cfg.ChangeCursorOnHover || w.cursor == nil {
		return
	}
	if w.HitTest(p) {
		w.cursor.SetCursor(CursorText)
		return
	}
	// Only reset a cursor we could have set, so other widgets keep theirs.
	if w.cursor.Cursor() == CursorText {
		w.cursor.SetCursor(CursorDefault)
	}
}

// OnPointerClick selects the widget when p hits it and deselects it otherwise.
// The selector does not move.
func (w *TextInput) OnPointerClick(p Vec2) {
	w.state.selected = w.HitTest(p)
}

// OnKeyPress handles a key press while the widget is selected.
// key is either a single printable character or a key name such as
// KeyBackspace. Unknown key names and non-printable characters are ignored.
func (w *TextInput) OnKeyPress(key string) {
	if !w.state.selected {
		return
	}
	switch n := utf8.RuneCountInString(key); {
	case n == 0:
		return
	case n > 1:
		if handler, ok := w.namedKeys[key]; ok {
			handler(key)
		}
		return
	}
	r, size := utf8.DecodeRuneInString(key)
	if (r == utf8.RuneError && size == 1) || !unicode.IsGraphic(r) {
		// Control characters and invalid UTF-8 have no place on one line.
		return
	}
	w.insert(r)
}

// insert appends r to the text. When the visible part would no longer fit,
// the window slides forward one character at a time until it does, or the
// character is dropped if overflow is not allowed.
func (w *TextInput) insert(r rune) {
	st := &w.state
	w.applyFont()

	if !w.fits(st.text[st.overflowOffset:], r) {
		if !w.cfg.AllowOverflow {
			logger.Debug("text input: character rejected, overflow disabled", "char", string(r))
			return
		}
		offset := st.overflowOffset
		for offset < len(st.text) && !w.fits(st.text[offset:], r) {
			offset++
		}
		if !w.fits(st.text[offset:], r) {
			// Wider than the whole input on its own.
			logger.Debug("text input: character wider than input", "char", string(r), "width", w.cfg.Width)
			return
		}
		if offset != st.overflowOffset {
			logger.Debug("text input: overflow scrolled", "from", st.overflowOffset, "to", offset)
		}
		st.overflowOffset = offset
	}

	st.text = append(st.text, r)
	st.selectorIndex = len(st.text)
}

// backspace deletes the character left of the selector, then scrolls hidden
// leading characters back into view while they fit.
func (w *TextInput) backspace() {
	st := &w.state
	if len(st.text) == 0 {
		return
	}
	if st.selectorIndex > 0 {
		i := st.selectorIndex - 1
		st.text = append(st.text[:i], st.text[i+1:]...)
		st.selectorIndex--
	}
	if st.overflowOffset > len(st.text) {
		st.overflowOffset = len(st.text)
	}

	if st.overflowOffset > 0 {
		w.applyFont()
		for st.overflowOffset > 0 && w.fits(st.text[st.overflowOffset-1:]) {
			st.overflowOffset--
		}
	}
}

// enter submits the text and clears the input.
func (w *TextInput) enter() {
	st := &w.state
	if w.cfg.Submit == nil || len(st.text) == 0 {
		return
	}
	text := string(st.text)
	logger.Debug("text input: submit", "len", len(st.text))
	w.cfg.Submit(text)

	st.text = st.text[:0]
	st.overflowOffset = 0
	st.selectorIndex = 0
}

// arrow moves the selector one character left or right.
// Up and down have no meaning on a single line.
func (w *TextInput) arrow(key string) {
	st := &w.state
	switch key {
	case KeyArrowLeft:
		if st.selectorIndex > 0 {
			st.selectorIndex--
		}
	case KeyArrowRight:
		if st.selectorIndex < len(st.text) {
			st.selectorIndex++
		}
	}
}

// SelectorX returns the x coordinate of the selector in surface pixels.
// It is measured on demand from the visible text left of the selector.
func (w *TextInput) SelectorX() float32 {
	st := &w.state
	lo := clampi(st.overflowOffset, 0, len(st.text))
	hi := clampi(st.selectorIndex, lo, len(st.text))
	w.applyFont()
	return w.anchor.X + w.surface.MeasureText(string(st.text[lo:hi]))
}

// Render draws the widget: border and background, then either the
// placeholder or the visible text, then the selector on top.
func (w *TextInput) Render() {
	w.drawContour()
	w.drawPlaceholder()
	w.drawText()
	w.drawSelector()
}

func (w *TextInput) drawContour() {
	if w.cfg.BorderWidth <= 0 {
		return
	}
	s := w.surface
	s.SetLineWidth(w.cfg.BorderWidth)
	s.SetStrokeColor(w.colors.border)
	s.Rect(w.cfg.X, w.cfg.Y, w.cfg.Width, w.cfg.Height)
	s.SetFillColor(w.colors.background)
	s.FillRect(w.cfg.X, w.cfg.Y, w.cfg.Width, w.cfg.Height)
	s.Stroke()
}

func (w *TextInput) drawPlaceholder() {
	if len(w.state.text) > 0 || w.cfg.Placeholder == "" {
		return
	}
	w.fillText(w.cfg.Placeholder, w.anchor.X, PlaceholderColor)
}

func (w *TextInput) drawText() {
	st := &w.state
	if len(st.text) == 0 {
		return
	}
	w.fillText(string(st.text[clampi(st.overflowOffset, 0, len(st.text)):]), w.anchor.X, w.colors.text)
}

func (w *TextInput) drawSelector() {
	if !w.state.selected {
		return
	}
	w.fillText(selectorGlyph, w.SelectorX(), w.colors.text)
}

func (w *TextInput) fillText(text string, x float32, c color.Color) {
	w.applyFont()
	w.surface.SetFillColor(c)
	w.surface.FillText(text, x, w.anchor.Y)
}

func (w *TextInput) applyFont() {
	w.surface.SetFont(w.cfg.FontFamily, w.cfg.FontSize)
}

// fits reports whether visible followed by extra fits within the width.
// The caller sets the font.
func (w *TextInput) fits(visible []rune, extra ...rune) bool {
	s := string(visible)
	if len(extra) > 0 {
		s += string(extra)
	}
	return w.surface.MeasureText(s) <= w.cfg.Width
}
