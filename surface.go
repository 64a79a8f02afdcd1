package textinput

import "image/color"

// Surface is the 2D drawing context a TextInput renders into.
//
// The contract mirrors an HTML canvas 2D context reduced to what a single-line
// input needs. Text is drawn with its baseline at y. Rect appends a rectangle
// to the current path, and Stroke outlines that path with the stroke color and
// line width, then clears it.
//
// Implementations live under backend/ (raster images, terminals, OpenGL) and
// surfacetest provides a recording fake.
type Surface interface {
	// SetFont selects the font used by MeasureText and FillText.
	SetFont(family string, size float32)

	// SetFillColor sets the color used by FillText and FillRect.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float32)

	// MeasureText returns the advance width of text in pixels using the current font.
	MeasureText(text string) float32

	// FillText draws text with the fill color, baseline at y.
	FillText(text string, x, y float32)

	// Rect adds a rectangle to the current path.
	Rect(x, y, w, h float32)

	// FillRect fills a rectangle with the fill color immediately.
	FillRect(x, y, w, h float32)

	// Stroke outlines the current path and resets it.
	Stroke()
}

// Cursor is a host pointer style.
type Cursor int

const (
	// CursorDefault is the host's normal pointer ("auto" on a canvas).
	CursorDefault Cursor = iota
	// CursorText is the I-beam pointer shown over editable text.
	CursorText
)

// String returns the CSS name of the cursor.
func (c Cursor) String() string {
	switch c {
	case CursorText:
		return "text"
	default:
		return "default"
	}
}

// CursorHost is implemented by hosts that can change the pointer style.
// A Surface that also implements CursorHost is picked up automatically by New.
type CursorHost interface {
	SetCursor(c Cursor)
	Cursor() Cursor
}
