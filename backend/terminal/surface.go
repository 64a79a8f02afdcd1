// Package terminal hosts text inputs in a terminal through tcell.
//
// Widgets keep working in pixels; the Surface maps them onto character
// cells of CellWidth x CellHeight pixels. Because a terminal cannot draw
// between cells, a stroked rectangle is drawn with box characters in the
// cells surrounding it.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"

	"github.com/go-theft-auto/textinput"
)

var (
	_ textinput.Surface    = (*Surface)(nil)
	_ textinput.CursorHost = (*Surface)(nil)
)

// Default cell metrics in pixels.
const (
	DefaultCellWidth  float32 = 10
	DefaultCellHeight float32 = 15
)

type rectf struct {
	x, y, w, h float32
}

// Surface draws on a tcell.Screen.
type Surface struct {
	screen tcell.Screen
	cellW  float32
	cellH  float32

	fill   tcell.Color
	stroke tcell.Color
	path   []rectf

	cursor textinput.Cursor
}

// Option configures a Surface.
type Option func(*Surface)

// WithCellSize sets how many pixels one terminal cell spans.
func WithCellSize(w, h float32) Option {
	return func(s *Surface) {
		if w > 0 && h > 0 {
			s.cellW, s.cellH = w, h
		}
	}
}

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen, opts ...Option) *Surface {
	s := &Surface{
		screen: screen,
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
		fill:   tcell.ColorReset,
		stroke: tcell.ColorReset,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Screen returns the wrapped screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// CellSize returns the pixel size of one cell.
func (s *Surface) CellSize() (w, h float32) {
	return s.cellW, s.cellH
}

// CellCenter returns the pixel position at the center of a cell, which is
// where pointer events on that cell are reported.
func (s *Surface) CellCenter(col, row int) textinput.Vec2 {
	return textinput.Vec2{
		X: (float32(col) + 0.5) * s.cellW,
		Y: (float32(row) + 0.5) * s.cellH,
	}
}

// SetFont is a no-op: every terminal cell has the same font.
func (s *Surface) SetFont(family string, size float32) {}

func (s *Surface) SetFillColor(c color.Color) {
	s.fill = tcellColor(c)
}

func (s *Surface) SetStrokeColor(c color.Color) {
	s.stroke = tcellColor(c)
}

// SetLineWidth is a no-op: borders are always one cell wide.
func (s *Surface) SetLineWidth(w float32) {}

// MeasureText returns the printable cell width of text in pixels.
func (s *Surface) MeasureText(text string) float32 {
	return float32(ansi.PrintableRuneWidth(text)) * s.cellW
}

// FillText writes text into the cell row containing the baseline, keeping
// each cell's background.
func (s *Surface) FillText(text string, x, y float32) {
	col := s.col(x)
	// A baseline on a cell's bottom edge belongs to that cell.
	row := int(math.Floor(float64((y - 1) / s.cellH)))
	width, height := s.screen.Size()
	if row < 0 || row >= height {
		return
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col >= width {
			return
		}
		if col >= 0 {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, r, nil, style.Foreground(s.fill))
		}
		col += rw
	}
}

func (s *Surface) Rect(x, y, w, h float32) {
	s.path = append(s.path, rectf{x, y, w, h})
}

// FillRect paints the background of every cell the rectangle covers.
func (s *Surface) FillRect(x, y, w, h float32) {
	c0, r0, c1, r1 := s.cells(x, y, w, h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.setBackground(col, row, s.fill)
		}
	}
}

// Stroke draws a box around the cells each path rectangle covers.
func (s *Surface) Stroke() {
	style := tcell.StyleDefault.Foreground(s.stroke)
	for _, p := range s.path {
		c0, r0, c1, r1 := s.cells(p.x, p.y, p.w, p.h)
		left, top, right, bottom := c0-1, r0-1, c1, r1
		for col := c0; col < c1; col++ {
			s.setBorder(col, top, tcell.RuneHLine, style)
			s.setBorder(col, bottom, tcell.RuneHLine, style)
		}
		for row := r0; row < r1; row++ {
			s.setBorder(left, row, tcell.RuneVLine, style)
			s.setBorder(right, row, tcell.RuneVLine, style)
		}
		s.setBorder(left, top, tcell.RuneULCorner, style)
		s.setBorder(right, top, tcell.RuneURCorner, style)
		s.setBorder(left, bottom, tcell.RuneLLCorner, style)
		s.setBorder(right, bottom, tcell.RuneLRCorner, style)
	}
	s.path = s.path[:0]
}

// SetCursor maps the pointer style onto the terminal cursor shape, the
// closest thing a terminal has to a pointer style.
func (s *Surface) SetCursor(c textinput.Cursor) {
	s.cursor = c
	switch c {
	case textinput.CursorText:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		s.screen.SetCursorStyle(tcell.CursorStyleDefault)
	}
}

func (s *Surface) Cursor() textinput.Cursor {
	return s.cursor
}

func (s *Surface) col(x float32) int {
	return int(math.Floor(float64(x / s.cellW)))
}

// cells returns the half-open cell range [c0,c1) x [r0,r1) covered by a
// pixel rectangle.
func (s *Surface) cells(x, y, w, h float32) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(float64(x / s.cellW)))
	r0 = int(math.Floor(float64(y / s.cellH)))
	c1 = int(math.Ceil(float64((x + w) / s.cellW)))
	r1 = int(math.Ceil(float64((y + h) / s.cellH)))
	return c0, r0, c1, r1
}

func (s *Surface) inside(col, row int) bool {
	w, h := s.screen.Size()
	return col >= 0 && row >= 0 && col < w && row < h
}

func (s *Surface) setBackground(col, row int, bg tcell.Color) {
	if !s.inside(col, row) {
		return
	}
	mainc, combc, style, _ := s.screen.GetContent(col, row)
	if mainc == 0 {
		mainc = ' '
	}
	s.screen.SetContent(col, row, mainc, combc, style.Background(bg))
}

func (s *Surface) setBorder(col, row int, r rune, style tcell.Style) {
	if !s.inside(col, row) {
		return
	}
	_, _, old, _ := s.screen.GetContent(col, row)
	_, bg, _ := old.Decompose()
	s.screen.SetContent(col, row, r, nil, style.Background(bg))
}

// tcellColor converts c to a 24-bit terminal color. Fully transparent
// colors become the terminal default.
func tcellColor(c color.Color) tcell.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A == 0 {
		return tcell.ColorReset
	}
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
