package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/backend/raster"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestCanvasDrawsBorderAndBackground(t *testing.T) {
	c := raster.New(200, 60)
	w, err := textinput.New(c, textinput.WithPosition(10, 10), textinput.WithPlaceholder(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.Render()

	img := c.Image()
	black := color.RGBA{A: 0xFF}
	for _, p := range []image.Point{{10, 10}, {160, 10}, {10, 40}, {160, 40}, {80, 10}} {
		if got := img.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("border pixel %v = %v, want black", p, got)
		}
	}
	for _, p := range []image.Point{{11, 11}, {80, 25}, {159, 39}} {
		if got := img.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("background pixel %v = %v, want white", p, got)
		}
	}
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel outside the widget = %v, want transparent", got)
	}
}

func TestCanvasDrawsText(t *testing.T) {
	c := raster.New(200, 60)
	w, err := textinput.New(c, textinput.WithPlaceholder(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.Render()
	if n := inkedPixels(c.Image(), image.Rect(1, 1, 149, 29)); n != 0 {
		t.Fatalf("empty input has %d inked pixels", n)
	}

	w.SetSelected(true)
	for _, r := range "Hello" {
		w.OnKeyPress(string(r))
	}
	w.Render()
	if n := inkedPixels(c.Image(), image.Rect(1, 1, 149, 29)); n == 0 {
		t.Error("typed text left no ink inside the input")
	}
}

func TestCanvasMeasureFollowsFont(t *testing.T) {
	c := raster.New(10, 10)
	c.SetFont("Arial", 15)
	small := c.MeasureText("Hello")
	c.SetFont("Arial", 30)
	big := c.MeasureText("Hello")
	if small <= 0 || big <= small {
		t.Errorf("MeasureText at 15px = %v, at 30px = %v", small, big)
	}
}

func TestCanvasOverflowFitsMeasuredWidth(t *testing.T) {
	c := raster.New(200, 40)
	w, err := textinput.New(c, textinput.WithSize(60, 30))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.SetSelected(true)
	for _, r := range "the quick brown fox jumps" {
		w.OnKeyPress(string(r))
	}

	st := w.State()
	if st.OverflowOffset == 0 {
		t.Fatal("expected the text to overflow a 60px input")
	}
	c.SetFont("Arial", 15)
	if got := c.MeasureText(st.Text[st.OverflowOffset:]); got > 60 {
		t.Errorf("visible text is %vpx, want <= 60", got)
	}
}

func TestCanvasCursorAndPNG(t *testing.T) {
	c := raster.New(40, 20)
	c.SetCursor(textinput.CursorText)
	if c.Cursor() != textinput.CursorText {
		t.Errorf("Cursor() = %v, want text", c.Cursor())
	}

	c.Clear(white)
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 40, Y: 20}) {
		t.Errorf("decoded size = %v", got)
	}
}

// inkedPixels counts pixels in r that are not plain white.
func inkedPixels(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				n++
			}
		}
	}
	return n
}
