// Package raster provides a textinput.Surface that draws into an in-memory
// RGBA image. It backs headless rendering and PNG snapshots, and the OpenGL
// backend shares its font handling through fontface.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/fontface"
)

var (
	_ textinput.Surface    = (*Canvas)(nil)
	_ textinput.CursorHost = (*Canvas)(nil)
)

// rectf is a path rectangle in surface coordinates.
type rectf struct {
	x, y, w, h float32
}

// Canvas is a 2D drawing surface over an *image.RGBA.
// Like an HTML canvas, it starts with a black fill and stroke, a 1px line
// and a 10px sans-serif font.
type Canvas struct {
	img   *image.RGBA
	fonts *fontface.Registry

	face      font.Face
	fill      *image.Uniform
	stroke    *image.Uniform
	lineWidth float32
	path      []rectf

	cursor textinput.Cursor
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithFonts sets the font registry. The default is fontface.Default().
func WithFonts(r *fontface.Registry) Option {
	return func(c *Canvas) { c.fonts = r }
}

// New creates a transparent canvas of width x height pixels.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts:     fontface.Default(),
		fill:      image.NewUniform(color.Black),
		stroke:    image.NewUniform(color.Black),
		lineWidth: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.face = c.fonts.Face("sans-serif", 10)
	return c
}

// Image returns the backing image. It is drawn into in place.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Clear paints the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

func (c *Canvas) SetFont(family string, size float32) {
	c.face = c.fonts.Face(family, size)
}

func (c *Canvas) SetFillColor(col color.Color) {
	c.fill = image.NewUniform(col)
}

func (c *Canvas) SetStrokeColor(col color.Color) {
	c.stroke = image.NewUniform(col)
}

func (c *Canvas) SetLineWidth(w float32) {
	if w > 0 {
		c.lineWidth = w
	}
}

func (c *Canvas) MeasureText(text string) float32 {
	return fontface.Measure(c.face, text)
}

// FillText draws text with its baseline at y.
func (c *Canvas) FillText(text string, x, y float32) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  c.fill,
		Face: c.face,
		Dot:  fixed.Point26_6{X: fontface.Fixed(x), Y: fontface.Fixed(y)},
	}
	d.DrawString(text)
}

func (c *Canvas) Rect(x, y, w, h float32) {
	c.path = append(c.path, rectf{x, y, w, h})
}

func (c *Canvas) FillRect(x, y, w, h float32) {
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	xdraw.Draw(c.img, r, c.fill, image.Point{}, xdraw.Over)
}

// Stroke outlines every rectangle in the path. The line is centered on the
// rectangle edge, as on a canvas, and snapped to whole pixels.
func (c *Canvas) Stroke() {
	half := c.lineWidth / 2
	for _, p := range c.path {
		outer := image.Rect(round(p.x-half), round(p.y-half), round(p.x+p.w+half), round(p.y+p.h+half))
		inner := image.Rect(round(p.x+half), round(p.y+half), round(p.x+p.w-half), round(p.y+p.h-half))
		if inner.Empty() {
			xdraw.Draw(c.img, outer, c.stroke, image.Point{}, xdraw.Over)
			continue
		}
		// Top, bottom, left, right.
		bands := [4]image.Rectangle{
			{Min: outer.Min, Max: image.Pt(outer.Max.X, inner.Min.Y)},
			{Min: image.Pt(outer.Min.X, inner.Max.Y), Max: outer.Max},
			{Min: image.Pt(outer.Min.X, inner.Min.Y), Max: image.Pt(inner.Min.X, inner.Max.Y)},
			{Min: image.Pt(inner.Max.X, inner.Min.Y), Max: image.Pt(outer.Max.X, inner.Max.Y)},
		}
		for _, b := range bands {
			xdraw.Draw(c.img, b, c.stroke, image.Point{}, xdraw.Over)
		}
	}
	c.path = c.path[:0]
}

func (c *Canvas) SetCursor(cur textinput.Cursor) {
	c.cursor = cur
}

func (c *Canvas) Cursor() textinput.Cursor {
	return c.cursor
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
