package drawlist

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/fontface"
)

// TextureUploader turns an atlas image into a texture a renderer can sample.
// It returns the texture ID stored in DrawCmd.TextureID; 0 is reserved for
// untextured geometry.
type TextureUploader interface {
	UploadAlpha(img *image.Alpha) (uint32, error)
}

type atlasKey struct {
	family string
	size   float32
}

type rect struct {
	x, y, w, h float32
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithFonts makes the surface resolve families through reg instead of
// fontface.Default.
func WithFonts(reg *fontface.Registry) SurfaceOption {
	return func(s *Surface) { s.fonts = reg }
}

// WithCursorFunc forwards cursor changes to fn, typically a window system
// cursor switch.
func WithCursorFunc(fn func(textinput.Cursor)) SurfaceOption {
	return func(s *Surface) { s.setCursor = fn }
}

// Surface implements textinput.Surface by recording into a DrawList.
// Glyph atlases are built per font family and size on first use and
// uploaded through the TextureUploader.
type Surface struct {
	dl       *DrawList
	fonts    *fontface.Registry
	uploader TextureUploader
	atlases  map[atlasKey]*Atlas

	face  font.Face
	atlas *Atlas

	fill      uint32
	stroke    uint32
	lineWidth float32
	path      []rect

	cursor    textinput.Cursor
	setCursor func(textinput.Cursor)

	err error
}

var (
	_ textinput.Surface    = (*Surface)(nil)
	_ textinput.CursorHost = (*Surface)(nil)
)

// NewSurface returns a Surface uploading atlases through up.
func NewSurface(up TextureUploader, opts ...SurfaceOption) *Surface {
	s := &Surface{
		dl:        New(),
		uploader:  up,
		atlases:   make(map[atlasKey]*Atlas),
		fill:      PackColor(color.Black),
		stroke:    PackColor(color.Black),
		lineWidth: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fonts == nil {
		s.fonts = fontface.Default()
	}
	return s
}

// DrawList returns the list the surface records into.
func (s *Surface) DrawList() *DrawList {
	return s.dl
}

// BeginFrame clears the recorded geometry.
func (s *Surface) BeginFrame() {
	s.dl.Clear()
	s.path = s.path[:0]
}

// EndFrame finalizes the draw list and returns it for rendering.
func (s *Surface) EndFrame() *DrawList {
	s.dl.Finalize()
	return s.dl
}

// Err returns the first texture upload failure, if any. Text drawn with a
// font whose atlas failed to upload is skipped.
func (s *Surface) Err() error {
	return s.err
}

// SetFont selects the face and builds its atlas if needed.
func (s *Surface) SetFont(family string, size float32) {
	k := atlasKey{family: family, size: size}
	s.face = s.fonts.Face(family, size)
	if a, ok := s.atlases[k]; ok {
		s.atlas = a
		return
	}

	a := NewAtlas(s.face)
	id, err := s.uploader.UploadAlpha(a.Image)
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("drawlist: upload atlas %q %g: %w", family, size, err)
		}
		textinput.Logger().Warn("drawlist: atlas upload failed", "family", family, "size", size, "err", err)
		s.atlases[k] = nil
		s.atlas = nil
		return
	}
	a.TextureID = id
	s.atlases[k] = a
	s.atlas = a
	textinput.Logger().Debug("drawlist: atlas built", "family", family, "size", size,
		"w", a.Image.Rect.Dx(), "h", a.Image.Rect.Dy(), "texture", id)
}

func (s *Surface) SetFillColor(c color.Color)   { s.fill = PackColor(c) }
func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = PackColor(c) }
func (s *Surface) SetLineWidth(w float32)       { s.lineWidth = w }

// MeasureText measures text the way FillText draws it, so runes outside
// the atlas count as '?'. The default family at 15px is used when no font
// was set. Without an atlas the face itself is measured.
func (s *Surface) MeasureText(text string) float32 {
	if s.face == nil {
		s.SetFont(textinput.DefaultFontFamily, textinput.DefaultFontSize)
	}
	if s.atlas != nil {
		return s.atlas.Measure(text)
	}
	return fontface.Measure(s.face, text)
}

// FillText draws text with its baseline at y.
func (s *Surface) FillText(text string, x, y float32) {
	if s.face == nil {
		s.SetFont(textinput.DefaultFontFamily, textinput.DefaultFontSize)
	}
	if s.atlas == nil || text == "" {
		return
	}
	s.dl.SetTexture(s.atlas.TextureID)
	s.dl.AddGlyphQuads(s.atlas.Quads(text, x, y), s.fill)
}

// Rect adds a rectangle to the current path.
func (s *Surface) Rect(x, y, w, h float32) {
	s.path = append(s.path, rect{x, y, w, h})
}

// FillRect fills immediately; it does not touch the path.
func (s *Surface) FillRect(x, y, w, h float32) {
	s.dl.SetTexture(0)
	s.dl.AddRect(x, y, w, h, s.fill)
}

// Stroke outlines every path rectangle with the line centered on its edge,
// then clears the path.
func (s *Surface) Stroke() {
	if s.lineWidth > 0 && len(s.path) > 0 {
		s.dl.SetTexture(0)
		half := s.lineWidth / 2
		for _, r := range s.path {
			s.dl.AddRectOutline(r.x-half, r.y-half, r.w+s.lineWidth, r.h+s.lineWidth, s.stroke, s.lineWidth)
		}
	}
	s.path = s.path[:0]
}

// SetCursor records c and forwards it to the cursor function, if any.
func (s *Surface) SetCursor(c textinput.Cursor) {
	if c == s.cursor {
		return
	}
	s.cursor = c
	if s.setCursor != nil {
		s.setCursor(c)
	}
}

func (s *Surface) Cursor() textinput.Cursor {
	return s.cursor
}
