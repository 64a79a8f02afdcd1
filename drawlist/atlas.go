package drawlist

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Atlas page limits. Printable ASCII at UI sizes fits in one row or two.
const (
	atlasMaxWidth = 512
	atlasPadding  = 1
	firstGlyph    = ' '
	lastGlyph     = '~'
	missingGlyph  = '?'
)

// glyph locates one rune in the atlas. Screen offsets are relative to the
// pen position on the baseline.
type glyph struct {
	x0, y0, x1, y1 float32
	u0, v0, u1, v1 float32
	advance        float32
}

// Atlas is an alpha-only glyph texture for one face, covering printable ASCII.
// Runes outside that range are drawn as '?'.
type Atlas struct {
	Image     *image.Alpha
	TextureID uint32

	face   font.Face
	glyphs map[rune]glyph
}

type rasterGlyph struct {
	r       rune
	dr      image.Rectangle
	mask    *image.Alpha
	advance fixed.Int26_6
	at      image.Point
}

// NewAtlas rasterizes the printable ASCII glyphs of face into an Image.
// The texture is not uploaded; see Surface.
func NewAtlas(face font.Face) *Atlas {
	var (
		glyphs        []rasterGlyph
		x, y, rowH, w int
	)
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if x+gw+atlasPadding > atlasMaxWidth {
			x = 0
			y += rowH + atlasPadding
			rowH = 0
		}
		// Faces may reuse the mask buffer between Glyph calls.
		var m *image.Alpha
		if mask != nil && !dr.Empty() {
			m = image.NewAlpha(image.Rect(0, 0, gw, gh))
			xdraw.Draw(m, m.Bounds(), mask, maskp, xdraw.Src)
		}
		glyphs = append(glyphs, rasterGlyph{r: r, dr: dr, mask: m, advance: adv, at: image.Pt(x, y)})
		x += gw + atlasPadding
		if gh > rowH {
			rowH = gh
		}
		if x > w {
			w = x
		}
	}
	h := y + rowH
	if w == 0 || h == 0 {
		w, h = 1, 1
	}

	a := &Atlas{
		Image:  image.NewAlpha(image.Rect(0, 0, w, h)),
		face:   face,
		glyphs: make(map[rune]glyph, len(glyphs)),
	}
	fw, fh := float32(w), float32(h)
	for _, g := range glyphs {
		dst := image.Rectangle{Min: g.at, Max: g.at.Add(g.dr.Size())}
		if g.mask != nil {
			xdraw.Draw(a.Image, dst, g.mask, image.Point{}, xdraw.Src)
		}
		a.glyphs[g.r] = glyph{
			x0:      float32(g.dr.Min.X),
			y0:      float32(g.dr.Min.Y),
			x1:      float32(g.dr.Max.X),
			y1:      float32(g.dr.Max.Y),
			u0:      float32(dst.Min.X) / fw,
			v0:      float32(dst.Min.Y) / fh,
			u1:      float32(dst.Max.X) / fw,
			v1:      float32(dst.Max.Y) / fh,
			advance: float32(g.advance) / 64,
		}
	}
	return a
}

// Has reports whether r has its own glyph in the atlas.
func (a *Atlas) Has(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// layout walks text as it is drawn: runes without a glyph become '?', and
// kerning is applied the same way font.MeasureString applies it. fn gets
// each glyph with the pen position before its advance. The final pen
// position is returned.
func (a *Atlas) layout(text string, x float32, fn func(g glyph, penX float32)) float32 {
	prev := rune(-1)
	for _, r := range text {
		g, ok := a.glyphs[r]
		if !ok {
			r = missingGlyph
			if g, ok = a.glyphs[r]; !ok {
				continue
			}
		}
		if prev >= 0 {
			x += float32(a.face.Kern(prev, r)) / 64
		}
		if fn != nil {
			fn(g, x)
		}
		x += g.advance
		prev = r
	}
	return x
}

// Measure returns the advance width of text as Quads lays it out.
func (a *Atlas) Measure(text string) float32 {
	return a.layout(text, 0, nil)
}

// Quads lays out text with the pen starting at (x, y), y being the baseline.
func (a *Atlas) Quads(text string, x, y float32) []GlyphQuad {
	quads := make([]GlyphQuad, 0, len(text))
	a.layout(text, x, func(g glyph, penX float32) {
		if g.x1 <= g.x0 || g.y1 <= g.y0 {
			return
		}
		quads = append(quads, GlyphQuad{
			X0: penX + g.x0, Y0: y + g.y0,
			X1: penX + g.x1, Y1: y + g.y1,
			U0: g.u0, V0: g.v0,
			U1: g.u1, V1: g.v1,
		})
	})
	return quads
}
