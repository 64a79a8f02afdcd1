// Package fontface resolves font family names to golang.org/x/image faces
// and measures text with them.
//
// Surfaces that rasterize text (backend/raster, backend/opengl) share a
// Registry so that measurement and drawing agree on glyph advances.
package fontface

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/textinput"
)

// Built-in family names.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
	FamilyGoBold = "Go Bold"
)

// Fallback is used when no outline font can be resolved.
var Fallback font.Face = basicfont.Face7x13

// defaultAliases maps common CSS family names onto the bundled Go fonts.
var defaultAliases = map[string]string{
	"arial":      FamilyGo,
	"helvetica":  FamilyGo,
	"sans-serif": FamilyGo,
	"verdana":    FamilyGo,
	"monospace":  FamilyGoMono,
	"courier":    FamilyGoMono,
	"consolas":   FamilyGoMono,
}

type faceKey struct {
	family string
	size   float32
}

// Registry maps family names to parsed fonts and caches faces per size.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	fonts   map[string]*opentype.Font // keyed by lower-case family
	aliases map[string]string         // lower-case alias -> family
	faces   map[faceKey]font.Face
}

// NewRegistry returns a Registry with the Go fonts and common aliases registered.
func NewRegistry() *Registry {
	r := &Registry{
		fonts:   make(map[string]*opentype.Font),
		aliases: make(map[string]string),
		faces:   make(map[faceKey]font.Face),
	}
	for name, ttf := range map[string][]byte{
		FamilyGo:     goregular.TTF,
		FamilyGoMono: gomono.TTF,
		FamilyGoBold: gobold.TTF,
	} {
		if err := r.Register(name, ttf); err != nil {
			textinput.Logger().Warn("fontface: bundled font failed to parse", "family", name, "err", err)
		}
	}
	for alias, family := range defaultAliases {
		r.aliases[alias] = family
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a process-wide Registry created on first use.
func Default() *Registry {
	defaultOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// Register parses ttf (TrueType or OpenType) and makes it available as family.
// Registering an existing family replaces it and drops its cached faces.
func (r *Registry) Register(family string, ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fontface: parse %q: %w", family, err)
	}
	key := strings.ToLower(family)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[key] = f
	for k, face := range r.faces {
		if k.family == key {
			face.Close()
			delete(r.faces, k)
		}
	}
	return nil
}

// Alias makes alias resolve to family.
func (r *Registry) Alias(alias, family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = family
}

// resolve returns the registered font for family, following aliases and
// falling back to the Go regular font. Callers hold r.mu.
func (r *Registry) resolve(family string) (string, *opentype.Font) {
	key := strings.ToLower(strings.TrimSpace(family))
	if f, ok := r.fonts[key]; ok {
		return key, f
	}
	if target, ok := r.aliases[key]; ok {
		t := strings.ToLower(target)
		if f, ok := r.fonts[t]; ok {
			return t, f
		}
	}
	fallback := strings.ToLower(FamilyGo)
	textinput.Logger().Debug("fontface: unknown family, using fallback", "family", family, "fallback", FamilyGo)
	return fallback, r.fonts[fallback]
}

// Face returns a face for family at size pixels. Faces are cached and must
// not be closed by the caller.
func (r *Registry) Face(family string, size float32) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, f := r.resolve(family)
	if f == nil {
		return Fallback
	}
	fk := faceKey{family: key, size: size}
	if face, ok := r.faces[fk]; ok {
		return face
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72, // one point per pixel
		Hinting: font.HintingFull,
	})
	if err != nil {
		textinput.Logger().Warn("fontface: face creation failed", "family", family, "size", size, "err", err)
		return Fallback
	}
	r.faces[fk] = face
	return face
}

// Measure returns the advance width of text in pixels.
func Measure(face font.Face, text string) float32 {
	if face == nil || text == "" {
		return 0
	}
	return float32(font.MeasureString(face, text)) / 64
}

// Ascent returns the face ascent in whole pixels, rounded up.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// Descent returns the face descent in whole pixels, rounded up.
func Descent(face font.Face) int {
	return face.Metrics().Descent.Ceil()
}

// Fixed converts a pixel coordinate to 26.6 fixed point.
func Fixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}
