package textinput

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// PlaceholderColor is the gray used for placeholder text (#808080).
var PlaceholderColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

// ParseColor parses a CSS-style color: a named color ("black", "Black",
// "steelblue") or a hex literal ("#fff", "#FFFFFF", "#FFFFFF80").
// The result is alpha-premultiplied.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name[1:], s)
	}
	if name == "transparent" {
		return color.RGBA{}, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
	}
	return c, nil
}

func parseHexColor(hex, orig string) (color.RGBA, error) {
	switch len(hex) {
	case 3, 4:
		// Expand shorthand: "f0a" -> "ff00aa".
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: bad hex length %q", ErrInvalidColor, orig)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, orig, err)
	}
	// Hex alpha is straight; color.RGBA is premultiplied.
	c := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
