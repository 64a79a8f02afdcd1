package textinput

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid text input config")

// Default configuration values.
const (
	DefaultWidth       float32 = 150
	DefaultHeight      float32 = 30
	DefaultBorderWidth float32 = 1
	DefaultFontSize    float32 = 15
	DefaultFontFamily          = "Arial"
	DefaultPlaceholder         = "Enter text here ..."
)

// Config holds the geometry and style of a TextInput.
// It is fixed once the widget is constructed, apart from the position
// which Reposition updates.
//
// The TOML keys follow the parameter names hosts already use for canvas
// inputs, so an existing parameter file decodes unchanged.
type Config struct {
	X      float32 `toml:"pos_x"`
	Y      float32 `toml:"pos_y"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`

	// BorderWidth <= 0 disables both the border and the background fill.
	BorderWidth float32 `toml:"contour_width"`
	BorderColor string  `toml:"contour_color"`

	FontSize        float32 `toml:"text_size"`
	FontFamily      string  `toml:"text_font"`
	TextColor       string  `toml:"text_color"`
	BackgroundColor string  `toml:"background_color"`
	Placeholder     string  `toml:"placeholder"`

	AllowOverflow       bool `toml:"allow_overflow"`
	ChangeCursorOnHover bool `toml:"change_cursor_on_hover"`

	// Submit is called with the current text when Enter is pressed.
	// Nil makes Enter a no-op.
	Submit func(text string) `toml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		BorderWidth:         DefaultBorderWidth,
		BorderColor:         "black",
		FontSize:            DefaultFontSize,
		FontFamily:          DefaultFontFamily,
		TextColor:           "black",
		BackgroundColor:     "#FFFFFF",
		Placeholder:         DefaultPlaceholder,
		AllowOverflow:       true,
		ChangeCursorOnHover: true,
	}
}

// palette is the parsed form of the Config color strings.
type palette struct {
	border     color.RGBA
	text       color.RGBA
	background color.RGBA
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig describing the first problem found.
func (c Config) Validate() error {
	_, err := c.palette()
	return err
}

func (c Config) palette() (palette, error) {
	var p palette
	if c.Width <= 0 {
		return p, fmt.Errorf("%w: width must be positive, got %v", ErrInvalidConfig, c.Width)
	}
	if c.Height <= 0 {
		return p, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidConfig, c.Height)
	}
	if c.FontSize <= 0 {
		return p, fmt.Errorf("%w: text size must be positive, got %v", ErrInvalidConfig, c.FontSize)
	}
	if c.FontFamily == "" {
		return p, fmt.Errorf("%w: text font is empty", ErrInvalidConfig)
	}

	var err error
	if p.border, err = ParseColor(c.BorderColor); err != nil {
		return p, fmt.Errorf("%w: contour color: %w", ErrInvalidConfig, err)
	}
	if p.text, err = ParseColor(c.TextColor); err != nil {
		return p, fmt.Errorf("%w: text color: %w", ErrInvalidConfig, err)
	}
	if p.background, err = ParseColor(c.BackgroundColor); err != nil {
		return p, fmt.Errorf("%w: background color: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// DecodeConfig reads a TOML document over DefaultConfig, so keys that are
// absent keep their default values. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig decodes the TOML file at path. See DecodeConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Option configures a TextInput at construction.
type Option func(*settings)

// settings is what options mutate before New validates it.
type settings struct {
	cfg        Config
	cursorHost CursorHost
}

// WithConfig replaces the whole configuration. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithPosition sets the top-left corner of the input.
func WithPosition(x, y float32) Option {
	return func(s *settings) { s.cfg.X, s.cfg.Y = x, y }
}

// WithSize sets the width and height of the input.
func WithSize(w, h float32) Option {
	return func(s *settings) { s.cfg.Width, s.cfg.Height = w, h }
}

// WithBorder sets the border width and color. A width <= 0 hides the border
// and the background.
func WithBorder(width float32, color string) Option {
	return func(s *settings) { s.cfg.BorderWidth, s.cfg.BorderColor = width, color }
}

// WithFont sets the font family and size in pixels.
func WithFont(family string, size float32) Option {
	return func(s *settings) { s.cfg.FontFamily, s.cfg.FontSize = family, size }
}

// WithTextColor sets the color of typed text and the selector.
func WithTextColor(color string) Option {
	return func(s *settings) { s.cfg.TextColor = color }
}

// WithBackgroundColor sets the fill color inside the border.
func WithBackgroundColor(color string) Option {
	return func(s *settings) { s.cfg.BackgroundColor = color }
}

// WithPlaceholder sets the hint shown while the input is empty.
// An empty string disables it.
func WithPlaceholder(text string) Option {
	return func(s *settings) { s.cfg.Placeholder = text }
}

// WithSubmit registers the Enter callback.
func WithSubmit(fn func(text string)) Option {
	return func(s *settings) { s.cfg.Submit = fn }
}

// WithOverflow controls whether text may scroll past the right edge.
// When false, characters that do not fit are dropped.
func WithOverflow(allow bool) Option {
	return func(s *settings) { s.cfg.AllowOverflow = allow }
}

// WithHoverCursor controls whether hovering switches the host pointer to a text cursor.
func WithHoverCursor(enabled bool) Option {
	return func(s *settings) { s.cfg.ChangeCursorOnHover = enabled }
}

// WithCursorHost sets the pointer-style target explicitly. By default the
// surface is used when it implements CursorHost.
func WithCursorHost(h CursorHost) Option {
	return func(s *settings) { s.cursorHost = h }
}
