package textinput_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/surfacetest"
)

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	doc := `
pos_x = 12.0
pos_y = 34.0
width = 200.0
contour_color = "#FF0000"
text_font = "Go Mono"
allow_overflow = false
`
	cfg, err := textinput.DecodeConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}

	want := textinput.DefaultConfig()
	want.X, want.Y = 12, 34
	want.Width = 200
	want.BorderColor = "#FF0000"
	want.FontFamily = "Go Mono"
	want.AllowOverflow = false

	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreFields(textinput.Config{}, "Submit")); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"unknown key", `colour = "red"`, true},
		{"bad color", `text_color = "blurple"`, true},
		{"zero height", `height = 0.0`, true},
		{"syntax", `width = `, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := textinput.DecodeConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, textinput.ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.toml")
	if err := os.WriteFile(path, []byte("placeholder = \"Name\"\ncontour_width = 2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := textinput.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Placeholder != "Name" || cfg.BorderWidth != 2 {
		t.Errorf("placeholder=%q border=%v", cfg.Placeholder, cfg.BorderWidth)
	}

	if _, err := textinput.LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestWithConfigThenOptions(t *testing.T) {
	base := textinput.DefaultConfig()
	base.Width = 300
	base.Placeholder = "from config"

	w, err := textinput.New(surfacetest.NewRecorder(), textinput.WithConfig(base), textinput.WithPlaceholder("override"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg := w.Config()
	if cfg.Width != 300 || cfg.Placeholder != "override" {
		t.Errorf("width=%v placeholder=%q", cfg.Width, cfg.Placeholder)
	}
}

func TestColorParsing(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{in: "black", want: [4]uint8{0, 0, 0, 255}},
		{in: "Black", want: [4]uint8{0, 0, 0, 255}},
		{in: " white ", want: [4]uint8{255, 255, 255, 255}},
		{in: "#FFFFFF", want: [4]uint8{255, 255, 255, 255}},
		{in: "#f0a", want: [4]uint8{255, 0, 170, 255}},
		{in: "#80808040", want: [4]uint8{32, 32, 32, 64}}, // premultiplied
		{in: "transparent", want: [4]uint8{0, 0, 0, 0}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := textinput.ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, textinput.ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := [4]uint8{c.R, c.G, c.B, c.A}; got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
