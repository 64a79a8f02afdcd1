// Command gen renders the text input in its typical states on the raster
// backend and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/backend/raster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
// The widget is placed at (pad, pad); opts must not move it.
type screenshot struct {
	name   string
	opts   []textinput.Option
	events func(*textinput.TextInput)
}

const (
	shotWidth  = 220
	shotHeight = 50
	pad        = 10
)

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	canvas := raster.New(shotWidth, shotHeight)
	canvas.Clear(color.White)

	opts := append([]textinput.Option{textinput.WithPosition(pad, pad)}, s.opts...)
	w, err := textinput.New(canvas, opts...)
	if err != nil {
		return err
	}
	if s.events != nil {
		s.events(w)
	}
	w.Render()

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, canvas.Image(), &jpeg.Options{Quality: 90})
}

func selectAndType(text string) func(*textinput.TextInput) {
	return func(w *textinput.TextInput) {
		w.SetSelected(true)
		for _, r := range text {
			w.OnKeyPress(string(r))
		}
	}
}

// buildScreenshots returns every state to capture.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "placeholder"},
		{name: "selected-empty", events: func(w *textinput.TextInput) { w.SetSelected(true) }},
		{name: "typed", events: selectAndType("Hello, world!")},
		{
			name: "selector-moved",
			events: func(w *textinput.TextInput) {
				selectAndType("Hello, world!")(w)
				for i := 0; i < 6; i++ {
					w.OnKeyPress(textinput.KeyArrowLeft)
				}
			},
		},
		{name: "overflow", events: selectAndType("The quick brown fox jumps over the lazy dog")},
		{
			name:   "overflow-disabled",
			opts:   []textinput.Option{textinput.WithOverflow(false)},
			events: selectAndType("The quick brown fox jumps over the lazy dog"),
		},
		{
			name: "styled",
			opts: []textinput.Option{
				textinput.WithBorder(2, "#336699"),
				textinput.WithBackgroundColor("#eef4fb"),
				textinput.WithTextColor("navy"),
				textinput.WithFont("monospace", 14),
			},
			events: selectAndType("go run ./cmd"),
		},
		{name: "borderless", opts: []textinput.Option{textinput.WithBorder(0, "black")}},
	}
}
