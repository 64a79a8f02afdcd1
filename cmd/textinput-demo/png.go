package main

import (
	"image/color"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/backend/raster"
	"github.com/go-theft-auto/textinput/internal/script"
)

// runPNG replays the script headlessly and saves one frame.
func runPNG(cfg textinput.Config, scriptPath, out string, p *printer) error {
	w, h := extent(cfg)
	canvas := raster.New(w, h)

	group, err := newGroup(canvas, cfg, p.submitted)
	if err != nil {
		return err
	}

	if scriptPath != "" {
		s, err := script.Load(scriptPath)
		if err != nil {
			return err
		}
		s.Replay(group)
	}

	canvas.Clear(color.White)
	group.Render()
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	textinput.Logger().Info("snapshot written", "path", out, "width", w, "height", h)
	return nil
}
