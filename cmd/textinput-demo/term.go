package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/backend/terminal"
)

type submission struct {
	field int
	text  string
}

func runTerm(cfg textinput.Config, p *printer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()

	// Printing while the screen is active would corrupt it.
	var pending []submission
	defer func() {
		screen.Fini()
		for _, s := range pending {
			p.submitted(s.field, s.text)
		}
	}()

	surface := terminal.NewSurface(screen)
	group, err := newGroup(surface, cfg, func(field int, text string) {
		pending = append(pending, submission{field, text})
	})
	if err != nil {
		return err
	}
	adapter := terminal.NewAdapter(surface, group)

	for {
		screen.Clear()
		group.Render()
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			continue
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		}
		adapter.HandleEvent(ev)
	}
}
