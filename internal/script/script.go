// Package script replays recorded pointer and key events against a widget.
//
// Scripts are TOML files with one [[event]] table per event:
//
//	[[event]]
//	kind = "click"
//	x = 40.0
//	y = 35.0
//
//	[[event]]
//	kind = "type"
//	text = "hello"
//
//	[[event]]
//	kind = "key"
//	key = "Enter"
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/textinput"
)

// Event kinds.
const (
	KindMove  = "move"
	KindClick = "click"
	KindKey   = "key"
	KindType  = "type"
)

// ErrInvalidScript is wrapped by decoding errors that are not TOML syntax
// errors.
var ErrInvalidScript = errors.New("invalid script")

// Event is one recorded input event.
type Event struct {
	Kind string  `toml:"kind"`
	X    float32 `toml:"x"`
	Y    float32 `toml:"y"`
	Key  string  `toml:"key"`
	Text string  `toml:"text"`
}

// Script is an ordered list of events.
type Script struct {
	Events []Event `toml:"event"`
}

// Decode reads a script and checks every event.
func Decode(r io.Reader) (Script, error) {
	var s Script
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Script{}, fmt.Errorf("decode script: %w: %s", ErrInvalidScript, strict.String())
		}
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	for i, ev := range s.Events {
		if err := ev.validate(); err != nil {
			return Script{}, fmt.Errorf("decode script: event %d: %w", i, err)
		}
	}
	return s, nil
}

// Load reads the script at path.
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("load script: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (ev Event) validate() error {
	switch ev.Kind {
	case KindMove, KindClick:
		return nil
	case KindKey:
		if ev.Key == "" {
			return fmt.Errorf("%w: key event without key", ErrInvalidScript)
		}
		return nil
	case KindType:
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidScript, ev.Kind)
	}
}

// Replay sends every event to w in order. A "type" event sends one key
// press per character of Text.
func (s Script) Replay(w textinput.Widget) {
	for i, ev := range s.Events {
		textinput.Logger().Debug("script: replay", "index", i, "kind", ev.Kind)
		p := textinput.Vec2{X: ev.X, Y: ev.Y}
		switch ev.Kind {
		case KindMove:
			w.OnPointerMove(p)
		case KindClick:
			w.OnPointerClick(p)
		case KindKey:
			w.OnKeyPress(ev.Key)
		case KindType:
			for _, r := range ev.Text {
				w.OnKeyPress(string(r))
			}
		}
	}
}
