/*
Package textinput provides a single-line text input widget drawn on a 2D
drawing surface.

# Overview

A TextInput is retained: it owns its text, selection flag, selector (caret)
position and horizontal scroll offset. It does not own an event loop. The
host forwards pointer and key events to it and asks it to Render whenever
the surface is repainted. Several widgets are usually held in a Group,
which forwards every event to each member.

# Quick Start

	canvas := raster.New(320, 80)
	input, err := textinput.New(canvas,
	    textinput.WithPosition(10, 10),
	    textinput.WithSize(200, 30),
	    textinput.WithSubmit(func(text string) { fmt.Println(text) }),
	)
	if err != nil {
	    return err
	}

	input.OnPointerClick(textinput.Vec2{X: 20, Y: 20}) // select
	for _, r := range "hello" {
	    input.OnKeyPress(string(r))
	}
	input.Render()
	input.OnKeyPress(textinput.KeyEnter) // prints "hello", clears the input

# Keys

OnKeyPress takes either a single character, which is inserted, or a key
name:

	Backspace        Delete the character left of the selector
	Enter            Submit the text and clear the input
	ArrowLeft        Move the selector one character left
	ArrowRight       Move the selector one character right
	ArrowUp          Ignored
	ArrowDown        Ignored

Other key names and control characters are ignored, as is every key while
the input is not selected. Characters are always appended at the end of the text; the
selector only affects where Backspace deletes and where the caret is drawn.

# Overflow

When AllowOverflow is set and a new character would not fit, leading
characters scroll out of view one at a time until the rest fits. Backspace
scrolls them back while they fit. Without overflow, characters that do not
fit are dropped.

# Surfaces

The widget draws through the Surface interface, which mirrors a small part
of an HTML canvas 2D context. Implementations live in subpackages:

	backend/raster    *image.RGBA, PNG snapshots
	backend/terminal  tcell screens, one cell per CellWidth x CellHeight pixels
	drawlist          vertex batches for backend/opengl
	surfacetest       recording fake for tests

A Surface that also implements CursorHost receives pointer cursor changes
while the pointer hovers the widget.

# Configuration

Config holds every construction parameter. It can be built with Options,
or decoded from TOML with DecodeConfig and LoadConfig:

	pos_x = 20.0
	pos_y = 20.0
	width = 240.0
	contour_color = "#336699"
	placeholder = "Search ..."
	allow_overflow = false

Absent keys keep their DefaultConfig values. Colors are CSS names or hex
strings (#rgb, #rgba, #rrggbb, #rrggbbaa).

# Logging

Widgets log through a shared log/slog logger on stderr. SetVerbose(true)
enables debug records for scrolling, rejected characters and submissions.
*/
package textinput
