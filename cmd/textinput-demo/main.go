// Command textinput-demo shows two text inputs on one of three backends.
//
//	textinput-demo                                  # OpenGL window
//	textinput-demo -backend term                    # terminal, Esc or Ctrl-C quits
//	textinput-demo -backend png -script events.toml -out shot.png
//
// The OpenGL backend needs a GL 4.1 context and the X11/OpenGL headers
// required to build go-gl/glfw. Submitted text is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-theft-auto/textinput"
)

const (
	backendGL   = "gl"
	backendTerm = "term"
	backendPNG  = "png"

	// spacing between the two inputs and around the PNG snapshot.
	margin = 20
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	backend    string
	configPath string
	scriptPath string
	out        string
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("textinput-demo", flag.ContinueOnError)
	fs.StringVar(&opts.backend, "backend", backendGL, "rendering backend: gl, term or png")
	fs.StringVar(&opts.configPath, "config", "", "TOML widget configuration")
	fs.StringVar(&opts.scriptPath, "script", "", "TOML event script to replay (png backend)")
	fs.StringVar(&opts.out, "out", "textinput.png", "output file (png backend)")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	textinput.SetVerbose(opts.verbose)

	cfg := textinput.DefaultConfig()
	cfg.X, cfg.Y = margin, margin
	if opts.configPath != "" {
		var err error
		if cfg, err = textinput.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}

	p := newPrinter(stdout)
	switch opts.backend {
	case backendGL:
		return runGL(cfg, p)
	case backendTerm:
		return runTerm(cfg, p)
	case backendPNG:
		return runPNG(cfg, opts.scriptPath, opts.out, p)
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}
}

// newGroup lays out the configured input with a second one below it.
func newGroup(surface textinput.Surface, cfg textinput.Config, submit func(field int, text string)) (*textinput.Group, error) {
	first, err := textinput.New(surface,
		textinput.WithConfig(cfg),
		textinput.WithSubmit(func(text string) { submit(1, text) }),
	)
	if err != nil {
		return nil, err
	}
	second, err := textinput.New(surface,
		textinput.WithConfig(cfg),
		textinput.WithPosition(cfg.X, cfg.Y+cfg.Height+margin),
		textinput.WithPlaceholder("Second input ..."),
		textinput.WithSubmit(func(text string) { submit(2, text) }),
	)
	if err != nil {
		return nil, err
	}
	return textinput.NewGroup(first, second), nil
}

// extent returns the bottom-right corner of the layout built by newGroup.
func extent(cfg textinput.Config) (w, h int) {
	return int(cfg.X + cfg.Width + margin), int(cfg.Y + 2*cfg.Height + 2*margin)
}
