package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/backend/opengl"
	"github.com/go-theft-auto/textinput/drawlist"
)

const (
	windowWidth  = 480
	windowHeight = 240
	windowTitle  = "textinput demo"
)

func runGL(cfg textinput.Config, p *printer) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, h := extent(cfg)
	window, err := glfw.CreateWindow(max(w, windowWidth), max(h, windowHeight), windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	ww, wh := window.GetSize()
	renderer, err := opengl.NewRenderer(ww, wh)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	cursor := opengl.NewWindowCursor(window)
	defer cursor.Destroy()

	surface := drawlist.NewSurface(renderer, drawlist.WithCursorFunc(cursor.Set))
	group, err := newGroup(surface, cfg, p.submitted)
	if err != nil {
		return err
	}
	input := opengl.NewInputAdapter(window, group)
	defer input.Detach()

	for !window.ShouldClose() {
		glfw.PollEvents()

		ww, wh := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		renderer.Resize(ww, wh)
		renderer.SetFramebufferSize(fw, fh)

		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.94, 0.94, 0.94, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		surface.BeginFrame()
		group.Render()
		if err := renderer.Render(surface.EndFrame()); err != nil {
			return err
		}
		if err := surface.Err(); err != nil {
			return err
		}

		window.SwapBuffers()
	}
	return nil
}
