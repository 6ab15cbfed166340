package main

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewWindow creates the window and makes its context current on the calling thread.
// glfw must already be initialised.
func NewWindow(cfg Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := glfw.CreateWindow(
		cfg.Width,
		cfg.Height,
		cfg.Title,
		nil,
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &Window{
		Window: window,
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)
	w.SetKeyCallback(w.key)
	w.SetFramebufferSizeCallback(w.resize)
	w.Show()

	err = gl.Init()
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Println("OpenGL vendor", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Println("OpenGL renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Println("GLSL version", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	width, height := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	c := cfg.ClearColour
	gl.ClearColor(c[0], c[1], c[2], c[3])

	return w, nil
}

type Window struct {
	*glfw.Window
}

func (w *Window) key(
	window *glfw.Window,
	key glfw.Key,
	scancode int,
	action glfw.Action,
	mods glfw.ModifierKey,
) {
	if key == glfw.KeyEscape && action == glfw.Press {
		window.SetShouldClose(true)
	}
}

func (w *Window) resize(window *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
