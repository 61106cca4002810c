package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window with a current OpenGL 4.1 core context.
// It implements triangle.Window.
type Window struct {
	window *glfw.Window
}

// NewWindow initializes GLFW, creates a window with an OpenGL 4.1 core
// context, makes the context current, and loads the OpenGL function
// pointers. Callers must run on the main OS thread.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{window: window}, nil
}

// ShouldClose reports whether the window close flag is set.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SwapBuffers presents the rendered frame.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window system events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Version returns the OpenGL version string of the current context.
func (w *Window) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
