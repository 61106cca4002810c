// Example draws a single red triangle in a GLFW window.
//
// Prerequisites:
//
//	OpenGL 4.1 and X11/GLFW development headers
//	go run ./example/
//
// The example creates a 640x480 window, compiles the default shader pair,
// uploads the triangle mesh once, and redraws it every frame until the
// window is closed. The fill color pulses via the uColor uniform.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/chewxy/math32"

	"github.com/opengl-primer/triangle"
	"github.com/opengl-primer/triangle/backend/opengl"
)

const (
	windowWidth  = 640
	windowHeight = 480
	windowTitle  = "Hello World"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	fmt.Println("OpenGL", window.Version())

	renderer, err := opengl.NewRenderer(triangle.Triangle(),
		triangle.DefaultVertexSource, triangle.DefaultFragmentSource)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	return triangle.Run(window, renderer, triangle.WithFrameFunc(func(elapsed float32) {
		w, h := window.FramebufferSize()
		renderer.Resize(w, h)

		// Pulse the red channel the way the original tutorial animates u_Color.
		red := 0.5 + 0.5*math32.Sin(elapsed*2)
		renderer.SetColor(red, 0, 0, 1)
	}))
}
