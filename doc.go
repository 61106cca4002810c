/*
Package triangle is a minimal OpenGL "first triangle" example, split so the
frame loop and vertex data live in a GL-free package while every OpenGL and
GLFW call lives in backend/opengl.

# Overview

The package draws a single fixed triangle: a vertex/fragment shader pair is
compiled and linked into one program, three 2D positions are uploaded to a
GPU buffer once, and the frame loop clears, draws, presents, and polls until
the window close flag is set.

# Quick Start

	// Setup (example/main.go shows the full driver)
	window, _ := opengl.NewWindow(640, 480, "Hello World")
	defer window.Close()

	renderer, _ := opengl.NewRenderer(triangle.Triangle(),
		triangle.DefaultVertexSource, triangle.DefaultFragmentSource)
	defer renderer.Delete()

	triangle.Run(window, renderer)

Run drives the loop against the Window and Renderer interfaces, so both can
be mocked in tests without a GPU context.
*/
package triangle
