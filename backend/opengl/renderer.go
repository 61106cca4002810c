// Package opengl provides the OpenGL 4.1 backend for the triangle package.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/opengl-primer/triangle"
)

// Renderer draws a single mesh with one shader program.
// It owns the program, VAO and VBO handles and releases them in Delete.
type Renderer struct {
	program  uint32
	vao, vbo uint32
	colorLoc int32
	count    int32
	color    [4]float32
}

// NewRenderer compiles and links the shader pair, uploads the mesh to a
// static vertex buffer, and configures the position attribute. The fill
// color starts out solid red; change it with SetColor.
func NewRenderer(mesh triangle.Mesh, vertexSrc, fragmentSrc string) (*Renderer, error) {
	r := &Renderer{
		count: int32(mesh.VertexCount()),
		color: [4]float32{1, 0, 0, 1},
	}

	var err error
	r.program, err = newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.colorLoc = gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))

	// The core profile requires a VAO even for a single attribute.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, int32(mesh.Components), gl.FLOAT, false, int32(mesh.Stride()), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return r, nil
}

// SetColor sets the uniform fill color used by the next draw call.
func (r *Renderer) SetColor(red, green, blue, alpha float32) {
	r.color = [4]float32{red, green, blue, alpha}
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw issues one draw call for the uploaded mesh.
func (r *Renderer) Draw() error {
	gl.UseProgram(r.program)
	gl.Uniform4f(r.colorLoc, r.color[0], r.color[1], r.color[2], r.color[3])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.count)
	gl.BindVertexArray(0)

	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// compileShader compiles a single shader stage. On failure it fetches the
// compile log, deletes the failed handle, and returns the diagnostic text
// together with the stage kind.
func compileShader(stage triangle.Stage, source string) (uint32, error) {
	var xtype uint32
	switch stage {
	case triangle.StageVertex:
		xtype = gl.VERTEX_SHADER
	case triangle.StageFragment:
		xtype = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unknown shader stage %d", int(stage))
	}

	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", stage, string(log))
	}

	return shader, nil
}

// newProgram compiles both stages and links them into one program.
// A stage compile failure aborts the link; the intermediate stage handles
// are deleted on every path once the program holds them.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(triangle.StageVertex, vertexSrc)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(triangle.StageFragment, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	// The stage objects are linked into the program now.
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.ValidateProgram(program)

	return program, nil
}
