package triangle

// Stage identifies a single programmable pipeline stage.
type Stage int

const (
	// StageVertex is the vertex shader stage.
	StageVertex Stage = iota
	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the stage name as it appears in compile diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// DefaultVertexSource passes the position attribute through unchanged.
const DefaultVertexSource = `
#version 410 core

layout(location = 0) in vec4 position;

void main() {
    gl_Position = position;
}
`

// DefaultFragmentSource fills the triangle with a uniform color.
// uColor defaults to solid red in the renderer.
const DefaultFragmentSource = `
#version 410 core

uniform vec4 uColor;

out vec4 color;

void main() {
    color = uColor;
}
`
