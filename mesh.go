package triangle

// Mesh holds per-vertex attribute data ready for upload to a GPU buffer.
// Vertices is a flat sequence of float32 components, Components per vertex.
// The data is treated as immutable once handed to a renderer.
type Mesh struct {
	Vertices   []float32
	Components int
}

// Triangle returns the fixed three-vertex mesh drawn by the example:
// three 2D positions in normalized device coordinates.
func Triangle() Mesh {
	return Mesh{
		Vertices: []float32{
			-0.5, -0.5,
			0.0, 0.5,
			0.5, -0.5,
		},
		Components: 2,
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	if m.Components == 0 {
		return 0
	}
	return len(m.Vertices) / m.Components
}

// Stride returns the byte offset between consecutive vertices.
func (m Mesh) Stride() int {
	return m.Components * 4 // float32
}
