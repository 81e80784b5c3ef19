package mesh_buffers

import "github.com/Carmen-Shannon/oxy-primitives/engine/mesh"

// MeshBuffersOption is a functional option used to configure a MeshBuffers during construction.
type MeshBuffersOption func(*meshBuffers)

// WithLayout sets the vertex layout of the uploaded mesh.
//
// Parameters:
//   - layout: the mesh layout
//
// Returns:
//   - MeshBuffersOption: a function that sets the layout for this handle
func WithLayout(layout mesh.Layout) MeshBuffersOption {
	return func(b *meshBuffers) {
		b.layout = layout
	}
}

// WithVertexCount sets the number of vertices available for draw calls.
//
// Parameters:
//   - count: the vertex count
//
// Returns:
//   - MeshBuffersOption: a function that sets the vertex count for this handle
func WithVertexCount(count int) MeshBuffersOption {
	return func(b *meshBuffers) {
		b.vertexCount = count
	}
}

// WithIndexCount sets the number of indices available for indexed draw calls.
//
// Parameters:
//   - count: the index count
//
// Returns:
//   - MeshBuffersOption: a function that sets the index count for this handle
func WithIndexCount(count int) MeshBuffersOption {
	return func(b *meshBuffers) {
		b.indexCount = count
	}
}

// FromMesh copies the layout and counts of a mesh onto the handle.
//
// Parameters:
//   - m: the mesh being uploaded
//
// Returns:
//   - MeshBuffersOption: a function that applies the mesh metadata to this handle
func FromMesh(m mesh.MeshData) MeshBuffersOption {
	return func(b *meshBuffers) {
		b.layout = m.Layout()
		b.vertexCount = m.VertexCount()
		b.indexCount = m.IndexCount()
	}
}
