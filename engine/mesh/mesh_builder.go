package mesh

import "slices"

// MeshDataBuilderOption is a functional option for configuring a MeshData via NewMeshData.
type MeshDataBuilderOption func(*meshData)

// WithName is an option builder that sets the name of the MeshData.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshDataBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshDataBuilderOption {
	return func(m *meshData) {
		m.name = name
	}
}

// WithVertices is an option builder that sets interleaved vertices and switches the mesh to LayoutInterleaved.
// The slice is copied.
//
// Parameters:
//   - vertices: the interleaved vertices
//
// Returns:
//   - MeshDataBuilderOption: a function that applies the vertices option to a mesh
func WithVertices(vertices []Vertex) MeshDataBuilderOption {
	return func(m *meshData) {
		m.layout = LayoutInterleaved
		m.vertices = slices.Clone(vertices)
	}
}

// WithPositions is an option builder that sets position-only vertices and switches the mesh to LayoutPosition,
// unless split normals have already been supplied. The slice is copied.
//
// Parameters:
//   - positions: one position per vertex
//
// Returns:
//   - MeshDataBuilderOption: a function that applies the positions option to a mesh
func WithPositions(positions [][3]float32) MeshDataBuilderOption {
	return func(m *meshData) {
		if m.layout != LayoutSplitNormals {
			m.layout = LayoutPosition
		}
		m.positions = slices.Clone(positions)
	}
}

// WithSplitNormals is an option builder that sets a separate normal stream and switches the mesh to
// LayoutSplitNormals. Combine with WithPositions. The slice is copied.
//
// Parameters:
//   - normals: one normal per vertex, parallel to the positions
//
// Returns:
//   - MeshDataBuilderOption: a function that applies the split normals option to a mesh
func WithSplitNormals(normals [][3]float32) MeshDataBuilderOption {
	return func(m *meshData) {
		m.layout = LayoutSplitNormals
		m.normals = slices.Clone(normals)
	}
}

// WithIndices is an option builder that sets the 16-bit triangle list indices. The slice is copied.
//
// Parameters:
//   - indices: the indices
//
// Returns:
//   - MeshDataBuilderOption: a function that applies the indices option to a mesh
func WithIndices(indices []uint16) MeshDataBuilderOption {
	return func(m *meshData) {
		m.indices = slices.Clone(indices)
	}
}
