package mesh

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-primitives/common"
)

// meshData is the implementation of the MeshData interface.
type meshData struct {
	name      string
	layout    Layout
	vertices  []Vertex
	positions [][3]float32
	normals   [][3]float32
	indices   []uint16
}

// MeshData defines the interface for a generated primitive mesh.
// A MeshData is immutable once constructed: every accessor returning a slice returns a copy,
// and the byte encodings are rebuilt from the same source data on each call.
type MeshData interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Layout retrieves the vertex attribute arrangement of the mesh.
	//
	// Returns:
	//   - Layout: the vertex layout
	Layout() Layout

	// Vertices returns a copy of the interleaved vertices.
	// Meshes that are not LayoutInterleaved return nil.
	//
	// Returns:
	//   - []Vertex: the vertices
	Vertices() []Vertex

	// Positions returns a copy of the vertex positions for any layout.
	//
	// Returns:
	//   - [][3]float32: one position per vertex
	Positions() [][3]float32

	// Normals returns a copy of the separate normal stream of a LayoutSplitNormals mesh.
	// Other layouts return nil.
	//
	// Returns:
	//   - [][3]float32: one normal per vertex
	Normals() [][3]float32

	// Indices returns a copy of the 16-bit triangle list indices, or nil for unindexed meshes.
	//
	// Returns:
	//   - []uint16: the indices
	Indices() []uint16

	// VertexCount returns the number of vertices in the primary vertex buffer.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices, or 0 for unindexed meshes.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Indexed reports whether the mesh is drawn through an index buffer.
	//
	// Returns:
	//   - bool: true if the mesh has indices
	Indexed() bool

	// Stride returns the byte stride of the primary vertex buffer.
	//
	// Returns:
	//   - uint64: the stride in bytes
	Stride() uint64

	// VertexData returns the primary vertex buffer contents ready for GPU upload.
	//
	// Returns:
	//   - []byte: VertexCount * Stride bytes
	VertexData() []byte

	// NormalData returns the separate normal buffer contents of a LayoutSplitNormals mesh.
	//
	// Returns:
	//   - []byte: the normal buffer bytes, or nil for other layouts
	NormalData() []byte

	// IndexData returns the index buffer contents as little-endian uint16 values.
	//
	// Returns:
	//   - []byte: the index buffer bytes, or nil for unindexed meshes
	IndexData() []byte

	// BoundingRadius returns the bounding sphere radius measured as the maximum vertex
	// distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Validate checks the structural invariants of the mesh: in-range indices, complete
	// triangles, matching normal stream length and consistent buffer sizes.
	//
	// Returns:
	//   - error: an error wrapping ErrInvalidMesh describing the first violation, or nil
	Validate() error
}

var _ MeshData = &meshData{}

// NewMeshData creates a new MeshData instance with the specified options applied.
// The mesh defaults to LayoutInterleaved.
//
// Parameters:
//   - options: a variadic list of MeshDataBuilderOption functions to configure the MeshData
//
// Returns:
//   - MeshData: a new instance of MeshData configured with the provided options
func NewMeshData(options ...MeshDataBuilderOption) MeshData {
	m := &meshData{layout: LayoutInterleaved}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *meshData) Name() string {
	return m.name
}

func (m *meshData) Layout() Layout {
	return m.layout
}

func (m *meshData) Vertices() []Vertex {
	if m.layout != LayoutInterleaved {
		return nil
	}
	return slices.Clone(m.vertices)
}

func (m *meshData) Positions() [][3]float32 {
	if m.layout == LayoutInterleaved {
		out := make([][3]float32, len(m.vertices))
		for i := range m.vertices {
			out[i] = m.vertices[i].Position
		}
		return out
	}
	return slices.Clone(m.positions)
}

func (m *meshData) Normals() [][3]float32 {
	if m.layout != LayoutSplitNormals {
		return nil
	}
	return slices.Clone(m.normals)
}

func (m *meshData) Indices() []uint16 {
	return slices.Clone(m.indices)
}

func (m *meshData) VertexCount() int {
	if m.layout == LayoutInterleaved {
		return len(m.vertices)
	}
	return len(m.positions)
}

func (m *meshData) IndexCount() int {
	return len(m.indices)
}

func (m *meshData) Indexed() bool {
	return len(m.indices) > 0
}

func (m *meshData) Stride() uint64 {
	return m.layout.Stride()
}

func (m *meshData) VertexData() []byte {
	switch m.layout {
	case LayoutInterleaved:
		if len(m.vertices) == 0 {
			return nil
		}
		buf := make([]byte, len(m.vertices)*VertexStride)
		for i := range m.vertices {
			m.vertices[i].marshalInto(buf[i*VertexStride:])
		}
		return buf
	case LayoutPosition, LayoutSplitNormals:
		return marshalVec3s(m.positions)
	default:
		return nil
	}
}

func (m *meshData) NormalData() []byte {
	if m.layout != LayoutSplitNormals {
		return nil
	}
	return marshalVec3s(m.normals)
}

func (m *meshData) IndexData() []byte {
	return common.Uint16sToBytes(m.indices)
}

func (m *meshData) BoundingRadius() float32 {
	return common.MaxRadius(m.Positions())
}

func (m *meshData) Validate() error {
	if m.layout.Stride() == 0 {
		return fmt.Errorf("mesh %q: unknown layout %d: %w", m.name, m.layout, ErrInvalidMesh)
	}

	count := m.VertexCount()
	if count == 0 {
		return fmt.Errorf("mesh %q: no vertices: %w", m.name, ErrInvalidMesh)
	}

	if m.layout == LayoutSplitNormals && len(m.normals) != len(m.positions) {
		return fmt.Errorf("mesh %q: %d normals for %d positions: %w", m.name, len(m.normals), len(m.positions), ErrInvalidMesh)
	}

	if m.Indexed() {
		if count > MaxIndexedVertices {
			return fmt.Errorf("mesh %q: %d vertices exceed 16-bit indices: %w", m.name, count, ErrInvalidMesh)
		}
		if len(m.indices)%3 != 0 {
			return fmt.Errorf("mesh %q: index count %d is not a multiple of 3: %w", m.name, len(m.indices), ErrInvalidMesh)
		}
		for i, idx := range m.indices {
			if int(idx) >= count {
				return fmt.Errorf("mesh %q: index %d at %d out of range [0,%d): %w", m.name, idx, i, count, ErrInvalidMesh)
			}
		}
	} else if count%3 != 0 {
		return fmt.Errorf("mesh %q: vertex count %d is not a multiple of 3: %w", m.name, count, ErrInvalidMesh)
	}

	if got, want := uint64(len(m.VertexData())), uint64(count)*m.Stride(); got != want {
		return fmt.Errorf("mesh %q: vertex data is %d bytes, want %d: %w", m.name, got, want, ErrInvalidMesh)
	}

	return nil
}
