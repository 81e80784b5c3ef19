package mesh

import "github.com/cogentcore/webgpu/wgpu"

// Layout identifies how a MeshData arranges its vertex attributes in GPU buffers.
type Layout int

const (
	// LayoutInterleaved is a single buffer of Vertex values (position, normal, texcoord).
	LayoutInterleaved Layout = iota
	// LayoutPosition is a single buffer of PositionVertex values.
	LayoutPosition
	// LayoutSplitNormals is a position buffer plus a parallel normal buffer, 12 bytes per element each.
	LayoutSplitNormals
)

// IndexFormat is the index format used by every indexed mesh in this package.
const IndexFormat = wgpu.IndexFormatUint16

// MaxIndexedVertices is the largest vertex count addressable by 16-bit indices.
const MaxIndexedVertices = 1 << 16

// String returns a readable name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutInterleaved:
		return "interleaved"
	case LayoutPosition:
		return "position"
	case LayoutSplitNormals:
		return "split-normals"
	default:
		return "unknown"
	}
}

// Stride returns the byte stride of the primary vertex buffer for this layout.
//
// Returns:
//   - uint64: the stride in bytes, or 0 for an unknown layout
func (l Layout) Stride() uint64 {
	switch l {
	case LayoutInterleaved:
		return VertexStride
	case LayoutPosition, LayoutSplitNormals:
		return PositionStride
	default:
		return 0
	}
}

// VertexBufferLayouts returns the vertex buffer layouts a render pipeline must declare to consume
// meshes with this layout. Shader locations are 0 (position), 1 (normal) and 2 (texcoord).
// Split-normal meshes bind the position buffer at slot 0 and the normal buffer at slot 1.
//
// Returns:
//   - []wgpu.VertexBufferLayout: one entry per bound vertex buffer, or nil for an unknown layout
func (l Layout) VertexBufferLayouts() []wgpu.VertexBufferLayout {
	switch l {
	case LayoutInterleaved:
		return []wgpu.VertexBufferLayout{{
			ArrayStride: VertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: PositionOffset, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: NormalOffset, ShaderLocation: 1},
				{Format: wgpu.VertexFormatFloat32x2, Offset: TexCoordOffset, ShaderLocation: 2},
			},
		}}
	case LayoutPosition:
		return []wgpu.VertexBufferLayout{{
			ArrayStride: PositionStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		}}
	case LayoutSplitNormals:
		return []wgpu.VertexBufferLayout{
			{
				ArrayStride: PositionStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				},
			},
			{
				ArrayStride: NormalStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 1},
				},
			},
		}
	default:
		return nil
	}
}
