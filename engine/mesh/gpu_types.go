package mesh

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-primitives/common"
)

// Byte offsets and strides of the vertex formats produced by this package.
const (
	PositionOffset = 0
	NormalOffset   = 12
	TexCoordOffset = 24

	VertexStride   = 32
	PositionStride = 12
	NormalStride   = 12
)

// Vertex is the GPU-aligned representation of a single interleaved mesh vertex.
// Size: 32 bytes, no padding required.
type Vertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the Vertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, VertexStride)
	v.marshalInto(buf)
	return buf
}

func (v *Vertex) marshalInto(buf []byte) {
	common.PutFloat32s(buf,
		v.Position[0], v.Position[1], v.Position[2],
		v.Normal[0], v.Normal[1], v.Normal[2],
		v.TexCoord[0], v.TexCoord[1],
	)
}

// PositionVertex is a position-only vertex used by the skybox.
// Size: 12 bytes.
type PositionVertex struct {
	Position [3]float32 // offset 0: vertex position (12 bytes)
}

// Size returns the size of the PositionVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *PositionVertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the PositionVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 12-byte buffer ready for GPU upload.
func (v *PositionVertex) Marshal() []byte {
	buf := make([]byte, PositionStride)
	common.PutFloat32s(buf, v.Position[0], v.Position[1], v.Position[2])
	return buf
}

// marshalVec3s packs a slice of 3-component vectors into a tightly packed byte buffer.
func marshalVec3s(values [][3]float32) []byte {
	if len(values) == 0 {
		return nil
	}
	buf := make([]byte, len(values)*12)
	for i, v := range values {
		common.PutFloat32s(buf[i*12:], v[0], v[1], v[2])
	}
	return buf
}
