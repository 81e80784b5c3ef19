package common

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FaceNormal computes the unnormalized normal of the triangle (a, b, c) using the right-hand rule.
// A counter-clockwise triangle seen from the side the normal points to yields a positive result.
//
// Parameters:
//   - a: first triangle corner
//   - b: second triangle corner
//   - c: third triangle corner
//
// Returns:
//   - mgl32.Vec3: the cross product (b - a) x (c - a)
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// MaxRadius returns the largest distance from the origin over all given positions.
//
// Parameters:
//   - positions: the points to measure
//
// Returns:
//   - float32: the bounding sphere radius centred on the origin, or 0 for no points
func MaxRadius(positions [][3]float32) float32 {
	var maxSq float32
	for _, p := range positions {
		sq := mgl32.Vec3(p).LenSqr()
		if sq > maxSq {
			maxSq = sq
		}
	}
	return math32.Sqrt(maxSq)
}

// PutFloat32s writes the given values into buf as consecutive little-endian float32 words.
// The caller must size buf to at least 4*len(values) bytes.
//
// Parameters:
//   - buf: destination byte slice
//   - values: the values to encode
func PutFloat32s(buf []byte, values ...float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
}

// Uint16sToBytes encodes a slice of uint16 values as little-endian bytes.
//
// Parameters:
//   - values: the values to encode
//
// Returns:
//   - []byte: 2*len(values) bytes, or nil if values is empty
func Uint16sToBytes(values []uint16) []byte {
	if len(values) == 0 {
		return nil
	}
	buf := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], v)
	}
	return buf
}

// AlignTo4 pads data with zero bytes so its length is a multiple of 4.
// GPU queue writes require 4-byte aligned sizes. The input is returned unchanged when already aligned.
//
// Parameters:
//   - data: the bytes to pad
//
// Returns:
//   - []byte: data, or a padded copy of it
func AlignTo4(data []byte) []byte {
	rem := len(data) % 4
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data)+4-rem)
	copy(padded, data)
	return padded
}
