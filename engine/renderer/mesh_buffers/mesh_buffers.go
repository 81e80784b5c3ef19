package mesh_buffers

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
	"github.com/cogentcore/webgpu/wgpu"
)

// meshBuffers is the unexported implementation of MeshBuffers.
type meshBuffers struct {
	mu *sync.Mutex

	// label is a debug label added for convenience.
	label string

	// layout describes which vertex buffers are bound and how their attributes are laid out.
	layout mesh.Layout

	// The following fields are GPU allocated resources owned by this handle. They are populated by the
	// Renderer during upload and released exactly once by Release.

	// vertexBuffer holds interleaved vertices or positions, depending on layout.
	vertexBuffer *wgpu.Buffer
	// normalBuffer holds the separate normal stream of a split-normal mesh, or nil.
	normalBuffer *wgpu.Buffer
	// indexBuffer holds 16-bit indices, or nil for unindexed meshes.
	indexBuffer *wgpu.Buffer

	vertexCount int
	indexCount  int
	released    bool
}

// MeshBuffers owns the GPU buffers uploaded for one mesh together with the counts and layout
// a draw call needs. The handle is the only owner of its buffers: Release frees them and any
// later call is a no-op.
//
// Usage pattern:
//  1. Renderer uploads a mesh.MeshData and returns a MeshBuffers
//  2. Draw code binds VertexBuffer (and NormalBuffer for split layouts) using VertexBufferLayouts
//  3. Indexed meshes bind IndexBuffer with IndexFormat and draw IndexCount indices
//  4. Owner calls Release at shutdown
type MeshBuffers interface {
	// Release releases the GPU buffers held by this handle. Calling it more than once is a no-op.
	Release()

	// Released reports whether Release has been called.
	//
	// Returns:
	//   - bool: true once the buffers have been released
	Released() bool

	// Label returns the debug label for this handle.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Layout returns the vertex layout of the uploaded mesh.
	//
	// Returns:
	//   - mesh.Layout: the layout
	Layout() mesh.Layout

	// VertexBufferLayouts returns the pipeline vertex buffer layouts matching the uploaded buffers.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one entry per vertex buffer slot
	VertexBufferLayouts() []wgpu.VertexBufferLayout

	// VertexBuffer returns the primary vertex buffer, or nil if released or not uploaded.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// NormalBuffer returns the separate normal buffer of a split-normal mesh, or nil.
	//
	// Returns:
	//   - *wgpu.Buffer: the normal buffer or nil
	NormalBuffer() *wgpu.Buffer

	// IndexBuffer returns the index buffer, or nil for unindexed meshes.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// IndexFormat returns the format of the index buffer.
	//
	// Returns:
	//   - wgpu.IndexFormat: always wgpu.IndexFormatUint16
	IndexFormat() wgpu.IndexFormat

	// VertexCount returns the number of vertices for non-indexed draw calls.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices for indexed draw calls, or 0.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// SetVertexBuffer stores the GPU vertex buffer after creation by the Renderer.
	//
	// Parameters:
	//   - buf: the created vertex buffer
	SetVertexBuffer(buf *wgpu.Buffer)

	// SetNormalBuffer stores the GPU normal buffer after creation by the Renderer.
	//
	// Parameters:
	//   - buf: the created normal buffer
	SetNormalBuffer(buf *wgpu.Buffer)

	// SetIndexBuffer stores the GPU index buffer after creation by the Renderer.
	//
	// Parameters:
	//   - buf: the created index buffer
	SetIndexBuffer(buf *wgpu.Buffer)
}

// Compile-time check that meshBuffers implements MeshBuffers
var _ MeshBuffers = &meshBuffers{}

// NewMeshBuffers creates a new MeshBuffers with the provided options.
//
// Parameters:
//   - label: the debug label for the handle
//   - options: a variadic list of options to configure the handle
//
// Returns:
//   - MeshBuffers: a new instance of MeshBuffers configured with the provided options
func NewMeshBuffers(label string, options ...MeshBuffersOption) MeshBuffers {
	b := &meshBuffers{
		mu:     &sync.Mutex{},
		label:  label,
		layout: mesh.LayoutInterleaved,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

func (b *meshBuffers) Label() string {
	return b.label
}

func (b *meshBuffers) Layout() mesh.Layout {
	return b.layout
}

func (b *meshBuffers) VertexBufferLayouts() []wgpu.VertexBufferLayout {
	return b.layout.VertexBufferLayouts()
}

func (b *meshBuffers) VertexBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vertexBuffer
}

func (b *meshBuffers) NormalBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.normalBuffer
}

func (b *meshBuffers) IndexBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.indexBuffer
}

func (b *meshBuffers) IndexFormat() wgpu.IndexFormat {
	return mesh.IndexFormat
}

func (b *meshBuffers) VertexCount() int {
	return b.vertexCount
}

func (b *meshBuffers) IndexCount() int {
	return b.indexCount
}

func (b *meshBuffers) SetVertexBuffer(buf *wgpu.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vertexBuffer = buf
}

func (b *meshBuffers) SetNormalBuffer(buf *wgpu.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.normalBuffer = buf
}

func (b *meshBuffers) SetIndexBuffer(buf *wgpu.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.indexBuffer = buf
}

func (b *meshBuffers) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

func (b *meshBuffers) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return
	}
	b.released = true

	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.normalBuffer != nil {
		b.normalBuffer.Release()
		b.normalBuffer = nil
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
		b.indexBuffer = nil
	}
}
