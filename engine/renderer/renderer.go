package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
	"github.com/Carmen-Shannon/oxy-primitives/engine/renderer/mesh_buffers"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrReleased is returned when uploading through a renderer whose GPU device has been released.
var ErrReleased = errors.New("renderer released")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	label                string

	uploads  int
	released bool
}

// SurfaceSource provides the platform surface a renderer presents to. window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Renderer defines the interface for the GPU side of mesh handling.
//
// The Renderer owns the WebGPU instance, adapter and device, and turns generated meshes into
// GPU buffers. Each upload returns a MeshBuffers handle that owns its buffers; the Renderer
// itself only owns the device.
type Renderer interface {
	// UploadMesh validates the mesh and creates its vertex, normal and index buffers on the GPU.
	// On failure no buffers are left allocated.
	//
	// Parameters:
	//   - m: the mesh to upload
	//
	// Returns:
	//   - mesh_buffers.MeshBuffers: the handle owning the created buffers
	//   - error: an error if the mesh is invalid, the renderer is released, or buffer creation fails
	UploadMesh(m mesh.MeshData) (mesh_buffers.MeshBuffers, error)

	// Uploads returns the number of successful uploads performed by this renderer.
	//
	// Returns:
	//   - int: the upload count
	Uploads() int

	// Device returns the GPU device, or nil once released.
	//
	// Returns:
	//   - *wgpu.Device: the device
	Device() *wgpu.Device

	// Release releases the GPU device and associated objects. Mesh handles must be released first.
	// Calling it more than once is a no-op.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type and surface source.
// A nil surface source creates a headless renderer, suitable for uploading without presenting.
// Panics if no GPU adapter or device can be obtained.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - surface: the window providing the platform surface descriptor, or nil for headless
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, surface SurfaceSource, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		label:       "Main Device",
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	var descriptor *wgpu.SurfaceDescriptor
	if surface != nil {
		descriptor = surface.SurfaceDescriptor()
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(descriptor, r.forceFallbackAdapter, r.label)
	}

	log.Printf("[Renderer] device %q ready (headless: %v, fallback adapter: %v)", r.label, descriptor == nil, r.forceFallbackAdapter)
	return r
}

func (r *renderer) UploadMesh(m mesh.MeshData) (mesh_buffers.MeshBuffers, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil, fmt.Errorf("upload %q: %w", m.Name(), ErrReleased)
	}

	buffers := mesh_buffers.NewMeshBuffers(m.Name(), mesh_buffers.FromMesh(m))
	vertexData := m.VertexData()
	normalData := m.NormalData()
	indexData := m.IndexData()
	if err := r.backend.InitMeshBuffers(buffers, vertexData, normalData, indexData); err != nil {
		buffers.Release()
		return nil, fmt.Errorf("upload %q: %w", m.Name(), err)
	}

	r.uploads++
	log.Printf("[Renderer] uploaded %q: layout %s, %d vertices, %d indices, %d bytes",
		m.Name(), m.Layout(), m.VertexCount(), m.IndexCount(), len(vertexData)+len(normalData)+len(indexData))
	return buffers, nil
}

func (r *renderer) Uploads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uploads
}

func (r *renderer) Device() *wgpu.Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}
	return r.backend.Device()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.backend.Release()
	log.Printf("[Renderer] device %q released after %d uploads", r.label, r.uploads)
}
