package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-primitives/common"
	"github.com/Carmen-Shannon/oxy-primitives/engine/renderer/mesh_buffers"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
}

type wgpuRendererBackend interface {
	Device() *wgpu.Device
	Queue() *wgpu.Queue
	Instance() *wgpu.Instance
	Adapter() *wgpu.Adapter
	Surface() *wgpu.Surface

	// InitMeshBuffers creates the vertex, normal and index buffers for a mesh from the provided data and stores
	// them on the given MeshBuffers. Empty data skips the corresponding buffer. Data is padded to the 4-byte
	// alignment required by queue writes.
	//
	// Parameters:
	//   - buffers: the MeshBuffers to store the created buffers on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - normalData: the raw normal data bytes for split-normal meshes, or nil
	//   - indexData: the raw index data bytes to upload to the GPU, or nil
	//
	// Returns:
	//   - error: an error if a buffer could not be created; buffers created before the failure stay on the handle
	InitMeshBuffers(buffers mesh_buffers.MeshBuffers, vertexData, normalData, indexData []byte) error

	// Release releases the device, queue, surface, adapter and instance in reverse creation order.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend bootstraps the WebGPU instance, adapter, device and queue.
// A nil surface descriptor creates a headless backend with no presentation surface.
// Panics if no adapter or device can be obtained.
func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, label string) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:       &sync.Mutex{},
		instance: wgpu.CreateInstance(nil),
	}
	if surfaceDescriptor != nil {
		w.surface = w.instance.CreateSurface(surfaceDescriptor)
	}

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: label,
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuRendererBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuRendererBackendImpl) Instance() *wgpu.Instance {
	return b.instance
}

func (b *wgpuRendererBackendImpl) Adapter() *wgpu.Adapter {
	return b.adapter
}

func (b *wgpuRendererBackendImpl) Surface() *wgpu.Surface {
	return b.surface
}

func (b *wgpuRendererBackendImpl) InitMeshBuffers(buffers mesh_buffers.MeshBuffers, vertexData, normalData, indexData []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(vertexData) > 0 {
		buf, err := b.createBuffer(buffers.Label()+" Vertex Buffer", wgpu.BufferUsageVertex, vertexData)
		if err != nil {
			return err
		}
		buffers.SetVertexBuffer(buf)
	}

	if len(normalData) > 0 {
		buf, err := b.createBuffer(buffers.Label()+" Normal Buffer", wgpu.BufferUsageVertex, normalData)
		if err != nil {
			return err
		}
		buffers.SetNormalBuffer(buf)
	}

	if len(indexData) > 0 {
		buf, err := b.createBuffer(buffers.Label()+" Index Buffer", wgpu.BufferUsageIndex, indexData)
		if err != nil {
			return err
		}
		buffers.SetIndexBuffer(buf)
	}

	return nil
}

// createBuffer allocates a GPU buffer sized to the 4-byte aligned data and writes the data into it.
func (b *wgpuRendererBackendImpl) createBuffer(label string, usage wgpu.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	data = common.AlignTo4(data)
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             uint64(len(data)),
		Usage:            usage | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	b.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
