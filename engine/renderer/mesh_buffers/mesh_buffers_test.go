package mesh_buffers

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestFromMesh(t *testing.T) {
	torus, err := mesh.Factory.DefaultTorus()
	assert.NoError(t, err)

	b := NewMeshBuffers("torus", FromMesh(torus))
	assert.Equal(t, "torus", b.Label())
	assert.Equal(t, mesh.LayoutSplitNormals, b.Layout())
	assert.Equal(t, 6300, b.VertexCount())
	assert.Equal(t, 0, b.IndexCount())
	assert.Len(t, b.VertexBufferLayouts(), 2)
	assert.Equal(t, wgpu.IndexFormatUint16, b.IndexFormat())
}

func TestReleaseIsIdempotent(t *testing.T) {
	b := NewMeshBuffers("plane", FromMesh(mesh.Factory.Plane()))
	assert.False(t, b.Released())
	assert.Equal(t, 6, b.IndexCount())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Release()
		}()
	}
	wg.Wait()

	assert.True(t, b.Released())
	assert.Nil(t, b.VertexBuffer())
	assert.Nil(t, b.NormalBuffer())
	assert.Nil(t, b.IndexBuffer())
}

func TestOptions(t *testing.T) {
	b := NewMeshBuffers("custom", WithLayout(mesh.LayoutPosition), WithVertexCount(36), WithIndexCount(0))
	assert.Equal(t, mesh.LayoutPosition, b.Layout())
	assert.Equal(t, 36, b.VertexCount())
	assert.Len(t, b.VertexBufferLayouts(), 1)
}
