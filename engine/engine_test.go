package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
	"github.com/Carmen-Shannon/oxy-primitives/engine/registry"
	"github.com/Carmen-Shannon/oxy-primitives/engine/renderer/mesh_buffers"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer hands out unbacked mesh buffers and logs lifecycle calls.
type fakeRenderer struct {
	mu      sync.Mutex
	failOn  string
	events  *[]string
	buffers []mesh_buffers.MeshBuffers
}

func (f *fakeRenderer) UploadMesh(m mesh.MeshData) (mesh_buffers.MeshBuffers, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.Name() == f.failOn {
		return nil, errors.New("out of memory")
	}
	b := mesh_buffers.NewMeshBuffers(m.Name(), mesh_buffers.FromMesh(m))
	f.buffers = append(f.buffers, b)
	return b, nil
}

func (f *fakeRenderer) Uploads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.buffers)
}

func (f *fakeRenderer) Device() *wgpu.Device { return nil }

func (f *fakeRenderer) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.buffers {
		if !b.Released() {
			*f.events = append(*f.events, "device released before "+b.Label())
		}
	}
	*f.events = append(*f.events, "device released")
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine().(*engine)
	assert.Equal(t, time.Second/60, e.engineTickRate)
	assert.False(t, e.profilingEnabled)
	assert.False(t, e.headless)
	assert.Equal(t, "Main Device", e.deviceLabel)
	assert.Len(t, e.catalog, 9)
	assert.Positive(t, e.workers)
	assert.Nil(t, e.Window())
	assert.Nil(t, e.Meshes())
}

func TestEngineOptions(t *testing.T) {
	catalog := registry.DefaultCatalog()[:2]
	e := NewEngine(
		WithProfiling(true),
		WithTickRate(120),
		WithHeadless(true),
		WithForceFallbackAdapter(true),
		WithWorkers(3),
		WithWorkers(0),
		WithCatalog(catalog),
		WithDeviceLabel("Primitives"),
		WithDeviceLabel(""),
	).(*engine)

	assert.True(t, e.profilingEnabled)
	assert.Equal(t, time.Second/120, e.engineTickRate)
	assert.True(t, e.headless)
	assert.True(t, e.forceFallbackAdapter)
	assert.Equal(t, 3, e.workers)
	assert.Equal(t, "Primitives", e.deviceLabel)
	require.Len(t, e.catalog, 2)

	catalog[0].Name = "changed"
	assert.Equal(t, registry.MeshPlane, e.catalog[0].Name)

	e.DisableProfiler()
	assert.False(t, e.profilingEnabled)
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled)
}

func TestMeshUploaderFailureReturnsNilHandle(t *testing.T) {
	var events []string
	up := meshUploader(&fakeRenderer{failOn: "cube", events: &events})

	h, err := up.Upload(mesh.Factory.Cube())
	assert.Error(t, err)
	assert.Nil(t, h)

	h, err = up.Upload(mesh.Factory.Plane())
	require.NoError(t, err)
	buffers, ok := h.(mesh_buffers.MeshBuffers)
	require.True(t, ok)
	assert.Equal(t, "plane", buffers.Label())
}

func TestShutdownReleasesMeshesBeforeDevice(t *testing.T) {
	var events []string
	r := &fakeRenderer{events: &events}
	e := NewEngine(WithHeadless(true), WithWorkers(2)).(*engine)
	e.renderer = r
	e.registry = registry.NewMeshRegistry(meshUploader(r), registry.WithWorkers(e.workers))

	require.NoError(t, e.registry.CreateAll())
	assert.Equal(t, 9, r.Uploads())

	e.shutdown()
	assert.Equal(t, []string{"device released"}, events)
	assert.False(t, e.registry.Created())
	for _, b := range r.buffers {
		assert.True(t, b.Released(), b.Label())
	}
}

func TestTickLoopStopsOnQuit(t *testing.T) {
	e := NewEngine(WithTickRate(1000)).(*engine)

	var ticks atomic.Int32
	e.SetTickCallback(func(dt float32) {
		assert.GreaterOrEqual(t, dt, float32(0))
		ticks.Add(1)
	})

	e.wg.Add(1)
	go e.handleEngine()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	e.Quit()
	e.Quit()
	e.wg.Wait()
}

func TestRunRejectsSecondRun(t *testing.T) {
	e := NewEngine(WithHeadless(true)).(*engine)
	e.running.Store(true)

	assert.ErrorIs(t, e.Run(), ErrAlreadyRunning)
	assert.True(t, e.Running())
	assert.Nil(t, e.Meshes())
}

func TestRunAfterQuit(t *testing.T) {
	e := NewEngine(WithHeadless(true))
	assert.False(t, e.Running())

	e.Quit()
	assert.ErrorIs(t, e.Run(), ErrStopped)
	assert.False(t, e.Running())
	assert.Nil(t, e.Meshes())
}

func TestTickLoopRecoversPanic(t *testing.T) {
	e := NewEngine(WithTickRate(1000)).(*engine)
	e.SetTickCallback(func(float32) { panic("boom") })

	e.wg.Add(1)
	go e.handleEngine()
	e.wg.Wait()

	select {
	case <-e.quitChannel:
	default:
		t.Fatal("quit was not signalled after panic")
	}
}
