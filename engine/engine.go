package engine

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
	"github.com/Carmen-Shannon/oxy-primitives/engine/profiler"
	"github.com/Carmen-Shannon/oxy-primitives/engine/registry"
	"github.com/Carmen-Shannon/oxy-primitives/engine/renderer"
	"github.com/Carmen-Shannon/oxy-primitives/engine/window"
)

var (
	// ErrAlreadyRunning is returned by Run while another Run call is active.
	ErrAlreadyRunning = errors.New("engine already running")

	// ErrStopped is returned by Run once Quit has been signalled. An engine cannot be restarted.
	ErrStopped = errors.New("engine stopped")
)

// engine implements the Engine interface.
// Coordinates the window, the GPU renderer and the mesh registry.
type engine struct {
	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window        window.Window
	windowOptions []window.WindowBuilderOption
	headless      bool
	windowClosed  bool

	renderer             renderer.Renderer
	forceFallbackAdapter bool
	deviceLabel          string

	registry registry.MeshRegistry
	catalog  []registry.CatalogEntry
	workers  int

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
}

// Engine is the main entry point for the primitives host.
// It creates the window and GPU device, uploads every catalog mesh at startup and
// releases them again at shutdown.
type Engine interface {
	// Window returns the underlying window, or nil when running headless or before Run.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Meshes returns the mesh registry, or nil before Run has created it.
	//
	// Returns:
	//   - registry.MeshRegistry: the registry holding every uploaded mesh
	Meshes() registry.MeshRegistry

	// EnableProfiler enables generation and frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each engine tick while Run is active.
	// Meshes are available through Meshes for the whole lifetime of the callback.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run creates the window (unless headless) and the GPU device, creates all meshes, then blocks
	// until the window closes or Quit is called. All meshes and the device are released before it returns.
	//
	// Returns:
	//   - error: ErrAlreadyRunning or ErrStopped, or the mesh creation error if startup failed
	Run() error

	// Running reports whether Run is currently active.
	//
	// Returns:
	//   - bool: true between the start of Run and its return
	Running() bool

	// Quit signals Run to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, workers, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:      make(chan struct{}),
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		workers:          runtime.NumCPU(),
		catalog:          registry.DefaultCatalog(),
		deviceLabel:      "Main Device",
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Meshes() registry.MeshRegistry {
	return e.registry
}

func (e *engine) Run() error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	select {
	case <-e.quitChannel:
		return ErrStopped
	default:
	}

	if e.window == nil && !e.headless {
		e.window = window.NewWindow(e.windowOptions...)
	}

	var surface renderer.SurfaceSource
	if e.window != nil {
		surface = e.window
	}
	e.renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, surface,
		renderer.WithForceFallbackAdapter(e.forceFallbackAdapter),
		renderer.WithLabel(e.deviceLabel),
	)

	registryOptions := []registry.MeshRegistryBuilderOption{
		registry.WithWorkers(e.workers),
		registry.WithCatalog(e.catalog),
	}
	if e.profilingEnabled {
		registryOptions = append(registryOptions, registry.WithProfiler(e.profiler))
	}
	e.registry = registry.NewMeshRegistry(meshUploader(e.renderer), registryOptions...)

	if err := e.registry.CreateAll(); err != nil {
		e.shutdown()
		return fmt.Errorf("create meshes: %w", err)
	}
	log.Printf("[Engine] %d meshes ready: %v", e.registry.Len(), e.registry.Names())

	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		e.window.SetUpdateCallback(e.handleWindowUpdate)
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}

	e.wg.Wait()
	e.shutdown()
	return nil
}

// handleWindowUpdate runs once per message loop iteration on the window thread.
// Closes the window once Quit has been signalled.
func (e *engine) handleWindowUpdate() {
	select {
	case <-e.quitChannel:
		if !e.windowClosed {
			e.closeWindow()
		}
		return
	default:
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	// Recover from panics inside the tick goroutine so meshes are still released.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		}
	}
}

// shutdown releases meshes before the device, then closes the window.
func (e *engine) shutdown() {
	if e.registry != nil {
		e.registry.DestroyAll()
	}
	if e.renderer != nil {
		e.renderer.Release()
	}
	if e.window != nil && !e.windowClosed {
		e.closeWindow()
	}
	log.Printf("[Engine] shut down")
}

func (e *engine) closeWindow() {
	e.windowClosed = true
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] failed to close window: %v", err)
	}
}

func (e *engine) Running() bool {
	return e.running.Load()
}

// Quit signals all engine goroutines to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// meshUploader adapts a Renderer to the registry's Uploader.
// A failed upload returns an untyped nil handle so the registry never stores a typed nil.
//
// Parameters:
//   - r: the renderer performing uploads
//
// Returns:
//   - registry.Uploader: the adapter
func meshUploader(r renderer.Renderer) registry.Uploader {
	return registry.UploaderFunc(func(m mesh.MeshData) (registry.Handle, error) {
		buffers, err := r.UploadMesh(m)
		if err != nil {
			return nil, err
		}
		return buffers, nil
	})
}
