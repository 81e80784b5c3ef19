package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-primitives/common"
	"github.com/Carmen-Shannon/oxy-primitives/engine/registry"
	"github.com/Carmen-Shannon/oxy-primitives/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables generation and frame statistics output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWindowOptions configures the window the engine creates during Run.
// Ignored when WithWindow supplies a window.
//
// Parameters:
//   - options: window options applied on creation
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindowOptions(options ...window.WindowBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.windowOptions = append(e.windowOptions, options...)
	}
}

// WithHeadless runs the engine without a window. Meshes are uploaded to an adapter that
// needs no surface and Run blocks until Quit is called.
//
// Parameters:
//   - headless: if true, no window is created
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHeadless(headless bool) EngineBuilderOption {
	return func(e *engine) {
		e.headless = headless
	}
}

// WithForceFallbackAdapter requests the software fallback adapter.
//
// Parameters:
//   - force: if true, the renderer uses the fallback adapter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithForceFallbackAdapter(force bool) EngineBuilderOption {
	return func(e *engine) {
		e.forceFallbackAdapter = force
	}
}

// WithWorkers sets how many workers generate meshes in parallel. Values below 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWorkers(n int) EngineBuilderOption {
	return func(e *engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithCatalog replaces the default mesh catalog.
//
// Parameters:
//   - entries: the meshes to create, in upload order
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCatalog(entries []registry.CatalogEntry) EngineBuilderOption {
	return func(e *engine) {
		e.catalog = append([]registry.CatalogEntry(nil), entries...)
	}
}

// WithDeviceLabel sets the debug label of the GPU device.
//
// Parameters:
//   - label: the device label
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDeviceLabel(label string) EngineBuilderOption {
	return func(e *engine) {
		e.deviceLabel = common.Coalesce(label, e.deviceLabel)
	}
}
