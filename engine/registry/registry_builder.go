package registry

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-primitives/engine/profiler"
)

// MeshRegistryBuilderOption is a functional option for configuring a MeshRegistry via NewMeshRegistry.
type MeshRegistryBuilderOption func(*registry)

// WithWorkers sets how many worker goroutines generate meshes in parallel during CreateAll.
// Values below 2 generate sequentially on the calling goroutine.
//
// Parameters:
//   - n: the maximum number of generation workers
//
// Returns:
//   - MeshRegistryBuilderOption: a function that applies the workers option to a registry
func WithWorkers(n int) MeshRegistryBuilderOption {
	return func(r *registry) {
		r.workers = n
	}
}

// WithProfiler attaches a profiler that records per-mesh generation time and reports after CreateAll.
//
// Parameters:
//   - p: the profiler, or nil to disable profiling
//
// Returns:
//   - MeshRegistryBuilderOption: a function that applies the profiler option to a registry
func WithProfiler(p *profiler.Profiler) MeshRegistryBuilderOption {
	return func(r *registry) {
		r.profiler = p
	}
}

// WithCatalog replaces the default catalog. The slice is copied.
//
// Parameters:
//   - entries: the meshes to create, in upload order
//
// Returns:
//   - MeshRegistryBuilderOption: a function that applies the catalog option to a registry
func WithCatalog(entries []CatalogEntry) MeshRegistryBuilderOption {
	return func(r *registry) {
		r.catalog = slices.Clone(entries)
	}
}
