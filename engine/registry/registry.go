package registry

import (
	"fmt"
	"log"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
	"github.com/Carmen-Shannon/oxy-primitives/engine/profiler"
)

// registry is the implementation of the MeshRegistry interface.
type registry struct {
	mu *sync.RWMutex

	uploader Uploader
	profiler *profiler.Profiler
	catalog  []CatalogEntry
	workers  int

	entries map[string]Entry
	created bool
}

// MeshRegistry owns every named primitive mesh together with its GPU handle.
//
// The lifecycle is create once, read while rendering, destroy once:
//  1. CreateAll generates every catalog mesh, validates it and uploads it
//  2. Render code looks meshes up with Get or MustGet
//  3. DestroyAll releases every GPU handle at shutdown
type MeshRegistry interface {
	// CreateAll generates, validates and uploads every catalog mesh.
	// Generation runs on a worker pool; validation and upload run on the calling goroutine in catalog order.
	// On failure every handle uploaded so far is released and the registry stays empty.
	//
	// Returns:
	//   - error: ErrAlreadyCreated if called twice without DestroyAll, ErrDuplicateMesh for a bad catalog,
	//     or a *StageError naming the failing mesh and stage
	CreateAll() error

	// DestroyAll releases every GPU handle exactly once and empties the registry.
	// Calling it on an empty registry is a no-op.
	DestroyAll()

	// Get looks up a created mesh by name.
	//
	// Parameters:
	//   - name: the catalog name
	//
	// Returns:
	//   - Entry: the mesh and its GPU handle
	//   - error: an error wrapping ErrUnknownMesh if no mesh has that name
	Get(name string) (Entry, error)

	// MustGet looks up a created mesh by name and panics if it does not exist.
	//
	// Parameters:
	//   - name: the catalog name
	//
	// Returns:
	//   - Entry: the mesh and its GPU handle
	MustGet(name string) Entry

	// Names returns the names of all created meshes in sorted order.
	//
	// Returns:
	//   - []string: the sorted names
	Names() []string

	// Len returns the number of created meshes.
	//
	// Returns:
	//   - int: the mesh count
	Len() int

	// Created reports whether CreateAll has succeeded and DestroyAll has not been called since.
	//
	// Returns:
	//   - bool: true while meshes are live
	Created() bool
}

var _ MeshRegistry = &registry{}

// NewMeshRegistry creates a new MeshRegistry that uploads through the given Uploader.
// The catalog defaults to DefaultCatalog and the worker count to the number of CPUs.
//
// Parameters:
//   - uploader: the GPU upload backend
//   - options: a variadic list of MeshRegistryBuilderOption functions to configure the registry
//
// Returns:
//   - MeshRegistry: a new, empty registry
func NewMeshRegistry(uploader Uploader, options ...MeshRegistryBuilderOption) MeshRegistry {
	r := &registry{
		mu:       &sync.RWMutex{},
		uploader: uploader,
		catalog:  DefaultCatalog(),
		workers:  runtime.NumCPU(),
		entries:  make(map[string]Entry),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// generation is the outcome of running one catalog generator.
type generation struct {
	mesh mesh.MeshData
	err  error
}

func (r *registry) CreateAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.created {
		return ErrAlreadyCreated
	}
	if err := checkCatalog(r.catalog); err != nil {
		return err
	}

	start := time.Now()
	results := r.generateAll()

	entries := make(map[string]Entry, len(r.catalog))
	for i, res := range results {
		name := r.catalog[i].Name
		if err := r.register(entries, name, res); err != nil {
			releaseEntries(entries)
			log.Printf("[Registry] create failed, released %d uploaded meshes: %v", len(entries), err)
			return err
		}
	}

	r.entries = entries
	r.created = true
	log.Printf("[Registry] created %d meshes in %s", len(entries), time.Since(start))

	if r.profiler != nil {
		r.profiler.Report()
	}
	return nil
}

// register validates and uploads one generated mesh and stores it in entries.
func (r *registry) register(entries map[string]Entry, name string, res generation) error {
	if res.err != nil {
		return &StageError{Mesh: name, Stage: StageGenerate, Err: res.err}
	}
	if res.mesh == nil {
		return &StageError{Mesh: name, Stage: StageGenerate, Err: fmt.Errorf("generator returned no mesh")}
	}
	if err := res.mesh.Validate(); err != nil {
		return &StageError{Mesh: name, Stage: StageValidate, Err: err}
	}
	handle, err := r.uploader.Upload(res.mesh)
	if err != nil {
		return &StageError{Mesh: name, Stage: StageUpload, Err: err}
	}
	entries[name] = Entry{Mesh: res.mesh, Handle: handle}
	return nil
}

// generateAll runs every catalog generator and returns the results in catalog order.
// With more than one worker the generators run on a worker pool joined by a WaitGroup barrier.
func (r *registry) generateAll() []generation {
	results := make([]generation, len(r.catalog))

	workers := min(r.workers, len(r.catalog))
	if workers < 2 {
		for i, entry := range r.catalog {
			results[i] = r.generate(entry)
		}
		return results
	}

	// The queue holds the whole catalog so SubmitTask never blocks.
	pool := worker.NewDynamicWorkerPool(workers, len(r.catalog), time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for i, entry := range r.catalog {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: entry.Name,
			Do: func() (any, error) {
				defer wg.Done()
				results[i] = r.generate(entry)
				return results[i].mesh, results[i].err
			},
		})
	}
	wg.Wait()

	return results
}

// generate runs a single generator, converting a panic into an error and recording timing.
func (r *registry) generate(entry CatalogEntry) (res generation) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = generation{err: fmt.Errorf("generator panicked: %v", p)}
		}
		if r.profiler != nil && res.err == nil && res.mesh != nil {
			r.profiler.RecordGeneration(entry.Name, time.Since(start), res.mesh.VertexCount(), res.mesh.IndexCount())
		}
	}()

	if entry.Generate == nil {
		return generation{err: fmt.Errorf("no generator")}
	}
	m, err := entry.Generate()
	return generation{mesh: m, err: err}
}

// checkCatalog rejects catalogs with duplicate names.
func checkCatalog(catalog []CatalogEntry) error {
	seen := make(map[string]struct{}, len(catalog))
	for _, entry := range catalog {
		if _, ok := seen[entry.Name]; ok {
			return fmt.Errorf("mesh %q: %w", entry.Name, ErrDuplicateMesh)
		}
		seen[entry.Name] = struct{}{}
	}
	return nil
}

// releaseEntries releases every handle in entries in sorted name order and empties the map.
func releaseEntries(entries map[string]Entry) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if h := entries[name].Handle; h != nil {
			h.Release()
		}
		delete(entries, name)
	}
}

func (r *registry) DestroyAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.created {
		return
	}
	count := len(r.entries)
	releaseEntries(r.entries)
	r.created = false
	log.Printf("[Registry] destroyed %d meshes", count)
}

func (r *registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("mesh %q: %w", name, ErrUnknownMesh)
	}
	return e, nil
}

func (r *registry) MustGet(name string) Entry {
	e, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return e
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *registry) Created() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.created
}
