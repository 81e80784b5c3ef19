package profiler

import (
	"log"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

// GenerationSample records how long one mesh took to generate and how large it is.
type GenerationSample struct {
	Name     string
	Duration time.Duration
	Vertices int
	Indices  int
}

// Profiler tracks mesh generation timings plus frame rate and memory statistics.
// Generation samples may be recorded from worker goroutines; Tick is called from the main loop.
type Profiler struct {
	mu      sync.Mutex
	samples map[string]GenerationSample

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		samples:        make(map[string]GenerationSample),
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// RecordGeneration stores the generation sample for a mesh, replacing any earlier sample of the same name.
// Safe for concurrent use.
//
// Parameters:
//   - name: the mesh name
//   - d: wall time spent in the generator
//   - vertices: the generated vertex count
//   - indices: the generated index count
func (p *Profiler) RecordGeneration(name string, d time.Duration, vertices, indices int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.samples[name] = GenerationSample{Name: name, Duration: d, Vertices: vertices, Indices: indices}
}

// Generations returns all recorded generation samples sorted by mesh name.
//
// Returns:
//   - []GenerationSample: the samples
func (p *Profiler) Generations() []GenerationSample {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]GenerationSample, 0, len(p.samples))
	for _, s := range p.samples {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b GenerationSample) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Report logs one line per recorded mesh followed by totals and current heap usage.
//
// Returns:
//   - time.Duration: the summed generation time of all recorded meshes
func (p *Profiler) Report() time.Duration {
	samples := p.Generations()
	var total time.Duration
	var vertices, indices int
	for _, s := range samples {
		log.Printf("[Profiler] %-16s %8d vertices %8d indices %10s", s.Name, s.Vertices, s.Indices, s.Duration)
		total += s.Duration
		vertices += s.Vertices
		indices += s.Indices
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	log.Printf("[Profiler] %d meshes | %d vertices | %d indices | generation: %s | Heap: %.2f MB | Sys: %.2f MB",
		len(samples), vertices, indices, total, allocMB, sysMB)
	return total
}

// Reset discards all generation samples.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.samples)
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()

		runtime.ReadMemStats(&p.memStats)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// PauseNs is a circular buffer of the last 256 GC pauses
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.frameCount = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		return true
	}

	return false
}
