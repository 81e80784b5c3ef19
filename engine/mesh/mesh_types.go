package mesh

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSpec is returned when a generator receives parameters it cannot build a mesh from.
	ErrInvalidSpec = errors.New("invalid mesh spec")

	// ErrCapacity is returned when a generator emits a count that diverges from its closed-form
	// size, or when an indexed mesh exceeds the 16-bit index range.
	ErrCapacity = errors.New("mesh capacity exceeded")

	// ErrInvalidMesh is returned by Validate when a mesh breaks a structural invariant.
	ErrInvalidMesh = errors.New("invalid mesh data")
)

// PrismSpec describes a closed N-sided prism centred on the origin with its axis along +Y.
type PrismSpec struct {
	Sides      int     // number of side faces, at least 3
	Radius     float32 // distance from the axis to each ring vertex
	HalfLength float32 // half of the prism height; caps sit at y = ±HalfLength
}

// ConeSpec describes an N-sided cone with its apex on +Y and its base on -Y.
type ConeSpec struct {
	Sides  int     // number of base perimeter vertices, at least 3
	Radius float32 // base radius
	Height float32 // apex sits at y = +Height and the base centre at y = -Height
}

// SphereSpec describes a UV sphere sampled on a latitude/longitude grid.
type SphereSpec struct {
	Stacks int     // latitude bands, at least 2
	Slices int     // longitude bands, at least 3
	Radius float32 // sphere radius
}

// TorusSpec describes a torus lying in the XY plane around the Z axis.
type TorusSpec struct {
	MainSegments int     // segments around the main ring, at least 3
	TubeSegments int     // segments around the tube, at least 3
	MainRadius   float32 // distance from the torus centre to the tube centre
	TubeRadius   float32 // radius of the tube
}

// Default parameter sets used by the fixed catalog.
var (
	DefaultPrismSpec  = PrismSpec{Sides: 30, Radius: 0.25, HalfLength: 1.0}
	DefaultConeSpec   = ConeSpec{Sides: 100, Radius: 1.0, Height: 0.25}
	DefaultSphereSpec = SphereSpec{Stacks: 8, Slices: 16, Radius: 1.0}
	DefaultTorusSpec  = TorusSpec{MainSegments: 30, TubeSegments: 30, MainRadius: 1.0, TubeRadius: 0.25}
)

// VertexCount returns the number of vertices Prism emits for this spec.
func (s PrismSpec) VertexCount() int { return 2 + 2*s.Sides + 2 }

// IndexCount returns the number of indices Prism emits for this spec.
func (s PrismSpec) IndexCount() int { return 12 * s.Sides }

// Validate reports whether the spec can produce a prism.
//
// Returns:
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity, or nil
func (s PrismSpec) Validate() error {
	if s.Sides < 3 {
		return fmt.Errorf("prism: sides %d < 3: %w", s.Sides, ErrInvalidSpec)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("prism: radius %v must be positive: %w", s.Radius, ErrInvalidSpec)
	}
	if s.HalfLength <= 0 {
		return fmt.Errorf("prism: half length %v must be positive: %w", s.HalfLength, ErrInvalidSpec)
	}
	// bounded before VertexCount so the arithmetic cannot overflow
	if s.Sides > (MaxIndexedVertices-4)/2 {
		return fmt.Errorf("prism: %d sides exceed 16-bit indices: %w", s.Sides, ErrCapacity)
	}
	return nil
}

// VertexCount returns the number of vertices Cone emits for this spec.
func (s ConeSpec) VertexCount() int { return 2 + s.Sides }

// IndexCount returns the number of indices Cone emits for this spec.
func (s ConeSpec) IndexCount() int { return 6 * s.Sides }

// Validate reports whether the spec can produce a cone.
//
// Returns:
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity, or nil
func (s ConeSpec) Validate() error {
	if s.Sides < 3 {
		return fmt.Errorf("cone: sides %d < 3: %w", s.Sides, ErrInvalidSpec)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("cone: radius %v must be positive: %w", s.Radius, ErrInvalidSpec)
	}
	if s.Height <= 0 {
		return fmt.Errorf("cone: height %v must be positive: %w", s.Height, ErrInvalidSpec)
	}
	if s.Sides > MaxIndexedVertices-2 {
		return fmt.Errorf("cone: %d sides exceed 16-bit indices: %w", s.Sides, ErrCapacity)
	}
	return nil
}

// VertexCount returns the number of vertices Sphere emits for this spec.
func (s SphereSpec) VertexCount() int { return (s.Stacks + 1) * (s.Slices + 1) }

// IndexCount returns the number of indices Sphere emits for this spec.
func (s SphereSpec) IndexCount() int { return 6 * s.Stacks * s.Slices }

// Validate reports whether the spec can produce a sphere.
//
// Returns:
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity, or nil
func (s SphereSpec) Validate() error {
	if s.Stacks < 2 {
		return fmt.Errorf("sphere: stacks %d < 2: %w", s.Stacks, ErrInvalidSpec)
	}
	if s.Slices < 3 {
		return fmt.Errorf("sphere: slices %d < 3: %w", s.Slices, ErrInvalidSpec)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("sphere: radius %v must be positive: %w", s.Radius, ErrInvalidSpec)
	}
	if s.Stacks >= MaxIndexedVertices || s.Slices >= MaxIndexedVertices {
		return fmt.Errorf("sphere: %dx%d grid exceeds 16-bit indices: %w", s.Stacks, s.Slices, ErrCapacity)
	}
	if s.VertexCount() > MaxIndexedVertices {
		return fmt.Errorf("sphere: %d vertices exceed 16-bit indices: %w", s.VertexCount(), ErrCapacity)
	}
	return nil
}

// VertexCount returns the number of vertices Torus emits for this spec.
// Each grid cell contributes seven vertices.
func (s TorusSpec) VertexCount() int { return verticesPerTorusCell * s.MainSegments * s.TubeSegments }

// Validate reports whether the spec can produce a torus.
// The emitted vertex count must be a multiple of three for the unindexed triangle list to be well formed.
//
// Returns:
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity, or nil
func (s TorusSpec) Validate() error {
	if s.MainSegments < 3 {
		return fmt.Errorf("torus: main segments %d < 3: %w", s.MainSegments, ErrInvalidSpec)
	}
	if s.TubeSegments < 3 {
		return fmt.Errorf("torus: tube segments %d < 3: %w", s.TubeSegments, ErrInvalidSpec)
	}
	if s.MainRadius <= 0 {
		return fmt.Errorf("torus: main radius %v must be positive: %w", s.MainRadius, ErrInvalidSpec)
	}
	if s.TubeRadius <= 0 {
		return fmt.Errorf("torus: tube radius %v must be positive: %w", s.TubeRadius, ErrInvalidSpec)
	}
	if s.MainSegments > math.MaxInt/verticesPerTorusCell/s.TubeSegments {
		return fmt.Errorf("torus: %dx%d segments overflow the vertex count: %w", s.MainSegments, s.TubeSegments, ErrCapacity)
	}
	if (s.MainSegments*s.TubeSegments)%3 != 0 {
		return fmt.Errorf("torus: %dx%d segments emit %d vertices, not a multiple of 3: %w",
			s.MainSegments, s.TubeSegments, s.VertexCount(), ErrInvalidSpec)
	}
	return nil
}
