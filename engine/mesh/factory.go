package mesh

import "fmt"

// GeometryFactory groups the primitive constructors. It holds no state; the zero value is ready to use
// and every method is safe to call concurrently.
type GeometryFactory struct{}

// Generator produces a single mesh. Catalog entries and the registry consume generators.
type Generator func() (MeshData, error)

// Factory is the shared GeometryFactory instance.
var Factory GeometryFactory

// checkCounts compares emitted buffer sizes with the closed-form counts a generator promised.
func checkCounts(shape string, vertices, wantVertices, indices, wantIndices int) error {
	if vertices != wantVertices || indices != wantIndices {
		return fmt.Errorf("%s: emitted %d vertices and %d indices, want %d and %d: %w",
			shape, vertices, indices, wantVertices, wantIndices, ErrCapacity)
	}
	return nil
}
