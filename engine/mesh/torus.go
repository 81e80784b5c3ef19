package mesh

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-primitives/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// verticesPerTorusCell is the number of vertices emitted for each grid cell: two triangles
// sharing the cell origin plus a trailing copy of the origin.
const verticesPerTorusCell = 7

// Torus creates an unindexed torus with a separate flat-shaded normal stream.
// The ring grid is sampled at MainSegments x TubeSegments points and each cell emits
// seven vertices starting and ending at its origin corner. Cells on the last row or column
// wrap back to the first. Every vertex of a cell carries the same face normal.
//
// Parameters:
//   - spec: the torus parameters
//
// Returns:
//   - MeshData: the torus mesh
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity if the spec cannot be built
func (GeometryFactory) Torus(spec TorusSpec) (MeshData, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	grid := torusGrid(spec)
	positions := make([][3]float32, 0, spec.VertexCount())
	normals := make([][3]float32, 0, spec.VertexCount())

	for i := 0; i < spec.MainSegments; i++ {
		next := (i + 1) % spec.MainSegments
		for j := 0; j < spec.TubeSegments; j++ {
			up := (j + 1) % spec.TubeSegments

			origin := grid[i][j]
			alongTube := grid[i][up]
			diagonal := grid[next][up]
			alongMain := grid[next][j]

			positions = append(positions,
				origin, alongTube, diagonal,
				origin, alongMain, diagonal,
				origin,
			)

			face := common.FaceNormal(mgl32.Vec3(origin), mgl32.Vec3(alongTube), mgl32.Vec3(alongMain))
			normal := [3]float32(face.Normalize().Mul(-1))
			for range verticesPerTorusCell {
				normals = append(normals, normal)
			}
		}
	}

	if len(positions) != spec.VertexCount() || len(normals) != len(positions) {
		return nil, fmt.Errorf("torus: emitted %d positions and %d normals, want %d: %w",
			len(positions), len(normals), spec.VertexCount(), ErrCapacity)
	}

	return NewMeshData(
		WithName("torus"),
		WithPositions(positions),
		WithSplitNormals(normals),
	), nil
}

// DefaultTorus creates the catalog torus: 30 x 30 segments, main radius 1 and tube radius 0.25.
//
// Returns:
//   - MeshData: the torus mesh
//   - error: always nil for the fixed parameters
func (f GeometryFactory) DefaultTorus() (MeshData, error) {
	return f.Torus(DefaultTorusSpec)
}

// torusGrid samples the torus surface. grid[i][j] is the point at main angle i and tube angle j.
// Angles accumulate by a fixed step per segment.
func torusGrid(spec TorusSpec) [][][3]float32 {
	mainStep := 2 * math32.Pi / float32(spec.MainSegments)
	tubeStep := 2 * math32.Pi / float32(spec.TubeSegments)

	grid := make([][][3]float32, spec.MainSegments)
	mainAngle := float32(0)
	for i := range grid {
		sinMain, cosMain := math32.Sincos(mainAngle)
		grid[i] = make([][3]float32, spec.TubeSegments)
		tubeAngle := float32(0)
		for j := range grid[i] {
			sinTube, cosTube := math32.Sincos(tubeAngle)
			ring := spec.MainRadius + spec.TubeRadius*cosTube
			grid[i][j] = [3]float32{ring * cosMain, ring * sinMain, spec.TubeRadius * sinTube}
			tubeAngle += tubeStep
		}
		mainAngle += mainStep
	}
	return grid
}
