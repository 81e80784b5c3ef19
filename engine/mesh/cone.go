package mesh

import "github.com/chewxy/math32"

// Cone creates an N-sided cone. Vertex 0 is the apex at y = +Height and vertex 1 the base centre
// at y = -Height, followed by one base perimeter vertex per side. Each side contributes one
// mantle triangle fanned from the apex and one base triangle fanned from the base centre.
//
// Parameters:
//   - spec: the cone parameters
//
// Returns:
//   - MeshData: the cone mesh
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity if the spec cannot be built
func (GeometryFactory) Cone(spec ConeSpec) (MeshData, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	vertices := make([]Vertex, 0, spec.VertexCount())
	indices := make([]uint16, 0, spec.IndexCount())

	h := spec.Height
	r := spec.Radius
	step := 2 * math32.Pi / float32(spec.Sides)

	vertices = append(vertices,
		Vertex{Position: [3]float32{0, h, 0}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.7, 0.7}},
		Vertex{Position: [3]float32{0, -h, 0}, Normal: [3]float32{0, -1, 0}, TexCoord: [2]float32{0.8, 0.8}},
	)

	for edge := 0; edge < spec.Sides; edge++ {
		theta := float32(edge) * step
		sin, cos := math32.Sincos(theta)
		nSin, nCos := math32.Sincos(theta + step/2)

		vertices = append(vertices, Vertex{
			Position: [3]float32{r * cos, -h, r * sin},
			Normal:   [3]float32{nCos, 0, nSin},
			TexCoord: [2]float32{0.75, 0.85},
		})

		if edge > 0 {
			prev := uint16(len(vertices) - 2)
			curr := uint16(len(vertices) - 1)
			indices = append(indices, 0, prev, curr)
			indices = append(indices, 1, prev, curr)
		}
	}

	first := uint16(2)
	last := uint16(len(vertices) - 1)
	indices = append(indices, 1, last, first)
	indices = append(indices, 0, first, last)

	if err := checkCounts("cone", len(vertices), spec.VertexCount(), len(indices), spec.IndexCount()); err != nil {
		return nil, err
	}

	return NewMeshData(
		WithName("cone"),
		WithVertices(vertices),
		WithIndices(indices),
	), nil
}

// DefaultCone creates the catalog cone: 100 sides, radius 1 and height 0.25.
//
// Returns:
//   - MeshData: the cone mesh
//   - error: always nil for the fixed parameters
func (f GeometryFactory) DefaultCone() (MeshData, error) {
	return f.Cone(DefaultConeSpec)
}
