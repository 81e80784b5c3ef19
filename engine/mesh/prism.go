package mesh

import "github.com/chewxy/math32"

// emitQuad appends the two triangles (a, b, c) and (c, d, a) covering the quad a-b-c-d.
func emitQuad(indices []uint16, a, b, c, d uint16) []uint16 {
	return append(indices, a, b, c, c, d, a)
}

// emitPrismSide appends the cap wedges and side quad joining the previous ring pair to the current one.
// The ring pairs are the four most recently appended vertices: previous top, previous bottom,
// current top, current bottom.
func emitPrismSide(indices []uint16, vertexCount int) []uint16 {
	prevTop := uint16(vertexCount - 4)
	prevBottom := uint16(vertexCount - 3)
	currTop := uint16(vertexCount - 2)
	currBottom := uint16(vertexCount - 1)

	indices = append(indices, 0, prevTop, currTop)
	indices = append(indices, 1, prevBottom, currBottom)
	return emitQuad(indices, prevTop, prevBottom, currBottom, currTop)
}

// Prism creates a closed N-sided prism centred on the origin with its axis along Y.
// Vertex 0 is the top cap centre and vertex 1 the bottom cap centre, followed by one top and
// one bottom ring vertex per side. The ring is closed through two seam duplicates of the first
// ring pair carrying u = 0 so the texture wraps once around the side.
//
// Parameters:
//   - spec: the prism parameters
//
// Returns:
//   - MeshData: the prism mesh
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity if the spec cannot be built
func (GeometryFactory) Prism(spec PrismSpec) (MeshData, error) {
	return buildPrism("prism", spec)
}

// Cylinder creates the catalog cylinder: a 30-sided prism of radius 0.25 and half length 1.
//
// Returns:
//   - MeshData: the cylinder mesh
//   - error: always nil for the fixed parameters
func (GeometryFactory) Cylinder() (MeshData, error) {
	return buildPrism("cylinder", DefaultPrismSpec)
}

func buildPrism(name string, spec PrismSpec) (MeshData, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	vertices := make([]Vertex, 0, spec.VertexCount())
	indices := make([]uint16, 0, spec.IndexCount())

	h := spec.HalfLength
	r := spec.Radius
	step := 2 * math32.Pi / float32(spec.Sides)

	vertices = append(vertices,
		Vertex{Position: [3]float32{0, h, 0}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.5, 0.5}},
		Vertex{Position: [3]float32{0, -h, 0}, Normal: [3]float32{0, -1, 0}, TexCoord: [2]float32{0.5, 0.5}},
	)

	for edge := 0; edge < spec.Sides; edge++ {
		theta := float32(edge) * step
		sin, cos := math32.Sincos(theta)
		nSin, nCos := math32.Sincos(theta + step/2)
		normal := [3]float32{nCos, 0, nSin}
		u := 1 - theta/(2*math32.Pi)

		vertices = append(vertices,
			Vertex{Position: [3]float32{r * cos, h, r * sin}, Normal: normal, TexCoord: [2]float32{u, 1}},
			Vertex{Position: [3]float32{r * cos, -h, r * sin}, Normal: normal, TexCoord: [2]float32{u, 0}},
		)

		if edge > 0 {
			indices = emitPrismSide(indices, len(vertices))
		}
	}

	// seam duplicates of the first ring pair with u = 0
	vertices = append(vertices,
		Vertex{Position: vertices[2].Position, TexCoord: [2]float32{0, 1}},
		Vertex{Position: vertices[3].Position, TexCoord: [2]float32{0, 0}},
	)
	indices = emitPrismSide(indices, len(vertices))

	if err := checkCounts("prism", len(vertices), spec.VertexCount(), len(indices), spec.IndexCount()); err != nil {
		return nil, err
	}

	return NewMeshData(
		WithName(name),
		WithVertices(vertices),
		WithIndices(indices),
	), nil
}
