package mesh

import "github.com/chewxy/math32"

// Sphere creates a UV sphere on a (Stacks+1) x (Slices+1) latitude/longitude grid.
// The first and last grid columns coincide so the texture seam gets its own vertices, and the
// pole rows produce zero-area triangles. Normals are unit length for any radius.
//
// Parameters:
//   - spec: the sphere parameters
//
// Returns:
//   - MeshData: the sphere mesh
//   - error: an error wrapping ErrInvalidSpec or ErrCapacity if the spec cannot be built
func (GeometryFactory) Sphere(spec SphereSpec) (MeshData, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	vertices := make([]Vertex, 0, spec.VertexCount())
	indices := make([]uint16, 0, spec.IndexCount())

	for stack := 0; stack <= spec.Stacks; stack++ {
		theta := float32(stack) * math32.Pi / float32(spec.Stacks)
		sinTheta, cosTheta := math32.Sincos(theta)

		for slice := 0; slice <= spec.Slices; slice++ {
			phi := float32(slice) * 2 * math32.Pi / float32(spec.Slices)
			sinPhi, cosPhi := math32.Sincos(phi)

			n := [3]float32{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			vertices = append(vertices, Vertex{
				Position: [3]float32{n[0] * spec.Radius, n[1] * spec.Radius, n[2] * spec.Radius},
				Normal:   n,
				TexCoord: [2]float32{float32(slice) / float32(spec.Slices), float32(stack) / float32(spec.Stacks)},
			})
		}
	}

	row := spec.Slices + 1
	for stack := 0; stack < spec.Stacks; stack++ {
		for slice := 0; slice < spec.Slices; slice++ {
			a := uint16(stack*row + slice)
			b := uint16((stack+1)*row + slice)
			indices = append(indices, a, b, b+1)
			indices = append(indices, a, b+1, a+1)
		}
	}

	if err := checkCounts("sphere", len(vertices), spec.VertexCount(), len(indices), spec.IndexCount()); err != nil {
		return nil, err
	}

	return NewMeshData(
		WithName("sphere"),
		WithVertices(vertices),
		WithIndices(indices),
	), nil
}

// DefaultSphere creates the catalog sphere: 8 stacks, 16 slices and unit radius.
//
// Returns:
//   - MeshData: the sphere mesh
//   - error: always nil for the fixed parameters
func (f GeometryFactory) DefaultSphere() (MeshData, error) {
	return f.Sphere(DefaultSphereSpec)
}
