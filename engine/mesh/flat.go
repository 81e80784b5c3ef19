package mesh

// Literal geometry for the fixed-shape primitives.
// Interleaved tables hold 8 floats per vertex: position xyz, normal xyz, texcoord uv.
// Every triangle winds counter-clockwise around its face normal.

const floatsPerVertex = 8

var planeTable = []float32{
	0.5, 0, -0.5, 0, 1, 0, 1, 1,
	0.5, 0, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0, 0.5, 0, 1, 0, 0, 0,
	-0.5, 0, -0.5, 0, 1, 0, 0, 1,
}

var planeIndices = []uint16{
	0, 3, 1,
	1, 3, 2,
}

var pyramidTable = []float32{
	// base
	-0.25, -0.5, -0.25, 0, -1, 0, 0, 1,
	0.25, -0.5, -0.25, 0, -1, 0, 1, 1,
	0.25, -0.5, 0.25, 0, -1, 0, 1, 0,
	0.25, -0.5, 0.25, 0, -1, 0, 1, 0,
	-0.25, -0.5, 0.25, 0, -1, 0, 0, 0,
	-0.25, -0.5, -0.25, 0, -1, 0, 0, 1,
	// sides
	-0.25, -0.5, -0.25, 0, 0, -1, 1, 0,
	0, 0.5, 0, 0, 0, -1, 0.5, 1,
	0.25, -0.5, -0.25, 0, 0, -1, 0, 0,
	0.25, -0.5, -0.25, 1, 0, 0, 1, 0,
	0, 0.5, 0, 1, 0, 0, 0.5, 1,
	0.25, -0.5, 0.25, 1, 0, 0, 0, 0,
	0.25, -0.5, 0.25, 0, 0, 1, 1, 0,
	0, 0.5, 0, 0, 0, 1, 0.5, 1,
	-0.25, -0.5, 0.25, 0, 0, 1, 0, 0,
	-0.25, -0.5, 0.25, -1, 0, 0, 1, 0,
	0, 0.5, 0, -1, 0, 0, 0.5, 1,
	-0.25, -0.5, -0.25, -1, 0, 0, 0, 0,
}

var frustumPyramidTable = []float32{
	// back
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.2, 0.75, -0.2, 0, 0, -1, 0.35, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.2, 0.75, -0.2, 0, 0, -1, 0.35, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	-0.2, 0.75, -0.2, 0, 0, -1, 0.75, 1,
	// front
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.2, 0.75, 0.2, 0, 0, 1, 0.75, 1,
	0.2, 0.75, 0.2, 0, 0, 1, 0.75, 1,
	-0.2, 0.75, 0.2, 0, 0, 1, 0.35, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// left
	-0.2, 0.75, 0.2, -1, 0, 0, 0.75, 1,
	-0.2, 0.75, -0.2, -1, 0, 0, 0.35, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	-0.2, 0.75, 0.2, -1, 0, 0, 0.75, 1,
	// right
	0.2, 0.75, 0.2, 1, 0, 0, 0.35, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.2, 0.75, -0.2, 1, 0, 0, 0.75, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.2, 0.75, 0.2, 1, 0, 0, 0.35, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	// bottom
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	// top
	-0.2, 0.75, -0.2, 0, 1, 0, 0.1, 0.3,
	0.2, 0.75, 0.2, 0, 1, 0, 0.3, 0.1,
	0.2, 0.75, -0.2, 0, 1, 0, 0.3, 0.3,
	0.2, 0.75, 0.2, 0, 1, 0, 0.3, 0.1,
	-0.2, 0.75, -0.2, 0, 1, 0, 0.1, 0.3,
	-0.2, 0.75, 0.2, 0, 1, 0, 0.1, 0.1,
}

var cubeTable = []float32{
	// back
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	// front
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// left
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	// right
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	// bottom
	-0.5, -0.5, -0.5, 0, -1, 0, 0.2, 0.1,
	0.5, -0.5, -0.5, 0, -1, 0, 0.3, 0.1,
	0.5, -0.5, 0.5, 0, -1, 0, 0.3, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 0.3, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0.2, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0.2, 0.1,
	// top
	-0.5, 0.5, -0.5, 0, 1, 0, 0.2, 0.1,
	0.5, 0.5, 0.5, 0, 1, 0, 0.3, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 0.3, 0.1,
	0.5, 0.5, 0.5, 0, 1, 0, 0.3, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0.2, 0.1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0.2, 0,
}

// skyboxTable holds 3 floats per vertex. Faces are wound to be seen from inside the cube.
var skyboxTable = []float32{
	// back
	-1, 1, -1,
	-1, -1, -1,
	1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,
	// left
	-1, -1, 1,
	-1, -1, -1,
	-1, 1, -1,
	-1, 1, -1,
	-1, 1, 1,
	-1, -1, 1,
	// right
	1, -1, -1,
	1, -1, 1,
	1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	1, -1, -1,
	// front
	-1, -1, 1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, 1,
	1, -1, 1,
	-1, -1, 1,
	// top
	-1, 1, -1,
	1, 1, -1,
	1, 1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, 1, -1,
	// bottom
	-1, -1, -1,
	-1, -1, 1,
	1, -1, -1,
	1, -1, -1,
	-1, -1, 1,
	1, -1, 1,
}

// verticesFromTable expands an interleaved float table into vertices.
func verticesFromTable(table []float32) []Vertex {
	vertices := make([]Vertex, len(table)/floatsPerVertex)
	for i := range vertices {
		row := table[i*floatsPerVertex : (i+1)*floatsPerVertex]
		vertices[i] = Vertex{
			Position: [3]float32{row[0], row[1], row[2]},
			Normal:   [3]float32{row[3], row[4], row[5]},
			TexCoord: [2]float32{row[6], row[7]},
		}
	}
	return vertices
}

// positionsFromTable expands a position-only float table.
func positionsFromTable(table []float32) [][3]float32 {
	positions := make([][3]float32, len(table)/3)
	for i := range positions {
		positions[i] = [3]float32{table[i*3], table[i*3+1], table[i*3+2]}
	}
	return positions
}

// Plane creates a unit quad on the XZ plane facing +Y, drawn with 6 indices.
//
// Returns:
//   - MeshData: the plane mesh
func (GeometryFactory) Plane() MeshData {
	return NewMeshData(
		WithName("plane"),
		WithVertices(verticesFromTable(planeTable)),
		WithIndices(planeIndices),
	)
}

// Pyramid creates a square-based pyramid with its base at y = -0.5 and apex at y = 0.5.
// The base is two triangles and each side is a single triangle, 18 unindexed vertices in total.
//
// Returns:
//   - MeshData: the pyramid mesh
func (GeometryFactory) Pyramid() MeshData {
	return NewMeshData(
		WithName("pyramid"),
		WithVertices(verticesFromTable(pyramidTable)),
	)
}

// FrustumPyramid creates a truncated square pyramid with a 1x1 base at y = -0.5
// and a 0.4x0.4 top at y = 0.75, 36 unindexed vertices.
//
// Returns:
//   - MeshData: the frustum pyramid mesh
func (GeometryFactory) FrustumPyramid() MeshData {
	return NewMeshData(
		WithName("frustum_pyramid"),
		WithVertices(verticesFromTable(frustumPyramidTable)),
	)
}

// Cube creates a unit cube centred on the origin with per-face normals, 36 unindexed vertices.
//
// Returns:
//   - MeshData: the cube mesh
func (GeometryFactory) Cube() MeshData {
	return NewMeshData(
		WithName("cube"),
		WithVertices(verticesFromTable(cubeTable)),
	)
}

// Skybox creates a position-only cube spanning [-1, 1] on every axis, 36 unindexed vertices.
//
// Returns:
//   - MeshData: the skybox mesh
func (GeometryFactory) Skybox() MeshData {
	return NewMeshData(
		WithName("skybox"),
		WithPositions(positionsFromTable(skyboxTable)),
	)
}
