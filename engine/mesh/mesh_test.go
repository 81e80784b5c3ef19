package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-primitives/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMesh(t *testing.T, gen Generator) MeshData {
	t.Helper()
	m, err := gen()
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

// signedArea returns twice the area of (a, b, c) projected on normal; positive when the
// triangle winds counter-clockwise around it.
func signedArea(a, b, c, normal mgl32.Vec3) float32 {
	return common.FaceNormal(a, b, c).Dot(normal)
}

func allGenerators() map[string]Generator {
	f := Factory
	return map[string]Generator{
		"plane":           func() (MeshData, error) { return f.Plane(), nil },
		"pyramid":         func() (MeshData, error) { return f.Pyramid(), nil },
		"frustum_pyramid": func() (MeshData, error) { return f.FrustumPyramid(), nil },
		"cube":            func() (MeshData, error) { return f.Cube(), nil },
		"skybox":          func() (MeshData, error) { return f.Skybox(), nil },
		"cylinder":        f.Cylinder,
		"cone":            f.DefaultCone,
		"sphere":          f.DefaultSphere,
		"torus":           f.DefaultTorus,
	}
}

func TestGpuTypeSizes(t *testing.T) {
	v := Vertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.5, 0.25}}
	assert.Equal(t, VertexStride, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, VertexStride)
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[PositionOffset+4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[NormalOffset+4:])))
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[TexCoordOffset+4:])))

	p := PositionVertex{Position: [3]float32{-1, 1, -1}}
	assert.Equal(t, PositionStride, p.Size())
	assert.Len(t, p.Marshal(), PositionStride)
}

func TestLayoutVertexBufferLayouts(t *testing.T) {
	interleaved := LayoutInterleaved.VertexBufferLayouts()
	require.Len(t, interleaved, 1)
	assert.Equal(t, uint64(32), interleaved[0].ArrayStride)
	require.Len(t, interleaved[0].Attributes, 3)
	assert.Equal(t, uint64(0), interleaved[0].Attributes[0].Offset)
	assert.Equal(t, uint64(12), interleaved[0].Attributes[1].Offset)
	assert.Equal(t, uint64(24), interleaved[0].Attributes[2].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, interleaved[0].Attributes[2].Format)
	assert.Equal(t, uint32(2), interleaved[0].Attributes[2].ShaderLocation)

	position := LayoutPosition.VertexBufferLayouts()
	require.Len(t, position, 1)
	assert.Equal(t, uint64(12), position[0].ArrayStride)

	split := LayoutSplitNormals.VertexBufferLayouts()
	require.Len(t, split, 2)
	assert.Equal(t, uint32(1), split[1].Attributes[0].ShaderLocation)

	assert.Nil(t, Layout(42).VertexBufferLayouts())
	assert.Equal(t, "unknown", Layout(42).String())
}

func TestPrismDefaultCounts(t *testing.T) {
	m := mustMesh(t, Factory.Cylinder)

	assert.Equal(t, "cylinder", m.Name())
	assert.Equal(t, 64, m.VertexCount())
	assert.Equal(t, 512, len(m.VertexData())/4)
	assert.Equal(t, 8*(2+2*30)+16, len(m.VertexData())/4)
	assert.Equal(t, 360, m.IndexCount())
	assert.Len(t, m.IndexData(), 720)

	v := m.Vertices()
	assert.Equal(t, [3]float32{0, 1, 0}, v[0].Position)
	assert.Equal(t, [3]float32{0, -1, 0}, v[1].Position)
	assert.Equal(t, [2]float32{0.5, 0.5}, v[0].TexCoord)

	// seam duplicates
	assert.Equal(t, v[2].Position, v[62].Position)
	assert.Equal(t, v[3].Position, v[63].Position)
	assert.Equal(t, [2]float32{0, 1}, v[62].TexCoord)
	assert.Equal(t, [2]float32{0, 0}, v[63].TexCoord)
	assert.Equal(t, [3]float32{}, v[62].Normal)
}

func TestPrismTopology(t *testing.T) {
	m, err := Factory.Prism(PrismSpec{Sides: 3, Radius: 1, HalfLength: 0.5})
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 10, m.VertexCount())
	assert.Equal(t, []uint16{
		0, 2, 4, 1, 3, 5, 2, 3, 5, 5, 4, 2,
		0, 4, 6, 1, 5, 7, 4, 5, 7, 7, 6, 4,
		0, 6, 8, 1, 7, 9, 6, 7, 9, 9, 8, 6,
	}, m.Indices())
}

func TestPrismInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec PrismSpec
		want error
	}{
		{"too few sides", PrismSpec{Sides: 2, Radius: 1, HalfLength: 1}, ErrInvalidSpec},
		{"zero radius", PrismSpec{Sides: 8, Radius: 0, HalfLength: 1}, ErrInvalidSpec},
		{"negative half length", PrismSpec{Sides: 8, Radius: 1, HalfLength: -1}, ErrInvalidSpec},
		{"exceeds 16-bit indices", PrismSpec{Sides: 40000, Radius: 1, HalfLength: 1}, ErrCapacity},
		{"first side count past 16-bit indices", PrismSpec{Sides: 32767, Radius: 1, HalfLength: 1}, ErrCapacity},
		{"side count overflows int", PrismSpec{Sides: math.MaxInt/2 + 1, Radius: 1, HalfLength: 1}, ErrCapacity},
		{"max int sides", PrismSpec{Sides: math.MaxInt, Radius: 1, HalfLength: 1}, ErrCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Factory.Prism(tt.spec)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, m)
		})
	}
}

func TestConeDefault(t *testing.T) {
	m := mustMesh(t, Factory.DefaultCone)

	assert.Equal(t, 102, m.VertexCount())
	assert.Equal(t, 600, m.IndexCount())

	v := m.Vertices()
	assert.Equal(t, [3]float32{0, 0.25, 0}, v[0].Position)
	assert.Equal(t, [3]float32{0, -0.25, 0}, v[1].Position)
	assert.Equal(t, [2]float32{0.7, 0.7}, v[0].TexCoord)
	assert.Equal(t, [2]float32{0.8, 0.8}, v[1].TexCoord)

	idx := m.Indices()
	assert.Equal(t, []uint16{0, 2, 3, 1, 2, 3}, idx[:6])
	assert.Equal(t, []uint16{1, 101, 2, 0, 2, 101}, idx[len(idx)-6:])
}

func TestConeInvalidSpecs(t *testing.T) {
	_, err := Factory.Cone(ConeSpec{Sides: 2, Radius: 1, Height: 1})
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = Factory.Cone(ConeSpec{Sides: 10, Radius: 1, Height: 0})
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = Factory.Cone(ConeSpec{Sides: 70000, Radius: 1, Height: 1})
	assert.ErrorIs(t, err, ErrCapacity)
	_, err = Factory.Cone(ConeSpec{Sides: math.MaxInt, Radius: 1, Height: 1})
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestIndexedSpecCapacityBoundary(t *testing.T) {
	prism := PrismSpec{Sides: (MaxIndexedVertices - 4) / 2, Radius: 1, HalfLength: 1}
	assert.NoError(t, prism.Validate())
	assert.Equal(t, MaxIndexedVertices, prism.VertexCount())

	cone := ConeSpec{Sides: MaxIndexedVertices - 2, Radius: 1, Height: 1}
	assert.NoError(t, cone.Validate())
	assert.Equal(t, MaxIndexedVertices, cone.VertexCount())

	cone.Sides++
	assert.ErrorIs(t, cone.Validate(), ErrCapacity)
}

func TestSphereDefault(t *testing.T) {
	m := mustMesh(t, Factory.DefaultSphere)

	assert.Equal(t, 153, m.VertexCount())
	assert.Equal(t, 1224, len(m.VertexData())/4)
	assert.Equal(t, 768, m.IndexCount())

	for i, p := range m.Positions() {
		assert.InDelta(t, 1.0, mgl32.Vec3(p).Len(), 1e-5, "vertex %d", i)
	}

	v := m.Vertices()
	assert.InDelta(t, 1.0, v[0].Position[1], 1e-6)
	assert.InDelta(t, -1.0, v[len(v)-1].Position[1], 1e-6)
	assert.Equal(t, [2]float32{1, 1}, v[len(v)-1].TexCoord)

	idx := m.Indices()
	assert.Equal(t, []uint16{0, 17, 18, 0, 18, 1}, idx[:6])
}

func TestSphereRadiusKeepsUnitNormals(t *testing.T) {
	m, err := Factory.Sphere(SphereSpec{Stacks: 4, Slices: 6, Radius: 3})
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	for _, v := range m.Vertices() {
		assert.InDelta(t, 3.0, mgl32.Vec3(v.Position).Len(), 1e-5)
		assert.InDelta(t, 1.0, mgl32.Vec3(v.Normal).Len(), 1e-5)
	}
	assert.InDelta(t, 3.0, m.BoundingRadius(), 1e-5)
}

func TestSphereInvalidSpecs(t *testing.T) {
	_, err := Factory.Sphere(SphereSpec{Stacks: 1, Slices: 8, Radius: 1})
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = Factory.Sphere(SphereSpec{Stacks: 8, Slices: 2, Radius: 1})
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = Factory.Sphere(SphereSpec{Stacks: 300, Slices: 300, Radius: 1})
	assert.ErrorIs(t, err, ErrCapacity)
	_, err = Factory.Sphere(SphereSpec{Stacks: math.MaxInt / 2, Slices: math.MaxInt / 2, Radius: 1})
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestTorusDefault(t *testing.T) {
	m := mustMesh(t, Factory.DefaultTorus)

	assert.Equal(t, LayoutSplitNormals, m.Layout())
	assert.False(t, m.Indexed())
	assert.Equal(t, 6300, m.VertexCount())
	assert.Len(t, m.Normals(), 6300)
	assert.Equal(t, len(m.VertexData()), len(m.NormalData()))

	positions := m.Positions()
	normals := m.Normals()
	for cell := 0; cell < len(positions); cell += verticesPerTorusCell {
		assert.Equal(t, positions[cell], positions[cell+3])
		assert.Equal(t, positions[cell], positions[cell+6])
		assert.InDelta(t, 1.0, mgl32.Vec3(normals[cell]).Len(), 1e-5)
		for k := 1; k < verticesPerTorusCell; k++ {
			assert.Equal(t, normals[cell], normals[cell+k])
		}
	}
	assert.InDelta(t, 1.25, m.BoundingRadius(), 1e-5)
}

func TestTorusWrapsToFirstRing(t *testing.T) {
	spec := TorusSpec{MainSegments: 3, TubeSegments: 4, MainRadius: 2, TubeRadius: 0.5}
	m, err := Factory.Torus(spec)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 84, m.VertexCount())

	grid := torusGrid(spec)
	positions := m.Positions()

	// last cell wraps on both axes
	last := positions[len(positions)-verticesPerTorusCell:]
	assert.Equal(t, grid[2][3], last[0])
	assert.Equal(t, grid[2][0], last[1])
	assert.Equal(t, grid[0][0], last[2])
	assert.Equal(t, grid[0][3], last[4])
}

func TestTorusInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec TorusSpec
	}{
		{"too few main segments", TorusSpec{MainSegments: 2, TubeSegments: 3, MainRadius: 1, TubeRadius: 0.25}},
		{"too few tube segments", TorusSpec{MainSegments: 3, TubeSegments: 2, MainRadius: 1, TubeRadius: 0.25}},
		{"zero tube radius", TorusSpec{MainSegments: 3, TubeSegments: 3, MainRadius: 1, TubeRadius: 0}},
		{"incomplete triangle list", TorusSpec{MainSegments: 4, TubeSegments: 4, MainRadius: 1, TubeRadius: 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Factory.Torus(tt.spec)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}

	_, err := Factory.Torus(TorusSpec{MainSegments: math.MaxInt / 2, TubeSegments: 3, MainRadius: 1, TubeRadius: 0.25})
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestTorusNormalsPointAwayFromTube(t *testing.T) {
	m := mustMesh(t, Factory.DefaultTorus)
	positions := m.Positions()
	normals := m.Normals()
	mainRadius := DefaultTorusSpec.MainRadius

	for cell := 0; cell < len(positions); cell += verticesPerTorusCell {
		p := mgl32.Vec3(positions[cell])
		tubeCentre := mgl32.Vec3{p.X(), p.Y(), 0}.Normalize().Mul(mainRadius)
		outward := p.Sub(tubeCentre)
		assert.Greater(t, mgl32.Vec3(normals[cell]).Dot(outward), float32(0), "cell %d", cell/verticesPerTorusCell)
	}

	// cell (0, 0): the origin sits on the outer equator at (R + r, 0, 0)
	assert.InDelta(t, 1.25, positions[0][0], 1e-6)
	assert.Greater(t, normals[0][0], float32(0.9))
}

func TestFlatShapeCounts(t *testing.T) {
	tests := []struct {
		name     string
		mesh     MeshData
		vertices int
		indices  int
		layout   Layout
	}{
		{"plane", Factory.Plane(), 4, 6, LayoutInterleaved},
		{"pyramid", Factory.Pyramid(), 18, 0, LayoutInterleaved},
		{"frustum_pyramid", Factory.FrustumPyramid(), 36, 0, LayoutInterleaved},
		{"cube", Factory.Cube(), 36, 0, LayoutInterleaved},
		{"skybox", Factory.Skybox(), 36, 0, LayoutPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.mesh.Validate())
			assert.Equal(t, tt.name, tt.mesh.Name())
			assert.Equal(t, tt.layout, tt.mesh.Layout())
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
			assert.Equal(t, tt.indices, tt.mesh.IndexCount())
			assert.Len(t, tt.mesh.VertexData(), tt.vertices*int(tt.mesh.Stride()))
		})
	}
}

func TestFlatShapeWinding(t *testing.T) {
	for _, m := range []MeshData{Factory.Pyramid(), Factory.FrustumPyramid(), Factory.Cube()} {
		v := m.Vertices()
		for i := 0; i < len(v); i += 3 {
			area := signedArea(
				mgl32.Vec3(v[i].Position), mgl32.Vec3(v[i+1].Position), mgl32.Vec3(v[i+2].Position),
				mgl32.Vec3(v[i].Normal),
			)
			assert.Greater(t, area, float32(0), "%s triangle %d", m.Name(), i/3)
		}
	}

	plane := Factory.Plane()
	v := plane.Vertices()
	idx := plane.Indices()
	for i := 0; i < len(idx); i += 3 {
		area := signedArea(
			mgl32.Vec3(v[idx[i]].Position), mgl32.Vec3(v[idx[i+1]].Position), mgl32.Vec3(v[idx[i+2]].Position),
			mgl32.Vec3{0, 1, 0},
		)
		assert.Greater(t, area, float32(0), "plane triangle %d", i/3)
	}
}

func TestSkyboxFacesInward(t *testing.T) {
	p := Factory.Skybox().Positions()
	for i := 0; i < len(p); i += 3 {
		a, b, c := mgl32.Vec3(p[i]), mgl32.Vec3(p[i+1]), mgl32.Vec3(p[i+2])
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Less(t, common.FaceNormal(a, b, c).Dot(centroid), float32(0), "triangle %d", i/3)
	}
	assert.InDelta(t, math.Sqrt(3), Factory.Skybox().BoundingRadius(), 1e-5)
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	for name, gen := range allGenerators() {
		t.Run(name, func(t *testing.T) {
			a := mustMesh(t, gen)
			b := mustMesh(t, gen)
			assert.Equal(t, a.VertexData(), b.VertexData())
			assert.Equal(t, a.NormalData(), b.NormalData())
			assert.Equal(t, a.IndexData(), b.IndexData())
		})
	}
}

func TestMeshDataIsImmutable(t *testing.T) {
	m := Factory.Cube()
	v := m.Vertices()
	v[0].Position = [3]float32{9, 9, 9}
	assert.NotEqual(t, v[0].Position, m.Vertices()[0].Position)

	idx := Factory.Plane().Indices()
	idx[0] = 99
	assert.NoError(t, Factory.Plane().Validate())
}

func TestValidate(t *testing.T) {
	tri := []Vertex{{}, {}, {}}
	tests := []struct {
		name string
		mesh MeshData
	}{
		{"empty", NewMeshData(WithName("empty"))},
		{"index out of range", NewMeshData(WithVertices(tri), WithIndices([]uint16{0, 1, 3}))},
		{"partial triangle", NewMeshData(WithVertices(tri), WithIndices([]uint16{0, 1, 2, 0}))},
		{"unindexed partial triangle", NewMeshData(WithVertices(tri[:2]))},
		{"normal mismatch", NewMeshData(WithPositions(make([][3]float32, 3)), WithSplitNormals(make([][3]float32, 2)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.mesh.Validate(), ErrInvalidMesh)
		})
	}

	assert.NoError(t, NewMeshData(WithVertices(tri), WithIndices([]uint16{0, 1, 2})).Validate())
}
