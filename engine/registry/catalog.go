package registry

import "github.com/Carmen-Shannon/oxy-primitives/engine/mesh"

// Names of the meshes in the default catalog.
const (
	MeshPlane          = "plane"
	MeshPyramid        = "pyramid"
	MeshFrustumPyramid = "frustum_pyramid"
	MeshCylinder       = "cylinder"
	MeshCube           = "cube"
	MeshSphere         = "sphere"
	MeshTorus          = "torus"
	MeshCone           = "cone"
	MeshSkybox         = "skybox"
)

// DefaultCatalog returns the fixed set of primitives a scene loads at startup, in upload order.
//
// Returns:
//   - []CatalogEntry: a fresh slice the caller may modify
func DefaultCatalog() []CatalogEntry {
	f := mesh.Factory
	return []CatalogEntry{
		{Name: MeshPlane, Generate: infallible(f.Plane)},
		{Name: MeshPyramid, Generate: infallible(f.Pyramid)},
		{Name: MeshFrustumPyramid, Generate: infallible(f.FrustumPyramid)},
		{Name: MeshCylinder, Generate: f.Cylinder},
		{Name: MeshCube, Generate: infallible(f.Cube)},
		{Name: MeshSphere, Generate: f.DefaultSphere},
		{Name: MeshTorus, Generate: f.DefaultTorus},
		{Name: MeshCone, Generate: f.DefaultCone},
		{Name: MeshSkybox, Generate: infallible(f.Skybox)},
	}
}

// infallible wraps a constructor that cannot fail as a mesh.Generator.
func infallible(build func() mesh.MeshData) mesh.Generator {
	return func() (mesh.MeshData, error) {
		return build(), nil
	}
}
