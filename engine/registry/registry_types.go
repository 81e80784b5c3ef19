package registry

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-primitives/engine/mesh"
)

var (
	// ErrAlreadyCreated is returned by CreateAll when the registry already holds created meshes.
	ErrAlreadyCreated = errors.New("meshes already created")

	// ErrUnknownMesh is returned by Get for a name that is not in the registry.
	ErrUnknownMesh = errors.New("unknown mesh")

	// ErrDuplicateMesh is returned by CreateAll when the catalog lists a name twice.
	ErrDuplicateMesh = errors.New("duplicate mesh name")
)

// Stage names the step of CreateAll a mesh failed in.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageValidate Stage = "validate"
	StageUpload   Stage = "upload"
)

// StageError reports which mesh failed during CreateAll and in which stage.
type StageError struct {
	Mesh  string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("mesh %q: %s: %v", e.Mesh, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Handle is an owned GPU resource produced by an Uploader. Release must be safe to call once.
type Handle interface {
	Release()
}

// Uploader turns generated mesh data into GPU resources.
type Uploader interface {
	// Upload creates the GPU resources for a mesh.
	//
	// Parameters:
	//   - m: the validated mesh
	//
	// Returns:
	//   - Handle: the owned GPU resources
	//   - error: an error if the upload failed; nothing must be left allocated in that case
	Upload(m mesh.MeshData) (Handle, error)
}

// UploaderFunc adapts an ordinary function to the Uploader interface.
type UploaderFunc func(m mesh.MeshData) (Handle, error)

// Upload calls f(m).
func (f UploaderFunc) Upload(m mesh.MeshData) (Handle, error) {
	return f(m)
}

// Entry pairs a generated mesh with the GPU handle created for it.
type Entry struct {
	Mesh   mesh.MeshData
	Handle Handle
}

// CatalogEntry names one mesh and the generator that builds it.
type CatalogEntry struct {
	Name     string
	Generate mesh.Generator
}
