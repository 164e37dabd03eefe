package model

import (
	"fmt"
)

// Uploader moves geometry to the GPU and issues draw calls for it.
// The renderer's OpenGL backend implements it; tests substitute an in-memory fake.
type Uploader interface {
	// UploadMesh creates the vertex array and buffers for g.
	UploadMesh(g Geometry) (MeshHandle, error)

	// DrawMesh issues an indexed triangle draw of a previously uploaded mesh.
	DrawMesh(h MeshHandle)

	// ReleaseMesh deletes the buffers and vertex array of h.
	ReleaseMesh(h MeshHandle)
}

// meshesImpl is the implementation of the Meshes interface.
type meshesImpl struct {
	uploader       Uploader
	cylinderSlices int
	sphereSlices   int
	sphereStacks   int

	handles map[MeshKind]MeshHandle
	order   []MeshKind
}

// Meshes is the set of primitive meshes available to the scene. Each kind is generated and
// uploaded at most once however many objects draw it.
type Meshes interface {
	// Load generates and uploads the geometry for kind. Loading an already loaded kind is a no-op.
	//
	// Parameters:
	//   - kind: the mesh kind
	//
	// Returns:
	//   - error: error if the kind is unknown or the upload fails
	Load(kind MeshKind) error

	// Loaded reports whether kind has been uploaded.
	Loaded(kind MeshKind) bool

	// Draw issues a draw call for kind.
	//
	// Parameters:
	//   - kind: the mesh kind
	//
	// Returns:
	//   - error: ErrMeshNotLoaded if Load was never called for kind
	Draw(kind MeshKind) error

	// Geometry generates the CPU-side geometry for kind using the configured tessellation.
	Geometry(kind MeshKind) (Geometry, error)

	// Destroy releases every uploaded mesh exactly once. Calling it again is a no-op.
	Destroy()
}

var _ Meshes = &meshesImpl{}

// NewMeshes creates an empty mesh set backed by the given uploader.
//
// Parameters:
//   - uploader: the GPU uploader
//   - options: optional MeshesBuilderOption functions
//
// Returns:
//   - Meshes: the mesh set
func NewMeshes(uploader Uploader, options ...MeshesBuilderOption) Meshes {
	m := &meshesImpl{
		uploader:       uploader,
		cylinderSlices: DefaultCylinderSlices,
		sphereSlices:   DefaultSphereSlices,
		sphereStacks:   DefaultSphereStacks,
		handles:        make(map[MeshKind]MeshHandle),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *meshesImpl) Geometry(kind MeshKind) (Geometry, error) {
	switch kind {
	case MeshPlane:
		return PlaneGeometry(), nil
	case MeshBox:
		return BoxGeometry(), nil
	case MeshCylinder:
		return CylinderGeometry(m.cylinderSlices), nil
	case MeshSphere:
		return SphereGeometry(m.sphereSlices, m.sphereStacks), nil
	default:
		return Geometry{}, fmt.Errorf("%w: %q", ErrUnknownMeshKind, string(kind))
	}
}

func (m *meshesImpl) Load(kind MeshKind) error {
	if _, ok := m.handles[kind]; ok {
		return nil
	}
	g, err := m.Geometry(kind)
	if err != nil {
		return err
	}
	h, err := m.uploader.UploadMesh(g)
	if err != nil {
		return fmt.Errorf("failed to upload %s mesh: %w", kind, err)
	}
	m.handles[kind] = h
	m.order = append(m.order, kind)
	return nil
}

func (m *meshesImpl) Loaded(kind MeshKind) bool {
	_, ok := m.handles[kind]
	return ok
}

func (m *meshesImpl) Draw(kind MeshKind) error {
	h, ok := m.handles[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMeshNotLoaded, kind)
	}
	m.uploader.DrawMesh(h)
	return nil
}

func (m *meshesImpl) Destroy() {
	for _, kind := range m.order {
		m.uploader.ReleaseMesh(m.handles[kind])
	}
	m.handles = make(map[MeshKind]MeshHandle)
	m.order = nil
}
