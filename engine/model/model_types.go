package model

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind identifies one of the primitive meshes the scene can draw.
type MeshKind string

const (
	// MeshPlane is a 2x2 plane in the XZ plane centered on the origin, facing +Y.
	MeshPlane MeshKind = "plane"

	// MeshBox is a unit cube centered on the origin.
	MeshBox MeshKind = "box"

	// MeshCylinder is a radius-1 cylinder standing on the XZ plane from y = 0 to y = 1, with caps.
	MeshCylinder MeshKind = "cylinder"

	// MeshSphere is a radius-1 UV sphere centered on the origin.
	MeshSphere MeshKind = "sphere"
)

// MeshKinds lists every supported kind in a stable order.
var MeshKinds = []MeshKind{MeshPlane, MeshBox, MeshCylinder, MeshSphere}

// ParseMeshKind validates a mesh kind name.
//
// Parameters:
//   - name: the kind name, e.g. "box"
//
// Returns:
//   - MeshKind: the parsed kind
//   - error: error if name is not a supported kind
func ParseMeshKind(name string) (MeshKind, error) {
	for _, k := range MeshKinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMeshKind, name)
}

// Vertex is a single mesh vertex as consumed by the scene vertex shader.
type Vertex struct {
	// Position is the vertex position in model space (attribute location 0).
	Position mgl32.Vec3
	// Normal is the unit surface normal (attribute location 1).
	Normal mgl32.Vec3
	// TexCoord is the UV texture coordinate (attribute location 2).
	TexCoord mgl32.Vec2
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// MeshHandle references geometry that has been uploaded to the GPU.
type MeshHandle struct {
	// VAO is the vertex array object name.
	VAO uint32
	// VBO is the vertex buffer object name.
	VBO uint32
	// EBO is the element (index) buffer object name.
	EBO uint32
	// IndexCount is the number of indices to draw.
	IndexCount int32
}
