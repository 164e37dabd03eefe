package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id       uint64
	name     string
	enabled  atomic.Bool
	mesh     model.MeshKind
	material string
	textures []string

	color    mgl32.Vec4
	hasColor bool
	uvScale  mgl32.Vec2

	transform common.Transform
}

// GameObject is one drawn scene entity: a primitive mesh with a material, an optional flat
// color, textures applied in order and a placement in the world.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's name, used in logs and for lookup.
	Name() string

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Mesh returns the primitive mesh kind drawn for this object.
	Mesh() model.MeshKind

	// Material returns the tag of the material applied before drawing.
	Material() string

	// Textures returns the texture tags applied in order before drawing. The last one wins.
	Textures() []string

	// Color returns the flat color applied before the textures.
	//
	// Returns:
	//   - mgl32.Vec4: the RGBA color
	//   - bool: false when the object has no flat color
	Color() (mgl32.Vec4, bool)

	// UVScale returns the texture coordinate scale.
	UVScale() mgl32.Vec2

	// Transform returns the object's placement.
	Transform() common.Transform

	// ModelMatrix composes the object's placement into a model matrix.
	ModelMatrix() mgl32.Mat4

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to draw
	SetEnabled(enabled bool)

	// SetMaterial changes the material tag.
	SetMaterial(tag string)

	// SetTextures replaces the texture tags.
	SetTextures(tags ...string)

	// SetColor sets the flat color.
	SetColor(r, g, b, a float32)

	// ClearColor removes the flat color.
	ClearColor()

	// SetUVScale sets the texture coordinate scale.
	SetUVScale(u, v float32)

	// SetPosition sets the world-space translation.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the rotation angles in degrees.
	//
	// Parameters:
	//   - rx, ry, rz: rotation around the X, Y and Z axes
	SetRotation(rx, ry, rz float32)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale components
	SetScale(sx, sy, sz float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with the provided options.
// Objects are enabled by default with unit scale, a box mesh and a UV scale of (1, 1).
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mesh:    model.MeshBox,
		uvScale: mgl32.Vec2{1, 1},
		transform: common.Transform{
			Scale: mgl32.Vec3{1, 1, 1},
		},
	}
	obj.enabled.Store(true)

	for _, opt := range options {
		opt(obj)
	}
	return obj
}

func (o *gameObject) ID() uint64 {
	return o.id
}

func (o *gameObject) Name() string {
	return o.name
}

func (o *gameObject) Enabled() bool {
	return o.enabled.Load()
}

func (o *gameObject) Mesh() model.MeshKind {
	return o.mesh
}

func (o *gameObject) Material() string {
	return o.material
}

func (o *gameObject) Textures() []string {
	return o.textures
}

func (o *gameObject) Color() (mgl32.Vec4, bool) {
	return o.color, o.hasColor
}

func (o *gameObject) UVScale() mgl32.Vec2 {
	return o.uvScale
}

func (o *gameObject) Transform() common.Transform {
	return o.transform
}

func (o *gameObject) ModelMatrix() mgl32.Mat4 {
	return o.transform.Matrix()
}

func (o *gameObject) SetEnabled(enabled bool) {
	o.enabled.Store(enabled)
}

func (o *gameObject) SetMaterial(tag string) {
	o.material = tag
}

func (o *gameObject) SetTextures(tags ...string) {
	o.textures = append([]string(nil), tags...)
}

func (o *gameObject) SetColor(r, g, b, a float32) {
	o.color = mgl32.Vec4{r, g, b, a}
	o.hasColor = true
}

func (o *gameObject) ClearColor() {
	o.color = mgl32.Vec4{}
	o.hasColor = false
}

func (o *gameObject) SetUVScale(u, v float32) {
	o.uvScale = mgl32.Vec2{u, v}
}

func (o *gameObject) SetPosition(x, y, z float32) {
	o.transform.Position = mgl32.Vec3{x, y, z}
}

func (o *gameObject) SetRotation(rx, ry, rz float32) {
	o.transform.Rotation = mgl32.Vec3{rx, ry, rz}
}

func (o *gameObject) SetScale(sx, sy, sz float32) {
	o.transform.Scale = mgl32.Vec3{sx, sy, sz}
}
