package game_object

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the name of the GameObject.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is drawn.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithMesh sets the primitive mesh kind.
//
// Parameters:
//   - kind: the mesh kind
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mesh
func WithMesh(kind model.MeshKind) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mesh = kind
	}
}

// WithMaterial sets the material tag.
//
// Parameters:
//   - tag: the material tag
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the material
func WithMaterial(tag string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.material = tag
	}
}

// WithTextures sets the texture tags, applied in order.
//
// Parameters:
//   - tags: the texture tags
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the textures
func WithTextures(tags ...string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.textures = append([]string(nil), tags...)
	}
}

// WithColor sets a flat color applied before the textures.
//
// Parameters:
//   - color: the RGBA color
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the color
func WithColor(color mgl32.Vec4) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.color = color
		obj.hasColor = true
	}
}

// WithUVScale sets the texture coordinate scale.
//
// Parameters:
//   - scale: the UV scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the UV scale
func WithUVScale(scale mgl32.Vec2) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.uvScale = scale
	}
}

// WithTransform sets the full placement.
//
// Parameters:
//   - t: scale, rotation in degrees and position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the transform
func WithTransform(t common.Transform) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform = t
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Position = mgl32.Vec3{x, y, z}
	}
}

// WithScale sets the initial scale.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithRotation sets the initial rotation in degrees.
//
// Parameters:
//   - rx, ry, rz: rotation around the X, Y and Z axes
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Rotation = mgl32.Vec3{rx, ry, rz}
	}
}
