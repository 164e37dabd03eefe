package view

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Preset is a fixed camera pose and projection the user can jump to.
type Preset struct {
	Name       string
	Projection camera.ProjectionMode
	Position   mgl32.Vec3
	Front      mgl32.Vec3
	Up         mgl32.Vec3

	// Zoom is the field of view in degrees to restore. Zero keeps the current zoom.
	Zoom float32
}

// Desk presets.
var (
	PresetFront = Preset{
		Name:       "front",
		Projection: camera.ProjectionOrthographic,
		Position:   mgl32.Vec3{0, 4, 10},
		Front:      mgl32.Vec3{0, 0, -1},
		Up:         mgl32.Vec3{0, 1, 0},
	}
	PresetSide = Preset{
		Name:       "side",
		Projection: camera.ProjectionOrthographic,
		Position:   mgl32.Vec3{10, 4, 0},
		Front:      mgl32.Vec3{-1, 0, 0},
		Up:         mgl32.Vec3{0, 1, 0},
	}
	PresetTop = Preset{
		Name:       "top",
		Projection: camera.ProjectionOrthographic,
		Position:   mgl32.Vec3{0, 7, 0},
		Front:      mgl32.Vec3{0, -1, 0},
		Up:         mgl32.Vec3{-1, 0, 0},
	}
	PresetPerspective = Preset{
		Name:       "perspective",
		Projection: camera.ProjectionPerspective,
		Position:   mgl32.Vec3{0, 5.5, 8},
		Front:      mgl32.Vec3{0, -0.5, -2},
		Up:         mgl32.Vec3{0, 1, 0},
		Zoom:       80,
	}
)

// PresetKey binds a key to a preset.
type PresetKey struct {
	Key    uint32
	Preset Preset
}

// DefaultPresetKeys returns the O, 2, 3 and P bindings.
func DefaultPresetKeys() []PresetKey {
	return []PresetKey{
		{Key: common.KeyO, Preset: PresetFront},
		{Key: common.Key2, Preset: PresetSide},
		{Key: common.Key3, Preset: PresetTop},
		{Key: common.KeyP, Preset: PresetPerspective},
	}
}
