package light

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrSlotOutOfRange is returned for a slot outside the shader's light array.
var ErrSlotOutOfRange = errors.New("light slot out of range")

// ValidateSlot checks that slot indexes the shader's light array.
//
// Parameters:
//   - slot: the slot to check
//
// Returns:
//   - error: ErrSlotOutOfRange (wrapped) if slot is outside 0..shader.MaxLightSources-1
func ValidateSlot(slot int) error {
	if slot < 0 || slot >= shader.MaxLightSources {
		return fmt.Errorf("%w: %d (have %d slots)", ErrSlotOutOfRange, slot, shader.MaxLightSources)
	}
	return nil
}

// Apply uploads every field of l to its light slot. A disabled light is uploaded black.
//
// Parameters:
//   - l: the light to upload
//   - u: the uniform sink of the active program
//
// Returns:
//   - error: ErrSlotOutOfRange if the light's slot is invalid
func Apply(l Light, u shader.Uniforms) error {
	slot := l.Slot()
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	upload(slot, l, u)
	return nil
}

// upload writes l to an already validated slot.
func upload(slot int, l Light, u shader.Uniforms) {
	if !l.Enabled() {
		Clear(slot, u)
		return
	}
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldPosition), l.Position())
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldAmbientColor), l.AmbientColor())
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldDiffuseColor), l.DiffuseColor())
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldSpecularColor), l.SpecularColor())
	u.SetFloat(shader.LightSourceUniform(slot, shader.LightFieldFocalStrength), l.FocalStrength())
	u.SetFloat(shader.LightSourceUniform(slot, shader.LightFieldSpecularIntensity), l.SpecularIntensity())
}

// Clear uploads a black, zero-intensity light to slot.
//
// Parameters:
//   - slot: a valid light slot
//   - u: the uniform sink of the active program
func Clear(slot int, u shader.Uniforms) {
	var zero mgl32.Vec3
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldPosition), zero)
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldAmbientColor), zero)
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldDiffuseColor), zero)
	u.SetVec3(shader.LightSourceUniform(slot, shader.LightFieldSpecularColor), zero)
	u.SetFloat(shader.LightSourceUniform(slot, shader.LightFieldFocalStrength), 0)
	u.SetFloat(shader.LightSourceUniform(slot, shader.LightFieldSpecularIntensity), 0)
}
