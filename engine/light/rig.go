package light

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
)

// ErrSlotTaken is returned when two lights claim the same slot.
var ErrSlotTaken = errors.New("light slot already assigned")

// Rig is the full set of light slots of the scene program.
type Rig struct {
	slots [shader.MaxLightSources]Light
}

// NewRig creates a rig holding the given lights.
//
// Parameters:
//   - lights: lights with distinct, valid slots
//
// Returns:
//   - *Rig: the rig
//   - error: ErrSlotOutOfRange or ErrSlotTaken (wrapped)
func NewRig(lights ...Light) (*Rig, error) {
	r := &Rig{}
	for _, l := range lights {
		if err := r.Set(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Set assigns l to its slot.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - error: ErrSlotOutOfRange or ErrSlotTaken (wrapped)
func (r *Rig) Set(l Light) error {
	slot := l.Slot()
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	if r.slots[slot] != nil {
		return fmt.Errorf("%w: %d", ErrSlotTaken, slot)
	}
	r.slots[slot] = l
	return nil
}

// Light returns the light in slot, or nil when the slot is empty or invalid.
func (r *Rig) Light(slot int) Light {
	if ValidateSlot(slot) != nil {
		return nil
	}
	return r.slots[slot]
}

// Len returns the number of occupied slots.
func (r *Rig) Len() int {
	n := 0
	for _, l := range r.slots {
		if l != nil {
			n++
		}
	}
	return n
}

// Apply uploads every slot, clearing the empty ones, and switches lighting on.
//
// Parameters:
//   - u: the uniform sink of the active program
func (r *Rig) Apply(u shader.Uniforms) {
	for slot, l := range r.slots {
		if l == nil {
			Clear(slot, u)
			continue
		}
		upload(slot, l, u)
	}
	u.SetBool(shader.UniformUseLighting, true)
}
