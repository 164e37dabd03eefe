package view

import "github.com/Carmen-Shannon/oxy-desk/engine/camera"

// ViewControllerBuilderOption is a function that configures a ViewController during construction.
type ViewControllerBuilderOption func(*viewControllerImpl)

// WithCamera is an option builder that replaces the default camera.
//
// Parameters:
//   - cam: the camera to control; it should carry a controller
//
// Returns:
//   - ViewControllerBuilderOption: a function that applies the camera option
func WithCamera(cam camera.Camera) ViewControllerBuilderOption {
	return func(v *viewControllerImpl) {
		v.camera = cam
	}
}

// WithPresetKey is an option builder that binds an additional key to a preset, or rebinds
// a key that already has one.
//
// Parameters:
//   - key: the key code
//   - preset: the preset to apply while the key is held
//
// Returns:
//   - ViewControllerBuilderOption: a function that applies the binding
func WithPresetKey(key uint32, preset Preset) ViewControllerBuilderOption {
	return func(v *viewControllerImpl) {
		for i := range v.presetKeys {
			if v.presetKeys[i].Key == key {
				v.presetKeys[i].Preset = preset
				return
			}
		}
		v.presetKeys = append(v.presetKeys, PresetKey{Key: key, Preset: preset})
	}
}
