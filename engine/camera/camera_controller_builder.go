package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a cameraControllerImpl.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl32.Vec3{x, y, z}
	}
}

// WithFront sets the initial viewing direction. It does not need to be normalized.
//
// Parameters:
//   - x, y, z: direction components
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithFront(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.front = mgl32.Vec3{x, y, z}
	}
}

// WithUp sets the initial up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithUp(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.up = mgl32.Vec3{x, y, z}
	}
}

// WithMovementSpeed sets the initial travel speed in world units per second.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMovementSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.movementSpeed = speed
	}
}

// WithSpeedBounds sets the range scroll input can move the travel speed within.
//
// Parameters:
//   - min: the slowest speed
//   - max: the fastest speed
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithSpeedBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minSpeed = min
		cc.maxSpeed = max
	}
}

// WithMouseSensitivity sets the degrees of rotation per unit of cursor travel.
//
// Parameters:
//   - sensitivity: the mouse sensitivity
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithPitchLimit sets the largest absolute pitch in degrees. Values at or above 90 let the
// view flip over the pole.
//
// Parameters:
//   - degrees: the pitch limit
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPitchLimit(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitchLimit = degrees
	}
}
