package camera

import "github.com/go-gl/mathgl/mgl32"

// MoveDirection is a direction of keyboard-driven camera travel relative to the camera's axes.
type MoveDirection int

const (
	// MoveForward travels along the front vector.
	MoveForward MoveDirection = iota
	// MoveBackward travels against the front vector.
	MoveBackward
	// MoveLeft travels against the right vector.
	MoveLeft
	// MoveRight travels along the right vector.
	MoveRight
	// MoveUp travels along the up vector.
	MoveUp
	// MoveDown travels against the up vector.
	MoveDown
)

// CameraController owns the camera's pose and turns input deltas into pose changes.
// It is a first-person fly controller: the camera looks along Front from Position, mouse
// deltas rotate Front through yaw and pitch, and keys translate Position along the local axes.
// Not safe for concurrent use.
type CameraController interface {
	// Position returns the camera's world-space position.
	Position() mgl32.Vec3

	// Front returns the unit viewing direction.
	Front() mgl32.Vec3

	// Up returns the camera's up vector.
	Up() mgl32.Vec3

	// Right returns the unit vector normalize(Front x Up).
	Right() mgl32.Vec3

	// Target returns the look-at point, Position + Front.
	Target() mgl32.Vec3

	// Yaw returns the heading in degrees. -90 looks down -Z.
	Yaw() float32

	// Pitch returns the elevation in degrees, within the pitch limit.
	Pitch() float32

	// MovementSpeed returns the travel speed in world units per second.
	MovementSpeed() float32

	// MouseSensitivity returns the degrees of rotation per unit of cursor travel.
	MouseSensitivity() float32

	// SetPose replaces the camera's position, viewing direction and up vector.
	// Yaw and pitch are re-derived from front so later mouse input continues from the new pose.
	//
	// Parameters:
	//   - position: world-space position
	//   - front: viewing direction, normalized before storing
	//   - up: up vector
	SetPose(position, front, up mgl32.Vec3)

	// Move translates the camera along one of its local axes by MovementSpeed * deltaTime.
	//
	// Parameters:
	//   - direction: the direction of travel
	//   - deltaTime: elapsed seconds since the previous frame
	Move(direction MoveDirection, deltaTime float32)

	// Look rotates the camera by a cursor delta. The delta is scaled by MouseSensitivity, the
	// pitch is clamped to the pitch limit, and Front is recomputed from yaw and pitch.
	//
	// Parameters:
	//   - dx: horizontal cursor travel (positive = right)
	//   - dy: vertical cursor travel (positive = up)
	Look(dx, dy float32)

	// AdjustSpeed adds delta to MovementSpeed, clamped to the speed bounds.
	//
	// Parameters:
	//   - delta: the speed change, typically a scroll offset
	AdjustSpeed(delta float32)
}
