package camera

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	yaw   float32
	pitch float32

	movementSpeed    float32
	minSpeed         float32
	maxSpeed         float32
	mouseSensitivity float32
	pitchLimit       float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new fly controller. The default pose stands above and in front of
// the origin looking slightly down at it.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		position: mgl32.Vec3{0, 5, 12},
		front:    mgl32.Vec3{0, -0.5, -2},
		up:       mgl32.Vec3{0, 1, 0},

		movementSpeed:    2.5,
		minSpeed:         1,
		maxSpeed:         45,
		mouseSensitivity: 0.1,
		pitchLimit:       89,
	}

	for _, option := range options {
		option(cc)
	}

	cc.SetPose(cc.position, cc.front, cc.up)
	return cc
}

// --- internal helpers ---

// orientationFromFront derives yaw and pitch in degrees from a unit direction.
func orientationFromFront(front mgl32.Vec3) (yaw, pitch float32) {
	pitch = mgl32.RadToDeg(math32.Asin(common.Clamp(front.Y(), -1, 1)))
	if front.X() == 0 && front.Z() == 0 {
		return 0, pitch
	}
	yaw = mgl32.RadToDeg(math32.Atan2(front.Z(), front.X()))
	return yaw, pitch
}

// frontFromOrientation converts yaw and pitch in degrees to a unit direction.
func frontFromOrientation(yaw, pitch float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	pitchRad := mgl32.DegToRad(pitch)
	dir := mgl32.Vec3{
		math32.Cos(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
	return dir.Normalize()
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) Front() mgl32.Vec3 {
	return cc.front
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	return cc.up
}

func (cc *cameraControllerImpl) Right() mgl32.Vec3 {
	right := cc.front.Cross(cc.up)
	if right.Len() == 0 {
		return mgl32.Vec3{}
	}
	return right.Normalize()
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	return cc.position.Add(cc.front)
}

func (cc *cameraControllerImpl) Yaw() float32 {
	return cc.yaw
}

func (cc *cameraControllerImpl) Pitch() float32 {
	return cc.pitch
}

func (cc *cameraControllerImpl) MovementSpeed() float32 {
	return cc.movementSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) SetPose(position, front, up mgl32.Vec3) {
	cc.position = position
	if front.Len() > 0 {
		cc.front = front.Normalize()
	}
	cc.up = up
	yaw, pitch := orientationFromFront(cc.front)
	cc.yaw = yaw
	cc.pitch = common.Clamp(pitch, -cc.pitchLimit, cc.pitchLimit)
}

func (cc *cameraControllerImpl) Move(direction MoveDirection, deltaTime float32) {
	velocity := cc.movementSpeed * deltaTime
	switch direction {
	case MoveForward:
		cc.position = cc.position.Add(cc.front.Mul(velocity))
	case MoveBackward:
		cc.position = cc.position.Sub(cc.front.Mul(velocity))
	case MoveLeft:
		cc.position = cc.position.Sub(cc.Right().Mul(velocity))
	case MoveRight:
		cc.position = cc.position.Add(cc.Right().Mul(velocity))
	case MoveUp:
		cc.position = cc.position.Add(cc.up.Mul(velocity))
	case MoveDown:
		cc.position = cc.position.Sub(cc.up.Mul(velocity))
	}
}

func (cc *cameraControllerImpl) Look(dx, dy float32) {
	cc.yaw += dx * cc.mouseSensitivity
	cc.pitch = common.Clamp(cc.pitch+dy*cc.mouseSensitivity, -cc.pitchLimit, cc.pitchLimit)
	cc.front = frontFromOrientation(cc.yaw, cc.pitch)
}

func (cc *cameraControllerImpl) AdjustSpeed(delta float32) {
	cc.movementSpeed = common.Clamp(cc.movementSpeed+delta, cc.minSpeed, cc.maxSpeed)
}
