package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects how the camera projects the scene.
type ProjectionMode int

const (
	// ProjectionPerspective uses a perspective frustum with the camera's zoom as field of view.
	ProjectionPerspective ProjectionMode = iota
	// ProjectionOrthographic uses a box of fixed half extent, corrected for aspect ratio.
	ProjectionOrthographic
)

// String returns the projection mode name.
func (m ProjectionMode) String() string {
	switch m {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", int(m))
	}
}

type cameraImpl struct {
	zoom            float32 // vertical field of view in degrees
	near            float32
	far             float32
	orthoHalfExtent float32
	projection      ProjectionMode

	width  int
	height int

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds projection settings and computes view/projection matrices
// from an attached CameraController each frame via Update(). Not safe for concurrent use.
type Camera interface {
	// Zoom returns the perspective field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Zoom() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// OrthoHalfExtent returns the half size of the orthographic view volume along the longer screen axis.
	OrthoHalfExtent() float32

	// Projection returns the active projection mode.
	Projection() ProjectionMode

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// Controller returns the attached CameraController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update reads the pose from the controller and recomputes both matrices.
	// Should be called once per frame. If no controller is attached, this method does nothing.
	Update()

	// SetZoom sets the perspective field of view in degrees.
	//
	// Parameters:
	//   - degrees: field of view
	SetZoom(degrees float32)

	// SetViewport sets the framebuffer size the projections are built for.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	SetViewport(width, height int)

	// SetProjection switches the projection mode.
	//
	// Parameters:
	//   - mode: the projection mode
	SetProjection(mode ProjectionMode)

	// SetController attaches a controller.
	//
	// Parameters:
	//   - ctrl: the controller
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the given options applied over defaults.
// A controller must be attached via SetController or WithController option
// before position data is available.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		zoom:             80,
		near:             0.1,
		far:              100,
		orthoHalfExtent:  5,
		projection:       ProjectionPerspective,
		width:            1000,
		height:           800,
		viewMatrix:       mgl32.Ident4(),
		projectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	if c.controller != nil {
		c.updateMatrices()
	}
	return c
}

func (c *cameraImpl) Zoom() float32 {
	return c.zoom
}

func (c *cameraImpl) Aspect() float32 {
	return float32(c.width) / float32(c.height)
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) OrthoHalfExtent() float32 {
	return c.orthoHalfExtent
}

func (c *cameraImpl) Projection() ProjectionMode {
	return c.projection
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	return c.controller
}

func (c *cameraImpl) Update() {
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetZoom(degrees float32) {
	c.zoom = degrees
}

func (c *cameraImpl) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
}

func (c *cameraImpl) SetProjection(mode ProjectionMode) {
	c.projection = mode
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.controller = ctrl
}

// updateMatrices recalculates the view and projection matrices from the controller's pose.
// This is a no-op when the controller is nil.
func (c *cameraImpl) updateMatrices() {
	if c.controller == nil {
		return
	}

	c.viewMatrix = mgl32.LookAtV(c.controller.Position(), c.controller.Target(), c.controller.Up())

	switch c.projection {
	case ProjectionOrthographic:
		left, right, bottom, top := common.OrthoBounds(c.orthoHalfExtent, c.width, c.height)
		c.projectionMatrix = mgl32.Ortho(left, right, bottom, top, c.near, c.far)
	default:
		c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(c.zoom), c.Aspect(), c.near, c.far)
	}
}
