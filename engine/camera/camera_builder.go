package camera

// CameraBuilderOption is a functional option for configuring a cameraImpl.
type CameraBuilderOption func(*cameraImpl)

// WithZoom sets the perspective field of view in degrees.
//
// Parameters:
//   - degrees: field of view
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithZoom(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = degrees
	}
}

// WithViewport sets the initial framebuffer size used for the aspect ratio.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		if width > 0 && height > 0 {
			c.width = width
			c.height = height
		}
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithOrthoHalfExtent sets the half size of the orthographic view volume.
//
// Parameters:
//   - halfExtent: half extent in world units along the longer screen axis
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithOrthoHalfExtent(halfExtent float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orthoHalfExtent = halfExtent
	}
}

// WithProjection sets the initial projection mode.
//
// Parameters:
//   - mode: the projection mode
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithProjection(mode ProjectionMode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = mode
	}
}

// WithController attaches a CameraController.
//
// Parameters:
//   - ctrl: the controller
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
