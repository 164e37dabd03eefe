package renderer

import "github.com/go-gl/mathgl/mgl32"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithClearColor sets the color each frame is cleared to. Defaults to opaque black.
//
// Parameters:
//   - r, g, b, a: the clear color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(r, g, b, a float32) RendererBuilderOption {
	return func(rr *renderer) {
		rr.clearColor = mgl32.Vec4{r, g, b, a}
	}
}

// WithDepthTest toggles depth testing. Enabled by default.
//
// Parameters:
//   - enabled: false to draw in submission order without depth testing
//
// Returns:
//   - RendererBuilderOption: a function that applies the depth test option to a renderer
func WithDepthTest(enabled bool) RendererBuilderOption {
	return func(r *renderer) {
		r.depthTest = enabled
	}
}

// WithBlending toggles source-alpha blending. Enabled by default.
//
// Parameters:
//   - enabled: false to disable alpha blending
//
// Returns:
//   - RendererBuilderOption: a function that applies the blending option to a renderer
func WithBlending(enabled bool) RendererBuilderOption {
	return func(r *renderer) {
		r.blending = enabled
	}
}

// WithWireframe rasterizes polygons as lines. Useful for inspecting the generated meshes.
//
// Parameters:
//   - enabled: true to draw wireframes
//
// Returns:
//   - RendererBuilderOption: a function that applies the wireframe option to a renderer
func WithWireframe(enabled bool) RendererBuilderOption {
	return func(r *renderer) {
		r.wireframe = enabled
	}
}
