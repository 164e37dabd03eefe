package engine

import (
	"github.com/Carmen-Shannon/oxy-desk/engine/profiler"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
	"github.com/Carmen-Shannon/oxy-desk/engine/view"
	"github.com/Carmen-Shannon/oxy-desk/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally. The engine still closes it on shutdown.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWindowOptions sets the options used when the engine creates its own window.
//
// Parameters:
//   - options: window options such as window.WithTitle
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindowOptions(options ...window.WindowBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.windowOptions = append(e.windowOptions, options...)
	}
}

// WithRenderer sets a pre-built renderer bound to the engine's window.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithRendererOptions sets the options used when the engine creates its own renderer.
//
// Parameters:
//   - options: renderer options such as renderer.WithClearColor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOptions = append(e.rendererOptions, options...)
	}
}

// WithSceneOptions passes options to the scene, such as scene.WithAssetsDir.
//
// Parameters:
//   - options: scene options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSceneOptions(options ...scene.SceneBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.sceneOptions = append(e.sceneOptions, options...)
	}
}

// WithViewOptions passes options to the view controller.
//
// Parameters:
//   - options: view controller options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithViewOptions(options ...view.ViewControllerBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.viewOptions = append(e.viewOptions, options...)
	}
}

// WithDecodeWorkers sets how many goroutines decode texture files during scene preparation.
// Defaults to 4.
//
// Parameters:
//   - n: the number of decode workers (minimum 1)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDecodeWorkers(n int) EngineBuilderOption {
	return func(e *engine) {
		e.decodeWorkers = max(n, 1)
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}
