package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/profiler"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/texture"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
	"github.com/Carmen-Shannon/oxy-desk/engine/view"
	"github.com/Carmen-Shannon/oxy-desk/engine/window"
)

// SceneProgramKey is the renderer cache key of the lit scene program.
const SceneProgramKey = "scene"

// engine implements the Engine interface.
// Everything runs on the thread that created the window, once per message loop iteration.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	program  shader.Program
	scene    scene.Scene
	view     view.ViewController

	windowOptions   []window.WindowBuilderOption
	rendererOptions []renderer.RendererBuilderOption
	sceneOptions    []scene.SceneBuilderOption
	viewOptions     []view.ViewControllerBuilderOption
	decodeWorkers   int

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback    func(deltaTime float32)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	frameErr error
	closed   bool
}

// Engine is the main entry point for the engine.
// It owns the window, the renderer, the scene and the view controller and drives them
// from the window's message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer.
	Renderer() renderer.Renderer

	// Scene returns the scene drawn every frame.
	Scene() scene.Scene

	// View returns the view controller.
	View() view.ViewController

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers a function called each frame after the scene is drawn.
	//
	// Parameters:
	//   - callback: function receiving the frame's delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default). With vsync on the swap already paces frames.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run prepares the scene, blocks in the message loop until the window closes, then
	// releases every GPU resource and closes the window.
	//
	// Returns:
	//   - error: scene preparation errors, or the error that stopped the loop
	Run() error

	// Quit asks the window to close after the current frame.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates the window (unless WithWindow is given), the OpenGL renderer, the scene
// program, the texture registry, the mesh set, the scene and the view controller, and wires
// the window callbacks. Must be called from the main thread.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: window, renderer, shader or scene description errors
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		profiler:      profiler.NewProfiler(),
		decodeWorkers: 4,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		w, err := window.NewWindow(e.windowOptions...)
		if err != nil {
			return nil, err
		}
		e.window = w
	}

	if e.renderer == nil {
		r, err := renderer.NewRenderer(renderer.BackendTypeOpenGL, e.window, e.rendererOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer: %w", err)
		}
		e.renderer = r
	}

	program, err := e.renderer.RegisterProgram(SceneProgramKey, shader.SceneVertexShader(), shader.SceneFragmentShader())
	if err != nil {
		return nil, err
	}
	e.program = program
	e.program.Use()

	registry := texture.NewRegistry(e.renderer.Textures(), texture.WithDecodeWorkers(e.decodeWorkers))
	meshes := model.NewMeshes(e.renderer.Meshes())
	s, err := scene.NewScene(e.program, registry, meshes, e.sceneOptions...)
	if err != nil {
		return nil, err
	}
	e.scene = s

	e.view = view.NewViewController(e.program, e.viewOptions...)
	e.view.Resize(e.window.Width(), e.window.Height())

	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
		e.view.Resize(width, height)
	})
	e.window.SetMouseMoveCallback(e.view.OnMouseMove)
	e.window.SetScrollCallback(e.view.OnScroll)
	e.window.SetUpdateCallback(e.frame)

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) View() view.ViewController {
	return e.view
}

func (e *engine) Run() error {
	if err := e.scene.Prepare(); err != nil {
		e.teardown()
		return fmt.Errorf("failed to prepare scene: %w", err)
	}
	log.Printf("[Engine] Running %dx%d", e.window.Width(), e.window.Height())

	e.window.ProcessMessages()
	e.teardown()
	return e.frameErr
}

func (e *engine) Quit() {
	e.window.RequestClose()
}

// frame runs one iteration of the loop between event polling and the buffer swap.
func (e *engine) frame() {
	start := time.Now()

	e.renderer.BeginFrame()
	e.program.Use()
	e.view.PrepareFrame(e.window)

	if err := e.scene.Render(); err != nil {
		log.Printf("[Engine] Render failed: %v", err)
		e.frameErr = err
		e.Quit()
		return
	}

	if e.frameCallback != nil {
		e.frameCallback(e.view.DeltaTime())
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// teardown releases the scene's textures and meshes, the programs and the window, once.
func (e *engine) teardown() {
	if e.closed {
		return
	}
	e.closed = true
	e.scene.Destroy()
	e.renderer.Release()
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] Failed to close window: %v", err)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
