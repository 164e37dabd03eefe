package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/texture"
	"github.com/Carmen-Shannon/oxy-desk/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	programCache map[string]shader.Program

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	clearColor mgl32.Vec4
	depthTest  bool
	blending   bool
	wireframe  bool
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API over the graphics backend: it owns global GL state, clears each frame,
// keeps a cache of linked shader programs and exposes the texture device and mesh uploader the
// core packages draw through. All methods must be called on the thread owning the GL context.
type Renderer interface {
	// BackendType returns the graphics API in use.
	BackendType() RendererBackendType

	// Program retrieves the cached Program associated with the given key.
	// If the Program does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Program to retrieve
	//
	// Returns:
	//   - shader.Program: the Program associated with the key, or nil if not found
	Program(key string) shader.Program

	// RegisterProgram compiles and links the given shader stages and caches the program under key.
	// A key that is already registered returns the cached program without recompiling.
	//
	// Parameters:
	//   - key: the unique identifier for the Program
	//   - shaders: one shader per stage
	//
	// Returns:
	//   - shader.Program: the linked program
	//   - error: compile or link errors
	RegisterProgram(key string, shaders ...shader.Shader) (shader.Program, error)

	// Textures returns the backend's texture device.
	Textures() texture.Device

	// Meshes returns the backend's mesh uploader.
	Meshes() model.Uploader

	// Resize configures the viewport for a new framebuffer size.
	// This should be called when re-sizing the window.
	//
	// Parameters:
	//   - width: the new width of the framebuffer in pixels
	//   - height: the new height of the framebuffer in pixels
	Resize(width, height int)

	// BeginFrame clears the color and depth buffers for a new frame.
	BeginFrame()

	// Release deletes every cached program.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend for the given window.
// The window's OpenGL context is made current and the backend loads its function pointers.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., OpenGL)
//   - win: the window owning the graphics context
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: error if the graphics API cannot be initialized
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:           &sync.Mutex{},
		programCache: make(map[string]shader.Program),
		backendType:  backendType,
		clearColor:   mgl32.Vec4{0, 0, 0, 1},
		depthTest:    true,
		blending:     true,
	}

	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeOpenGL:
		r.backend = newGLRendererBackend(r.depthTest, r.blending, r.wireframe)
	default:
		return nil, fmt.Errorf("unsupported renderer backend %s", backendType)
	}

	win.MakeContextCurrent()
	if err := r.backend.Init(); err != nil {
		return nil, err
	}
	r.backend.SetClearColor(r.clearColor)
	r.backend.ConfigureViewport(win.Width(), win.Height())
	return r, nil
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Program(key string) shader.Program {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.programCache[key]
}

func (r *renderer) RegisterProgram(key string, shaders ...shader.Shader) (shader.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, exists := r.programCache[key]; exists {
		return p, nil
	}
	p, err := shader.NewProgram(shaders...)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", key, err)
	}
	r.programCache[key] = p
	return p, nil
}

func (r *renderer) Textures() texture.Device {
	return r.backend
}

func (r *renderer) Meshes() model.Uploader {
	return r.backend
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureViewport(width, height)
}

func (r *renderer) BeginFrame() {
	r.backend.BeginFrame()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, p := range r.programCache {
		p.Delete()
		delete(r.programCache, key)
	}
}
