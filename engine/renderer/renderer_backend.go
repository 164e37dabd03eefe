package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/texture"
)

// RendererBackendType identifies the graphics API implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeOpenGL selects the OpenGL 4.1 core profile backend.
	BackendTypeOpenGL RendererBackendType = iota
)

// String returns the backend name.
func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeOpenGL:
		return "OpenGL"
	default:
		return fmt.Sprintf("RendererBackendType(%d)", int(t))
	}
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected graphics API.
type RendererBackend interface {
	glRendererBackend
}

// resourceBackend is the resource half every backend exposes to the core packages.
type resourceBackend interface {
	texture.Device
	model.Uploader
}
