package renderer

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glRendererBackend is the OpenGL implementation of the renderer backend.
type glRendererBackend interface {
	resourceBackend

	// Init loads the GL function pointers for the current context and sets the global state
	// the scene relies on.
	//
	// Returns:
	//   - error: error if the function pointers cannot be loaded
	Init() error

	// ConfigureViewport sets the viewport to the full framebuffer.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	ConfigureViewport(width, height int)

	// SetClearColor sets the color the frame is cleared to.
	SetClearColor(c mgl32.Vec4)

	// BeginFrame clears the color and depth buffers.
	BeginFrame()

	// Version returns the driver's GL version string.
	Version() string
}

// glRendererBackendImpl holds the global GL state configuration.
type glRendererBackendImpl struct {
	clearColor mgl32.Vec4
	depthTest  bool
	blending   bool
	wireframe  bool
}

var _ glRendererBackend = &glRendererBackendImpl{}

func newGLRendererBackend(depthTest, blending, wireframe bool) glRendererBackend {
	return &glRendererBackendImpl{
		depthTest: depthTest,
		blending:  blending,
		wireframe: wireframe,
	}
}

func (b *glRendererBackendImpl) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("[Renderer] OpenGL %s, GLSL %s", b.Version(), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	if b.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	if b.blending {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	if b.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	return nil
}

func (b *glRendererBackendImpl) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (b *glRendererBackendImpl) ConfigureViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *glRendererBackendImpl) SetClearColor(c mgl32.Vec4) {
	b.clearColor = c
}

func (b *glRendererBackendImpl) BeginFrame() {
	gl.ClearColor(b.clearColor[0], b.clearColor[1], b.clearColor[2], b.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CreateTexture uploads a packed RGB or RGBA image as a mipmapped 2D texture.
//
// Reference: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glTexImage2D.xhtml
func (b *glRendererBackendImpl) CreateTexture(img *common.DecodedImage) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch img.Layout {
	case common.LayoutRGB:
		internalFormat, format = gl.RGB8, gl.RGB
	case common.LayoutRGBA:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("%w: %s", common.ErrUnsupportedChannels, img.Layout)
	}
	if len(img.Pixels) == 0 {
		return 0, fmt.Errorf("texture has no pixel data")
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &handle)
		return 0, fmt.Errorf("texture upload failed with GL error 0x%x", code)
	}
	return handle, nil
}

func (b *glRendererBackendImpl) BindTexture(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (b *glRendererBackendImpl) DeleteTextures(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}

// UploadMesh creates a VAO with one interleaved vertex buffer and an index buffer.
// Attribute locations and offsets follow model.Attrib* and model.Offset*.
func (b *glRendererBackendImpl) UploadMesh(g model.Geometry) (model.MeshHandle, error) {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return model.MeshHandle{}, fmt.Errorf("mesh has no geometry")
	}
	vertices := g.Flatten()

	var h model.MeshHandle
	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	gl.GenBuffers(1, &h.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &h.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(model.AttribPosition, 3, gl.FLOAT, false, model.VertexStride, model.OffsetPosition)
	gl.EnableVertexAttribArray(model.AttribPosition)
	gl.VertexAttribPointerWithOffset(model.AttribNormal, 3, gl.FLOAT, false, model.VertexStride, model.OffsetNormal)
	gl.EnableVertexAttribArray(model.AttribNormal)
	gl.VertexAttribPointerWithOffset(model.AttribTexCoord, 2, gl.FLOAT, false, model.VertexStride, model.OffsetTexCoord)
	gl.EnableVertexAttribArray(model.AttribTexCoord)

	gl.BindVertexArray(0)

	h.IndexCount = int32(len(g.Indices))
	return h, nil
}

func (b *glRendererBackendImpl) DrawMesh(h model.MeshHandle) {
	gl.BindVertexArray(h.VAO)
	gl.DrawElements(gl.TRIANGLES, h.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (b *glRendererBackendImpl) ReleaseMesh(h model.MeshHandle) {
	gl.DeleteVertexArrays(1, &h.VAO)
	gl.DeleteBuffers(1, &h.VBO)
	gl.DeleteBuffers(1, &h.EBO)
}
