package texture

import "github.com/Carmen-Shannon/oxy-desk/common"

// Device is the GPU side of the texture registry. The renderer's OpenGL backend implements it.
type Device interface {
	// CreateTexture uploads img as a mipmapped 2D texture with repeat wrapping and linear filtering.
	//
	// Parameters:
	//   - img: tightly packed RGB or RGBA pixels
	//
	// Returns:
	//   - uint32: the GPU texture handle
	//   - error: error if the layout is unsupported or the upload fails
	CreateTexture(img *common.DecodedImage) (uint32, error)

	// BindTexture binds handle to the given texture unit.
	BindTexture(unit int, handle uint32)

	// DeleteTextures releases the given handles.
	DeleteTextures(handles []uint32)
}
