// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedChannels is returned when a decoded image is neither 3-channel RGB nor 4-channel RGBA.
var ErrUnsupportedChannels = errors.New("unsupported image channel count")

// ChannelLayout describes how texel components are packed in DecodedImage.Pixels.
type ChannelLayout int

const (
	// LayoutRGB packs three bytes per texel (red, green, blue).
	LayoutRGB ChannelLayout = iota
	// LayoutRGBA packs four bytes per texel (red, green, blue, alpha), alpha not premultiplied.
	LayoutRGBA
)

// String returns the layout name.
func (l ChannelLayout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ChannelLayout(%d)", int(l))
	}
}

// Channels returns the number of bytes per texel for the layout.
func (l ChannelLayout) Channels() int {
	if l == LayoutRGBA {
		return 4
	}
	return 3
}

// DecodedImage holds tightly packed pixel data ready for GPU upload.
// Rows are stored bottom-up when the image was decoded with flipping enabled, which matches the
// OpenGL convention of V = 0 at the bottom edge.
type DecodedImage struct {
	// Pixels is the packed texel data, Width*Height*Layout.Channels() bytes long.
	Pixels []byte
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// Layout is the channel layout of Pixels.
	Layout ChannelLayout
	// SourceChannels is the channel count detected in the source file.
	SourceChannels int
}

// DetectChannels reports how many color channels the source image carries, based on the concrete
// type produced by the decoder. Grayscale images report 1, opaque color images 3, and color images
// with an alpha channel 4.
//
// Parameters:
//   - img: the decoded image
//
// Returns:
//   - int: the detected channel count
func DetectChannels(img image.Image) int {
	switch src := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NYCbCrA, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.RGBA:
		if src.Opaque() {
			return 3
		}
		return 4
	case *image.RGBA64:
		if src.Opaque() {
			return 3
		}
		return 4
	case *image.Paletted:
		if palettedHasAlpha(src.Palette) {
			return 4
		}
		if palettedIsGray(src.Palette) {
			return 1
		}
		return 3
	default:
		if img.ColorModel() == color.GrayModel || img.ColorModel() == color.Gray16Model {
			return 1
		}
		return 4
	}
}

// palettedHasAlpha reports whether any palette entry is not fully opaque.
func palettedHasAlpha(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// palettedIsGray reports whether every palette entry has equal red, green and blue components.
func palettedIsGray(p color.Palette) bool {
	if len(p) == 0 {
		return false
	}
	for _, c := range p {
		r, g, b, _ := c.RGBA()
		if r != g || g != b {
			return false
		}
	}
	return true
}

// PackImage converts a decoded image into tightly packed RGB or RGBA bytes.
// Only 3-channel and 4-channel sources are accepted; anything else returns ErrUnsupportedChannels.
//
// Parameters:
//   - img: the decoded image
//   - flipVertically: when true, the first row of Pixels is the bottom row of the image
//
// Returns:
//   - *DecodedImage: the packed image
//   - error: ErrUnsupportedChannels (wrapped) for unsupported layouts
func PackImage(img image.Image, flipVertically bool) (*DecodedImage, error) {
	channels := DetectChannels(img)
	var layout ChannelLayout
	switch channels {
	case 3:
		layout = LayoutRGB
	case 4:
		layout = LayoutRGBA
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	stride := width * layout.Channels()
	pixels := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		dstY := y
		if flipVertically {
			dstY = height - 1 - y
		}
		srcRow := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		dstRow := pixels[dstY*stride : (dstY+1)*stride]
		if layout == LayoutRGBA {
			copy(dstRow, srcRow)
			continue
		}
		for x := 0; x < width; x++ {
			dstRow[x*3+0] = srcRow[x*4+0]
			dstRow[x*3+1] = srcRow[x*4+1]
			dstRow[x*3+2] = srcRow[x*4+2]
		}
	}

	return &DecodedImage{
		Pixels:         pixels,
		Width:          width,
		Height:         height,
		Layout:         layout,
		SourceChannels: channels,
	}, nil
}

// DecodeImageFile reads and decodes an image file into packed pixel data.
// Supports PNG, JPEG, BMP, TIFF and WebP.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: the image file path
//   - flipVertically: when true, rows are stored bottom-up
//
// Returns:
//   - *DecodedImage: the packed image
//   - error: error if the file cannot be opened or decoded, or has an unsupported channel count
func DecodeImageFile(path string, flipVertically bool) (*DecodedImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
	}

	decoded, err := PackImage(img, flipVertically)
	if err != nil {
		return nil, fmt.Errorf("image file %s: %w", path, err)
	}
	return decoded, nil
}
