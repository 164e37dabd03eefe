package common

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestDecodeImageFileRGBAFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128}) // top-left
	img.SetNRGBA(0, 1, color.NRGBA{G: 255, A: 255}) // bottom-left

	decoded, err := DecodeImageFile(writePNG(t, img), true)
	require.NoError(t, err)

	assert.Equal(t, LayoutRGBA, decoded.Layout)
	assert.Equal(t, 4, decoded.SourceChannels)
	assert.Equal(t, 2, decoded.Width)
	assert.Equal(t, 2, decoded.Height)
	require.Len(t, decoded.Pixels, 2*2*4)

	// First stored row is the bottom row of the source.
	assert.Equal(t, []byte{0, 255, 0, 255}, decoded.Pixels[0:4])
	assert.Equal(t, []byte{255, 0, 0, 128}, decoded.Pixels[8:12])
}

func TestDecodeImageFileOpaqueIsRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	for x := 0; x < 3; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	}

	decoded, err := DecodeImageFile(writePNG(t, img), false)
	require.NoError(t, err)

	assert.Equal(t, LayoutRGB, decoded.Layout)
	assert.Equal(t, []byte{10, 20, 30, 10, 20, 30, 10, 20, 30}, decoded.Pixels)
}

func TestDecodeImageFileGrayIsUnsupported(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))

	_, err := DecodeImageFile(writePNG(t, img), true)
	assert.ErrorIs(t, err, ErrUnsupportedChannels)
}

func TestDecodeImageFileMissing(t *testing.T) {
	_, err := DecodeImageFile(filepath.Join(t.TempDir(), "nope.png"), true)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedChannels)
}

func TestDetectChannelsPaletted(t *testing.T) {
	opaque := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}})
	assert.Equal(t, 3, DetectChannels(opaque))

	translucent := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.RGBA{R: 255, A: 255}, color.RGBA{}})
	assert.Equal(t, 4, DetectChannels(translucent))

	gray := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Gray{Y: 0}, color.Gray{Y: 255}})
	assert.Equal(t, 1, DetectChannels(gray))
}
