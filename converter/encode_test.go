package converter

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

func TestChannels(t *testing.T) {
	assert.Equal(t, 1, channels(image.NewGray(image.Rect(0, 0, 2, 2))))
	assert.Equal(t, 1, channels(solid(2, 2, color.Gray{Y: 0x80})))
	assert.Equal(t, 2, channels(solid(2, 2, color.NRGBA{R: 10, G: 10, B: 10, A: 10})))
	assert.Equal(t, 3, channels(solid(2, 2, color.NRGBA{R: 0xff, A: 0xff})))
	assert.Equal(t, 4, channels(solid(2, 2, color.NRGBA{R: 0xff, A: 0x80})))
}

func TestGrayLevels(t *testing.T) {
	assert.Equal(t, 256, grayLevels(100))
	assert.Equal(t, 231, grayLevels(90))
	assert.Equal(t, 3, grayLevels(1))
}

func TestWritePNGPaletteForGray(t *testing.T) {
	img := solid(4, 4, color.White)
	img.Set(0, 0, color.Black)
	path := filepath.Join(t.TempDir(), "gray.png")

	require.NoError(t, writePNG(path, img, 100))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)

	paletted, ok := decoded.(*image.Paletted)
	require.True(t, ok, "expected paletted output, got %T", decoded)
	assert.Equal(t, color.Gray{Y: 0}, color.GrayModel.Convert(paletted.At(0, 0)))
	assert.Equal(t, color.Gray{Y: 0xff}, color.GrayModel.Convert(paletted.At(1, 1)))
}

func TestWritePNGKeepsAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	path := filepath.Join(t.TempDir(), "alpha.png")

	require.NoError(t, writePNG(path, img, 90))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)

	_, _, _, a := decoded.At(1, 0).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestWritePNGFailsOnMissingDir(t *testing.T) {
	err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), solid(1, 1, color.White), 90)
	assert.Error(t, err)
}
