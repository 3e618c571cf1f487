package converter

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// channels counts the channels a raster actually needs: 1 for opaque gray,
// 2 for gray with alpha, 3 for opaque color and 4 for color with alpha.
func channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}

	gray, opaque := true, true
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a != 0xffff {
				opaque = false
			}
			if r != g || g != b {
				gray = false
			}
			if !gray && !opaque {
				return 4
			}
		}
	}

	switch {
	case gray && opaque:
		return 1
	case gray:
		return 2
	case opaque:
		return 3
	}
	return 4
}

// grayLevels maps quality to the size of the gray palette
func grayLevels(quality int) int {
	levels := int(math.Ceil(256 * float64(quality) / 100))
	return max(2, min(256, levels))
}

// toGrayPalette quantizes an opaque gray raster to an indexed image
func toGrayPalette(img image.Image, quality int) *image.Paletted {
	levels := grayLevels(quality)
	step := 255 / float64(levels-1)

	palette := make(color.Palette, levels)
	for i := range palette {
		palette[i] = color.Gray{Y: uint8(math.Round(float64(i) * step))}
	}

	bounds := img.Bounds()
	paletted := image.NewPaletted(image.Rectangle{Max: bounds.Size()}, palette)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			index := math.Round(float64(g.Y) / step)
			paletted.SetColorIndex(x-bounds.Min.X, y-bounds.Min.Y, uint8(index))
		}
	}
	return paletted
}

// writePNG encodes img at maximum compression. Single channel rasters are
// written in palette mode with a palette sized by quality.
func writePNG(path string, img image.Image, quality int) (err error) {
	if channels(img) == 1 {
		img = toGrayPalette(img, quality)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return w.Flush()
}
