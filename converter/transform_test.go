package converter

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitContain(t *testing.T) {
	tests := []struct {
		name          string
		content       image.Point
		width, height int
		box, inner    image.Point
	}{
		{"wide into square", image.Pt(20, 10), 40, 40, image.Pt(40, 40), image.Pt(40, 20)},
		{"tall into square", image.Pt(10, 20), 40, 40, image.Pt(40, 40), image.Pt(20, 40)},
		{"downscale", image.Pt(200, 100), 50, 50, image.Pt(50, 50), image.Pt(50, 25)},
		{"width only", image.Pt(20, 10), 100, 0, image.Pt(100, 50), image.Pt(100, 50)},
		{"height only", image.Pt(20, 10), 0, 30, image.Pt(60, 30), image.Pt(60, 30)},
		{"same aspect", image.Pt(16, 16), 64, 64, image.Pt(64, 64), image.Pt(64, 64)},
		{"never zero", image.Pt(1000, 1), 10, 10, image.Pt(10, 10), image.Pt(10, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, inner := fitContain(tt.content, tt.width, tt.height)
			assert.Equal(t, tt.box, box)
			assert.Equal(t, tt.inner, inner)
		})
	}
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestContainPadsWithBackground(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}

	out := contain(solid(40, 20, red), image.Pt(40, 40), image.Pt(40, 20), blue)

	assert.Equal(t, image.Pt(40, 40), out.Bounds().Size())
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, out.RGBAAt(20, 5), "top padding")
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, out.RGBAAt(20, 20), "content")
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, out.RGBAAt(20, 35), "bottom padding")
}

func TestContainResamples(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}

	out := contain(solid(10, 5, red), image.Pt(40, 40), image.Pt(40, 20), color.NRGBA{})

	assert.Equal(t, image.Pt(40, 40), out.Bounds().Size())
	assert.Equal(t, uint8(0), out.RGBAAt(20, 2).A, "transparent padding")
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, out.RGBAAt(20, 20))
}

func TestFlatten(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 0xff, A: 0xff})

	// background alpha is ignored when flattening
	out := flatten(img, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10})

	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, out.RGBAAt(1, 0))
}
