package converter

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// fitContain returns the output box for a resize and the size of the content
// scaled to fit inside it with its aspect ratio preserved. A zero width or
// height follows the content's aspect ratio.
func fitContain(content image.Point, width, height int) (box, inner image.Point) {
	sw, sh := float64(content.X), float64(content.Y)
	if sw <= 0 || sh <= 0 {
		sw, sh = 1, 1
	}

	var scale float64
	switch {
	case width > 0 && height > 0:
		scale = math.Min(float64(width)/sw, float64(height)/sh)
		box = image.Pt(width, height)
	case width > 0:
		scale = float64(width) / sw
		box = image.Pt(width, atLeastOne(sh*scale))
	default:
		scale = float64(height) / sh
		box = image.Pt(atLeastOne(sw*scale), height)
	}

	inner = image.Pt(
		min(box.X, atLeastOne(sw*scale)),
		min(box.Y, atLeastOne(sh*scale)),
	)
	return box, inner
}

func atLeastOne(v float64) int {
	return max(1, int(math.Round(v)))
}

// contain centers img in a box filled with pad, resampling it to inner first
// when the rasterizer did not render it at that size
func contain(img image.Image, box, inner image.Point, pad color.Color) *image.RGBA {
	if img.Bounds().Size() != inner {
		scaled := image.NewRGBA(image.Rectangle{Max: inner})
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	canvas := image.NewRGBA(image.Rectangle{Max: box})
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(pad), image.Point{}, draw.Src)

	offset := box.Sub(inner).Div(2)
	target := image.Rectangle{Min: offset, Max: offset.Add(inner)}
	draw.Draw(canvas, target, img, img.Bounds().Min, draw.Src)

	return canvas
}

// flatten composites img over an opaque background, removing the alpha channel
func flatten(img image.Image, background color.NRGBA) *image.RGBA {
	background.A = 0xff

	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rectangle{Max: bounds.Size()})
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)

	return canvas
}
