package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// OKSVG renders SVG documents in-process with oksvg and rasterx.
type OKSVG struct {
	// Strict fails on SVG elements the renderer does not support instead of
	// silently skipping them.
	Strict bool
}

// NewOKSVG creates a new oksvg backend
func NewOKSVG() *OKSVG {
	return &OKSVG{}
}

func (r *OKSVG) Name() string {
	return string(TypeOKSVG)
}

// IsAvailable always returns true, oksvg is compiled in
func (r *OKSVG) IsAvailable() bool {
	return true
}

func (r *OKSVG) Rasterize(ctx context.Context, svg []byte, size image.Point) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewBackendError(r.Name(), "rasterize", err)
	}

	mode := oksvg.IgnoreErrorMode
	if r.Strict {
		mode = oksvg.StrictErrorMode
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), mode)
	if err != nil {
		return nil, NewBackendError(r.Name(), "parse", err)
	}

	w, h := IntrinsicSize(svg)

	// oksvg scales against the viewBox, documents without one fall back to
	// their width/height attributes
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		icon.ViewBox.X, icon.ViewBox.Y = 0, 0
		icon.ViewBox.W, icon.ViewBox.H = w, h
	}

	if size == (image.Point{}) {
		if err := CheckSize(r.Name(), math.Ceil(w), math.Ceil(h)); err != nil {
			return nil, err
		}
		size = image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))
	} else if err := CheckSize(r.Name(), float64(size.X), float64(size.Y)); err != nil {
		return nil, err
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, NewBackendError(r.Name(), "rasterize", fmt.Errorf("invalid target size %dx%d", size.X, size.Y))
	}

	icon.SetTarget(0, 0, float64(size.X), float64(size.Y))

	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	scanner := rasterx.NewScannerGV(size.X, size.Y, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(size.X, size.Y, scanner)
	icon.Draw(dasher, 1.0)

	return rgba, nil
}
