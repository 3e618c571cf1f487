// Package raster renders SVG documents into in-memory images.
//
// Rendering is delegated to a Rasterizer backend: the pure Go oksvg renderer is
// always available, while rsvg-convert, Inkscape and a Playwright driven
// Chromium are used when present on the system. A Manager picks the backend to
// use for a conversion.
package raster

import (
	"context"
	"fmt"
	"image"
	"math"
)

// Rasterizer renders SVG markup into an image.
type Rasterizer interface {
	// Name returns the name of the backend
	Name() string

	// IsAvailable checks if the backend can be used on this system
	IsAvailable() bool

	// Rasterize renders svg at the given pixel size. A zero size renders the
	// document at its intrinsic size.
	Rasterize(ctx context.Context, svg []byte, size image.Point) (image.Image, error)
}

// Type names a rasterizer backend
type Type string

const (
	TypeOKSVG      Type = "oksvg"
	TypeRSVG       Type = "rsvg-convert"
	TypeInkscape   Type = "inkscape"
	TypePlaywright Type = "playwright"
)

// MaxPixels bounds the area of any rendered image (16383 x 16383)
const MaxPixels = 268402689

// CheckSize returns a BackendError when a w x h render would exceed MaxPixels
func CheckSize(backend string, w, h float64) error {
	area := w * h
	if math.IsNaN(area) || math.IsInf(area, 0) || area > MaxPixels {
		return NewBackendError(backend, "rasterize",
			fmt.Errorf("%.0fx%.0f exceeds the limit of %d pixels", w, h, MaxPixels))
	}
	return nil
}

// checkTarget bounds a render at size, or at the intrinsic size of svg when
// size is zero
func checkTarget(backend string, svg []byte, size image.Point) error {
	if size == (image.Point{}) {
		w, h := IntrinsicSize(svg)
		return CheckSize(backend, w, h)
	}
	return CheckSize(backend, float64(size.X), float64(size.Y))
}

// BackendError represents an error from a rasterizer backend
type BackendError struct {
	Backend   string
	Operation string
	Err       error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s rasterizer %s failed: %v", e.Backend, e.Operation, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new backend error
func NewBackendError(backend, operation string, err error) error {
	return &BackendError{
		Backend:   backend,
		Operation: operation,
		Err:       err,
	}
}
