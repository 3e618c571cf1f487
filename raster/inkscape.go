package raster

import (
	"context"
	"fmt"
	"image"
	"os/exec"
	"strconv"
)

// Inkscape renders SVG documents with the inkscape CLI (1.x)
type Inkscape struct{}

// NewInkscape creates a new Inkscape backend
func NewInkscape() *Inkscape {
	return &Inkscape{}
}

func (r *Inkscape) Name() string {
	return string(TypeInkscape)
}

// IsAvailable checks if Inkscape is available in PATH
func (r *Inkscape) IsAvailable() bool {
	_, err := exec.LookPath("inkscape")
	return err == nil
}

func (r *Inkscape) Rasterize(ctx context.Context, svg []byte, size image.Point) (image.Image, error) {
	if !r.IsAvailable() {
		return nil, NewBackendError(r.Name(), "rasterize", fmt.Errorf("inkscape not found in PATH"))
	}
	if err := checkTarget(r.Name(), svg, size); err != nil {
		return nil, err
	}

	args := []string{
		"--pipe",
		"--export-type=png",
		"--export-filename=-",
		"--export-background-opacity=0",
	}
	if size.X > 0 {
		args = append(args, "--export-width="+strconv.Itoa(size.X))
	}
	if size.Y > 0 {
		args = append(args, "--export-height="+strconv.Itoa(size.Y))
	}

	out, err := runPiped(ctx, svg, "inkscape", args...)
	if err != nil {
		return nil, NewBackendError(r.Name(), "rasterize", err)
	}

	return decodePNG(r.Name(), out)
}
