// Package converter converts SVG documents into PNG files.
//
// A Request names one document or a batch of up to 100, given as inline
// markup or file paths, plus shared resize, quality and background options.
// The request is validated up front, then each document is rasterized,
// fitted into the requested box, flattened onto the background when one is
// given, and written as a PNG file with a unique name in the output
// directory. Items run sequentially and the first failure aborts the batch.
package converter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/svg2png/raster"
)

// Converter runs conversion requests
type Converter struct {
	rasterizer raster.Rasterizer
	reporter   Reporter
	log        logger.Logger
	progress   func(done, total int)
}

// Option configures a Converter
type Option func(*Converter)

// WithRasterizer sets the backend used to render documents (oksvg by default)
func WithRasterizer(r raster.Rasterizer) Option {
	return func(c *Converter) { c.rasterizer = r }
}

// WithReporter sets where the per-invocation record is sent. By default it
// is logged as JSON.
func WithReporter(r Reporter) Option {
	return func(c *Converter) { c.reporter = r }
}

func WithLogger(log logger.Logger) Option {
	return func(c *Converter) { c.log = log }
}

// WithProgress registers a callback invoked after each written file
func WithProgress(fn func(done, total int)) Option {
	return func(c *Converter) { c.progress = fn }
}

// New creates a converter
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.GetLogger("svg2png")
	}
	if c.rasterizer == nil {
		c.rasterizer = raster.NewOKSVG()
	}
	if c.reporter == nil {
		c.reporter = LogReporter{Log: c.log}
	}
	return c
}

// Output holds the written files, shaped like the request's svg input
type Output struct {
	Batch   bool
	Results []Result
}

// Paths returns the written files in input order
func (o Output) Paths() []string {
	paths := make([]string, len(o.Results))
	for i, result := range o.Results {
		paths[i] = result.Path
	}
	return paths
}

// BatchResult returns the results with their count
func (o Output) BatchResult() BatchResult {
	return newBatchResult(o.Results)
}

// PNG returns a single path, or a list of paths for a batch
func (o Output) PNG() any {
	if o.Batch {
		return o.Paths()
	}
	return o.Results[0].Path
}

func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"png": o.PNG()})
}

// Convert validates req and converts every document in it. Errors are
// reported and returned with ErrorPrefix, wrapping a *ValidationError,
// *ConversionError or *IntegrityError.
func (c *Converter) Convert(ctx context.Context, req Request) (*Output, error) {
	output, err := c.convert(ctx, req)
	if err != nil {
		c.log.Errorf("%s%v", ErrorPrefix, err)
		c.reporter.LogJSON(newErrorRecord(req, err))
		return nil, fmt.Errorf("%s%w", ErrorPrefix, err)
	}
	return output, nil
}

func (c *Converter) convert(ctx context.Context, req Request) (*Output, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	s := req.Options.settings()
	items := req.SVG.Items()
	results := make([]Result, 0, len(items))

	for i, src := range items {
		index := -1
		if req.SVG.IsBatch() {
			index = i
		}

		result, err := c.convertOne(ctx, src, req.OutputDir, index, s)
		if err != nil {
			return nil, err
		}
		results = append(results, result)

		if c.progress != nil {
			c.progress(i+1, len(items))
		}
	}

	if req.SVG.IsBatch() {
		c.reporter.LogJSON(newBatchRecord(items, newBatchResult(results)))
	} else {
		c.reporter.LogJSON(newSingleRecord(results[0]))
	}

	return &Output{Batch: req.SVG.IsBatch(), Results: results}, nil
}

func (c *Converter) convertOne(ctx context.Context, src, dir string, index int, s settings) (Result, error) {
	fail := func(err error) (Result, error) {
		return Result{}, &ConversionError{Index: index, Source: src, Err: err}
	}

	path, err := PlanOutput(dir, index)
	if err != nil {
		return fail(err)
	}

	data, err := readSource(src)
	if err != nil {
		return fail(err)
	}

	c.log.Debugf("rasterizing %s with %s", describeSource(src), c.rasterizer.Name())
	img, err := c.render(ctx, data, s)
	if err != nil {
		return fail(err)
	}

	if err := writePNG(path, img, s.quality); err != nil {
		return fail(err)
	}

	result, err := inspect(path, index)
	if err != nil {
		var integrityErr *IntegrityError
		if errors.As(err, &integrityErr) {
			return Result{}, err
		}
		return fail(err)
	}

	c.log.Infof("wrote %s (%s, %s)", result.Path, result.Dimensions(), result.FileSize())
	return result, nil
}

// render rasterizes, resizes and flattens one document
func (c *Converter) render(ctx context.Context, data []byte, s settings) (image.Image, error) {
	background, err := ParseColor(s.background)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if s.resize() {
		// size the box from the declared dimensions and render the vector
		// content once at the fitted size
		natural := intrinsicPixels(data)
		box, inner := fitContain(natural, s.width, s.height)
		c.log.Debugf("fitting %v into %v (content %v)", natural, box, inner)

		if img, err = c.rasterizer.Rasterize(ctx, data, inner); err != nil {
			return nil, err
		}
		img = contain(img, box, inner, background)
	} else if img, err = c.rasterizer.Rasterize(ctx, data, image.Point{}); err != nil {
		return nil, err
	}

	if !s.transparent() {
		img = flatten(img, background)
	}

	return img, nil
}

// intrinsicPixels rounds the document's natural size up to whole pixels,
// clamped so absurd declared sizes still convert to int
func intrinsicPixels(data []byte) image.Point {
	w, h := raster.IntrinsicSize(data)
	clamp := func(v float64) int {
		return int(math.Min(math.Max(math.Ceil(v), 1), math.MaxInt32))
	}
	return image.Pt(clamp(w), clamp(h))
}

// readSource returns the file contents when src is an existing path, and
// src itself otherwise
func readSource(src string) ([]byte, error) {
	if fileExists(src) {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src, err)
		}
		return data, nil
	}
	return []byte(src), nil
}
