package converter

import (
	"os"
	"strings"
)

// Validate checks a request and returns a *ValidationError for the first
// rule it breaks. It has no side effects.
func Validate(req Request) error {
	if req.SVG.IsZero() {
		return validationErrorf("SVG content is required")
	}

	if strings.TrimSpace(req.OutputDir) == "" {
		return validationErrorf("output directory is required")
	}

	if req.SVG.IsBatch() {
		if req.SVG.Len() == 0 {
			return validationErrorf("at least one SVG file is required for batch processing")
		}
		if req.SVG.Len() > MaxBatchSize {
			return validationErrorf("batch processing is limited to %d files maximum", MaxBatchSize)
		}
		for i, svg := range req.SVG.Items() {
			if strings.TrimSpace(svg) == "" {
				return validationErrorf("SVG content at index %d is empty", i)
			}
			if !isSVGSource(svg) {
				return validationErrorf("invalid SVG content or file path at index %d", i)
			}
		}
	} else {
		svg := req.SVG.Items()[0]
		if strings.TrimSpace(svg) == "" {
			return validationErrorf("SVG content is required")
		}
		if !isSVGSource(svg) {
			return validationErrorf("invalid SVG content or file path")
		}
	}

	if req.Width != nil && (*req.Width <= 0 || *req.Width > MaxDimension) {
		return validationErrorf("width must be between 1 and %d pixels", MaxDimension)
	}
	if req.Height != nil && (*req.Height <= 0 || *req.Height > MaxDimension) {
		return validationErrorf("height must be between 1 and %d pixels", MaxDimension)
	}

	if req.Quality != nil && (*req.Quality < 1 || *req.Quality > 100) {
		return validationErrorf("quality must be between 1 and 100")
	}

	if req.Background != nil && *req.Background != Transparent && !IsColor(*req.Background) {
		return validationErrorf("invalid background color format")
	}

	return nil
}

// isSVGSource accepts existing paths and anything that looks like markup
func isSVGSource(svg string) bool {
	return fileExists(svg) || strings.Contains(svg, "<svg")
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
