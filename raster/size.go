package raster

import (
	"strconv"
	"strings"

	"github.com/rustyoz/svg"
)

// DefaultSize is the edge length used for documents that declare neither a
// viewBox nor a width and height.
const DefaultSize = 100

// IntrinsicSize returns the natural pixel size of an SVG document, preferring
// the root width/height attributes and falling back to the viewBox.
func IntrinsicSize(svgData []byte) (float64, float64) {
	var width, height, viewBox string
	if doc, err := svg.ParseSvg(string(svgData), "probe", 1.0); err == nil {
		width, height, viewBox = doc.Width, doc.Height, doc.ViewBox
	} else {
		tag := rootTag(string(svgData))
		width = attribute(tag, "width")
		height = attribute(tag, "height")
		viewBox = attribute(tag, "viewBox")
	}

	w, wOk := parseLength(width)
	h, hOk := parseLength(height)
	if wOk && hOk {
		return w, h
	}

	if vb := parseViewBox(viewBox); vb != nil {
		switch {
		case wOk:
			return w, w * vb[3] / vb[2]
		case hOk:
			return h * vb[2] / vb[3], h
		default:
			return vb[2], vb[3]
		}
	}

	return DefaultSize, DefaultSize
}

// rootTag returns the opening <svg ...> tag
func rootTag(content string) string {
	start := strings.Index(content, "<svg")
	if start == -1 {
		return ""
	}
	end := strings.Index(content[start:], ">")
	if end == -1 {
		return content[start:]
	}
	return content[start : start+end]
}

func attribute(tag, name string) string {
	for _, quote := range []string{`"`, `'`} {
		pattern := " " + name + "=" + quote
		start := strings.Index(tag, pattern)
		if start == -1 {
			continue
		}
		start += len(pattern)
		end := strings.Index(tag[start:], quote)
		if end == -1 {
			continue
		}
		return tag[start : start+end]
	}
	return ""
}

// parseLength parses an absolute length, converting units to pixels at 96 DPI
func parseLength(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasSuffix(value, "%") {
		return 0, false
	}

	scale := 1.0
	for unit, factor := range map[string]float64{
		"px": 1,
		"pt": 96.0 / 72.0,
		"pc": 16,
		"mm": 96.0 / 25.4,
		"cm": 96.0 / 2.54,
		"in": 96,
	} {
		if strings.HasSuffix(value, unit) {
			value = strings.TrimSuffix(value, unit)
			scale = factor
			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * scale, true
}

// parseViewBox returns [x, y, width, height] or nil
func parseViewBox(value string) []float64 {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(parts) != 4 {
		return nil
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil
		}
		values[i] = v
	}
	if values[2] <= 0 || values[3] <= 0 {
		return nil
	}
	return values
}
