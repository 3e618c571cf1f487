package converter

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var colorPattern = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|#[0-9A-Fa-f]{3}|rgb\(.*\)|rgba\(.*\)|[a-zA-Z]+)$`)

// IsColor reports whether s is written in a supported color syntax: #rrggbb,
// #rgb, rgb(...), rgba(...) or a color name. It does not check that a name
// or the functional arguments are valid, ParseColor does.
func IsColor(s string) bool {
	return colorPattern.MatchString(s)
}

// ParseColor resolves a background color. "transparent" yields a zero alpha
// color.
func ParseColor(s string) (color.NRGBA, error) {
	value := strings.ToLower(strings.TrimSpace(s))

	switch {
	case value == Transparent:
		return color.NRGBA{}, nil

	case strings.HasPrefix(value, "#"):
		c, err := colorful.Hex(value)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil

	case strings.HasPrefix(value, "rgb(") || strings.HasPrefix(value, "rgba("):
		return parseFunctional(value)
	}

	named, ok := colornames.Map[value]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	return color.NRGBAModel.Convert(named).(color.NRGBA), nil
}

// parseFunctional parses rgb(r, g, b) and rgba(r, g, b, a), with comma or
// space separated arguments and an optional "/ alpha"
func parseFunctional(value string) (color.NRGBA, error) {
	open := strings.Index(value, "(")
	if !strings.HasSuffix(value, ")") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: missing closing parenthesis", value)
	}

	args := strings.FieldsFunc(value[open+1:len(value)-1], func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected 3 or 4 components, got %d", value, len(args))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseComponent(args[i], 255)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
		}
		channels[i] = uint8(math.Round(v))
	}

	alpha := 1.0
	if len(args) == 4 {
		v, err := parseComponent(args[3], 1)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
		}
		alpha = v
	}

	return color.NRGBA{
		R: channels[0],
		G: channels[1],
		B: channels[2],
		A: uint8(math.Round(alpha * 255)),
	}, nil
}

// parseComponent parses a number or percentage, clamped to [0, max]
func parseComponent(arg string, max float64) (float64, error) {
	scale := 1.0
	if strings.HasSuffix(arg, "%") {
		arg = strings.TrimSuffix(arg, "%")
		scale = max / 100
	}

	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid component %q", arg)
	}
	return math.Max(0, math.Min(max, v*scale)), nil
}
