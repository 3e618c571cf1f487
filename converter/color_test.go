package converter

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsColor(t *testing.T) {
	for _, valid := range []string{
		"#ffffff", "#FFF", "#a1B2c3", "rgb(1,2,3)", "rgba(1, 2, 3, 0.5)", "white", "RebeccaPurple",
		// syntax only, resolved later by ParseColor
		"notacolor", "rgb(oops)",
	} {
		assert.True(t, IsColor(valid), valid)
	}

	for _, invalid := range []string{
		"", "#ff", "#fffff", "#ggg", "ffffff", "rgb 1,2,3", "light-blue", "white ", "12",
	} {
		assert.False(t, IsColor(invalid), invalid)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"transparent", color.NRGBA{}},
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"#0F0", color.NRGBA{G: 0xff, A: 0xff}},
		{"white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"Navy", color.NRGBA{B: 0x80, A: 0xff}},
		{"rgb(10, 20, 30)", color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{R: 255, B: 128, A: 0xff}},
		{"rgba(10,20,30,0.5)", color.NRGBA{R: 10, G: 20, B: 30, A: 128}},
		{"rgb(10 20 30 / 25%)", color.NRGBA{R: 10, G: 20, B: 30, A: 64}},
		{"rgb(300, -4, 0)", color.NRGBA{R: 255, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"notacolor", "rgb(oops)", "rgb(1,2)", "rgba(1,2,3,4,5)", "rgb(1,2,3"} {
		_, err := ParseColor(input)
		assert.Error(t, err, input)
	}
}
