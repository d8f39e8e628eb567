package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mazznoer/csscolorparser"
)

// ToCSS converts a parsed color to CSS using the space-separated rgb() syntax
func ToCSS(c csscolorparser.Color) string {
	r, g, b := channel(c.R), channel(c.G), channel(c.B)

	// If alpha is 1.0, omit it
	if c.A >= 0.999 {
		return fmt.Sprintf("rgb(%d %d %d)", r, g, b)
	}

	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, formatAlpha(c.A))
}

// WithAlpha returns c with its alpha replaced by opacity (0-100)
func WithAlpha(c csscolorparser.Color, opacity float64) csscolorparser.Color {
	c.A = math.Max(0, math.Min(1, opacity/100))
	return c
}

// channel converts a 0-1 component to 0-255
func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func formatAlpha(a float64) string {
	a = math.Round(math.Max(0, math.Min(1, a))*100) / 100
	return strconv.FormatFloat(a, 'f', -1, 64)
}
