package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/phong/pkg/math3d"
)

// MaxColourValue is the largest channel value written to PPM output.
const MaxColourValue = 255

// Colour is an RGB triple. Channels are nominally in [0, 1] but are never
// clamped by arithmetic.
type Colour struct {
	R, G, B float64
}

// NewColour creates a Colour.
func NewColour(r, g, b float64) Colour {
	return Colour{r, g, b}
}

// Colours for convenience
var (
	Black = Colour{0, 0, 0}
	White = Colour{1, 1, 1}
)

// Add returns the component-wise sum.
func (c Colour) Add(o Colour) Colour {
	return Colour{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the component-wise difference.
func (c Colour) Sub(o Colour) Colour {
	return Colour{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the component-wise (Hadamard) product.
func (c Colour) Mul(o Colour) Colour {
	return Colour{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns the colour multiplied by a scalar.
func (c Colour) Scale(s float64) Colour {
	return Colour{c.R * s, c.G * s, c.B * s}
}

// ApproxEqual reports whether all channels differ by less than math3d.Epsilon.
func (c Colour) ApproxEqual(o Colour) bool {
	return math.Abs(c.R-o.R) < math3d.Epsilon &&
		math.Abs(c.G-o.G) < math3d.Epsilon &&
		math.Abs(c.B-o.B) < math3d.Epsilon
}

// RGBString encodes the colour as "r g b" with each channel scaled by 255 and
// truncated toward zero. Out-of-range channels produce out-of-range integers.
func (c Colour) RGBString() string {
	return fmt.Sprintf("%d %d %d", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(v * MaxColourValue)
}

// RGBA converts to an 8-bit colour, clamping each channel to [0, 1].
func (c Colour) RGBA() color.RGBA {
	return color.RGBA{clamp8(c.R), clamp8(c.G), clamp8(c.B), 255}
}

func clamp8(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return fmt.Sprintf("Colour(%g, %g, %g)", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "#rgb" (the leading '#' is optional).
func ParseHex(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Colour{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Colour{c.R, c.G, c.B}, nil
}
