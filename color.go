package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color value. The numeric color-space work (parsing,
// interpolation, distance) is delegated to go-colorful.
type Color struct {
	R, G, B uint8
}

// NewColor constructs a Color from its channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// HexColor parses a #RRGGBB (or #RGB) string into a Color.
func HexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// HexString renders the color as uppercase #RRGGBB.
func (c Color) HexString() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String renders the color as uppercase #RRGGBB.
func (c Color) String() string {
	return c.HexString()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Lerp linearly interpolates between a and b in RGB space. t is clamped to
// [0, 1]; t=0 yields a and t=1 yields b.
func Lerp(a, b Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, bl := a.colorful().BlendRgb(b.colorful(), t).Clamped().RGB255()
	return Color{R: r, G: g, B: bl}
}

// Distance returns the RGB-space distance between the two colors, in [0, 1].
func Distance(a, b Color) float64 {
	return a.colorful().DistanceRgb(b.colorful())
}
