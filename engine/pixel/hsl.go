package pixel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSL converts 8-bit RGB to hue in [0, 360) and saturation and
// lightness in [0, 1]. Achromatic colors have hue and saturation 0.
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	c := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	h, s, l = c.Hsl()
	if h >= 360 {
		h -= 360
	}
	return h, s, l
}

// HSLToRGB is the inverse of RGBToHSL. Hue is wrapped into [0, 360),
// saturation and lightness are clamped into [0, 1] and each channel is
// rounded to the nearest integer.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	c := colorful.Hsl(NormalizeHue(h), ClampUnit(s), ClampUnit(l))
	return unitToChannel(c.R), unitToChannel(c.G), unitToChannel(c.B)
}

// NormalizeHue wraps any hue in degrees into [0, 360)
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// unitToChannel scales a [0, 1] value to [0, 255] with round-to-nearest
func unitToChannel(v float64) uint8 {
	return uint8(math.Round(ClampUnit(v) * 255))
}

// ToHSL returns the pixel's hue, saturation and lightness
func (p Pixel) ToHSL() (h, s, l float64) {
	return RGBToHSL(p.R, p.G, p.B)
}

// FromHSL builds a pixel from HSL components and an alpha value
func FromHSL(h, s, l float64, a uint8) Pixel {
	r, g, b := HSLToRGB(h, s, l)
	return Pixel{R: r, G: g, B: b, A: a}
}
