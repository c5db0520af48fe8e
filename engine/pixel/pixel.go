package pixel

import (
	"fmt"
	"image/color"
)

// Pixel is a non-premultiplied 8-bit RGBA color
type Pixel struct {
	R, G, B, A uint8
}

// Predefined endpoints used as analysis defaults
var (
	White = Pixel{255, 255, 255, 255}
	Black = Pixel{0, 0, 0, 255}
)

// IsGrayscale reports whether red, green and blue are equal
func (p Pixel) IsGrayscale() bool {
	return p.R == p.G && p.G == p.B
}

// Brightness is the truncated integer average of R, G and B
func (p Pixel) Brightness() int {
	return (int(p.R) + int(p.G) + int(p.B)) / 3
}

// Transparent reports whether the pixel has zero alpha
func (p Pixel) Transparent() bool {
	return p.A == 0
}

// Pack returns the pixel as 0xAARRGGBB
func (p Pixel) Pack() uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Unpack decodes a 0xAARRGGBB value
func Unpack(argb uint32) Pixel {
	return Pixel{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// RGBA implements color.Color. Like color.NRGBA the stored channels are not
// premultiplied, so they are scaled by alpha here.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// NRGBA converts to the standard library color type
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// FromColor converts any color.Color into a Pixel
func FromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.R, p.G, p.B, p.A)
}

// ClampChannel clamps an integer channel value into [0, 255]
func ClampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ClampUnit clamps v into [0, 1]. NaN maps to 0.
func ClampUnit(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
