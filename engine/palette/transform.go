package palette

import (
	"math"

	"github.com/1siamBot/variantgen/engine/pixel"
)

// minGamma keeps 1/gamma finite
const minGamma = 0.1

// TransformHSL rotates hue by hueShift degrees, multiplies saturation and
// adds lightness, clamping both into [0, 1]. Alpha is kept and transparent
// pixels are copied.
func TransformHSL(g *pixel.Grid, hueShift, saturation, lightness float64) *pixel.Grid {
	return g.Map(func(p pixel.Pixel) pixel.Pixel {
		if p.A == 0 {
			return p
		}
		h, s, l := p.ToHSL()
		h = pixel.NormalizeHue(h + hueShift)
		s = pixel.ClampUnit(s * saturation)
		l = pixel.ClampUnit(l + lightness)
		return pixel.FromHSL(h, s, l, p.A)
	})
}

// AdjustBrightness applies gamma correction and then a brightness
// multiplier to every channel of every opaque pixel. Gamma below 0.1 is
// treated as 0.1.
func AdjustBrightness(g *pixel.Grid, multiplier, gamma float64) *pixel.Grid {
	exp := 1.0 / math.Max(minGamma, gamma)

	// Only 256 possible inputs per channel
	var lut [256]uint8
	for v := range lut {
		lut[v] = gammaChannel(uint8(v), exp, multiplier)
	}

	return g.Map(func(p pixel.Pixel) pixel.Pixel {
		if p.A == 0 {
			return p
		}
		return pixel.Pixel{R: lut[p.R], G: lut[p.G], B: lut[p.B], A: p.A}
	})
}

func gammaChannel(v uint8, exp, multiplier float64) uint8 {
	n := math.Pow(float64(v)/255.0, exp)
	n = pixel.ClampUnit(n * multiplier)
	return pixel.ClampChannel(int(math.Round(n * 255)))
}

// FillMissingColors interpolates opaque grayscale pixels between min (t=0)
// and max (t=1) with t = r/255. Colored and transparent pixels are copied.
//
// NOTE: the endpoint order is the reverse of Recolor's argument order
// (Recolor takes the t=1 color first). Both are kept as they are; see
// TestFillMissingColorsEndpointOrder.
func FillMissingColors(g *pixel.Grid, min, max pixel.Pixel) *pixel.Grid {
	return g.Map(func(p pixel.Pixel) pixel.Pixel {
		if p.A == 0 || !p.IsGrayscale() {
			return p
		}
		t := float64(p.R) / 255.0
		return pixel.Pixel{
			R: lerpChannel(min.R, max.R, t),
			G: lerpChannel(min.G, max.G, t),
			B: lerpChannel(min.B, max.B, t),
			A: p.A,
		}
	})
}
