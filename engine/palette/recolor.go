package palette

import "github.com/1siamBot/variantgen/engine/pixel"

// Recolor maps every opaque grayscale pixel onto the line from dark to
// bright using t = r/255, so a white source pixel becomes bright and a black
// one becomes dark. Channels truncate toward zero and alpha is kept.
// Transparent and colored pixels are copied unchanged.
func Recolor(g *pixel.Grid, bright, dark pixel.Pixel) *pixel.Grid {
	return g.Map(func(p pixel.Pixel) pixel.Pixel {
		if p.A == 0 || !p.IsGrayscale() {
			return p
		}
		t := float64(p.R) / 255.0
		return pixel.Pixel{
			R: lerpChannel(dark.R, bright.R, t),
			G: lerpChannel(dark.G, bright.G, t),
			B: lerpChannel(dark.B, bright.B, t),
			A: p.A,
		}
	})
}

// ConvertToVariant recolors source with the brightest and darkest colors
// found anywhere in reference
func ConvertToVariant(source, reference *pixel.Grid) (*pixel.Grid, Analysis) {
	ref := Analyze(reference, false)
	return Recolor(source, ref.Brightest, ref.Darkest), ref
}

// lerpChannel returns from + t*(to-from), truncated toward zero
func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from) + t*(float64(to)-float64(from))
	return pixel.ClampChannel(int(v))
}

// CountGrayscale returns how many opaque grayscale pixels a recolor would touch
func CountGrayscale(g *pixel.Grid) int {
	if g == nil {
		return 0
	}
	n := 0
	for _, p := range g.Pix {
		if p.A != 0 && p.IsGrayscale() {
			n++
		}
	}
	return n
}
