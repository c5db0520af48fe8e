// Package palette recolors grayscale textures into tier variants and applies
// the tonal adjustments used to tune a tier's look.
//
// Every function takes a source grid and returns a newly allocated grid; the
// source is never modified, so callers may run transforms concurrently on a
// shared source.
package palette

import "github.com/1siamBot/variantgen/engine/pixel"

// Analysis holds the brightest and darkest eligible pixels of a grid
type Analysis struct {
	Brightest     pixel.Pixel
	Darkest       pixel.Pixel
	MaxBrightness int // -1 when no pixel was eligible
	MinBrightness int // 256 when no pixel was eligible
}

// Found reports whether at least one pixel was eligible
func (a Analysis) Found() bool {
	return a.MaxBrightness >= 0
}

// Analyze scans g in row-major order and records the first pixel reaching
// the maximum and the first reaching the minimum brightness. Transparent
// pixels are skipped, and with grayscaleOnly so are colored ones. With no
// eligible pixel the result is opaque white / opaque black.
func Analyze(g *pixel.Grid, grayscaleOnly bool) Analysis {
	a := Analysis{
		Brightest:     pixel.White,
		Darkest:       pixel.Black,
		MaxBrightness: -1,
		MinBrightness: 256,
	}
	if g == nil {
		return a
	}

	for _, p := range g.Pix {
		if p.A == 0 {
			continue
		}
		if grayscaleOnly && !p.IsGrayscale() {
			continue
		}
		b := p.Brightness()
		if b > a.MaxBrightness {
			a.MaxBrightness = b
			a.Brightest = p
		}
		if b < a.MinBrightness {
			a.MinBrightness = b
			a.Darkest = p
		}
	}

	return a
}
