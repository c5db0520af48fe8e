package palette

import (
	"testing"

	"github.com/1siamBot/variantgen/engine/pixel"
	"github.com/1siamBot/variantgen/engine/tier"
)

func gridOf(w, h int, px ...pixel.Pixel) *pixel.Grid {
	g := pixel.NewGrid(w, h)
	copy(g.Pix, px)
	return g
}

func gray(v, a uint8) pixel.Pixel {
	return pixel.Pixel{R: v, G: v, B: v, A: a}
}

func sameGrid(a, b *pixel.Grid) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func near(a, b pixel.Pixel, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && a.A == b.A
}

// sample covers opaque gray, translucent gray, colored and transparent pixels
func sample() *pixel.Grid {
	return gridOf(4, 2,
		gray(255, 255), gray(53, 255), gray(0, 255), gray(128, 100),
		pixel.Pixel{R: 200, G: 40, B: 10, A: 255},
		pixel.Pixel{R: 12, G: 90, B: 200, A: 255},
		pixel.Pixel{R: 9, G: 9, B: 9, A: 0},
		pixel.Pixel{R: 250, G: 1, B: 77, A: 0},
	)
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name          string
		g             *pixel.Grid
		grayscaleOnly bool
		want          Analysis
	}{
		{
			name: "empty",
			g:    pixel.NewGrid(0, 0),
			want: Analysis{Brightest: pixel.White, Darkest: pixel.Black, MaxBrightness: -1, MinBrightness: 256},
		},
		{
			name: "all transparent",
			g:    gridOf(2, 1, gray(200, 0), gray(10, 0)),
			want: Analysis{Brightest: pixel.White, Darkest: pixel.Black, MaxBrightness: -1, MinBrightness: 256},
		},
		{
			name: "gray ramp",
			g:    gridOf(3, 1, gray(100, 255), gray(255, 255), gray(53, 255)),
			want: Analysis{Brightest: gray(255, 255), Darkest: gray(53, 255), MaxBrightness: 255, MinBrightness: 53},
		},
		{
			name:          "grayscale only skips color",
			g:             gridOf(3, 1, pixel.Pixel{R: 255, G: 255, B: 0, A: 255}, gray(90, 255), pixel.Pixel{R: 1, G: 0, B: 0, A: 255}),
			grayscaleOnly: true,
			want:          Analysis{Brightest: gray(90, 255), Darkest: gray(90, 255), MaxBrightness: 90, MinBrightness: 90},
		},
		{
			name: "color counted when allowed",
			g:    gridOf(2, 1, pixel.Pixel{R: 255, G: 255, B: 0, A: 255}, gray(90, 255)),
			want: Analysis{Brightest: pixel.Pixel{R: 255, G: 255, B: 0, A: 255}, Darkest: gray(90, 255), MaxBrightness: 170, MinBrightness: 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.g, tt.grayscaleOnly)
			if got != tt.want {
				t.Errorf("Analyze() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeTiesKeepFirst(t *testing.T) {
	// (30,30,30) and (10,20,60) share brightness 30
	first := gray(30, 255)
	second := pixel.Pixel{R: 10, G: 20, B: 60, A: 255}
	a := Analyze(gridOf(2, 1, first, second), false)
	if a.Brightest != first || a.Darkest != first {
		t.Errorf("ties resolved to %v / %v, want first pixel", a.Brightest, a.Darkest)
	}
	if !a.Found() {
		t.Error("Found() = false")
	}
	if Analyze(nil, false).Found() {
		t.Error("nil grid reported pixels")
	}
}

func TestRecolorEndToEnd(t *testing.T) {
	src := gridOf(2, 1, gray(255, 255), gray(53, 255))
	got := Recolor(src, EnderiteBright, EnderiteDark)

	want := []pixel.Pixel{
		{R: 29, G: 94, B: 83, A: 255},
		{R: 9, G: 30, B: 26, A: 255},
	}
	for i, w := range want {
		if got.Pix[i] != w {
			t.Errorf("pixel %d = %v, want %v", i, got.Pix[i], w)
		}
	}
}

func TestRecolorEndpointsAndPassThrough(t *testing.T) {
	bright := pixel.Pixel{R: 200, G: 150, B: 100, A: 255}
	dark := pixel.Pixel{R: 20, G: 10, B: 5, A: 255}
	src := sample()
	got := Recolor(src, bright, dark)

	if p := got.Pix[0]; p != bright {
		t.Errorf("white -> %v, want bright %v", p, bright)
	}
	if p := got.Pix[2]; p != dark {
		t.Errorf("black -> %v, want dark %v", p, dark)
	}
	if p := got.Pix[3]; p.A != 100 {
		t.Errorf("alpha not preserved: %v", p)
	}
	for _, i := range []int{4, 5, 6, 7} {
		if got.Pix[i] != src.Pix[i] {
			t.Errorf("pixel %d changed: %v -> %v", i, src.Pix[i], got.Pix[i])
		}
	}
}

func TestRecolorMonotonic(t *testing.T) {
	src := pixel.NewGrid(256, 1)
	for v := 0; v < 256; v++ {
		src.Pix[v] = gray(uint8(v), 255)
	}
	got := Recolor(src, EnderiteBright, EnderiteDark)
	for v := 1; v < 256; v++ {
		a, b := got.Pix[v-1], got.Pix[v]
		if b.R < a.R || b.G < a.G || b.B < a.B {
			t.Fatalf("ramp decreased at %d: %v -> %v", v, a, b)
		}
	}
}

func TestConvertToVariant(t *testing.T) {
	src := gridOf(2, 1, gray(255, 255), gray(53, 255))
	ref := gridOf(3, 1, EnderiteDark, pixel.Pixel{A: 0}, EnderiteBright)

	got, a := ConvertToVariant(src, ref)
	if a.Brightest != EnderiteBright || a.Darkest != EnderiteDark {
		t.Fatalf("reference analysis = %+v", a)
	}
	if got.Pix[0] != EnderiteBright || got.Pix[1] != (pixel.Pixel{R: 9, G: 30, B: 26, A: 255}) {
		t.Errorf("ConvertToVariant = %v", got.Pix)
	}
}

func TestTransformsDoNotMutate(t *testing.T) {
	src := sample()
	orig := src.Clone()

	outs := map[string]*pixel.Grid{
		"recolor":    Recolor(src, EnderiteBright, EnderiteDark),
		"hsl":        TransformHSL(src, 90, 0.5, 0.1),
		"brightness": AdjustBrightness(src, 1.5, 2.2),
		"fill":       FillMissingColors(src, EnderiteDark, EnderiteBright),
	}
	if !sameGrid(src, orig) {
		t.Fatal("source grid was modified")
	}
	for name, out := range outs {
		if out == src || (len(out.Pix) > 0 && &out.Pix[0] == &src.Pix[0]) {
			t.Errorf("%s aliased the source", name)
		}
		if out.Width != src.Width || out.Height != src.Height {
			t.Errorf("%s changed dimensions", name)
		}
	}
}

func TestTransformHSL(t *testing.T) {
	src := sample()

	t.Run("identity", func(t *testing.T) {
		got := TransformHSL(src, 0, 1, 0)
		for i := range src.Pix {
			if !near(got.Pix[i], src.Pix[i], 1) {
				t.Errorf("pixel %d: %v -> %v", i, src.Pix[i], got.Pix[i])
			}
		}
	})

	t.Run("full turn", func(t *testing.T) {
		a := TransformHSL(src, 360, 1, 0)
		b := TransformHSL(src, 0, 1, 0)
		if !sameGrid(a, b) {
			t.Errorf("360 degree shift differs from none")
		}
	})

	t.Run("desaturate", func(t *testing.T) {
		got := TransformHSL(src, 0, 0, 0)
		for i, p := range got.Pix {
			if src.Pix[i].A != 0 && !p.IsGrayscale() {
				t.Errorf("pixel %d not gray: %v", i, p)
			}
		}
	})

	t.Run("full lightness", func(t *testing.T) {
		got := TransformHSL(src, 45, 1, 1)
		for i, p := range got.Pix {
			if src.Pix[i].A == 0 {
				continue
			}
			if p.R != 255 || p.G != 255 || p.B != 255 || p.A != src.Pix[i].A {
				t.Errorf("pixel %d = %v, want white with alpha %d", i, p, src.Pix[i].A)
			}
		}
	})

	t.Run("hue rotation", func(t *testing.T) {
		red := gridOf(1, 1, pixel.Pixel{R: 255, A: 255})
		got := TransformHSL(red, 120, 1, 0).Pix[0]
		if !near(got, pixel.Pixel{G: 255, A: 255}, 1) {
			t.Errorf("red +120 = %v, want green", got)
		}
		got = TransformHSL(red, -120, 1, 0).Pix[0]
		if !near(got, pixel.Pixel{B: 255, A: 255}, 1) {
			t.Errorf("red -120 = %v, want blue", got)
		}
	})

	t.Run("transparent copied", func(t *testing.T) {
		got := TransformHSL(src, 200, 3, -0.5)
		if got.Pix[6] != src.Pix[6] || got.Pix[7] != src.Pix[7] {
			t.Error("transparent pixels changed")
		}
	})
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name             string
		in               uint8
		multiplier, gamm float64
		want             uint8
	}{
		{"identity", 173, 1, 1, 173},
		{"identity black", 0, 1, 1, 0},
		{"zero multiplier", 200, 0, 1, 0},
		{"clamped high", 200, 2, 1, 255},
		{"half", 200, 0.5, 1, 100},
		{"gamma two", 64, 1, 2, 128},
		{"gamma floor", 128, 1, 0, 0},
		{"negative gamma floor", 128, 1, -3, 0},
		{"white stays white", 255, 1, 0.5, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustBrightness(gridOf(1, 1, gray(tt.in, 255)), tt.multiplier, tt.gamm).Pix[0]
			if got != gray(tt.want, 255) {
				t.Errorf("AdjustBrightness(%d, %v, %v) = %v, want %d", tt.in, tt.multiplier, tt.gamm, got, tt.want)
			}
		})
	}

	src := sample()
	if !sameGrid(AdjustBrightness(src, 1, 0.01), AdjustBrightness(src, 1, 0.1)) {
		t.Error("gamma below 0.1 not treated as 0.1")
	}
	got := AdjustBrightness(src, 0, 1)
	if got.Pix[3] != gray(0, 100) {
		t.Errorf("alpha lost: %v", got.Pix[3])
	}
	if got.Pix[7] != src.Pix[7] {
		t.Error("transparent pixel changed")
	}
}

func TestFillMissingColors(t *testing.T) {
	min := pixel.Pixel{R: 10, G: 20, B: 30, A: 255}
	max := pixel.Pixel{R: 210, G: 220, B: 230, A: 255}
	src := sample()
	got := FillMissingColors(src, min, max)

	if got.Pix[2] != min {
		t.Errorf("black -> %v, want min %v", got.Pix[2], min)
	}
	if got.Pix[0] != max {
		t.Errorf("white -> %v, want max %v", got.Pix[0], max)
	}
	for _, i := range []int{4, 5, 6, 7} {
		if got.Pix[i] != src.Pix[i] {
			t.Errorf("pixel %d changed", i)
		}
	}
}

// FillMissingColors takes the t=0 color first while Recolor takes the t=1
// color first. Swapping the arguments must give identical output.
func TestFillMissingColorsEndpointOrder(t *testing.T) {
	src := sample()
	a := FillMissingColors(src, EnderiteDark, EnderiteBright)
	b := Recolor(src, EnderiteBright, EnderiteDark)
	if !sameGrid(a, b) {
		t.Errorf("FillMissingColors(dark, bright) != Recolor(bright, dark)\n%v\n%v", a.Pix, b.Pix)
	}
	c := FillMissingColors(src, EnderiteBright, EnderiteDark)
	if sameGrid(b, c) {
		t.Error("endpoint order has no effect")
	}
}

func TestTableLookup(t *testing.T) {
	tbl := DefaultTable()
	if c := tbl.Lookup(tier.Top); c.Bright != EnderiteBright || c.Dark != EnderiteDark {
		t.Errorf("Top colors = %+v", c)
	}

	partial := NewTable()
	partial.Set(tier.Base, Colors{Bright: gray(240, 255), Dark: gray(20, 255)})
	if c := partial.Lookup(tier.Mid); c.Bright != gray(240, 255) {
		t.Errorf("missing tier did not fall back to Base: %+v", c)
	}
	if partial.Has(tier.Mid) {
		t.Error("Has(Mid) = true")
	}
	if c := NewTable().Lookup(tier.Top); c.Bright != IronBright || c.Dark != IronDark {
		t.Errorf("empty table fallback = %+v", c)
	}
}

func TestColorsApply(t *testing.T) {
	src := sample()
	c := Colors{Bright: EnderiteBright, Dark: EnderiteDark}
	if !sameGrid(c.Apply(src), Recolor(src, EnderiteBright, EnderiteDark)) {
		t.Error("Apply without transform differs from Recolor")
	}

	id := IdentityTransform()
	c.Transform = &id
	if !sameGrid(c.Apply(src), Recolor(src, EnderiteBright, EnderiteDark)) {
		t.Error("identity transform changed output")
	}

	drain := IdentityTransform()
	drain.Saturation = 0
	drain.FillMissing = true
	c.Transform = &drain
	got := c.Apply(src)
	for _, i := range []int{0, 1, 2} {
		if got.Pix[i].IsGrayscale() {
			t.Errorf("pixel %d left gray after fill: %v", i, got.Pix[i])
		}
	}
}

func TestCountGrayscale(t *testing.T) {
	if n := CountGrayscale(sample()); n != 4 {
		t.Errorf("CountGrayscale = %d, want 4", n)
	}
	if n := CountGrayscale(nil); n != 0 {
		t.Errorf("nil grid = %d", n)
	}
}
