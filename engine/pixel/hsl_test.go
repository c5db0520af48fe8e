package pixel

import (
	"math"
	"testing"
)

func TestHSLRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 5
	}
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				h, s, l := RGBToHSL(uint8(r), uint8(g), uint8(b))
				br, bg, bb := HSLToRGB(h, s, l)
				if absDiff(br, uint8(r)) > 1 || absDiff(bg, uint8(g)) > 1 || absDiff(bb, uint8(b)) > 1 {
					t.Fatalf("round trip (%d,%d,%d) -> (%.4f,%.4f,%.4f) -> (%d,%d,%d)",
						r, g, b, h, s, l, br, bg, bb)
				}
			}
		}
	}
}

func TestRGBToHSLKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, l float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 1},
		{"gray", 128, 128, 128, 0, 0, 128.0 / 255},
		{"red", 255, 0, 0, 0, 1, 0.5},
		{"green", 0, 255, 0, 120, 1, 0.5},
		{"blue", 0, 0, 255, 240, 1, 0.5},
		{"magenta", 255, 0, 255, 300, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			if !near(h, tt.h) || !near(s, tt.s) || !near(l, tt.l) {
				t.Errorf("RGBToHSL(%d,%d,%d) = (%f,%f,%f), want (%f,%f,%f)",
					tt.r, tt.g, tt.b, h, s, l, tt.h, tt.s, tt.l)
			}
			if h < 0 || h >= 360 {
				t.Errorf("hue %f outside [0,360)", h)
			}
		})
	}
}

func TestHSLToRGBClampsInputs(t *testing.T) {
	// Out-of-range saturation and lightness are clamped, not rejected
	r, g, b := HSLToRGB(0, 2, 0.5)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("saturation 2 = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
	r, g, b = HSLToRGB(120, 1, -0.5)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("lightness -0.5 = (%d,%d,%d), want black", r, g, b)
	}
	r, g, b = HSLToRGB(-240, 1, 0.5) // same as 120
	if r != 0 || g != 255 || b != 0 {
		t.Errorf("hue -240 = (%d,%d,%d), want (0,255,0)", r, g, b)
	}
	r, g, b = HSLToRGB(720, 1, 0.5) // same as 0
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("hue 720 = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {359.5, 359.5}, {360, 0}, {-30, 330}, {725, 5}, {math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := NormalizeHue(tt.in); !near(got, tt.want) {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
