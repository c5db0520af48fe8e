package pixel

import (
	"image"
	"image/color"
)

// Grid is a fixed-size, row-major 2-D array of pixels
type Grid struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewGrid allocates a fully transparent grid. Negative sizes are treated as 0.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// Len returns the number of pixels
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Pix)
}

// InBounds checks if coordinates are inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the pixel at (x, y), or a zero pixel when out of bounds
func (g *Grid) At(x, y int) Pixel {
	if !g.InBounds(x, y) {
		return Pixel{}
	}
	return g.Pix[y*g.Width+x]
}

// Set writes the pixel at (x, y); out-of-bounds writes are ignored
func (g *Grid) Set(x, y int, p Pixel) {
	if !g.InBounds(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = p
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	if g == nil {
		return NewGrid(0, 0)
	}
	c := NewGrid(g.Width, g.Height)
	copy(c.Pix, g.Pix)
	return c
}

// Map returns a new grid with fn applied to every pixel. The receiver is not
// modified.
func (g *Grid) Map(fn func(Pixel) Pixel) *Grid {
	if g == nil {
		return NewGrid(0, 0)
	}
	out := NewGrid(g.Width, g.Height)
	for i, p := range g.Pix {
		out.Pix[i] = fn(p)
	}
	return out
}

// FromImage copies any image into a grid anchored at (0, 0)
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	// Fast path for the common decoded PNG layout
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.Height; y++ {
			row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < g.Width; x++ {
				o := x * 4
				g.Pix[y*g.Width+x] = Pixel{row[o], row[o+1], row[o+2], row[o+3]}
			}
		}
		return g
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Pix[y*g.Width+x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g
}

// Image converts the grid to a freshly allocated *image.NRGBA
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, p := range g.Pix {
		o := i * 4
		img.Pix[o] = p.R
		img.Pix[o+1] = p.G
		img.Pix[o+2] = p.B
		img.Pix[o+3] = p.A
	}
	return img
}

// ImageView wraps a grid as an image.Image without copying, so it can be
// handed straight to image/draw and the encoders.
type ImageView struct {
	*Grid
}

func (v ImageView) ColorModel() color.Model { return color.NRGBAModel }

func (v ImageView) Bounds() image.Rectangle { return image.Rect(0, 0, v.Width, v.Height) }

func (v ImageView) At(x, y int) color.Color { return v.Grid.At(x, y) }

// RGBA64At makes ImageView an image.RGBA64Image, which the x/image/draw
// scalers require of a source when the destination is one too.
func (v ImageView) RGBA64At(x, y int) color.RGBA64 {
	r, g, b, a := v.Grid.At(x, y).RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}
