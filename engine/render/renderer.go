package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checker colors shown behind transparent texture pixels
var (
	CheckerLight = color.RGBA{70, 70, 78, 255}
	CheckerDark  = color.RGBA{50, 50, 58, 255}
)

// TextureRenderer draws textures on a zoomable flat canvas
type TextureRenderer struct {
	Camera   *Camera
	Sprites  *SpriteCache
	ShowGrid bool

	checker *ebiten.Image
}

// NewTextureRenderer creates a renderer with its own camera and sprite cache
func NewTextureRenderer(screenW, screenH int) *TextureRenderer {
	return &TextureRenderer{
		Camera:  NewCamera(screenW, screenH),
		Sprites: NewSpriteCache(),
	}
}

// checkerImage returns a cached 2x2 checker, one canvas pixel per square
func (r *TextureRenderer) checkerImage() *ebiten.Image {
	if r.checker != nil {
		return r.checker
	}
	img := ebiten.NewImage(2, 2)
	img.Set(0, 0, CheckerLight)
	img.Set(1, 1, CheckerLight)
	img.Set(1, 0, CheckerDark)
	img.Set(0, 1, CheckerDark)
	r.checker = img
	return img
}

// DrawTexture draws img with its top-left corner at canvas position (wx, wy)
// over a checker background, scaled by the camera zoom
func (r *TextureRenderer) DrawTexture(screen, img *ebiten.Image, wx, wy float64) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	sx, sy := r.Camera.WorldToScreen(wx, wy)
	zoom := r.Camera.Zoom

	// Background: tile the checker across the texture area
	bg := r.checkerImage()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x += 2 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(zoom, zoom)
			op.GeoM.Translate(float64(sx)+float64(x)*zoom, float64(sy)+float64(y)*zoom)
			screen.DrawImage(bg, op)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)

	if r.ShowGrid && zoom >= 6 {
		r.drawPixelGrid(screen, float32(sx), float32(sy), w, h, float32(zoom))
	}
}

// drawPixelGrid outlines every texture pixel
func (r *TextureRenderer) drawPixelGrid(screen *ebiten.Image, sx, sy float32, w, h int, zoom float32) {
	gridColor := color.RGBA{255, 255, 255, 30}
	for x := 0; x <= w; x++ {
		px := sx + float32(x)*zoom
		vector.StrokeLine(screen, px, sy, px, sy+float32(h)*zoom, 1, gridColor, false)
	}
	for y := 0; y <= h; y++ {
		py := sy + float32(y)*zoom
		vector.StrokeLine(screen, sx, py, sx+float32(w)*zoom, py, 1, gridColor, false)
	}
}

// DrawFrame draws a rectangle outline around a canvas region
func (r *TextureRenderer) DrawFrame(screen *ebiten.Image, wx, wy, w, h float64, clr color.Color) {
	x1, y1 := r.Camera.WorldToScreen(wx, wy)
	x2, y2 := r.Camera.WorldToScreen(wx+w, wy+h)
	vector.StrokeRect(screen, float32(x1)-2, float32(y1)-2, float32(x2-x1)+4, float32(y2-y1)+4, 2, clr, false)
}

// RowLayout places count tiles of size pixels in a row with gap pixels
// between them and returns each tile's canvas x
func RowLayout(count, size, gap int) []float64 {
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = float64(i * (size + gap))
	}
	return xs
}

// RowWidth is the canvas width of a row produced by RowLayout
func RowWidth(count, size, gap int) int {
	if count <= 0 {
		return 0
	}
	return count*size + (count-1)*gap
}
