package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/1siamBot/variantgen/engine/pixel"
)

// SheetRow is one labelled row of a contact sheet
type SheetRow struct {
	Label  string
	Tiles  []*pixel.Grid
	Titles []string // optional caption per tile
}

// SheetOptions controls contact sheet layout
type SheetOptions struct {
	Scale      int // integer upscale per tile
	Padding    int
	LabelWidth int
	Background color.NRGBA
	Text       color.NRGBA
	Smooth     bool // Catmull-Rom instead of nearest neighbour, for painted or HD sources
}

// DefaultSheetOptions returns a dark background with 4x tiles
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Scale:      4,
		Padding:    8,
		LabelWidth: 160,
		Background: color.NRGBA{R: 32, G: 32, B: 36, A: 255},
		Text:       color.NRGBA{R: 230, G: 230, B: 230, A: 255},
	}
}

const lineHeight = 13

// ContactSheet lays rows out top to bottom with the label on the left and
// the tiles upscaled next to it
func ContactSheet(rows []SheetRow, opts SheetOptions) *image.NRGBA {
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	cellW, cellH, cols := 0, 0, 0
	hasTitles := false
	for _, r := range rows {
		if len(r.Tiles) > cols {
			cols = len(r.Tiles)
		}
		for i, t := range r.Tiles {
			if t == nil {
				continue
			}
			cellW = max(cellW, t.Width*opts.Scale)
			cellH = max(cellH, t.Height*opts.Scale)
			if i < len(r.Titles) && r.Titles[i] != "" {
				hasTitles = true
			}
		}
	}
	rowH := max(cellH, lineHeight) + opts.Padding
	if hasTitles {
		rowH += lineHeight
	}

	w := opts.LabelWidth + cols*(cellW+opts.Padding) + opts.Padding
	h := len(rows)*rowH + opts.Padding
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Text),
		Face: basicfont.Face7x13,
	}

	for ri, r := range rows {
		top := opts.Padding + ri*rowH
		d.Dot = fixed.P(opts.Padding, top+lineHeight-2)
		d.DrawString(r.Label)

		for ci, t := range r.Tiles {
			if t == nil {
				continue
			}
			x := opts.LabelWidth + ci*(cellW+opts.Padding)
			resize := Resize
			if opts.Smooth {
				resize = ResizeSmooth
			}
			scaled := resize(pixel.ImageView{Grid: t}, t.Width*opts.Scale, t.Height*opts.Scale)
			dst := image.Rect(x, top, x+scaled.Bounds().Dx(), top+scaled.Bounds().Dy())
			draw.Draw(img, dst, scaled, image.Point{}, draw.Over)

			if ci < len(r.Titles) && r.Titles[ci] != "" {
				d.Dot = fixed.P(x, top+cellH+lineHeight-2)
				d.DrawString(r.Titles[ci])
			}
		}
	}

	return img
}
