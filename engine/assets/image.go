// Package assets loads and writes texture images and builds review sheets.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/1siamBot/variantgen/engine/pixel"
)

// Extensions lists the file extensions LoadImage can decode
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// IsImage reports whether path has a decodable extension
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadImage decodes an image file of any registered format
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadGrid decodes an image file into a pixel grid
func LoadGrid(path string) (*pixel.Grid, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return pixel.FromImage(img), nil
}

// SavePNG encodes img as PNG, creating parent directories
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveGrid writes a grid as PNG
func SaveGrid(path string, g *pixel.Grid) error {
	return SavePNG(path, g.Image())
}

// Resize scales src to w x h with nearest-neighbor sampling (crisp for pixel art)
func Resize(src image.Image, w, h int) *image.NRGBA {
	// NearestNeighbor into an NRGBA destination only draws from
	// image.RGBA64Image sources and silently skips anything else.
	if _, ok := src.(image.RGBA64Image); !ok {
		src = toNRGBA(src)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// ResizeSmooth scales src with Catmull-Rom filtering
func ResizeSmooth(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
