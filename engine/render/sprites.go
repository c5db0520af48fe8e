package render

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/variantgen/engine/assets"
	"github.com/1siamBot/variantgen/engine/variant"
)

// SpriteCache holds textures loaded as ebiten images, keyed by file path
type SpriteCache struct {
	mu          sync.Mutex
	images      map[string]*ebiten.Image
	missing     map[string]bool
	placeholder *ebiten.Image
}

// NewSpriteCache creates an empty cache
func NewSpriteCache() *SpriteCache {
	return &SpriteCache{
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Get returns the image at path, loading it on first use. Files that cannot
// be loaded return a placeholder and are not retried.
func (c *SpriteCache) Get(path string) *ebiten.Image {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[path]; ok {
		return img
	}
	if path == "" || c.missing[path] {
		return c.placeholderImage()
	}

	img := loadFromFile(path)
	if img == nil {
		c.missing[path] = true
		return c.placeholderImage()
	}
	c.images[path] = img
	return img
}

// Preload loads the source and texture of every variant
func (c *SpriteCache) Preload(vs []*variant.Variant) {
	for _, v := range vs {
		if v.Source != "" {
			c.Get(v.Source)
		}
		c.Get(v.Texture)
	}
	c.mu.Lock()
	log.Printf("SpriteCache: loaded %d textures, %d missing", len(c.images), len(c.missing))
	c.mu.Unlock()
}

// Len returns the number of loaded images
func (c *SpriteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Clear disposes every loaded image so the next Get reloads from disk
func (c *SpriteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, img := range c.images {
		img.Deallocate()
	}
	c.images = make(map[string]*ebiten.Image)
	c.missing = make(map[string]bool)
}

// placeholderImage is a magenta/black checker, c.mu must be held
func (c *SpriteCache) placeholderImage() *ebiten.Image {
	if c.placeholder != nil {
		return c.placeholder
	}
	const size = 16
	img := ebiten.NewImage(size, size)
	img.Fill(color.Black)
	magenta := color.RGBA{255, 0, 255, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%2 == 0 {
				img.Set(x, y, magenta)
			}
		}
	}
	c.placeholder = img
	return img
}

func loadFromFile(path string) *ebiten.Image {
	img, err := assets.LoadImage(path)
	if err != nil {
		log.Printf("Warning: could not load sprite %s: %v", path, err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
