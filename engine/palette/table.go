package palette

import (
	"encoding/json"
	"sync"

	"github.com/1siamBot/variantgen/engine/pixel"
	"github.com/1siamBot/variantgen/engine/tier"
)

// Transform is an optional tonal pass applied after recoloring
type Transform struct {
	HueShift    float64 `json:"hue_shift"`
	Saturation  float64 `json:"saturation"`
	Lightness   float64 `json:"lightness"`
	Brightness  float64 `json:"brightness"`
	Gamma       float64 `json:"gamma"`
	FillMissing bool    `json:"fill_missing"`
}

// IdentityTransform leaves every pixel unchanged
func IdentityTransform() Transform {
	return Transform{Saturation: 1, Brightness: 1, Gamma: 1}
}

// UnmarshalJSON starts from IdentityTransform so omitted fields are no-ops
func (t *Transform) UnmarshalJSON(data []byte) error {
	type plain Transform
	v := plain(IdentityTransform())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Transform(v)
	return nil
}

func (t Transform) hslIsIdentity() bool {
	return t.HueShift == 0 && t.Saturation == 1 && t.Lightness == 0
}

func (t Transform) brightnessIsIdentity() bool {
	return t.Brightness == 1 && t.Gamma == 1
}

// Colors is the bright/dark endpoint pair of one tier
type Colors struct {
	Bright    pixel.Pixel
	Dark      pixel.Pixel
	Transform *Transform
}

// Apply recolors src onto the tier ramp and runs the optional transform
func (c Colors) Apply(src *pixel.Grid) *pixel.Grid {
	return c.ApplyTransform(Recolor(src, c.Bright, c.Dark))
}

// ApplyTransform runs the optional transform on an already recolored grid:
// HSL first, then gamma/brightness. With FillMissing set, pixels the
// transform left gray are mapped back onto the ramp.
func (c Colors) ApplyTransform(g *pixel.Grid) *pixel.Grid {
	if c.Transform == nil {
		return g
	}

	out := g
	tr := *c.Transform
	if !tr.hslIsIdentity() {
		out = TransformHSL(out, tr.HueShift, tr.Saturation, tr.Lightness)
	}
	if !tr.brightnessIsIdentity() {
		out = AdjustBrightness(out, tr.Brightness, tr.Gamma)
	}
	if tr.FillMissing {
		out = FillMissingColors(out, c.Dark, c.Bright)
	}
	return out
}

// Default tier endpoints
var (
	IronBright      = pixel.Pixel{R: 255, G: 255, B: 255, A: 255}
	IronDark        = pixel.Pixel{R: 53, G: 53, B: 53, A: 255}
	NetheriteBright = pixel.Pixel{R: 100, G: 100, B: 120, A: 255}
	NetheriteDark   = pixel.Pixel{R: 40, G: 40, B: 50, A: 255}
	EnderiteBright  = pixel.Pixel{R: 29, G: 94, B: 83, A: 255}
	EnderiteDark    = pixel.Pixel{R: 4, G: 14, B: 12, A: 255}
)

// Table maps each tier to its colors. It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	colors map[tier.Tier]Colors
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{colors: make(map[tier.Tier]Colors)}
}

// DefaultTable creates a table with the iron, netherite and enderite colors
func DefaultTable() *Table {
	t := NewTable()
	t.Set(tier.Base, Colors{Bright: IronBright, Dark: IronDark})
	t.Set(tier.Mid, Colors{Bright: NetheriteBright, Dark: NetheriteDark})
	t.Set(tier.Top, Colors{Bright: EnderiteBright, Dark: EnderiteDark})
	return t
}

// Set stores the colors of a tier
func (t *Table) Set(tr tier.Tier, c Colors) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.colors[tr] = c
}

// Lookup returns the colors of tr, falling back to Base and then to the
// iron defaults when absent
func (t *Table) Lookup(tr tier.Tier) Colors {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if c, ok := t.colors[tr]; ok {
		return c
	}
	if c, ok := t.colors[tier.Base]; ok {
		return c
	}
	return Colors{Bright: IronBright, Dark: IronDark}
}

// Has reports whether tr has its own entry
func (t *Table) Has(tr tier.Tier) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.colors[tr]
	return ok
}
