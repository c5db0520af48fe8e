// Package config holds the generator settings loaded from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/1siamBot/variantgen/engine/palette"
	"github.com/1siamBot/variantgen/engine/pixel"
	"github.com/1siamBot/variantgen/engine/tier"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// DefaultSmithingTemplate is the upgrade template item used in recipes
const DefaultSmithingTemplate = "variantgenerator:variant_upgrade_smithing_template"

// Color is an [r, g, b, a] quadruple
type Color [4]uint8

// Pixel converts to a pixel
func (c Color) Pixel() pixel.Pixel {
	return pixel.Pixel{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// ColorOf converts a pixel to a Color
func ColorOf(p pixel.Pixel) Color {
	return Color{p.R, p.G, p.B, p.A}
}

// StatScaling controls how tier stats are derived
type StatScaling struct {
	MidMultiplier             float64 `json:"mid_multiplier"`
	TopMultiplier             float64 `json:"top_multiplier"`
	UseReferenceMaterials     bool    `json:"use_reference_materials"`
	EnableArmorToughness      bool    `json:"enable_armor_toughness"`
	EnableKnockbackResistance bool    `json:"enable_knockback_resistance"`
}

// TierColors is the ramp and optional transform of one tier
type TierColors struct {
	Bright    Color              `json:"bright"`
	Dark      Color              `json:"dark"`
	Transform *palette.Transform `json:"transform,omitempty"`

	// Reference is an optional texture (an ingot, say) whose brightest and
	// darkest pixels replace Bright and Dark
	Reference string `json:"reference,omitempty"`
}

// Scanning selects which textures are treated as base variants
type Scanning struct {
	Patterns     []string `json:"patterns"`
	ExcludedMods []string `json:"excluded_mods"`
	ExcludeNames []string `json:"exclude_names"`
	Recursive    bool     `json:"recursive"`
}

// Texture controls output images
type Texture struct {
	Size      int    `json:"size"`
	OutputDir string `json:"output_dir"` // empty writes next to the source
}

// Recipes controls emitted recipe files
type Recipes struct {
	GenerateSmithing bool              `json:"generate_smithing"`
	SmithingTemplate string            `json:"smithing_template"`
	Additions        map[string]string `json:"additions"` // upgrade ingredient per target tier material
}

// Config is the full generator configuration
type Config struct {
	StatScaling StatScaling           `json:"stat_scaling"`
	Tiers       map[string]TierColors `json:"tiers"`
	Scanning    Scanning              `json:"scanning"`
	Texture     Texture               `json:"texture"`
	Recipes     Recipes               `json:"recipes"`
	Workers     int                   `json:"workers"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		StatScaling: StatScaling{
			MidMultiplier:        tier.MidMultiplier,
			TopMultiplier:        tier.TopMultiplier,
			EnableArmorToughness: true,
		},
		Tiers: map[string]TierColors{
			tier.Base.Material(): {Bright: ColorOf(palette.IronBright), Dark: ColorOf(palette.IronDark)},
			tier.Mid.Material():  {Bright: ColorOf(palette.NetheriteBright), Dark: ColorOf(palette.NetheriteDark)},
			tier.Top.Material():  {Bright: ColorOf(palette.EnderiteBright), Dark: ColorOf(palette.EnderiteDark)},
		},
		Scanning: Scanning{
			Patterns:     []string{"iron_", "iron"},
			ExcludedMods: []string{"minecraft", "variantgenerator"},
			ExcludeNames: []string{"iron_ore", "iron_block"},
			Recursive:    true,
		},
		Texture: Texture{Size: 16},
		Recipes: Recipes{
			GenerateSmithing: true,
			SmithingTemplate: DefaultSmithingTemplate,
			Additions: map[string]string{
				tier.Mid.Material(): "minecraft:netherite_ingot",
				tier.Top.Material(): "enderite:enderite_ingot",
			},
		},
		Workers: runtime.NumCPU(),
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	s := c.StatScaling
	if s.MidMultiplier < 1 {
		return fmt.Errorf("%w: mid_multiplier %.2f below 1", ErrInvalid, s.MidMultiplier)
	}
	if s.TopMultiplier < s.MidMultiplier {
		return fmt.Errorf("%w: top_multiplier %.2f below mid_multiplier %.2f", ErrInvalid, s.TopMultiplier, s.MidMultiplier)
	}
	if c.Texture.Size <= 0 {
		return fmt.Errorf("%w: texture size %d", ErrInvalid, c.Texture.Size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if len(c.Scanning.Patterns) == 0 {
		return fmt.Errorf("%w: no scan patterns", ErrInvalid)
	}
	for name := range c.Tiers {
		if _, err := tier.Parse(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	for _, t := range tier.All {
		if _, ok := c.Tiers[t.Material()]; !ok {
			return fmt.Errorf("%w: missing colors for tier %s", ErrInvalid, t.Material())
		}
	}
	if c.Recipes.GenerateSmithing {
		if c.Recipes.SmithingTemplate == "" {
			return fmt.Errorf("%w: empty smithing_template", ErrInvalid)
		}
		for _, t := range tier.All[1:] {
			if c.Recipes.Additions[t.Material()] == "" {
				return fmt.Errorf("%w: no upgrade addition for tier %s", ErrInvalid, t.Material())
			}
		}
	}
	return nil
}

// Multipliers returns the configured tier multipliers
func (c *Config) Multipliers() tier.Multipliers {
	return tier.Multipliers{
		Base: tier.BaseMultiplier,
		Mid:  c.StatScaling.MidMultiplier,
		Top:  c.StatScaling.TopMultiplier,
	}
}

// Palette builds the tier color table
func (c *Config) Palette() *palette.Table {
	tbl := palette.NewTable()
	for name, tc := range c.Tiers {
		t, err := tier.Parse(name)
		if err != nil {
			continue
		}
		tbl.Set(t, palette.Colors{
			Bright:    tc.Bright.Pixel(),
			Dark:      tc.Dark.Pixel(),
			Transform: tc.Transform,
		})
	}
	return tbl
}

// References returns the reference texture path of every tier that has one
func (c *Config) References() map[tier.Tier]string {
	refs := make(map[tier.Tier]string)
	for name, tc := range c.Tiers {
		t, err := tier.Parse(name)
		if err != nil || tc.Reference == "" {
			continue
		}
		refs[t] = tc.Reference
	}
	return refs
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	c := Default()
	if err := c.LoadJSON(path); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadJSON reads a JSON file into c. Fields absent from the file keep
// their current values.
func (c *Config) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// SaveJSON writes c as indented JSON
func (c *Config) SaveJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
