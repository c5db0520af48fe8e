package variant

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/variantgen/engine/assets"
	"github.com/1siamBot/variantgen/engine/config"
	"github.com/1siamBot/variantgen/engine/palette"
	"github.com/1siamBot/variantgen/engine/pixel"
	"github.com/1siamBot/variantgen/engine/tier"
)

// ErrNoSources is returned by Run when no base texture matched the scan rules
var ErrNoSources = errors.New("no base textures found")

// Source is a base-tier texture found by Scan
type Source struct {
	Path  string
	Rel   string // relative to the scan root
	ModID string
	Item  string
}

// Generator turns base textures into higher tier variants
type Generator struct {
	Config    *config.Config
	Palette   *palette.Table
	Materials *tier.Materials
	Registry  *Registry
	Monitor   *Monitor
	Logger    *log.Logger
	Verbose   bool

	scaler     *tier.Scaler
	references map[tier.Tier]*pixel.Grid
}

// NewGenerator creates a generator with the default material table, an
// empty registry and the standard logger
func NewGenerator(cfg *config.Config) *Generator {
	g := &Generator{
		Config:    cfg,
		Palette:   cfg.Palette(),
		Materials: tier.DefaultMaterials(),
		Registry:  NewRegistry(),
		Monitor:   NewMonitor(),
		Logger:    log.Default(),
	}
	g.scaler = tier.NewScaler(cfg.Multipliers())
	g.scaler.OnReference = func(_ tier.Tier, _ float64, fromReference bool) {
		g.Monitor.Reference(fromReference)
	}
	return g
}

// LoadReferences loads the reference textures named in the config. A tier
// with a reference is recolored from that texture's extremes instead of its
// configured colors.
func (g *Generator) LoadReferences() error {
	g.references = make(map[tier.Tier]*pixel.Grid)
	for t, path := range g.Config.References() {
		ref, err := assets.LoadGrid(path)
		if err != nil {
			return fmt.Errorf("reference for %s: %w", t.Material(), err)
		}
		a := palette.Analyze(ref, false)
		if !a.Found() {
			g.Logger.Printf("Warning: reference %s has no opaque pixels, using configured colors", path)
			continue
		}
		g.references[t] = ref
		g.Logger.Printf("Generator: %s reference %s (bright %v, dark %v)", t, path, a.Brightest, a.Darkest)
	}
	return nil
}

// Scan walks root and returns every texture that qualifies as a base variant
func (g *Generator) Scan(root string) ([]Source, error) {
	sc := g.Config.Scanning
	skipDir := ""
	if out := g.Config.Texture.OutputDir; out != "" {
		skipDir = filepath.Clean(out)
	}

	var sources []Source
	seen := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if !sc.Recursive || filepath.Clean(path) == skipDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !assets.IsImage(path) {
			return nil
		}

		item := Normalize(ItemName(path))
		if !IsBaseVariant(item, sc) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		mod := ModID(rel)
		if IsExcludedMod(mod, sc) {
			if g.Verbose {
				g.Logger.Printf("Generator: skipping %s (mod %s excluded)", rel, mod)
			}
			return nil
		}

		// The first file in walk order wins; a second one would write the
		// same model, recipe and registry key.
		key := ItemID(mod, item)
		if first, dup := seen[key]; dup {
			g.Logger.Printf("Warning: %s duplicates %s as %s, skipping", rel, first, key)
			return nil
		}
		seen[key] = rel

		sources = append(sources, Source{Path: path, Rel: rel, ModID: mod, Item: item})
		return nil
	})
	return sources, err
}

// Run scans root and generates every variant, fanning out over the
// configured number of workers. Per-texture failures are logged and
// counted; only scan errors and cancellation are returned.
func (g *Generator) Run(ctx context.Context, root string) error {
	if g.references == nil {
		if err := g.LoadReferences(); err != nil {
			return err
		}
	}

	stop := g.Monitor.Start("scan")
	sources, err := g.Scan(root)
	stop()
	if err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}
	if len(sources) == 0 {
		g.Logger.Printf("Warning: no base textures under %s", root)
		return ErrNoSources
	}
	g.Logger.Printf("Generator: found %d base textures under %s", len(sources), root)

	workers := g.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, src := range sources {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			vs, err := g.Process(root, src)
			if err != nil {
				g.Monitor.Failed()
				g.Logger.Printf("Warning: %s: %v", src.Rel, err)
				return nil
			}
			if g.Verbose {
				for _, v := range vs {
					g.Logger.Printf("Generator: %s -> %s", src.Rel, v.Texture)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := g.Monitor.Snapshot()
	g.Logger.Printf("Generator: %d variants from %d textures (%d total registered)", s.Variants, s.Textures, g.Registry.Len())
	return nil
}

// Process generates the Mid and Top variants of one source texture and
// registers them. A texture without grayscale pixels is skipped.
func (g *Generator) Process(root string, src Source) ([]*Variant, error) {
	stop := g.Monitor.Start("load")
	grid, err := assets.LoadGrid(src.Path)
	stop()
	if err != nil {
		return nil, err
	}

	// Animated strips are size wide and a multiple of size tall
	size := g.Config.Texture.Size
	if size > 0 && (grid.Width != size || grid.Height%size != 0) {
		g.Logger.Printf("Warning: %s is %dx%d, expected %d wide; recoloring at native size", src.Rel, grid.Width, grid.Height, size)
	}

	if palette.CountGrayscale(grid) == 0 {
		g.Monitor.Skipped()
		g.Logger.Printf("Warning: %s has no grayscale pixels, skipping", src.Rel)
		return nil, nil
	}
	if g.Verbose {
		a := palette.Analyze(grid, true)
		g.Logger.Printf("Generator: %s brightness %d..%d", src.Rel, a.MinBrightness, a.MaxBrightness)
	}
	g.Monitor.TextureProcessed()

	kind, base := BaseStats(src.Item, g.Materials)
	outRoot := g.outputRoot(root)

	var out []*Variant
	prev := src.Item
	for _, t := range tier.All[1:] {
		v, err := g.generate(outRoot, src, grid, kind, base, t, prev)
		if err != nil {
			return out, fmt.Errorf("%s: %w", t.Material(), err)
		}
		g.Registry.Register(v)
		g.Monitor.VariantGenerated()
		out = append(out, v)
		prev = v.Name
	}
	return out, nil
}

func (g *Generator) generate(outRoot string, src Source, grid *pixel.Grid, kind Kind, base tier.Stats, t tier.Tier, prev string) (*Variant, error) {
	name := VariantName(src.Item, t)
	colors := g.Palette.Lookup(t)

	stop := g.Monitor.Start("recolor")
	var img *pixel.Grid
	if ref := g.references[t]; ref != nil {
		img, _ = palette.ConvertToVariant(grid, ref)
		img = colors.ApplyTransform(img)
	} else {
		img = colors.Apply(grid)
	}
	stop()

	v := &Variant{
		ModID:     src.ModID,
		BaseItem:  src.Item,
		Name:      name,
		Tier:      t,
		Kind:      kind,
		Source:    src.Path,
		Texture:   g.texturePath(src, name),
		BaseStats: base,
		Stats:     g.scale(base, t),
	}

	stop = g.Monitor.Start("save")
	defer stop()
	if err := assets.SaveGrid(v.Texture, img); err != nil {
		return nil, err
	}
	if err := copyAnimation(src.Path, v.Texture); err != nil {
		return nil, fmt.Errorf("animation: %w", err)
	}

	v.Model = ModelPath(outRoot, src.ModID, name)
	if err := writeJSON(v.Model, NewItemModel(TextureID(src.ModID, name), kind)); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	rc := g.Config.Recipes
	if rc.GenerateSmithing {
		v.Recipe = RecipePath(outRoot, src.ModID, name)
		r := NewSmithingRecipe(rc.SmithingTemplate,
			ItemID(src.ModID, prev), rc.Additions[t.Material()], ItemID(src.ModID, name))
		if err := writeJSON(v.Recipe, r); err != nil {
			return nil, fmt.Errorf("recipe: %w", err)
		}
	}

	return v, nil
}

// scale derives tier stats, honoring the reference and per-stat toggles
func (g *Generator) scale(base tier.Stats, t tier.Tier) tier.Stats {
	ss := g.Config.StatScaling
	var s tier.Stats
	if ss.UseReferenceMaterials {
		high, low := g.Materials.References(t)
		s = g.scaler.ScaleWithReference(base, high, low, t)
	} else {
		s = g.scaler.Scale(base, t)
	}
	if !ss.EnableArmorToughness {
		s.Toughness = 0
	}
	if !ss.EnableKnockbackResistance {
		s.KnockbackResistance = 0
	}
	return s
}

func (g *Generator) outputRoot(root string) string {
	if out := g.Config.Texture.OutputDir; out != "" {
		return out
	}
	return root
}

// texturePath places the variant next to its source, or mirrors the
// source's relative directory below the output dir
func (g *Generator) texturePath(src Source, name string) string {
	file := name + ".png"
	if out := g.Config.Texture.OutputDir; out != "" {
		return filepath.Join(out, filepath.Dir(src.Rel), file)
	}
	return filepath.Join(filepath.Dir(src.Path), file)
}

// copyAnimation copies the source's .mcmeta animation file next to the
// variant texture, if there is one
func copyAnimation(srcTexture, dstTexture string) error {
	data, err := os.ReadFile(srcTexture + ".mcmeta")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dstTexture+".mcmeta", data, 0644)
}
