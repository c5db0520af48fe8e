// Package main generates netherite and enderite variants of every iron
// texture below an asset root.
//
// Usage:
//
//	go run ./tools/generate_variants \
//	  -input resources/ \
//	  -config variantgen.json \
//	  -sheet out/review.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/1siamBot/variantgen/engine/assets"
	"github.com/1siamBot/variantgen/engine/config"
	"github.com/1siamBot/variantgen/engine/pixel"
	"github.com/1siamBot/variantgen/engine/tier"
	"github.com/1siamBot/variantgen/engine/variant"
)

func main() {
	inputPath := flag.String("input", "", "Asset root to scan")
	configPath := flag.String("config", "", "JSON config file (defaults when empty)")
	outputDir := flag.String("output", "", "Output directory (overrides config; empty writes next to sources)")
	materialsPath := flag.String("materials", "", "JSON file with extra tool/armor material records")
	manifestPath := flag.String("manifest", "", "Manifest path (default <output or input>/variants.json)")
	sheetPath := flag.String("sheet", "", "Write a contact sheet PNG of every generated variant")
	smooth := flag.Bool("smooth", false, "Upscale contact sheet tiles with Catmull-Rom instead of nearest neighbour")
	workers := flag.Int("workers", -1, "Worker count (overrides config; 0 = one per CPU)")
	useReference := flag.Bool("reference", false, "Scale stats from reference material durability")
	noRecipes := flag.Bool("no-recipes", false, "Skip smithing recipe files")
	initConfig := flag.String("init-config", "", "Write the default config to this path and exit")
	verbose := flag.Bool("verbose", false, "Log every generated file")
	flag.Parse()

	if *initConfig != "" {
		if err := config.Default().SaveJSON(*initConfig); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote default config to %s\n", *initConfig)
		return
	}

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: generate_variants -input <asset root> [-config <file>] [-output <dir>]")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = c
	}
	if *outputDir != "" {
		cfg.Texture.OutputDir = *outputDir
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *useReference {
		cfg.StatScaling.UseReferenceMaterials = true
	}
	if *noRecipes {
		cfg.Recipes.GenerateSmithing = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gen := variant.NewGenerator(cfg)
	gen.Verbose = *verbose
	if *materialsPath != "" {
		if err := gen.Materials.LoadJSON(*materialsPath); err != nil {
			log.Fatalf("materials: %v", err)
		}
		fmt.Printf("Materials: %v\n", gen.Materials.ToolNames())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Scanning %s (mid x%.2f, top x%.2f)\n", *inputPath, cfg.StatScaling.MidMultiplier, cfg.StatScaling.TopMultiplier)
	start := time.Now()
	err := gen.Run(ctx, *inputPath)
	if errors.Is(err, variant.ErrNoSources) {
		fmt.Println("Nothing to do.")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	gen.Monitor.Report(gen.Logger)
	printSummary(gen.Registry)

	manifest := *manifestPath
	if manifest == "" {
		root := cfg.Texture.OutputDir
		if root == "" {
			root = *inputPath
		}
		manifest = filepath.Join(root, "variants.json")
	}
	if err := gen.Registry.SaveManifest(manifest); err != nil {
		log.Fatalf("manifest: %v", err)
	}
	fmt.Printf("Manifest: %s\n", manifest)

	if *sheetPath != "" {
		if err := writeSheet(*sheetPath, gen.Registry, *smooth); err != nil {
			log.Fatalf("sheet: %v", err)
		}
		fmt.Printf("Contact sheet: %s\n", *sheetPath)
	}

	fmt.Printf("\nGenerated %d variants in %v\n", gen.Registry.Len(), time.Since(start).Round(time.Millisecond))
}

func printSummary(reg *variant.Registry) {
	for _, mod := range reg.Mods() {
		fmt.Printf("  %-24s %d variants\n", mod, len(reg.ForMod(mod)))
	}
	for _, t := range tier.All[1:] {
		fmt.Printf("  %-24s %d variants\n", t, len(reg.ForTier(t)))
	}
}

// writeSheet lays out one row per base item: the source, then each tier
func writeSheet(path string, reg *variant.Registry, smooth bool) error {
	var rows []assets.SheetRow
	for _, it := range reg.Items() {
		row := assets.SheetRow{Label: variant.Humanize(it.BaseItem)}
		row.Tiles = append(row.Tiles, loadOrNil(it.Source))
		row.Titles = append(row.Titles, tier.Base.String())
		for _, t := range tier.All[1:] {
			v := it.Tiers[t]
			if v == nil {
				row.Tiles = append(row.Tiles, nil)
				row.Titles = append(row.Titles, "")
				continue
			}
			row.Tiles = append(row.Tiles, loadOrNil(v.Texture))
			row.Titles = append(row.Titles, t.String())
		}
		rows = append(rows, row)
	}
	opts := assets.DefaultSheetOptions()
	opts.Smooth = smooth
	return assets.SavePNG(path, assets.ContactSheet(rows, opts))
}

func loadOrNil(path string) *pixel.Grid {
	if path == "" {
		return nil
	}
	g, err := assets.LoadGrid(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return nil
	}
	return g
}
