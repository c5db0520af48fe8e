// Package variant discovers base-tier textures and generates their higher
// tier variants: recolored textures, scaled stats, item models and
// smithing recipes.
package variant

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/1siamBot/variantgen/engine/config"
	"github.com/1siamBot/variantgen/engine/tier"
)

// IsBaseVariant reports whether an item name matches one of the scan
// patterns and none of the excluded names
func IsBaseVariant(name string, sc config.Scanning) bool {
	lower := strings.ToLower(name)
	matched := false
	for _, p := range sc.Patterns {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, ex := range sc.ExcludeNames {
		if ex != "" && strings.Contains(lower, strings.ToLower(ex)) {
			return false
		}
	}
	return true
}

// IsExcludedMod reports whether mod is listed in the excluded mods
func IsExcludedMod(mod string, sc config.Scanning) bool {
	for _, m := range sc.ExcludedMods {
		if strings.EqualFold(m, mod) {
			return true
		}
	}
	return false
}

// VariantName replaces the base material in name with the material of t
func VariantName(name string, t tier.Tier) string {
	return strings.ReplaceAll(name, tier.Base.Material(), t.Material())
}

// ItemName returns the file name of path without its extension
func ItemName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ModID extracts the mod namespace from a path relative to the scan root.
// Paths of the form .../assets/<mod>/... use <mod>; otherwise the first
// directory is used. Bare file names give "unknown".
func ModID(rel string) string {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for i := 0; i+1 < len(parts)-1; i++ {
		if parts[i] == "assets" {
			return parts[i+1]
		}
	}
	if len(parts) >= 2 && parts[0] != "" && parts[0] != "." {
		return parts[0]
	}
	return "unknown"
}

// Humanize converts snake_case to Title Case
func Humanize(name string) string {
	words := strings.Split(name, "_")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+strings.ToLower(w[1:]))
	}
	return strings.Join(out, " ")
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	invalid    = regexp.MustCompile(`[^a-z0-9_]`)
)

// Normalize turns a file name into an item id: lowercase, whitespace runs
// as underscores, anything outside [a-z0-9_] dropped
func Normalize(name string) string {
	s := whitespace.ReplaceAllString(strings.ToLower(name), "_")
	return invalid.ReplaceAllString(s, "")
}

// ItemID returns the namespaced id "mod:item"
func ItemID(mod, item string) string {
	return mod + ":" + item
}

// TextureID returns the model texture reference "mod:item/<item>"
func TextureID(mod, item string) string {
	return mod + ":item/" + item
}

// ModelPath returns the item model location below an output root
func ModelPath(root, mod, item string) string {
	return filepath.Join(root, "assets", mod, "models", "item", item+".json")
}

// RecipePath returns the recipe location below an output root
func RecipePath(root, mod, item string) string {
	return filepath.Join(root, "data", mod, "recipe", item+".json")
}
