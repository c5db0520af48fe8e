package variant

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/1siamBot/variantgen/engine/tier"
)

// Variant describes one generated item
type Variant struct {
	ModID     string     `json:"mod_id"`
	BaseItem  string     `json:"base_item"`
	Name      string     `json:"name"`
	Tier      tier.Tier  `json:"tier"`
	Kind      Kind       `json:"kind"`
	Source    string     `json:"source,omitempty"`
	Texture   string     `json:"texture"`
	Model     string     `json:"model,omitempty"`
	Recipe    string     `json:"recipe,omitempty"`
	BaseStats tier.Stats `json:"base_stats"`
	Stats     tier.Stats `json:"stats"`
}

// Key returns "mod:item:tier"
func (v *Variant) Key() string {
	return Key(v.ModID, v.BaseItem, v.Tier)
}

// DisplayName is the humanized variant name
func (v *Variant) DisplayName() string {
	return Humanize(v.Name)
}

func (v *Variant) String() string {
	return fmt.Sprintf("Variant{%s, tier=%s, texture=%s}", v.Key(), v.Tier, v.Texture)
}

// Key builds a registry key
func Key(mod, item string, t tier.Tier) string {
	return mod + ":" + item + ":" + t.Material()
}

// Registry holds generated variants keyed by mod, base item and tier.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]*Variant
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]*Variant)}
}

// Register stores v, replacing any variant with the same key
func (r *Registry) Register(v *Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[v.Key()] = v
}

// Get looks up a variant
func (r *Registry) Get(mod, item string, t tier.Tier) (*Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.variants[Key(mod, item, t)]
	return v, ok
}

// ForMod returns the variants of one mod, sorted by key
func (r *Registry) ForMod(mod string) []*Variant {
	return r.filter(func(v *Variant) bool { return v.ModID == mod })
}

// ForTier returns the variants of one tier, sorted by key
func (r *Registry) ForTier(t tier.Tier) []*Variant {
	return r.filter(func(v *Variant) bool { return v.Tier == t })
}

// All returns every variant sorted by key
func (r *Registry) All() []*Variant {
	return r.filter(func(*Variant) bool { return true })
}

// Mods returns the sorted distinct mod ids
func (r *Registry) Mods() []string {
	r.mu.RLock()
	seen := make(map[string]bool)
	for _, v := range r.variants {
		seen[v.ModID] = true
	}
	r.mu.RUnlock()

	mods := make([]string, 0, len(seen))
	for m := range seen {
		mods = append(mods, m)
	}
	sort.Strings(mods)
	return mods
}

func (r *Registry) filter(keep func(*Variant) bool) []*Variant {
	r.mu.RLock()
	out := make([]*Variant, 0, len(r.variants))
	for _, v := range r.variants {
		if keep(v) {
			out = append(out, v)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ModID != out[j].ModID {
			return out[i].ModID < out[j].ModID
		}
		if out[i].BaseItem != out[j].BaseItem {
			return out[i].BaseItem < out[j].BaseItem
		}
		return out[i].Tier < out[j].Tier
	})
	return out
}

// Item groups the variants generated from one base texture
type Item struct {
	ModID     string
	BaseItem  string
	Source    string
	Kind      Kind
	BaseStats tier.Stats
	Tiers     map[tier.Tier]*Variant
}

// Items groups every variant by mod and base item, sorted
func (r *Registry) Items() []*Item {
	var items []*Item
	var cur *Item
	for _, v := range r.All() {
		if cur == nil || cur.ModID != v.ModID || cur.BaseItem != v.BaseItem {
			cur = &Item{
				ModID:     v.ModID,
				BaseItem:  v.BaseItem,
				Source:    v.Source,
				Kind:      v.Kind,
				BaseStats: v.BaseStats,
				Tiers:     make(map[tier.Tier]*Variant),
			}
			items = append(items, cur)
		}
		cur.Tiers[v.Tier] = v
	}
	return items
}

// Len returns the number of variants
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.variants)
}

// Clear removes every variant
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants = make(map[string]*Variant)
}

type manifest struct {
	Variants []*Variant `json:"variants"`
}

// SaveManifest writes every variant as indented JSON
func (r *Registry) SaveManifest(path string) error {
	data, err := json.MarshalIndent(manifest{Variants: r.All()}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadManifest registers every variant found in a manifest file
func (r *Registry) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	for _, v := range m.Variants {
		if v != nil {
			r.Register(v)
		}
	}
	return nil
}
