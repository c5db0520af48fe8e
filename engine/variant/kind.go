package variant

import (
	"fmt"
	"strings"

	"github.com/1siamBot/variantgen/engine/tier"
)

// Kind classifies an item by what its stats look like
type Kind uint8

const (
	KindOther Kind = iota
	KindTool
	KindArmor
)

var kindNames = [...]string{"other", "tool", "armor"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText encodes the kind name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown item kind %q", b)
}

// pickaxe must be checked before axe
var toolWords = []string{"sword", "pickaxe", "axe", "shovel", "hoe"}

var armorWords = []string{"helmet", "chestplate", "leggings", "boots"} // indexed by tier.Slot

// Detect classifies an item name. The slot is only meaningful for armor.
func Detect(name string) (Kind, tier.Slot) {
	lower := strings.ToLower(name)
	for i, word := range armorWords {
		if strings.Contains(lower, word) {
			return KindArmor, tier.Slot(i)
		}
	}
	for _, word := range toolWords {
		if strings.Contains(lower, word) {
			return KindTool, 0
		}
	}
	return KindOther, 0
}

// IsHandheld reports whether the item model should use item/handheld
func (k Kind) IsHandheld() bool {
	return k == KindTool
}

// BaseStats returns the base-tier stats of an item from the material table.
// Items that are neither tools nor armor get an empty record.
func BaseStats(name string, m *tier.Materials) (Kind, tier.Stats) {
	kind, slot := Detect(name)
	base := tier.Base.Material()
	switch kind {
	case KindTool:
		if t, ok := m.Tool(base); ok {
			return kind, t.Stats()
		}
	case KindArmor:
		if a, ok := m.Armor(base); ok {
			return kind, a.Stats(slot)
		}
	}
	return kind, tier.NewStats()
}
