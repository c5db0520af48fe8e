package tier

import "fmt"

// AttackSpeedBase is carried through scaling unchanged
const AttackSpeedBase = -2.4

// Stats is the statistic record of one item. A zero field means the stat
// does not apply to that item type and is never scaled.
type Stats struct {
	MiningSpeed         float64 `json:"mining_speed"`
	AttackDamage        float64 `json:"attack_damage"`
	AttackSpeed         float64 `json:"attack_speed"` // fixed, not scaled
	Durability          int     `json:"durability"`
	Armor               int     `json:"armor"`
	Toughness           float64 `json:"toughness"`
	KnockbackResistance float64 `json:"knockback_resistance"`
	Enchantability      int     `json:"enchantability"`
}

// NewStats returns an empty record with the fixed attack speed set
func NewStats() Stats {
	return Stats{AttackSpeed: AttackSpeedBase}
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats{speed=%.2f, damage=%.2f, durability=%d, armor=%d, toughness=%.2f, knbk=%.2f, ench=%d}",
		s.MiningSpeed, s.AttackDamage, s.Durability, s.Armor, s.Toughness, s.KnockbackResistance, s.Enchantability)
}

// ToolStats is a material-level tool record used as a scaling reference
type ToolStats struct {
	Name           string  `json:"name"`
	Durability     int     `json:"durability"`
	MiningSpeed    float64 `json:"mining_speed"`
	AttackDamage   float64 `json:"attack_damage"`
	Enchantability int     `json:"enchantability"`
}

func (t ToolStats) String() string {
	return fmt.Sprintf("ToolStats{name=%s, durability=%d, speed=%.1f, damage=%.1f}",
		t.Name, t.Durability, t.MiningSpeed, t.AttackDamage)
}

// Stats converts a tool material into an item record
func (t ToolStats) Stats() Stats {
	s := NewStats()
	s.Durability = t.Durability
	s.MiningSpeed = t.MiningSpeed
	s.AttackDamage = t.AttackDamage
	s.Enchantability = t.Enchantability
	return s
}

// Slot is an armor equipment slot
type Slot uint8

const (
	SlotHelmet Slot = iota
	SlotChestplate
	SlotLeggings
	SlotBoots
)

var slotNames = [...]string{"helmet", "chestplate", "leggings", "boots"}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return fmt.Sprintf("Slot(%d)", uint8(s))
}

// ArmorStats is a material-level armor record with protection per slot
type ArmorStats struct {
	Name                string  `json:"name"`
	Durability          int     `json:"durability"`
	Enchantability      int     `json:"enchantability"`
	Toughness           float64 `json:"toughness"`
	KnockbackResistance float64 `json:"knockback_resistance"`
	Protection          [4]int  `json:"protection"` // indexed by Slot
}

func (a ArmorStats) String() string {
	return fmt.Sprintf("ArmorStats{name=%s, durability=%d, toughness=%.1f, knbk=%.1f}",
		a.Name, a.Durability, a.Toughness, a.KnockbackResistance)
}

// Stats converts one armor piece into an item record
func (a ArmorStats) Stats(slot Slot) Stats {
	s := NewStats()
	s.Durability = a.Durability
	s.Enchantability = a.Enchantability
	s.Toughness = a.Toughness
	s.KnockbackResistance = a.KnockbackResistance
	if int(slot) < len(a.Protection) {
		s.Armor = a.Protection[slot]
	}
	return s
}
