package tier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func toolBase() Stats {
	s := NewStats()
	s.MiningSpeed = 6
	s.AttackDamage = 6
	s.Durability = 250
	s.Enchantability = 14
	return s
}

func TestScaleTopDurability(t *testing.T) {
	base := NewStats()
	base.Durability = 250
	if got := Scale(base, Top).Durability; got != 375 {
		t.Errorf("Top durability = %d, want 375", got)
	}

	base.Durability = 0
	if got := Scale(base, Top).Durability; got != 0 {
		t.Errorf("zero durability scaled to %d, want 0", got)
	}
}

func TestScaleFieldRules(t *testing.T) {
	base := NewStats()
	base.MiningSpeed = 6
	base.AttackDamage = 6
	base.Durability = 250
	base.Armor = 5
	base.Toughness = 2
	base.KnockbackResistance = 0.1
	base.Enchantability = 14

	tests := []struct {
		name string
		tier Tier
		want Stats
	}{
		{"base", Base, Stats{6, 6, AttackSpeedBase, 250, 5, 2, 0.1, 15}},
		{"mid", Mid, Stats{7.5, 7.5, AttackSpeedBase, 312, 7, 2.5, 0.1, 19}},
		{"top", Top, Stats{9, 9, AttackSpeedBase, 375, 8, 3, 0.1, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(base, tt.tier)
			if !statsNear(got, tt.want) {
				t.Errorf("Scale(%v) =\n  %v\nwant\n  %v", tt.tier, got, tt.want)
			}
		})
	}
}

func TestScaleZeroFieldsStayZero(t *testing.T) {
	got := Scale(NewStats(), Top)
	want := NewStats()
	if got != want {
		t.Errorf("empty record scaled to %v", got)
	}
}

func TestScaleNeverDecreases(t *testing.T) {
	for _, m := range []float64{1.0, 1.01, 1.25, 1.5, 3, 16.384} {
		for v := 1; v <= 300; v += 7 {
			base := Stats{
				MiningSpeed:    float64(v) / 10,
				AttackDamage:   float64(v) / 3,
				AttackSpeed:    AttackSpeedBase,
				Durability:     v,
				Armor:          v % 11,
				Toughness:      float64(v) / 50,
				Enchantability: v % 30,
			}
			got := ScaleBy(base, m)
			if got.MiningSpeed < base.MiningSpeed || got.AttackDamage < base.AttackDamage ||
				got.Durability < base.Durability || got.Armor < base.Armor ||
				got.Toughness < base.Toughness || got.Enchantability < base.Enchantability {
				t.Fatalf("m=%v decreased a field: %v -> %v", m, base, got)
			}
			if got.AttackSpeed != AttackSpeedBase {
				t.Fatalf("attack speed changed to %v", got.AttackSpeed)
			}
		}
	}
}

func TestScaleWithReference(t *testing.T) {
	high := &ToolStats{Name: "enderite", Durability: 4096}
	low := &ToolStats{Name: "iron", Durability: 250}

	m, ok := ReferenceMultiplier(high, low)
	if !ok || math.Abs(m-16.384) > 1e-9 {
		t.Fatalf("ReferenceMultiplier = %v, %v; want 16.384, true", m, ok)
	}

	base := toolBase()
	got := ScaleWithReference(base, high, low, Mid)
	want := ScaleBy(base, m)
	if got != want {
		t.Errorf("reference scaling = %v, want %v", got, want)
	}
	if got.Durability < 4095 || got.Durability > 4096 {
		t.Errorf("durability = %d, want ~4096", got.Durability)
	}
}

func TestScaleWithReferenceFallback(t *testing.T) {
	base := toolBase()
	want := Scale(base, Top)

	tests := []struct {
		name      string
		high, low *ToolStats
	}{
		{"missing high", nil, &IronTools},
		{"missing low", &EnderiteTools, nil},
		{"zero low durability", &EnderiteTools, &ToolStats{Name: "broken"}},
		{"both missing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleWithReference(base, tt.high, tt.low, Top); got != want {
				t.Errorf("fallback = %v, want %v", got, want)
			}
		})
	}
}

func TestScalerReportsReferenceUse(t *testing.T) {
	sc := NewScaler(Multipliers{Base: 1, Mid: 2, Top: 3})
	var calls []bool
	sc.OnReference = func(_ Tier, _ float64, fromRef bool) {
		calls = append(calls, fromRef)
	}

	base := toolBase()
	if got := sc.ScaleWithReference(base, nil, nil, Mid); got != ScaleBy(base, 2) {
		t.Errorf("configured fallback = %v", got)
	}
	sc.ScaleWithReference(base, &EnderiteTools, &IronTools, Top)

	if len(calls) != 2 || calls[0] || !calls[1] {
		t.Errorf("OnReference calls = %v, want [false true]", calls)
	}
}

func TestMultipliersValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Multipliers
		wantErr bool
	}{
		{"defaults", DefaultMultipliers(), false},
		{"equal", Multipliers{1, 1, 1}, false},
		{"mid below base", Multipliers{1, 0.9, 1.5}, true},
		{"top below mid", Multipliers{1, 1.5, 1.25}, true},
		{"base not one", Multipliers{1.1, 1.2, 1.3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMultiplierOrder) {
				t.Errorf("error %v does not wrap ErrMultiplierOrder", err)
			}
		})
	}
}

func TestTierNames(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"iron", Base}, {"Netherite", Mid}, {" ENDERITE ", Top}, {"top", Top}, {"base", Base},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := Parse("gold"); err == nil {
		t.Error("expected error for unknown tier")
	}
	if Top.String() != "Enderite" || Mid.Material() != "netherite" {
		t.Errorf("names: %s %s", Top.String(), Mid.Material())
	}
	if Top.Multiplier() < Mid.Multiplier() || Mid.Multiplier() < Base.Multiplier() || Base.Multiplier() != 1 {
		t.Error("default multipliers out of order")
	}
}

func TestMaterialsReferences(t *testing.T) {
	m := DefaultMaterials()
	high, low := m.References(Top)
	if high == nil || low == nil {
		t.Fatal("expected both references")
	}
	if high.Durability != 4096 || low.Durability != 250 {
		t.Errorf("references = %v / %v", high, low)
	}

	m.Clear()
	high, low = m.References(Top)
	if high != nil || low != nil {
		t.Error("expected nil references after Clear")
	}
}

func TestMaterialsLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.json")
	data := `{"tools":[{"name":"Mithril","durability":3000,"mining_speed":11}],
	          "armor":[{"name":"mithril","durability":500,"protection":[3,7,6,3]}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewMaterials()
	if err := m.LoadJSON(path); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	tool, ok := m.Tool("mithril")
	if !ok || tool.Durability != 3000 {
		t.Errorf("Tool(mithril) = %v, %v", tool, ok)
	}
	armor, ok := m.Armor("MITHRIL")
	if !ok || armor.Stats(SlotChestplate).Armor != 7 {
		t.Errorf("Armor(mithril) = %v, %v", armor, ok)
	}
}

func TestArmorStatsPerSlot(t *testing.T) {
	s := IronArmor.Stats(SlotBoots)
	if s.Armor != 2 || s.Durability != 240 || s.AttackSpeed != AttackSpeedBase {
		t.Errorf("iron boots = %v", s)
	}
	if got := Scale(s, Top).Armor; got != 3 {
		t.Errorf("scaled boots armor = %d, want 3", got)
	}
}

func statsNear(a, b Stats) bool {
	const eps = 1e-9
	return math.Abs(a.MiningSpeed-b.MiningSpeed) < eps &&
		math.Abs(a.AttackDamage-b.AttackDamage) < eps &&
		a.AttackSpeed == b.AttackSpeed &&
		a.Durability == b.Durability &&
		a.Armor == b.Armor &&
		math.Abs(a.Toughness-b.Toughness) < eps &&
		math.Abs(a.KnockbackResistance-b.KnockbackResistance) < eps &&
		a.Enchantability == b.Enchantability
}
