package tier

import "math"

// enchantBoost dampens enchantability growth relative to the other stats
const enchantBoost = 1.1

// Scale derives the stats of tier t from base using the default multipliers
func Scale(base Stats, t Tier) Stats {
	return ScaleBy(base, t.Multiplier())
}

// ScaleWithReference derives stats from an empirical multiplier
// high.Durability / low.Durability. When either reference is missing or low
// has no durability it silently falls back to Scale(base, t).
func ScaleWithReference(base Stats, high, low *ToolStats, t Tier) Stats {
	return NewScaler(DefaultMultipliers()).ScaleWithReference(base, high, low, t)
}

// ReferenceMultiplier returns high.Durability / low.Durability, or false when
// the ratio cannot be computed.
func ReferenceMultiplier(high, low *ToolStats) (float64, bool) {
	if high == nil || low == nil || low.Durability <= 0 || high.Durability <= 0 {
		return 0, false
	}
	return float64(high.Durability) / float64(low.Durability), true
}

// ScaleBy applies the per-field scaling rules with an explicit multiplier.
// Fields that are zero stay zero; attack speed and knockback resistance are
// copied unchanged.
func ScaleBy(base Stats, m float64) Stats {
	s := base

	if s.MiningSpeed > 0 {
		s.MiningSpeed *= m
	}
	if s.AttackDamage > 0 {
		s.AttackDamage *= m
	}
	if s.Durability > 0 {
		s.Durability = int(float64(s.Durability) * m)
	}
	if s.Armor > 0 {
		s.Armor = int(math.Ceil(float64(s.Armor) * m))
	}
	if s.Toughness > 0 {
		s.Toughness *= m
	}
	if s.Enchantability > 0 {
		s.Enchantability = max(s.Enchantability, int(math.Floor(float64(s.Enchantability)*enchantBoost*m)))
	}

	return s
}

// Scaler scales stats with a configured multiplier table
type Scaler struct {
	Multipliers Multipliers

	// OnReference, when set, is told which multiplier a reference-driven
	// scale used and whether it came from the reference records.
	OnReference func(t Tier, multiplier float64, fromReference bool)
}

// NewScaler creates a scaler for the given multipliers
func NewScaler(m Multipliers) *Scaler {
	return &Scaler{Multipliers: m}
}

// Multiplier returns the configured multiplier for t
func (sc *Scaler) Multiplier(t Tier) float64 {
	return sc.Multipliers.For(t)
}

// Scale derives the stats of tier t from base
func (sc *Scaler) Scale(base Stats, t Tier) Stats {
	return ScaleBy(base, sc.Multiplier(t))
}

// ScaleWithReference prefers the empirical reference multiplier and falls
// back to the configured tier multiplier
func (sc *Scaler) ScaleWithReference(base Stats, high, low *ToolStats, t Tier) Stats {
	m, ok := ReferenceMultiplier(high, low)
	if !ok {
		m = sc.Multiplier(t)
	}
	if sc.OnReference != nil {
		sc.OnReference(t, m, ok)
	}
	return ScaleBy(base, m)
}
