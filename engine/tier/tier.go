package tier

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a material rank. Variants are always generated from Base upward.
type Tier uint8

const (
	Base Tier = iota // iron
	Mid              // netherite
	Top              // enderite
)

// All lists tiers in ascending order
var All = []Tier{Base, Mid, Top}

// Default stat multipliers per tier
const (
	BaseMultiplier = 1.0
	MidMultiplier  = 1.25
	TopMultiplier  = 1.5
)

var tierMaterials = [...]string{"iron", "netherite", "enderite"}

var tierNames = [...]string{"Iron", "Netherite", "Enderite"}

// Material returns the lowercase material name used in item and file names
func (t Tier) Material() string {
	if int(t) < len(tierMaterials) {
		return tierMaterials[t]
	}
	return tierMaterials[Base]
}

// String returns the display name
func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// Valid reports whether t is one of Base, Mid or Top
func (t Tier) Valid() bool {
	return t <= Top
}

// Multiplier returns the default fixed multiplier
func (t Tier) Multiplier() float64 {
	return DefaultMultipliers().For(t)
}

// Parse accepts either the material name or the display name, case-insensitive
func Parse(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range All {
		if s == t.Material() {
			return t, nil
		}
	}
	switch s {
	case "base":
		return Base, nil
	case "mid":
		return Mid, nil
	case "top":
		return Top, nil
	}
	return Base, fmt.Errorf("unknown tier %q", s)
}

// MarshalText encodes the tier as its material name
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.Material()), nil
}

// UnmarshalText decodes a material or display name
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ErrMultiplierOrder is returned when multipliers violate Top >= Mid >= Base == 1
var ErrMultiplierOrder = errors.New("tier: multipliers must satisfy top >= mid >= base == 1")

// Multipliers holds one fixed stat multiplier per tier
type Multipliers struct {
	Base float64 `json:"base"`
	Mid  float64 `json:"mid"`
	Top  float64 `json:"top"`
}

// DefaultMultipliers returns 1.0 / 1.25 / 1.5
func DefaultMultipliers() Multipliers {
	return Multipliers{Base: BaseMultiplier, Mid: MidMultiplier, Top: TopMultiplier}
}

// For returns the multiplier of a tier. Unknown tiers scale by 1.
func (m Multipliers) For(t Tier) float64 {
	switch t {
	case Mid:
		return m.Mid
	case Top:
		return m.Top
	default:
		return m.Base
	}
}

// Validate checks the ordering constraint
func (m Multipliers) Validate() error {
	if m.Base != 1.0 || m.Mid < m.Base || m.Top < m.Mid {
		return fmt.Errorf("%w (base=%v mid=%v top=%v)", ErrMultiplierOrder, m.Base, m.Mid, m.Top)
	}
	return nil
}
