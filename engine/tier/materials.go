package tier

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Default reference tool materials
var (
	IronTools      = ToolStats{Name: "iron", Durability: 250, MiningSpeed: 6.0, AttackDamage: 6.0, Enchantability: 14}
	NetheriteTools = ToolStats{Name: "netherite", Durability: 2031, MiningSpeed: 12.0, AttackDamage: 4.0, Enchantability: 15}
	EnderiteTools  = ToolStats{Name: "enderite", Durability: 4096, MiningSpeed: 15.0, AttackDamage: 2.0, Enchantability: 17}
)

// Default reference armor materials
var (
	IronArmor      = ArmorStats{Name: "iron", Durability: 240, Enchantability: 9, Protection: [4]int{2, 6, 5, 2}}
	NetheriteArmor = ArmorStats{Name: "netherite", Durability: 592, Enchantability: 15, Toughness: 3.0, KnockbackResistance: 0.1, Protection: [4]int{3, 8, 6, 3}}
	EnderiteArmor  = ArmorStats{Name: "enderite", Durability: 592, Enchantability: 17, Toughness: 4.0, KnockbackResistance: 0.1, Protection: [4]int{4, 9, 7, 4}}
)

// Materials is an owned table of reference material records keyed by
// lowercase material name. It is safe for concurrent use.
type Materials struct {
	mu    sync.RWMutex
	tools map[string]ToolStats
	armor map[string]ArmorStats
}

// NewMaterials creates an empty table
func NewMaterials() *Materials {
	return &Materials{
		tools: make(map[string]ToolStats),
		armor: make(map[string]ArmorStats),
	}
}

// DefaultMaterials creates a table holding the iron, netherite and enderite records
func DefaultMaterials() *Materials {
	m := NewMaterials()
	for _, t := range []ToolStats{IronTools, NetheriteTools, EnderiteTools} {
		m.PutTool(t)
	}
	for _, a := range []ArmorStats{IronArmor, NetheriteArmor, EnderiteArmor} {
		m.PutArmor(a)
	}
	return m
}

// PutTool stores a tool record under its name
func (m *Materials) PutTool(t ToolStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tools[strings.ToLower(t.Name)] = t
}

// PutArmor stores an armor record under its name
func (m *Materials) PutArmor(a ArmorStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armor[strings.ToLower(a.Name)] = a
}

// Tool looks up a tool record
func (m *Materials) Tool(name string) (ToolStats, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tools[strings.ToLower(name)]
	return t, ok
}

// Armor looks up an armor record
func (m *Materials) Armor(name string) (ArmorStats, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.armor[strings.ToLower(name)]
	return a, ok
}

// References returns the tool records of tier t (high) and of Base (low).
// Either pointer is nil when the record is absent.
func (m *Materials) References(t Tier) (high, low *ToolStats) {
	if h, ok := m.Tool(t.Material()); ok {
		high = &h
	}
	if l, ok := m.Tool(Base.Material()); ok {
		low = &l
	}
	return high, low
}

// ToolNames returns the sorted tool material names
func (m *Materials) ToolNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.tools))
	for k := range m.tools {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tool and armor records
func (m *Materials) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tools) + len(m.armor)
}

// Clear removes every record
func (m *Materials) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tools = make(map[string]ToolStats)
	m.armor = make(map[string]ArmorStats)
}

type materialsFile struct {
	Tools []ToolStats  `json:"tools"`
	Armor []ArmorStats `json:"armor"`
}

// LoadJSON merges records from a JSON file into m
func (m *Materials) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f materialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("materials %s: %w", path, err)
	}
	for _, t := range f.Tools {
		m.PutTool(t)
	}
	for _, a := range f.Armor {
		m.PutArmor(a)
	}
	return nil
}
