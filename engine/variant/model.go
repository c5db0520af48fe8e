package variant

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Model parents
const (
	ParentGenerated = "item/generated"
	ParentHandheld  = "item/handheld"
)

// SmithingType is the recipe type of an upgrade recipe
const SmithingType = "minecraft:smithing_transform"

// ItemModel is an item model file
type ItemModel struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures"`
}

// NewItemModel builds a single-layer model; tools are held like tools
func NewItemModel(textureID string, kind Kind) ItemModel {
	parent := ParentGenerated
	if kind.IsHandheld() {
		parent = ParentHandheld
	}
	return ItemModel{
		Parent:   parent,
		Textures: map[string]string{"layer0": textureID},
	}
}

// ItemRef names an item inside a recipe
type ItemRef struct {
	Item string `json:"item"`
}

// SmithingRecipe upgrades Base into Result using Template and Addition
type SmithingRecipe struct {
	Type     string  `json:"type"`
	Template string  `json:"template"`
	Base     ItemRef `json:"base"`
	Addition ItemRef `json:"addition"`
	Result   ItemRef `json:"result"`
}

// NewSmithingRecipe builds an upgrade recipe from namespaced item ids
func NewSmithingRecipe(template, base, addition, result string) SmithingRecipe {
	return SmithingRecipe{
		Type:     SmithingType,
		Template: template,
		Base:     ItemRef{Item: base},
		Addition: ItemRef{Item: addition},
		Result:   ItemRef{Item: result},
	}
}

// writeJSON writes v as indented JSON, creating parent directories
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
