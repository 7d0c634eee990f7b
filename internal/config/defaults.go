package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default blockfall configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Cols: 10,
			Rows: 20,
		},
		Gravity: GravityConfig{
			FallDelayMS: 500,
		},
		Bag: BagConfig{
			Batches: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
