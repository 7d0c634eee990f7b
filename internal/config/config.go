// Package config provides YAML-based game configuration loading for
// blockfall.
package config

import (
	"fmt"
	"time"
)

// GameConfig contains all tunable parameters of a blockfall session.
type GameConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Gravity GravityConfig `yaml:"gravity"`
	Bag     BagConfig     `yaml:"bag"`
}

// FieldConfig defines the playing field dimensions.
type FieldConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// GravityConfig defines the automatic descent timing.
type GravityConfig struct {
	FallDelayMS int `yaml:"fall_delay_ms"`
}

// BagConfig defines the randomizer composition.
type BagConfig struct {
	Batches int `yaml:"batches"`
}

// FallDelay returns the gravity interval as a duration.
func (c GameConfig) FallDelay() time.Duration {
	return time.Duration(c.Gravity.FallDelayMS) * time.Millisecond
}

// Validate checks the configuration for values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.Field.Cols < 4 || c.Field.Rows < 4 {
		return fmt.Errorf("field must be at least 4x4, got %dx%d", c.Field.Cols, c.Field.Rows)
	}
	if c.Gravity.FallDelayMS <= 0 {
		return fmt.Errorf("fall_delay_ms must be positive, got %d", c.Gravity.FallDelayMS)
	}
	if c.Bag.Batches < 1 {
		return fmt.Errorf("bag batches must be at least 1, got %d", c.Bag.Batches)
	}
	return nil
}
