package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("field:\n  cols: 12\n  rows: 24\ngravity:\n  fall_delay_ms: 250\nbag:\n  batches: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Field.Cols != 12 || cfg.Field.Rows != 24 {
		t.Errorf("field = %dx%d, expected 12x24", cfg.Field.Cols, cfg.Field.Rows)
	}
	if cfg.Gravity.FallDelayMS != 250 {
		t.Errorf("fall_delay_ms = %d, expected 250", cfg.Gravity.FallDelayMS)
	}
	if cfg.Bag.Batches != 2 {
		t.Errorf("bag batches = %d, expected 2", cfg.Bag.Batches)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data := []byte("field:\n  cols: 2\n  rows: 2\ngravity:\n  fall_delay_ms: 250\nbag:\n  batches: 1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for 2x2 field")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Run from a temp dir so no local configs/ directory interferes.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultGameConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		ok     bool
	}{
		{"default", func(*GameConfig) {}, true},
		{"narrow field", func(c *GameConfig) { c.Field.Cols = 3 }, false},
		{"short field", func(c *GameConfig) { c.Field.Rows = 0 }, false},
		{"zero delay", func(c *GameConfig) { c.Gravity.FallDelayMS = 0 }, false},
		{"zero batches", func(c *GameConfig) { c.Bag.Batches = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}
