package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/platterlab/internal/vinyl"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.MediaDuration <= 1 {
		t.Error("media duration should exceed one second")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min above threshold", func(c *Config) { c.Mechanism.MinYaw = -10 }},
		{"threshold above home", func(c *Config) { c.Mechanism.PlayThreshold = 5 }},
		{"home above max", func(c *Config) { c.Mechanism.HomeYaw = 50 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"bad twist policy", func(c *Config) { c.Vinyl.TwistPolicy = "spiral" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("loose-cord")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Vinyl.MaxDragRadius <= DefaultConfig().Vinyl.MaxDragRadius {
		t.Error("loose-cord should widen the drag radius")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset must validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) < 3 {
		t.Errorf("expected at least 3 presets, got %d", len(names))
	}
}

func TestTwistPolicyMapping(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.VinylParams().Twist != vinyl.TwistCommitFinal {
		t.Error("default twist policy should commit the final angle")
	}

	cfg.Vinyl.TwistPolicy = "zero"
	if cfg.VinylParams().Twist != vinyl.TwistEaseZero {
		t.Error("zero policy should ease the twist back")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platterlab.yaml")

	cfg := GetPreset("tight-cord")
	cfg.MediaDuration = 240
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.MediaDuration != 240 {
		t.Errorf("expected media duration 240, got %f", loaded.MediaDuration)
	}
	if loaded.Vinyl.TwistPolicy != "zero" {
		t.Errorf("expected zero twist policy, got %q", loaded.Vinyl.TwistPolicy)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
