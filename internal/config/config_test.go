package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 700 || cfg.Height != 700 {
		t.Errorf("expected 700x700 arena, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", cfg.FrameRate)
	}
	if cfg.Particles.Count != 3 {
		t.Errorf("expected 3 particles, got %d", cfg.Particles.Count)
	}
	if cfg.Gravitons.Life != 100 {
		t.Errorf("expected graviton life 100, got %d", cfg.Gravitons.Life)
	}
	if cfg.Gravitons.ImpactScale != -0.01 {
		t.Errorf("expected impact scale -0.01, got %f", cfg.Gravitons.ImpactScale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"zero particles", func(c *Config) { c.Particles.Count = 0 }},
		{"zero particle size", func(c *Config) { c.Particles.Size = 0 }},
		{"particle larger than arena", func(c *Config) { c.Particles.Size = 400 }},
		{"zero graviton life", func(c *Config) { c.Gravitons.Life = 0 }},
		{"negative emission", func(c *Config) { c.Gravitons.PerFrame = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.patch(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Particles.Count = 7
	cfg.Gravitons.PerFrame = 12
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Particles.Count != 7 {
		t.Errorf("particle count = %d, want 7", loaded.Particles.Count)
	}
	if loaded.Gravitons.PerFrame != 12 {
		t.Errorf("per frame = %d, want 12", loaded.Gravitons.PerFrame)
	}
	if loaded.Seed != 42 {
		t.Errorf("seed = %d, want 42", loaded.Seed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Particles.Count = 0
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("swarm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.Count != 8 {
		t.Errorf("expected 8 particles, got %d", cfg.Particles.Count)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if cfg == nil {
				t.Fatal("listed preset not found")
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("invalid: %v", err)
			}
		})
	}
}

func TestParamsConversion(t *testing.T) {
	p := DefaultConfig().Params()

	if p.Width != 700 || p.Height != 700 {
		t.Errorf("arena = %gx%g, want 700x700", p.Width, p.Height)
	}
	if p.GravitonSpawn != 30 {
		t.Errorf("graviton spawn = %d, want 30", p.GravitonSpawn)
	}
	if p.ForceLimit != 2 {
		t.Errorf("force limit = %f, want 2", p.ForceLimit)
	}
	if p.ColorScale != 0.5 {
		t.Errorf("color scale = %f, want 0.5", p.ColorScale)
	}
}
