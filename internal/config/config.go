package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravitons/internal/sim"
)

type Config struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FrameRate int     `yaml:"frame_rate"`
	Seed      int64   `yaml:"seed"`

	Particles ParticleConfig `yaml:"particles"`
	Gravitons GravitonConfig `yaml:"gravitons"`
}

type ParticleConfig struct {
	Count       int     `yaml:"count"`
	Size        int     `yaml:"size"`
	SpawnMargin float64 `yaml:"spawn_margin"`
	ColorMin    int     `yaml:"color_min"`
	ColorRange  int     `yaml:"color_range"`
	ForceLimit  float64 `yaml:"force_limit"`
}

type GravitonConfig struct {
	Size        float64 `yaml:"size"`
	Life        int     `yaml:"life"`
	PerFrame    int     `yaml:"per_frame"`
	Noise       float64 `yaml:"noise"`
	ImpactScale float64 `yaml:"impact_scale"`
	ColorScale  float64 `yaml:"color_scale"`
}

func DefaultConfig() *Config {
	p := sim.DefaultParams()
	return &Config{
		Width:     p.Width,
		Height:    p.Height,
		FrameRate: p.FrameRate,
		Particles: ParticleConfig{
			Count:       p.ParticleCount,
			Size:        p.ParticleSize,
			SpawnMargin: p.SpawnMargin,
			ColorMin:    p.ColorMin,
			ColorRange:  p.ColorRange,
			ForceLimit:  p.ForceLimit,
		},
		Gravitons: GravitonConfig{
			Size:        p.GravitonSize,
			Life:        p.GravitonLife,
			PerFrame:    p.GravitonSpawn,
			Noise:       p.GravitonNoise,
			ImpactScale: p.ImpactScale,
			ColorScale:  p.ColorScale,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("arena must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	if c.Particles.Count <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", c.Particles.Count)
	}
	if c.Particles.Size <= 0 {
		return fmt.Errorf("particle size must be positive, got %d", c.Particles.Size)
	}
	if float64(c.Particles.Size)*2 > c.Width || float64(c.Particles.Size)*2 > c.Height {
		return fmt.Errorf("particle size %d does not fit the arena", c.Particles.Size)
	}
	if c.Gravitons.Life <= 0 {
		return fmt.Errorf("graviton life must be positive, got %d", c.Gravitons.Life)
	}
	if c.Gravitons.PerFrame < 0 {
		return fmt.Errorf("gravitons per frame must not be negative, got %d", c.Gravitons.PerFrame)
	}
	return nil
}

// Params converts the config into the sim parameter set.
func (c *Config) Params() sim.Params {
	return sim.Params{
		Width:         c.Width,
		Height:        c.Height,
		FrameRate:     c.FrameRate,
		ParticleCount: c.Particles.Count,
		ParticleSize:  c.Particles.Size,
		SpawnMargin:   c.Particles.SpawnMargin,
		ColorMin:      c.Particles.ColorMin,
		ColorRange:    c.Particles.ColorRange,
		ForceLimit:    c.Particles.ForceLimit,
		GravitonSize:  c.Gravitons.Size,
		GravitonLife:  c.Gravitons.Life,
		GravitonSpawn: c.Gravitons.PerFrame,
		GravitonNoise: c.Gravitons.Noise,
		ImpactScale:   c.Gravitons.ImpactScale,
		ColorScale:    c.Gravitons.ColorScale,
		Background:    sim.Color{R: 0, G: 0, B: 0},
	}
}
