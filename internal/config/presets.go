package config

import "sort"

// Presets are named variations on the default world. Fields left at
// zero in a preset literal would be invalid, so each preset is built
// by patching a full default config.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"swarm": func(c *Config) {
		c.Particles.Count = 8
		c.Gravitons.PerFrame = 50
		c.Gravitons.Life = 60
	},
	"calm": func(c *Config) {
		c.Gravitons.PerFrame = 10
		c.Gravitons.Noise = 4
	},
	"crowded": func(c *Config) {
		c.Particles.Count = 12
		c.Particles.Size = 6
		c.Gravitons.PerFrame = 20
	},
	"heavy": func(c *Config) {
		c.Particles.Size = 25
		c.Particles.ForceLimit = 1
		c.Gravitons.ImpactScale = -0.05
	},
}

// GetPreset returns a fresh config for the named preset, or nil if the
// name is unknown.
func GetPreset(name string) *Config {
	patch, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	patch(cfg)
	return cfg
}

// ListPresets returns all preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
