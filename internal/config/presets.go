package config

import "sort"

// Preset is a named model setting applied on top of a Config.
type Preset struct {
	Description string
	Model       ModelConfig
}

var Presets = map[string]Preset{
	"default": {
		Description: "slider defaults: r=0.1, K=1.2x peak, h=0.1",
		Model:       ModelConfig{R: 0.1, H: 0.1, KFactor: 1.2},
	},
	"yearly": {
		Description: "one Euler step per observed year",
		Model:       ModelConfig{R: 0.2, H: 1.0, KFactor: 1.5},
	},
	"saturated": {
		Description: "capacity close to the observed peak",
		Model:       ModelConfig{R: 0.25, H: 0.1, KFactor: 1.0},
	},
	"fast": {
		Description: "aggressive growth, fine step",
		Model:       ModelConfig{R: 0.6, H: 0.05, KFactor: 2.0},
	},
	"oscillating": {
		Description: "r*h above one: Euler overshoots the capacity",
		Model:       ModelConfig{R: 1.0, H: 1.5, KFactor: 1.2},
	},
}

// Apply returns a copy of c with the named preset's model settings, or
// nil if no such preset exists.
func (c *Config) Apply(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *c
	out.Model = p.Model
	return &out
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
