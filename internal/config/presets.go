package config

import "sort"

// Presets are canned configurations for common runs.
var presets = map[string]*Config{
	"microcanonical": {
		Monomers:    16,
		TimeStep:    1e-16,
		Steps:       200000,
		Seed:        DefaultSeed,
		ReportEvery: 200,
		Strict:      true,
	},
	"equilibrate": {
		Monomers:       16,
		TimeStep:       1e-15,
		Steps:          100000,
		ThermostatTau:  1e-13,
		ThermostatTemp: 300,
		Seed:           DefaultSeed,
		ReportEvery:    100,
	},
	"anneal": {
		Monomers:       32,
		TimeStep:       1e-15,
		Steps:          500000,
		ThermostatTau:  1e-12,
		ThermostatTemp: 100,
		Seed:           DefaultSeed,
		ReportEvery:    500,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
