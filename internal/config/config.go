// Package config loads and validates run configurations from yaml files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/strandsim/internal/sim"
)

const (
	DefaultMonomers  = 16
	DefaultTimeStep  = 1e-15 // s
	DefaultSteps     = 100000
	DefaultTemp      = 300.0
	DefaultSeed      = 42
	DefaultReportInt = 100
)

type Config struct {
	Monomers int     `yaml:"monomers"`
	TimeStep float64 `yaml:"time_step"`
	Steps    int     `yaml:"steps"`

	// ThermostatTau <= 0 disables the thermostat.
	ThermostatTau  float64 `yaml:"thermostat_tau"`
	ThermostatTemp float64 `yaml:"thermostat_temp"`

	Seed uint64 `yaml:"seed"`

	// ReportEvery is the sampling interval for the energy series.
	ReportEvery int `yaml:"report_every"`

	// Strict escalates momentum-invariant violations to run failures.
	Strict bool `yaml:"strict"`
}

func DefaultConfig() *Config {
	return &Config{
		Monomers:       DefaultMonomers,
		TimeStep:       DefaultTimeStep,
		Steps:          DefaultSteps,
		ThermostatTemp: DefaultTemp,
		Seed:           DefaultSeed,
		ReportEvery:    DefaultReportInt,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the file layer owns and defers the physics
// fields to the core's own validation.
func (c *Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.ReportEvery <= 0 {
		return fmt.Errorf("report_every must be positive, got %d", c.ReportEvery)
	}
	return c.SimConfig().Validate()
}

// SimConfig maps the file configuration onto the core configuration.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		NumMonomers:      c.Monomers,
		TimeStep:         c.TimeStep,
		ThermostatTau:    c.ThermostatTau,
		ThermostatTemp:   c.ThermostatTemp,
		Seed:             c.Seed,
		StrictInvariants: c.Strict,
	}
}
