// Package sim owns the simulation lifecycle: a validated configuration,
// the particle world, the velocity-Verlet integrator, the weak-coupling
// thermostat, and the runtime invariant checks.
package sim

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/strandsim/internal/forcefield"
	"github.com/san-kum/strandsim/internal/metrics"
	"github.com/san-kum/strandsim/internal/world"
)

// Config is immutable for the lifetime of a run.
type Config struct {
	NumMonomers int
	TimeStep    float64 // s

	// ThermostatTau is the Berendsen relaxation time in s; a
	// non-positive value disables the thermostat entirely.
	ThermostatTau  float64
	ThermostatTemp float64 // K

	Seed uint64

	// StrictInvariants escalates a momentum-conservation violation
	// from a diagnostic warning to an error returned by Step.
	StrictInvariants bool
}

func (c Config) Validate() error {
	if c.NumMonomers <= 0 {
		return fmt.Errorf("%w: monomer count must be positive, got %d", ErrBadConfig, c.NumMonomers)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("%w: time step must be positive, got %e", ErrBadConfig, c.TimeStep)
	}
	if c.ThermostatTau > 0 && c.ThermostatTemp <= 0 {
		return fmt.Errorf("%w: thermostat target temperature must be positive, got %f",
			ErrBadConfig, c.ThermostatTemp)
	}
	return nil
}

// Simulation is the explicit context object for one run: configuration,
// world, and clock. It replaces the process-wide globals of older MD
// codes; construct one per run.
type Simulation struct {
	cfg       Config
	w         *world.World
	time      float64
	populated bool
	errw      io.Writer
	observers []metrics.Metric
}

// New validates cfg and allocates the world. On failure nothing is
// allocated.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, err := world.New(cfg.NumMonomers)
	if err != nil {
		return nil, err
	}
	return &Simulation{cfg: cfg, w: w, errw: os.Stderr}, nil
}

// SetErrorWriter redirects invariant diagnostics (default: stderr).
func (s *Simulation) SetErrorWriter(w io.Writer) { s.errw = w }

// AddObserver registers a metric to be fed after every step.
func (s *Simulation) AddObserver(m metrics.Metric) {
	s.observers = append(s.observers, m)
}

func (s *Simulation) Config() Config      { return s.cfg }
func (s *Simulation) World() *world.World { return s.w }
func (s *Simulation) Time() float64       { return s.time }

// Populate lays out the initial helix geometry, zeroes the clock, and
// evaluates the initial forces so the first half-kick sees F(0).
func (s *Simulation) Populate() error {
	if s.w.Released() {
		return ErrReleased
	}
	s.w.Fill(s.cfg.Seed)
	forcefield.Compute(s.w)
	s.time = 0
	s.populated = true
	return nil
}

// Step advances the simulation by exactly one time step: integrator,
// thermostat, invariant check, clock. Observers see the post-step state.
func (s *Simulation) Step() error {
	if s.w.Released() {
		return ErrReleased
	}
	if !s.populated {
		return ErrNotPopulated
	}

	if err := s.verlet(); err != nil {
		return err
	}
	if err := s.thermostat(); err != nil {
		return err
	}

	s.time += s.cfg.TimeStep

	if !s.CheckInvariants() && s.cfg.StrictInvariants {
		return fmt.Errorf("%w at t=%e", ErrMomentumDrift, s.time)
	}

	for _, m := range s.observers {
		m.Observe(s.w, s.time)
	}
	return nil
}

// Release frees the particle storage. The simulation cannot be stepped or
// released again afterwards.
func (s *Simulation) Release() error {
	s.populated = false
	if err := s.w.Release(); err != nil {
		return ErrReleased
	}
	return nil
}
