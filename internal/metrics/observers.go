package metrics

import (
	"math"

	"github.com/san-kum/strandsim/internal/forcefield"
	"github.com/san-kum/strandsim/internal/world"
)

// Metric is a streaming observer over simulation steps.
type Metric interface {
	Name() string
	Observe(w *world.World, t float64)
	Value() float64
	Reset()
}

// TemperatureAverage tracks the running mean instantaneous temperature.
type TemperatureAverage struct {
	sum     float64
	samples int
}

func NewTemperatureAverage() *TemperatureAverage { return &TemperatureAverage{} }

func (m *TemperatureAverage) Name() string { return "temperature_avg" }

func (m *TemperatureAverage) Observe(w *world.World, t float64) {
	m.sum += Temperature(w)
	m.samples++
}

func (m *TemperatureAverage) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *TemperatureAverage) Reset() {
	m.sum = 0
	m.samples = 0
}

// EnergyDrift tracks the maximum relative deviation of total energy
// (kinetic plus all potential classes) from its value at the first
// observation.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (m *EnergyDrift) Name() string { return "energy_drift" }

func (m *EnergyDrift) Observe(w *world.World, t float64) {
	energy := KineticEnergy(w)*forcefield.EnergyToEV + forcefield.Energies(w).Total()

	if m.samples == 0 {
		m.initial = energy
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(energy-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *EnergyDrift) Value() float64 { return m.maxDrift }

func (m *EnergyDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// MomentumDrift tracks the maximum momentum magnitude per monomer, the
// quantity bounded by the conservation invariant.
type MomentumDrift struct {
	max float64
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_per_monomer" }

func (m *MomentumDrift) Observe(w *world.World, t float64) {
	ppm := Momentum(w).Length() / float64(w.NumMonomers())
	m.max = math.Max(m.max, ppm)
}

func (m *MomentumDrift) Value() float64 { return m.max }

func (m *MomentumDrift) Reset() { m.max = 0 }
