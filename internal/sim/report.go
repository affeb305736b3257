package sim

import (
	"fmt"
	"io"

	"github.com/san-kum/strandsim/internal/forcefield"
	"github.com/san-kum/strandsim/internal/metrics"
)

// momentumTolerance bounds the acceptable total momentum magnitude per
// monomer. All internal forces cancel pairwise or per triplet, so any
// residual beyond this is a force-field symmetry bug.
const momentumTolerance = 1e-20

// CheckInvariants evaluates momentum conservation. On violation it writes
// a diagnostic to the error writer and returns false; the caller decides
// whether that is fatal.
func (s *Simulation) CheckInvariants() bool {
	ppm := metrics.Momentum(s.w).Length() / float64(s.cfg.NumMonomers)
	if ppm > momentumTolerance {
		fmt.Fprintf(s.errw, "momentum conservation violated: |P| per monomer = %e at t=%e\n",
			ppm, s.time)
		return false
	}
	return true
}

// Sample is one row of the energy time series. Energies are in
// electronvolt, temperature in K.
type Sample struct {
	Time        float64
	Total       float64
	Kinetic     float64
	Bond        float64
	Angle       float64
	Dihedral    float64
	Stack       float64
	Temperature float64
}

// Sample captures the current diagnostics.
func (s *Simulation) Sample() Sample {
	pe := forcefield.Energies(s.w)
	k := metrics.KineticEnergy(s.w) * forcefield.EnergyToEV
	return Sample{
		Time:        s.time,
		Total:       k + pe.Total(),
		Kinetic:     k,
		Bond:        pe.Bond,
		Angle:       pe.Angle,
		Dihedral:    pe.Dihedral,
		Stack:       pe.Stack,
		Temperature: metrics.Temperature(s.w),
	}
}

// ReportEnergies writes one line to sink: simulation time, total energy,
// kinetic energy, and the four potential classes, in fixed
// scientific-notation columns consumable as a time series.
func (s *Simulation) ReportEnergies(sink io.Writer) error {
	smp := s.Sample()
	_, err := fmt.Fprintf(sink, "%e %e %e %e %e %e %e\n",
		smp.Time, smp.Total, smp.Kinetic, smp.Bond, smp.Angle, smp.Dihedral, smp.Stack)
	return err
}

// Equipartition returns the per-class equipartition diagnostic at the
// current instantaneous temperature.
func (s *Simulation) Equipartition() forcefield.Ratios {
	return forcefield.Equipartition(s.w, metrics.Temperature(s.w))
}
