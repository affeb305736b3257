// Package metrics provides the runtime diagnostics of a simulation:
// kinetic energy, temperature, total momentum, and streaming observers
// for drift tracking.
package metrics

import (
	"github.com/san-kum/strandsim/internal/forcefield"
	"github.com/san-kum/strandsim/internal/vec3"
	"github.com/san-kum/strandsim/internal/world"
)

// KineticEnergy returns K = sum of m|v|^2 / 2 over all particles, in J.
func KineticEnergy(w *world.World) float64 {
	twiceK := 0.0
	for i := range w.All() {
		p := &w.All()[i]
		twiceK += p.Mass * p.Vel.Length2()
	}
	return twiceK / 2
}

// Temperature returns the instantaneous temperature from the
// equipartition relation. The degrees-of-freedom divisor is three per
// monomer, not per particle; changing it breaks the expected
// equipartition behavior.
func Temperature(w *world.World) float64 {
	return 2.0 / (3.0 * forcefield.Boltzmann) *
		KineticEnergy(w) / (float64(w.NumMonomers()) * 3.0)
}

// Momentum returns the total linear momentum, in kg m/s.
func Momentum(w *world.World) vec3.Vec {
	var total vec3.Vec
	for i := range w.All() {
		p := &w.All()[i]
		total = total.Add(p.Vel.Scale(p.Mass))
	}
	return total
}
