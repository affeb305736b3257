package forcefield

import (
	"math"

	"github.com/san-kum/strandsim/internal/vec3"
	"github.com/san-kum/strandsim/internal/world"
)

// Ratios holds the per-class equipartition diagnostic: the mean
// virial-style energy of each interaction class divided by kB*T. A
// correctly thermalized quadratic term sits near 1.
type Ratios struct {
	Bond     float64
	Angle    float64
	Dihedral float64
	Stack    float64
}

// Equipartition computes the diagnostic at the given instantaneous
// temperature. Classes with no terms (short strands) report zero.
func Equipartition(w *world.World, temperature float64) Ratios {
	if temperature <= 0 {
		return Ratios{}
	}

	var eb, ea, ed, es float64
	var nb, na, nd, ns int

	n := w.NumMonomers()
	for i := 0; i < n; i++ {
		for _, t := range bondTerms {
			if i >= t.min {
				eb += epBond(resolve(w, t.a, i), resolve(w, t.b, i), t.d0)
				nb++
			}
		}
		for _, t := range stackTerms {
			if i >= t.min {
				es += epStack(resolve(w, t.a, i), resolve(w, t.b, i))
				ns++
			}
		}
		for _, t := range angleTerms {
			if i >= t.min {
				ea += epAngle(resolve(w, t.a, i), resolve(w, t.b, i), resolve(w, t.c, i), t.theta0)
				na++
			}
		}
		for _, t := range dihedralTerms {
			if i >= t.min {
				ed += epDihedral(resolve(w, t.a, i), resolve(w, t.b, i),
					resolve(w, t.c, i), resolve(w, t.d, i), t.phi0)
				nd++
			}
		}
	}

	kT := Boltzmann * temperature
	return Ratios{
		Bond:     meanOver(eb, nb) / kT,
		Angle:    meanOver(ea, na) / kT,
		Dihedral: meanOver(ed, nd) / kT,
		Stack:    meanOver(es, ns) / kT,
	}
}

func meanOver(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func epBond(p1, p2 *world.Particle, d0 float64) float64 {
	d := vec3.Distance(p1.Pos, p2.Pos) - d0
	d2 := d * d
	return 2*bondK1*d2 + 4*bondK2*d2*d2
}

func epAngle(p1, p2, p3 *world.Particle, theta0 float64) float64 {
	a := p1.Pos.Sub(p2.Pos)
	b := p3.Pos.Sub(p2.Pos)
	dtheta := vec3.Angle(a, b) - theta0
	return angleK * dtheta * dtheta
}

func epDihedral(p1, p2, p3, p4 *world.Particle, phi0 float64) float64 {
	r1 := p2.Pos.Sub(p1.Pos)
	r2 := p3.Pos.Sub(p2.Pos)
	r3 := p4.Pos.Sub(p3.Pos)

	dphi := vec3.Dihedral(r1, r2, r3) - phi0
	dphi = math.Mod(dphi+5*math.Pi, 2*math.Pi) - math.Pi
	return dphi * dihedralK * math.Sin(dphi)
}

func epStack(p1, p2 *world.Particle) float64 {
	sigma2 := StackSigma * StackSigma
	sigma6 := sigma2 * sigma2 * sigma2
	sigma12 := sigma6 * sigma6

	r2 := vec3.Distance2(p1.Pos, p2.Pos)
	r6 := r2 * r2 * r2
	r12 := r6 * r6

	return -12 * stackK * (sigma12/r12 - sigma6/r6)
}
