// Package forcefield evaluates the strand force field: bond stretch,
// angle bend, dihedral torsion and base stacking. Forces accumulate into
// the particles' force fields; the scalar potentials are evaluated
// separately and only when reporting.
package forcefield

import (
	"math"

	"github.com/san-kum/strandsim/internal/vec3"
	"github.com/san-kum/strandsim/internal/world"
)

// Compute refreshes the force on every particle from the current
// positions. All accumulators are reset first and every interaction is
// visited exactly once. Bond and stack forces are applied
// pairwise-antisymmetrically and the three angle forces sum to zero, so
// the pass preserves total momentum to numerical precision.
func Compute(w *world.World) {
	all := w.All()
	for i := range all {
		all[i].Force = vec3.Vec{}
	}

	n := w.NumMonomers()
	for i := 0; i < n; i++ {
		for _, t := range bondTerms {
			if i >= t.min {
				bondForce(resolve(w, t.a, i), resolve(w, t.b, i), t.d0)
			}
		}
		for _, t := range stackTerms {
			if i >= t.min {
				stackForce(resolve(w, t.a, i), resolve(w, t.b, i))
			}
		}
		for _, t := range angleTerms {
			if i >= t.min {
				angleForce(resolve(w, t.a, i), resolve(w, t.b, i), resolve(w, t.c, i), t.theta0)
			}
		}
		for _, t := range dihedralTerms {
			if i >= t.min {
				dihedralForce(resolve(w, t.a, i), resolve(w, t.b, i),
					resolve(w, t.c, i), resolve(w, t.d, i), t.phi0)
			}
		}
	}
}

// Potentials is the per-class potential energy breakdown, in electronvolt.
type Potentials struct {
	Bond     float64
	Angle    float64
	Dihedral float64
	Stack    float64
}

func (p Potentials) Total() float64 {
	return p.Bond + p.Angle + p.Dihedral + p.Stack
}

// Energies sums each interaction class's potential over the whole strand.
func Energies(w *world.World) Potentials {
	var vb, va, vd, vs float64

	n := w.NumMonomers()
	for i := 0; i < n; i++ {
		for _, t := range bondTerms {
			if i >= t.min {
				vb += bondPotential(resolve(w, t.a, i), resolve(w, t.b, i), t.d0)
			}
		}
		for _, t := range stackTerms {
			if i >= t.min {
				vs += stackPotential(resolve(w, t.a, i), resolve(w, t.b, i))
			}
		}
		for _, t := range angleTerms {
			if i >= t.min {
				va += anglePotential(resolve(w, t.a, i), resolve(w, t.b, i), resolve(w, t.c, i), t.theta0)
			}
		}
		for _, t := range dihedralTerms {
			if i >= t.min {
				vd += dihedralPotential(resolve(w, t.a, i), resolve(w, t.b, i),
					resolve(w, t.c, i), resolve(w, t.d, i), t.phi0)
			}
		}
	}

	return Potentials{
		Bond:     vb * EnergyToEV,
		Angle:    va * EnergyToEV,
		Dihedral: vd * EnergyToEV,
		Stack:    vs * EnergyToEV,
	}
}

// Bond stretch: V = k1 (r - d0)^2 + k2 (r - d0)^4.

func bondPotential(p1, p2 *world.Particle, d0 float64) float64 {
	d := vec3.Distance(p1.Pos, p2.Pos) - d0
	d2 := d * d
	return bondK1*d2 + bondK2*d2*d2
}

func bondForce(p1, p2 *world.Particle, d0 float64) {
	dr := p2.Pos.Sub(p1.Pos)
	r := dr.Length()
	d := r - d0

	f := dr.Scale((2*bondK1*d + 4*bondK2*d*d*d) / r)
	p1.Force = p1.Force.Add(f)
	p2.Force = p2.Force.Sub(f)
}

// Angle bend: V = (k/2)(theta - theta0)^2 with theta subtended at p2.

func anglePotential(p1, p2, p3 *world.Particle, theta0 float64) float64 {
	a := p1.Pos.Sub(p2.Pos)
	b := p3.Pos.Sub(p2.Pos)
	dtheta := vec3.Angle(a, b) - theta0
	return angleK / 2 * dtheta * dtheta
}

func angleForce(p1, p2, p3 *world.Particle, theta0 float64) {
	a := p1.Pos.Sub(p2.Pos)
	b := p3.Pos.Sub(p2.Pos)
	la := a.Length()
	lb := b.Length()
	adotb := a.Dot(b)

	costheta := adotb / (la * lb)
	if costheta > 1 {
		costheta = 1
	} else if costheta < -1 {
		costheta = -1
	}
	theta := math.Acos(costheta)
	sintheta := math.Sqrt(1 - costheta*costheta)

	// Colinear triplet: unstable equilibrium, the gradient formula is
	// singular there. No force.
	if sintheta < minSinTheta {
		return
	}

	coeff := angleK * (theta - theta0) / sintheta

	f1 := b.Scale(1 / (la * lb)).Sub(a.Scale(adotb / (la * la * la * lb))).Scale(coeff)
	f3 := a.Scale(1 / (la * lb)).Sub(b.Scale(adotb / (lb * lb * lb * la))).Scale(coeff)

	p1.Force = p1.Force.Add(f1)
	p3.Force = p3.Force.Add(f3)
	// The central particle takes the negative sum, so the triplet's
	// forces cancel exactly.
	p2.Force = p2.Force.Sub(f1.Add(f3))
}

// Dihedral torsion: V = k (1 - cos(phi - phi0)) over four particles in
// sequence.

func dihedralPotential(p1, p2, p3, p4 *world.Particle, phi0 float64) float64 {
	r1 := p2.Pos.Sub(p1.Pos)
	r2 := p3.Pos.Sub(p2.Pos)
	r3 := p4.Pos.Sub(p3.Pos)
	phi := vec3.Dihedral(r1, r2, r3)
	return dihedralK * (1 - math.Cos(phi-phi0))
}

// dihedralForce differentiates the potential numerically: the analytic
// gradient of the dihedral angle is impractical to derive, so each of the
// twelve coordinates is perturbed one-sidedly in turn.
func dihedralForce(p1, p2, p3, p4 *world.Particle, phi0 float64) {
	v0 := dihedralPotential(p1, p2, p3, p4, phi0)
	for _, target := range [4]*world.Particle{p1, p2, p3, p4} {
		target.Force = target.Force.Add(fdGradient(target, p1, p2, p3, p4, v0, phi0))
	}
}

func fdGradient(target, p1, p2, p3, p4 *world.Particle, v0, phi0 float64) vec3.Vec {
	var f vec3.Vec

	h := fdStep(target.Pos.X)
	target.Pos.X += h
	f.X = (v0 - dihedralPotential(p1, p2, p3, p4, phi0)) / h
	target.Pos.X -= h

	h = fdStep(target.Pos.Y)
	target.Pos.Y += h
	f.Y = (v0 - dihedralPotential(p1, p2, p3, p4, phi0)) / h
	target.Pos.Y -= h

	h = fdStep(target.Pos.Z)
	target.Pos.Z += h
	f.Z = (v0 - dihedralPotential(p1, p2, p3, p4, phi0)) / h
	target.Pos.Z -= h

	return f
}

func fdStep(x float64) float64 {
	h := x * fdScale
	if h == 0 {
		return fdFloor
	}
	return h
}

// Base stacking: 12-6 potential shifted so its minimum is zero,
// V = k (sigma^12/r^12 - 2 sigma^6/r^6 + 1).

func stackPotential(p1, p2 *world.Particle) float64 {
	sigma2 := StackSigma * StackSigma
	sigma6 := sigma2 * sigma2 * sigma2
	sigma12 := sigma6 * sigma6

	r2 := vec3.Distance2(p1.Pos, p2.Pos)
	r6 := r2 * r2 * r2
	r12 := r6 * r6

	return stackK * (sigma12/r12 - 2*sigma6/r6 + 1)
}

func stackForce(p1, p2 *world.Particle) {
	sigma2 := StackSigma * StackSigma
	sigma6 := sigma2 * sigma2 * sigma2
	sigma12 := sigma6 * sigma6

	dr := p2.Pos.Sub(p1.Pos)
	r2 := dr.Length2()
	r6 := r2 * r2 * r2
	r8 := r6 * r2
	r14 := r6 * r6 * r2

	f := dr.Scale(-12 * stackK * (sigma12/r14 - sigma6/r8))
	p1.Force = p1.Force.Add(f)
	p2.Force = p2.Force.Sub(f)
}
