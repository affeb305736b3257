package sim

import (
	"fmt"

	"github.com/san-kum/strandsim/internal/forcefield"
)

// verlet advances positions and velocities one time step with the
// velocity-Verlet scheme. Symplectic, second order, one force evaluation
// per step:
//
//	v(t+dt/2) = v(t) + F(t)/m * dt/2
//	x(t+dt)   = x(t) + v(t+dt/2) * dt
//	F(t+dt)   = forcefield.Compute
//	v(t+dt)   = v(t+dt/2) + F(t+dt)/m * dt/2
func (s *Simulation) verlet() error {
	dt := s.cfg.TimeStep
	all := s.w.All()

	for i := range all {
		p := &all[i]
		p.Vel = p.Vel.Add(p.Force.Scale(dt / (2 * p.Mass)))
		if !p.Vel.IsFinite() {
			return fmt.Errorf("%w: particle %d at t=%e", ErrUnstable, i, s.time)
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	}

	forcefield.Compute(s.w)

	for i := range all {
		p := &all[i]
		p.Vel = p.Vel.Add(p.Force.Scale(dt / (2 * p.Mass)))
	}
	return nil
}
