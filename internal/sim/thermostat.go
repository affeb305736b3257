package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/strandsim/internal/metrics"
)

// thermostat applies Berendsen weak-coupling velocity rescaling once per
// step: lambda = sqrt(1 + dt/tau * (T0/Tk - 1)). A non-positive tau
// disables it.
func (s *Simulation) thermostat() error {
	tau := s.cfg.ThermostatTau
	if tau <= 0 {
		return nil
	}

	tk := metrics.Temperature(s.w)
	if tk <= 0 {
		return fmt.Errorf("%w: T=%e at t=%e", ErrFrozen, tk, s.time)
	}

	lambda := math.Sqrt(1 + s.cfg.TimeStep/tau*(s.cfg.ThermostatTemp/tk-1))

	all := s.w.All()
	for i := range all {
		all[i].Vel = all[i].Vel.Scale(lambda)
	}
	return nil
}
