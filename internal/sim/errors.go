package sim

import "errors"

// Domain errors for simulation operations.
var (
	// ErrBadConfig indicates an invalid run configuration.
	ErrBadConfig = errors.New("sim: invalid configuration")

	// ErrUnstable indicates a non-finite velocity, usually caused by an
	// excessively large time step or colliding particles. Integration
	// must not continue past it.
	ErrUnstable = errors.New("sim: numerical instability (non-finite velocity)")

	// ErrFrozen indicates the thermostat observed a non-positive
	// kinetic temperature; the rescale factor would divide by zero.
	ErrFrozen = errors.New("sim: thermostat requires positive kinetic temperature")

	// ErrMomentumDrift indicates the momentum conservation invariant
	// was violated beyond tolerance while StrictInvariants is set.
	ErrMomentumDrift = errors.New("sim: momentum conservation violated")

	// ErrNotPopulated indicates Step was called before Populate.
	ErrNotPopulated = errors.New("sim: world not populated")

	// ErrReleased indicates use after Release.
	ErrReleased = errors.New("sim: simulation already released")
)
