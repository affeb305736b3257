package forcefield

import "math"

// Force-field parameters in SI units. Epsilon is the base energy unit of
// the model (0.26 kcal/mol per particle). The stretch constants are quoted
// per angstrom, hence the 1e20 conversion.
const (
	Epsilon = 1.81e-21

	perAngstrom2 = 1e20
	toRadians    = math.Pi / 180

	bondK1    = Epsilon * perAngstrom2
	bondK2    = 100 * Epsilon * perAngstrom2
	angleK    = 400 * Epsilon // per radian^2
	dihedralK = 4 * Epsilon
	stackK    = Epsilon

	// StackSigma is the equilibrium distance of the base stacking
	// potential.
	StackSigma = 3.414e-10
)

// Equilibrium bend angles. Names spell out the particle sequence along
// the backbone: S is sugar, P phosphate, B base; 5/3 mark the phosphate
// attachment side.
const (
	AngleS5P3S = 94.49 * toRadians
	AngleP5S3P = 120.15 * toRadians
	AngleP5SB  = 113.13 * toRadians
	AngleP3SB  = 108.38 * toRadians
)

// Equilibrium dihedral angles.
const (
	DihedralP5S3P5S = -154.80 * toRadians
	DihedralS3P5S3P = -179.17 * toRadians
	DihedralBS3P5S  = -22.60 * toRadians
	DihedralS3P5SB  = 50.69 * toRadians
)

const (
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.38065e-23

	// EnergyToEV converts internal energies (J) to electronvolt for
	// reporting.
	EnergyToEV = 1 / 1.602177e-19
)

const (
	// minSinTheta guards the angle force against the colinear unstable
	// equilibrium, where the analytic gradient blows up.
	minSinTheta = 1e-30

	// fdScale sizes the dihedral finite-difference step relative to the
	// perturbed coordinate, roughly sqrt(machine epsilon). fdFloor is
	// the absolute step used when a coordinate is exactly zero.
	fdScale = 1e-8
	fdFloor = 1e-18
)
