// Package world owns the particle state of the simulated strand. Each
// monomer contributes three particles (sugar, base, phosphate) stored in
// one contiguous slice partitioned into three equal-length views.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/strandsim/internal/vec3"
)

// Particle masses in kg.
const (
	atomicMassUnit = 1.660539e-27

	MassSugar     = 83.11 * atomicMassUnit
	MassBase      = 134.1 * atomicMassUnit
	MassPhosphate = 94.97 * atomicMassUnit
)

var (
	ErrBadMonomerCount = errors.New("world: monomer count must be positive")
	ErrReleased        = errors.New("world: world already released")
)

// Particle holds the full per-particle state. Force is an accumulator that
// the force field resets and refills on every pass.
type Particle struct {
	Pos   vec3.Vec
	Vel   vec3.Vec
	Force vec3.Vec
	Mass  float64
}

// World stores 3n particles. Sugars, Bases and Phosphates are views into
// the same backing slice, each of length n and indexed by monomer. The
// chain topology is implicit: monomer i bonds to monomer i-1's phosphate.
type World struct {
	all []Particle

	Sugars     []Particle
	Bases      []Particle
	Phosphates []Particle

	n int
}

// New allocates storage for n monomers. On failure nothing is allocated.
func New(n int) (*World, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMonomerCount, n)
	}
	if n > math.MaxInt/3 {
		return nil, fmt.Errorf("%w: %d monomers overflow particle storage", ErrBadMonomerCount, n)
	}

	all := make([]Particle, 3*n)
	return &World{
		all:        all,
		Sugars:     all[0:n],
		Bases:      all[n : 2*n],
		Phosphates: all[2*n : 3*n],
		n:          n,
	}, nil
}

// NumMonomers returns the number of monomers in the strand.
func (w *World) NumMonomers() int { return w.n }

// All returns the backing slice of all 3n particles, sugars first, then
// bases, then phosphates.
func (w *World) All() []Particle { return w.all }

// Release drops the particle storage. Using the world after Release, or
// releasing twice without reallocating, is an error.
func (w *World) Release() error {
	if w.all == nil {
		return ErrReleased
	}
	w.all = nil
	w.Sugars = nil
	w.Bases = nil
	w.Phosphates = nil
	w.n = 0
	return nil
}

// Released reports whether the storage has been dropped.
func (w *World) Released() bool { return w.all == nil }
