package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/strandsim/internal/forcefield"
	"github.com/san-kum/strandsim/internal/vec3"
	"github.com/san-kum/strandsim/internal/world"
)

func TestKineticEnergy(t *testing.T) {
	w, _ := world.New(1)
	w.Fill(1)

	if k := KineticEnergy(w); k != 0 {
		t.Errorf("expected zero kinetic energy after Fill, got %e", k)
	}

	w.Sugars[0].Vel = vec3.Vec{X: 100}
	want := 0.5 * world.MassSugar * 100 * 100
	if k := KineticEnergy(w); math.Abs(k-want)/want > 1e-15 {
		t.Errorf("kinetic energy: got %e, want %e", k, want)
	}
}

func TestTemperatureDivisor(t *testing.T) {
	// The divisor is 3 * numMonomers, not 3 * numParticles. With every
	// particle at speed v, T = (sum m v^2) / (3 kB n).
	w, _ := world.New(4)
	w.Fill(1)
	v := 250.0
	for i := range w.All() {
		w.All()[i].Vel = vec3.Vec{Z: v}
	}

	sumMV2 := (world.MassSugar + world.MassBase + world.MassPhosphate) * 4 * v * v
	want := sumMV2 / (3 * forcefield.Boltzmann * 4)

	if got := Temperature(w); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("temperature: got %f, want %f", got, want)
	}
}

func TestMomentum(t *testing.T) {
	w, _ := world.New(2)
	w.Fill(1)

	if p := Momentum(w); p.Length() != 0 {
		t.Errorf("expected zero momentum at rest, got %v", p)
	}

	w.Bases[0].Vel = vec3.Vec{X: 10}
	w.Bases[1].Vel = vec3.Vec{X: -10}
	if p := Momentum(w); p.Length() > 1e-40 {
		t.Errorf("opposite equal-mass velocities must cancel, got %v", p)
	}

	w.Sugars[0].Vel = vec3.Vec{Y: 5}
	want := world.MassSugar * 5
	if p := Momentum(w); math.Abs(p.Y-want)/want > 1e-15 {
		t.Errorf("momentum y: got %e, want %e", p.Y, want)
	}
}

func TestTemperatureAverage(t *testing.T) {
	w, _ := world.New(1)
	w.Fill(1)
	m := NewTemperatureAverage()

	if m.Value() != 0 {
		t.Error("empty average should be 0")
	}

	w.Sugars[0].Vel = vec3.Vec{X: 100}
	t1 := Temperature(w)
	m.Observe(w, 0)

	w.Sugars[0].Vel = vec3.Vec{X: 200}
	t2 := Temperature(w)
	m.Observe(w, 1)

	want := (t1 + t2) / 2
	if math.Abs(m.Value()-want)/want > 1e-15 {
		t.Errorf("average: got %f, want %f", m.Value(), want)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	w, _ := world.New(2)
	w.Fill(5)
	m := NewEnergyDrift()

	m.Observe(w, 0)
	if m.Value() != 0 {
		t.Errorf("first observation sets the baseline, drift should be 0, got %e", m.Value())
	}

	// Inject kinetic energy: drift must become positive and stick at
	// its maximum.
	w.Bases[0].Vel = vec3.Vec{X: 500}
	m.Observe(w, 1)
	peak := m.Value()
	if peak <= 0 {
		t.Fatal("expected positive drift after energy injection")
	}

	w.Bases[0].Vel = vec3.Vec{}
	m.Observe(w, 2)
	if m.Value() != peak {
		t.Errorf("drift is a running maximum: got %e, want %e", m.Value(), peak)
	}
}

func TestMomentumDrift(t *testing.T) {
	w, _ := world.New(2)
	w.Fill(5)
	m := NewMomentumDrift()

	m.Observe(w, 0)
	if m.Value() != 0 {
		t.Errorf("resting world has zero momentum, got %e", m.Value())
	}

	w.Sugars[0].Vel = vec3.Vec{X: 1}
	m.Observe(w, 1)
	want := world.MassSugar * 1 / 2
	if math.Abs(m.Value()-want)/want > 1e-15 {
		t.Errorf("momentum per monomer: got %e, want %e", m.Value(), want)
	}
}
