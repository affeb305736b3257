package vec3

import (
	"math"
	"testing"
)

func TestBasicOps(t *testing.T) {
	a := Vec{1, 2, 3}
	b := Vec{4, -5, 6}

	if got := a.Add(b); got != (Vec{5, -3, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec{-3, 7, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 4-10+18 {
		t.Errorf("Dot: got %f", got)
	}
}

func TestLengthAndDistance(t *testing.T) {
	v := Vec{3, 4, 0}
	if v.Length() != 5 {
		t.Errorf("Length: got %f", v.Length())
	}
	if v.Length2() != 25 {
		t.Errorf("Length2: got %f", v.Length2())
	}
	if d := Distance(Vec{1, 0, 0}, Vec{1, 0, 7}); d != 7 {
		t.Errorf("Distance: got %f", d)
	}
}

func TestCrossRightHanded(t *testing.T) {
	got := Vec{1, 0, 0}.Cross(Vec{0, 1, 0})
	if got != (Vec{0, 0, 1}) {
		t.Errorf("expected e_x x e_y = e_z, got %v", got)
	}
}

func TestAngle(t *testing.T) {
	if a := Angle(Vec{1, 0, 0}, Vec{0, 1, 0}); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("expected pi/2, got %f", a)
	}
	if a := Angle(Vec{1, 0, 0}, Vec{-2, 0, 0}); math.Abs(a-math.Pi) > 1e-12 {
		t.Errorf("expected pi, got %f", a)
	}
	// Parallel vectors whose cosine rounds past 1 must not produce NaN.
	v := Vec{1, 1, 1}
	if a := Angle(v, v.Scale(3)); math.IsNaN(a) || a > 1e-7 {
		t.Errorf("expected ~0, got %f", a)
	}
}

func TestDihedral(t *testing.T) {
	// Four points with a known 90 degree twist:
	// p1=(1,0,0) p2=(0,0,0) p3=(0,0,1) p4=(0,1,1)
	r1 := Vec{-1, 0, 0}
	r2 := Vec{0, 0, 1}
	r3 := Vec{0, 1, 0}

	phi := Dihedral(r1, r2, r3)
	if math.Abs(math.Abs(phi)-math.Pi/2) > 1e-12 {
		t.Errorf("expected |phi| = pi/2, got %f", phi)
	}

	// Planar cis configuration has phi = 0.
	phi = Dihedral(Vec{-1, 0, 0}, Vec{0, 0, 1}, Vec{1, 0, 0})
	if math.Abs(phi) > 1e-12 {
		t.Errorf("expected 0 for cis, got %f", phi)
	}

	// Planar trans configuration has |phi| = pi.
	phi = Dihedral(Vec{-1, 0, 0}, Vec{0, 0, 1}, Vec{-1, 0, 0})
	if math.Abs(math.Abs(phi)-math.Pi) > 1e-12 {
		t.Errorf("expected pi for trans, got %f", phi)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}
