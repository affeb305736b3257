package world

import (
	"errors"
	"math"
	"testing"
)

func TestNewPartitionsStorage(t *testing.T) {
	w, err := New(5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(w.All()) != 15 {
		t.Errorf("expected 15 particles, got %d", len(w.All()))
	}
	if len(w.Sugars) != 5 || len(w.Bases) != 5 || len(w.Phosphates) != 5 {
		t.Error("sublists must each have length n")
	}

	// The three views must alias the backing store.
	w.Sugars[2].Mass = 42
	if w.All()[2].Mass != 42 {
		t.Error("Sugars does not alias the backing slice")
	}
	w.Phosphates[0].Mass = 7
	if w.All()[10].Mass != 7 {
		t.Error("Phosphates does not alias the backing slice")
	}
}

func TestNewRejectsBadCounts(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := New(n); !errors.Is(err, ErrBadMonomerCount) {
			t.Errorf("New(%d): expected ErrBadMonomerCount, got %v", n, err)
		}
	}
}

func TestNewRejectsOverflowingCounts(t *testing.T) {
	// 3*n must not wrap; the slice allocation would panic otherwise.
	for _, n := range []int{math.MaxInt/3 + 1, math.MaxInt} {
		if _, err := New(n); !errors.Is(err, ErrBadMonomerCount) {
			t.Errorf("New(%d): expected ErrBadMonomerCount, got %v", n, err)
		}
	}
}

func TestAllocateReleaseCycle(t *testing.T) {
	for _, n := range []int{1, 2, 100} {
		w, err := New(n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		w.Fill(1)
		if err := w.Release(); err != nil {
			t.Fatalf("Release after New(%d): %v", n, err)
		}
		if !w.Released() {
			t.Error("Released() should be true after Release")
		}
		if err := w.Release(); !errors.Is(err, ErrReleased) {
			t.Errorf("double Release: expected ErrReleased, got %v", err)
		}
	}
}

func TestFillGeometry(t *testing.T) {
	w, _ := New(4)
	w.Fill(42)

	// Jitter stdev is Spacing/100, so distances stay near equilibrium.
	tol := Spacing / 10

	for i := 0; i < 4; i++ {
		if d := w.Sugars[i].Pos.Sub(w.Bases[i].Pos).Length(); math.Abs(d-BondSB) > tol {
			t.Errorf("monomer %d: sugar-base distance %e, want ~%e", i, d, BondSB)
		}
		if d := w.Sugars[i].Pos.Sub(w.Phosphates[i].Pos).Length(); math.Abs(d-BondS5P) > tol {
			t.Errorf("monomer %d: sugar-phosphate distance %e, want ~%e", i, d, BondS5P)
		}
		if i > 0 {
			if d := w.Sugars[i].Pos.Sub(w.Phosphates[i-1].Pos).Length(); math.Abs(d-BondS3P) > tol {
				t.Errorf("monomer %d: sugar-prev-phosphate distance %e, want ~%e", i, d, BondS3P)
			}
		}
	}
}

func TestFillAssignsMassesAndZeroVelocity(t *testing.T) {
	w, _ := New(3)
	w.Fill(7)

	for i := 0; i < 3; i++ {
		if w.Sugars[i].Mass != MassSugar {
			t.Errorf("sugar %d mass = %e", i, w.Sugars[i].Mass)
		}
		if w.Bases[i].Mass != MassBase {
			t.Errorf("base %d mass = %e", i, w.Bases[i].Mass)
		}
		if w.Phosphates[i].Mass != MassPhosphate {
			t.Errorf("phosphate %d mass = %e", i, w.Phosphates[i].Mass)
		}
	}
	for i, p := range w.All() {
		if p.Vel.Length() != 0 {
			t.Errorf("particle %d has non-zero initial velocity %v", i, p.Vel)
		}
	}
}

func TestFillDeterministicPerSeed(t *testing.T) {
	a, _ := New(6)
	b, _ := New(6)
	c, _ := New(6)
	a.Fill(99)
	b.Fill(99)
	c.Fill(100)

	for i := range a.All() {
		if a.All()[i].Pos != b.All()[i].Pos {
			t.Fatalf("same seed produced different layouts at particle %d", i)
		}
	}

	same := true
	for i := range a.All() {
		if a.All()[i].Pos != c.All()[i].Pos {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}
