package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/strandsim/internal/sim"
)

func testModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(sim.Config{NumMonomers: 2, TimeStep: 1e-15, Seed: 3}, 1)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestViewRendersAfterQuitKey(t *testing.T) {
	m := testModel(t)
	defer m.Close()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}

	// bubbletea renders one final frame after Quit; the world must still
	// be readable at that point.
	view := updated.(Model).View()
	if strings.Contains(view, "NaN") {
		t.Errorf("final frame contains NaN:\n%s", view)
	}
}

func TestCloseReleasesOnce(t *testing.T) {
	m := testModel(t)

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Close(); !errors.Is(err, sim.ErrReleased) {
		t.Errorf("second Close: expected ErrReleased, got %v", err)
	}
}

func TestPauseTogglesStepping(t *testing.T) {
	m := testModel(t)
	defer m.Close()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	paused := updated.(Model)
	if paused.running {
		t.Fatal("space should pause")
	}

	before := paused.s.Time()
	ticked, _ := paused.Update(TickMsg{})
	if got := ticked.(Model).s.Time(); got != before {
		t.Errorf("paused model advanced the clock: %e -> %e", before, got)
	}
}
