package storage

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/strandsim/internal/sim"
)

func testResult() (sim.Config, *sim.Result) {
	cfg := sim.Config{
		NumMonomers:    4,
		TimeStep:       1e-15,
		ThermostatTau:  1e-13,
		ThermostatTemp: 300,
		Seed:           7,
	}
	result := &sim.Result{
		Samples: []sim.Sample{
			{Time: 0, Total: 1.5, Kinetic: 0.5, Bond: 0.1, Angle: 0.2, Dihedral: 0.3, Stack: 0.4, Temperature: 290},
			{Time: 1e-13, Total: 1.5001, Kinetic: 0.49, Bond: 0.11, Angle: 0.2, Dihedral: 0.3, Stack: 0.4, Temperature: 305},
		},
		Metrics:    map[string]float64{"temperature_avg": 297.5},
		StepsTaken: 100,
	}
	return cfg, result
}

func TestSaveAndLoad(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "runs"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, result := testResult()
	runID, err := store.Save(cfg, result)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID {
		t.Errorf("id mismatch: %s vs %s", meta.ID, runID)
	}
	if meta.Monomers != cfg.NumMonomers || meta.Seed != cfg.Seed {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Steps != result.StepsTaken {
		t.Errorf("steps = %d, want %d", meta.Steps, result.StepsTaken)
	}
	if got := meta.Metrics["temperature_avg"]; got != 297.5 {
		t.Errorf("metric round trip: got %f", got)
	}
}

func TestLoadSamples(t *testing.T) {
	store := New(t.TempDir())

	cfg, result := testResult()
	runID, err := store.Save(cfg, result)
	if err != nil {
		t.Fatal(err)
	}

	samples, err := store.LoadSamples(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != len(result.Samples) {
		t.Fatalf("got %d samples, want %d", len(samples), len(result.Samples))
	}
	for i, got := range samples {
		want := result.Samples[i]
		if math.Abs(got.Total-want.Total) > 1e-4*math.Abs(want.Total) {
			t.Errorf("sample %d total: got %e, want %e", i, got.Total, want.Total)
		}
		if math.Abs(got.Temperature-want.Temperature) > 1e-4*want.Temperature {
			t.Errorf("sample %d temperature: got %e, want %e", i, got.Temperature, want.Temperature)
		}
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}

	cfg, result := testResult()
	if _, err := store.Save(cfg, result); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(cfg, result); err != nil {
		t.Fatal(err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("run_0"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := store.LoadSamples("run_0"); err == nil {
		t.Error("expected error for unknown run")
	}
}
