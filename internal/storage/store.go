// Package storage persists simulation runs: metadata as json, the energy
// time series as csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/strandsim/internal/sim"
)

var csvHeader = []string{"time", "total", "kinetic", "bond", "angle", "dihedral", "stack", "temperature"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Timestamp      time.Time          `json:"timestamp"`
	Monomers       int                `json:"monomers"`
	TimeStep       float64            `json:"time_step"`
	Steps          int                `json:"steps"`
	ThermostatTau  float64            `json:"thermostat_tau"`
	ThermostatTemp float64            `json:"thermostat_temp"`
	Seed           uint64             `json:"seed"`
	Metrics        map[string]float64 `json:"metrics"`
}

// Save writes one run directory with metadata.json and energies.csv and
// returns the run id.
func (s *Store) Save(cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      time.Now(),
		Monomers:       cfg.NumMonomers,
		TimeStep:       cfg.TimeStep,
		Steps:          result.StepsTaken,
		ThermostatTau:  cfg.ThermostatTau,
		ThermostatTemp: cfg.ThermostatTemp,
		Seed:           cfg.Seed,
		Metrics:        result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "energies.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, smp := range result.Samples {
		row := []string{
			formatFloat(smp.Time),
			formatFloat(smp.Total),
			formatFloat(smp.Kinetic),
			formatFloat(smp.Bond),
			formatFloat(smp.Angle),
			formatFloat(smp.Dihedral),
			formatFloat(smp.Stack),
			formatFloat(smp.Temperature),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads the stored energy series back.
func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "energies.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("storage: malformed row in %s: %v", runID, rec)
		}
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q in %s: %w", field, runID, err)
			}
			vals[i] = v
		}
		samples = append(samples, sim.Sample{
			Time:        vals[0],
			Total:       vals[1],
			Kinetic:     vals[2],
			Bond:        vals[3],
			Angle:       vals[4],
			Dihedral:    vals[5],
			Stack:       vals[6],
			Temperature: vals[7],
		})
	}
	return samples, nil
}
