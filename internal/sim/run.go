package sim

import (
	"context"

	"github.com/san-kum/strandsim/internal/metrics"
)

// Result collects the output of a complete run.
type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	StepsTaken int
}

// Run allocates, populates and steps a simulation for the given number of
// steps, sampling the energy diagnostics every sampleEvery steps (every
// step when sampleEvery <= 1). The standard drift metrics are always
// attached. The world is released before returning.
func Run(ctx context.Context, cfg Config, steps, sampleEvery int) (*Result, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Release()

	if err := s.Populate(); err != nil {
		return nil, err
	}

	if sampleEvery < 1 {
		sampleEvery = 1
	}

	ms := []metrics.Metric{
		metrics.NewTemperatureAverage(),
		metrics.NewEnergyDrift(),
		metrics.NewMomentumDrift(),
	}
	for _, m := range ms {
		m.Reset()
		s.AddObserver(m)
	}

	result := &Result{
		Samples: make([]Sample, 0, steps/sampleEvery+1),
		Metrics: make(map[string]float64),
	}
	result.Samples = append(result.Samples, s.Sample())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Step(); err != nil {
			return result, err
		}
		result.StepsTaken++

		if (i+1)%sampleEvery == 0 {
			result.Samples = append(result.Samples, s.Sample())
		}
	}

	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
