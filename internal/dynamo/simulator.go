package dynamo

import "fmt"

type Simulator struct {
	sys        System
	integrator Integrator
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

// Run integrates from x0 over the grid described by cfg. On error no partial
// result is returned. Non-finite states are not an error; they propagate.
func (s *Simulator) Run(x0 State, cfg Config) (*Result, error) {
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}

	steps, err := GridSize(cfg.Dt, cfg.Duration, cfg.MaxSteps)
	if err != nil {
		return nil, err
	}

	result := &Result{
		States: make([]State, 0, steps),
		Times:  make([]float64, 0, steps),
	}
	if steps == 0 {
		return result, nil
	}

	x := x0.Clone()
	result.States = append(result.States, x)
	result.Times = append(result.Times, 0)

	for i := 1; i < steps; i++ {
		t := float64(i-1) * cfg.Dt
		x = s.integrator.Step(s.sys, x, t, cfg.Dt)
		result.States = append(result.States, x)
		result.Times = append(result.Times, float64(i)*cfg.Dt)
	}

	return result, nil
}
