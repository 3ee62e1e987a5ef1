package growth

import (
	"fmt"
	"math"

	"github.com/san-kum/netgrowth/internal/dynamo"
	"github.com/san-kum/netgrowth/internal/integrators"
	"github.com/san-kum/netgrowth/internal/physics"
)

var (
	ErrInvalidParameter  = dynamo.ErrInvalidParameter
	ErrUndefinedCapacity = dynamo.ErrUndefinedCapacity
	ErrResourceLimit     = dynamo.ErrResourceLimit
)

// Params is one simulation request.
type Params struct {
	U0      float64 `json:"u0" yaml:"u0"`
	R       float64 `json:"r" yaml:"r"`
	K       float64 `json:"k" yaml:"k"`
	H       float64 `json:"h" yaml:"h"`
	Horizon float64 `json:"horizon" yaml:"horizon"`
}

// Validate reports the first parameter that makes the model or the grid
// undefined. It does not check the grid size against a step cap.
func (p Params) Validate() error {
	if math.IsNaN(p.H) || math.IsInf(p.H, 0) || p.H <= 0 {
		return fmt.Errorf("%w: step size must be positive and finite, got %v", ErrInvalidParameter, p.H)
	}
	if p.K == 0 {
		return fmt.Errorf("%w: K = 0", ErrUndefinedCapacity)
	}
	if math.IsNaN(p.K) {
		return fmt.Errorf("%w: K is NaN", ErrInvalidParameter)
	}
	if math.IsNaN(p.Horizon) {
		return fmt.Errorf("%w: horizon is NaN", ErrInvalidParameter)
	}
	return nil
}

// Simulator runs logistic simulations under a step cap.
type Simulator struct {
	maxSteps int
}

// NewSimulator returns a Simulator allowing at most maxSteps grid points;
// maxSteps <= 0 selects dynamo.DefaultMaxSteps.
func NewSimulator(maxSteps int) *Simulator {
	if maxSteps <= 0 {
		maxSteps = dynamo.DefaultMaxSteps
	}
	return &Simulator{maxSteps: maxSteps}
}

func (s *Simulator) MaxSteps() int { return s.maxSteps }

// Run integrates p and returns the full trajectory, or an error and no
// trajectory.
func (s *Simulator) Run(p Params) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sys, err := physics.NewLogistic(p.R, p.K)
	if err != nil {
		return nil, err
	}

	result, err := dynamo.New(sys, integrators.NewEuler()).Run(dynamo.State{p.U0}, dynamo.Config{
		Dt:       p.H,
		Duration: p.Horizon,
		MaxSteps: s.maxSteps,
	})
	if err != nil {
		return nil, err
	}

	traj := &Trajectory{
		Times:  result.Times,
		Values: make([]float64, len(result.States)),
	}
	for i, x := range result.States {
		traj.Values[i] = x[0]
	}
	return traj, nil
}

var defaultSimulator = NewSimulator(0)

// Simulate integrates dU/dt = rU(1 - U/K) from U(0) = u0 with step h over
// [0, horizon) using the default step cap.
func Simulate(u0, r, k, h, horizon float64) (*Trajectory, error) {
	return defaultSimulator.Run(Params{U0: u0, R: r, K: k, H: h, Horizon: horizon})
}
