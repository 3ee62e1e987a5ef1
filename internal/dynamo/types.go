package dynamo

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(sys System, x State, t float64, dt float64) State
}

// DefaultMaxSteps caps the number of grid points a single run may allocate.
const DefaultMaxSteps = 10_000_000

type Config struct {
	Dt       float64
	Duration float64
	// MaxSteps bounds the grid size; zero means DefaultMaxSteps.
	MaxSteps int
}

type Result struct {
	States []State
	Times  []float64
}
