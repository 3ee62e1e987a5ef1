package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/netgrowth/internal/dynamo"
)

type decay struct{ k float64 }

func (d *decay) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{-d.k * x[0]}
}
func (d *decay) StateDim() int { return 1 }

type oscillator struct{}

func (o *oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}
func (o *oscillator) StateDim() int { return 2 }

func TestEulerStep(t *testing.T) {
	integ := NewEuler()
	x := dynamo.State{2.0}

	got := integ.Step(&decay{k: 0.5}, x, 0, 0.1)
	if want := 2.0 + 0.1*(-0.5*2.0); got[0] != want {
		t.Errorf("Step = %v, want %v", got[0], want)
	}
	if x[0] != 2.0 {
		t.Error("Step mutated its input state")
	}
}

func TestEulerFirstOrder(t *testing.T) {
	integ := NewEuler()
	sys := &decay{k: 1}

	errAt := func(dt float64) float64 {
		x := dynamo.State{1.0}
		steps := int(math.Round(1 / dt))
		for i := 0; i < steps; i++ {
			x = integ.Step(sys, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Exp(-1))
	}

	// halving dt should roughly halve the global error
	ratio := errAt(0.01) / errAt(0.005)
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("error ratio %.3f, expected about 2 for a first-order method", ratio)
	}
}

func TestEulerVectorState(t *testing.T) {
	integ := NewEuler()
	x := integ.Step(&oscillator{}, dynamo.State{1.0, 0.0}, 0, 0.1)
	if x[0] != 1.0 || x[1] != -0.1 {
		t.Errorf("Step = %v, want [1 -0.1]", x)
	}
}
