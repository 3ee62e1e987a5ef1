package growth

import (
	"errors"
	"math"
	"testing"
)

func TestSimulateScenario(t *testing.T) {
	traj, err := Simulate(1000, 0.1, 10000, 1, 5)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	wantTimes := []float64{0, 1, 2, 3, 4}
	if traj.Len() != len(wantTimes) {
		t.Fatalf("expected %d points, got %d", len(wantTimes), traj.Len())
	}
	for i, w := range wantTimes {
		if traj.Times[i] != w {
			t.Errorf("Times[%d] = %v, want %v", i, traj.Times[i], w)
		}
	}

	wantValues := []float64{1000, 1090, 1187.119, 1291.73838479839, 1404.2263427306134}
	for i, w := range wantValues {
		if math.Abs(traj.Values[i]-w) > 1e-9 {
			t.Errorf("Values[%d] = %.12f, want %.12f", i, traj.Values[i], w)
		}
	}

	u := 1000.0
	for i := 1; i < traj.Len(); i++ {
		u = u + 1*(0.1*u*(1-u/10000))
		if traj.Values[i] != u {
			t.Errorf("Values[%d] = %v, recurrence gives %v", i, traj.Values[i], u)
		}
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"zero capacity", Params{U0: 1, R: 0.1, K: 0, H: 0.1, Horizon: 10}, ErrUndefinedCapacity},
		{"zero capacity empty horizon", Params{U0: 1, R: 0.1, K: 0, H: 0.1, Horizon: 0}, ErrUndefinedCapacity},
		{"zero step", Params{U0: 1, R: 0.1, K: 100, H: 0, Horizon: 10}, ErrInvalidParameter},
		{"negative step", Params{U0: 1, R: 0.1, K: 100, H: -0.5, Horizon: 10}, ErrInvalidParameter},
		{"nan step", Params{U0: 1, R: 0.1, K: 100, H: math.NaN(), Horizon: 10}, ErrInvalidParameter},
		{"infinite step", Params{U0: 1, R: 0.1, K: 100, H: math.Inf(1), Horizon: 10}, ErrInvalidParameter},
		{"nan capacity", Params{U0: 1, R: 0.1, K: math.NaN(), H: 0.1, Horizon: 10}, ErrInvalidParameter},
		{"nan horizon", Params{U0: 1, R: 0.1, K: 100, H: 0.1, Horizon: math.NaN()}, ErrInvalidParameter},
		{"infinite horizon", Params{U0: 1, R: 0.1, K: 100, H: 0.1, Horizon: math.Inf(1)}, ErrResourceLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traj, err := Simulate(tt.p.U0, tt.p.R, tt.p.K, tt.p.H, tt.p.Horizon)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if traj != nil {
				t.Error("expected no trajectory on error")
			}
		})
	}
}

func TestSimulatorStepCap(t *testing.T) {
	s := NewSimulator(100)

	if _, err := s.Run(Params{U0: 1, R: 0.1, K: 100, H: 0.1, Horizon: 10}); err != nil {
		t.Errorf("100 points should fit a cap of 100: %v", err)
	}
	if _, err := s.Run(Params{U0: 1, R: 0.1, K: 100, H: 0.1, Horizon: 10.05}); !errors.Is(err, ErrResourceLimit) {
		t.Errorf("expected ErrResourceLimit, got %v", err)
	}
	if NewSimulator(0).MaxSteps() <= 0 {
		t.Error("default simulator has no step cap")
	}
}

func TestSimulateEmptyHorizon(t *testing.T) {
	for _, horizon := range []float64{0, -1, math.Inf(-1)} {
		traj, err := Simulate(5, 0.1, 100, 0.1, horizon)
		if err != nil {
			t.Fatalf("horizon %v: %v", horizon, err)
		}
		if traj.Len() != 0 || len(traj.Values) != 0 {
			t.Errorf("horizon %v: expected empty trajectory, got %d points", horizon, traj.Len())
		}
	}
}

func TestSimulateSinglePoint(t *testing.T) {
	traj, err := Simulate(7, 0.5, 100, 1, 0.5)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if traj.Len() != 1 || traj.Times[0] != 0 || traj.Values[0] != 7 {
		t.Errorf("expected single initial point, got %+v", traj)
	}
}

func TestSimulateDegenerateInitialValues(t *testing.T) {
	// no clamping: above capacity decays toward K, negative values run away
	above, err := Simulate(200, 0.1, 100, 0.1, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < above.Len(); i++ {
		if above.Values[i] >= above.Values[i-1] || above.Values[i] < 100 {
			t.Fatalf("U0 > K: Values[%d] = %v after %v", i, above.Values[i], above.Values[i-1])
		}
	}

	negative, err := Simulate(-1, 0.1, 100, 0.1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if negative.Final() >= -1 {
		t.Errorf("U0 < 0: expected the trajectory to fall further, final %v", negative.Final())
	}
}

func TestSimulateNegativeRate(t *testing.T) {
	traj, err := Simulate(50, -0.2, 100, 0.1, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < traj.Len(); i++ {
		if traj.Values[i] >= traj.Values[i-1] {
			t.Fatalf("r < 0: Values[%d] = %v did not decrease", i, traj.Values[i])
		}
	}
}

func TestSimulateNonFinitePropagates(t *testing.T) {
	traj, err := Simulate(1e200, 10, 1, 1, 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	idx := traj.FirstNonFinite()
	if idx < 0 {
		t.Fatal("expected the trajectory to overflow")
	}
	for i := idx; i < traj.Len(); i++ {
		if !math.IsNaN(traj.Values[i]) && !math.IsInf(traj.Values[i], 0) {
			t.Errorf("Values[%d] = %v after overflow at %d", i, traj.Values[i], idx)
		}
	}
}

func TestSimulateConvergesToAnalytic(t *testing.T) {
	errAt := func(h float64) float64 {
		traj, err := Simulate(1, 0.5, 100, h, 10)
		if err != nil {
			t.Fatal(err)
		}
		return GlobalError(traj, 1, 0.5, 100)
	}

	coarse, fine := errAt(0.02), errAt(0.01)
	if ratio := coarse / fine; ratio < 1.7 || ratio > 2.3 {
		t.Errorf("error ratio %.3f, expected about 2", ratio)
	}
}

func TestAnalytic(t *testing.T) {
	if got := Analytic(10, 0.3, 100, 0); math.Abs(got-10) > 1e-12 {
		t.Errorf("Analytic at t=0 = %v, want 10", got)
	}
	if got := Analytic(10, 0.3, 100, 200); math.Abs(got-100) > 1e-9 {
		t.Errorf("Analytic at large t = %v, want 100", got)
	}
	if got := Analytic(0, 0.3, 100, 5); got != 0 {
		t.Errorf("Analytic from zero = %v, want 0", got)
	}
}

func TestTrajectoryHead(t *testing.T) {
	traj := &Trajectory{Times: []float64{0, 1, 2}, Values: []float64{5, 6, 7}}

	if h := traj.Head(2); h.Len() != 2 || h.Values[1] != 6 {
		t.Errorf("Head(2) = %+v", h)
	}
	if h := traj.Head(10); h.Len() != 3 {
		t.Errorf("Head(10) length = %d, want 3", h.Len())
	}
	if h := traj.Head(-1); h.Len() != 0 {
		t.Errorf("Head(-1) length = %d, want 0", h.Len())
	}
	if !math.IsNaN((&Trajectory{}).Final()) {
		t.Error("Final of empty trajectory should be NaN")
	}
}

func TestStability(t *testing.T) {
	tests := []struct {
		r, h float64
		want StepRegime
	}{
		{0.1, 0.1, Monotone},
		{1, 1, Monotone},
		{1.5, 1, Oscillatory},
		{1, 2, Unstable},
		{3, 1, Unstable},
		{0, 1, Decay},
		{-0.2, 0.5, Decay},
	}

	for _, tt := range tests {
		if got := Stability(tt.r, tt.h); got != tt.want {
			t.Errorf("Stability(%v, %v) = %v, want %v", tt.r, tt.h, got, tt.want)
		}
	}
}
