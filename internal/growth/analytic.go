package growth

import "math"

// Analytic is the closed-form solution of the logistic equation,
//
//	U(t) = K / (1 + ((K - U0)/U0) e^{-rt})
//
// used as a reference for the Euler error. U0 == 0 stays at 0.
func Analytic(u0, r, k, t float64) float64 {
	if u0 == 0 {
		return 0
	}
	return k / (1 + ((k-u0)/u0)*math.Exp(-r*t))
}

// GlobalError is the largest absolute difference between traj and the
// closed-form solution over the trajectory's grid.
func GlobalError(traj *Trajectory, u0, r, k float64) float64 {
	worst := 0.0
	for i, t := range traj.Times {
		worst = math.Max(worst, math.Abs(traj.Values[i]-Analytic(u0, r, k, t)))
	}
	return worst
}
