// Package growth simulates logistic growth with the forward Euler method.
//
// [Simulate] is the entry point: given an initial value, a growth rate, a
// carrying capacity, a step size and a horizon it returns the trajectory
// on the grid 0, h, 2h, ... strictly below the horizon, where
//
//	U[0] = U0
//	U[i] = U[i-1] + h*(r*U[i-1]*(1 - U[i-1]/K))
//
// Calls are pure: no I/O, no shared state, identical inputs give
// bit-identical outputs.
//
// # Errors
//
//   - K == 0 fails with [ErrUndefinedCapacity]
//   - h <= 0, non-finite h, NaN K or NaN horizon fail with [ErrInvalidParameter]
//   - grids larger than the step cap fail with [ErrResourceLimit]
//
// A horizon <= 0 is not an error: the trajectory is empty. Unstable step
// sizes are not detected as errors either; see [Stability] and
// [Trajectory.FirstNonFinite].
package growth
