// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Simulator]: walks a fixed time grid from an initial state
//
// # Example
//
//	sys, _ := physics.NewLogistic(0.1, 10000)
//	s := dynamo.New(sys, integrators.NewEuler())
//	result, err := s.Run(dynamo.State{1000}, dynamo.Config{Dt: 1, Duration: 5})
//
// # Time Grid
//
// The grid is 0, dt, 2dt, ... strictly below Duration. A non-positive
// Duration yields an empty grid rather than an error.
//
// # Thread Safety
//
// A Simulator holds no mutable state between runs, so a single instance may
// be shared by concurrent callers as long as its System and Integrator are
// themselves stateless.
package dynamo
