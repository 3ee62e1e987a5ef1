// Package physics provides dynamical system models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equation governing the system's evolution:
//
//   - [Logistic]: bounded population growth, dU/dt = rU(1 - U/K)
package physics
