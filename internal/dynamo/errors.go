package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a step size or horizon that cannot form a grid.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrUndefinedCapacity indicates a carrying capacity of zero.
	ErrUndefinedCapacity = errors.New("dynamo: carrying capacity must be non-zero")

	// ErrResourceLimit indicates the time grid exceeds the configured step cap.
	ErrResourceLimit = errors.New("dynamo: time grid exceeds step limit")

	// ErrDimensionMismatch indicates an initial state that does not fit the system.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)
