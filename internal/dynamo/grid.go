package dynamo

import (
	"fmt"
	"math"
)

// GridSize returns the number of points 0, dt, 2dt, ... strictly below
// duration. It starts from ceil(duration/dt) and corrects the rounding of
// the division so that (n-1)*dt < duration always holds; the next point
// (n-1)*dt+dt reaches duration up to one ulp.
func GridSize(dt, duration float64, maxSteps int) (int, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return 0, fmt.Errorf("%w: step size must be positive and finite, got %v", ErrInvalidParameter, dt)
	}
	if math.IsNaN(duration) {
		return 0, fmt.Errorf("%w: horizon is NaN", ErrInvalidParameter)
	}
	if duration <= 0 {
		return 0, nil
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	q := math.Ceil(duration / dt)
	if math.IsInf(q, 0) || q > float64(maxSteps)+1 {
		return 0, fmt.Errorf("%w: %v/%v needs more than %d points", ErrResourceLimit, duration, dt, maxSteps)
	}

	n := int(q)
	for float64(n)*dt < duration {
		n++
	}
	for n > 1 && float64(n-1)*dt >= duration {
		n--
	}
	if n > maxSteps {
		return 0, fmt.Errorf("%w: %d points requested, limit %d", ErrResourceLimit, n, maxSteps)
	}
	return n, nil
}
