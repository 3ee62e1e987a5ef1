package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/netgrowth/internal/dynamo"
)

// Logistic implements the logistic growth equation.
// State: [U]
// Equation:
//
//	dU/dt = rU(1 - U/K)
type Logistic struct {
	r float64 // growth rate, any sign
	k float64 // carrying capacity, non-zero
}

func NewLogistic(r, k float64) (*Logistic, error) {
	if k == 0 {
		return nil, fmt.Errorf("%w: K = 0", dynamo.ErrUndefinedCapacity)
	}
	if math.IsNaN(k) {
		return nil, fmt.Errorf("%w: K is NaN", dynamo.ErrInvalidParameter)
	}
	return &Logistic{r: r, k: k}, nil
}

func (l *Logistic) StateDim() int { return 1 }

func (l *Logistic) Derive(s dynamo.State, _ float64) dynamo.State {
	u := s[0]
	return dynamo.State{l.r * u * (1 - u/l.k)}
}
