package growth

import "math"

// Trajectory is an index-aligned pair of sequences: Values[i] is the state
// at Times[i] = i*h.
type Trajectory struct {
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

func (t *Trajectory) Len() int { return len(t.Times) }

// Head returns the first n points, or the whole trajectory when it is
// shorter. The slices share storage with t.
func (t *Trajectory) Head(n int) *Trajectory {
	if n < 0 {
		n = 0
	}
	if n > len(t.Times) {
		n = len(t.Times)
	}
	return &Trajectory{Times: t.Times[:n], Values: t.Values[:n]}
}

// Final returns the last value, or NaN for an empty trajectory.
func (t *Trajectory) Final() float64 {
	if len(t.Values) == 0 {
		return math.NaN()
	}
	return t.Values[len(t.Values)-1]
}

// FirstNonFinite returns the index of the first NaN or Inf value, or -1.
func (t *Trajectory) FirstNonFinite() int {
	for i, v := range t.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
