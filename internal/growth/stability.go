package growth

// StepRegime classifies the Euler step by the product r*h. Near U = K the
// step multiplies the deviation from K by (1 - r*h).
type StepRegime int

const (
	// Decay covers r*h <= 0: the trajectory moves away from K toward 0 or diverges.
	Decay StepRegime = iota
	// Monotone covers 0 < r*h <= 1: approach to K without overshoot.
	Monotone
	// Oscillatory covers 1 < r*h < 2: overshoot with damped oscillation around K.
	Oscillatory
	// Unstable covers r*h >= 2: oscillation that does not settle, possibly divergent.
	Unstable
)

func (s StepRegime) String() string {
	switch s {
	case Decay:
		return "decay"
	case Monotone:
		return "monotone"
	case Oscillatory:
		return "oscillatory"
	case Unstable:
		return "unstable"
	}
	return "unknown"
}

func Stability(r, h float64) StepRegime {
	rh := r * h
	switch {
	case rh <= 0:
		return Decay
	case rh <= 1:
		return Monotone
	case rh < 2:
		return Oscillatory
	default:
		return Unstable
	}
}
