// Package metrics scores a simulated series against observations.
package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrLengthMismatch = errors.New("metrics: observed and simulated lengths differ")

// Metric accumulates one error statistic over aligned pairs.
type Metric interface {
	Name() string
	Observe(observed, simulated float64)
	Value() float64
	Reset()
}

type MSE struct {
	sum     float64
	samples int
}

func NewMSE() *MSE { return &MSE{} }

func (m *MSE) Name() string { return "mse" }

func (m *MSE) Observe(observed, simulated float64) {
	d := observed - simulated
	m.sum += d * d
	m.samples++
}

func (m *MSE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MSE) Reset() {
	m.sum = 0
	m.samples = 0
}

type MAE struct {
	sum     float64
	samples int
}

func NewMAE() *MAE { return &MAE{} }

func (m *MAE) Name() string { return "mae" }

func (m *MAE) Observe(observed, simulated float64) {
	m.sum += math.Abs(observed - simulated)
	m.samples++
}

func (m *MAE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MAE) Reset() {
	m.sum = 0
	m.samples = 0
}

// RMSE is the square root of MSE.
type RMSE struct {
	mse MSE
}

func NewRMSE() *RMSE { return &RMSE{} }

func (m *RMSE) Name() string                        { return "rmse" }
func (m *RMSE) Observe(observed, simulated float64) { m.mse.Observe(observed, simulated) }
func (m *RMSE) Value() float64                      { return math.Sqrt(m.mse.Value()) }
func (m *RMSE) Reset()                              { m.mse.Reset() }

// Defaults returns fresh MSE, MAE and RMSE accumulators.
func Defaults() []Metric {
	return []Metric{NewMSE(), NewMAE(), NewRMSE()}
}

// Summary is the error report for one comparison.
type Summary struct {
	N    int     `json:"n"`
	MSE  float64 `json:"mse"`
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	// R2 is the coefficient of determination; NaN when observations are constant.
	R2 float64 `json:"r2"`
	// MaxAbs is the largest absolute residual.
	MaxAbs float64 `json:"max_abs"`
}

// Compare scores equal-length observed and simulated slices.
func Compare(observed, simulated []float64) (Summary, error) {
	if len(observed) != len(simulated) {
		return Summary{}, ErrLengthMismatch
	}
	s := Summary{N: len(observed), R2: math.NaN()}
	if s.N == 0 {
		return s, nil
	}

	ms := Defaults()
	for i := range observed {
		for _, m := range ms {
			m.Observe(observed[i], simulated[i])
		}
	}
	s.MSE, s.MAE, s.RMSE = ms[0].Value(), ms[1].Value(), ms[2].Value()

	residuals := make([]float64, s.N)
	floats.SubTo(residuals, observed, simulated)
	s.MaxAbs = math.Max(math.Abs(floats.Max(residuals)), math.Abs(floats.Min(residuals)))

	if stat.Variance(observed, nil) > 0 {
		s.R2 = stat.RSquaredFrom(simulated, observed, nil)
	}
	return s, nil
}
