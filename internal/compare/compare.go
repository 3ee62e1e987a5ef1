// Package compare runs the logistic model against an observed series and
// reports how well it fits.
package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/netgrowth/internal/dataset"
	"github.com/san-kum/netgrowth/internal/growth"
	"github.com/san-kum/netgrowth/internal/metrics"
)

var ErrNoOverlap = errors.New("compare: simulation and observations do not overlap")

// Row pairs one observation with the simulated value at the same index.
type Row struct {
	Year      int     `json:"year"`
	Observed  float64 `json:"observed"`
	Simulated float64 `json:"simulated"`
	AbsError  float64 `json:"abs_error"`
}

type Report struct {
	Entity     string             `json:"entity"`
	Params     growth.Params      `json:"params"`
	Regime     string             `json:"regime"`
	Rows       []Row              `json:"rows"`
	Summary    metrics.Summary    `json:"summary"`
	Trajectory *growth.Trajectory `json:"-"`
	// Diverged is the first trajectory index holding NaN or Inf, or -1.
	Diverged int `json:"diverged"`
}

// Evaluator runs comparisons with a fixed simulator.
type Evaluator struct {
	sim *growth.Simulator
}

func NewEvaluator(sim *growth.Simulator) *Evaluator {
	if sim == nil {
		sim = growth.NewSimulator(0)
	}
	return &Evaluator{sim: sim}
}

// Evaluate simulates p and aligns the trajectory with series from index
// zero over the shorter of the two.
func (e *Evaluator) Evaluate(series *dataset.Series, p growth.Params) (*Report, error) {
	traj, err := e.sim.Run(p)
	if err != nil {
		return nil, err
	}

	n := min(traj.Len(), series.Len())
	if n == 0 {
		return nil, fmt.Errorf("%w: %d simulated, %d observed", ErrNoOverlap, traj.Len(), series.Len())
	}

	report := &Report{
		Entity:     series.Entity,
		Params:     p,
		Regime:     growth.Stability(p.R, p.H).String(),
		Rows:       make([]Row, n),
		Trajectory: traj,
		Diverged:   traj.FirstNonFinite(),
	}

	for i := 0; i < n; i++ {
		report.Rows[i] = Row{
			Year:      series.Years[i],
			Observed:  series.Counts[i],
			Simulated: traj.Values[i],
			AbsError:  math.Abs(series.Counts[i] - traj.Values[i]),
		}
	}

	report.Summary, err = metrics.Compare(series.Counts[:n], traj.Values[:n])
	if err != nil {
		return nil, err
	}
	return report, nil
}

func Evaluate(series *dataset.Series, p growth.Params) (*Report, error) {
	return NewEvaluator(nil).Evaluate(series, p)
}

// Observed returns the compared observations in order.
func (r *Report) Observed() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Observed
	}
	return out
}

// Simulated returns the compared simulated values in order.
func (r *Report) Simulated() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Simulated
	}
	return out
}

// Years returns the compared years in order.
func (r *Report) Years() []int {
	out := make([]int, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Year
	}
	return out
}
