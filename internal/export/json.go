package export

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/netgrowth/internal/compare"
	"github.com/san-kum/netgrowth/internal/growth"
)

// number marshals NaN and Inf as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type reportRow struct {
	Year      int    `json:"year"`
	Observed  number `json:"observed"`
	Simulated number `json:"simulated"`
	AbsError  number `json:"abs_error"`
}

type reportSummary struct {
	N      int    `json:"n"`
	MSE    number `json:"mse"`
	MAE    number `json:"mae"`
	RMSE   number `json:"rmse"`
	R2     number `json:"r2"`
	MaxAbs number `json:"max_abs_error"`
}

type reportDoc struct {
	Entity   string        `json:"entity"`
	Params   growth.Params `json:"params"`
	Regime   string        `json:"regime"`
	Diverged int           `json:"diverged"`
	Summary  reportSummary `json:"summary"`
	Rows     []reportRow   `json:"rows"`
}

type trajectoryDoc struct {
	Params      growth.Params `json:"params"`
	Regime      string        `json:"regime"`
	GlobalError number        `json:"global_error"`
	Times       []number      `json:"times"`
	Values      []number      `json:"values"`
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes the report with parameters, summary and rows.
func WriteJSON(w io.Writer, r *compare.Report) error {
	doc := reportDoc{
		Entity:   r.Entity,
		Params:   r.Params,
		Regime:   r.Regime,
		Diverged: r.Diverged,
		Summary: reportSummary{
			N:      r.Summary.N,
			MSE:    number(r.Summary.MSE),
			MAE:    number(r.Summary.MAE),
			RMSE:   number(r.Summary.RMSE),
			R2:     number(r.Summary.R2),
			MaxAbs: number(r.Summary.MaxAbs),
		},
		Rows: make([]reportRow, len(r.Rows)),
	}
	for i, row := range r.Rows {
		doc.Rows[i] = reportRow{
			Year:      row.Year,
			Observed:  number(row.Observed),
			Simulated: number(row.Simulated),
			AbsError:  number(row.AbsError),
		}
	}
	return encode(w, doc)
}

// WriteTrajectoryJSON writes a bare simulation with its closed-form error.
func WriteTrajectoryJSON(w io.Writer, traj *growth.Trajectory, p growth.Params) error {
	doc := trajectoryDoc{
		Params:      p,
		Regime:      growth.Stability(p.R, p.H).String(),
		GlobalError: number(growth.GlobalError(traj, p.U0, p.R, p.K)),
		Times:       make([]number, traj.Len()),
		Values:      make([]number, traj.Len()),
	}
	for i := range traj.Times {
		doc.Times[i] = number(traj.Times[i])
		doc.Values[i] = number(traj.Values[i])
	}
	return encode(w, doc)
}
