package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/netgrowth/internal/compare"
	"github.com/san-kum/netgrowth/internal/growth"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes one line per compared year.
func WriteCSV(w io.Writer, r *compare.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "observed", "simulated", "abs_error"}); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := []string{
			strconv.Itoa(row.Year),
			formatFloat(row.Observed),
			formatFloat(row.Simulated),
			formatFloat(row.AbsError),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTrajectoryCSV writes the grid times and values, with the closed-form
// solution alongside when it is defined.
func WriteTrajectoryCSV(w io.Writer, traj *growth.Trajectory, p growth.Params) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "value", "analytic"}); err != nil {
		return err
	}
	for i := range traj.Times {
		rec := []string{
			formatFloat(traj.Times[i]),
			formatFloat(traj.Values[i]),
			formatFloat(growth.Analytic(p.U0, p.R, p.K, traj.Times[i])),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
