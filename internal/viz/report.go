package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/netgrowth/internal/compare"
	"github.com/san-kum/netgrowth/internal/growth"
)

// MetricCards renders the MSE, MAE and RMSE of a report side by side.
func MetricCards(r *compare.Report) string {
	card := func(label, value string) string {
		return GlassPanel.Render(MetricLabel.Render(label) + "\n" + MetricValue.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("MSE", Sci(r.Summary.MSE)),
		card("MAE", Sci(r.Summary.MAE)),
		card("RMSE", Sci(r.Summary.RMSE)),
		card("R²", fmt.Sprintf("%.4f", r.Summary.R2)),
	)
}

// plotLimit bounds the magnitudes handed to asciigraph. Its row scaling
// and axis labels break down long before float64 overflows.
const plotLimit = 1e100

func plottablePoint(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= plotLimit
}

// gapped copies values with unplottable points replaced by NaN, which
// asciigraph draws as gaps. ok is false when no point is left.
func gapped(values []float64) (out []float64, ok bool) {
	out = make([]float64, len(values))
	for i, v := range values {
		if plottablePoint(v) {
			out[i] = v
			ok = true
		} else {
			out[i] = math.NaN()
		}
	}
	return out, ok
}

// Chart plots observed and simulated values on one asciigraph. Simulated
// points that are not finite are left out.
func Chart(r *compare.Report, width, height int, theme Theme) string {
	if len(r.Rows) < 2 {
		return Subtle.Render("not enough points to plot")
	}
	observed, ok := gapped(r.Observed())
	if !ok {
		return Subtle.Render("observations cannot be plotted")
	}

	series := [][]float64{observed}
	colors := []asciigraph.AnsiColor{theme.Observed}
	legends := []string{"observed"}
	if simulated, ok := gapped(r.Simulated()); ok {
		series = append(series, simulated)
		colors = append(colors, theme.Simulated)
		legends = append(legends, "euler")
	}

	from, to := r.Rows[0].Year, r.Rows[len(r.Rows)-1].Year
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("%s internet users %d-%d", r.Entity, from, to)),
	)
}

// TrajectoryPlot plots values up to the first point that cannot be drawn.
// It returns "" when fewer than two points remain.
func TrajectoryPlot(values []float64, width, height int) string {
	n := 0
	for n < len(values) && plottablePoint(values[n]) {
		n++
	}
	if n < 2 {
		return ""
	}
	caption := "U(t)"
	if n < len(values) {
		caption = fmt.Sprintf("U(t), first %d of %d steps", n, len(values))
	}
	return asciigraph.Plot(values[:n],
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Table renders the per-year comparison. Values are truncated to whole
// users.
func Table(r *compare.Report) string {
	cols := []string{"YEAR", "OBSERVED", "SIMULATED", "ABS ERROR"}
	cells := make([][]string, len(r.Rows))
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for i, row := range r.Rows {
		cells[i] = []string{
			fmt.Sprint(row.Year),
			Int(row.Observed),
			Int(row.Simulated),
			Int(row.AbsError),
		}
		for j, c := range cells[i] {
			widths[j] = max(widths[j], len(c))
		}
	}

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = fmt.Sprintf("%*s", widths[i], c)
	}
	b.WriteString(HeaderStyle.Render(strings.Join(header, "  ")))
	b.WriteString("\n")
	for _, row := range cells {
		for j, c := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%*s", widths[j], c)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Summary lists the parameters and the fit in a few lines.
func Summary(r *compare.Report) string {
	p := r.Params
	from, to := r.Rows[0].Year, r.Rows[len(r.Rows)-1].Year

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s users\n", MetricLabel.Render("initial value (U0):"), Int(p.U0))
	fmt.Fprintf(&b, "%s %s users\n", MetricLabel.Render("capacity (K):      "), Int(p.K))
	fmt.Fprintf(&b, "%s %g\n", MetricLabel.Render("growth rate (r):   "), p.R)
	fmt.Fprintf(&b, "%s %g (%s)\n", MetricLabel.Render("step size (h):     "), p.H, r.Regime)
	fmt.Fprintf(&b, "%s %d-%d (%d years)\n", MetricLabel.Render("period:            "), from, to, len(r.Rows))
	fmt.Fprintf(&b, "%s %.4e\n", MetricLabel.Render("error (MSE):       "), r.Summary.MSE)
	if w := Warnings(r); w != "" {
		b.WriteString(w)
	}
	return b.String()
}

// Warnings describes numerical trouble in a report, or returns "".
func Warnings(r *compare.Report) string {
	var lines []string
	if r.Diverged >= 0 {
		lines = append(lines, fmt.Sprintf("trajectory is not finite from step %d", r.Diverged))
	}
	switch growth.Stability(r.Params.R, r.Params.H) {
	case growth.Oscillatory:
		lines = append(lines, fmt.Sprintf("r*h = %.3g: euler steps overshoot the capacity", r.Params.R*r.Params.H))
	case growth.Unstable:
		lines = append(lines, fmt.Sprintf("r*h = %.3g: euler steps are unstable", r.Params.R*r.Params.H))
	}
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(Warning.Render("warning: "+l) + "\n")
	}
	return b.String()
}
