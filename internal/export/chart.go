// Package export writes comparison reports and trajectories to files:
// PNG or SVG charts, CSV tables and JSON documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/netgrowth/internal/compare"
)

type Format string

const (
	PNG  Format = "png"
	SVG  Format = "svg"
	CSV  Format = "csv"
	JSON Format = "json"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return ParseFormat(ext)
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, SVG, CSV, JSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	observedColor  = drawing.ColorFromHex("1f77b4")
	simulatedColor = drawing.ColorFromHex("ff7f0e")
)

// ChartOptions size the rendered chart in pixels.
type ChartOptions struct {
	Width  int
	Height int
}

// AxisCount labels user counts in billions or millions.
func AxisCount(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if f >= 1e9 {
		return fmt.Sprintf("%.1fB", f/1e9)
	}
	return fmt.Sprintf("%.0fM", f/1e6)
}

func yearLabel(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int(f))
	}
	return ""
}

// Chart renders observed against simulated values by year.
func Chart(w io.Writer, r *compare.Report, format Format, opts ChartOptions) error {
	if len(r.Rows) < 2 {
		return fmt.Errorf("export: need at least two rows to chart, have %d", len(r.Rows))
	}
	if r.Diverged >= 0 && r.Diverged < len(r.Rows) {
		return fmt.Errorf("export: simulated values are not finite from row %d", r.Diverged)
	}

	var provider chart.RendererProvider
	switch format {
	case PNG:
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%w: %q is not a chart format", ErrUnknownFormat, format)
	}

	years := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		years[i] = float64(row.Year)
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("Observed vs Euler simulation (%s)", r.Entity),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: yearLabel,
		},
		YAxis: chart.YAxis{
			Name:           "Internet users",
			ValueFormatter: AxisCount,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Observed",
				XValues: years,
				YValues: r.Observed(),
				Style: chart.Style{
					StrokeColor: observedColor,
					StrokeWidth: 2.5,
					DotColor:    observedColor,
					DotWidth:    3,
				},
			},
			chart.ContinuousSeries{
				Name:    "Euler simulation",
				XValues: years,
				YValues: r.Simulated(),
				Style: chart.Style{
					StrokeColor:     simulatedColor,
					StrokeWidth:     2.5,
					StrokeDashArray: []float64{6, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("export: render %s: %w", format, err)
	}
	return nil
}
