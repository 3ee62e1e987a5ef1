package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/netgrowth/internal/compare"
	"github.com/san-kum/netgrowth/internal/config"
	"github.com/san-kum/netgrowth/internal/dataset"
	"github.com/san-kum/netgrowth/internal/growth"
)

type slider struct {
	name, label string
	value, init float64
	rng         config.Range
}

// nudge moves the slider by n steps, snapping to the step grid.
func (s *slider) nudge(n int) {
	k := math.Round((s.value - s.rng.Min) / s.rng.Step)
	v := s.rng.Min + (k+float64(n))*s.rng.Step
	s.value = s.rng.Clamp(v)
}

// Tuner is an interactive model for exploring r, K and h against one
// observed series.
type Tuner struct {
	series    *dataset.Series
	eval      *compare.Evaluator
	horizon   float64
	sliders   []slider
	cursor    int
	report    *compare.Report
	err       error
	theme     int
	showTable bool
	width     int
	height    int
	log       *slog.Logger
}

func NewTuner(series *dataset.Series, cfg *config.Config, eval *compare.Evaluator, log *slog.Logger) *Tuner {
	if eval == nil {
		eval = compare.NewEvaluator(nil)
	}
	if log == nil {
		log = slog.Default()
	}
	p := cfg.Resolve(series)
	kf := cfg.Model.KFactor
	if peak := series.Max(); cfg.Model.K != 0 && peak != 0 {
		kf = cfg.Model.K / peak
	}
	t := &Tuner{
		series:  series,
		eval:    eval,
		horizon: p.Horizon,
		sliders: []slider{
			{name: "r", label: "growth rate", value: p.R, rng: cfg.Sliders.R},
			{name: "K", label: "capacity x peak", value: kf, rng: cfg.Sliders.KFactor},
			{name: "h", label: "step size", value: p.H, rng: cfg.Sliders.H},
		},
		theme:  themeIndex(cfg.Theme),
		width:  80,
		height: 24,
		log:    log,
	}
	for i := range t.sliders {
		s := &t.sliders[i]
		s.value = s.rng.Clamp(s.value)
		s.init = s.value
	}
	t.evaluate()
	return t
}

// Params returns the parameters the sliders currently select.
func (t *Tuner) Params() growth.Params {
	return growth.Params{
		U0:      t.series.Initial(),
		R:       t.sliders[0].value,
		K:       t.sliders[1].value * t.series.Max(),
		H:       t.sliders[2].value,
		Horizon: t.horizon,
	}
}

func (t *Tuner) Report() *compare.Report { return t.report }

func (t *Tuner) Err() error { return t.err }

func (t *Tuner) evaluate() {
	p := t.Params()
	t.report, t.err = t.eval.Evaluate(t.series, p)
	if t.err != nil {
		t.log.Warn("evaluate failed", "r", p.R, "k", p.K, "h", p.H, "err", t.err)
		return
	}
	t.log.Debug("evaluated", "r", p.R, "k", p.K, "h", p.H, "mse", t.report.Summary.MSE)
}

func (t *Tuner) Init() tea.Cmd { return nil }

func (t *Tuner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKey(msg)
	case tea.WindowSizeMsg:
		t.width, t.height = msg.Width, msg.Height
	}
	return t, nil
}

func (t *Tuner) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return t, tea.Quit
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.sliders)-1 {
			t.cursor++
		}
	case "left", "h":
		t.adjust(-1)
	case "right", "l":
		t.adjust(1)
	case "H":
		t.adjust(-10)
	case "L":
		t.adjust(10)
	case "0":
		for i := range t.sliders {
			t.sliders[i].value = t.sliders[i].init
		}
		t.evaluate()
	case "T":
		t.theme = (t.theme + 1) % len(Themes)
	case "tab":
		t.showTable = !t.showTable
	}
	return t, nil
}

func (t *Tuner) adjust(steps int) {
	s := &t.sliders[t.cursor]
	before := s.value
	s.nudge(steps)
	if s.value != before {
		t.evaluate()
	}
}

func (t *Tuner) View() string {
	theme := Themes[t.theme]
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	primary := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	var b strings.Builder
	b.WriteString("\n  " + primary.Render("NETGROWTH") + "  " + muted.Render("logistic model, forward euler: "+t.series.Entity) + "\n\n")

	barWidth := max(10, min(40, t.width-40))
	for i, s := range t.sliders {
		cursor, name := "  ", muted.Render(fmt.Sprintf("%-2s", s.name))
		if i == t.cursor {
			cursor, name = accent.Render("▸ "), accent.Render(fmt.Sprintf("%-2s", s.name))
		}
		value := fmt.Sprintf("%6.2f", s.value)
		if s.name == "K" {
			value = fmt.Sprintf("%6.2fx %s", s.value, Count(s.value*t.series.Max()))
		}
		fmt.Fprintf(&b, "  %s%s %s %s  %s\n", cursor, name,
			primary.Render(SliderBar(s.value, s.rng.Min, s.rng.Max, barWidth)),
			value, muted.Render(s.label))
	}
	b.WriteString("\n")

	if t.err != nil {
		b.WriteString("  " + ErrorText.Render(t.err.Error()) + "\n")
	} else {
		b.WriteString(MetricCards(t.report) + "\n")
		if w := Warnings(t.report); w != "" {
			b.WriteString(w)
		}
		if t.showTable {
			b.WriteString(Table(t.report))
		} else {
			chartHeight := max(5, t.height-22)
			b.WriteString(Chart(t.report, max(20, t.width-16), chartHeight, theme) + "\n")
			errs := make([]float64, len(t.report.Rows))
			for i, row := range t.report.Rows {
				errs[i] = row.AbsError
			}
			b.WriteString("  " + muted.Render("abs error ") + SparklineChart(errs, min(len(errs), 60)) + "\n")
		}
	}

	b.WriteString("\n  " + KeyHint.Render("j/k select  h/l adjust  H/L x10  0 reset  tab table  T theme ("+theme.Name+")  q quit") + "\n")
	return b.String()
}

// RunTuner starts the tuner on the alternate screen.
func RunTuner(t *Tuner) error {
	_, err := tea.NewProgram(t, tea.WithAltScreen()).Run()
	return err
}
