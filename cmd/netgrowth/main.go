package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/netgrowth/internal/compare"
	"github.com/san-kum/netgrowth/internal/config"
	"github.com/san-kum/netgrowth/internal/dataset"
	"github.com/san-kum/netgrowth/internal/export"
	"github.com/san-kum/netgrowth/internal/growth"
	"github.com/san-kum/netgrowth/internal/logging"
	"github.com/san-kum/netgrowth/internal/viz"
)

var (
	configFile string
	dataPath   string
	entity     string
	logLevel   string
	logFile    string
	preset     string
	theme      string
	force      bool

	rate     float64
	capacity float64
	kFactor  float64
	step     float64
	horizon  float64

	sim       growth.Params
	simFormat string
	simRows   int

	chartOut     string
	width        int
	height       int
	exportFormat string
	exportOut    string

	cfg       *config.Config
	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "netgrowth",
		Short:             "logistic growth of internet users, integrated with forward euler",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: runTuner,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataPath, "data", config.DefaultDataPath, "observations csv")
	pf.StringVar(&entity, "entity", dataset.DefaultEntity, "entity to select from the csv")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "also write logs to this file (rotated)")
	pf.StringVar(&preset, "preset", "", "use preset model parameters")
	pf.StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	addModelFlags(rootCmd)

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "compare the simulation with the observed series",
		RunE:  runFit,
	}
	addModelFlags(fitCmd)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "integrate the logistic model without a dataset",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().Float64Var(&sim.U0, "u0", 1000, "initial value")
	simulateCmd.Flags().Float64Var(&sim.R, "r", config.DefaultR, "growth rate")
	simulateCmd.Flags().Float64Var(&sim.K, "k", 10000, "carrying capacity")
	simulateCmd.Flags().Float64Var(&sim.H, "h", config.DefaultH, "step size")
	simulateCmd.Flags().Float64Var(&sim.Horizon, "horizon", 10, "end time (exclusive)")
	simulateCmd.Flags().StringVar(&simFormat, "format", "table", "output format: table, csv, json")
	simulateCmd.Flags().IntVar(&simRows, "rows", 20, "table rows to print (0 for all)")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "render the comparison chart to png or svg",
		RunE:  runChart,
	}
	addModelFlags(chartCmd)
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "growth.png", "output file (.png or .svg)")
	chartCmd.Flags().IntVar(&width, "width", 0, "chart width in pixels")
	chartCmd.Flags().IntVar(&height, "height", 0, "chart height in pixels")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the comparison table",
		RunE:  runExport,
	}
	addModelFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv, json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout if empty)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tR\tH\tK\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%gx\t%s\n", name, p.Model.R, p.Model.H, p.Model.KFactor, p.Description)
			}
			return w.Flush()
		},
	}

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "tune r, K and h interactively",
		RunE:  runTuner,
	}
	addModelFlags(tuneCmd)

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(fitCmd, simulateCmd, chartCmd, exportCmd, presetsCmd, tuneCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rate, "r", config.DefaultR, "growth rate")
	cmd.Flags().Float64Var(&capacity, "k", 0, "carrying capacity (overrides --k-factor)")
	cmd.Flags().Float64Var(&kFactor, "k-factor", config.DefaultKFactor, "carrying capacity as a multiple of the observed peak")
	cmd.Flags().Float64Var(&step, "h", config.DefaultH, "step size")
	cmd.Flags().Float64Var(&horizon, "horizon", 0, "end time (0 uses the series length)")
}

// setup resolves the config and the logger. Preset values override the
// config file, and flags override both, but only when given.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := cfg.Apply(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = dataPath
	}
	if flags.Changed("entity") {
		cfg.Entity = entity
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if !viz.HasTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.FilePath = logFile
		cfg.Log.Output = logging.OutputBoth
	}
	if cmd.Name() != "simulate" {
		if flags.Changed("r") {
			cfg.Model.R = rate
		}
		if flags.Changed("h") {
			cfg.Model.H = step
		}
		if flags.Changed("k-factor") {
			cfg.Model.KFactor = kFactor
			cfg.Model.K = 0
		}
		if flags.Changed("k") {
			cfg.Model.K = capacity
		}
		if flags.Changed("horizon") {
			cfg.Model.Horizon = horizon
		}
	}

	l, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	slog.SetDefault(logger)
	logger.Debug("config resolved", "data", cfg.DataPath, "entity", cfg.Entity, "model", cfg.Model)
	return nil
}

// loadSeries reads the configured dataset. A missing file names the
// settings that choose it.
func loadSeries(c *config.Config) (*dataset.Series, error) {
	series, err := dataset.Load(c.DataPath, c.Entity)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (choose the dataset with --data or data: in the config file)", err)
	}
	return series, err
}

func evaluate() (*compare.Report, error) {
	series, err := loadSeries(cfg)
	if err != nil {
		return nil, err
	}
	p := cfg.Resolve(series)

	start := time.Now()
	report, err := compare.NewEvaluator(growth.NewSimulator(cfg.MaxSteps)).Evaluate(series, p)
	if err != nil {
		logger.Error("evaluate failed", "params", p, "err", err)
		return nil, err
	}
	logger.Info("evaluated",
		"entity", series.Entity,
		"params", p,
		"points", report.Trajectory.Len(),
		"mse", report.Summary.MSE,
		"elapsed", time.Since(start),
	)
	if report.Diverged >= 0 {
		logger.Warn("trajectory diverged", "index", report.Diverged)
	}
	return report, nil
}

func runFit(cmd *cobra.Command, args []string) error {
	report, err := evaluate()
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render("logistic growth, forward euler: " + report.Entity))
	fmt.Println()
	fmt.Println(viz.MetricCards(report))
	fmt.Println()
	fmt.Println(viz.Chart(report, 80, 15, viz.GetTheme(cfg.Theme)))
	fmt.Println(viz.Separator(80))
	fmt.Print(viz.Table(report))
	fmt.Println(viz.Separator(80))
	fmt.Print(viz.Summary(report))
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	p := sim

	start := time.Now()
	traj, err := growth.Simulate(p.U0, p.R, p.K, p.H, p.Horizon)
	if err != nil {
		return err
	}
	logger.Info("simulated", "params", p, "points", traj.Len(), "elapsed", time.Since(start))

	switch simFormat {
	case "csv":
		return export.WriteTrajectoryCSV(os.Stdout, traj, p)
	case "json":
		return export.WriteTrajectoryJSON(os.Stdout, traj, p)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", simFormat)
	}

	shown := traj
	if simRows > 0 && traj.Len() > simRows {
		shown = traj.Head(simRows)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTIME\tEULER\tANALYTIC")
	for i := range shown.Times {
		t := shown.Times[i]
		fmt.Fprintf(w, "%d\t%.4f\t%.6g\t%.6g\n", i, t, shown.Values[i], growth.Analytic(p.U0, p.R, p.K, t))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if shown.Len() < traj.Len() {
		fmt.Printf("... %d more steps\n", traj.Len()-shown.Len())
	}

	fmt.Printf("\nsteps: %d\n", traj.Len())
	if traj.Len() > 0 {
		fmt.Printf("final: %.6g\n", traj.Final())
		fmt.Printf("max error vs closed form: %.6g\n", growth.GlobalError(traj, p.U0, p.R, p.K))
	}
	fmt.Printf("step regime: %s (r*h = %g)\n", growth.Stability(p.R, p.H), p.R*p.H)
	if i := traj.FirstNonFinite(); i >= 0 {
		fmt.Println(viz.Warning.Render(fmt.Sprintf("warning: trajectory is not finite from step %d", i)))
	}

	if plot := viz.TrajectoryPlot(traj.Values, 80, 10); plot != "" {
		fmt.Println()
		fmt.Println(plot)
	}
	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	f, err := export.FormatFromPath(chartOut)
	if err != nil {
		return err
	}
	report, err := evaluate()
	if err != nil {
		return err
	}

	opts := export.ChartOptions{Width: cfg.Chart.Width, Height: cfg.Chart.Height}
	if width > 0 {
		opts.Width = width
	}
	if height > 0 {
		opts.Height = height
	}

	out, err := os.Create(chartOut)
	if err != nil {
		return err
	}
	if err := export.Chart(out, report, f, opts); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", chartOut)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	if f != export.CSV && f != export.JSON {
		return fmt.Errorf("export supports csv and json, got %s", f)
	}
	report, err := evaluate()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		out, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}

	if f == export.JSON {
		err = export.WriteJSON(w, report)
	} else {
		err = export.WriteCSV(w, report)
	}
	if err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", exportOut)
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "netgrowth.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runTuner(cmd *cobra.Command, args []string) error {
	series, err := loadSeries(cfg)
	if err != nil {
		return err
	}
	logger.Info("tuner started", "entity", series.Entity, "points", series.Len())
	t := viz.NewTuner(series, cfg, compare.NewEvaluator(growth.NewSimulator(cfg.MaxSteps)), logger)
	return viz.RunTuner(t)
}
