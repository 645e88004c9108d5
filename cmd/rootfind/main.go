package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/export"
	"github.com/san-kum/rootfind/internal/newton"
	"github.com/san-kum/rootfind/internal/problems"
	"github.com/san-kum/rootfind/internal/storage"
	"github.com/san-kum/rootfind/internal/trace"
	"github.com/san-kum/rootfind/internal/tui"
)

var (
	dataDir    string
	tolerance  float64
	maxIter    int
	strategy   string
	compiled   bool
	initGuess  string
	save       bool
	plot       bool
	live       bool
	frameRate  int
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rootfind",
		Short: "newton root finding with automatic differentiation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rootfind", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "find a root of a named problem",
		Args:  cobra.ExactArgs(1),
		RunE:  solveProblem,
	}
	solveCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "successive-difference tolerance")
	solveCmd.Flags().IntVar(&maxIter, "maxiter", config.DefaultMaxIter, "iteration budget")
	solveCmd.Flags().StringVar(&strategy, "strategy", config.DefaultStrategy, "step strategy: inverse or lstsq")
	solveCmd.Flags().BoolVar(&compiled, "compiled", false, "precompile the per-iteration update")
	solveCmd.Flags().StringVar(&initGuess, "x0", "", "initial guess, comma separated")
	solveCmd.Flags().BoolVar(&save, "save", false, "save the run")
	solveCmd.Flags().BoolVar(&plot, "plot", false, "plot residual norm per iteration")
	solveCmd.Flags().BoolVar(&live, "live", false, "print iterations as they happen")
	solveCmd.Flags().IntVar(&frameRate, "fps", 30, "live print rate")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list problems",
		RunE:  listProblems,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's convergence",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			return st.ExportJSONStdout(args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [out.svg]",
		Short: "export a run's convergence plot as SVG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			_, norms, err := st.LoadIterations(args[0])
			if err != nil {
				return err
			}
			return export.WriteConvergenceSVG(args[1], norms, 800, 300)
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [problem]",
		Short: "compare step strategies on the same problem",
		Args:  cobra.ExactArgs(1),
		RunE:  compareStrategies,
	}
	compareCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "successive-difference tolerance")
	compareCmd.Flags().IntVar(&maxIter, "maxiter", config.DefaultMaxIter, "iteration budget")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive iteration browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(solveCmd, listCmd, runsCmd, plotCmd, exportJSONCmd, exportSVGCmd, compareCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveProblem(cmd *cobra.Command, args []string) error {
	name := args[0]

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		applyConfig(cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		name = cfg.Problem
		applyConfig(cfg)
	}

	reg := problems.NewRegistry()
	p, err := reg.Get(name)
	if err != nil {
		return err
	}

	x0, err := parseGuess(initGuess)
	if err != nil {
		return err
	}

	strat, err := newton.ParseStrategy(strategy)
	if err != nil {
		return err
	}

	rec := trace.NewRecorder()
	opts := newton.Options{
		Tolerance: tolerance,
		MaxIter:   maxIter,
		Strategy:  strat,
		Compiled:  compiled,
		Observers: []newton.Observer{rec},
	}
	if live {
		opts.Observers = append(opts.Observers, trace.NewLiveRenderer(frameRate))
	}

	result, err := p.Solve(x0, opts)
	if err != nil {
		return err
	}

	printResult(p, result)

	if plot {
		plotResiduals(rec.ResidualNorms())
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(p.Name, opts, result, rec)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", runID)
	}

	return nil
}

func applyConfig(cfg *config.Config) {
	tolerance = cfg.Tolerance
	maxIter = cfg.MaxIter
	if cfg.Strategy != "" {
		strategy = cfg.Strategy
	}
	compiled = cfg.Compiled
	if len(cfg.InitGuess) > 0 {
		parts := make([]string, len(cfg.InitGuess))
		for i, v := range cfg.InitGuess {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		initGuess = strings.Join(parts, ",")
	}
}

func parseGuess(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad initial guess %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func printResult(p *problems.Problem, result newton.Result) {
	status := "converged"
	if !result.Converged {
		status = "did not converge (budget exhausted)"
	}
	fmt.Printf("problem: %s\n", p.Name)
	fmt.Printf("status: %s after %d iterations\n", status, result.Iterations)
	for i, v := range result.Root {
		fmt.Printf("  x%d = %.15g\n", i, v)
	}
	if residual, err := p.Residual(result.Root); err == nil {
		fmt.Printf("  |f| = %.3e\n", normInf(residual))
	}
}

func plotResiduals(norms []float64) {
	if len(norms) < 2 {
		return
	}
	data := make([]float64, len(norms))
	for i, v := range norms {
		lv := math.Log10(v + 1e-300)
		if math.IsNaN(lv) || math.IsInf(lv, 0) {
			// diverged iterate; pin to the top of the plot
			lv = 300
		}
		data[i] = lv
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("log10 residual norm per iteration"),
	)
	fmt.Println()
	fmt.Println(graph)
}

func listProblems(cmd *cobra.Command, args []string) error {
	reg := problems.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tDESCRIPTION")
	for _, p := range reg.List() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, p.Dim, p.Desc)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tSTRATEGY\tITERS\tCONVERGED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%v\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Strategy,
			run.Iterations,
			run.Converged,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, norms, err := st.LoadIterations(runID)
	if err != nil {
		return err
	}
	if len(norms) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s (%s)\n", meta.Problem, meta.Strategy)
	fmt.Printf("iterations: %d\n", meta.Iterations)

	plotResiduals(norms)
	return nil
}

func compareStrategies(cmd *cobra.Command, args []string) error {
	reg := problems.NewRegistry()
	p, err := reg.Get(args[0])
	if err != nil {
		return err
	}
	if p.Dim == 1 {
		return fmt.Errorf("strategies only differ for vector problems; %s is scalar", p.Name)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tITERS\tCONVERGED\tROOT")
	for _, strat := range []newton.Strategy{newton.Inverse, newton.LeastSquares} {
		opts := newton.Options{Tolerance: tolerance, MaxIter: maxIter, Strategy: strat}
		result, err := p.Solve(nil, opts)
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t-\terror: %v\n", strat, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\n", strat, result.Iterations, result.Converged, result.Root)
	}
	return w.Flush()
}

func normInf(v []float64) float64 {
	max := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	return max
}
