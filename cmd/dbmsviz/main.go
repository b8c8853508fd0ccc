package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dbmsviz/internal/config"
	"github.com/san-kum/dbmsviz/internal/export"
	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/gui"
	"github.com/san-kum/dbmsviz/internal/logging"
	"github.com/san-kum/dbmsviz/internal/metrics"
	"github.com/san-kum/dbmsviz/internal/tui"
	"github.com/san-kum/dbmsviz/internal/viz"
)

var (
	configFile   string
	preset       string
	theme        string
	section      string
	seed         uint64
	fps          int
	noBackground bool
	logLevel     string
	logFormat    string
	logFile      string

	width    float64
	height   float64
	steps    int
	frames   int
	runs     int
	output   string
	braille  bool
	csvOut   string
	plot     bool
	savePath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands; the root runs the guide in the terminal
// when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dbmsviz",
		Short:        "interactive guide to DBMS fundamentals",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "field preset (see presets)")
	pf.StringVar(&theme, "theme", "", "color theme: slate, indigo, emerald or zinc")
	pf.StringVar(&section, "section", "", "starting section: architecture, schema or advantages")
	pf.Uint64Var(&seed, "seed", 0, "random seed for the background (0 = random)")
	pf.IntVar(&fps, "fps", 0, "frame rate")
	pf.BoolVar(&noBackground, "no-background", false, "start with the background hidden")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the guide in a window",
		RunE:  runGUI,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "animate the background in the terminal",
		RunE:  runWatch,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one background frame to SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&width, "width", 1280, "viewport width in px")
	snapshotCmd.Flags().Float64Var(&height, "height", 720, "viewport height in px")
	snapshotCmd.Flags().IntVar(&steps, "steps", 120, "frames to simulate before the snapshot")
	snapshotCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "render through the terminal canvas")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run the field headless and report per-frame stats",
		RunE:  runBench,
	}
	benchCmd.Flags().Float64Var(&width, "width", 1920, "viewport width in px")
	benchCmd.Flags().Float64Var(&height, "height", 1080, "viewport height in px")
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames to run")
	benchCmd.Flags().IntVar(&runs, "runs", 1, "independently seeded runs, executed concurrently")
	benchCmd.Flags().StringVar(&csvOut, "csv", "", "write per-frame stats to this CSV file")
	benchCmd.Flags().BoolVar(&plot, "plot", false, "plot edge counts")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list field presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config as yaml",
		RunE:  runConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write the config to this file instead")

	rootCmd.AddCommand(guiCmd, watchCmd, snapshotCmd, benchCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers the config file, the preset and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		apply, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		apply(&cfg.Field)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("section") {
		cfg.Section = section
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if noBackground {
		cfg.Background = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	return cfg, cfg.Validate()
}

// setup loads the config and builds the logger. Full-screen commands pass a
// nil writer so logs go to the configured file or nowhere.
func setup(cmd *cobra.Command, w io.Writer) (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, closer, err := logging.New(w, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	slog.SetDefault(log)
	return cfg, log, closer, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, closer, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer closer.Close()
	return tui.Run(cfg, log)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, log, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	return gui.Run(cfg, log)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, closer, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tui.Watch(ctx, cfg, log)
}

func newField(cfg *config.Config) (*field.Field, error) {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	f := field.New(cfg.Field, rng)
	if !f.Resize(width, height) {
		return nil, fmt.Errorf("invalid viewport %vx%v", width, height)
	}
	return f, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	f, err := newField(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		f.Step()
	}
	t := time.Duration(steps) * time.Second / time.Duration(cfg.FPS)

	var svg string
	if braille {
		canvas := viz.NewScaledCanvas(0, 0, cfg.PixelScale)
		canvas.Resize(width, height)
		f.Draw(canvas, t)
		svg = export.CanvasToSVG(canvas, cfg.PixelScale)
	} else {
		svg = export.FieldToSVG(f, t)
	}

	if output == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	log.Info("snapshot written", "path", output, "nodes", f.Len(), "t", t)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if runs <= 0 {
		return fmt.Errorf("bench: --runs %d: %w", runs, metrics.ErrInvalidRuns)
	}
	cfg, log, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	start := cfg.Seed
	if start == 0 {
		start = rand.Uint64()
	}
	ens := &metrics.Ensemble{
		Params:    cfg.Field,
		Width:     width,
		Height:    height,
		Runs:      runs,
		SeedStart: start,
		NewSurface: func() field.Surface {
			canvas := viz.NewScaledCanvas(0, 0, cfg.PixelScale)
			canvas.Resize(width, height)
			return canvas
		},
		NewMetrics: func() []metrics.Metric {
			return []metrics.Metric{&metrics.Connectivity{}, metrics.NewFrameBudget(cfg.FPS)}
		},
	}
	recs, err := ens.Run(cmd.Context(), frames, time.Second/time.Duration(cfg.FPS))
	if err != nil {
		return err
	}
	first := recs[0]

	if csvOut != "" {
		file, err := os.Create(csvOut)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		if err := export.StatsToCSV(file, first.Frames()); err != nil {
			file.Close()
			return fmt.Errorf("write csv: %w", err)
		}
		if err := file.Close(); err != nil {
			return err
		}
		log.Info("stats written", "path", csvOut, "frames", len(first.Frames()), "seed", start)
	}

	fmt.Printf("benchmarking %.0fx%.0f, %d frames, %d runs\n\n", width, height, frames, len(recs))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tNODES\tEDGES (MEAN)\tEDGES (STD)\tEDGES (MAX)\tALPHA\tSTEP (MEAN)\tSTEP (STD)\tCONNECTIVITY\tOVER BUDGET")
	for i, rec := range recs {
		s := rec.Summary()
		v := rec.Values()
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%.1f\t%d\t%.4f\t%v\t%v\t%.2f\t%.1f%%\n",
			start+uint64(i), s.Nodes, s.MeanEdges, s.StdEdges, s.MaxEdges, s.MeanAlpha,
			s.MeanStep, s.StdStep, v["connectivity"], 100*v["over_budget"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot && len(first.Frames()) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(first.Series("edges"),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("edges per frame (seed %d)", start)),
		))
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if savePath != "" {
		return config.Save(savePath, cfg)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
