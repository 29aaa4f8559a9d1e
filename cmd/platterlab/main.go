package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/platterlab/internal/config"
	"github.com/san-kum/platterlab/internal/export"
	"github.com/san-kum/platterlab/internal/metrics"
	"github.com/san-kum/platterlab/internal/session"
	"github.com/san-kum/platterlab/internal/tui"
)

var (
	configFile string
	preset     string
	frames     int
	dt         float64
	duration   float64
	verbose    bool
	jsonOut    string
	csvOut     string
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platterlab",
		Short: "interactive turntable simulation lab",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runLive(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted headless session",
		RunE:  runScripted,
	}
	runCmd.Flags().IntVar(&frames, "frames", 0, "frame count (0 = from config)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (0 = from config)")
	runCmd.Flags().Float64Var(&duration, "media", 0, "media duration in seconds (0 = from config)")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write run data to a json file")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write traces to a csv file")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the yaw trace to an svg file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal deck",
		RunE:  runLive,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run every preset and compare metrics",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&frames, "frames", 1800, "frame count per preset")

	configCmd := &cobra.Command{
		Use:   "config init [path]",
		Short: "write a default config file",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, sweepCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

// runScripted drives a fixed start-play-stop sequence through the deck
// and prints the recorded traces.
func runScripted(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if frames > 0 {
		cfg.Frames = frames
	}
	if duration > 0 {
		cfg.MediaDuration = duration
	}

	logger := newLogger()
	sess := session.New(cfg, logger)
	spinTarget := cfg.Mechanism.RPMSlow / 60 * 2 * math.Pi
	sess.AddMetric(metrics.NewSpinSettle(spinTarget, 0.05))
	sess.AddMetric(metrics.NewPlayTransitions())
	sess.AddMetric(metrics.NewWowFlutter())

	mech := sess.Mechanism()
	mech.ToggleStartStop()
	dropFrame := cfg.Frames / 10
	dropYaw := cfg.Mechanism.PlayThreshold - 1.0

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sess.Run(ctx, cfg.Frames, cfg.Dt, func(f session.FrameState) bool {
		if f.Frame == dropFrame {
			mech.BeginArmDrag()
			mech.DragArmBy(dropYaw - f.Yaw)
			mech.EndArmDrag()
		}
		return true
	})
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(res.Yaw, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("Tonearm yaw (deg)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(res.Vel, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("Platter velocity (rad/s)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(res.Clock, asciigraph.Height(8), asciigraph.Width(70), asciigraph.Caption("Media clock (s)")))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for name, v := range res.Metrics {
		fmt.Fprintf(w, "%s\t%.4f\n", name, v)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if jsonOut != "" {
		if err := export.WriteJSON(jsonOut, preset, cfg.Dt, cfg.MediaDuration, res); err != nil {
			return err
		}
		logger.Info().Str("path", jsonOut).Msg("wrote json")
	}
	if csvOut != "" {
		if err := export.WriteCSV(csvOut, res); err != nil {
			return err
		}
		logger.Info().Str("path", csvOut).Msg("wrote csv")
	}
	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.TraceSVG(res.Yaw, 800, 300, "#49e0c8")), 0o644); err != nil {
			return err
		}
		logger.Info().Str("path", svgOut).Msg("wrote svg")
	}
	return nil
}

// runSweep spins up every preset concurrently with the motor on and
// prints a metric comparison table.
func runSweep(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)
	runs := make([]session.SweepRun, 0, len(names))
	for _, name := range names {
		runs = append(runs, session.SweepRun{Name: name, Config: config.GetPreset(name)})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := session.Sweep(ctx, runs, frames, newLogger(), func(s *session.Session) {
		cfg := s.Config()
		s.AddMetric(metrics.NewSpinSettle(cfg.Mechanism.RPMSlow/60*2*math.Pi, 0.05))
		s.AddMetric(metrics.NewWowFlutter())
		s.Mechanism().ToggleStartStop()
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSPIN_SETTLE\tWOW_FLUTTER")
	for _, name := range names {
		res := results[name]
		fmt.Fprintf(w, "%s\t%.3f\t%.5f\n", name, res.Metrics["spin_settle"], res.Metrics["wow_flutter"])
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger().Level(zerolog.Disabled) // keep the TUI clean
	sess := session.New(cfg, logger)
	return tui.Run(sess, cfg.Dt)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tRPM\tMEDIA\tTWIST")
	names := config.ListPresets()
	sort.Strings(names)
	for _, name := range names {
		cfg := config.GetPreset(name)
		twist := cfg.Vinyl.TwistPolicy
		if twist == "" {
			twist = "commit"
		}
		fmt.Fprintf(w, "%s\t%s\t%.0fs\t%s\n", name, "33/45", cfg.MediaDuration, twist)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "platterlab.yaml"
	if len(args) > 1 {
		path = args[1]
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
