package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lao-tseu-is-alive/go-boids/internal/game"
	"github.com/lao-tseu-is-alive/go-boids/internal/host"
	"github.com/lao-tseu-is-alive/go-boids/internal/report"
	"github.com/lao-tseu-is-alive/go-boids/internal/spawn"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/spf13/cobra"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
)

var (
	configFile  string
	schemaFile  string
	debug       bool
	ticks       int
	dt          time.Duration
	sampleEvery int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "boids",
		Short:        "2D flocking simulation",
		SilenceUsage: true,
		RunE:         runGUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (.json, .yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "JSON schema overriding the embedded one")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging at debug level")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the flock headless and print a report",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "number of frames")
	runCmd.Flags().DurationVar(&dt, "dt", time.Second/60, "frame delta")
	runCmd.Flags().IntVar(&sampleEvery, "sample", 10, "take a stats sample every n frames")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadConfig(logger *zap.Logger) (*simulation.Config, error) {
	if configFile == "" {
		return simulation.DefaultConfig(), nil
	}
	cfg, err := simulation.LoadConfig(configFile, schemaFile)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", zap.String("file", configFile))
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	return g.Run()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	sim := cfg.NewSimulation(logger.Named("simulation"))
	sp, err := spawn.New(cfg.Bounds, cfg.Spawn)
	if err != nil {
		return fmt.Errorf("failed to create spawner: %w", err)
	}
	sp.Populate(sim, nil, cfg.NumBoids, cfg.MaxBoids)
	logger.Info("headless run",
		zap.Int("boids", sim.Count()),
		zap.Int("ticks", ticks),
		zap.Duration("dt", dt))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var actorLogger golog.Logger = golog.DiscardLogger
	if debug {
		actorLogger = golog.DefaultLogger
	}
	runner, err := host.Start(ctx, host.NewFlockActor(sim, sp, cfg.MaxBoids), actorLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := runner.Stop(context.Background()); err != nil {
			logger.Warn("actor system did not stop cleanly", zap.Error(err))
		}
	}()

	samples, err := runner.Run(ctx, ticks, dt, sampleEvery)
	if err != nil {
		return fmt.Errorf("headless run failed: %w", err)
	}
	return report.Write(cmd.OutOrStdout(), report.Title(samples, dt), samples)
}
