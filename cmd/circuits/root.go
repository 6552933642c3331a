package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/circuits/internal/config"
)

// flagValues holds raw flag input before it is merged into a config.Config.
type flagValues struct {
	configPath  string
	iterations  int
	strategy    string
	maxDistance float64
	logLevel    string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{}
	cmd := &cobra.Command{
		Use:           "circuits [input]",
		Short:         "Group 3-D points into circuits by joining the closest pairs",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fv.resolve(cmd, args)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			logger = logger.With(zap.String("run_id", uuid.NewString()))

			return solve(cmd.OutOrStdout(), cfg, fv.verbose, logger)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringVarP(&fv.configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&fv.iterations, "iterations", "k", def.Iterations, "Edges consumed by bounded clustering")
	f.StringVar(&fv.strategy, "strategy", def.Strategy, "Merge strategy: relabel or union-find")
	f.Float64Var(&fv.maxDistance, "max-distance", def.MaxDistance, "Ignore pairs farther apart than this (0 = no limit)")
	f.StringVar(&fv.logLevel, "log-level", def.LogLevel, "Log level: debug, info, warn, error")
	f.BoolVarP(&fv.verbose, "verbose", "v", false, "Print a component summary")

	return cmd
}

// resolve merges defaults, the optional config file, explicit flags and the
// positional input path, then validates the result.
func (fv *flagValues) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		loaded, err := config.Load(fv.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("iterations") {
		cfg.Iterations = fv.iterations
	}
	if f.Changed("strategy") {
		cfg.Strategy = fv.strategy
	}
	if f.Changed("max-distance") {
		cfg.MaxDistance = fv.maxDistance
	}
	if f.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg, cfg.Validate()
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
