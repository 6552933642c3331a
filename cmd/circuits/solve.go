package main

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/circuits/cluster"
	"github.com/katalvlaran/circuits/internal/config"
	"github.com/katalvlaran/circuits/point"
)

// solve loads the records, runs both policies concurrently on one engine and
// prints their answers in a fixed order.
func solve(w io.Writer, cfg config.Config, verbose bool, logger *zap.Logger) error {
	nodes, err := point.Load(cfg.Input)
	if err != nil {
		return err
	}
	strategy, err := cluster.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	logger.Info("points loaded", zap.String("input", cfg.Input), zap.Int("nodes", len(nodes)))

	engine, err := cluster.NewEngine(nodes,
		cluster.WithStrategy(strategy),
		cluster.WithMaxDistance(cfg.MaxDistance),
		cluster.WithLogger(logger))
	if err != nil {
		return err
	}

	var (
		g       errgroup.Group
		bounded cluster.Result
		closing float64
	)
	g.Go(func() error {
		res, err := engine.Run(cluster.BoundedCount(cfg.Iterations))
		if err != nil {
			return fmt.Errorf("part one: %w", err)
		}
		bounded = res
		return nil
	})
	g.Go(func() error {
		x, err := engine.FullyConnected()
		if err != nil {
			return fmt.Errorf("part two: %w", err)
		}
		closing = x
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Part One: %d\n", bounded.LargestProduct(cluster.TopComponents))
	fmt.Fprintf(w, "Part Two: %s\n", strconv.FormatFloat(closing, 'f', -1, 64))
	if verbose {
		sizes := bounded.Sizes()
		largest := sizes[max(0, len(sizes)-cluster.TopComponents):]
		fmt.Fprintf(w, "Components after %d edges: %d (largest %v)\n", bounded.Consumed, len(sizes), largest)
	}

	return nil
}
