package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/kmeans"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a dataset and report the result",
		Long: `Run K-Means on a CSV file (one point per row, optional header) or on a
generated dataset, then print a per-cluster summary.

Without --seed a seed is derived from the clock and printed, so any run can be
repeated exactly.`,
		Args: cobra.NoArgs,
		RunE: runCluster,
	}

	defaults := kmeans.DefaultConfig()
	flags := cmd.Flags()
	flags.String("input", "", "CSV file with one point per row")
	flags.String("generate", "blobs", "Generator used when --input is empty: blobs or uniform")
	flags.Int("samples", 300, "Number of generated points")
	flags.Int("centers", 3, "Number of generated blobs")
	flags.Int("dims", 2, "Dimensionality of generated points")
	flags.Float64("std", 1.0, "Standard deviation of generated blobs")
	flags.Uint64("data-seed", 0, "Seed for the data generator")

	flags.Int("k", 3, "Number of clusters")
	flags.Int("max-iter", defaults.MaxIterations, "Maximum number of iterations (0 = default of 15)")
	flags.Float64("tol", defaults.Tolerance, "Convergence tolerance on centroid movement (0 = exact)")
	flags.Uint64("seed", 0, "Seed for centroid initialization (default: derived from the clock)")
	flags.Int("workers", 0, "Goroutines for the assignment step (0 = number of CPUs)")

	flags.String("output", "", "Write the result as JSON to this file")
	flags.Bool("trace", false, "Print the initial centroids, then centroids and inertia after every iteration")

	return cmd
}

func runCluster(cmd *cobra.Command, args []string) error {
	opts, err := loadRunOptions(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbosity, opts.JSONLogs)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	data, err := loadDataset(opts)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", zap.Int("points", len(data)), zap.String("input", opts.Input), zap.String("generate", opts.Generate))

	out := cmd.OutOrStdout()
	cfg := opts.Engine
	cfg.Logger = log
	var trace bytes.Buffer
	if opts.Trace {
		cfg.OnIteration = func(s kmeans.IterationStats) { traceIteration(&trace, s) }
	}

	result, err := kmeans.ClusterContext(cmd.Context(), data, cfg)
	if err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}
	log.Info("clustering finished",
		zap.Int("iterations", result.Iterations),
		zap.Bool("converged", result.Converged),
		zap.Float64("inertia", result.Inertia),
		zap.Uint64("seed", cfg.Seed),
	)

	if opts.Trace {
		printTrace(out, result, trace.Bytes())
	}
	if err := printSummary(out, cfg, result); err != nil {
		return err
	}

	if opts.Output != "" {
		if err := writeResultJSON(opts.Output, data, cfg, result); err != nil {
			return err
		}
		log.Info("result written", zap.String("path", opts.Output))
	}
	return nil
}
