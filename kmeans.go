package kmeans

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
)

// Config controls a K-Means run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// K is the number of clusters. Must satisfy 1 <= K <= number of points.
	// Ignored by ClusterFrom, which takes K from the initial centroids.
	K int

	// MaxIterations bounds the number of assignment/update rounds. Reaching it
	// is a normal termination, reported by Result.Converged == false.
	// 0 selects the default of 15; negative values are rejected.
	MaxIterations int

	// Tolerance is the largest centroid movement (Euclidean) still considered
	// "not moving". The run converges when every centroid moved by at most
	// Tolerance in one iteration; 0 demands exact equality.
	// Must be >= 0. Default: 1e-8.
	Tolerance float64

	// Seed drives the choice of initial centroids. Two runs with the same data,
	// K and Seed produce identical results.
	Seed uint64

	// Workers controls the number of goroutines used by the assignment step.
	// Results do not depend on it. 0 means use runtime.NumCPU().
	// Default: 0 (auto).
	Workers int

	// Logger receives debug-level iteration events. nil disables logging.
	Logger *zap.Logger

	// OnIteration, when set, is called after every update step with a snapshot
	// of that iteration. The centroids it receives are a copy.
	OnIteration func(IterationStats)
}

// Result contains the output of a K-Means run.
type Result struct {
	// Centroids holds K vectors of the input dimensionality.
	Centroids [][]float64

	// InitialCentroids are the centroids the first iteration started from:
	// the sampled points for Cluster, a copy of initial for ClusterFrom.
	InitialCentroids [][]float64

	// Labels assigns each input point to a cluster index in [0, K).
	Labels []int

	// Iterations is the number of assignment/update rounds executed.
	Iterations int

	// Converged is true when the run stopped because no centroid moved by more
	// than Config.Tolerance, false when MaxIterations was exhausted.
	Converged bool

	// Inertia is the sum of squared distances from each point to the centroid
	// it is labelled with. It is +Inf when that sum exceeds the float64 range.
	Inertia float64

	// EmptyClusters counts, over the whole run, how many times an update step
	// found a cluster with no points and kept its previous centroid.
	EmptyClusters int
}

// IterationStats describes one completed iteration.
type IterationStats struct {
	// Iteration is 1-based.
	Iteration int

	// Centroids after this iteration's update step.
	Centroids [][]float64

	// Inertia of this iteration's assignment, measured against the centroids
	// the points were assigned to. Non-increasing across iterations.
	Inertia float64

	// Shift is the largest distance any centroid moved in the update step.
	Shift float64

	// Empty lists the clusters that received no points and kept their centroid.
	Empty []int
}

// DefaultConfig returns a Config with reasonable defaults. K must still be set.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 15,
		Tolerance:     1e-8,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 15
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// validateConfig checks the data-independent fields of cfg.
func validateConfig(cfg *Config) error {
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("kmeans: MaxIterations must be >= 1, got %d: %w", cfg.MaxIterations, ErrInvalidConfiguration)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		return fmt.Errorf("kmeans: Tolerance must be >= 0, got %f: %w", cfg.Tolerance, ErrInvalidConfiguration)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("kmeans: Workers must be >= 0 (0 means runtime.NumCPU()), got %d: %w", cfg.Workers, ErrInvalidConfiguration)
	}
	return nil
}

// flatten copies data into a flat row-major buffer, checking that the dataset
// is non-empty, rectangular and finite.
func flatten(data [][]float64) (flat []float64, n, dims int, err error) {
	n = len(data)
	if n == 0 {
		return nil, 0, 0, fmt.Errorf("kmeans: dataset is empty: %w", ErrInvalidConfiguration)
	}
	dims = len(data[0])
	if dims == 0 {
		return nil, 0, 0, fmt.Errorf("kmeans: points must have at least one dimension: %w", ErrInvalidConfiguration)
	}
	flat = make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, 0, 0, fmt.Errorf("kmeans: point %d has %d dimensions, want %d: %w", i, len(row), dims, ErrInvalidConfiguration)
		}
		for d, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, 0, fmt.Errorf("kmeans: point %d coordinate %d is not finite: %w", i, d, ErrInvalidConfiguration)
			}
		}
		copy(flat[i*dims:], row)
	}
	return flat, n, dims, nil
}

// Cluster partitions data into cfg.K clusters.
// Each element is a point; all points must have the same dimensionality.
// Returns an error wrapping ErrInvalidConfiguration if data or cfg is invalid.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	return ClusterContext(context.Background(), data, cfg)
}

// ClusterContext is like Cluster but stops early when ctx is done. The context
// is only checked between iterations.
func ClusterContext(ctx context.Context, data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	flat, n, dims, err := flatten(data)
	if err != nil {
		return nil, err
	}
	if cfg.K < 1 || cfg.K > n {
		return nil, fmt.Errorf("kmeans: K must be in [1, %d], got %d: %w", n, cfg.K, ErrInvalidConfiguration)
	}

	centroids := initialCentroids(flat, n, dims, cfg.K, cfg.Seed)
	return run(ctx, flat, n, dims, centroids, cfg)
}

// ClusterFrom runs the iteration starting from the given centroids instead of
// sampling them. K is len(initial); cfg.K and cfg.Seed are ignored. initial is
// copied and never modified.
func ClusterFrom(data [][]float64, initial [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	flat, n, dims, err := flatten(data)
	if err != nil {
		return nil, err
	}
	k := len(initial)
	if k < 1 || k > n {
		return nil, fmt.Errorf("kmeans: number of initial centroids must be in [1, %d], got %d: %w", n, k, ErrInvalidConfiguration)
	}
	centroids, _, cdims, err := flatten(initial)
	if err != nil {
		return nil, fmt.Errorf("kmeans: initial centroids: %w", err)
	}
	if cdims != dims {
		return nil, fmt.Errorf("kmeans: initial centroids have %d dimensions, data has %d: %w", cdims, dims, ErrInvalidConfiguration)
	}

	cfg.K = k
	return run(context.Background(), flat, n, dims, centroids, cfg)
}

// run executes Lloyd iterations on validated input. centroids is owned by run.
func run(ctx context.Context, data []float64, n, dims int, centroids []float64, cfg Config) (*Result, error) {
	k := cfg.K
	log := cfg.Logger.With(zap.Int("k", k), zap.Int("n", n), zap.Int("dims", dims))

	labels := make([]int, n)
	sqDists := make([]float64, n)

	result := &Result{InitialCentroids: unflatten(centroids, k, dims)}
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("kmeans: stopped after %d iterations: %w", iter-1, err)
		}

		inertia := assignParallel(data, n, dims, centroids, k, labels, sqDists, cfg.Workers)
		next, empty := updateCentroids(data, n, dims, labels, centroids, k)
		shift := maxShift(centroids, next, k, dims)

		for _, j := range empty {
			log.Debug("retained centroid of empty cluster", zap.Int("iteration", iter), zap.Int("cluster", j))
		}
		log.Debug("kmeans iteration",
			zap.Int("iteration", iter),
			zap.Float64("inertia", inertia),
			zap.Float64("shift", shift),
			zap.Int("empty", len(empty)),
		)
		if cfg.OnIteration != nil {
			cfg.OnIteration(IterationStats{
				Iteration: iter,
				Centroids: unflatten(next, k, dims),
				Inertia:   inertia,
				Shift:     shift,
				Empty:     empty,
			})
		}

		centroids = next
		result.Iterations = iter
		result.EmptyClusters += len(empty)
		if shift <= cfg.Tolerance {
			result.Converged = true
			break
		}
	}

	result.Inertia = assignParallel(data, n, dims, centroids, k, labels, sqDists, cfg.Workers)
	result.Centroids = unflatten(centroids, k, dims)
	result.Labels = labels

	log.Debug("kmeans finished",
		zap.Int("iterations", result.Iterations),
		zap.Bool("converged", result.Converged),
		zap.Float64("inertia", result.Inertia),
	)
	return result, nil
}

// unflatten copies a flat rows×dims buffer into a slice of rows.
func unflatten(flat []float64, rows, dims int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, dims)
		copy(out[i], flat[i*dims:(i+1)*dims])
	}
	return out
}
