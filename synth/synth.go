// Package synth generates synthetic datasets for exercising the clustering
// engine: uniformly scattered points and isotropic Gaussian blobs.
//
// Every generator is a pure function of its parameters and seed.
package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidParameters is returned (wrapped) for out-of-range generator input.
var ErrInvalidParameters = errors.New("invalid parameters")

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, ^seed))
}

// Uniform returns n points with dims coordinates each, drawn uniformly from
// [low, high).
func Uniform(n, dims int, low, high float64, seed uint64) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("synth: n must be >= 1, got %d: %w", n, ErrInvalidParameters)
	}
	if dims < 1 {
		return nil, fmt.Errorf("synth: dims must be >= 1, got %d: %w", dims, ErrInvalidParameters)
	}
	if !(low < high) {
		return nil, fmt.Errorf("synth: low (%g) must be < high (%g): %w", low, high, ErrInvalidParameters)
	}

	rng := newRand(seed)
	span := high - low
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dims)
		for d := range p {
			p[d] = low + rng.Float64()*span
		}
		points[i] = p
	}
	return points, nil
}

// BlobConfig controls Blobs.
type BlobConfig struct {
	// Samples is the total number of points. Must be >= Centers.
	Samples int

	// Centers is the number of blobs. Must be >= 1.
	Centers int

	// Dims is the dimensionality of every point. Must be >= 1.
	Dims int

	// ClusterStd is the standard deviation of each blob along every axis.
	// Must be >= 0. Default: 1.0.
	ClusterStd float64

	// CenterBox bounds the uniformly drawn blob centers along every axis.
	// Default: [-10, 10].
	CenterBox [2]float64

	// Seed drives both center placement and sampling.
	Seed uint64
}

// DefaultBlobConfig mirrors the usual make_blobs setup: 100 points around 3
// centers in the plane.
func DefaultBlobConfig() BlobConfig {
	return BlobConfig{
		Samples:    100,
		Centers:    3,
		Dims:       2,
		ClusterStd: 1.0,
		CenterBox:  [2]float64{-10, 10},
	}
}

// Blobs draws cfg.Centers centers uniformly in CenterBox, then scatters the
// samples around them with Gaussian noise. Samples are split as evenly as
// possible; the first Samples%Centers centers get one extra point. Points are
// returned grouped by center, along with the index of the center each point
// came from.
func Blobs(cfg BlobConfig) ([][]float64, []int, error) {
	if cfg.Centers < 1 {
		return nil, nil, fmt.Errorf("synth: Centers must be >= 1, got %d: %w", cfg.Centers, ErrInvalidParameters)
	}
	if cfg.Samples < cfg.Centers {
		return nil, nil, fmt.Errorf("synth: Samples (%d) must be >= Centers (%d): %w", cfg.Samples, cfg.Centers, ErrInvalidParameters)
	}
	if cfg.Dims < 1 {
		return nil, nil, fmt.Errorf("synth: Dims must be >= 1, got %d: %w", cfg.Dims, ErrInvalidParameters)
	}
	if cfg.ClusterStd < 0 {
		return nil, nil, fmt.Errorf("synth: ClusterStd must be >= 0, got %g: %w", cfg.ClusterStd, ErrInvalidParameters)
	}
	if cfg.CenterBox == [2]float64{} {
		cfg.CenterBox = [2]float64{-10, 10}
	}
	if !(cfg.CenterBox[0] < cfg.CenterBox[1]) {
		return nil, nil, fmt.Errorf("synth: CenterBox %v is empty: %w", cfg.CenterBox, ErrInvalidParameters)
	}

	rng := newRand(cfg.Seed)

	centers := make([][]float64, cfg.Centers)
	span := cfg.CenterBox[1] - cfg.CenterBox[0]
	for c := range centers {
		centers[c] = make([]float64, cfg.Dims)
		for d := range centers[c] {
			centers[c][d] = cfg.CenterBox[0] + rng.Float64()*span
		}
	}

	points := make([][]float64, 0, cfg.Samples)
	truth := make([]int, 0, cfg.Samples)
	base, extra := cfg.Samples/cfg.Centers, cfg.Samples%cfg.Centers
	for c, center := range centers {
		size := base
		if c < extra {
			size++
		}
		for range size {
			p := make([]float64, cfg.Dims)
			for d := range p {
				p[d] = center[d] + rng.NormFloat64()*cfg.ClusterStd
			}
			points = append(points, p)
			truth = append(truth, c)
		}
	}
	return points, truth, nil
}
