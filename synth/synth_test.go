package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/TrevorS/kmeans"
)

func TestUniform(t *testing.T) {
	points, err := Uniform(200, 3, -1, 1, 7)
	require.NoError(t, err)
	require.Len(t, points, 200)

	for _, p := range points {
		require.Len(t, p, 3)
		for _, v := range p {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}

	again, err := Uniform(200, 3, -1, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, points, again)

	other, err := Uniform(200, 3, -1, 1, 8)
	require.NoError(t, err)
	assert.NotEqual(t, points, other)
}

func TestUniform_Invalid(t *testing.T) {
	_, err := Uniform(0, 2, 0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Uniform(10, 0, 0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Uniform(10, 2, 1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestBlobs_SizesAndTruth(t *testing.T) {
	cfg := DefaultBlobConfig()
	cfg.Samples = 10
	cfg.Centers = 3
	cfg.Seed = 1

	points, truth, err := Blobs(cfg)
	require.NoError(t, err)
	require.Len(t, points, 10)
	require.Len(t, truth, 10)

	counts := make([]int, cfg.Centers)
	for _, c := range truth {
		counts[c]++
	}
	assert.Equal(t, []int{4, 3, 3}, counts)
}

func TestBlobs_Deterministic(t *testing.T) {
	cfg := DefaultBlobConfig()
	cfg.Seed = 42

	p1, t1, err := Blobs(cfg)
	require.NoError(t, err)
	p2, t2, err := Blobs(cfg)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, t1, t2)
}

func TestBlobs_ZeroStdCollapsesOntoCenters(t *testing.T) {
	cfg := DefaultBlobConfig()
	cfg.ClusterStd = 0
	cfg.Seed = 3

	points, truth, err := Blobs(cfg)
	require.NoError(t, err)

	first := map[int][]float64{}
	for i, p := range points {
		if f, ok := first[truth[i]]; ok {
			assert.True(t, floats.Equal(f, p), "point %d differs from its blob center", i)
		} else {
			first[truth[i]] = p
		}
		for _, v := range p {
			assert.GreaterOrEqual(t, v, -10.0)
			assert.Less(t, v, 10.0)
		}
	}
	assert.Len(t, first, cfg.Centers)
}

func TestBlobs_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlobConfig)
	}{
		{"no centers", func(c *BlobConfig) { c.Centers = 0 }},
		{"fewer samples than centers", func(c *BlobConfig) { c.Samples = 2 }},
		{"zero dims", func(c *BlobConfig) { c.Dims = 0 }},
		{"negative std", func(c *BlobConfig) { c.ClusterStd = -1 }},
		{"inverted box", func(c *BlobConfig) { c.CenterBox = [2]float64{5, -5} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlobConfig()
			tt.mutate(&cfg)
			_, _, err := Blobs(cfg)
			assert.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestBlobs_RecoveredByKMeans(t *testing.T) {
	cfg := BlobConfig{
		Samples:    300,
		Centers:    3,
		Dims:       2,
		ClusterStd: 0.1,
		CenterBox:  [2]float64{-100, 100},
		Seed:       11,
	}
	points, truth, err := Blobs(cfg)
	require.NoError(t, err)

	// Seed the engine with one point from each blob so the run cannot fall into
	// a local optimum; well-separated blobs must then be recovered exactly.
	initial := [][]float64{points[0], points[100], points[200]}
	kcfg := kmeans.DefaultConfig()
	result, err := kmeans.ClusterFrom(points, initial, kcfg)
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, truth, result.Labels)
}
