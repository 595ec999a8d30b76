// Package kmeans implements K-Means clustering with Lloyd's algorithm.
//
// Each run seeds K centroids by sampling distinct points uniformly at random,
// then alternates two steps until the centroids stop moving or the iteration
// budget runs out:
//
//   - assignment: every point joins its nearest centroid (Euclidean distance,
//     ties go to the lowest centroid index)
//   - update: every centroid becomes the mean of the points assigned to it;
//     a centroid that received no points keeps its previous position
//
// Basic usage:
//
//	cfg := kmeans.DefaultConfig()
//	cfg.K = 3
//	cfg.Seed = 42
//	result, err := kmeans.Cluster(data, cfg)
//	// result.Labels[i] is the cluster index of point i, in [0, K)
//	// result.Centroids[j] is the center of cluster j
//	// result.Converged reports whether the run stopped before MaxIterations
//
// A run is a pure function of the data, the config and the seed: the same
// inputs always produce the same centroids and labels, regardless of
// Config.Workers.
//
// To start from known centroids instead of random sampling:
//
//	result, err := kmeans.ClusterFrom(data, initial, cfg)
//
// Invalid input (empty or ragged data, K outside [1, N], bad iteration or
// tolerance settings) returns an error matching [ErrInvalidConfiguration].
package kmeans
