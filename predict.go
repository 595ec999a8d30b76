package kmeans

import "fmt"

// Predict assigns each point to its nearest centroid, with exact ties going to
// the lowest centroid index. centroids is typically Result.Centroids. All
// points and centroids must share one dimensionality.
func Predict(centroids, points [][]float64) ([]int, error) {
	flatC, k, dims, err := flatten(centroids)
	if err != nil {
		return nil, fmt.Errorf("kmeans: centroids: %w", err)
	}
	if len(points) == 0 {
		return []int{}, nil
	}
	flatP, n, pdims, err := flatten(points)
	if err != nil {
		return nil, err
	}
	if pdims != dims {
		return nil, fmt.Errorf("kmeans: points have %d dimensions, centroids have %d: %w", pdims, dims, ErrInvalidConfiguration)
	}

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i], _ = nearest(flatP[i*dims:(i+1)*dims], flatC, k, dims)
	}
	return labels, nil
}

// Inertia returns the sum of squared distances from each point to the centroid
// its label names.
func Inertia(data, centroids [][]float64, labels []int) (float64, error) {
	if len(labels) != len(data) {
		return 0, fmt.Errorf("kmeans: %d labels for %d points: %w", len(labels), len(data), ErrInvalidConfiguration)
	}
	flatC, k, dims, err := flatten(centroids)
	if err != nil {
		return 0, fmt.Errorf("kmeans: centroids: %w", err)
	}

	var sum float64
	for i, p := range data {
		if len(p) != dims {
			return 0, fmt.Errorf("kmeans: point %d has %d dimensions, want %d: %w", i, len(p), dims, ErrInvalidConfiguration)
		}
		j := labels[i]
		if j < 0 || j >= k {
			return 0, fmt.Errorf("kmeans: label %d of point %d is outside [0, %d): %w", j, i, k, ErrInvalidConfiguration)
		}
		sum += squaredEuclidean(p, flatC[j*dims:(j+1)*dims])
	}
	return sum, nil
}
