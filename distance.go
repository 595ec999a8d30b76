package kmeans

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EuclideanDistance returns the L2 distance between a and b.
// a and b must have the same length. The sum is scaled internally, so the
// result stays finite for any finite inputs whose difference is finite.
func EuclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// squaredEuclidean skips the sqrt; nearest-centroid search and inertia only
// need the squared form. It overflows to +Inf once the distance exceeds
// about 1.3e154.
func squaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// nearest returns the index of the centroid in the flat k×dims buffer closest
// to p, and the squared distance to it. Exact ties resolve to the lowest index.
//
// A squared distance that overflows is larger than every finite one, so the
// fast squared comparison is only abandoned when it overflows for all k
// centroids. The winner is then picked by scaled Euclidean distance and the
// reported squared distance is +Inf.
func nearest(p, centroids []float64, k, dims int) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for j := 0; j < k; j++ {
		d := squaredEuclidean(p, centroids[j*dims:(j+1)*dims])
		if d < bestDist {
			best = j
			bestDist = d
		}
	}
	if best >= 0 {
		return best, bestDist
	}
	return nearestScaled(p, centroids, k, dims), math.Inf(1)
}

// nearestScaled ranks centroids by EuclideanDistance, lowest index on ties.
func nearestScaled(p, centroids []float64, k, dims int) int {
	best := 0
	bestDist := math.Inf(1)
	for j := 0; j < k; j++ {
		d := EuclideanDistance(p, centroids[j*dims:(j+1)*dims])
		if d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}
