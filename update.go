package kmeans

import (
	"math"
	"math/bits"

	"gonum.org/v1/gonum/floats"
)

// updateCentroids returns a new flat k×dims buffer where every centroid is the
// coordinate-wise mean of the points labelled with it. Sums are accumulated in
// point order. A cluster with no points keeps its centroid from prev; the
// indices of such clusters are returned in ascending order. prev is not
// modified.
func updateCentroids(data []float64, n, dims int, labels []int, prev []float64, k int) ([]float64, []int) {
	next := make([]float64, k*dims)
	counts := make([]int, k)

	for i := 0; i < n; i++ {
		j := labels[i]
		floats.Add(next[j*dims:(j+1)*dims], data[i*dims:(i+1)*dims])
		counts[j]++
	}

	var empty []int
	for j := 0; j < k; j++ {
		c := next[j*dims : (j+1)*dims]
		if counts[j] == 0 {
			copy(c, prev[j*dims:(j+1)*dims])
			empty = append(empty, j)
			continue
		}
		if !isFinite(c) {
			scaledMean(c, data, n, dims, labels, j, counts[j])
			continue
		}
		floats.Scale(1/float64(counts[j]), c)
	}
	return next, empty
}

// scaledMean recomputes the mean of cluster j into c when the plain sum
// overflowed. Every point is first scaled by a power of two no smaller than
// count, which is exact and keeps the running sum within range.
func scaledMean(c, data []float64, n, dims int, labels []int, j, count int) {
	shift := bits.Len(uint(count))
	down := math.Ldexp(1, -shift)

	for d := range c {
		c[d] = 0
	}
	for i := 0; i < n; i++ {
		if labels[i] == j {
			floats.AddScaled(c, down, data[i*dims:(i+1)*dims])
		}
	}
	floats.Scale(1/float64(count), c)
	floats.Scale(math.Ldexp(1, shift), c)
}

func isFinite(v []float64) bool {
	for _, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// maxShift is the largest Euclidean distance between corresponding centroids
// of prev and next.
func maxShift(prev, next []float64, k, dims int) float64 {
	var shift float64
	for j := 0; j < k; j++ {
		shift = max(shift, EuclideanDistance(prev[j*dims:(j+1)*dims], next[j*dims:(j+1)*dims]))
	}
	return shift
}
