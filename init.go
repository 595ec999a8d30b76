package kmeans

import "math/rand/v2"

// sampleIndices picks k distinct indices from [0, n) uniformly at random
// without replacement, using a PRNG derived only from seed. The order of the
// returned indices is the order of the initial centroids.
func sampleIndices(n, k int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// Partial Fisher-Yates: only the first k slots need to be settled.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k]
}

// initialCentroids copies the sampled points into a new flat k×dims buffer.
func initialCentroids(data []float64, n, dims, k int, seed uint64) []float64 {
	centroids := make([]float64, k*dims)
	for j, idx := range sampleIndices(n, k, seed) {
		copy(centroids[j*dims:(j+1)*dims], data[idx*dims:(idx+1)*dims])
	}
	return centroids
}
