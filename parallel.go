package kmeans

import "sync"

// assign labels every point with its nearest centroid and stores the squared
// distance to it in sqDists. It returns the sum of sqDists (the inertia of this
// assignment). labels and sqDists must have length n.
func assign(data []float64, n, dims int, centroids []float64, k int, labels []int, sqDists []float64) float64 {
	assignRange(data, 0, n, dims, centroids, k, labels, sqDists)
	return sumInOrder(sqDists)
}

// assignParallel is assign split across numWorkers goroutines. Each worker
// handles a contiguous range of points; ranges don't overlap, so writes need no
// synchronization. The result is bitwise identical to assign.
func assignParallel(data []float64, n, dims int, centroids []float64, k int, labels []int, sqDists []float64, numWorkers int) float64 {
	if numWorkers <= 1 || n <= 1 {
		return assign(data, n, dims, centroids, k, labels, sqDists)
	}

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			assignRange(data, start, end, dims, centroids, k, labels, sqDists)
		}(start, end)
	}
	wg.Wait()

	return sumInOrder(sqDists)
}

func assignRange(data []float64, start, end, dims int, centroids []float64, k int, labels []int, sqDists []float64) {
	for i := start; i < end; i++ {
		labels[i], sqDists[i] = nearest(data[i*dims:(i+1)*dims], centroids, k, dims)
	}
}

// sumInOrder sums left to right so the total does not depend on how the
// per-point work was split.
func sumInOrder(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum
}
