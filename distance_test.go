package kmeans

import (
	"math"
	"testing"
)

const floatTol = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEuclideanDistance_IdenticalVectors(t *testing.T) {
	a := []float64{1, 2, 3}
	if d := EuclideanDistance(a, a); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestEuclideanDistance_UnitVectors(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{0, 1, 0}
	expected := math.Sqrt(2)
	if d := EuclideanDistance(a, b); !almostEqual(d, expected, floatTol) {
		t.Errorf("expected %v, got %v", expected, d)
	}
}

func TestEuclideanDistance_HandComputed(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	// sqrt(9+16+0) = 5
	if d := EuclideanDistance(a, b); !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", d)
	}
}

func TestSquaredEuclidean(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	if d := squaredEuclidean(a, b); d != 25 {
		t.Errorf("expected 25, got %v", d)
	}
	if d := squaredEuclidean(a, a); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestNearest(t *testing.T) {
	centroids := []float64{
		0, 0,
		10, 10,
		20, 20,
	}
	tests := []struct {
		name     string
		p        []float64
		wantIdx  int
		wantDist float64
	}{
		{"on first", []float64{0, 0}, 0, 0},
		{"near second", []float64{9, 10}, 1, 1},
		{"beyond last", []float64{25, 20}, 2, 25},
		// (5,5) is equidistant from centroids 0 and 1.
		{"tie goes to lowest index", []float64{5, 5}, 0, 50},
		{"tie between 1 and 2", []float64{15, 15}, 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, d := nearest(tt.p, centroids, 3, 2)
			if idx != tt.wantIdx {
				t.Errorf("index: got %d, want %d", idx, tt.wantIdx)
			}
			if d != tt.wantDist {
				t.Errorf("squared distance: got %v, want %v", d, tt.wantDist)
			}
		})
	}
}

func TestNearest_DuplicateCentroids(t *testing.T) {
	centroids := []float64{
		3, 3,
		1, 1,
		1, 1,
	}
	idx, _ := nearest([]float64{1, 1}, centroids, 3, 2)
	if idx != 1 {
		t.Errorf("expected lowest index among duplicates (1), got %d", idx)
	}
}

func TestNearest_OverflowingDistances(t *testing.T) {
	centroids := []float64{1e200, -1e200}
	tests := []struct {
		name     string
		p        []float64
		wantIdx  int
		wantDist float64
	}{
		{"on second", []float64{-1e200}, 1, 0},
		// Both squared distances overflow; -3e200 is closer to -1e200.
		{"all overflow", []float64{-3e200}, 1, math.Inf(1)},
		{"all overflow near first", []float64{4e200}, 0, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, d := nearest(tt.p, centroids, 2, 1)
			if idx != tt.wantIdx {
				t.Errorf("index: got %d, want %d", idx, tt.wantIdx)
			}
			if d != tt.wantDist {
				t.Errorf("squared distance: got %v, want %v", d, tt.wantDist)
			}
		})
	}
}

func TestNearest_OverflowTieGoesToLowestIndex(t *testing.T) {
	centroids := []float64{2e200, -2e200}
	idx, _ := nearest([]float64{0}, centroids, 2, 1)
	if idx != 0 {
		t.Errorf("expected lowest index on tie, got %d", idx)
	}
}

func TestEuclideanDistance_LargeValues(t *testing.T) {
	d := EuclideanDistance([]float64{3e200, 0}, []float64{0, 4e200})
	if !almostEqual(d/5e200, 1, floatTol) {
		t.Errorf("expected 5e200, got %v", d)
	}
}
