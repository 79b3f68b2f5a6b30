package testutil

import (
	"fmt"
	"math"
	"testing"
)

// MaxAbsDiff returns the largest |a[i]-b[i]| and its index.
func MaxAbsDiff(a, b []float64) (diff float64, index int, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > diff {
			diff, index = d, i
		}
	}
	return diff, index, nil
}

// RequireSliceNearlyEqual fails t when the slices differ in length or any
// element differs by more than tol.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, tol float64) {
	t.Helper()
	diff, i, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if diff > tol {
		t.Fatalf("index %d: got %v, want %v (diff %g > %g)", i, got[i], want[i], diff, tol)
	}
}

// RequireFinite fails t on the first NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
