//go:build !biquadassert

package biquad

import "testing"

func TestUndefinedAlgorithm_PassThrough(t *testing.T) {
	f := newFilter(lowpassCoeffs(), Direct)
	f.ProcessSample(1)
	state := f.State()

	f.SetParameters(Parameters{Algorithm: Algorithm(42)})
	for _, x := range []float64{0.3, -0.7, 0} {
		if y := f.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v) = %v, want pass-through", x, y)
		}
	}
	if f.State() != state {
		t.Fatal("pass-through fallback must not touch state")
	}
}
