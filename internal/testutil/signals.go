// Package testutil provides deterministic test signals and comparison
// helpers for filter tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// Impulse returns n samples with a single 1 at index 0.
func Impulse(n int) []float64 {
	out := make([]float64, n)
	if n > 0 {
		out[0] = 1
	}
	return out
}

// Step returns n samples of value.
func Step(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sine returns n samples of amplitude*sin(2*pi*freqHz*i/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// Noise returns n uniform samples in [-amplitude, amplitude) from a PCG
// source seeded with seed.
func Noise(seed uint64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// SampleProcessor is anything that filters one sample at a time.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// Run feeds input through p and returns the outputs.
func Run(p SampleProcessor, input []float64) []float64 {
	out := make([]float64, len(input))
	for i, x := range input {
		out[i] = p.ProcessSample(x)
	}
	return out
}
