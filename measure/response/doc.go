// Package response measures the magnitude response of a biquad filter from
// its impulse response.
//
// The filter's impulse response is taken through the selected structure
// (see biquad.Filter.ImpulseResponse), transformed with an FFT, and reduced
// to per-bin magnitudes. This exercises the time-domain recursion rather
// than the coefficients, so it exposes structures that do not realize the
// nominal transfer function.
//
// # Usage
//
//	res, err := response.Measure(f, response.WithFFTSize(8192))
//	gain, db := res.At(1000)
package response
