//go:build !biquadassert

package biquad

// assertions turns undefined-algorithm fallbacks into panics. Enable with
// -tags biquadassert.
const assertions = false
