//go:build biquadassert

package biquad

const assertions = true
