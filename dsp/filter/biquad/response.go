package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// NormalizedFrequency converts a frequency in Hz to the angle in radians per
// sample expected by the response functions.
func NormalizedFrequency(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// MagnitudeGain returns the linear magnitude |H| at angle theta (radians per
// sample) using a closed-form expression. theta is passed to cos unchanged;
// callers normalize with [NormalizedFrequency].
//
// A zero denominator yields +Inf or NaN rather than a panic.
func (c Coefficients) MagnitudeGain(theta float64) float64 {
	cw := math.Cos(theta)
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2

	num := a1*a1 + (a0-a2)*(a0-a2) + 2*a1*(a0+a2)*cw + 4*a0*a2*cw*cw
	den := b1*b1 + (1-b2)*(1-b2) + 2*b1*(1+b2)*cw + 4*b2*cw*cw
	return math.Sqrt(num / den)
}

// MagnitudeDB returns 20*log10(MagnitudeGain(theta)).
func (c Coefficients) MagnitudeDB(theta float64) float64 {
	return core.LinearToDB(c.MagnitudeGain(theta))
}

// Response computes the complex frequency response H(e^jw) at angle theta.
func (c Coefficients) Response(theta float64) complex128 {
	ejw := cmplx.Exp(complex(0, -theta))
	ej2w := cmplx.Exp(complex(0, -2*theta))

	num := complex(c.A0, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	den := complex(1, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	return num / den
}

// Phase returns the phase response in radians at angle theta, in [-pi, pi].
func (c Coefficients) Phase(theta float64) float64 {
	return cmplx.Phase(c.Response(theta))
}

// MagnitudeGain evaluates the current coefficients; the delay line is not
// read. See [Coefficients.MagnitudeGain].
func (f *Filter) MagnitudeGain(theta float64) float64 {
	return f.coeffs.MagnitudeGain(theta)
}

// MagnitudeDB evaluates the current coefficients in dB. See
// [Coefficients.MagnitudeDB].
func (f *Filter) MagnitudeDB(theta float64) float64 {
	return f.coeffs.MagnitudeDB(theta)
}

// ImpulseResponse computes n samples of the impulse response under the
// current structure, starting from a cleared delay line. The delay line is
// saved and restored, so the filter's running state is unchanged. It
// allocates and is meant for analysis, not the audio thread.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := f.state
	f.state = State{}
	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}
	f.state = saved
	return ir
}
