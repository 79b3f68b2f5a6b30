package biquad

import "fmt"

// Filter is one biquad instance: coefficients, delay line and structure
// selection. A Filter belongs to a single audio channel and must not be
// shared between goroutines; see [Exchange] for cross-thread coefficient
// updates.
type Filter struct {
	coeffs     Coefficients
	state      State
	params     Parameters
	sampleRate float64

	// last snapshot version applied by Acquire
	version uint64
}

// NewFilter returns a Filter with zero coefficients, zero state and the
// [Direct] structure. Call [Filter.Reset] before processing.
func NewFilter() *Filter {
	return &Filter{}
}

// Reset clears the delay line and records the sample rate. The rate is not
// used by the current structures and is not validated, so Reset always
// reports success.
func (f *Filter) Reset(sampleRate float64) bool {
	f.state = State{}
	f.sampleRate = sampleRate
	return true
}

// SampleRate returns the rate passed to the last Reset.
func (f *Filter) SampleRate() float64 {
	return f.sampleRate
}

// SetCoefficients replaces the whole coefficient vector. Values are not
// validated; the change takes effect on the next ProcessSample call.
func (f *Filter) SetCoefficients(c Coefficients) {
	f.coeffs = c
}

// Coefficients returns a copy of the current coefficient vector.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}

// State returns a copy of the current delay line.
func (f *Filter) State() State {
	return f.state
}

// Parameters returns the current parameter record.
func (f *Filter) Parameters() Parameters {
	return f.params
}

// SetParameters replaces the parameter record. The delay line is kept as
// is, so history written by the previous structure is read by the new one.
//
// An undefined algorithm panics in builds tagged biquadassert. Otherwise it
// is accepted and ProcessSample passes samples through unchanged.
func (f *Filter) SetParameters(p Parameters) {
	if assertions && !p.Algorithm.Valid() {
		panic(fmt.Sprintf("biquad: undefined algorithm %d", int(p.Algorithm)))
	}
	f.params = p
}

// ProcessSample filters one input sample and returns the output, updating
// the delay line in place. It does not allocate or block.
func (f *Filter) ProcessSample(x float64) float64 {
	c := &f.coeffs
	s := &f.state

	switch f.params.Algorithm {
	case Direct:
		y := c.A0*x + c.A1*s.XZ1 + c.A2*s.XZ2 - c.B1*s.YZ1 - c.B2*s.YZ2
		s.XZ2 = s.XZ1
		s.XZ1 = x
		s.YZ2 = s.YZ1
		s.YZ1 = y
		return y

	case Canonical:
		// Both feedforward history taps read XZ1.
		w := x - c.B1*s.XZ1 - c.B2*s.XZ2
		y := c.A0*w + c.A1*s.XZ1 + c.A2*s.XZ1
		s.XZ2 = s.XZ1
		s.XZ1 = w
		return y

	case TransposeDirect:
		w := x + s.YZ1
		y := c.A0*w + s.XZ1
		s.YZ1 = -c.B1*w + s.YZ2
		s.YZ2 = -c.B2 * w
		s.XZ1 = c.A1*w + s.XZ2
		s.XZ2 = c.A2 * w
		return y

	case TransposeCanonical:
		y := c.A0*x + s.XZ1
		s.XZ1 = c.A1*x - c.B1*y + s.XZ2
		s.XZ2 = c.A2*x - c.B2*y
		return y

	default:
		if assertions {
			panic(fmt.Sprintf("biquad: undefined algorithm %d", int(f.params.Algorithm)))
		}
		return x
	}
}
