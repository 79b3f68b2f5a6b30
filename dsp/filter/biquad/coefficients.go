package biquad

// NumCoefficients is the length of the positional coefficient vector.
const NumCoefficients = 7

// NumStates is the length of the positional state vector.
const NumStates = 4

// Coefficients holds the transfer function coefficients of one biquad:
//
//	H(z) = (A0 + A1*z^-1 + A2*z^-2) / (1 + B1*z^-1 + B2*z^-2)
//
// C0 and D0 are reserved slots kept for layout compatibility with
// non-recursive paths. None of the structures read them.
type Coefficients struct {
	A0, A1, A2 float64 // feedforward
	B1, B2     float64 // feedback
	C0, D0     float64 // reserved
}

// CoefficientsFromArray builds Coefficients from the positional vector
// (a0, a1, a2, b1, b2, c0, d0).
func CoefficientsFromArray(v [NumCoefficients]float64) Coefficients {
	return Coefficients{
		A0: v[0], A1: v[1], A2: v[2],
		B1: v[3], B2: v[4],
		C0: v[5], D0: v[6],
	}
}

// Array returns the positional vector (a0, a1, a2, b1, b2, c0, d0).
func (c Coefficients) Array() [NumCoefficients]float64 {
	return [NumCoefficients]float64{c.A0, c.A1, c.A2, c.B1, c.B2, c.C0, c.D0}
}

// State is the delay line of a biquad: two input history slots and two
// output history slots. Structures that keep a single delay line use the
// X slots only, except [TransposeDirect] which uses all four.
type State struct {
	XZ1, XZ2 float64
	YZ1, YZ2 float64
}

// Array returns the positional vector (x_z1, x_z2, y_z1, y_z2).
func (s State) Array() [NumStates]float64 {
	return [NumStates]float64{s.XZ1, s.XZ2, s.YZ1, s.YZ2}
}
