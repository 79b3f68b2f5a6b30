// Package biquad provides a second-order IIR (biquad) filter engine with
// selectable signal-flow structures.
//
// A [Filter] owns one [Coefficients] vector, one [State] delay line and one
// [Parameters] record. [Filter.ProcessSample] runs the selected [Algorithm]:
//
//   - [Direct]: direct form I, two input and two output delays.
//   - [Canonical]: direct form II, a shared two-slot delay line.
//   - [TransposeDirect]: transposed direct form I.
//   - [TransposeCanonical]: transposed direct form II.
//
// The structures realize the same transfer function and differ in roundoff
// behaviour and in which intermediate values are held in state. Switching
// the algorithm keeps the current state; call [Filter.Reset] for a clean
// start.
//
// The magnitude response ([Coefficients.MagnitudeGain],
// [Coefficients.MagnitudeDB]) is evaluated in closed form from the
// coefficients alone. Its argument is an angle in radians; use
// [NormalizedFrequency] to convert from Hz.
//
// This package holds the runtime only. Coefficient design lives in
// dsp/filter/design.
package biquad
