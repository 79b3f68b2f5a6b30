// Package design turns user-facing filter settings (type, cutoff, Q and
// boost/cut) into the seven-slot coefficient vector consumed by
// dsp/filter/biquad.
//
// First-order types use the bilinear-transformed one-pole prototype;
// second-order types use the RBJ cookbook formulas. All results are
// normalized so the leading denominator coefficient is 1, and the reserved
// C0/D0 slots are left at zero.
package design
