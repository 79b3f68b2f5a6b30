// Package curve samples a filter's closed-form magnitude response on a
// logarithmic frequency grid for plotting.
//
// Points that evaluate to NaN or Inf, for example at an exact zero of the
// numerator or on a pole, are returned with Defined set to false so a
// renderer can skip them.
package curve
