package curve

import "errors"

var (
	// ErrInvalidRange indicates a frequency or dB range that is empty,
	// non-finite, or starts at or below 0 Hz.
	ErrInvalidRange = errors.New("curve: invalid range")
	// ErrInvalidPoints indicates fewer than two grid points.
	ErrInvalidPoints = errors.New("curve: need at least two points")
)
