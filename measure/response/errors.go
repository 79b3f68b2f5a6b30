package response

import "errors"

var (
	// ErrNilFilter is returned when Measure is called without a filter.
	ErrNilFilter = errors.New("response: nil filter")
	// ErrInvalidFFTSize is returned for sizes that are not a power of two
	// of at least 8.
	ErrInvalidFFTSize = errors.New("response: FFT size must be a power of two >= 8")
)
