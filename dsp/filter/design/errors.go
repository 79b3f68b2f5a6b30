package design

import "errors"

var (
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive and finite")
	// ErrInvalidCutoff is returned when the cutoff is not inside (0, Nyquist).
	ErrInvalidCutoff = errors.New("cutoff must be inside (0, nyquist)")
	// ErrUnknownType is returned for an undefined filter type.
	ErrUnknownType = errors.New("unknown filter type")
)
