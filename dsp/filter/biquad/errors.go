package biquad

import "errors"

// ErrUnknownAlgorithm is returned when a structure name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")
