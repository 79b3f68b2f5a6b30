package biquad

import (
	"fmt"
	"strings"
)

// Algorithm selects the signal-flow structure used by [Filter.ProcessSample].
type Algorithm int

const (
	// Direct is direct form I.
	Direct Algorithm = iota
	// Canonical is direct form II.
	Canonical
	// TransposeDirect is transposed direct form I.
	TransposeDirect
	// TransposeCanonical is transposed direct form II.
	TransposeCanonical
)

var algorithmNames = [...]string{
	Direct:             "direct",
	Canonical:          "canonical",
	TransposeDirect:    "transpose-direct",
	TransposeCanonical: "transpose-canonical",
}

// Algorithms returns all defined structures in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Direct, Canonical, TransposeDirect, TransposeCanonical}
}

// Valid reports whether a is one of the defined structures.
func (a Algorithm) Valid() bool {
	return a >= Direct && a <= TransposeCanonical
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm returns the structure with the given name. Matching is
// case-insensitive and accepts underscores in place of dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("biquad: %w: %q", ErrUnknownAlgorithm, name)
}

// Parameters carries per-instance settings pushed alongside coefficients.
// The zero value selects [Direct].
type Parameters struct {
	Algorithm Algorithm
}
