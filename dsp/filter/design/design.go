package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Parameter ranges exposed to hosts.
const (
	MinCutoff     = 20.0
	MaxCutoff     = 18000.0
	MinQ          = 0.0
	MaxQ          = 10.0
	MinBoostCutDB = -96.0
	MaxBoostCutDB = 24.0
)

// Type selects the filter response.
type Type int

const (
	// LPF1 is a first-order lowpass.
	LPF1 Type = iota
	// LPF2 is a second-order lowpass.
	LPF2
	// HPF1 is a first-order highpass.
	HPF1
	// HPF2 is a second-order highpass.
	HPF2
	// BPF2 is a constant-skirt-gain bandpass.
	BPF2
	// Notch is a band-reject filter.
	Notch
	// Peak is a peaking EQ using BoostCutDB.
	Peak
)

var typeNames = [...]string{
	LPF1:  "lpf1",
	LPF2:  "lpf2",
	HPF1:  "hpf1",
	HPF2:  "hpf2",
	BPF2:  "bpf2",
	Notch: "notch",
	Peak:  "peak",
}

// Types returns all defined filter types.
func Types() []Type {
	return []Type{LPF1, LPF2, HPF1, HPF2, BPF2, Notch, Peak}
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType returns the filter type with the given name (case-insensitive).
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("design: %w: %q", ErrUnknownType, name)
}

// Params are the user-facing settings of one filter.
type Params struct {
	Type       Type
	Cutoff     float64 // Hz
	Q          float64
	BoostCutDB float64 // used by Peak only
}

// DefaultParams returns a 1 kHz first-order lowpass with Q 3 and no boost.
func DefaultParams() Params {
	return Params{
		Type:   LPF1,
		Cutoff: 1000,
		Q:      3,
	}
}

// Clamped returns p with cutoff, Q and boost/cut limited to the host ranges.
func (p Params) Clamped() Params {
	p.Cutoff = core.Clamp(p.Cutoff, MinCutoff, MaxCutoff)
	p.Q = core.Clamp(p.Q, MinQ, MaxQ)
	p.BoostCutDB = core.Clamp(p.BoostCutDB, MinBoostCutDB, MaxBoostCutDB)
	return p
}

// Design computes coefficients for p at the given sample rate.
func Design(p Params, sampleRate float64) (biquad.Coefficients, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return biquad.Coefficients{}, fmt.Errorf("design: %w: %v", ErrInvalidSampleRate, sampleRate)
	}

	w0, ok := normalizedW0(p.Cutoff, sampleRate)
	if !ok {
		return biquad.Coefficients{}, fmt.Errorf("design: %w: %v Hz at %v Hz", ErrInvalidCutoff, p.Cutoff, sampleRate)
	}

	switch p.Type {
	case LPF1:
		return onePole(w0, false), nil
	case HPF1:
		return onePole(w0, true), nil
	case LPF2:
		return lowpass(w0, p.Q), nil
	case HPF2:
		return highpass(w0, p.Q), nil
	case BPF2:
		return bandpass(w0, p.Q), nil
	case Notch:
		return notch(w0, p.Q), nil
	case Peak:
		return peak(w0, p.Q, p.BoostCutDB), nil
	default:
		return biquad.Coefficients{}, fmt.Errorf("design: %w: %v", ErrUnknownType, p.Type)
	}
}

// onePole is the bilinear first-order prototype with
// gamma = cos(w0) / (1 + sin(w0)).
func onePole(w0 float64, highpass bool) biquad.Coefficients {
	gamma := math.Cos(w0) / (1 + math.Sin(w0))
	if highpass {
		g := (1 + gamma) / 2
		return biquad.Coefficients{A0: g, A1: -g, B1: -gamma}
	}
	g := (1 - gamma) / 2
	return biquad.Coefficients{A0: g, A1: g, B1: -gamma}
}

func lowpass(w0, q float64) biquad.Coefficients {
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * normalizedQ(q))

	b1 := 1 - cw
	b0 := b1 / 2
	return normalizeBiquad(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

func highpass(w0, q float64) biquad.Coefficients {
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * normalizedQ(q))

	b0 := (1 + cw) / 2
	return normalizeBiquad(b0, -(1 + cw), b0, 1+alpha, -2*cw, 1-alpha)
}

func bandpass(w0, q float64) biquad.Coefficients {
	sw := math.Sin(w0)
	alpha := sw / (2 * normalizedQ(q))

	return normalizeBiquad(sw/2, 0, -sw/2, 1+alpha, -2*math.Cos(w0), 1-alpha)
}

func notch(w0, q float64) biquad.Coefficients {
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * normalizedQ(q))

	return normalizeBiquad(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha)
}

func peak(w0, q, gainDB float64) biquad.Coefficients {
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * normalizedQ(q))
	a := math.Sqrt(core.DBToLinear(gainDB))

	return normalizeBiquad(1+alpha*a, -2*cw, 1-alpha*a, 1+alpha/a, -2*cw, 1-alpha/a)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return biquad.NormalizedFrequency(freq, sampleRate), true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

// normalizeBiquad maps RBJ numerator b and denominator a onto the
// feedforward/feedback slots, dividing by a0.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		A0: b0 / a0,
		A1: b1 / a0,
		A2: b2 / a0,
		B1: a1 / a0,
		B2: a2 / a0,
	}
}
