package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

var errCoeffCount = errors.New("expected 5 or 7 coefficients")

// FilterFlags select the coefficients and structure shared by the
// response and process commands.
type FilterFlags struct {
	Type      string    `short:"t" default:"lpf1" help:"Filter type (${types})"`
	Cutoff    float64   `short:"f" default:"1000" help:"Cutoff or centre frequency in Hz"`
	Q         float64   `short:"q" default:"3" help:"Quality factor"`
	Gain      float64   `short:"g" default:"0" help:"Boost or cut in dB for peak filters"`
	Algorithm string    `short:"a" default:"direct" help:"Filter structure (${algorithms})"`
	Coeffs    []float64 `sep:"," placeholder:"A0,A1,A2,B1,B2" help:"Raw coefficients instead of a design"`
}

func (f FilterFlags) params() (design.Params, error) {
	typ, err := design.ParseType(f.Type)
	if err != nil {
		return design.Params{}, err
	}
	return design.Params{Type: typ, Cutoff: f.Cutoff, Q: f.Q, BoostCutDB: f.Gain}, nil
}

// coefficients returns the raw coefficients when given, otherwise the
// design at cutoff for sampleRate.
func (f FilterFlags) coefficients(cutoff, sampleRate float64) (biquad.Coefficients, error) {
	switch len(f.Coeffs) {
	case 0:
	case 5, biquad.NumCoefficients:
		var v [biquad.NumCoefficients]float64
		copy(v[:], f.Coeffs)
		return biquad.CoefficientsFromArray(v), nil
	default:
		return biquad.Coefficients{}, fmt.Errorf("%w, got %d", errCoeffCount, len(f.Coeffs))
	}

	p, err := f.params()
	if err != nil {
		return biquad.Coefficients{}, err
	}
	p.Cutoff = cutoff
	return design.Design(p.Clamped(), sampleRate)
}

func (f FilterFlags) parameters() (biquad.Parameters, error) {
	alg, err := biquad.ParseAlgorithm(f.Algorithm)
	if err != nil {
		return biquad.Parameters{}, err
	}
	return biquad.Parameters{Algorithm: alg}, nil
}

// newFilter builds a reset filter ready to run at sampleRate.
func (f FilterFlags) newFilter(sampleRate float64) (*biquad.Filter, error) {
	c, err := f.coefficients(f.Cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	params, err := f.parameters()
	if err != nil {
		return nil, err
	}

	filter := biquad.NewFilter()
	filter.Reset(sampleRate)
	filter.SetCoefficients(c)
	filter.SetParameters(params)
	return filter, nil
}
