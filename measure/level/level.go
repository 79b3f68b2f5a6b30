// Package level accumulates peak, RMS and DC readings over a stream of
// samples, one value at a time so it can sit next to a per-sample filter.
package level

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Reading is a snapshot of a Meter.
type Reading struct {
	Samples       int
	Peak          float64 // max |x|
	PeakDB        float64
	RMS           float64
	RMSDB         float64
	DC            float64 // mean
	CrestFactorDB float64 // peak over RMS, 0 when RMS is 0
	NonFinite     int     // NaN or Inf samples, excluded from the rest
}

// Meter is a streaming level accumulator. The zero value is ready to use.
type Meter struct {
	n         int
	mean      float64
	sumSq     float64
	peak      float64
	nonFinite int
}

// Add feeds one sample.
func (m *Meter) Add(x float64) {
	if !core.IsFinite(x) {
		m.nonFinite++
		return
	}
	m.n++
	m.mean += (x - m.mean) / float64(m.n)
	m.sumSq += x * x
	if a := math.Abs(x); a > m.peak {
		m.peak = a
	}
}

// Update feeds a block of samples.
func (m *Meter) Update(samples []float64) {
	for _, x := range samples {
		m.Add(x)
	}
}

// Result returns the current reading. An empty meter reports -Inf dB.
func (m *Meter) Result() Reading {
	r := Reading{
		Samples:   m.n,
		Peak:      m.peak,
		DC:        m.mean,
		NonFinite: m.nonFinite,
	}
	if m.n > 0 {
		r.RMS = math.Sqrt(m.sumSq / float64(m.n))
	}
	r.PeakDB = core.LinearToDB(r.Peak)
	r.RMSDB = core.LinearToDB(r.RMS)
	if r.RMS > 0 {
		r.CrestFactorDB = core.LinearToDB(r.Peak / r.RMS)
	}
	return r
}

// Reset clears the meter.
func (m *Meter) Reset() {
	*m = Meter{}
}
