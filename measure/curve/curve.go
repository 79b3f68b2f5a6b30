package curve

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// MagnitudeSource evaluates a magnitude in dB at an angle in radians per
// sample. Both biquad.Coefficients and *biquad.Filter satisfy it.
type MagnitudeSource interface {
	MagnitudeDB(theta float64) float64
}

// Point is one sample of a magnitude curve.
type Point struct {
	Freq    float64 // Hz
	DB      float64 // magnitude as returned by the source
	Y       float64 // DB mapped to [0, 1] with clamping, 0 when undefined
	Defined bool    // false when DB is NaN or Inf
}

// Config describes the grid and the vertical range of a curve.
type Config struct {
	SampleRate float64
	MinFreq    float64
	MaxFreq    float64
	Points     int
	MinDB      float64
	MaxDB      float64
}

// DefaultConfig returns 512 points from 10 Hz to 20 kHz at 48 kHz with a
// vertical range of -12 to +12 dB.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		MinFreq:    10,
		MaxFreq:    20000,
		Points:     512,
		MinDB:      -12,
		MaxDB:      12,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := (core.StreamConfig{SampleRate: c.SampleRate}).Validate(); err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	if c.Points < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidPoints, c.Points)
	}
	if !core.IsFinite(c.MinFreq) || !core.IsFinite(c.MaxFreq) || c.MinFreq <= 0 || c.MaxFreq <= c.MinFreq {
		return fmt.Errorf("%w: %v..%v Hz", ErrInvalidRange, c.MinFreq, c.MaxFreq)
	}
	if !core.IsFinite(c.MinDB) || !core.IsFinite(c.MaxDB) || c.MaxDB <= c.MinDB {
		return fmt.Errorf("%w: %v..%v dB", ErrInvalidRange, c.MinDB, c.MaxDB)
	}
	return nil
}

// LogGrid returns n frequencies spaced evenly on a log axis from minHz to
// maxHz inclusive. The step is range/(n-1), so the last point is maxHz
// itself; a step of range/n would stop one step short of the top edge.
func LogGrid(minHz, maxHz float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, n)
	}
	if !core.IsFinite(minHz) || !core.IsFinite(maxHz) || minHz <= 0 || maxHz <= minHz {
		return nil, fmt.Errorf("%w: %v..%v Hz", ErrInvalidRange, minHz, maxHz)
	}

	grid := make([]float64, n)
	ratio := math.Log(maxHz / minHz)
	for i := range grid {
		grid[i] = minHz * math.Exp(ratio*float64(i)/float64(n-1))
	}
	grid[n-1] = maxHz
	return grid, nil
}

// Sample evaluates src at each grid frequency. Y is left at zero.
func Sample(src MagnitudeSource, grid []float64, sampleRate float64) []Point {
	points := make([]Point, len(grid))
	for i, freq := range grid {
		db := src.MagnitudeDB(biquad.NormalizedFrequency(freq, sampleRate))
		points[i] = Point{Freq: freq, DB: db, Defined: core.IsFinite(db)}
	}
	return points
}

// MapValue maps v linearly from [srcMin, srcMax] onto [dstMin, dstMax].
// With clamp set the result is limited to the destination range, which
// may be given in either order.
func MapValue(srcMin, srcMax, dstMin, dstMax, v float64, clamp bool) float64 {
	out := dstMin + (v-srcMin)*(dstMax-dstMin)/(srcMax-srcMin)
	if !clamp {
		return out
	}
	return core.Clamp(out, dstMin, dstMax)
}

// Points samples src on the grid described by cfg and maps each defined
// point onto [0, 1] between cfg.MinDB and cfg.MaxDB, with 0 at MinDB.
//
// Undefined points keep Y = 0, the bottom of the range, and are flagged by
// Defined = false. Renderers should skip them rather than draw them; in
// screen coordinates where y grows downwards Y = 0 maps to the bottom edge,
// not the top.
func Points(src MagnitudeSource, cfg Config) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := LogGrid(cfg.MinFreq, cfg.MaxFreq, cfg.Points)
	if err != nil {
		return nil, err
	}

	points := Sample(src, grid, cfg.SampleRate)
	for i := range points {
		if points[i].Defined {
			points[i].Y = MapValue(cfg.MinDB, cfg.MaxDB, 0, 1, points[i].DB, true)
		}
	}
	return points, nil
}
