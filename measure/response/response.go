package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-vecmath"
)

const minFFTSize = 8

// Config holds measurement settings.
type Config struct {
	SampleRate float64
	FFTSize    int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 48 kHz and a 4096-point FFT.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		FFTSize:    4096,
	}
}

// WithSampleRate sets the rate used to label bin frequencies.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) { cfg.SampleRate = sampleRate }
}

// WithFFTSize sets the impulse response length and FFT size.
func WithFFTSize(n int) Option {
	return func(cfg *Config) { cfg.FFTSize = n }
}

// Result holds the measured response for bins 0..FFTSize/2.
type Result struct {
	SampleRate float64
	FFTSize    int
	Freqs      []float64 // bin center in Hz
	Gain       []float64 // linear magnitude
	DB         []float64 // 20*log10(Gain)
}

// Measure runs an impulse through f and returns its magnitude response.
// The filter's running state is left unchanged.
func Measure(f *biquad.Filter, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilFilter
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	stream := core.StreamConfig{SampleRate: cfg.SampleRate}
	if err := stream.Validate(); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	n := cfg.FFTSize
	if n < minFFTSize || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
	}

	ir := f.ImpulseResponse(n)
	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	res := &Result{
		SampleRate: cfg.SampleRate,
		FFTSize:    n,
		Freqs:      make([]float64, bins),
		Gain:       make([]float64, bins),
		DB:         make([]float64, bins),
	}
	vecmath.Magnitude(res.Gain, re, im)

	binWidth := cfg.SampleRate / float64(n)
	for k := range bins {
		res.Freqs[k] = float64(k) * binWidth
		res.DB[k] = core.LinearToDB(res.Gain[k])
	}

	return res, nil
}

// Bin returns the index of the bin nearest to freqHz, clamped to the
// available range.
func (r *Result) Bin(freqHz float64) int {
	if len(r.Freqs) == 0 {
		return 0
	}
	k := math.Round(freqHz * float64(r.FFTSize) / r.SampleRate)
	return int(core.Clamp(k, 0, float64(len(r.Freqs)-1)))
}

// At returns the linear gain and dB value of the bin nearest to freqHz.
func (r *Result) At(freqHz float64) (gain, db float64) {
	if len(r.Gain) == 0 {
		return math.NaN(), math.NaN()
	}
	k := r.Bin(freqHz)
	return r.Gain[k], r.DB[k]
}

// MagnitudeSource evaluates a closed-form magnitude at an angle in radians
// per sample. Both biquad.Coefficients and *biquad.Filter satisfy it.
type MagnitudeSource interface {
	MagnitudeGain(theta float64) float64
}

// MaxDeviation returns the largest absolute difference in linear gain
// between the measurement and src, skipping bins where src is not finite.
func (r *Result) MaxDeviation(src MagnitudeSource) float64 {
	var maxDev float64
	for k, freq := range r.Freqs {
		want := src.MagnitudeGain(biquad.NormalizedFrequency(freq, r.SampleRate))
		if !core.IsFinite(want) {
			continue
		}
		if d := math.Abs(r.Gain[k] - want); d > maxDev {
			maxDev = d
		}
	}
	return maxDev
}
