package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSampleRate is returned by [StreamConfig.Validate] for a rate
// that is not positive and finite.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// StreamConfig describes the audio stream a filter instance is driven by.
type StreamConfig struct {
	SampleRate float64
	BlockSize  int
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns 48 kHz with 512-sample control blocks.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: 48000,
		BlockSize:  512,
	}
}

// WithSampleRate sets the stream sample rate. The value is stored as given
// so that Validate can reject it.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithBlockSize sets the number of samples between parameter updates.
// Non-positive sizes are ignored.
func WithBlockSize(blockSize int) StreamOption {
	return func(cfg *StreamConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports configuration errors the transport must handle before
// resetting any filter.
func (c StreamConfig) Validate() error {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("core: %w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	return nil
}
