package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/cli"
	"github.com/cwbudde/algo-biquad/measure/level"
	"github.com/mjibson/go-dsp/wav"
)

var (
	errNoChannels      = errors.New("WAV file has no channels")
	errSampleFormat    = errors.New("unsupported WAV sample format")
	errSweepWithCoeffs = errors.New("--sweep-to needs a designed filter, not raw coefficients")
)

// ProcessCmd runs a WAV file through one filter per channel.
type ProcessCmd struct {
	FilterFlags `embed:""`

	BlockSize int     `short:"b" default:"512" help:"Frames between coefficient updates"`
	SweepTo   float64 `help:"Glide the cutoff logarithmically to this frequency over the file"`
	File      string  `arg:"" type:"existingfile" help:"WAV file to process"`
}

// Run processes the file and prints per-channel levels.
func (c *ProcessCmd) Run() error {
	fh, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer fh.Close()

	rep, err := c.process(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	return writeReport(os.Stdout, c.File, rep)
}

// channelLevels meters one channel before and after the filter.
type channelLevels struct {
	In, Out level.Meter
}

type report struct {
	Stream   core.StreamConfig
	Blocks   int
	Updates  int
	Channels []channelLevels

	// Samples declared by the data chunk but missing from the file. A
	// short final block is dropped whole.
	Dropped int
}

// readBipolar reads n interleaved samples scaled to [-1, 1]. PCM is
// centred on zero here because go-dsp's ReadFloats maps it to [0, 1].
func readBipolar(w *wav.Wav, n int) ([]float64, error) {
	data, err := w.ReadSamples(n)
	if err != nil {
		return nil, err
	}

	var out []float64
	switch v := data.(type) {
	case []int16:
		out = make([]float64, len(v))
		for i, s := range v {
			out[i] = float64(s) / 32768
		}
	case []uint8:
		out = make([]float64, len(v))
		for i, s := range v {
			out[i] = (float64(s) - 128) / 128
		}
	case []float32:
		out = make([]float64, len(v))
		for i, s := range v {
			out[i] = float64(s)
		}
	default:
		return nil, fmt.Errorf("%w: %d-bit", errSampleFormat, w.BitsPerSample)
	}
	return out, nil
}

// process decodes r block by block. The control side publishes a snapshot
// before each block that needs new coefficients and every channel filter
// acquires it at the block boundary.
func (c *ProcessCmd) process(r io.Reader) (*report, error) {
	if c.SweepTo > 0 && len(c.Coeffs) > 0 {
		return nil, errSweepWithCoeffs
	}

	w, err := wav.New(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV header: %w", err)
	}
	channels := int(w.NumChannels)
	if channels == 0 {
		return nil, errNoChannels
	}

	stream := core.ApplyStreamOptions(
		core.WithSampleRate(float64(w.SampleRate)),
		core.WithBlockSize(c.BlockSize),
	)
	if err := stream.Validate(); err != nil {
		return nil, err
	}

	params, err := c.parameters()
	if err != nil {
		return nil, err
	}

	filters := make([]*biquad.Filter, channels)
	for i := range filters {
		filters[i] = biquad.NewFilter()
		filters[i].Reset(stream.SampleRate)
	}

	rep := &report{Stream: stream, Channels: make([]channelLevels, channels)}
	totalFrames := w.Samples / channels
	frame := 0
	remaining := w.Samples

	var exchange biquad.Exchange
	for remaining > 0 {
		if rep.Blocks == 0 || c.SweepTo > 0 {
			coeffs, err := c.coefficients(c.cutoffAt(frame, totalFrames), stream.SampleRate)
			if err != nil {
				return nil, err
			}
			exchange.Publish(biquad.Snapshot{Coefficients: coeffs, Parameters: params})
		}

		block, err := readBipolar(w, min(stream.BlockSize*channels, remaining))
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			rep.Dropped = remaining
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read samples: %w", err)
		}
		remaining -= len(block)

		for ch, f := range filters {
			if f.Acquire(&exchange) && ch == 0 {
				rep.Updates++
			}
		}

		for i, x := range block {
			ch := i % channels
			y := core.FlushDenormals(filters[ch].ProcessSample(x))
			rep.Channels[ch].In.Add(x)
			rep.Channels[ch].Out.Add(y)
		}
		frame += len(block) / channels
		rep.Blocks++
	}

	return rep, nil
}

// cutoffAt returns the cutoff for the block starting at frame.
func (c *ProcessCmd) cutoffAt(frame, totalFrames int) float64 {
	if c.SweepTo <= 0 || totalFrames <= 1 {
		return c.Cutoff
	}
	pos := float64(frame) / float64(totalFrames-1)
	return c.Cutoff * math.Pow(c.SweepTo/c.Cutoff, pos)
}

func writeReport(w io.Writer, name string, rep *report) error {
	cli.PrintTitle(w, name)
	cli.PrintKeyValue(w, "Sample rate", fmt.Sprintf("%g Hz", rep.Stream.SampleRate))
	cli.PrintKeyValue(w, "Block size", rep.Stream.BlockSize)
	cli.PrintKeyValue(w, "Blocks", rep.Blocks)
	cli.PrintKeyValue(w, "Updates", rep.Updates)
	if rep.Dropped > 0 {
		cli.PrintKeyValue(w, "Truncated", fmt.Sprintf("%d samples missing, last block dropped", rep.Dropped))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tPeak in [dBFS]\tRMS in [dBFS]\tPeak out [dBFS]\tRMS out [dBFS]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t--------------\t-------------\t---------------\t--------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for ch := range rep.Channels {
		in, out := rep.Channels[ch].In.Result(), rep.Channels[ch].Out.Result()
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
			ch, in.PeakDB, in.RMSDB, out.PeakDB, out.RMSDB,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
