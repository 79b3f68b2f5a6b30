package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// pcm16 encodes interleaved 16-bit samples as a minimal WAV file.
func pcm16(sampleRate, channels int, samples []int16) *bytes.Reader {
	return pcm16Declared(sampleRate, channels, samples, len(samples))
}

// pcm16Declared is pcm16 with a data chunk header announcing declared
// samples, which may exceed what follows.
func pcm16Declared(sampleRate, channels int, samples []int16, declared int) *bytes.Reader {
	var buf bytes.Buffer
	le := binary.LittleEndian
	dataSize := uint32(declared * 2)

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, le, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, le, uint32(16))
	_ = binary.Write(&buf, le, uint16(1))
	_ = binary.Write(&buf, le, uint16(channels))
	_ = binary.Write(&buf, le, uint32(sampleRate))
	_ = binary.Write(&buf, le, uint32(sampleRate*channels*2))
	_ = binary.Write(&buf, le, uint16(channels*2))
	_ = binary.Write(&buf, le, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(&buf, le, dataSize)
	_ = binary.Write(&buf, le, samples)
	return bytes.NewReader(buf.Bytes())
}

// stereoTone returns n frames with a square-ish tone on the left channel
// and silence on the right.
func stereoTone(n int) []int16 {
	out := make([]int16, 2*n)
	for i := range n {
		v := int16(8000)
		if (i/8)%2 == 1 {
			v = -8000
		}
		out[2*i] = v
	}
	return out
}

func rawCmd(coeffs ...float64) *ProcessCmd {
	return &ProcessCmd{
		FilterFlags: FilterFlags{Algorithm: "direct", Coeffs: coeffs},
		BlockSize:   64,
	}
}

func TestProcess_Passthrough(t *testing.T) {
	rep, err := rawCmd(1, 0, 0, 0, 0).process(pcm16(8000, 2, stereoTone(1000)))
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if rep.Stream.SampleRate != 8000 || rep.Stream.BlockSize != 64 {
		t.Fatalf("stream = %+v", rep.Stream)
	}
	if len(rep.Channels) != 2 {
		t.Fatalf("channels = %d, want 2", len(rep.Channels))
	}

	in, out := rep.Channels[0].In.Result(), rep.Channels[0].Out.Result()
	if in.Samples != 1000 {
		t.Fatalf("samples = %d, want 1000", in.Samples)
	}
	if in.Peak == 0 || out != in {
		t.Fatalf("in %+v, out %+v", in, out)
	}

	if right := rep.Channels[1].Out.Result(); right.Peak != 0 {
		t.Fatalf("silent channel produced %v", right.Peak)
	}
}

func TestProcess_BipolarLevels(t *testing.T) {
	tests := []struct {
		name   string
		sample int16
		peak   float64
		peakDB float64
	}{
		{name: "silence", sample: 0, peak: 0, peakDB: math.Inf(-1)},
		{name: "half scale", sample: 16384, peak: 0.5, peakDB: -6.020599913279624},
		{name: "negative full scale", sample: -32768, peak: 1, peakDB: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := make([]int16, 256)
			for i := range samples {
				samples[i] = tt.sample
			}

			rep, err := rawCmd(1, 0, 0, 0, 0).process(pcm16(48000, 1, samples))
			if err != nil {
				t.Fatalf("process: %v", err)
			}

			in, out := rep.Channels[0].In.Result(), rep.Channels[0].Out.Result()
			if in.Peak != tt.peak || out.Peak != tt.peak {
				t.Fatalf("peak in %v, out %v, want %v", in.Peak, out.Peak, tt.peak)
			}
			if math.Abs(in.DC-float64(tt.sample)/32768) > 1e-12 {
				t.Fatalf("DC = %v, want %v", in.DC, float64(tt.sample)/32768)
			}
			if math.IsInf(tt.peakDB, -1) {
				if !math.IsInf(out.PeakDB, -1) {
					t.Fatalf("peak = %v dBFS, want -Inf", out.PeakDB)
				}
			} else if math.Abs(out.PeakDB-tt.peakDB) > 1e-9 {
				t.Fatalf("peak = %v dBFS, want %v", out.PeakDB, tt.peakDB)
			}
		})
	}
}

func TestProcess_LowpassOnSilence(t *testing.T) {
	cmd := &ProcessCmd{
		FilterFlags: FilterFlags{Type: "lpf2", Cutoff: 1000, Q: 0.7, Algorithm: "direct"},
		BlockSize:   64,
	}
	rep, err := cmd.process(pcm16(48000, 1, make([]int16, 512)))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out := rep.Channels[0].Out.Result(); out.Peak != 0 || out.DC != 0 {
		t.Fatalf("silence produced %+v", out)
	}
}

func TestProcess_TruncatedData(t *testing.T) {
	// 200 samples declared, 100 present: one full block of 64, then a
	// short read of the remaining 36.
	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = 1000
	}

	rep, err := rawCmd(1, 0, 0, 0, 0).process(pcm16Declared(8000, 1, samples, 200))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if rep.Blocks != 1 {
		t.Fatalf("blocks = %d, want 1", rep.Blocks)
	}
	if rep.Dropped != 136 {
		t.Fatalf("dropped = %d, want 136", rep.Dropped)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, "short.wav", rep); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	if !strings.Contains(buf.String(), "136 samples missing") {
		t.Fatalf("report does not mention truncation:\n%s", buf.String())
	}
}

func TestProcess_HalfGain(t *testing.T) {
	for _, alg := range biquad.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			cmd := rawCmd(0.5, 0, 0, 0, 0)
			cmd.Algorithm = alg.String()

			rep, err := cmd.process(pcm16(44100, 2, stereoTone(300)))
			if err != nil {
				t.Fatalf("process: %v", err)
			}
			in, out := rep.Channels[0].In.Result(), rep.Channels[0].Out.Result()
			if out.Peak != in.Peak/2 {
				t.Fatalf("peak out %v, want %v", out.Peak, in.Peak/2)
			}
		})
	}
}

func TestProcess_BlocksAndUpdates(t *testing.T) {
	// 1000 frames in blocks of 64: 15 full blocks and one of 40.
	rep, err := rawCmd(1, 0, 0, 0, 0).process(pcm16(8000, 2, stereoTone(1000)))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if rep.Blocks != 16 {
		t.Fatalf("blocks = %d, want 16", rep.Blocks)
	}
	if rep.Updates != 1 {
		t.Fatalf("updates = %d, want 1 for fixed coefficients", rep.Updates)
	}
}

func TestProcess_Sweep(t *testing.T) {
	cmd := &ProcessCmd{
		FilterFlags: FilterFlags{Type: "lpf2", Cutoff: 200, Q: 0.7, Algorithm: "transpose-canonical"},
		BlockSize:   128,
		SweepTo:     8000,
	}

	rep, err := cmd.process(pcm16(48000, 2, stereoTone(1024)))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if rep.Blocks != 8 || rep.Updates != 8 {
		t.Fatalf("blocks = %d, updates = %d, want 8 each", rep.Blocks, rep.Updates)
	}
	if out := rep.Channels[0].Out.Result(); out.Peak == 0 || out.NonFinite != 0 {
		t.Fatalf("unexpected output %+v", out)
	}

	if got := cmd.cutoffAt(0, 1024); got != 200 {
		t.Fatalf("cutoff at start = %v, want 200", got)
	}
	if got := cmd.cutoffAt(1023, 1024); math.Abs(got-8000) > 1e-9 {
		t.Fatalf("cutoff at end = %v, want 8000", got)
	}
}

func TestProcess_Errors(t *testing.T) {
	t.Run("not a wav", func(t *testing.T) {
		_, err := rawCmd(1, 0, 0, 0, 0).process(bytes.NewReader([]byte("not a riff file")))
		if err == nil {
			t.Fatal("expected header error")
		}
	})

	t.Run("sweep with raw coefficients", func(t *testing.T) {
		cmd := rawCmd(1, 0, 0, 0, 0)
		cmd.SweepTo = 1000
		if _, err := cmd.process(pcm16(8000, 1, make([]int16, 16))); !errors.Is(err, errSweepWithCoeffs) {
			t.Fatalf("err = %v, want errSweepWithCoeffs", err)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		cmd := rawCmd(1, 0, 0, 0, 0)
		cmd.Algorithm = "lattice"
		if _, err := cmd.process(pcm16(8000, 1, make([]int16, 16))); !errors.Is(err, biquad.ErrUnknownAlgorithm) {
			t.Fatalf("err = %v, want ErrUnknownAlgorithm", err)
		}
	})
}
