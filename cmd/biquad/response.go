package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/cli"
	"github.com/cwbudde/algo-biquad/measure/curve"
	"github.com/cwbudde/algo-biquad/measure/response"
)

const barWidth = 24

// ResponseCmd prints the closed-form magnitude on a log frequency grid.
type ResponseCmd struct {
	FilterFlags `embed:""`

	SampleRate float64 `short:"r" default:"48000" help:"Sample rate in Hz"`
	Points     int     `short:"n" default:"16" help:"Number of log-spaced frequencies"`
	MinFreq    float64 `default:"10" help:"Lowest frequency in Hz"`
	MaxFreq    float64 `default:"20000" help:"Highest frequency in Hz"`
	MinDB      float64 `default:"-12" help:"Bottom of the bar range in dB"`
	MaxDB      float64 `default:"12" help:"Top of the bar range in dB"`
	Measured   bool    `short:"m" help:"Add a column measured from the impulse response"`
	FFTSize    int     `default:"8192" help:"FFT size for --measured"`
}

// Run prints the filter summary and response table.
func (c *ResponseCmd) Run() error {
	return c.write(os.Stdout)
}

func (c *ResponseCmd) write(w io.Writer) error {
	f, err := c.newFilter(c.SampleRate)
	if err != nil {
		return err
	}

	cfg := curve.Config{
		SampleRate: c.SampleRate,
		MinFreq:    c.MinFreq,
		MaxFreq:    c.MaxFreq,
		Points:     c.Points,
		MinDB:      c.MinDB,
		MaxDB:      c.MaxDB,
	}
	points, err := curve.Points(f, cfg)
	if err != nil {
		return err
	}

	var measured *response.Result
	if c.Measured {
		measured, err = response.Measure(f,
			response.WithSampleRate(c.SampleRate),
			response.WithFFTSize(c.FFTSize),
		)
		if err != nil {
			return err
		}
	}

	writeSummary(w, f)
	return writeTable(w, points, measured)
}

func writeSummary(w io.Writer, f *biquad.Filter) {
	coeffs := f.Coefficients()
	poles := coeffs.Poles()

	cli.PrintTitle(w, "Biquad response")
	cli.PrintKeyValue(w, "Structure", f.Parameters().Algorithm)
	cli.PrintKeyValue(w, "Sample rate", fmt.Sprintf("%g Hz", f.SampleRate()))
	cli.PrintKeyValue(w, "Numerator", fmt.Sprintf("%.9g %.9g %.9g", coeffs.A0, coeffs.A1, coeffs.A2))
	cli.PrintKeyValue(w, "Denominator", fmt.Sprintf("1 %.9g %.9g", coeffs.B1, coeffs.B2))
	cli.PrintKeyValue(w, "Poles", fmt.Sprintf("%.6g %.6g", poles[0], poles[1]))
	cli.PrintKeyValue(w, "Stable", coeffs.Stable())
	fmt.Fprintln(w)
}

func writeTable(w io.Writer, points []curve.Point, measured *response.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Freq [Hz]\tClosed form [dB]"
	rule := "---------\t----------------"
	if measured != nil {
		header += "\tMeasured [dB]"
		rule += "\t-------------"
	}
	if _, err := fmt.Fprintf(tw, "%s\t\n%s\t\n", header, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, p := range points {
		row := fmt.Sprintf("%.1f\t%s", p.Freq, formatDB(p.DB, p.Defined))
		if measured != nil {
			_, db := measured.At(p.Freq)
			row += "\t" + formatDB(db, core.IsFinite(db))
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row, bar(p)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func formatDB(db float64, defined bool) string {
	if !defined {
		return "-"
	}
	return fmt.Sprintf("%+.2f", db)
}

func bar(p curve.Point) string {
	if !p.Defined {
		return ""
	}
	n := int(p.Y*barWidth + 0.5)
	return cli.BarStyle.Render(strings.Repeat("#", n))
}
