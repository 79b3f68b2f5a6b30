// Command biquad designs, inspects and runs second-order IIR sections.
//
// Usage:
//
//	biquad response [flags]
//	biquad process [flags] <file.wav>
//	biquad algorithms
//
// Examples:
//
//	biquad response -t lpf2 -f 1000 -q 0.707 --measured
//	biquad response --coeffs 0.25,0.5,0.25,-0.2,0.04 -a canonical
//	biquad process -t peak -f 3000 -g 6 -a transpose-canonical voice.wav
//	biquad process -t lpf2 -f 200 --sweep-to 8000 drums.wav
package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/cli"
)

var version = "0.1.0"

type versionFlag bool

// BeforeApply prints the version and exits before any command runs.
func (versionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	cli.PrintVersion(vars["version"])
	app.Exit(0)
	return nil
}

// CLI defines the command-line interface.
type CLI struct {
	Version versionFlag `short:"v" help:"Show version information"`

	Response   ResponseCmd   `cmd:"" help:"Print the magnitude response of a filter"`
	Process    ProcessCmd    `cmd:"" help:"Filter a WAV file and report levels per channel"`
	Algorithms AlgorithmsCmd `cmd:"" help:"List filter structures and designer types"`
}

func main() {
	ctx := kong.Parse(&CLI{},
		kong.Name("biquad"),
		kong.Description("Second-order IIR filter engine"),
		kong.UsageOnError(),
		kong.Vars{
			"version":    version,
			"types":      strings.Join(typeNames(), ", "),
			"algorithms": strings.Join(algorithmNames(), ", "),
		},
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func typeNames() []string {
	types := design.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func algorithmNames() []string {
	algs := biquad.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.String()
	}
	return names
}
