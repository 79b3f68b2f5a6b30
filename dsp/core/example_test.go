package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

func ExampleApplyStreamOptions() {
	cfg := core.ApplyStreamOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d valid=%v\n", cfg.SampleRate, cfg.BlockSize, cfg.Validate() == nil)

	// Output:
	// sampleRate=44100 blockSize=256 valid=true
}
