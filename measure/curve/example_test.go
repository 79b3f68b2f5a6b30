package curve_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/measure/curve"
)

func ExampleLogGrid() {
	grid, err := curve.LogGrid(10, 1000, 3)
	if err != nil {
		panic(err)
	}
	for _, f := range grid {
		fmt.Printf("%.1f\n", f)
	}
	// Output:
	// 10.0
	// 100.0
	// 1000.0
}

func ExampleMapValue() {
	// -12..+12 dB onto a 100 pixel tall plot with 0 at the top.
	fmt.Println(curve.MapValue(-12, 12, 100, 0, 6, true))
	fmt.Println(curve.MapValue(-12, 12, 100, 0, 40, true))
	// Output:
	// 25
	// 0
}
