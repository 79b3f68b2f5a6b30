package main

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/internal/cli"
)

// AlgorithmsCmd lists the available structures and designer types.
type AlgorithmsCmd struct{}

// Run prints both lists.
func (AlgorithmsCmd) Run() error {
	fmt.Println(cli.TitleStyle.Render("Structures"))
	for _, name := range algorithmNames() {
		fmt.Printf("  %s\n", cli.ValueStyle.Render(name))
	}
	fmt.Println()

	fmt.Println(cli.TitleStyle.Render("Filter types"))
	for _, name := range typeNames() {
		fmt.Printf("  %s\n", cli.ValueStyle.Render(name))
	}
	return nil
}
