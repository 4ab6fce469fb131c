// palettesweep - HSL and OKLCH palette sweeps from a single colour
//
// palettesweep keeps one colour in step across the HSL and OKLCH models and
// generates palettes by sweeping one of its parameters.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/palettesweep/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
