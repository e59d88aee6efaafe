// SPDX-License-Identifier: MIT

// Command matrix2d demonstrates and prints dense 2D matrices.
package main

import (
	"os"

	"github.com/katalvlaran/matrix2d/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
