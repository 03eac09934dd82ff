// Package main provides the entry point for velocity-config.
//
// velocity-config reads a Velocity proxy configuration document, reports
// validation problems and prints the parsed result.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/velocity-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
