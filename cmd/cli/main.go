// Package main is the entry point for the gomeet-cost CLI.
package main

import (
	"os"

	"gomeet-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
