// Package main is the entry point for the jreview CLI.
//
// This file is intentionally minimal - all logic lives in the commands
// package.
package main

import (
	"os"

	"github.com/mshree/jreview/cmd/jreview/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
