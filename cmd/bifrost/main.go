// Package main is the entry point for the bifrost CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/bifrost/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
