// Package main provides the styleguide command-line tool.
package main

import (
	"os"

	"github.com/MIXgleb/wemake-python-styleguide/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
