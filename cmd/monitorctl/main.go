// Package main is the entry point for the monitorctl CLI.
package main

import (
	"os"

	"github.com/monitorctl/monitorctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
