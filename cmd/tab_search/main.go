// Package main is the entry point for the tab-search CLI and server.
package main

import (
	"os"

	"github.com/gcbaptista/go-tab-search/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
