// Package main is the entry point for the numlocktray tray application.
package main

import (
	"os"

	"github.com/watchfire-io/numlocktray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
