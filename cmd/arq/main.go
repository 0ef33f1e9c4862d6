// Package main is the entry point for the arq CLI.
package main

import (
	"os"

	"github.com/donaldgifford/arq/cmd"
	"github.com/donaldgifford/arq/internal/ui"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.SetVersionInfo(version, commit)

	if err := cmd.Execute(); err != nil {
		ui.NewWriter(false).Error(err)
		os.Exit(1)
	}
}
