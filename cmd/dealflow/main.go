// Package main provides the entry point for the dealflow CLI.
package main

import (
	"os"

	"github.com/openfield/dealflow/internal/cmd"
	"github.com/openfield/dealflow/pkg/logging"
)

// Version is populated by the release build.
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
