// Package main is the entry point for the tagver CLI.
//
// This binary infers and increments version numbers for a Git
// repository based on its tag history. It delegates all functionality
// to the internal/cli package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/tagver/internal/cli"
)

// version, commit, and date are set at build time via ldflags. They
// provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps
	// the build system decoupled from the CLI framework and main.go
	// minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
