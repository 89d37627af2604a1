// Package cli implements the cobra-based CLI commands for tagver.
//
// Each subcommand (current, next, latest, tagged, versions, semver) is
// defined in its own file within this package. This file defines the
// root command that serves as the parent for all subcommands and
// handles global flags.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/tagver/internal/model"
)

// Global flag variables shared across all subcommands. These are bound
// to cobra persistent flags on the root command, which makes them
// available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When false (default), output uses human-readable text format.
	jsonOutput bool

	// verbose enables detailed logging output on stderr.
	verbose bool

	// repoPath is the path inside the repository to operate on. The
	// containing repository is discovered by searching upward for .git,
	// the way the git binary does.
	repoPath string
)

// Version, Commit, and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only
// provides help text and global flags. Actual functionality is provided
// by the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagver",
		Short: "Infer and increment version numbers from repository tags",
		Long: `tagver infers semantic-style version numbers for a Git repository from
the version tags in its history.

It answers two questions: what is the current version of this working
copy, and what should the next version be for a given increment
("major", "minor", "patch", or an explicit dotted increment like
"0.0.1"). A working copy without a version tag reports the next version
with a ".dev0" suffix, signaling an unreleased development state.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// errors are formatted here (text or JSON based on --json).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "C", ".", "Path inside the repository to operate on")

	// Register subcommands. Each subcommand is defined in its own file
	// and returns a *cobra.Command.
	rootCmd.AddCommand(NewCurrentCommand())
	rootCmd.AddCommand(NewNextCommand())
	rootCmd.AddCommand(NewLatestCommand())
	rootCmd.AddCommand(NewTaggedCommand())
	rootCmd.AddCommand(NewVersionsCommand())
	rootCmd.AddCommand(NewSemverCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into OS exit codes. CLIError values carry their own exit codes; other
// errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set. Subcommands use
// this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
