// Package cli — current.go implements the "tagver current" command.
//
// The current command reports the version of the working copy as it
// stands: the tagged version if the current revision carries one, or
// the inferred next version suffixed with ".dev0" when it does not.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// currentFlags holds the flag values for the current command.
type currentFlags struct {
	// increment overrides the configured default increment used when
	// the working copy is untagged and the next version must be
	// inferred.
	increment string
}

// NewCurrentCommand creates the "current" cobra command.
func NewCurrentCommand() *cobra.Command {
	flags := &currentFlags{}

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the version of the current working copy",
		Long: `Print the version of the current state of the repository.

If the working copy's revision carries a version tag, that tag is
printed verbatim. Otherwise the next version is inferred from the
latest tag in history and printed with a ".dev0" suffix, signaling an
unreleased development state.

Examples:
  tagver current
  tagver current --increment minor
  tagver current --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.increment, "increment", "i", "",
		"Increment for the inferred next version: major, minor, patch, or a dotted version")

	return cmd
}

// runCurrent is the main logic function for the current command.
func runCurrent(ctx context.Context, flags *currentFlags) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	current, err := svc.CurrentVersion(ctx, flags.increment)
	if err != nil {
		return wrapIncrementError(err)
	}

	printVersion(current)
	return nil
}
