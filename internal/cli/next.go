// Package cli — next.go implements the "tagver next" command.
//
// The next command reports the version the next release should carry,
// computed from the latest version tag in history and the requested
// increment. With no version tags at all, the increment itself is the
// first version.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// nextFlags holds the flag values for the next command.
type nextFlags struct {
	// increment overrides the configured default increment.
	increment string
}

// NewNextCommand creates the "next" cobra command.
func NewNextCommand() *cobra.Command {
	flags := &nextFlags{}

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next version based on prior tagged releases",
		Long: `Print the next version, computed from the latest version tag in the
repository's history and the requested increment.

Symbolic increments map to dotted vectors: major is "1", minor is
"0.1", patch is "0.0.1". An explicit dotted increment bumps the segment
at its last nonzero position and zeroes everything less significant:
with latest tag 3.1.2, increment "0.1" yields 3.2.

Examples:
  tagver next
  tagver next --increment major
  tagver next --increment 0.1 --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.increment, "increment", "i", "",
		"Increment to apply: major, minor, patch, or a dotted version")

	return cmd
}

// runNext is the main logic function for the next command.
func runNext(ctx context.Context, flags *nextFlags) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	next, err := svc.NextVersion(ctx, flags.increment)
	if err != nil {
		return wrapIncrementError(err)
	}

	printVersion(next.String())
	return nil
}
