// Package cli — latest.go implements the "tagver latest" command.
//
// The latest command reports the latest version ever released of the
// project, based on the repository's full tag history.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/tagver/internal/model"
)

// NewLatestCommand creates the "latest" cobra command.
func NewLatestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the latest released version",
		Long: `Print the latest version ever released, determined as the maximum over
all repository tags that parse as versions. Tags that are not versions
are ignored.

Exits with a dedicated code when no tag in the repository parses as a
version, so scripts can distinguish "nothing released yet" from other
failures.

Examples:
  tagver latest
  tagver latest --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatest(cmd.Context())
		},
	}
}

// runLatest is the main logic function for the latest command.
func runLatest(ctx context.Context) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	latest, err := svc.LatestVersion(ctx)
	if err != nil {
		return err
	}
	if latest == nil {
		return model.NewCLIError(model.ExitNoVersionTags, "no version tags found in repository")
	}

	printVersion(latest.String())
	return nil
}
