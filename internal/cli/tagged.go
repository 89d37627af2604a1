// Package cli — tagged.go implements the "tagver tagged" command.
//
// The tagged command reports the version tag attached to the working
// copy's current revision, honoring the tip-marker deferral: an
// unmodified working copy whose only label is the marker tag takes its
// version from the parent revision.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/tagver/internal/model"
)

// NewTaggedCommand creates the "tagged" cobra command.
func NewTaggedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tagged",
		Short: "Print the version tag of the working copy",
		Long: `Print the version of the working copy's current revision, if it
carries a version tag. When the revision is labeled only with the tip
marker tag and the working copy has no local modifications, the parent
revision's tags are consulted instead.

Exits with a dedicated code when the working copy has no version tag.

Examples:
  tagver tagged
  tagver tagged --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagged(cmd.Context())
		},
	}
}

// runTagged is the main logic function for the tagged command.
func runTagged(ctx context.Context) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	tagged, err := svc.TaggedVersion(ctx)
	if err != nil {
		return err
	}
	if tagged == nil {
		return model.NewCLIError(model.ExitNoVersionTags, "working copy has no version tag")
	}

	printVersion(tagged.String())
	return nil
}
