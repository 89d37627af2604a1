// Package cli — semver.go implements the "tagver semver" command.
//
// The semver command normalizes a version string to the v-prefixed
// three-segment form used by Go modules and GitHub releases. It is the
// only subcommand that does not touch a repository.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/tagver/internal/model"
	"github.com/mmr-tortoise/tagver/internal/version"
)

// NewSemverCommand creates the "semver" cobra command.
func NewSemverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "semver VERSION",
		Short: "Normalize a version to the v-prefixed three-segment form",
		Long: `Normalize a version string to the v-prefixed three-segment form:
"1" becomes "v1.0.0", "1.2" becomes "v1.2.0", "10.11.12" stays
"v10.11.12". Prerelease markers are dropped.

Examples:
  tagver semver 1.2
  tagver semver "$(tagver next)"`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSemver(args[0])
		},
	}
}

// runSemver is the main logic function for the semver command.
func runSemver(input string) error {
	normalized, err := version.SemVer(input)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("not a valid version: %q", input), err)
	}

	printVersion(normalized)
	return nil
}
