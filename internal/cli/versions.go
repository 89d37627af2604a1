// Package cli — versions.go implements the "tagver versions" command.
//
// The versions command lists every repository tag that parses as a
// version, in ascending precedence order. It is the introspection
// counterpart to "latest": it shows the whole release history the
// policy derives its answers from.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/tagver/internal/version"
)

// NewVersionsCommand creates the "versions" cobra command.
func NewVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List all version tags in the repository",
		Long: `List every repository tag that parses as a version, one per line, in
ascending precedence order. Tags that are not versions are omitted.

Examples:
  tagver versions
  tagver versions --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersions(cmd.Context())
		},
	}
}

// runVersions is the main logic function for the versions command.
func runVersions(ctx context.Context) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	versions, err := svc.ValidVersions(ctx)
	if err != nil {
		return err
	}
	VerboseLog("Found %d version tags", len(versions))

	printVersionList(FormatVersionList(versions))
	return nil
}

// FormatVersionList sorts versions into ascending precedence order and
// returns their canonical strings. Exported for testing purposes.
//
// Precedence order comes from the version comparator, so "0.10" sorts
// after "0.9" — a plain string sort would invert them.
func FormatVersionList(versions []version.Version) []string {
	sorted := append([]version.Version(nil), versions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	out := make([]string, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, v.String())
	}
	return out
}

// printVersionList outputs the version strings in text or JSON format,
// depending on the global --json flag.
func printVersionList(versions []string) {
	if IsJSONOutput() {
		// Empty slice rather than nil so JSON shows [] instead of null
		// when there are no version tags.
		if versions == nil {
			versions = []string{}
		}
		data, _ := json.MarshalIndent(map[string][]string{"versions": versions}, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(versions) == 0 {
		fmt.Println("No version tags found.")
		return
	}
	for _, v := range versions {
		fmt.Println(v)
	}
}
