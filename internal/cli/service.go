package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmr-tortoise/tagver/internal/config"
	"github.com/mmr-tortoise/tagver/internal/gitrepo"
	"github.com/mmr-tortoise/tagver/internal/model"
	"github.com/mmr-tortoise/tagver/internal/policy"
	"github.com/mmr-tortoise/tagver/internal/version"
)

// newService opens the repository at the global --repo path, loads the
// repo-level configuration, and builds the policy service all commands
// query. Shared by every subcommand that touches the repository.
func newService() (*policy.Service, error) {
	repo, err := gitrepo.Open(repoPath)
	if err != nil {
		return nil, err // Open already returns a CLIError
	}

	// Config lives at the working copy root, which may be above the
	// --repo path. A bare repository has no root; fall back to the
	// requested path.
	configDir := repo.Root()
	if configDir == "" {
		configDir = repoPath
	}
	VerboseLog("Loading configuration from %s", configDir)

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	VerboseLog("Default increment %q, tip marker tag %q", cfg.Increment, cfg.TipTag)

	return policy.New(repo,
		policy.WithIncrement(cfg.Increment),
		policy.WithTipTag(cfg.TipTag),
	), nil
}

// wrapIncrementError maps a version parse failure from increment
// resolution to the dedicated exit code; other errors pass through
// unchanged.
func wrapIncrementError(err error) error {
	var parseErr *version.ParseError
	if errors.As(err, &parseErr) {
		return model.WrapCLIError(model.ExitBadIncrement,
			fmt.Sprintf("invalid increment %q: expected major, minor, patch, or a dotted version", parseErr.Input), err)
	}
	return err
}

// printVersion outputs a single version string in text or JSON format,
// depending on the global --json flag.
func printVersion(v string) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{"version": v}, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Println(v)
	}
}
