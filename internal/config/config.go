package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/tagver/internal/model"
	"github.com/mmr-tortoise/tagver/internal/policy"
	"github.com/mmr-tortoise/tagver/internal/version"
)

// candidates are the config file names probed in order. JSON is checked
// first so a repository carrying both formats behaves deterministically.
var candidates = []string{".tagver.json", ".tagver.yaml", ".tagver.yml"}

// Config holds the repo-level tagver settings.
type Config struct {
	// Increment is the default increment applied when none is given on
	// the command line: a symbolic name (major, minor, patch) or a
	// dotted vector such as "0.0.1".
	Increment string `json:"increment" yaml:"increment"`

	// TipTag is the marker tag name that defers version lookup to the
	// parent revision when it is the working copy's only label.
	TipTag string `json:"tipTag" yaml:"tipTag"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Increment: version.DefaultIncrement,
		TipTag:    policy.DefaultTipTag,
	}
}

// Load reads the first config file found in dir, fills unset fields with
// defaults, and validates the increment. A missing file is not an error;
// an unreadable or invalid one is.
func Load(dir string) (Config, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to read config file %s", path), err)
		}

		cfg, err := parse(path, data)
		if err != nil {
			return Config{}, err
		}
		return finalize(cfg, path)
	}

	return Default(), nil
}

// parse decodes the config data based on the file extension.
func parse(path string, data []byte) (Config, error) {
	var cfg Config

	if strings.HasSuffix(path, ".json") {
		// Strip JSONC comments and trailing commas before handing the
		// data to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to parse config file %s", path), err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return cfg, nil
}

// finalize fills unset fields with defaults and validates that the
// configured increment resolves to a parseable dotted vector.
func finalize(cfg Config, path string) (Config, error) {
	defaults := Default()
	if cfg.Increment == "" {
		cfg.Increment = defaults.Increment
	}
	if cfg.TipTag == "" {
		cfg.TipTag = defaults.TipTag
	}

	if _, err := version.ParseIncrement(cfg.Increment); err != nil {
		return Config{}, model.WrapCLIError(model.ExitBadIncrement,
			fmt.Sprintf("invalid increment %q in %s", cfg.Increment, path), err)
	}
	return cfg, nil
}
