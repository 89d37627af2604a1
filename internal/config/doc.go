// Package config loads the optional repo-level tagver configuration.
//
// A repository may carry a .tagver.json (JSONC — comments and trailing
// commas allowed, stripped via github.com/tidwall/jsonc before parsing
// with encoding/json) or a .tagver.yaml / .tagver.yml file. The first
// match wins; no file at all means defaults.
package config
