// Package model defines the error and exit-code types shared across
// the tagver CLI.
//
// Domain errors are wrapped in CLIError so the CLI layer can translate
// them into stable process exit codes that scripts and CI systems can
// branch on.
package model
