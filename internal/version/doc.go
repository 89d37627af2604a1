// Package version implements the version-arithmetic value type used by
// the increment policy.
//
// Parsing and precedence are delegated to github.com/hashicorp/go-version:
// numeric release segments compare element-wise after zero-padding the
// shorter operand, and a prerelease sorts below the equivalent release.
// On top of that primitive, this package adds the arithmetic the policy
// layer needs: element-wise addition of release segments, resetting
// low-order segments relative to a significant version, and resolution
// of symbolic increments (major, minor, patch) to dotted vectors.
//
// All operations are pure: every transformation constructs and returns a
// new immutable Version value.
package version
