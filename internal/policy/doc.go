// Package policy implements the increment policy: given a repository's
// tag history, it determines the tagged version of the working copy, the
// latest version ever released, and the next version for a requested
// increment.
//
// The repository is an explicit capability (the Repository interface)
// passed to the policy Service, not a base type — the dependency is
// visible at every call site and any source-control backend can satisfy
// it. The Service itself holds no mutable state: each query is a pure
// function of the tag snapshot the repository reports at call time, so a
// Service is safe for concurrent use whenever its Repository is safe for
// concurrent reads.
package policy
