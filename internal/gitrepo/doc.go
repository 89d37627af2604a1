// Package gitrepo implements the policy.Repository capability on top of
// a Git repository, using the go-git library.
//
// go-git covers everything this backend needs — tag enumeration,
// revision resolution, worktree status — without shelling out to a git
// binary, which also lets tests build repositories entirely in memory.
package gitrepo
