package gitrepo

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/mmr-tortoise/tagver/internal/model"
)

// Repo adapts a go-git repository to the policy.Repository interface.
// It holds no state beyond the underlying repository handle and is safe
// for concurrent reads.
type Repo struct {
	repo *git.Repository
}

// New wraps an already-open go-git repository. Used by tests to run the
// backend against in-memory repositories.
func New(r *git.Repository) *Repo {
	return &Repo{repo: r}
}

// Open opens the repository containing path, searching upward for a
// .git directory the way the git binary does. A missing repository is
// reported as a CLIError with ExitNoRepository.
func Open(path string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, model.WrapCLIError(model.ExitNoRepository,
				fmt.Sprintf("no git repository found at or above %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitGitError,
			fmt.Sprintf("failed to open repository at %s", path), err)
	}
	return &Repo{repo: r}, nil
}

// Root returns the root directory of the working copy, or "" for a
// bare repository. Used to locate repo-level configuration.
func (r *Repo) Root() string {
	wt, err := r.repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}

// Tags returns the tag names pointing at the working copy's current
// revision. An empty repository (no commits yet) has no tags and is not
// an error.
func (r *Repo) Tags(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, model.WrapCLIError(model.ExitGitError, "failed to resolve HEAD", err)
	}

	return r.tagsAt(head.Hash())
}

// ParentTags returns the tag names pointing at any parent of the given
// revision. An empty revision, or one that does not resolve as a git
// ref (such as a non-git tip marker), falls back to the working copy's
// HEAD.
func (r *Repo) ParentTags(ctx context.Context, rev string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := r.resolve(rev)
	if err != nil {
		return nil, err
	}
	if hash == nil {
		// Empty repository: no revision, no parents.
		return nil, nil
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGitError,
			fmt.Sprintf("failed to load commit %s", hash), err)
	}

	var tags []string
	seen := make(map[string]struct{})
	for _, parent := range commit.ParentHashes {
		parentTags, err := r.tagsAt(parent)
		if err != nil {
			return nil, err
		}
		for _, tag := range parentTags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// RepoTags returns every tag name in the repository's history, both
// lightweight and annotated.
func (r *Repo) RepoTags(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter, err := r.repo.Tags()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGitError, "failed to list tags", err)
	}

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGitError, "failed to iterate tags", err)
	}
	return tags, nil
}

// IsModified reports whether the working copy has local modifications,
// including untracked files. A bare repository has no working copy and
// reports false.
func (r *Repo) IsModified(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return false, nil
		}
		return false, model.WrapCLIError(model.ExitGitError, "failed to open worktree", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, model.WrapCLIError(model.ExitGitError, "failed to compute worktree status", err)
	}
	return !status.IsClean(), nil
}

// resolve maps a revision string to a commit hash. Empty and "HEAD"
// resolve to the working copy's HEAD; so does any revision go-git cannot
// resolve. A nil hash with nil error means the repository has no commits.
func (r *Repo) resolve(rev string) (*plumbing.Hash, error) {
	if rev != "" && rev != "HEAD" {
		if hash, err := r.repo.ResolveRevision(plumbing.Revision(rev)); err == nil {
			return hash, nil
		}
	}

	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, model.WrapCLIError(model.ExitGitError, "failed to resolve HEAD", err)
	}
	hash := head.Hash()
	return &hash, nil
}

// tagsAt returns the names of all tags pointing at the given commit.
// Annotated tags are peeled to their target before matching.
func (r *Repo) tagsAt(target plumbing.Hash) ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGitError, "failed to list tags", err)
	}

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tagObj, err := r.repo.TagObject(hash); err == nil {
			// Annotated tag: the ref points at a tag object, not the
			// commit itself.
			hash = tagObj.Target
		}
		if hash == target {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGitError, "failed to iterate tags", err)
	}
	return tags, nil
}
