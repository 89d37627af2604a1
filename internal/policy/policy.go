package policy

import (
	"context"

	"github.com/mmr-tortoise/tagver/internal/version"
)

// DefaultTipTag is the marker tag some tools attach to the latest
// commit. When the working copy carries only this marker and has no
// local modifications, the real version tag lives one revision back.
const DefaultTipTag = "tip"

// Repository is the source-control capability the policy operates on.
// Implementations must be safe for concurrent reads if the Service is
// shared across goroutines.
type Repository interface {
	// Tags returns the tag names attached to the working copy's current
	// revision.
	Tags(ctx context.Context) ([]string, error)

	// ParentTags returns the tag names attached to the parent(s) of the
	// given revision.
	ParentTags(ctx context.Context, rev string) ([]string, error)

	// RepoTags returns every tag name in the repository's history.
	RepoTags(ctx context.Context) ([]string, error)

	// IsModified reports whether the working copy has local
	// modifications.
	IsModified(ctx context.Context) (bool, error)
}

// Service answers version queries against a single repository.
type Service struct {
	repo      Repository
	increment string
	tipTag    string
}

// Option configures a Service.
type Option func(*Service)

// WithIncrement sets the default increment applied when a query does not
// specify one. Accepts a symbolic name (major, minor, patch) or a dotted
// vector such as "0.0.1".
func WithIncrement(increment string) Option {
	return func(s *Service) {
		if increment != "" {
			s.increment = increment
		}
	}
}

// WithTipTag overrides the marker tag name checked by TaggedVersion.
func WithTipTag(tag string) Option {
	return func(s *Service) {
		if tag != "" {
			s.tipTag = tag
		}
	}
}

// New creates a Service over the given repository. Defaults: increment
// "patch", tip marker tag "tip".
func New(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		increment: version.DefaultIncrement,
		tipTag:    DefaultTipTag,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// versionsFromTags attempt-parses each tag and keeps only the successes.
// Unparseable tags ("foo", "tip", release branch names) are a normal
// part of tag history, so they are filtered rather than surfaced as
// errors.
func versionsFromTags(tags []string) []version.Version {
	versions := make([]version.Version, 0, len(tags))
	for _, tag := range tags {
		v, err := version.Parse(tag)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	return versions
}

// bestVersion returns a pointer to the maximum of the given versions, or
// nil when there are none. Absence is a normal condition ("nothing
// released yet"), never an error.
func bestVersion(versions []version.Version) *version.Version {
	var best *version.Version
	for i := range versions {
		if best == nil || versions[i].Compare(*best) > 0 {
			best = &versions[i]
		}
	}
	return best
}

// ValidVersions returns every repository tag that can be represented as
// a Version. Order is unspecified; the result is recomputed from the
// repository on each call.
func (s *Service) ValidVersions(ctx context.Context) ([]version.Version, error) {
	tags, err := s.repo.RepoTags(ctx)
	if err != nil {
		return nil, err
	}
	return versionsFromTags(tags), nil
}

// TaggedVersion returns the version of the working copy, or nil if no
// viable version tag exists.
//
// If the working copy carries the tip marker tag and has no local
// modifications, the tag set of the parent revision is used instead —
// the marker means the real version tag lives one revision back.
func (s *Service) TaggedVersion(ctx context.Context) (*version.Version, error) {
	tags, err := s.repo.Tags(ctx)
	if err != nil {
		return nil, err
	}

	if containsTag(tags, s.tipTag) {
		modified, err := s.repo.IsModified(ctx)
		if err != nil {
			return nil, err
		}
		if !modified {
			tags, err = s.repo.ParentTags(ctx, s.tipTag)
			if err != nil {
				return nil, err
			}
		}
	}

	return bestVersion(versionsFromTags(tags)), nil
}

// LatestVersion returns the latest version ever released of the project,
// based on the repository's full tag history, or nil if no tag parses as
// a version.
func (s *Service) LatestVersion(ctx context.Context) (*version.Version, error) {
	versions, err := s.ValidVersions(ctx)
	if err != nil {
		return nil, err
	}
	return bestVersion(versions), nil
}

// NextVersion returns the next version based on prior tagged releases.
// An empty increment falls back to the Service's configured default.
func (s *Service) NextVersion(ctx context.Context, increment string) (version.Version, error) {
	if increment == "" {
		increment = s.increment
	}

	latest, err := s.LatestVersion(ctx)
	if err != nil {
		return version.Version{}, err
	}
	return InferNextVersion(latest, increment)
}

// CurrentVersion returns, as a string, the version of the current state
// of the repository: the tagged version if present, otherwise the next
// version suffixed with ".dev0" — a development prerelease signaling
// "not yet released; the next version will be X but this isn't it".
func (s *Service) CurrentVersion(ctx context.Context, increment string) (string, error) {
	tagged, err := s.TaggedVersion(ctx)
	if err != nil {
		return "", err
	}
	if tagged != nil {
		return tagged.String(), nil
	}

	next, err := s.NextVersion(ctx, increment)
	if err != nil {
		return "", err
	}
	return next.String() + ".dev0", nil
}

// InferNextVersion computes the next version from the last released
// version and an increment (symbolic or dotted):
//
//   - no last version: the increment itself is the first version of the
//     project — InferNextVersion(nil, "0.1") is "0.1";
//   - last version is a prerelease: finalizing it is the next version,
//     so the marker is stripped and no arithmetic is performed;
//   - otherwise: add the increment vector to the last version, then zero
//     everything less significant than the increment's own position —
//     InferNextVersion(3.1.2, "0.1") is "3.2", and subversions never
//     carry into parent segments (3.0.9 + "0.0.1" is "3.0.10").
//
// A malformed increment fails with a *version.ParseError.
func InferNextVersion(last *version.Version, increment string) (version.Version, error) {
	inc, err := version.ParseIncrement(increment)
	if err != nil {
		return version.Version{}, err
	}

	if last == nil {
		return inc, nil
	}
	if last.IsPrerelease() {
		return last.StripPrerelease(), nil
	}

	return last.Add(inc).ResetLessSignificant(inc), nil
}

// containsTag reports whether the tag set includes the given name.
func containsTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}
