package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/tagver/internal/version"
)

// fakeRepo is an in-memory Repository whose behavior is overridable per
// test via function fields. Unset fields report an empty repository.
type fakeRepo struct {
	tags       func() []string
	parentTags func(rev string) []string
	repoTags   func() []string
	modified   bool

	err error // when set, every method fails with this error
}

func (f *fakeRepo) Tags(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.tags == nil {
		return nil, nil
	}
	return f.tags(), nil
}

func (f *fakeRepo) ParentTags(_ context.Context, rev string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.parentTags == nil {
		return nil, nil
	}
	return f.parentTags(rev), nil
}

func (f *fakeRepo) RepoTags(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.repoTags == nil {
		return nil, nil
	}
	return f.repoTags(), nil
}

func (f *fakeRepo) IsModified(context.Context) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.modified, nil
}

// infer is a test shorthand: InferNextVersion with a parsed last version
// (or nil), returning the canonical string.
func infer(t *testing.T, last, increment string) string {
	t.Helper()

	var lastVersion *version.Version
	if last != "" {
		v := version.MustParse(last)
		lastVersion = &v
	}

	next, err := InferNextVersion(lastVersion, increment)
	require.NoError(t, err)
	return next.String()
}

// TestInferNextVersion covers the full increment table: dotted vectors,
// symbolic names, prerelease finalization, and the no-prior-version case.
func TestInferNextVersion(t *testing.T) {
	tests := []struct {
		last      string // "" means no prior version
		increment string
		expected  string
	}{
		{"3.2", "0.0.1", "3.2.1"},
		{"3.2.3", "0.1", "3.3"},
		{"3.1.2", "1.0", "4.0"},
		{"3.1.2", "major", "4"},
		{"3.1.2", "minor", "3.2"},
		{"3.1.2", "patch", "3.1.3"},
		{"3.0.9", "0.0.1", "3.0.10"}, // subversions never increment parents
		{"3.1a1", "0.0.1", "3.1"},    // prerelease stripped, no arithmetic
		{"", "0.1", "0.1"},           // first version equals the increment
		{"", "patch", "0.0.1"},
		{"", "major", "1"},
	}

	for _, tt := range tests {
		name := tt.last + "+" + tt.increment
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, infer(t, tt.last, tt.increment))
		})
	}
}

// TestInferNextVersion_BadIncrement verifies that a malformed increment
// propagates as a parse error rather than being swallowed.
func TestInferNextVersion_BadIncrement(t *testing.T) {
	last := version.MustParse("1.0")
	_, err := InferNextVersion(&last, "bogus")
	require.Error(t, err)

	var parseErr *version.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

// TestTaggedVersion_FiltersTags verifies that only version-shaped tags
// participate: non-version tags are silently discarded, and an empty or
// versionless tag set yields absence (nil), not an error.
func TestTaggedVersion_FiltersTags(t *testing.T) {
	ctx := context.Background()
	tags := []string{"foo", "bar", "3.0"}
	svc := New(&fakeRepo{tags: func() []string { return tags }})

	tagged, err := svc.TaggedVersion(ctx)
	require.NoError(t, err)
	require.NotNil(t, tagged)
	assert.Equal(t, "3.0", tagged.String())

	tags = nil
	tagged, err = svc.TaggedVersion(ctx)
	require.NoError(t, err)
	assert.Nil(t, tagged)

	tags = []string{"foo", "bar"}
	tagged, err = svc.TaggedVersion(ctx)
	require.NoError(t, err)
	assert.Nil(t, tagged)
}

// TestTaggedVersion_PicksMax verifies that the maximum version wins
// regardless of tag order, with numeric (not lexical) comparison.
func TestTaggedVersion_PicksMax(t *testing.T) {
	ctx := context.Background()
	tags := []string{"1.0", "1.1"}
	svc := New(&fakeRepo{tags: func() []string { return tags }})

	tagged, err := svc.TaggedVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.1", tagged.String())

	tags = []string{"0.10", "0.9"}
	tagged, err = svc.TaggedVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.10", tagged.String(), "0.10 sorts above 0.9 numerically")
}

// TestTaggedVersion_DefersToParent verifies the tip-marker substitution:
// an unmodified working copy tagged only "tip" takes its version from
// the parent revision's tags.
func TestTaggedVersion_DefersToParent(t *testing.T) {
	svc := New(&fakeRepo{
		tags:       func() []string { return []string{"tip"} },
		parentTags: func(string) []string { return []string{"1.0"} },
	})

	tagged, err := svc.TaggedVersion(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tagged)
	assert.Equal(t, "1.0", tagged.String())
}

// TestTaggedVersion_ModifiedKeepsTip verifies that local modifications
// suppress the parent substitution: the working copy no longer matches
// the parent revision, so its own (versionless) tag set stands.
func TestTaggedVersion_ModifiedKeepsTip(t *testing.T) {
	svc := New(&fakeRepo{
		tags:       func() []string { return []string{"tip"} },
		parentTags: func(string) []string { return []string{"1.0"} },
		modified:   true,
	})

	tagged, err := svc.TaggedVersion(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tagged)
}

// TestTaggedVersion_CustomTipTag verifies the WithTipTag override.
func TestTaggedVersion_CustomTipTag(t *testing.T) {
	svc := New(&fakeRepo{
		tags:       func() []string { return []string{"latest"} },
		parentTags: func(string) []string { return []string{"2.0"} },
	}, WithTipTag("latest"))

	tagged, err := svc.TaggedVersion(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tagged)
	assert.Equal(t, "2.0", tagged.String())
}

// TestNextVersion_EmptyRepo verifies that with no tags anywhere the next
// version is the default increment itself.
func TestNextVersion_EmptyRepo(t *testing.T) {
	svc := New(&fakeRepo{})

	next, err := svc.NextVersion(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "0.0.1", next.String())
}

// TestNextVersion_UntaggedWorkingCopy verifies the full scenario: the
// working copy carries no version tag, but history does — the next
// version adds the increment to the greatest historical tag, and the
// current version is that with a .dev0 suffix.
func TestNextVersion_UntaggedWorkingCopy(t *testing.T) {
	ctx := context.Background()
	svc := New(&fakeRepo{
		repoTags: func() []string { return []string{"foo", "bar", "1.0"} },
	})

	tagged, err := svc.TaggedVersion(ctx)
	require.NoError(t, err)
	assert.Nil(t, tagged)

	next, err := svc.NextVersion(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", next.String())

	current, err := svc.CurrentVersion(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1.dev0", current)
}

// TestNextVersion_ConfiguredDefault verifies that WithIncrement changes
// the fallback increment and that an explicit increment still wins.
func TestNextVersion_ConfiguredDefault(t *testing.T) {
	ctx := context.Background()
	svc := New(&fakeRepo{
		repoTags: func() []string { return []string{"1.2.3"} },
	}, WithIncrement("minor"))

	next, err := svc.NextVersion(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "1.3", next.String())

	next, err = svc.NextVersion(ctx, "major")
	require.NoError(t, err)
	assert.Equal(t, "2", next.String())
}

// TestCurrentVersion_Tagged verifies that a tagged working copy reports
// its tag verbatim, with no .dev0 suffix.
func TestCurrentVersion_Tagged(t *testing.T) {
	svc := New(&fakeRepo{
		tags: func() []string { return []string{"2.1"} },
	})

	current, err := svc.CurrentVersion(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2.1", current)
}

// TestValidVersions verifies the explicit filter step: parseable tags
// are kept, the rest dropped, with no particular order guaranteed.
func TestValidVersions(t *testing.T) {
	svc := New(&fakeRepo{
		repoTags: func() []string { return []string{"0.9", "foo", "1.0", "tip", "0.10"} },
	})

	versions, err := svc.ValidVersions(context.Background())
	require.NoError(t, err)

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.ElementsMatch(t, []string{"0.9", "1.0", "0.10"}, got)
}

// TestRepositoryErrorsPropagate verifies that backend failures surface
// unchanged — only tag-parse failures are ever filtered.
func TestRepositoryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("object database corrupt")
	svc := New(&fakeRepo{err: repoErr})

	_, err := svc.TaggedVersion(ctx)
	assert.ErrorIs(t, err, repoErr)

	_, err = svc.LatestVersion(ctx)
	assert.ErrorIs(t, err, repoErr)

	_, err = svc.NextVersion(ctx, "")
	assert.ErrorIs(t, err, repoErr)

	_, err = svc.CurrentVersion(ctx, "")
	assert.ErrorIs(t, err, repoErr)
}
