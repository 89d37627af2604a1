package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/tagver/internal/version"
)

// TestFormatVersionList verifies ascending precedence ordering,
// including the numeric comparison a plain string sort would get wrong.
func TestFormatVersionList(t *testing.T) {
	versions := []version.Version{
		version.MustParse("0.10"),
		version.MustParse("1.0"),
		version.MustParse("0.9"),
		version.MustParse("1.0a1"),
	}

	assert.Equal(t,
		[]string{"0.9", "0.10", "1.0a1", "1.0"},
		FormatVersionList(versions))
}

// TestFormatVersionList_Empty verifies that no versions yield an empty
// list rather than nil-driven surprises in the output layer.
func TestFormatVersionList_Empty(t *testing.T) {
	assert.Empty(t, FormatVersionList(nil))
}

// TestFormatVersionList_InputUntouched verifies that sorting works on a
// copy and leaves the caller's slice order intact.
func TestFormatVersionList_InputUntouched(t *testing.T) {
	versions := []version.Version{
		version.MustParse("2.0"),
		version.MustParse("1.0"),
	}
	_ = FormatVersionList(versions)
	assert.Equal(t, "2.0", versions[0].String())
}
