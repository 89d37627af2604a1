package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIError_Error verifies message formatting with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitNoRepository, "no git repository found")
	assert.Equal(t, "no git repository found", plain.Error())

	wrapped := WrapCLIError(ExitGitError, "failed to list tags", errors.New("object not found"))
	assert.Equal(t, "failed to list tags: object not found", wrapped.Error())
}

// TestCLIError_Unwrap verifies that errors.Is and errors.As see through
// the CLIError wrapper to the underlying error.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	wrapped := WrapCLIError(ExitGeneralError, "something failed", underlying)

	assert.True(t, errors.Is(wrapped, underlying))

	// A CLIError wrapped again by fmt.Errorf must still be recoverable
	// via errors.As, since Execute relies on that to pick the exit code.
	outer := fmt.Errorf("outer: %w", wrapped)
	var cliErr *CLIError
	require.True(t, errors.As(outer, &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestExitCodes verifies the stable numeric values of the exit code
// table. These values are part of the CLI contract; changing them breaks
// scripts that branch on exit codes.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 1, int(ExitGeneralError))
	assert.Equal(t, 2, int(ExitNoRepository))
	assert.Equal(t, 3, int(ExitGitError))
	assert.Equal(t, 4, int(ExitBadIncrement))
	assert.Equal(t, 5, int(ExitNoVersionTags))
}
