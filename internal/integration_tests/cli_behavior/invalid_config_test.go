package cli_behavior

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/primespectgo/internal/testutil"
)

func TestInvalidHCLIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
			analysis "broken" {
				bound =
		`,
	}

	result := testutil.RunAnalysisTest(t, files)
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "application startup panicked")
	require.Contains(t, result.Err.Error(), "failed to parse")
	require.Nil(t, result.App)
}

func TestNegativeBoundIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
			analysis "negative" {
				bound = -7
			}
		`,
	}

	result := testutil.RunAnalysisTest(t, files)
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "bound must be non-negative")
}

func TestDuplicateAnalysisNamesAreRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.hcl": `
			analysis "dup" {
				bound = 10
			}
		`,
		"b.hcl": `
			analysis "dup" {
				bound = 20
			}
		`,
	}

	result := testutil.RunAnalysisTest(t, files)
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `duplicate analysis "dup"`)
}

func TestEmptyDirectoryRunsNothing(t *testing.T) {
	t.Parallel()

	result := testutil.RunAnalysisTest(t, nil)
	require.NoError(t, result.Err)
	require.Empty(t, result.Output)
	require.Contains(t, result.LogOutput, "nothing to do")
}

func TestNonNumericBoundIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
			analysis "textual" {
				bound = "fifty"
			}
		`,
	}

	result := testutil.RunAnalysisTest(t, files)
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "bound must be a number")
}
