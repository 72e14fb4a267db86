package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipup/pkg/errors"
)

// TestListTable tests the default table output of the list command.
//
// It verifies:
//   - The parsed packages render as an aligned table with a header
//   - pip list is invoked with the configured launcher prefix
func TestListTable(t *testing.T) {
	resetCommandState(t)
	calls := mockListOutput(t, rootPlainListing)

	out, err := executeCommand(t, "list", "--platform", "linux")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Package")
	assert.Contains(t, lines[0], "Version")
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.Contains(t, lines[2], "requests")
	assert.Contains(t, lines[3], "flask")

	assert.Equal(t, []string{"pip", "list"}, (*calls)[0])
}

// TestListOutdatedScope tests the outdated listing rendering.
//
// It verifies:
//   - Latest, Type, and Scope columns appear
//   - The scope classification reflects the version jump
func TestListOutdatedScope(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, rootOutdatedListing)

	out, err := executeCommand(t, "list", "--outdated", "--platform", "linux")
	require.NoError(t, err)

	assert.Contains(t, out, "Latest")
	assert.Contains(t, out, "Scope")
	assert.Contains(t, out, "minor")
	assert.Contains(t, out, "1.26.0")
}

// TestListJSON tests the json output format.
//
// It verifies:
//   - The output decodes as a name-to-version mapping
func TestListJSON(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, rootPlainListing)

	out, err := executeCommand(t, "list", "--output", "json", "--platform", "linux")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "2.31.0", decoded["requests"])
	assert.Equal(t, "3.0.0", decoded["flask"])
}

// TestListYAML tests the yaml output format.
//
// It verifies:
//   - The output carries name and version entries in listing order
func TestListYAML(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, rootPlainListing)

	out, err := executeCommand(t, "list", "--output", "yaml", "--platform", "linux")
	require.NoError(t, err)

	assert.Contains(t, out, "name: requests")
	assert.Contains(t, out, "version: 2.31.0")
	assert.Less(t, strings.Index(out, "requests"), strings.Index(out, "flask"))
}

// TestListEmpty tests list output for empty listings.
//
// It verifies:
//   - An outdated listing with zero rows prints the up-to-date message
//   - A plain listing with zero rows prints the no-packages message
func TestListEmpty(t *testing.T) {
	t.Run("outdated", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, "Package Version Latest Type\n------- ------- ------ ----\n")

		out, err := executeCommand(t, "list", "--outdated", "--platform", "linux")
		require.NoError(t, err)
		assert.Equal(t, "All packages are up to date.\n", out)
	})

	t.Run("plain", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, "Package Version\n------- -------\n")

		out, err := executeCommand(t, "list", "--platform", "linux")
		require.NoError(t, err)
		assert.Equal(t, "No packages found.\n", out)
	})
}

// TestListUnknownFormat tests output format validation.
//
// It verifies:
//   - An unsupported format fails with the config error exit code
func TestListUnknownFormat(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, rootPlainListing)

	_, err := executeCommand(t, "list", "--output", "csv", "--platform", "linux")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}

// TestListMalformed tests parser failure propagation in list.
//
// It verifies:
//   - A malformed listing fails with listing context in the error
func TestListMalformed(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, "no header here\nstill none\n")

	_, err := executeCommand(t, "list", "--platform", "linux")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedListing(err))
}
