package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/testutil"
)

const rootPlainListing = "Package    Version\n---------- -------\nrequests   2.31.0\nflask      3.0.0\n"

const rootOutdatedListing = "Package Version Latest Type\n------- ------- ------ ----\nnumpy   1.24.0  1.26.0 wheel\n"

// TestRootPrintsUpgradeCommand tests the default print mode.
//
// It verifies:
//   - The synthesized command covers every listed package in order
//   - pip list is invoked without --outdated by default
func TestRootPrintsUpgradeCommand(t *testing.T) {
	resetCommandState(t)
	calls := mockListOutput(t, rootPlainListing)

	out, err := executeCommand(t, "--platform", "linux")
	require.NoError(t, err)

	assert.Equal(t, "pip install --upgrade requests flask\n", out)
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"pip", "list"}, (*calls)[0])
}

// TestRootOutdated tests the --outdated toggle.
//
// It verifies:
//   - pip list is invoked with --outdated
//   - The four-column shape parses and only names reach the command
func TestRootOutdated(t *testing.T) {
	resetCommandState(t)
	calls := mockListOutput(t, rootOutdatedListing)

	out, err := executeCommand(t, "--outdated", "--platform", "linux")
	require.NoError(t, err)

	assert.Equal(t, "pip install --upgrade numpy\n", out)
	assert.Equal(t, []string{"pip", "list", "--outdated"}, (*calls)[0])
}

// TestRootNothingToUpgrade tests the empty-listing outcome.
//
// It verifies:
//   - A header-only outdated listing prints the up-to-date message
//   - The quiet flag suppresses the message
//   - A header-only plain listing prints nothing and succeeds
func TestRootNothingToUpgrade(t *testing.T) {
	headerOnly := "Package Version Latest Type\n------- ------- ------ ----\n"

	t.Run("outdated message", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, headerOnly)

		out, err := executeCommand(t, "--outdated", "--platform", "linux")
		require.NoError(t, err)
		assert.Equal(t, "All packages are up to date.\n", out)
	})

	t.Run("quiet suppresses message", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, headerOnly)

		out, err := executeCommand(t, "--outdated", "--quiet", "--platform", "linux")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("plain listing stays silent", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, "Package Version\n------- -------\n")

		out, err := executeCommand(t, "--platform", "linux")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

// TestRootRunMode tests the --run toggle.
//
// It verifies:
//   - The synthesized argv is executed instead of printed
func TestRootRunMode(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, rootPlainListing)
	runs := mockRun(t)

	out, err := executeCommand(t, "--run", "--platform", "linux")
	require.NoError(t, err)

	assert.Empty(t, out)
	require.Len(t, *runs, 1)
	assert.Equal(t, []string{"pip", "install", "--upgrade", "requests", "flask"}, (*runs)[0])
}

// TestRootLauncherPrefixes tests prefix and py launcher flags end to end.
//
// It verifies:
//   - --prefix tokens lead both the list and upgrade commands
//   - A Windows target emits the py launcher with the configured version
//   - --no-py-launcher drops the launcher on Windows targets
func TestRootLauncherPrefixes(t *testing.T) {
	t.Run("custom prefix", func(t *testing.T) {
		resetCommandState(t)
		calls := mockListOutput(t, rootPlainListing)

		out, err := executeCommand(t, "--prefix", "python3.11 -m", "--platform", "linux")
		require.NoError(t, err)

		assert.Equal(t, "python3.11 -m pip install --upgrade requests flask\n", out)
		assert.Equal(t, []string{"python3.11", "-m", "pip", "list"}, (*calls)[0])
	})

	t.Run("windows py launcher", func(t *testing.T) {
		resetCommandState(t)
		calls := mockListOutput(t, rootPlainListing)

		out, err := executeCommand(t, "--platform", "windows", "--python", "3.12")
		require.NoError(t, err)

		assert.Equal(t, "py -3.12 pip install --upgrade requests flask\n", out)
		assert.Equal(t, []string{"py", "-3.12", "pip", "list"}, (*calls)[0])
	})

	t.Run("windows launcher disabled", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, rootPlainListing)

		out, err := executeCommand(t, "--platform", "windows", "--no-py-launcher")
		require.NoError(t, err)
		assert.Equal(t, "pip install --upgrade requests flask\n", out)
	})
}

// TestRootSkipChecks tests the skip-checks trust boundary.
//
// It verifies:
//   - Positional arguments bypass the parser and pip list entirely
//   - Whitespace-split stdin feeds the sequence when no arguments are given
//   - Malformed supplied tokens surface as invalid package tokens
func TestRootSkipChecks(t *testing.T) {
	t.Run("positional arguments", func(t *testing.T) {
		resetCommandState(t)
		calls := mockListOutput(t, "unused")

		out, err := executeCommand(t, "--skip-checks", "--platform", "linux", "six", "wheel", "six")
		require.NoError(t, err)

		assert.Equal(t, "pip install --upgrade six wheel six\n", out)
		assert.Empty(t, *calls, "pip list must not run under --skip-checks")
	})

	t.Run("stdin fallback", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, "unused")
		rootCmd.SetIn(strings.NewReader("alpha beta\ngamma\n"))

		out, err := executeCommand(t, "--skip-checks", "--platform", "linux")
		require.NoError(t, err)
		assert.Equal(t, "pip install --upgrade alpha beta gamma\n", out)
	})

	t.Run("empty supplied sequence", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, "unused")
		rootCmd.SetIn(strings.NewReader(""))

		out, err := executeCommand(t, "--skip-checks", "--platform", "linux")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

// TestRootMalformedListing tests parser failure propagation.
//
// It verifies:
//   - A malformed listing fails with the generic failure exit code
func TestRootMalformedListing(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, "requests 2.31.0\n")

	_, err := executeCommand(t, "--platform", "linux")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedListing(err))
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
}

// TestRootFlagConflicts tests configuration validation at the CLI surface.
//
// It verifies:
//   - --verbose with --quiet fails with the config error exit code
func TestRootFlagConflicts(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, rootPlainListing)

	_, err := executeCommand(t, "--verbose", "--quiet")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}

// TestRootConfigFile tests config file layering.
//
// It verifies:
//   - Values from --config apply when no flag overrides them
//   - A set flag wins over the config file value
func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipup.yml")
	content := "no_cache_dir: true\nprefix: \"python3 -m\"\ntarget_os: linux\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("file values apply", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, rootPlainListing)

		out, err := executeCommand(t, "--config", path)
		require.NoError(t, err)
		assert.Equal(t, "python3 -m pip install --upgrade --no-cache-dir requests flask\n", out)
	})

	t.Run("flags beat file values", func(t *testing.T) {
		resetCommandState(t)
		mockListOutput(t, rootPlainListing)

		out, err := executeCommand(t, "--config", path, "--prefix", "python3.11 -m")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "python3.11 -m pip"))
	})
}

// TestExecuteExitCode tests the behavior of Execute.
//
// It verifies:
//   - A failing command exits through exitFunc with the mapped code
func TestExecuteExitCode(t *testing.T) {
	resetCommandState(t)
	mockListOutput(t, "requests 2.31.0\n")
	rootCmd.SetArgs([]string{"--platform", "linux"})

	origExit := exitFunc
	var code int
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = origExit }()

	stderr := testutil.CaptureStderr(t, Execute)
	assert.Equal(t, errors.ExitFailure, code)
	assert.Contains(t, stderr, "malformed listing")
}
