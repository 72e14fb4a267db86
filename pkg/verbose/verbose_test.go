package verbose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the behavior of Enable, Disable, and IsEnabled.
//
// It verifies:
//   - Enable turns verbose logging on
//   - Disable turns verbose logging off
func TestEnableDisable(t *testing.T) {
	defer Disable()

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestInfof tests the behavior of Infof.
//
// It verifies:
//   - Messages carry the [DEBUG] prefix when enabled
//   - Nothing is written when disabled
func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)
	defer Disable()

	Disable()
	Infof("nope %d", 1)
	assert.Empty(t, buf.String())

	Enable()
	Infof("found %d packages", 3)
	assert.Equal(t, "[DEBUG] found 3 packages\n", buf.String())
}

// TestSetWriterNil tests the behavior of SetWriter with a nil writer.
//
// It verifies:
//   - A nil writer leaves the previous writer in place
func TestSetWriterNil(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer Disable()

	SetWriter(nil)
	Enable()
	Info("still here")
	assert.Contains(t, buf.String(), "still here")
}

// TestCommandResult tests the behavior of CommandResult.
//
// It verifies:
//   - Success and failure are reported with the exit code
//   - Long output is truncated to a few lines
func TestCommandResult(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer Disable()
	Enable()

	CommandResult("pip list", 0, "a\nb")
	assert.Contains(t, buf.String(), "Command succeeded: pip list")
	assert.Contains(t, buf.String(), "| a")

	buf.Reset()
	CommandResult("pip list --outdated", 1, "l1\nl2\nl3\nl4\nl5\nl6\nl7")
	out := buf.String()
	assert.Contains(t, out, "Command failed (exit 1)")
	assert.Contains(t, out, "... (4 more lines)")
	assert.Equal(t, 3, strings.Count(out, "| l"))
}

// TestPackages tests the behavior of Packages.
//
// It verifies:
//   - The package count and names are logged when enabled
func TestPackages(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer Disable()
	Enable()

	Packages([]string{"requests", "flask"})
	assert.Contains(t, buf.String(), "Found 2 package(s): requests, flask")
}

// TestTruncate tests the behavior of truncate.
//
// It verifies:
//   - Short strings pass through unchanged
//   - Long strings gain a "..." suffix at the limit
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "longstr...", truncate("longstring-overflow", 10))
}
