//go:build windows

package cmdexec

import (
	"os/exec"
)

// setProcGroup is a no-op on Windows, where exec.CommandContext already
// handles process termination adequately.
//
// Parameters:
//   - cmd: The command to configure (no-op on Windows)
func setProcGroup(cmd *exec.Cmd) {
	// No-op on Windows - exec.CommandContext handles this
}

// killProcGroup kills the command's process on Windows. Killing the
// parent typically terminates children here.
//
// Parameters:
//   - cmd: The command whose process should be killed
//
// Returns:
//   - error: Error from Process.Kill, nil when the process never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
