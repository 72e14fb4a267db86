//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcGroup puts the command in its own process group so a timeout
// can terminate pip and every child it spawned (build backends,
// compilers) in one signal.
//
// Parameters:
//   - cmd: The command to configure before it starts
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcGroup sends SIGKILL to the command's entire process group.
// The negative PID addresses the group rather than the single process.
//
// Parameters:
//   - cmd: The command whose process group should be killed
//
// Returns:
//   - error: Error from the kill syscall, nil when the process never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
