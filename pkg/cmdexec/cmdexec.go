// Package cmdexec runs pip invocations as argument vectors. It is the
// only place in pipup that touches os/exec: the list step captures
// output for the parser, and run mode streams the upgrade to the
// terminal. Commands run in their own process group so a timeout kills
// pip together with any build subprocesses it spawned.
package cmdexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/pipup/pkg/verbose"
	"github.com/ajxudir/pipup/pkg/warnings"
)

// OutputFunc is the function signature for captured command execution.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - argv: Argument vector, first token is the executable
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Captured stdout of the command
//   - error: Any error that occurred during execution
type OutputFunc func(ctx context.Context, argv []string, timeoutSeconds int) ([]byte, error)

// RunFunc is the function signature for passthrough command execution.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - argv: Argument vector, first token is the executable
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - error: Any error that occurred during execution
type RunFunc func(ctx context.Context, argv []string, timeoutSeconds int) error

// Output captures the stdout of a command. It is a variable so tests can
// substitute a mock listing without spawning pip.
var Output OutputFunc = runOutput

// Run executes a command with stdout and stderr attached to the
// terminal. It is a variable so tests can observe run mode without
// spawning pip.
var Run RunFunc = runPassthrough

// runOutput executes argv and returns its captured stdout.
//
// It performs the following operations:
//   - Applies the timeout to the context when one is configured
//   - Starts the command in its own process group
//   - Captures stdout and stderr separately
//   - On timeout, kills the whole process group and reports the timeout
//   - On failure, folds trimmed stderr into the returned error
//
// Parameters:
//   - ctx: Context for cancellation control
//   - argv: Argument vector, first token is the executable
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Captured stdout of the command
//   - error: Execution, timeout, or non-zero exit error
func runOutput(ctx context.Context, argv []string, timeoutSeconds int) ([]byte, error) {
	cmd, runCtx, cancel, err := buildCommand(ctx, argv, timeoutSeconds)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	verbose.CommandExec(strings.Join(argv, " "))
	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			return nil, timeoutError(cmd, timeoutSeconds, err)
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		verbose.CommandResult(strings.Join(argv, " "), exitCode, errMsg)
		if errMsg != "" {
			return nil, fmt.Errorf("%w: %s", err, errMsg)
		}
		return nil, err
	}

	verbose.CommandResult(strings.Join(argv, " "), 0, "")
	return stdout.Bytes(), nil
}

// runPassthrough executes argv with the terminal's stdout and stderr.
//
// Used by run mode so pip's own progress output reaches the user
// directly. The process group and timeout handling match runOutput.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - argv: Argument vector, first token is the executable
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - error: Execution, timeout, or non-zero exit error
func runPassthrough(ctx context.Context, argv []string, timeoutSeconds int) error {
	cmd, runCtx, cancel, err := buildCommand(ctx, argv, timeoutSeconds)
	if err != nil {
		return err
	}
	defer cancel()

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	verbose.CommandExec(strings.Join(argv, " "))
	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			return timeoutError(cmd, timeoutSeconds, err)
		}
		return err
	}
	return nil
}

// buildCommand prepares an exec.Cmd for argv with optional timeout.
//
// Parameters:
//   - ctx: Parent context
//   - argv: Argument vector, must contain at least the executable
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - *exec.Cmd: Command configured to run in its own process group
//   - context.Context: The context the command runs under, for deadline checks
//   - context.CancelFunc: Cancel function the caller must defer
//   - error: When argv is empty
func buildCommand(ctx context.Context, argv []string, timeoutSeconds int) (*exec.Cmd, context.Context, context.CancelFunc, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, nil, nil, fmt.Errorf("no command provided")
	}

	cancel := context.CancelFunc(func() {})
	if timeoutSeconds > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	setProcGroup(cmd)
	return cmd, ctx, cancel, nil
}

// timeoutError kills the process group and builds the timeout error.
//
// Parameters:
//   - cmd: The timed-out command
//   - timeoutSeconds: Configured timeout in seconds
//   - err: The underlying run error
//
// Returns:
//   - error: Timeout error wrapping the underlying run error
func timeoutError(cmd *exec.Cmd, timeoutSeconds int, err error) error {
	if killErr := killProcGroup(cmd); killErr != nil {
		warnings.Warnf("Warning: failed to kill process group on timeout: %v\n", killErr)
	}
	warnings.Warnf("command timed out after %d seconds\n", timeoutSeconds)
	return fmt.Errorf("command timed out after %d seconds: %w", timeoutSeconds, err)
}
