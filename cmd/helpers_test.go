package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/pflag"

	"github.com/ajxudir/pipup/pkg/cmdexec"
	"github.com/ajxudir/pipup/pkg/verbose"
)

// resetCommandState restores flags, output writers, and the verbose
// toggle between tests. Cobra keeps flag values and Changed markers
// across Execute calls, so every test starts from a clean slate.
func resetCommandState(t *testing.T) {
	t.Helper()

	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags(), listCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetArgs(nil)
	verbose.Disable()
}

// mockListOutput substitutes the pip list invocation with fixed output
// and records the argument vectors it was called with.
func mockListOutput(t *testing.T, raw string) *[][]string {
	t.Helper()

	var calls [][]string
	orig := cmdexec.Output
	cmdexec.Output = func(ctx context.Context, argv []string, timeoutSeconds int) ([]byte, error) {
		calls = append(calls, argv)
		return []byte(raw), nil
	}
	t.Cleanup(func() { cmdexec.Output = orig })
	return &calls
}

// mockRun substitutes run-mode execution and records the argument
// vectors it was called with.
func mockRun(t *testing.T) *[][]string {
	t.Helper()

	var calls [][]string
	orig := cmdexec.Run
	cmdexec.Run = func(ctx context.Context, argv []string, timeoutSeconds int) error {
		calls = append(calls, argv)
		return nil
	}
	t.Cleanup(func() { cmdexec.Run = orig })
	return &calls
}

// executeCommand runs the root command with the given arguments and
// returns its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := ExecuteTest()
	return buf.String(), err
}
