// Package cmd implements the command-line interface for pipup.
// The root command synthesizes one pip invocation that upgrades every
// listed package and prints it, or executes it under --run.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipup/pkg/cmdexec"
	"github.com/ajxudir/pipup/pkg/config"
	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/listing"
	"github.com/ajxudir/pipup/pkg/upgrade"
	"github.com/ajxudir/pipup/pkg/verbose"
)

var exitFunc = os.Exit

var (
	verboseFlag      bool
	quietFlag        bool
	runFlag          bool
	outdatedFlag     bool
	skipChecksFlag   bool
	noCacheDirFlag   bool
	prefixFlag       string
	pythonFlag       string
	noPyLauncherFlag bool
	platformFlag     string
	timeoutFlag      int
	configFlag       string
)

var rootCmd = &cobra.Command{
	Use:   "pipup [package...]",
	Short: "Generate a command to upgrade all installed pip packages",
	Long: `Generate one pip invocation that upgrades every package pip lists.

By default the command is printed for review; --run executes it instead.
Positional package arguments are only consumed under --skip-checks, where
they replace the parsed pip listing verbatim.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: runRoot,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success (including the nothing-to-upgrade outcome)
//   - 2: Failure (malformed listing, invalid token, pip invocation failed)
//   - 3: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose debug output")
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	pf.BoolVarP(&outdatedFlag, "outdated", "o", false, "Only list outdated packages")
	pf.StringVarP(&prefixFlag, "prefix", "c", "", "Command to prefix before each pip invocation (e.g. 'python3 -m')")
	pf.StringVarP(&pythonFlag, "python", "p", config.DefaultPythonVersion, "Python version passed to the py launcher")
	pf.BoolVar(&noPyLauncherFlag, "no-py-launcher", false, "Disable the py launcher on Windows targets")
	pf.StringVar(&platformFlag, "platform", "", "Target platform for the synthesized command (default: current)")
	pf.IntVar(&timeoutFlag, "timeout", 0, "Timeout in seconds for pip invocations (0 disables)")
	pf.StringVar(&configFlag, "config", "", "Config file path (default: ./"+config.ConfigFileName+")")

	rootCmd.Flags().BoolVarP(&runFlag, "run", "r", false, "Run the synthesized command instead of printing it")
	rootCmd.Flags().BoolVar(&skipChecksFlag, "skip-checks", false, "Skip parsing; use the supplied package arguments verbatim")
	rootCmd.Flags().BoolVarP(&noCacheDirFlag, "no-cache-dir", "n", false, "Append --no-cache-dir to the upgrade command")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
}

// buildConfig assembles the effective configuration for a command.
//
// Layering is flags > config file > defaults: the config file is loaded
// first, then every flag the user actually set overrides it. The result
// is validated before use, and verbose logging is enabled when the file
// turned it on.
//
// Parameters:
//   - cmd: Cobra command whose flag set decides which overrides apply
//
// Returns:
//   - config.Config: Validated effective configuration
//   - error: ExitError with ExitConfigError on load or validation failure
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag, ".")
	if err != nil {
		return cfg, errors.NewExitError(errors.ExitConfigError, err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
	if flags.Changed("quiet") {
		cfg.Quiet = quietFlag
	}
	if flags.Changed("run") {
		cfg.Run = runFlag
	}
	if flags.Changed("outdated") {
		cfg.Outdated = outdatedFlag
	}
	if flags.Changed("skip-checks") {
		cfg.SkipChecks = skipChecksFlag
	}
	if flags.Changed("no-cache-dir") {
		cfg.NoCacheDir = noCacheDirFlag
	}
	if flags.Changed("prefix") {
		cfg.Prefix = prefixFlag
	}
	if flags.Changed("python") {
		cfg.PythonVersion = pythonFlag
	}
	if flags.Changed("no-py-launcher") {
		cfg.UsePyLauncher = !noPyLauncherFlag
	}
	if flags.Changed("platform") {
		cfg.TargetOS = platformFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}

	if cfg.Verbose {
		verbose.Enable()
	}
	return cfg, nil
}

// runRoot executes the root command: obtain, parse, synthesize, emit.
//
// It performs the following operations:
//   - Builds and validates the effective configuration
//   - Collects the package sequence (parsed pip listing, or the
//     caller-supplied sequence under --skip-checks)
//   - Synthesizes the single upgrade command
//   - Prints the command, or executes it under --run
//
// The nothing-to-upgrade outcome is handled here as a success: a message
// is printed (unless --quiet) and no command is emitted.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Caller-supplied package sequence, used only under --skip-checks
//
// Returns:
//   - error: Parse, synthesis, or execution error with its exit code
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	pkgs, err := collectPackages(cmd, cfg, args)
	if err != nil {
		return err
	}

	command, err := upgrade.Synthesize(pkgs, cfg)
	if errors.IsNothingToUpgrade(err) {
		if cfg.Outdated {
			inform(cmd, cfg, "All packages are up to date.")
		} else {
			verbose.Info("pip list returned no packages; exiting normally")
		}
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.Run {
		verbose.Infof("Running upgrade command: %s", command.String())
		if err := cmdexec.Run(cmd.Context(), command.Argv(), cfg.Timeout); err != nil {
			return errors.NewExitError(errors.ExitFailure, fmt.Errorf("upgrade command failed: %w", err))
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), command.String())
	return nil
}

// collectPackages produces the package sequence for synthesis.
//
// Under skip-checks the parser never runs: positional arguments (or,
// when none are given, whitespace-split standard input) are trusted
// verbatim. Otherwise pip list is invoked with the configured launcher
// prefix and its output parsed.
//
// Parameters:
//   - cmd: Cobra command, source of context and standard input
//   - cfg: Validated effective configuration
//   - args: Positional package arguments
//
// Returns:
//   - []listing.Package: Ordered package sequence
//   - error: Listing invocation or parse error
func collectPackages(cmd *cobra.Command, cfg config.Config, args []string) ([]listing.Package, error) {
	if cfg.SkipChecks {
		names := args
		if len(names) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to read packages from stdin: %w", err))
			}
			names = strings.Fields(string(data))
		}
		verbose.Info("Skipped pip list output checks")
		verbose.Packages(names)
		return listing.FromNames(names), nil
	}

	listCommand := upgrade.ListCommand(cfg)
	raw, err := cmdexec.Output(cmd.Context(), listCommand.Argv(), cfg.Timeout)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitFailure, fmt.Errorf("'%s' failed: %w", listCommand.String(), err))
	}

	pkgs, err := listing.Parse(string(raw), cfg.Outdated)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitFailure, err)
	}
	verbose.Packages(listing.Names(pkgs))
	return pkgs, nil
}

// inform prints an informational message unless quiet mode is active.
//
// Parameters:
//   - cmd: Cobra command whose output writer receives the message
//   - cfg: Effective configuration carrying the quiet toggle
//   - msg: Message to print
func inform(cmd *cobra.Command, cfg config.Config, msg string) {
	if cfg.Quiet {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
}
