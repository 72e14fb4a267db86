package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipup/pkg/cmdexec"
	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/listing"
	"github.com/ajxudir/pipup/pkg/output"
	"github.com/ajxudir/pipup/pkg/upgrade"
	"github.com/ajxudir/pipup/pkg/verbose"
)

var listOutputFlag string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show installed packages as reported by pip",
	Long: `Run pip list (honoring the configured launcher prefix) and render the
parsed packages. With --outdated the table gains Latest, Type, and Scope
columns, where Scope classifies each update as major, minor, or patch.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listOutputFlag, "output", "", "Output format: table, json, yaml (default: table)")
}

// runList executes the list command.
//
// It performs the following operations:
//   - Builds and validates the effective configuration
//   - Invokes pip list with the configured launcher prefix
//   - Parses the listing and renders it in the requested format
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused, the command takes no positional arguments
//
// Returns:
//   - error: Listing invocation, parse, or rendering error
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	listCommand := upgrade.ListCommand(cfg)
	raw, err := cmdexec.Output(cmd.Context(), listCommand.Argv(), cfg.Timeout)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("'%s' failed: %w", listCommand.String(), err))
	}

	pkgs, err := listing.Parse(string(raw), cfg.Outdated)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	verbose.Packages(listing.Names(pkgs))

	if len(pkgs) == 0 {
		if cfg.Outdated {
			inform(cmd, cfg, "All packages are up to date.")
		} else {
			inform(cmd, cfg, "No packages found.")
		}
		return nil
	}

	rows := output.BuildRows(pkgs, cfg.Outdated)
	if err := output.Write(cmd.OutOrStdout(), rows, cfg.Outdated, listOutputFlag); err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}
	return nil
}
