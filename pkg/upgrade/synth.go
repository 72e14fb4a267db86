package upgrade

import (
	"strings"
	"unicode"

	"github.com/ajxudir/pipup/pkg/config"
	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/listing"
)

// Synthesize builds the single upgrade invocation for a package sequence.
//
// The shape is:
//
//	[launcher-prefix] pip install --upgrade [--no-cache-dir] <pkg1> ... <pkgN>
//
// It performs the following operations:
//   - Returns the nothing-to-upgrade sentinel for an empty sequence
//   - Validates every package identifier as a single shell token and
//     aborts on the first invalid one (no partially built command)
//   - Resolves the launcher prefix from the configuration
//   - Appends packages in the exact order of the input sequence
//
// Synthesis is deterministic: the same sequence and configuration always
// produce a byte-identical command.
//
// Parameters:
//   - pkgs: Ordered package sequence from the parser or the skip-checks path
//   - cfg: Validated configuration record
//
// Returns:
//   - Command: The synthesized upgrade command
//   - error: The nothing-to-upgrade sentinel, an InvalidPackageTokenError,
//     or nil on success
func Synthesize(pkgs []listing.Package, cfg config.Config) (Command, error) {
	if len(pkgs) == 0 {
		return Command{}, errors.NothingToUpgrade()
	}

	names := listing.Names(pkgs)
	for _, name := range names {
		if err := validateToken(name); err != nil {
			return Command{}, err
		}
	}

	argv := launcherPrefix(cfg)
	argv = append(argv, "pip", "install", "--upgrade")
	if cfg.NoCacheDir {
		argv = append(argv, "--no-cache-dir")
	}
	argv = append(argv, names...)

	return NewCommand(argv), nil
}

// ListCommand builds the pip list invocation that obtains the raw listing.
//
// The launcher prefix applies to the list step exactly as it does to the
// upgrade step, so a custom interpreter sees both commands. The
// --outdated flag is appended when the outdated shape is requested.
//
// Parameters:
//   - cfg: Validated configuration record
//
// Returns:
//   - Command: The pip list command
func ListCommand(cfg config.Config) Command {
	argv := launcherPrefix(cfg)
	argv = append(argv, "pip", "list")
	if cfg.Outdated {
		argv = append(argv, "--outdated")
	}
	return NewCommand(argv)
}

// launcherPrefix resolves the leading tokens emitted before pip.
//
// Resolution order:
//   - A configured prefix is split into tokens and emitted verbatim
//   - On a Windows target with the py launcher enabled, the prefix is
//     py -<python_version>
//   - Otherwise no prefix is emitted and plain pip is assumed on PATH
//
// The decision is made once per run from the configured target platform,
// never detected implicitly.
//
// Parameters:
//   - cfg: Validated configuration record
//
// Returns:
//   - []string: Prefix tokens, nil when no prefix applies
func launcherPrefix(cfg config.Config) []string {
	if prefix := strings.TrimSpace(cfg.Prefix); prefix != "" {
		return splitTokens(prefix)
	}
	if cfg.TargetOS == "windows" && cfg.UsePyLauncher {
		return []string{"py", "-" + strings.TrimSpace(cfg.PythonVersion)}
	}
	return nil
}

// validateToken rejects package identifiers that cannot form a single
// shell token.
//
// pip's own tokenization never produces names with whitespace, so such
// identifiers can only arrive through the skip-checks trust boundary and
// are surfaced here instead of being quoted into the command.
//
// Parameters:
//   - name: Package identifier to check
//
// Returns:
//   - error: InvalidPackageTokenError for empty names or names containing
//     whitespace or control characters, nil when the token is usable
func validateToken(name string) error {
	if name == "" {
		return errors.NewInvalidPackageTokenError(name, "empty package name")
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return errors.NewInvalidPackageTokenError(name, "contains whitespace")
		}
		if unicode.IsControl(r) {
			return errors.NewInvalidPackageTokenError(name, "contains control characters")
		}
	}
	return nil
}
