package config

import (
	"fmt"
	"strings"

	"github.com/ajxudir/pipup/pkg/errors"
)

// Validate checks the configuration for contradictions and missing values.
//
// It performs the following operations:
//   - Rejects verbose and quiet being set together (mutually exclusive)
//   - Requires a non-blank python version
//   - Requires a non-blank target platform
//   - Rejects a negative timeout
//
// Parameters:
//   - cfg: The configuration to validate
//
// Returns:
//   - error: An ExitError with ExitConfigError on the first violation,
//     nil when the configuration is valid
func Validate(cfg Config) error {
	if cfg.Verbose && cfg.Quiet {
		return errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("--verbose and --quiet are mutually exclusive"))
	}
	if strings.TrimSpace(cfg.PythonVersion) == "" {
		return errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("python version must not be blank"))
	}
	if strings.TrimSpace(cfg.TargetOS) == "" {
		return errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("target platform must not be blank"))
	}
	if cfg.Timeout < 0 {
		return errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("timeout must not be negative, got %d", cfg.Timeout))
	}
	return nil
}
