// Package config defines the pipup configuration record, its defaults,
// YAML file loading, and validation.
package config

import "runtime"

// DefaultPythonVersion is the python version used when none is configured.
const DefaultPythonVersion = "3"

// Config is the fully-enumerated configuration record consumed by the
// listing parser, the command synthesizer, and the process layer.
//
// Every field has an explicit default; there is no dynamic attribute
// access anywhere. Values are created once per run and never mutated
// after validation.
//
// Fields:
//   - Verbose: Enable [DEBUG] logging (mutually exclusive with Quiet)
//   - Quiet: Suppress informational messages (mutually exclusive with Verbose)
//   - Run: Execute the synthesized command instead of printing it
//   - Outdated: List only outdated packages (selects the four-column shape)
//   - SkipChecks: Bypass the listing parser; trust the supplied sequence
//   - NoCacheDir: Append --no-cache-dir to the upgrade invocation
//   - Prefix: Launcher prefix emitted verbatim before pip, empty for none
//   - PythonVersion: Version passed to the py launcher (default "3")
//   - UsePyLauncher: Use the Windows py launcher when no prefix is set (default true)
//   - TargetOS: Platform the command is synthesized for (default runtime GOOS)
//   - Timeout: Maximum seconds for a pip invocation, 0 for no timeout
type Config struct {
	Verbose       bool   `yaml:"verbose"`
	Quiet         bool   `yaml:"quiet"`
	Run           bool   `yaml:"run"`
	Outdated      bool   `yaml:"outdated"`
	SkipChecks    bool   `yaml:"skip_checks"`
	NoCacheDir    bool   `yaml:"no_cache_dir"`
	Prefix        string `yaml:"prefix"`
	PythonVersion string `yaml:"python_version"`
	UsePyLauncher bool   `yaml:"use_py_launcher"`
	TargetOS      string `yaml:"target_os"`
	Timeout       int    `yaml:"timeout"`
}

// Default returns the built-in configuration defaults.
//
// Returns:
//   - Config: Configuration with PythonVersion "3", the py launcher
//     enabled, the running platform as target, and everything else off
func Default() Config {
	return Config{
		PythonVersion: DefaultPythonVersion,
		UsePyLauncher: true,
		TargetOS:      runtime.GOOS,
	}
}
