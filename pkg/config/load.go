package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pipup/pkg/verbose"
)

// ConfigFileName is the config file looked up in the working directory.
const ConfigFileName = ".pipup.yml"

// maxConfigSize caps config file reads to prevent memory exhaustion.
const maxConfigSize = 1 << 20 // 1 MiB

// fileConfig mirrors Config with pointer fields so that a config file can
// set a value to false/empty explicitly while unset fields keep defaults.
type fileConfig struct {
	Verbose       *bool   `yaml:"verbose"`
	Quiet         *bool   `yaml:"quiet"`
	Run           *bool   `yaml:"run"`
	Outdated      *bool   `yaml:"outdated"`
	SkipChecks    *bool   `yaml:"skip_checks"`
	NoCacheDir    *bool   `yaml:"no_cache_dir"`
	Prefix        *string `yaml:"prefix"`
	PythonVersion *string `yaml:"python_version"`
	UsePyLauncher *bool   `yaml:"use_py_launcher"`
	TargetOS      *string `yaml:"target_os"`
	Timeout       *int    `yaml:"timeout"`
}

// Load loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file and fails
// when the file is missing or invalid. Otherwise it looks for .pipup.yml
// in the working directory and silently falls back to the built-in
// defaults when no file exists. File values are layered over Default();
// command-line flags are layered over the result by the caller.
//
// Parameters:
//   - configPath: path to the config file, or empty to use the lookup
//   - workDir: working directory searched for .pipup.yml
//
// Returns:
//   - Config: the loaded and merged configuration
//   - error: any error encountered while reading or parsing the file
func Load(configPath, workDir string) (Config, error) {
	cfg := Default()

	path := configPath
	if path == "" {
		candidate := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(candidate); err != nil {
			verbose.Info("Using built-in default configuration")
			return cfg, nil
		}
		path = candidate
	}

	verbose.Infof("Loading config from: %s", path)
	fc, err := loadConfigFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	applyFileConfig(&cfg, fc)
	return cfg, nil
}

// loadConfigFile reads and unmarshals a single YAML config file.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *fileConfig: parsed file values with unset fields left nil
//   - error: when the file is missing, oversized, or not valid YAML
func loadConfigFile(path string) (*fileConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &fc, nil
}

// applyFileConfig layers non-nil file values onto the configuration.
//
// Parameters:
//   - cfg: configuration to update in place
//   - fc: parsed file values, nil fields are skipped
func applyFileConfig(cfg *Config, fc *fileConfig) {
	if fc == nil {
		return
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Quiet != nil {
		cfg.Quiet = *fc.Quiet
	}
	if fc.Run != nil {
		cfg.Run = *fc.Run
	}
	if fc.Outdated != nil {
		cfg.Outdated = *fc.Outdated
	}
	if fc.SkipChecks != nil {
		cfg.SkipChecks = *fc.SkipChecks
	}
	if fc.NoCacheDir != nil {
		cfg.NoCacheDir = *fc.NoCacheDir
	}
	if fc.Prefix != nil {
		cfg.Prefix = *fc.Prefix
	}
	if fc.PythonVersion != nil {
		cfg.PythonVersion = *fc.PythonVersion
	}
	if fc.UsePyLauncher != nil {
		cfg.UsePyLauncher = *fc.UsePyLauncher
	}
	if fc.TargetOS != nil {
		cfg.TargetOS = *fc.TargetOS
	}
	if fc.Timeout != nil {
		cfg.Timeout = *fc.Timeout
	}
}
