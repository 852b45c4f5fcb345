package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// An empty path yields the defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and parses the file mode.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.DefaultSource) == "" {
		return errors.New("default_source: must not be empty")
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	case "":
		cfg.Output = DefaultOutput
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if !isLogLevel(cfg.LogLevel) {
		return fmt.Errorf("log_level: invalid level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	mode, err := parseFileMode(cfg.FileMode)
	if err != nil {
		return fmt.Errorf("file_mode: %w", err)
	}
	cfg.fileMode = mode

	return nil
}

func isLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func parseFileMode(s string) (os.FileMode, error) {
	if s == "" {
		s = DefaultFileMode
	}

	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q: %w", s, err)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("mode %q has bits outside 0777", s)
	}
	if v&0o200 == 0 {
		return 0, fmt.Errorf("mode %q is not owner-writable", s)
	}

	return os.FileMode(v), nil
}
