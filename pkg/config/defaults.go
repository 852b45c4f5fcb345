package config

import "os"

// Default values for configuration.
const (
	DefaultSource   = "sample.txt"
	DefaultOutput   = OutputText
	DefaultLogLevel = "warn"
	DefaultFileMode = "0700"
)

// Environment variable names.
const (
	EnvDefaultSource = "FILEUTIL_DEFAULT_SOURCE"
	EnvLogLevel      = "FILEUTIL_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultSource: DefaultSource,
		Output:        DefaultOutput,
		LogLevel:      DefaultLogLevel,
		FileMode:      DefaultFileMode,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if source := os.Getenv(EnvDefaultSource); source != "" {
		c.DefaultSource = source
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
