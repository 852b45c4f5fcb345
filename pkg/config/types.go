// Package config provides configuration loading and validation for fileutil.
package config

import "os"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// DefaultSource is the file read when no source path is given.
	DefaultSource string `yaml:"default_source"`

	// Output is the format of the confirmation printed after a copy (text|json).
	Output OutputFormat `yaml:"output"`

	// LogLevel controls diagnostic logging on stderr (debug|info|warn|error).
	LogLevel string `yaml:"log_level"`

	// FileMode is the octal permission set for created destination files.
	FileMode string `yaml:"file_mode"`

	// fileMode is the parsed FileMode (populated during validation).
	fileMode os.FileMode
}

// Perm returns the parsed destination file mode.
func (c *Config) Perm() os.FileMode {
	return c.fileMode
}

// OutputFormat selects how copy confirmations are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)
