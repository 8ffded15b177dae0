// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourcePath is the agent README the CLI reads. It is not configurable.
const SourcePath = "/var/www/instructions/README.md"

// LogFormat selects how diagnostics are written to stderr.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// ExportFormat selects the machine-readable encoding used by the export command.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// LogConfig holds settings for the stderr diagnostic logger.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, or error (default warn).
	Level string `json:"log_level" yaml:"log_level"`

	// Format is console or json (default console).
	Format LogFormat `json:"log_format" yaml:"log_format"`
}

// DefaultLogConfig returns the logger settings used when nothing is overridden.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "warn",
		Format: LogConsole,
	}
}
