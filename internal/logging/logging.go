// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zerolog logger used for diagnostics on stderr.
// Catalog output goes to stdout and never passes through the logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/agent-catalog/pkg/types"
)

// fallbackLevel applies when the configured level is empty or unknown.
const fallbackLevel = zerolog.WarnLevel

// New returns a logger writing to w at the configured level and format.
// An unknown level falls back to warn and is reported on w.
func New(w io.Writer, cfg types.LogConfig) zerolog.Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		fmt.Fprintf(w, "warning: %v, using %q\n", err, fallbackLevel.String())
	}

	out := w
	if types.LogFormat(strings.ToLower(string(cfg.Format))) != types.LogJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level. An empty name yields the
// fallback level without error.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return fallbackLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return fallbackLevel, fmt.Errorf("invalid log level %q", name)
	}
}
