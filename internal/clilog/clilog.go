// Package clilog provides structured logging for cmd/schemaxform. Handlers
// are backed by charm.land/log/v2, whose *Logger implements slog.Handler,
// giving callers a single log/slog.Logger regardless of whether output is
// rendered as colored text or as JSON.
package clilog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "charm.land/log/v2"
	"github.com/spf13/pflag"
)

// Flags holds the CLI flag names clilog registers, so callers can rename
// them without touching defaults.
type Flags struct {
	Level  string
	Format string
}

// NewConfig builds a [Config] using these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds CLI flag values controlling log level and format.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a Config with schemaxform's default flag names.
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds --log-level and --log-format to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info", "log level, one of: debug, info, warn, error")
	flags.StringVar(&c.Format, c.Flags.Format, "text", "log format, one of: text, json")
}

// NewHandler builds a [slog.Handler] writing to w per the configured
// level and format.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}

// NewHandlerFromStrings builds a slog.Handler from raw level/format
// strings, independent of any Config.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(charmlog.JSONFormatter)
	case "text", "":
		logger.SetFormatter(charmlog.TextFormatter)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
	}

	return logger, nil
}

func parseLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return charmlog.DebugLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}
}
