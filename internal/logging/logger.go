// Package logging provides zerolog construction and context propagation.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "LIGHTBOX_LOG_LEVEL"
	envLogFormat = "LIGHTBOX_LOG_FORMAT"
	logDirPerm   = 0o755
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	output := out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes to a rotating file in fileCfg.LogDir,
// optionally mirrored to stderr. The returned cleanup closes the file.
// When file logging is disabled and stderr is not requested the logger is a no-op.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	var writers []io.Writer
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	cleanup := noop
	if fileCfg.Enabled && fileCfg.LogDir != "" {
		if err := os.MkdirAll(fileCfg.LogDir, logDirPerm); err != nil {
			return New(cfg), noop, fmt.Errorf("create log dir: %w", err)
		}
		rotator, err := NewLogRotator(fileCfg.LogDir, fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays)
		if err != nil {
			return New(cfg), noop, err
		}
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}

	switch len(writers) {
	case 0:
		return zerolog.Nop(), noop, nil
	case 1:
		return newLogger(cfg, writers[0]), cleanup, nil
	default:
		return newLogger(cfg, zerolog.MultiLevelWriter(writers...)), cleanup, nil
	}
}

// NewFromEnv creates a logger based on environment variables
// LIGHTBOX_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// LIGHTBOX_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overrides cfg with the logging environment variables.
func ConfigFromEnv(cfg Config) Config {
	if level := os.Getenv(envLogLevel); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv(envLogFormat); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}
	return cfg
}

// LogFilePath returns the active log file path inside logDir.
func LogFilePath(logDir string) string {
	return filepath.Join(logDir, logFileName)
}
