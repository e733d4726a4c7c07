// Package logging installs the process-wide slog logger for console
// applications. Defaults stay quiet on stderr; file sinks rotate through
// lumberjack.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel  = "FRAMEWORK_LOG_LEVEL"
	EnvLogFormat = "FRAMEWORK_LOG_FORMAT"
	EnvLogSink   = "FRAMEWORK_LOG_SINK"
	EnvLogFile   = "FRAMEWORK_LOG_FILE"
)

// Config controls the process logger. Zero fields fall back to defaults.
type Config struct {
	Level     string `yaml:"level"`
	Format    Format `yaml:"format"`
	Sink      Sink   `yaml:"sink"`
	File      string `yaml:"file"`
	AddSource bool   `yaml:"add_source"`

	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// Default returns the CLI defaults: errors only, text, stderr.
func Default() Config {
	return Config{
		Level:      "error",
		Format:     FormatText,
		Sink:       SinkStderr,
		MaxSizeMB:  20,
		MaxBackups: 5,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// WithEnv overlays FRAMEWORK_LOG_* environment variables onto the config.
func (c Config) WithEnv() Config {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Format = Format(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSink)); v != "" {
		c.Sink = Sink(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.File = v
	}
	return c
}

// InitOptions identify the application in every record.
type InitOptions struct {
	App     string
	Version string
}

// Init merges the config over the defaults, installs the default slog
// logger and returns a close func for file sinks.
func Init(cfg Config, opts InitOptions) (func() error, error) {
	cfg = merge(Default(), cfg)

	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}
	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}
	logger := slog.New(handler)
	if opts.App != "" {
		logger = logger.With("app", opts.App)
	}
	if opts.Version != "" {
		logger = logger.With("version", opts.Version)
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

func merge(base, override Config) Config {
	out := base
	if override.Level != "" {
		out.Level = override.Level
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Sink != "" {
		out.Sink = override.Sink
	}
	if override.File != "" {
		out.File = override.File
	}
	if override.AddSource {
		out.AddSource = true
	}
	if override.MaxSizeMB > 0 {
		out.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups > 0 {
		out.MaxBackups = override.MaxBackups
	}
	if override.MaxAgeDays > 0 {
		out.MaxAgeDays = override.MaxAgeDays
	}
	return out
}

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	switch cfg.Sink {
	case SinkStderr:
		return os.Stderr, nil, nil
	case SinkNone:
		return io.Discard, nil, nil
	case SinkFile:
		if strings.TrimSpace(cfg.File) == "" {
			return nil, nil, fmt.Errorf("file sink requires a path")
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		return rotator, rotator.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown log sink %q", cfg.Sink)
	}
}

// ParseLevel maps a level name onto slog, defaulting to error.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
