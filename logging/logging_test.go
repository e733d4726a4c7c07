package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelError,
		"bogus":   slog.LevelError,
		" info ":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMergeKeepsDefaults(t *testing.T) {
	out := merge(Default(), Config{})
	if out != Default() {
		t.Fatalf("empty override changed config: %+v", out)
	}
}

func TestMergeOverrides(t *testing.T) {
	out := merge(Default(), Config{
		Level:     "debug",
		Format:    FormatJSON,
		Sink:      SinkFile,
		File:      "app.log",
		MaxSizeMB: 1,
	})
	if out.Level != "debug" || out.Format != FormatJSON || out.Sink != SinkFile {
		t.Fatalf("override not applied: %+v", out)
	}
	if out.File != "app.log" || out.MaxSizeMB != 1 {
		t.Fatalf("override not applied: %+v", out)
	}
	if out.MaxBackups != Default().MaxBackups {
		t.Fatalf("untouched field changed: %+v", out)
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSink, "file")
	t.Setenv(EnvLogFile, "/tmp/app.log")

	cfg := Default().WithEnv()
	if cfg.Level != "debug" {
		t.Errorf("level = %q", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("format = %q", cfg.Format)
	}
	if cfg.Sink != SinkFile {
		t.Errorf("sink = %q", cfg.Sink)
	}
	if cfg.File != "/tmp/app.log" {
		t.Errorf("file = %q", cfg.File)
	}
}

func TestWithEnvIgnoresEmpty(t *testing.T) {
	t.Setenv(EnvLogLevel, "  ")
	cfg := Default().WithEnv()
	if cfg.Level != Default().Level {
		t.Fatalf("blank env overrode level: %q", cfg.Level)
	}
}

func TestInitNoneSink(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	closeFn, err := Init(Config{Sink: SinkNone}, InitOptions{App: "shipit", Version: "dev"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if closeFn != nil {
		t.Fatalf("discard sink returned a close func")
	}
	slog.Debug("dropped")
}

func TestInitFileSink(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "shipit.log")
	closeFn, err := Init(Config{Sink: SinkFile, File: path, Level: "info", Format: FormatJSON}, InitOptions{App: "shipit"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	slog.Info("hello")
	if closeFn == nil {
		t.Fatalf("file sink returned no close func")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty")
	}
}

func TestInitFileSinkRequiresPath(t *testing.T) {
	if _, err := Init(Config{Sink: SinkFile}, InitOptions{}); err == nil {
		t.Fatalf("expected error for file sink without path")
	}
}

func TestResolveWriterUnknownSink(t *testing.T) {
	if _, _, err := resolveWriter(Config{Sink: Sink("syslog")}); err == nil {
		t.Fatalf("expected error for unknown sink")
	}
}
