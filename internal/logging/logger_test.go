package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "contrib.log")

	config := &Config{
		Level: LevelDebug,
		File:  logPath,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if logger.logFile == nil || logger.logFile.Name() != logPath {
		t.Errorf("log file not opened at %q", logPath)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestNewWithNilConfig(t *testing.T) {
	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	defer logger.Close()

	if logger.logFile != nil {
		t.Errorf("log file = %q, want none", logger.logFile.Name())
	}

	// Should not panic
	logger.Info("discarded")
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	if logger == nil {
		t.Error("NewNoop() returned nil")
	}

	// Should not panic
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLogLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "contrib.log")

	logger, err := New(&Config{Level: LevelDebug, File: logPath})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	for _, want := range []string{"debug message", "info message", "warn message", "error message", "key=value"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Log file missing %q", want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: LevelWarn, Console: true, Stderr: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: LevelInfo, Console: true, Stderr: &buf, JSONFormat: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("json message", "step", "title")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "json message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "json message")
	}
	if entry["step"] != "title" {
		t.Errorf("step = %v, want %q", entry["step"], "title")
	}
}

func TestFileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "contrib.log")

	logger, err := New(&Config{Level: LevelInfo, File: logPath, Console: true, Stderr: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("both sinks")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "both sinks") {
		t.Error("log file missing message")
	}
	if !strings.Contains(buf.String(), "both sinks") {
		t.Error("console missing message")
	}
}

func TestNewInvalidFile(t *testing.T) {
	dir := t.TempDir()

	// A directory cannot be opened as the log file.
	_, err := New(&Config{File: dir})
	if err == nil {
		t.Error("New() expected error for directory log file")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: LevelInfo, Console: true, Stderr: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.With("component", "wizard").Info("scoped")

	if !strings.Contains(buf.String(), "component=wizard") {
		t.Errorf("With() attributes missing: %q", buf.String())
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: LevelInfo, Console: true, Stderr: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithFile(context.Background(), "contributions.yml")
	ctx = WithStep(ctx, "project")
	logger.WithContext(ctx).Info("asking")

	out := buf.String()
	if !strings.Contains(out, "file=contributions.yml") {
		t.Errorf("file attribute missing: %q", out)
	}
	if !strings.Contains(out, "step=project") {
		t.Errorf("step attribute missing: %q", out)
	}

	buf.Reset()
	logger.WithContext(context.Background()).Info("plain")
	if strings.Contains(buf.String(), "file=") {
		t.Errorf("unexpected file attribute: %q", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
