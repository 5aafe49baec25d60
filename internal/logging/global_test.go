package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGlobalDefaultsToNoop(t *testing.T) {
	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}
	if logger.logFile != nil {
		t.Error("default global logger should not write to a file")
	}

	// Should not panic
	logger.Info("test message")
	Debug("test message")
}

func TestInitGlobal(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "contrib.log")
	if err := InitGlobal(&Config{Level: LevelDebug, File: logPath}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	Debug("debug message")
	Global().With("component", "test").Info("with test")

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	for _, msg := range []string{"debug message", "with test", "component=test"} {
		if !strings.Contains(string(content), msg) {
			t.Errorf("Log should contain %q:\n%s", msg, content)
		}
	}
}

func TestInitGlobalClosesPrevious(t *testing.T) {
	dir := t.TempDir()
	if err := InitGlobal(&Config{Level: LevelInfo, File: filepath.Join(dir, "first.log")}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	first := Global()

	if err := InitGlobal(&Config{Level: LevelInfo, File: filepath.Join(dir, "second.log")}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	defer CloseGlobal()

	if first.logFile != nil {
		t.Error("previous global logger should be closed")
	}
	if Global() == first {
		t.Error("Global() should return the new logger")
	}
}

func TestInitGlobalError(t *testing.T) {
	before := Global()

	if err := InitGlobal(&Config{File: t.TempDir()}); err == nil {
		t.Error("InitGlobal() expected error for directory log file")
	}
	if Global() != before {
		t.Error("failed InitGlobal() should keep the current logger")
	}
}

func TestCloseGlobal(t *testing.T) {
	if err := InitGlobal(&Config{Level: LevelInfo, File: filepath.Join(t.TempDir(), "contrib.log")}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	logger := Global()
	if logger.logFile != nil {
		t.Error("global logger should discard after CloseGlobal()")
	}
	logger.Info("after close")

	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() should not error: %v", err)
	}
}
