package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, closeLog, err := newLogger(ApplicationConfig{LogFile: path})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}

	logger.Info("session started", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"session started"`) {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewLoggerWithoutFileDiscards(t *testing.T) {
	logger, closeLog, err := newLogger(ApplicationConfig{})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()

	// Must not panic or touch any file; output goes nowhere.
	logger.Info("invisible")
}
