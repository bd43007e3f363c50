package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/railz/internal/config"
)

func TestSetup_WritesToStateFile(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	logger, closer, err := Setup(config.LogConfig{Level: "info", Format: "text"}, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	logger.Info("session planned", "slots", 2)
	closer()

	data, err := os.ReadFile(filepath.Join(stateDir, "railz", "railz.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "session planned") {
		t.Errorf("log file missing entry: %q", data)
	}
	if !strings.Contains(string(data), "slots=2") {
		t.Errorf("log file missing attr: %q", data)
	}
}

func TestSetup_JSONFormat(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	logger, closer, err := Setup(config.LogConfig{Level: "info", Format: "json"}, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info("vault checked")
	closer()

	data, err := os.ReadFile(filepath.Join(stateDir, "railz", "railz.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"vault checked"`) {
		t.Errorf("log file not JSON: %q", data)
	}
}

func TestSetup_LevelFiltersDebug(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	logger, closer, err := Setup(config.LogConfig{Level: "warn", Format: "text"}, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Debug("noise")
	logger.Warn("kept")
	closer()

	data, err := os.ReadFile(filepath.Join(stateDir, "railz", "railz.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "noise") {
		t.Error("debug entry leaked past warn level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("warn entry missing")
	}
}

func TestSetup_InstallsDefaultLogger(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, closer, err := Setup(config.LogConfig{Level: "info", Format: "text"}, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer()

	if slog.Default() != logger {
		t.Error("Setup did not install the default logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
