// Package logging wires slog for a terminal binary: a file handler that is
// always on, plus a stderr handler that goes quiet while the TUI owns the
// terminal.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/abhisek/railz/internal/config"
)

// Setup opens the log file, builds the fan-out handler, and installs the
// result via slog.SetDefault. quiet drops the stderr handler; pass true for
// commands that draw the screen. The returned func closes the log file.
func Setup(cfg config.LogConfig, quiet bool) (*slog.Logger, func(), error) {
	path, err := FilePath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := parseLevel(cfg.Level)
	fileOpts := &slog.HandlerOptions{Level: level}

	var fileHandler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		fileHandler = slog.NewJSONHandler(file, fileOpts)
	} else {
		fileHandler = slog.NewTextHandler(file, fileOpts)
	}

	handlers := []slog.Handler{fileHandler}
	if !quiet {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	slog.SetDefault(logger)

	closer := func() { _ = file.Close() }
	return logger, closer, nil
}

// FilePath returns where railz writes its log file:
// $XDG_STATE_HOME/railz/railz.log, falling back to ~/.local/state.
func FilePath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "railz", "railz.log"), nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
