// Package config loads railz configuration from an optional YAML file and
// RAILZ_* environment variables. Priority: ENV > YAML > defaults.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

// Config is the root application configuration.
type Config struct {
	Vault    VaultConfig    `yaml:"vault"`
	Database DatabaseConfig `yaml:"database"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Review   ReviewConfig   `yaml:"review"`
	Log      LogConfig      `yaml:"log"`
}

// VaultConfig locates the notes vault.
type VaultConfig struct {
	Dir string `yaml:"dir" env:"RAILZ_VAULT"`
}

// DatabaseConfig locates the event store.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"RAILZ_DB"`
}

// QuizConfig sizes quiz sessions.
type QuizConfig struct {
	QuestionsPerTutorial int `yaml:"questions_per_tutorial" env:"RAILZ_QUIZ_QUESTIONS" env-default:"5"`
	TutorialsPerSession  int `yaml:"tutorials_per_session"  env:"RAILZ_QUIZ_TUTORIALS" env-default:"2"`
}

// ReviewConfig tunes spaced repetition.
type ReviewConfig struct {
	IntervalsRaw  string `yaml:"intervals"      env:"RAILZ_REVIEW_INTERVALS" env-default:"1,3,7,14,30,60"`
	KeepSnapshots int    `yaml:"keep_snapshots" env:"RAILZ_KEEP_SNAPSHOTS"   env-default:"10"`

	// Intervals is IntervalsRaw parsed; Validate fills it.
	Intervals []int `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"RAILZ_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"RAILZ_LOG_FORMAT" env-default:"text"`
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Quiz.QuestionsPerTutorial < 1 || c.Quiz.QuestionsPerTutorial > 20 {
		return fmt.Errorf("quiz.questions_per_tutorial must be 1-20 (got %d)", c.Quiz.QuestionsPerTutorial)
	}
	if c.Quiz.TutorialsPerSession < 1 || c.Quiz.TutorialsPerSession > 10 {
		return fmt.Errorf("quiz.tutorials_per_session must be 1-10 (got %d)", c.Quiz.TutorialsPerSession)
	}
	if c.Review.KeepSnapshots < 1 {
		return fmt.Errorf("review.keep_snapshots must be >= 1 (got %d)", c.Review.KeepSnapshots)
	}

	intervals, err := ParseIntervals(c.Review.IntervalsRaw)
	if err != nil {
		return fmt.Errorf("review.intervals: %w", err)
	}
	c.Review.Intervals = intervals

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error (got %q)", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

// VaultDir returns the configured vault directory, falling back to the
// standard location when unset.
func (c *Config) VaultDir() (string, error) {
	if c.Vault.Dir != "" {
		return c.Vault.Dir, nil
	}
	return vault.DefaultDir()
}

// DBPath returns the configured database path, falling back to the
// standard location when unset.
func (c *Config) DBPath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	return store.DefaultDBPath()
}

// ParseIntervals parses a comma-separated day ladder (e.g. "1,3,7") into a
// strictly ascending list of positive ints.
func ParseIntervals(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("must not be empty")
	}
	parts := strings.Split(raw, ",")
	intervals := make([]int, 0, len(parts))
	prev := 0
	for _, part := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		if d <= prev {
			return nil, fmt.Errorf("days must be positive and ascending, got %s", raw)
		}
		intervals = append(intervals, d)
		prev = d
	}
	return intervals, nil
}
