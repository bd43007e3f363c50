package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
vault:
  dir: "/notes/railz"

database:
  path: "/data/railz.db"

quiz:
  questions_per_tutorial: 3
  tutorials_per_session: 4

review:
  intervals: "2,5,9"
  keep_snapshots: 5

log:
  level: "debug"
  format: "json"
`

func TestLoad_FromYAML(t *testing.T) {
	t.Setenv("RAILZ_CONFIG", writeYAML(t, validYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Vault.Dir != "/notes/railz" {
		t.Errorf("vault dir = %q", cfg.Vault.Dir)
	}
	if cfg.Quiz.QuestionsPerTutorial != 3 || cfg.Quiz.TutorialsPerSession != 4 {
		t.Errorf("quiz config = %+v", cfg.Quiz)
	}
	if len(cfg.Review.Intervals) != 3 || cfg.Review.Intervals[2] != 9 {
		t.Errorf("intervals = %v, want [2 5 9]", cfg.Review.Intervals)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log config = %+v", cfg.Log)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("RAILZ_CONFIG", writeYAML(t, validYAML))
	t.Setenv("RAILZ_QUIZ_QUESTIONS", "7")
	t.Setenv("RAILZ_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Quiz.QuestionsPerTutorial != 7 {
		t.Errorf("questions = %d, want env override 7", cfg.Quiz.QuestionsPerTutorial)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level = %q, want env override warn", cfg.Log.Level)
	}
	if cfg.Quiz.TutorialsPerSession != 4 {
		t.Errorf("tutorials = %d, want yaml value 4", cfg.Quiz.TutorialsPerSession)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// Point XDG config somewhere empty so no real config file interferes.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Quiz.QuestionsPerTutorial != 5 || cfg.Quiz.TutorialsPerSession != 2 {
		t.Errorf("quiz defaults = %+v", cfg.Quiz)
	}
	if cfg.Review.KeepSnapshots != 10 {
		t.Errorf("keep_snapshots = %d, want 10", cfg.Review.KeepSnapshots)
	}
	if len(cfg.Review.Intervals) != 6 || cfg.Review.Intervals[0] != 1 {
		t.Errorf("intervals = %v, want the default ladder", cfg.Review.Intervals)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	t.Setenv("RAILZ_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an explicit missing config file")
	}
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		return &Config{
			Quiz:   QuizConfig{QuestionsPerTutorial: 5, TutorialsPerSession: 2},
			Review: ReviewConfig{IntervalsRaw: "1,3,7", KeepSnapshots: 10},
			Log:    LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero questions", func(c *Config) { c.Quiz.QuestionsPerTutorial = 0 }},
		{"too many questions", func(c *Config) { c.Quiz.QuestionsPerTutorial = 21 }},
		{"zero tutorials", func(c *Config) { c.Quiz.TutorialsPerSession = 0 }},
		{"zero snapshots", func(c *Config) { c.Review.KeepSnapshots = 0 }},
		{"descending intervals", func(c *Config) { c.Review.IntervalsRaw = "7,3,1" }},
		{"empty intervals", func(c *Config) { c.Review.IntervalsRaw = "  " }},
		{"garbage interval", func(c *Config) { c.Review.IntervalsRaw = "1,x,7" }},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Log.Format = "logfmt" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidate_ParsesIntervals(t *testing.T) {
	cfg := &Config{
		Quiz:   QuizConfig{QuestionsPerTutorial: 5, TutorialsPerSession: 2},
		Review: ReviewConfig{IntervalsRaw: " 1, 3 ,7 ", KeepSnapshots: 10},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []int{1, 3, 7}
	for i := range want {
		if cfg.Review.Intervals[i] != want[i] {
			t.Fatalf("intervals = %v, want %v", cfg.Review.Intervals, want)
		}
	}
}
