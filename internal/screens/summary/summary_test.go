package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/railz/internal/quiz"
	"github.com/abhisek/railz/internal/scoring"
)

func testSummary() *quiz.Summary {
	before := 5
	return &quiz.Summary{
		SessionID:      "test-session",
		Duration:       9 * time.Minute,
		TotalQuestions: 10,
		TotalCorrect:   8,
		Tutorials: []quiz.TutorialOutcome{
			{
				TutorialID:  "05-01-2026-rails-boot-process",
				Title:       "Rails Boot Process",
				Category:    quiz.CategoryReview,
				Attempted:   5,
				Correct:     5,
				QuizScore:   10,
				ScoreBefore: &before,
				ScoreAfter:  7,
				FromState:   scoring.StateLearning,
				ToState:     scoring.StateSolid,
			},
			{
				TutorialID: "06-01-2026-activerecord-callbacks",
				Title:      "ActiveRecord Callbacks",
				Category:   quiz.CategoryFrontier,
				Attempted:  5,
				Correct:    3,
				QuizScore:  6,
				ScoreAfter: 6,
				FromState:  scoring.StateUnread,
				ToState:    scoring.StateLearning,
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected completion banner in view")
	}
	if !strings.Contains(view, "Rails Boot Process") {
		t.Error("expected tutorial title in view")
	}
	if !strings.Contains(view, "score 5 > 7") {
		t.Error("expected score transition in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (quit)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (quit)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
