package tutorgen

import (
	"strings"
	"testing"
)

func TestBuildDedup_Empty(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("expected 'None', got %q", got)
	}
}

func TestBuildDedup_KeepsMostRecent(t *testing.T) {
	questions := []string{"q1", "q2", "q3", "q4", "q5"}
	got := buildDedup(questions, 3)

	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("oldest questions should be dropped, got:\n%s", got)
	}
	for _, want := range []string{"q3", "q4", "q5"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestBuildDedup_NumbersEntries(t *testing.T) {
	got := buildDedup([]string{"first", "second"}, 0)
	if !strings.HasPrefix(got, "1. first") {
		t.Errorf("expected numbered list, got:\n%s", got)
	}
	if !strings.Contains(got, "2. second") {
		t.Errorf("expected numbered list, got:\n%s", got)
	}
}

func TestNormalizePrompt(t *testing.T) {
	a := normalizePrompt("  When does  AFTER_COMMIT fire? ")
	b := normalizePrompt("when does after_commit fire?")
	if a != b {
		t.Errorf("expected equal normalization, got %q vs %q", a, b)
	}
}

func TestBuildDraftUserMessage(t *testing.T) {
	msg := buildDraftUserMessage(DraftInput{
		Topic:      "Turbo Stream broadcasts",
		SourceRepo: "basecamp/once-campfire",
		Concepts:   []string{"turbo-streams", "action-cable"},
		Existing: []ExistingTutorial{
			{ID: "12-03-2026-activerecord-callbacks", Description: "Lifecycle callbacks"},
		},
		Profile: "Backend developer moving from Django.",
	})

	for _, want := range []string{
		"Topic: Turbo Stream broadcasts",
		"Source repository: basecamp/once-campfire",
		"turbo-streams, action-cable",
		"12-03-2026-activerecord-callbacks: Lifecycle callbacks",
		"Backend developer moving from Django.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message:\n%s", want, msg)
		}
	}
}

func TestBuildDraftUserMessage_NoExisting(t *testing.T) {
	msg := buildDraftUserMessage(DraftInput{Topic: "Routing", SourceRepo: "rails/rails"})
	if !strings.Contains(msg, "None") {
		t.Errorf("expected 'None' for empty tutorial list:\n%s", msg)
	}
}

func TestBuildQuizUserMessage(t *testing.T) {
	msg := buildQuizUserMessage(QuizInput{
		Tutorial:       testTutorial(),
		Count:          5,
		PriorQuestions: []string{"Why do callbacks run inside the save transaction?"},
	}, DefaultConfig())

	for _, want := range []string{
		"Questions wanted: 5",
		"Why do callbacks run inside the save transaction?",
		"Write exactly 5 questions.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message:\n%s", want, msg)
		}
	}
}

func TestBuildAnswerUserMessage_IncludesEarlierQuestions(t *testing.T) {
	msg := buildAnswerUserMessage(testTutorial(), "What about update?", "")
	if !strings.Contains(msg, "Why do callbacks run inside the save transaction?") {
		t.Errorf("expected earlier Q&A questions in message:\n%s", msg)
	}
	if !strings.Contains(msg, "Question: What about update?") {
		t.Errorf("expected the new question in message:\n%s", msg)
	}
}

func TestBuildInterviewUserMessage_FirstInterview(t *testing.T) {
	msg := buildInterviewUserMessage(InterviewInput{})
	if !strings.Contains(msg, "first interview") {
		t.Errorf("expected first-interview marker:\n%s", msg)
	}
	if !strings.Contains(msg, "No questions asked yet.") {
		t.Errorf("expected empty-session marker:\n%s", msg)
	}
}
