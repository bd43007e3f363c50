package tutorgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/railz/internal/llm"
	"github.com/abhisek/railz/internal/vault"
)

func testTutorial() *vault.Tutorial {
	t := &vault.Tutorial{
		ID:   "12-03-2026-activerecord-callbacks",
		Body: "# ActiveRecord Callbacks\n\nCallbacks hook into the object lifecycle.\n",
		QA: []vault.QAEntry{
			{Question: "Why do callbacks run inside the save transaction?", Answer: "So a raise rolls back the save."},
		},
	}
	t.SourceRepo = "basecamp/once-campfire"
	return t
}

func validDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Turbo Stream Broadcasts",
		"description": "How Campfire pushes new messages to every open room.",
		"concepts": ["turbo-streams", "action-cable", "broadcasting"],
		"prerequisites": ["12-03-2026-activerecord-callbacks", "01-01-2026-invented-tutorial"],
		"body": "## Why broadcasts\n\nCampfire rooms update live because..."
	}`)
}

func TestDraftTutorial_FiltersInventedPrereqs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDraftJSON()})
	svc := NewService(mock, DefaultConfig())

	draft, err := svc.DraftTutorial(context.Background(), DraftInput{
		Topic:      "Turbo Stream broadcasts",
		SourceRepo: "basecamp/once-campfire",
		Existing: []ExistingTutorial{
			{ID: "12-03-2026-activerecord-callbacks", Description: "Lifecycle callbacks"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(draft.Prerequisites) != 1 {
		t.Fatalf("expected 1 prerequisite after filtering, got %v", draft.Prerequisites)
	}
	if draft.Prerequisites[0] != "12-03-2026-activerecord-callbacks" {
		t.Errorf("unexpected prerequisite: %q", draft.Prerequisites[0])
	}
	if draft.Title != "Turbo Stream Broadcasts" {
		t.Errorf("unexpected title: %q", draft.Title)
	}
	if !strings.HasPrefix(draft.Body, "# Turbo Stream Broadcasts\n\n") {
		t.Errorf("body should start with the title heading, got %q", draft.Body[:40])
	}
}

func TestDraftTutorial_EmptyBodyErrors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"T","description":"d","concepts":[],"prerequisites":[],"body":"   "}`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.DraftTutorial(context.Background(), DraftInput{Topic: "Anything"})
	if err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestDraftTutorial_BlankTitleFallsBackToTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"  ","description":"d","concepts":[],"prerequisites":[],"body":"## Section"}`),
	})
	svc := NewService(mock, DefaultConfig())

	draft, err := svc.DraftTutorial(context.Background(), DraftInput{Topic: "Router internals"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Title != "Router internals" {
		t.Errorf("expected topic fallback, got %q", draft.Title)
	}
}

func TestAnswerQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer":"  Because after_commit fires outside the transaction, the record is already visible.  "}`),
	})
	svc := NewService(mock, DefaultConfig())

	answer, err := svc.AnswerQuestion(context.Background(), testTutorial(), "Why use after_commit for broadcasts?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasPrefix(answer, " ") || strings.HasSuffix(answer, " ") {
		t.Errorf("answer should be trimmed, got %q", answer)
	}
	if !strings.Contains(answer, "after_commit") {
		t.Errorf("unexpected answer: %q", answer)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Why use after_commit for broadcasts?") {
		t.Error("prompt should contain the question")
	}
}

func TestAnswerQuestion_EmptyAnswerErrors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer":"   "}`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.AnswerQuestion(context.Background(), testTutorial(), "q", "")
	if err == nil {
		t.Fatal("expected error for empty answer")
	}
}

func quizJSON(prompts ...string) json.RawMessage {
	type q struct {
		Prompt         string `json:"prompt"`
		ExpectedAnswer string `json:"expected_answer"`
		Explanation    string `json:"explanation"`
	}
	var qs []q
	for _, p := range prompts {
		qs = append(qs, q{Prompt: p, ExpectedAnswer: "expected", Explanation: "because"})
	}
	data, _ := json.Marshal(map[string]any{"questions": qs})
	return data
}

func TestQuizQuestions_DropsPriorDuplicates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: quizJSON(
			"What does before_save run before?",
			"Why do callbacks run inside the save transaction?", // already asked
			"When does after_commit fire?",
		),
	})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.QuizQuestions(context.Background(), QuizInput{
		Tutorial:       testTutorial(),
		Count:          5,
		PriorQuestions: []string{"Why do callbacks run inside the save transaction?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions after dedup, got %d", len(questions))
	}
	for _, q := range questions {
		if strings.Contains(q.Prompt, "save transaction") {
			t.Errorf("duplicate prior question survived: %q", q.Prompt)
		}
	}
}

func TestQuizQuestions_DropsBatchDuplicates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: quizJSON(
			"When does after_commit fire?",
			"when does  AFTER_COMMIT fire?", // same question, different spacing and case
		),
	})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.QuizQuestions(context.Background(), QuizInput{Tutorial: testTutorial(), Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question after batch dedup, got %d", len(questions))
	}
}

func TestQuizQuestions_TruncatesToCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: quizJSON("q1", "q2", "q3", "q4"),
	})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.QuizQuestions(context.Background(), QuizInput{Tutorial: testTutorial(), Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestQuizQuestions_AllDuplicatesErrors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: quizJSON("Why do callbacks run inside the save transaction?"),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.QuizQuestions(context.Background(), QuizInput{
		Tutorial:       testTutorial(),
		Count:          3,
		PriorQuestions: []string{"Why do callbacks run inside the save transaction?"},
	})
	if err == nil {
		t.Fatal("expected error when every question is a duplicate")
	}
}

func TestGradeAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct":false,"feedback":"Right mechanism, but misses that the broadcast happens after commit."}`),
	})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.GradeAnswer(context.Background(),
		"When does Campfire broadcast a new message?",
		"After the transaction commits, via after_create_commit.",
		"In the create action.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect verdict")
	}
	if result.Feedback == "" {
		t.Error("expected feedback")
	}
}

func TestProfileSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "Backend developer moving from Django to Rails, strongest on ORM concepts.",
			"strengths": ["solid on ActiveRecord query interface"],
			"weaknesses": ["hazy on Turbo Stream broadcast flow"],
			"patterns": ["retains concepts better with code excerpts"]
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	summary, err := svc.ProfileSummary(context.Background(), ProfileInput{
		Transcript:   "## Interview 10-01-2026\n\nQ: What is your background?\nA: Five years of Django.",
		SessionCount: 3,
		Stats: []TutorialStat{
			{ID: "12-03-2026-activerecord-callbacks", Score: 8, Accuracy: 0.8},
			{ID: "14-03-2026-turbo-streams", Score: -1, Accuracy: 0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(summary.Strengths) != 1 || len(summary.Weaknesses) != 1 {
		t.Errorf("unexpected strengths/weaknesses: %v / %v", summary.Strengths, summary.Weaknesses)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "score 8/10") {
		t.Error("prompt should contain the scored tutorial")
	}
	if !strings.Contains(prompt, "score unset") {
		t.Error("prompt should mark unscored tutorials as unset")
	}
}

func TestInterviewQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"What are you hoping to build once you are comfortable with Rails?"}`),
	})
	svc := NewService(mock, DefaultConfig())

	q, err := svc.InterviewQuestion(context.Background(), InterviewInput{
		Turns: []InterviewTurn{
			{Question: "What is your background?", Answer: "Five years of Django."},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == "" {
		t.Fatal("expected a question")
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Five years of Django.") {
		t.Error("prompt should contain this session's answers")
	}
}

func TestService_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.QuizQuestions(context.Background(), QuizInput{Tutorial: testTutorial(), Count: 3}); err == nil {
		t.Fatal("expected provider error to propagate")
	}
	var unavail *llm.ErrProviderUnavailable
	_, err := svc.GradeAnswer(context.Background(), "q", "e", "g")
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
