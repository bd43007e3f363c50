package quiz

import (
	"context"
	"testing"

	"github.com/abhisek/railz/internal/vault"
)

func archiveTutorial() *vault.Tutorial {
	return &vault.Tutorial{
		ID: "12-03-2026-activerecord-callbacks",
		Quizzes: []vault.QuizRecord{
			{
				Date:  vault.Today().AddDays(-14),
				Score: 5,
				Questions: []vault.QuizQuestion{
					{Prompt: "What does after_commit guarantee?", Expected: "runs after the transaction commits", Correct: false},
					{Prompt: "Where do validations run?", Expected: "inside the save transaction", Correct: true},
				},
			},
			{
				Date:  vault.Today().AddDays(-7),
				Score: 7,
				Questions: []vault.QuizQuestion{
					{Prompt: "What does after_commit guarantee?", Expected: "runs after the transaction commits", Correct: true},
					{Prompt: "What aborts a callback chain?", Expected: "throwing :abort", Correct: false},
				},
			},
		},
		QA: []vault.QAEntry{
			{Question: "Why do callbacks run inside the save transaction?", Answer: "so a raise rolls everything back", Asked: vault.Today().AddDays(-3)},
		},
	}
}

func TestArchiveSource_MissedQuestionsFirst(t *testing.T) {
	qs, err := ArchiveSource{}.Questions(context.Background(), archiveTutorial(), 10, nil)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}

	// after_commit was missed in the first sitting but answered correctly
	// in the second, so only the abort question still counts as missed.
	if qs[0].Prompt != "What aborts a callback chain?" {
		t.Errorf("first question = %q, want the most recently missed one", qs[0].Prompt)
	}
	if len(qs) != 4 {
		t.Fatalf("got %d questions, want 4", len(qs))
	}
}

func TestArchiveSource_SkipsPriorPrompts(t *testing.T) {
	prior := []string{"what aborts a callback chain?", "Where do validations run?"}

	qs, err := ArchiveSource{}.Questions(context.Background(), archiveTutorial(), 10, prior)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}

	for _, q := range qs {
		if Normalize(q.Prompt) == "what aborts a callback chain" ||
			Normalize(q.Prompt) == "where do validations run" {
			t.Errorf("prior prompt repeated: %q", q.Prompt)
		}
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
}

func TestArchiveSource_QAEntriesFillIn(t *testing.T) {
	tut := &vault.Tutorial{
		ID: "12-03-2026-activerecord-callbacks",
		QA: []vault.QAEntry{
			{Question: "Why do callbacks run inside the save transaction?", Answer: "so a raise rolls everything back"},
		},
	}

	qs, err := ArchiveSource{}.Questions(context.Background(), tut, 10, nil)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Expected != "so a raise rolls everything back" {
		t.Errorf("expected answer = %q, want the archived answer", qs[0].Expected)
	}
}

func TestArchiveSource_CapsAtCount(t *testing.T) {
	qs, err := ArchiveSource{}.Questions(context.Background(), archiveTutorial(), 2, nil)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
}

func TestArchiveSource_EmptyTutorialErrors(t *testing.T) {
	tut := &vault.Tutorial{ID: "12-03-2026-activerecord-callbacks"}
	if _, err := (ArchiveSource{}).Questions(context.Background(), tut, 5, nil); err == nil {
		t.Fatal("expected an error for a tutorial with no archive")
	}
}

func TestArchivedPrompts(t *testing.T) {
	prompts := ArchivedPrompts(archiveTutorial())

	// Four quiz answers plus one Q&A entry, duplicates included.
	if len(prompts) != 5 {
		t.Fatalf("got %d prompts, want 5", len(prompts))
	}
	if prompts[len(prompts)-1] != "Why do callbacks run inside the save transaction?" {
		t.Errorf("last prompt = %q, want the Q&A question", prompts[len(prompts)-1])
	}
}
