package vault

import (
	"strings"
	"testing"
)

const fullDoc = `---
concepts: [hotwire, turbo-frames]
source_repo: campfire
description: Turbo frame navigation
understanding_score: 5
prerequisites: []
created: 10-03-2026
last_updated: 18-03-2026
last_quizzed: 18-03-2026
---

# Turbo Frames

Frames scope navigation to a fragment.

` + "```ruby\nturbo_frame_tag :sidebar\n```" + `

## Q&A

### Q: Do frames require Stimulus?
_Asked: 14-03-2026_

No. Frames are plain HTML over the wire; Stimulus is optional sprinkles.

### Q: How do frames interact with caching?
_Asked: 16-03-2026_

Each frame is cached independently by the browser.

## Quiz History

### Quiz 18-03-2026 (score 5/10)

1. **Q:** What attribute links a frame to its response?
   **Expected:** The id attribute matched by turbo_frame_tag
   **Given:** data-turbo-frame [incorrect]
2. **Q:** Do frame requests include a special header?
   **Expected:** Turbo-Frame
   **Given:** Turbo-Frame [correct]
`

func TestParseDocument_Sections(t *testing.T) {
	tut, err := parseDocument("x.md", "10-03-2026-turbo-frames", []byte(fullDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !strings.Contains(tut.Body, "turbo_frame_tag :sidebar") {
		t.Errorf("body lost code block: %q", tut.Body)
	}
	if strings.Contains(tut.Body, "Do frames require Stimulus") {
		t.Error("Q&A content leaked into body")
	}

	if len(tut.QA) != 2 {
		t.Fatalf("len(QA) = %d, want 2", len(tut.QA))
	}
	first := tut.QA[0]
	if first.Question != "Do frames require Stimulus?" {
		t.Errorf("question = %q", first.Question)
	}
	if first.Asked.String() != "14-03-2026" {
		t.Errorf("asked = %s, want 14-03-2026", first.Asked)
	}
	if !strings.Contains(first.Answer, "optional sprinkles") {
		t.Errorf("answer = %q", first.Answer)
	}

	if len(tut.Quizzes) != 1 {
		t.Fatalf("len(Quizzes) = %d, want 1", len(tut.Quizzes))
	}
	quiz := tut.Quizzes[0]
	if quiz.Score != 5 {
		t.Errorf("quiz score = %d, want 5", quiz.Score)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("len(quiz.Questions) = %d, want 2", len(quiz.Questions))
	}
	if quiz.Questions[0].Correct {
		t.Error("first question should be incorrect")
	}
	if !quiz.Questions[1].Correct {
		t.Error("second question should be correct")
	}
	if quiz.Questions[1].Expected != "Turbo-Frame" {
		t.Errorf("expected answer = %q", quiz.Questions[1].Expected)
	}
	if got := quiz.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}

func TestRoundTrip_SectionsSurvive(t *testing.T) {
	tut, err := parseDocument("x.md", "id", []byte(fullDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := renderDocument(tut)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	again, err := parseDocument("x.md", "id", out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if len(again.QA) != len(tut.QA) {
		t.Fatalf("QA entries: %d, want %d", len(again.QA), len(tut.QA))
	}
	for i := range tut.QA {
		if again.QA[i].Question != tut.QA[i].Question {
			t.Errorf("QA[%d] question changed: %q vs %q", i, again.QA[i].Question, tut.QA[i].Question)
		}
		if again.QA[i].Answer != tut.QA[i].Answer {
			t.Errorf("QA[%d] answer changed", i)
		}
	}
	if len(again.Quizzes) != 1 || len(again.Quizzes[0].Questions) != 2 {
		t.Fatalf("quiz history changed shape: %+v", again.Quizzes)
	}
	if again.Quizzes[0].Questions[0].Given != tut.Quizzes[0].Questions[0].Given {
		t.Error("given answer changed across round trip")
	}
}

func TestParseDocument_EmptySections(t *testing.T) {
	tut, err := parseDocument("x.md", "id", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tut.QA) != 0 || len(tut.Quizzes) != 0 {
		t.Errorf("expected empty sections, got %d QA, %d quizzes", len(tut.QA), len(tut.Quizzes))
	}
}

func TestParseDocument_MissingSectionsTolerated(t *testing.T) {
	doc := sampleDoc[:strings.Index(sampleDoc, "## Q&A")]
	tut, err := parseDocument("x.md", "id", []byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tut.QA) != 0 || len(tut.Quizzes) != 0 {
		t.Error("expected no entries when sections absent")
	}
}

func TestParseQuizSection_StrayContent(t *testing.T) {
	_, err := parseQuizSection("random prose outside any quiz block\n")
	if err == nil {
		t.Fatal("expected error for stray quiz content")
	}
}

func TestRender_MultilinePromptsFlattened(t *testing.T) {
	tut := &Tutorial{
		ID: "id",
		FrontMatter: FrontMatter{
			Created:     mustDate(t, "01-01-2026"),
			LastUpdated: mustDate(t, "01-01-2026"),
		},
		Quizzes: []QuizRecord{{
			Date:  mustDate(t, "02-01-2026"),
			Score: 10,
			Questions: []QuizQuestion{{
				Prompt:   "What does\nhas_many generate?",
				Expected: "association\nmethods",
				Given:    "methods",
				Correct:  true,
			}},
		}},
	}
	out, err := renderDocument(tut)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "**Q:** What does has_many generate?") {
		t.Errorf("prompt not flattened:\n%s", out)
	}
	if _, err := parseDocument("x.md", "id", out); err != nil {
		t.Fatalf("reparse: %v", err)
	}
}
