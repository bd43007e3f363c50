package quiz

import (
	"testing"
	"time"

	"github.com/abhisek/railz/internal/tutorgen"
)

func twoSlotPlan() *Plan {
	return &Plan{
		Slots: []Slot{
			{TutorialID: "05-01-2026-rails-boot-process", Title: "Rails Boot Process", Category: CategoryReview},
			{TutorialID: "12-01-2026-activerecord-callbacks", Title: "ActiveRecord Callbacks", Category: CategoryFrontier},
		},
		QuestionsPerTutorial: 2,
	}
}

func slotQuestions(prompts ...string) []tutorgen.Question {
	qs := make([]tutorgen.Question, len(prompts))
	for i, p := range prompts {
		qs[i] = tutorgen.Question{Prompt: p, Expected: "expected " + p}
	}
	return qs
}

func TestNewState_InitializesResultsPerSlot(t *testing.T) {
	s := NewState(twoSlotPlan())

	if s.Phase != PhaseLoading {
		t.Errorf("phase = %d, want loading", s.Phase)
	}
	if s.SessionID == "" {
		t.Error("session ID not assigned")
	}
	if len(s.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(s.Results))
	}
	r := s.Results["12-01-2026-activerecord-callbacks"]
	if r == nil || r.Category != CategoryFrontier || r.Title != "ActiveRecord Callbacks" {
		t.Errorf("slot result not seeded from plan: %+v", r)
	}
}

func TestSetQuestions_TracksAskedPrompts(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))

	if s.Phase != PhaseAsking {
		t.Errorf("phase = %d, want asking", s.Phase)
	}
	asked := s.Asked["05-01-2026-rails-boot-process"]
	if len(asked) != 2 || asked[0] != "q1" {
		t.Errorf("asked prompts = %v, want [q1 q2]", asked)
	}
	if q := s.CurrentQuestion(); q == nil || q.Prompt != "q1" {
		t.Errorf("current question = %+v, want q1", q)
	}
}

func TestHandleVerdict_RecordsAnswer(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))

	HandleVerdict(s, "my answer", Verdict{Correct: true, GradedBy: GradedByExact})

	if s.TotalQuestions != 1 || s.TotalCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", s.TotalCorrect, s.TotalQuestions)
	}
	if s.Phase != PhaseFeedback {
		t.Errorf("phase = %d, want feedback", s.Phase)
	}
	if s.LastVerdict == nil || !s.LastVerdict.Correct {
		t.Errorf("last verdict = %+v, want correct", s.LastVerdict)
	}

	r := s.Results["05-01-2026-rails-boot-process"]
	if r.Attempted != 1 || r.Correct != 1 {
		t.Fatalf("result counts = %d/%d, want 1/1", r.Correct, r.Attempted)
	}
	ans := r.Answers[0]
	if ans.Prompt != "q1" || ans.Given != "my answer" || !ans.Correct {
		t.Errorf("recorded answer = %+v", ans)
	}
}

func TestHandleVerdict_NoActiveQuestionIsNoOp(t *testing.T) {
	s := NewState(twoSlotPlan())

	HandleVerdict(s, "answer into the void", Verdict{Correct: true})

	if s.TotalQuestions != 0 {
		t.Errorf("total questions = %d, want 0", s.TotalQuestions)
	}
	if s.Phase != PhaseLoading {
		t.Errorf("phase = %d, want loading", s.Phase)
	}
}

func TestAdvance_WalksQuestionsThenSlots(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))

	HandleVerdict(s, "a1", Verdict{Correct: true})
	if done := Advance(s); done {
		t.Fatal("session ended after first question")
	}
	if s.Phase != PhaseAsking || s.CurrentQuestion().Prompt != "q2" {
		t.Fatalf("phase = %d question = %+v, want asking q2", s.Phase, s.CurrentQuestion())
	}

	HandleVerdict(s, "a2", Verdict{Correct: false})
	if done := Advance(s); done {
		t.Fatal("session ended after first slot")
	}
	if s.Phase != PhaseLoading {
		t.Fatalf("phase = %d, want loading for next slot", s.Phase)
	}
	if slot := s.CurrentSlot(); slot == nil || slot.TutorialID != "12-01-2026-activerecord-callbacks" {
		t.Fatalf("current slot = %+v, want second slot", slot)
	}

	s.SetQuestions(slotQuestions("q3"))
	HandleVerdict(s, "a3", Verdict{Correct: true})
	if done := Advance(s); !done {
		t.Fatal("session did not end after last slot")
	}
	if s.Phase != PhaseSummary {
		t.Errorf("phase = %d, want summary", s.Phase)
	}
	if s.CurrentSlot() != nil {
		t.Error("current slot should be nil past the end")
	}
}

func TestBeginGrading_ParksCurrentQuestion(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))

	BeginGrading(s)

	if s.Phase != PhaseGrading {
		t.Errorf("phase = %d, want grading", s.Phase)
	}
	if q := s.CurrentQuestion(); q == nil || q.Prompt != "q1" {
		t.Errorf("current question = %+v, want q1 still active", q)
	}
}

func TestSkipSlot_AbandonsSlotAndItsQuestions(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))

	if done := SkipSlot(s); done {
		t.Fatal("session ended with a slot remaining")
	}
	if s.Phase != PhaseLoading {
		t.Errorf("phase = %d, want loading", s.Phase)
	}
	if len(s.Questions) != 0 || s.QuestionIndex != 0 {
		t.Errorf("questions not cleared: %d at index %d", len(s.Questions), s.QuestionIndex)
	}
	if slot := s.CurrentSlot(); slot == nil || slot.TutorialID != "12-01-2026-activerecord-callbacks" {
		t.Fatalf("current slot = %+v, want second slot", slot)
	}

	if done := SkipSlot(s); !done {
		t.Fatal("session did not end after skipping the last slot")
	}
	if s.Phase != PhaseSummary {
		t.Errorf("phase = %d, want summary", s.Phase)
	}
}

func TestAdvance_ClearsVerdict(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))
	HandleVerdict(s, "a1", Verdict{Correct: true})

	Advance(s)

	if s.LastVerdict != nil {
		t.Errorf("verdict survived advance: %+v", s.LastVerdict)
	}
}

func TestEnd_StampsElapsed(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.StartTime = time.Now().Add(-3 * time.Second)

	End(s)

	if s.Phase != PhaseSummary {
		t.Errorf("phase = %d, want summary", s.Phase)
	}
	if s.Elapsed < 3*time.Second {
		t.Errorf("elapsed = %v, want at least 3s", s.Elapsed)
	}
}

func TestBuildSummary_SkipsUnreachedSlots(t *testing.T) {
	s := NewState(twoSlotPlan())
	s.SetQuestions(slotQuestions("q1", "q2"))
	HandleVerdict(s, "a1", Verdict{Correct: true})
	Advance(s)
	HandleVerdict(s, "a2", Verdict{Correct: false})
	Advance(s)
	// Quit before the second slot loads.
	End(s)

	summary := BuildSummary(s)

	if len(summary.Tutorials) != 1 {
		t.Fatalf("got %d tutorials, want 1", len(summary.Tutorials))
	}
	outcome := summary.Tutorials[0]
	if outcome.TutorialID != "05-01-2026-rails-boot-process" {
		t.Errorf("tutorial = %s, want the answered slot", outcome.TutorialID)
	}
	if outcome.Attempted != 2 || outcome.Correct != 1 {
		t.Errorf("counts = %d/%d, want 1/2", outcome.Correct, outcome.Attempted)
	}
	if got := summary.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}

func TestSummaryAccuracy_EmptySession(t *testing.T) {
	s := &Summary{}
	if got := s.Accuracy(); got != 0 {
		t.Errorf("accuracy = %v, want 0", got)
	}
}
