package quiz

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

func finalizeFixture(t *testing.T) (*vault.Vault, *store.Store) {
	t.Helper()
	v, err := vault.Init(t.TempDir())
	if err != nil {
		t.Fatalf("initializing vault: %v", err)
	}
	s, err := store.Open(filepath.Join(t.TempDir(), "railz.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	return v, s
}

// runSession answers every question in the single-slot plan, getting
// correct of them right.
func runSession(t *testing.T, tut *vault.Tutorial, total, correct int) *State {
	t.Helper()
	plan := &Plan{
		Slots:                []Slot{{TutorialID: tut.ID, Title: tut.Title(), Category: CategoryCatchup}},
		QuestionsPerTutorial: total,
	}
	s := NewState(plan)

	questions := make([]tutorgen.Question, total)
	for i := range questions {
		questions[i] = tutorgen.Question{
			Prompt:   tut.ID + " question " + string(rune('a'+i)),
			Expected: "expected",
		}
	}
	s.SetQuestions(questions)

	for i := 0; i < total; i++ {
		HandleVerdict(s, "an answer", Verdict{Correct: i < correct, GradedBy: GradedBySelf})
		Advance(s)
	}
	if s.Phase != PhaseSummary {
		t.Fatalf("session did not finish: phase %d", s.Phase)
	}
	return s
}

func TestFinalizer_FirstQuizSetsScoreOutright(t *testing.T) {
	v, s := finalizeFixture(t)
	ctx := context.Background()

	tut, err := v.Create(vault.Draft{
		Topic: "Rails Boot Process",
		Body:  "# Rails Boot Process\n\nHow config/boot.rb wires Bundler.",
	})
	if err != nil {
		t.Fatalf("creating tutorial: %v", err)
	}

	state := runSession(t, tut, 2, 1)
	fin := &Finalizer{
		Vault:     v,
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
		Scheduler: review.NewScheduler(nil, s.EventRepo()),
	}

	summary, err := fin.Complete(ctx, state)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if len(summary.Tutorials) != 1 {
		t.Fatalf("got %d summary rows, want 1", len(summary.Tutorials))
	}
	outcome := summary.Tutorials[0]
	if outcome.QuizScore != 5 {
		t.Errorf("quiz score = %d, want 5 for 1 of 2", outcome.QuizScore)
	}
	if outcome.ScoreBefore != nil {
		t.Errorf("score before = %v, want nil for an unscored tutorial", *outcome.ScoreBefore)
	}
	if outcome.ScoreAfter != 5 {
		t.Errorf("score after = %d, want the raw quiz score on first quiz", outcome.ScoreAfter)
	}
	if outcome.FromState != scoring.StateUnread || outcome.ToState != scoring.StateLearning {
		t.Errorf("transition = %s -> %s, want unread -> learning", outcome.FromState, outcome.ToState)
	}

	reread, err := v.Get(tut.ID)
	if err != nil {
		t.Fatalf("re-reading tutorial: %v", err)
	}
	if score, ok := reread.Score(); !ok || score != 5 {
		t.Errorf("persisted score = %d (%v), want 5", score, ok)
	}
	if len(reread.Quizzes) != 1 || len(reread.Quizzes[0].Questions) != 2 {
		t.Fatalf("quiz history not appended: %+v", reread.Quizzes)
	}
	if reread.LastQuizzed == nil {
		t.Error("last_quizzed not stamped")
	}
}

func TestFinalizer_AppendsScoreAndSessionEvents(t *testing.T) {
	v, s := finalizeFixture(t)
	ctx := context.Background()

	tut, err := v.Create(vault.Draft{
		Topic: "Turbo Stream Broadcasts",
		Body:  "# Turbo Stream Broadcasts\n\nbroadcasts_to under the hood.",
	})
	if err != nil {
		t.Fatalf("creating tutorial: %v", err)
	}

	state := runSession(t, tut, 3, 3)
	fin := &Finalizer{
		Vault:     v,
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
		Scheduler: review.NewScheduler(nil, s.EventRepo()),
	}
	if _, err := fin.Complete(ctx, state); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	scores, err := s.EventRepo().QueryScoreEvents(ctx, tut.ID, store.QueryOpts{})
	if err != nil {
		t.Fatalf("querying score events: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d score events, want 1", len(scores))
	}
	if scores[0].Trigger != scoring.TriggerFirstQuiz {
		t.Errorf("trigger = %s, want %s", scores[0].Trigger, scoring.TriggerFirstQuiz)
	}
	if scores[0].SessionID != state.SessionID {
		t.Errorf("score event session = %s, want %s", scores[0].SessionID, state.SessionID)
	}

	sessions, err := s.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("querying sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d session records, want 1", len(sessions))
	}
	if sessions[0].QuestionsServed != 3 || sessions[0].CorrectAnswers != 3 {
		t.Errorf("session record = %d/%d, want 3/3",
			sessions[0].CorrectAnswers, sessions[0].QuestionsServed)
	}
}

func TestFinalizer_SolidResultEntersReviewSchedule(t *testing.T) {
	v, s := finalizeFixture(t)
	ctx := context.Background()

	tut, err := v.Create(vault.Draft{
		Topic: "Solid Queue Polling",
		Body:  "# Solid Queue Polling\n\nHow the dispatcher claims jobs.",
	})
	if err != nil {
		t.Fatalf("creating tutorial: %v", err)
	}

	sched := review.NewScheduler(nil, s.EventRepo())
	state := runSession(t, tut, 4, 4)
	fin := &Finalizer{
		Vault:     v,
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
		Scheduler: sched,
		Learner:   &store.LearnerSummaryData{Summary: "learns by tracing framework source"},
	}
	if _, err := fin.Complete(ctx, state); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if sched.Get(tut.ID) == nil {
		t.Error("perfect first quiz should start review tracking")
	}

	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("no snapshot written")
	}
	if snap.Data.Version != store.SnapshotVersion {
		t.Errorf("snapshot version = %d, want %d", snap.Data.Version, store.SnapshotVersion)
	}
	if snap.Data.Reviews[tut.ID] == nil {
		t.Error("review schedule missing from snapshot")
	}
	if snap.Data.Learner == nil || snap.Data.Learner.Summary == "" {
		t.Error("learner summary dropped from snapshot")
	}
	if snap.Sequence == 0 {
		t.Error("snapshot sequence not taken from the event counter")
	}
}

func TestFinalizer_UnansweredSlotsUntouched(t *testing.T) {
	v, s := finalizeFixture(t)
	ctx := context.Background()

	answered, err := v.Create(vault.Draft{
		Topic: "Rails Boot Process",
		Body:  "# Rails Boot Process\n\nBody.",
	})
	if err != nil {
		t.Fatalf("creating tutorial: %v", err)
	}
	skipped, err := v.Create(vault.Draft{
		Topic: "Action Cable Pubsub",
		Body:  "# Action Cable Pubsub\n\nBody.",
	})
	if err != nil {
		t.Fatalf("creating tutorial: %v", err)
	}

	plan := &Plan{
		Slots: []Slot{
			{TutorialID: answered.ID, Title: answered.Title(), Category: CategoryCatchup},
			{TutorialID: skipped.ID, Title: skipped.Title(), Category: CategoryCatchup},
		},
		QuestionsPerTutorial: 1,
	}
	state := NewState(plan)
	state.SetQuestions([]tutorgen.Question{{Prompt: "q", Expected: "e"}})
	HandleVerdict(state, "a", Verdict{Correct: true})
	Advance(state)
	End(state) // quit before the second slot loads

	fin := &Finalizer{
		Vault:     v,
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
		Scheduler: review.NewScheduler(nil, s.EventRepo()),
	}
	summary, err := fin.Complete(ctx, state)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if len(summary.Tutorials) != 1 {
		t.Fatalf("got %d summary rows, want only the answered slot", len(summary.Tutorials))
	}
	untouched, err := v.Get(skipped.ID)
	if err != nil {
		t.Fatalf("re-reading skipped tutorial: %v", err)
	}
	if _, ok := untouched.Score(); ok {
		t.Error("skipped tutorial gained a score")
	}
	if len(untouched.Quizzes) != 0 {
		t.Error("skipped tutorial gained quiz history")
	}
}
