package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	return s
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestSequenceCounter_SpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	if err := events.AppendScoreEvent(ctx, ScoreEventData{
		TutorialID: "01-01-2026-rails-basics",
		FromScore:  -1,
		ToScore:    6,
		FromState:  "unread",
		ToState:    "learning",
		Trigger:    "first-quiz",
	}); err != nil {
		t.Fatalf("appending score event: %v", err)
	}
	if err := events.AppendQAEvent(ctx, QAEventData{
		TutorialID: "01-01-2026-rails-basics",
		Question:   "What is a migration?",
		Answer:     "A versioned schema change.",
		Source:     "ask",
	}); err != nil {
		t.Fatalf("appending qa event: %v", err)
	}

	scores, err := events.QueryScoreEvents(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("querying score events: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 score event, got %d", len(scores))
	}
	// The qa event allocated the next sequence, so the score event's
	// sequence must be strictly below the counter's current value.
	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if scores[0].Sequence >= next {
		t.Errorf("score sequence %d not below counter %d", scores[0].Sequence, next)
	}
}

func TestSnapshotRepo_SaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	snaps := s.SnapshotRepo()

	got, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil snapshot on empty store, got %+v", got)
	}

	snap := &Snapshot{
		Sequence:  42,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Data: SnapshotData{
			Version: 1,
			Reviews: map[string]*ReviewStateData{
				"01-01-2026-rails-basics": {
					TutorialID:      "01-01-2026-rails-basics",
					Stage:           2,
					NextReviewDate:  "2026-01-08T00:00:00Z",
					ConsecutiveHits: 2,
					LastReviewDate:  "2026-01-05T00:00:00Z",
				},
			},
			Learner: &LearnerSummaryData{
				Summary:   "Comfortable with MVC, shaky on callbacks.",
				Strengths: []string{"routing"},
			},
		},
	}
	if err := snaps.Save(ctx, snap); err != nil {
		t.Fatalf("saving snapshot: %v", err)
	}
	if snap.ID == 0 {
		t.Error("save did not backfill snapshot ID")
	}

	got, err = snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot, got nil")
	}
	if got.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", got.Sequence)
	}
	rs := got.Data.Reviews["01-01-2026-rails-basics"]
	if rs == nil {
		t.Fatal("review state missing after round trip")
	}
	if rs.Stage != 2 || rs.ConsecutiveHits != 2 {
		t.Errorf("review state corrupted: %+v", rs)
	}
	if got.Data.Learner == nil || got.Data.Learner.Summary == "" {
		t.Error("learner summary missing after round trip")
	}
}

func TestSnapshotRepo_LatestPicksHighestSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	snaps := s.SnapshotRepo()

	for _, seq := range []int64{10, 30, 20} {
		snap := &Snapshot{
			Sequence:  seq,
			Timestamp: time.Now(),
			Data:      SnapshotData{Version: 1},
		}
		if err := snaps.Save(ctx, snap); err != nil {
			t.Fatalf("saving snapshot %d: %v", seq, err)
		}
	}

	got, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Sequence != 30 {
		t.Errorf("latest sequence = %d, want 30", got.Sequence)
	}
}

func TestSnapshotRepo_Prune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	snaps := s.SnapshotRepo()

	for seq := int64(1); seq <= 5; seq++ {
		snap := &Snapshot{
			Sequence:  seq,
			Timestamp: time.Now(),
			Data:      SnapshotData{Version: 1},
		}
		if err := snaps.Save(ctx, snap); err != nil {
			t.Fatalf("saving snapshot %d: %v", seq, err)
		}
	}

	if err := snaps.Prune(ctx, 2); err != nil {
		t.Fatalf("pruning: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("counting snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshot count after prune = %d, want 2", count)
	}

	got, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if got.Sequence != 5 {
		t.Errorf("latest after prune = %d, want 5", got.Sequence)
	}

	// Pruning when fewer snapshots than keep exist is a no-op.
	if err := snaps.Prune(ctx, 10); err != nil {
		t.Fatalf("pruning with large keep: %v", err)
	}
	if err := snaps.Prune(ctx, 0); err == nil {
		t.Error("expected error for keep < 1")
	}
}

func TestEventRepo_SessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	if err := events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "start",
		PlanSummary: []PlanSlot{
			{TutorialID: "01-01-2026-rails-basics", Category: "review"},
			{TutorialID: "02-01-2026-activerecord-models", Category: "frontier"},
		},
	}); err != nil {
		t.Fatalf("appending start: %v", err)
	}
	if err := events.AppendSessionEvent(ctx, SessionEventData{
		SessionID:       "sess-1",
		Action:          "end",
		QuestionsServed: 5,
		CorrectAnswers:  4,
		DurationSecs:    300,
	}); err != nil {
		t.Fatalf("appending end: %v", err)
	}

	summaries, err := events.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("querying summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary (end events only), got %d", len(summaries))
	}
	got := summaries[0]
	if got.SessionID != "sess-1" || got.QuestionsServed != 5 || got.CorrectAnswers != 4 {
		t.Errorf("summary fields wrong: %+v", got)
	}
}

func TestEventRepo_AnswerAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	id := "01-01-2026-rails-basics"
	answers := []bool{true, true, false, true}
	for i, correct := range answers {
		if err := events.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:      "sess-1",
			TutorialID:     id,
			Category:       "review",
			QuestionText:   "q",
			ExpectedAnswer: "a",
			LearnerAnswer:  "a",
			Correct:        correct,
			GradedBy:       "exact",
		}); err != nil {
			t.Fatalf("appending answer %d: %v", i, err)
		}
	}

	acc, err := events.TutorialAccuracy(ctx, id)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	recent, n, err := events.RecentReviewAccuracy(ctx, id, 2)
	if err != nil {
		t.Fatalf("recent accuracy: %v", err)
	}
	if n != 2 {
		t.Fatalf("recent sample size = %d, want 2", n)
	}
	// Last two answers were false, true.
	if recent != 0.5 {
		t.Errorf("recent accuracy = %v, want 0.5", recent)
	}

	acc, err = events.TutorialAccuracy(ctx, "99-01-2026-never-quizzed")
	if err != nil {
		t.Fatalf("accuracy for unknown tutorial: %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy for unknown tutorial = %v, want 0", acc)
	}
}

func TestEventRepo_LatestAnswerTime(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	ts, err := events.LatestAnswerTime(ctx, "01-01-2026-rails-basics")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time for never-quizzed tutorial, got %v", ts)
	}

	if err := events.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:      "sess-1",
		TutorialID:     "01-01-2026-rails-basics",
		Category:       "frontier",
		QuestionText:   "q",
		ExpectedAnswer: "a",
		Correct:        true,
		GradedBy:       "self",
	}); err != nil {
		t.Fatalf("appending answer: %v", err)
	}

	ts, err = events.LatestAnswerTime(ctx, "01-01-2026-rails-basics")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero time after append")
	}
}

func TestEventRepo_QueryScoreEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	transitions := []ScoreEventData{
		{TutorialID: "a", FromScore: -1, ToScore: 5, FromState: "unread", ToState: "learning", Trigger: "first-quiz"},
		{TutorialID: "b", FromScore: -1, ToScore: 8, FromState: "unread", ToState: "solid", Trigger: "first-quiz"},
		{TutorialID: "a", FromScore: 5, ToScore: 7, FromState: "learning", ToState: "solid", Trigger: "quiz-result", SessionID: "sess-1"},
	}
	for i, tr := range transitions {
		if err := events.AppendScoreEvent(ctx, tr); err != nil {
			t.Fatalf("appending transition %d: %v", i, err)
		}
	}

	all, err := events.QueryScoreEvents(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("querying all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Trigger != "quiz-result" {
		t.Errorf("first event trigger = %q, want quiz-result", all[0].Trigger)
	}

	forA, err := events.QueryScoreEvents(ctx, "a", QueryOpts{})
	if err != nil {
		t.Fatalf("querying for a: %v", err)
	}
	if len(forA) != 2 {
		t.Fatalf("expected 2 events for a, got %d", len(forA))
	}

	limited, err := events.QueryScoreEvents(ctx, "", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("querying limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestEventRepo_LLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "quiz-generation", InputTokens: 900, OutputTokens: 300, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "quiz-generation", InputTokens: 1100, OutputTokens: 500, LatencyMs: 1800, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "answer-grading", InputTokens: 200, OutputTokens: 50, LatencyMs: 600, Success: false, ErrorMessage: "rate limited"},
	}
	for i, call := range calls {
		if err := events.AppendLLMRequest(ctx, call); err != nil {
			t.Fatalf("appending llm event %d: %v", i, err)
		}
	}

	recs, err := events.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("querying llm events: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 llm events, got %d", len(recs))
	}

	got, err := events.GetLLMEvent(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("getting llm event: %v", err)
	}
	if got == nil || got.ID != recs[0].ID {
		t.Fatalf("get returned wrong record: %+v", got)
	}

	missing, err := events.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("getting missing llm event: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	for _, stat := range byPurpose {
		if stat.Purpose == "quiz-generation" {
			if stat.Calls != 2 || stat.InputTokens != 2000 || stat.OutputTokens != 800 {
				t.Errorf("quiz-generation stats wrong: %+v", stat)
			}
		}
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("expected 1 model row, got %d", len(byModel))
	}
	if byModel[0].Calls != 3 {
		t.Errorf("model calls = %d, want 3", byModel[0].Calls)
	}
}

func TestStudyDays_DedupesWithinDay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	for i := 0; i < 3; i++ {
		if err := events.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:      "sess-1",
			TutorialID:     "01-01-2026-rails-basics",
			Category:       "review",
			QuestionText:   "q",
			ExpectedAnswer: "a",
			Correct:        true,
			GradedBy:       "exact",
		}); err != nil {
			t.Fatalf("appending answer %d: %v", i, err)
		}
	}

	days, err := events.StudyDays(ctx)
	if err != nil {
		t.Fatalf("study days: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 study day, got %d", len(days))
	}
	today := time.Now()
	if days[0].Year() != today.Year() || days[0].YearDay() != today.YearDay() {
		t.Errorf("study day = %v, want today", days[0])
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("RAILZ_DB", "/tmp/custom/railz.db")
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if path != "/tmp/custom/railz.db" {
		t.Errorf("path = %q, want RAILZ_DB override", path)
	}

	t.Setenv("RAILZ_DB", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	path, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	want := filepath.Join("/tmp/xdg-data", "railz", "railz.db")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "railz.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening store with nested path: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("reading journal_mode: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	var fk int
	if err := s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("reading foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}
