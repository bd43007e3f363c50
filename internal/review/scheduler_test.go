package review

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

// mockEventRepo records score events and stubs the rest.
type mockEventRepo struct {
	scoreEvents []store.ScoreEventData
}

func (m *mockEventRepo) CurrentSequence(_ context.Context) (int64, error) {
	return 0, nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQAEvent(_ context.Context, _ store.QAEventData) error {
	return nil
}
func (m *mockEventRepo) AppendScoreEvent(_ context.Context, data store.ScoreEventData) error {
	m.scoreEvents = append(m.scoreEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) LatestAnswerTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) TutorialAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) RecentReviewAccuracy(_ context.Context, _ string, _ int) (float64, int, error) {
	return 0, 0, nil
}
func (m *mockEventRepo) StudyDays(_ context.Context) ([]time.Time, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryScoreEvents(_ context.Context, _ string, _ store.QueryOpts) ([]store.ScoreEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func tut(id string, score int, lastQuizzed time.Time) *vault.Tutorial {
	t := &vault.Tutorial{ID: id}
	t.UnderstandingScore = &score
	t.Created = vault.DateOf(lastQuizzed.AddDate(0, 0, -7))
	lq := vault.DateOf(lastQuizzed)
	t.LastQuizzed = &lq
	return t
}

func TestTrack_SetsStageZero(t *testing.T) {
	sched := NewScheduler(nil, nil)

	turnedSolid := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track("01-01-2026-rails-basics", turnedSolid)

	rs := sched.Get("01-01-2026-rails-basics")
	if rs == nil {
		t.Fatal("expected review state")
	}
	if rs.Stage != 0 {
		t.Errorf("Stage = %d, want 0", rs.Stage)
	}
	if rs.ConsecutiveHits != 0 {
		t.Errorf("ConsecutiveHits = %d, want 0", rs.ConsecutiveHits)
	}
	if rs.Graduated || rs.Rusty {
		t.Error("expected fresh state, not graduated or rusty")
	}
	expectedNext := turnedSolid.AddDate(0, 0, 1)
	if !rs.NextReviewDate.Equal(expectedNext) {
		t.Errorf("NextReviewDate = %v, want %v", rs.NextReviewDate, expectedNext)
	}
}

func TestRecordReview_CorrectAdvancesStage(t *testing.T) {
	sched := NewScheduler(nil, nil)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track("a", start)

	now := start.AddDate(0, 0, 1)
	sched.RecordReview("a", true, now)

	rs := sched.Get("a")
	if rs.Stage != 1 {
		t.Errorf("Stage = %d, want 1", rs.Stage)
	}
	if rs.ConsecutiveHits != 1 {
		t.Errorf("ConsecutiveHits = %d, want 1", rs.ConsecutiveHits)
	}
	// Stage 1 interval is 3 days.
	expectedNext := now.AddDate(0, 0, 3)
	if !rs.NextReviewDate.Equal(expectedNext) {
		t.Errorf("NextReviewDate = %v, want %v", rs.NextReviewDate, expectedNext)
	}
}

func TestRecordReview_IncorrectResetsHits(t *testing.T) {
	sched := NewScheduler(nil, nil)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track("a", start)
	sched.RecordReview("a", true, start.AddDate(0, 0, 1))
	sched.RecordReview("a", true, start.AddDate(0, 0, 4))

	rs := sched.Get("a")
	dueBefore := rs.NextReviewDate

	sched.RecordReview("a", false, start.AddDate(0, 0, 11))

	if rs.ConsecutiveHits != 0 {
		t.Errorf("ConsecutiveHits = %d, want 0 after miss", rs.ConsecutiveHits)
	}
	if rs.Stage != 2 {
		t.Errorf("Stage = %d, want 2 (stage holds on a miss)", rs.Stage)
	}
	if !rs.NextReviewDate.Equal(dueBefore) {
		t.Error("NextReviewDate moved on a miss; tutorial should stay due")
	}
}

func TestRecordReview_GraduatesAfterSixHits(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track("a", now)

	for i := 0; i < GraduationStage; i++ {
		now = now.AddDate(0, 0, sched.Get("a").CurrentIntervalDays())
		sched.RecordReview("a", true, now)
	}

	rs := sched.Get("a")
	if !rs.Graduated {
		t.Fatalf("expected graduation after %d hits, state %+v", GraduationStage, rs)
	}
	expectedNext := now.AddDate(0, 0, GraduatedIntervalDays)
	if !rs.NextReviewDate.Equal(expectedNext) {
		t.Errorf("NextReviewDate = %v, want %v (90-day interval)", rs.NextReviewDate, expectedNext)
	}
}

func TestRecordReview_UntrackedIsNoop(t *testing.T) {
	sched := NewScheduler(nil, nil)
	sched.RecordReview("ghost", true, time.Now())
	if sched.Get("ghost") != nil {
		t.Error("RecordReview must not create state for untracked tutorials")
	}
}

func TestNewScheduler_LoadsSnapshot(t *testing.T) {
	snap := &store.SnapshotData{
		Version: 1,
		Reviews: map[string]*store.ReviewStateData{
			"a": {
				TutorialID:      "a",
				Stage:           3,
				NextReviewDate:  "2026-02-01T00:00:00Z",
				ConsecutiveHits: 3,
				Rusty:           true,
				LastReviewDate:  "2026-01-18T00:00:00Z",
			},
			"bad": {
				TutorialID:     "bad",
				NextReviewDate: "not-a-date",
				LastReviewDate: "2026-01-18T00:00:00Z",
			},
		},
	}
	sched := NewScheduler(snap, nil)

	rs := sched.Get("a")
	if rs == nil {
		t.Fatal("expected state loaded from snapshot")
	}
	if rs.Stage != 3 || rs.ConsecutiveHits != 3 || !rs.Rusty {
		t.Errorf("loaded state wrong: %+v", rs)
	}
	if sched.Get("bad") != nil {
		t.Error("entry with malformed date should be skipped")
	}
}

func TestBootstrap_FillsGapsOnly(t *testing.T) {
	lastQuizzed := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	snap := &store.SnapshotData{
		Reviews: map[string]*store.ReviewStateData{
			"tracked": {
				TutorialID:      "tracked",
				Stage:           4,
				NextReviewDate:  "2026-03-01T00:00:00Z",
				ConsecutiveHits: 4,
				LastReviewDate:  "2026-01-30T00:00:00Z",
			},
		},
	}
	sched := NewScheduler(snap, nil)

	tutorials := []*vault.Tutorial{
		tut("tracked", 9, lastQuizzed),
		tut("solid-new", 8, lastQuizzed),
		tut("learning", 4, lastQuizzed),
	}
	sched.Bootstrap(tutorials)

	if got := sched.Get("tracked").Stage; got != 4 {
		t.Errorf("bootstrap overwrote snapshot state, stage = %d", got)
	}

	rs := sched.Get("solid-new")
	if rs == nil {
		t.Fatal("expected bootstrap to track newly solid tutorial")
	}
	if rs.Stage != 0 {
		t.Errorf("Stage = %d, want 0", rs.Stage)
	}
	wantNext := vault.DateOf(lastQuizzed).AddDate(0, 0, 1)
	if !rs.NextReviewDate.Equal(wantNext) {
		t.Errorf("NextReviewDate = %v, want %v", rs.NextReviewDate, wantNext)
	}

	if sched.Get("learning") != nil {
		t.Error("learning tutorial must not be tracked")
	}
}

func TestBootstrap_NeverQuizzedUsesCreated(t *testing.T) {
	sched := NewScheduler(nil, nil)
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	tu := &vault.Tutorial{ID: "hand-scored"}
	score := 8
	tu.UnderstandingScore = &score
	tu.Created = vault.DateOf(created)

	sched.Bootstrap([]*vault.Tutorial{tu})

	rs := sched.Get("hand-scored")
	if rs == nil {
		t.Fatal("expected state for hand-scored tutorial")
	}
	if !rs.LastReviewDate.Equal(vault.DateOf(created).Time) {
		t.Errorf("LastReviewDate = %v, want created date", rs.LastReviewDate)
	}
}

func TestRunDecayCheck_MarksRustyAndEmitsEvent(t *testing.T) {
	repo := &mockEventRepo{}
	sched := NewScheduler(nil, repo)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Stage 0, due two days ago: grace is 0.5 days so well past it.
	sched.reviews["overdue"] = &State{
		TutorialID:     "overdue",
		NextReviewDate: now.AddDate(0, 0, -2),
		LastReviewDate: now.AddDate(0, 0, -3),
	}
	// Due tomorrow: untouched.
	sched.reviews["fresh"] = &State{
		TutorialID:     "fresh",
		NextReviewDate: now.AddDate(0, 0, 1),
		LastReviewDate: now.AddDate(0, 0, -1),
	}

	tutorials := []*vault.Tutorial{
		tut("overdue", 8, now.AddDate(0, 0, -3)),
		tut("fresh", 9, now.AddDate(0, 0, -1)),
	}

	transitions := sched.RunDecayCheck(context.Background(), now, tutorials)
	if len(transitions) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(transitions))
	}
	tr := transitions[0]
	if tr.TutorialID != "overdue" || tr.From != scoring.StateSolid || tr.To != scoring.StateRusty {
		t.Errorf("transition wrong: %+v", tr)
	}
	if tr.Trigger != scoring.TriggerTimeDecay {
		t.Errorf("trigger = %q, want %q", tr.Trigger, scoring.TriggerTimeDecay)
	}
	if tr.FromScore != 8 || tr.ToScore != 8 {
		t.Errorf("decay must not change the score: %+v", tr)
	}

	if !sched.Get("overdue").Rusty {
		t.Error("expected rusty flag set")
	}
	if sched.Get("fresh").Rusty {
		t.Error("fresh tutorial must not be marked rusty")
	}

	if len(repo.scoreEvents) != 1 {
		t.Fatalf("expected 1 score event, got %d", len(repo.scoreEvents))
	}
	if repo.scoreEvents[0].Trigger != scoring.TriggerTimeDecay {
		t.Errorf("event trigger = %q", repo.scoreEvents[0].Trigger)
	}

	// Re-running must not re-mark or re-emit.
	again := sched.RunDecayCheck(context.Background(), now, tutorials)
	if len(again) != 0 {
		t.Errorf("second decay check produced %d transitions, want 0", len(again))
	}
	if len(repo.scoreEvents) != 1 {
		t.Errorf("second decay check appended events, total %d", len(repo.scoreEvents))
	}
}

func TestRunDecayCheck_SkipsNonSolid(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Tracked but the score has since dropped below solid.
	sched.reviews["dropped"] = &State{
		TutorialID:     "dropped",
		NextReviewDate: now.AddDate(0, 0, -5),
		LastReviewDate: now.AddDate(0, 0, -6),
	}

	transitions := sched.RunDecayCheck(context.Background(), now, []*vault.Tutorial{
		tut("dropped", 5, now.AddDate(0, 0, -6)),
	})
	if len(transitions) != 0 {
		t.Errorf("expected no transitions for non-solid tutorial, got %d", len(transitions))
	}
}

func TestDueTutorials_MostOverdueFirst(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sched.reviews["slightly"] = &State{TutorialID: "slightly", NextReviewDate: now.AddDate(0, 0, -1)}
	sched.reviews["very"] = &State{TutorialID: "very", NextReviewDate: now.AddDate(0, 0, -10)}
	sched.reviews["future"] = &State{TutorialID: "future", NextReviewDate: now.AddDate(0, 0, 3)}
	sched.reviews["same-a"] = &State{TutorialID: "same-a", NextReviewDate: now.AddDate(0, 0, -1)}
	sched.reviews["learning-due"] = &State{TutorialID: "learning-due", NextReviewDate: now.AddDate(0, 0, -30)}

	last := now.AddDate(0, 0, -11)
	tutorials := []*vault.Tutorial{
		tut("slightly", 8, last),
		tut("very", 8, last),
		tut("future", 8, last),
		tut("same-a", 8, last),
		tut("learning-due", 3, last),
	}

	got := sched.DueTutorials(now, tutorials)
	want := []string{"very", "same-a", "slightly"}
	if len(got) != len(want) {
		t.Fatalf("DueTutorials() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DueTutorials()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApplyQuizResult_FirstSolidTracks(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	sched.ApplyQuizResult(scoring.Transition{
		TutorialID: "a",
		From:       scoring.StateUnread,
		To:         scoring.StateSolid,
		Trigger:    scoring.TriggerFirstQuiz,
	}, 8, now)

	if sched.Get("a") == nil {
		t.Fatal("expected tutorial tracked after first solid result")
	}
}

func TestApplyQuizResult_LearningResultNotTracked(t *testing.T) {
	sched := NewScheduler(nil, nil)
	sched.ApplyQuizResult(scoring.Transition{
		TutorialID: "a",
		From:       scoring.StateUnread,
		To:         scoring.StateLearning,
		Trigger:    scoring.TriggerFirstQuiz,
	}, 4, time.Now())

	if sched.Get("a") != nil {
		t.Error("learning tutorial must not be tracked")
	}
}

func TestApplyQuizResult_RecoveryResetsSchedule(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sched.reviews["a"] = &State{
		TutorialID:      "a",
		Stage:           4,
		ConsecutiveHits: 4,
		Rusty:           true,
		NextReviewDate:  now.AddDate(0, 0, -20),
		LastReviewDate:  now.AddDate(0, 0, -50),
	}

	sched.ApplyQuizResult(scoring.Transition{
		TutorialID: "a",
		From:       scoring.StateRusty,
		To:         scoring.StateSolid,
		Trigger:    scoring.TriggerReviewRecovery,
	}, 9, now)

	rs := sched.Get("a")
	if rs.Rusty {
		t.Error("recovery must clear the rusty flag")
	}
	if rs.Stage != 0 || rs.ConsecutiveHits != 0 {
		t.Errorf("recovery must restart the schedule: %+v", rs)
	}
	if !rs.NextReviewDate.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("NextReviewDate = %v, want next day", rs.NextReviewDate)
	}
}

func TestApplyQuizResult_TrackedSolidRecordsReview(t *testing.T) {
	sched := NewScheduler(nil, nil)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track("a", start)

	now := start.AddDate(0, 0, 1)
	sched.ApplyQuizResult(scoring.Transition{
		TutorialID: "a",
		From:       scoring.StateSolid,
		To:         scoring.StateSolid,
		Trigger:    scoring.TriggerQuizResult,
	}, 8, now)

	rs := sched.Get("a")
	if rs.Stage != 1 || rs.ConsecutiveHits != 1 {
		t.Errorf("expected review hit recorded: %+v", rs)
	}

	// A weak sitting counts as a miss even though the blended score
	// stays solid.
	sched.ApplyQuizResult(scoring.Transition{
		TutorialID: "a",
		From:       scoring.StateSolid,
		To:         scoring.StateSolid,
		Trigger:    scoring.TriggerQuizResult,
	}, 5, now.AddDate(0, 0, 3))

	if rs.ConsecutiveHits != 0 {
		t.Errorf("ConsecutiveHits = %d, want 0 after weak sitting", rs.ConsecutiveHits)
	}
}

func TestSnapshotData_RoundTrip(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track("a", now)
	sched.RecordReview("a", true, now.AddDate(0, 0, 1))
	sched.reviews["a"].Rusty = true

	data := sched.SnapshotData()
	reloaded := NewScheduler(&store.SnapshotData{Version: 1, Reviews: data}, nil)

	rs := reloaded.Get("a")
	if rs == nil {
		t.Fatal("expected state after round trip")
	}
	if rs.Stage != 1 || rs.ConsecutiveHits != 1 || !rs.Rusty {
		t.Errorf("round-tripped state wrong: %+v", rs)
	}
	if !rs.NextReviewDate.Equal(now.AddDate(0, 0, 1).AddDate(0, 0, 3)) {
		t.Errorf("NextReviewDate = %v", rs.NextReviewDate)
	}
}

func TestRusty_ReturnsOnlyRusty(t *testing.T) {
	sched := NewScheduler(nil, nil)
	now := time.Now()
	sched.Track("a", now)
	sched.Track("b", now)
	sched.reviews["b"].Rusty = true

	rusty := sched.Rusty()
	if rusty["a"] || !rusty["b"] {
		t.Errorf("Rusty() = %v, want only b", rusty)
	}
}
