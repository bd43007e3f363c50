package session

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/railz/internal/quiz"
	"github.com/abhisek/railz/internal/router"
	"github.com/abhisek/railz/internal/screen"
	"github.com/abhisek/railz/internal/screens/summary"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

// stubSource implements quiz.QuestionSource for testing.
type stubSource struct {
	questions []tutorgen.Question
	err       error
}

func (s *stubSource) Questions(_ context.Context, _ *vault.Tutorial, n int, _ []string) ([]tutorgen.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	qs := s.questions
	if len(qs) > n {
		qs = qs[:n]
	}
	return qs, nil
}

// stubGrader implements Grader for testing.
type stubGrader struct {
	result *tutorgen.GradeResult
	err    error
}

func (g *stubGrader) GradeAnswer(_ context.Context, _, _, _ string) (*tutorgen.GradeResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	scoreEvents   []store.ScoreEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) CurrentSequence(_ context.Context) (int64, error) {
	return int64(len(m.sessionEvents) + len(m.answerEvents) + len(m.scoreEvents)), nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
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

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, grader Grader) (*SessionScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	v, err := vault.Init(t.TempDir())
	if err != nil {
		t.Fatalf("init vault: %v", err)
	}
	source := &stubSource{
		questions: []tutorgen.Question{
			{Prompt: "What does config.ru hand to Rack?", Expected: "the Rails application object"},
			{Prompt: "Which file defines the boot constant?", Expected: "config/boot.rb"},
		},
	}
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := New(v, events, snaps, source, grader, quiz.NewPlanner(2, 2), "", 0)
	return s, events, snaps
}

func twoSlotPlan() *quiz.Plan {
	return &quiz.Plan{
		Slots: []quiz.Slot{
			{TutorialID: "05-01-2026-rails-boot-process", Title: "Rails Boot Process", Category: quiz.CategoryReview},
			{TutorialID: "06-01-2026-activerecord-callbacks", Title: "ActiveRecord Callbacks", Category: quiz.CategoryFrontier},
		},
		QuestionsPerTutorial: 2,
	}
}

func setupActiveSession(s *SessionScreen) {
	s.state = quiz.NewState(twoSlotPlan())
	s.state.SetQuestions([]tutorgen.Question{
		{Prompt: "What does config.ru hand to Rack?", Expected: "the Rails application object"},
		{Prompt: "Which file defines the boot constant?", Expected: "config/boot.rb"},
	})
}

func TestSessionScreen_Title(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestSessionScreen_View_Error(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	s.errMsg = "test error"
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	setupActiveSession(s)

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	setupActiveSession(s)

	// Press Esc then Y.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected quit confirmation to trigger the end flow")
	}
}

func TestSessionScreen_ExactMatchAnswer(t *testing.T) {
	s, events, _ := testScreen(t, nil)
	setupActiveSession(s)

	s.input.Model.SetValue("The Rails application object.")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseFeedback {
		t.Fatalf("Phase = %v, want PhaseFeedback", ss.state.Phase)
	}
	if v := ss.state.LastVerdict; v == nil || !v.Correct || v.GradedBy != quiz.GradedByExact {
		t.Errorf("LastVerdict = %+v, want correct exact verdict", v)
	}
	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	if events.answerEvents[0].GradedBy != quiz.GradedByExact {
		t.Errorf("GradedBy = %q, want %q", events.answerEvents[0].GradedBy, quiz.GradedByExact)
	}
}

func TestSessionScreen_SelfGradeFlow(t *testing.T) {
	s, events, _ := testScreen(t, nil)
	setupActiveSession(s)

	s.input.Model.SetValue("something about middleware")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseGrading || !ss.selfGrade {
		t.Fatalf("expected self-grade prompt, got phase %v selfGrade %v", ss.state.Phase, ss.selfGrade)
	}

	scr, _ = ss.Update(keyPress('y'))
	ss = scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseFeedback {
		t.Fatalf("Phase = %v, want PhaseFeedback", ss.state.Phase)
	}
	if !ss.state.LastVerdict.Correct {
		t.Error("expected self-graded answer to count as correct")
	}
	if events.answerEvents[0].GradedBy != quiz.GradedBySelf {
		t.Errorf("GradedBy = %q, want %q", events.answerEvents[0].GradedBy, quiz.GradedBySelf)
	}
}

func TestSessionScreen_LLMGradeVerdict(t *testing.T) {
	g := &stubGrader{result: &tutorgen.GradeResult{Correct: true, Feedback: "Right idea: config.ru hands Rack the app."}}
	s, events, _ := testScreen(t, g)
	setupActiveSession(s)

	s.input.Model.SetValue("rack gets the app instance")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseGrading {
		t.Fatalf("Phase = %v, want PhaseGrading", ss.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a grading command")
	}

	scr, _ = ss.Update(cmd())
	ss = scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseFeedback {
		t.Fatalf("Phase = %v, want PhaseFeedback", ss.state.Phase)
	}
	if v := ss.state.LastVerdict; v == nil || v.GradedBy != quiz.GradedByLLM || v.Feedback == "" {
		t.Errorf("LastVerdict = %+v, want LLM verdict with feedback", v)
	}
	if events.answerEvents[0].GradedBy != quiz.GradedByLLM {
		t.Errorf("GradedBy = %q, want %q", events.answerEvents[0].GradedBy, quiz.GradedByLLM)
	}
}

func TestSessionScreen_GradeFailureFallsBackToSelf(t *testing.T) {
	g := &stubGrader{err: errors.New("provider unavailable")}
	s, _, _ := testScreen(t, g)
	setupActiveSession(s)

	s.input.Model.SetValue("rack gets the app instance")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	scr, _ = ss.Update(cmd())
	ss = scr.(*SessionScreen)

	if !ss.selfGrade {
		t.Error("expected fallback to self grade after grading error")
	}
}

func TestSessionScreen_FeedbackAdvances(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	setupActiveSession(s)
	quiz.HandleVerdict(s.state, "answer", quiz.Verdict{Correct: true, GradedBy: quiz.GradedByExact})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(' '))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseAsking {
		t.Errorf("Phase = %v, want PhaseAsking", ss.state.Phase)
	}
	if ss.state.QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1", ss.state.QuestionIndex)
	}
}

func TestSessionScreen_QuestionsReady(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	s.state = quiz.NewState(twoSlotPlan())

	var scr screen.Screen = s
	scr, _ = scr.Update(questionsReadyMsg{Questions: []tutorgen.Question{
		{Prompt: "What aborts a callback chain?", Expected: "throw :abort"},
	}})
	ss := scr.(*SessionScreen)

	if ss.state.Phase != quiz.PhaseAsking {
		t.Errorf("Phase = %v, want PhaseAsking", ss.state.Phase)
	}
	if got := ss.state.Asked["05-01-2026-rails-boot-process"]; len(got) != 1 {
		t.Errorf("Asked prompts = %d, want 1", len(got))
	}
}

func TestSessionScreen_QuestionFetchErrorSkipsSlot(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	s.state = quiz.NewState(twoSlotPlan())

	var scr screen.Screen = s
	scr, cmd := scr.Update(questionsReadyMsg{Err: errors.New("no archived questions")})
	ss := scr.(*SessionScreen)

	if ss.state.SlotIndex != 1 {
		t.Errorf("SlotIndex = %d, want 1", ss.state.SlotIndex)
	}
	if cmd == nil {
		t.Error("expected a fetch command for the next slot")
	}
}

func TestSessionScreen_DoneReplacesWithSummary(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	setupActiveSession(s)

	var scr screen.Screen = s
	_, cmd := scr.Update(sessionDoneMsg{Summary: &quiz.Summary{SessionID: "test"}})
	if cmd == nil {
		t.Fatal("expected a command after session done")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := rep.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", rep.Screen)
	}
}

func TestSessionScreen_TypingReachesInput(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	setupActiveSession(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('r'))
	ss := scr.(*SessionScreen)

	if got := ss.input.Value(); got != "r" {
		t.Errorf("input value = %q, want %q", got, "r")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _, _ := testScreen(t, nil)
	if hints := s.KeyHints(); hints != nil {
		t.Errorf("expected no hints before init, got %d", len(hints))
	}

	setupActiveSession(s)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("asking hints = %d, want 2", len(hints))
	}

	s.state.ShowingQuitConfirm = true
	hints = s.KeyHints()
	if len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("quit confirm hints = %+v", hints)
	}
}
