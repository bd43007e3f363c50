package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/railz/internal/quiz"
	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/router"
	"github.com/abhisek/railz/internal/screen"
	"github.com/abhisek/railz/internal/screens/summary"
	"github.com/abhisek/railz/internal/stats"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/ui/components"
	"github.com/abhisek/railz/internal/ui/layout"
	"github.com/abhisek/railz/internal/vault"
)

const answerCharLimit = 200

// Grader judges free-text answers that failed the exact match. A nil
// grader puts the session in self-grade mode: the expected answer is
// revealed and the learner judges themselves.
type Grader interface {
	GradeAnswer(ctx context.Context, question, expected, given string) (*tutorgen.GradeResult, error)
}

// SessionScreen implements screen.Screen for a running quiz session.
type SessionScreen struct {
	vault     *vault.Vault
	events    store.EventRepo
	snapshots store.SnapshotRepo
	source    quiz.QuestionSource
	grader    Grader
	planner   *quiz.Planner

	// tutorialID pins the session to one tutorial; empty lets the
	// planner choose.
	tutorialID    string
	keepSnapshots int

	state        *quiz.State
	finalizer    *quiz.Finalizer
	input        components.TextInput
	selfGrade    bool
	pending      string
	errMsg       string
	spinnerFrame int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a new SessionScreen with injected dependencies.
func New(v *vault.Vault, events store.EventRepo, snapshots store.SnapshotRepo, source quiz.QuestionSource, grader Grader, planner *quiz.Planner, tutorialID string, keepSnapshots int) *SessionScreen {
	return &SessionScreen{
		vault:         v,
		events:        events,
		snapshots:     snapshots,
		source:        source,
		grader:        grader,
		planner:       planner,
		tutorialID:    tutorialID,
		keepSnapshots: keepSnapshots,
		input:         components.NewTextInput("Type your answer...", answerCharLimit),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
		spinnerTickCmd(),
	)
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.selfGrade {
		return []layout.KeyHint{
			{Key: "Y", Description: "I had it"},
			{Key: "N", Description: "I missed it"},
		}
	}
	switch s.state.Phase {
	case quiz.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case quiz.PhaseAsking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return s.renderWait(width, "Planning your session...")
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	switch s.state.Phase {
	case quiz.PhaseLoading:
		return s.renderSlotLoading(width, height)
	case quiz.PhaseGrading:
		if s.selfGrade {
			return s.renderSelfGrade(width, height)
		}
		return s.renderWait(width, "Checking your answer...")
	case quiz.PhaseFeedback:
		return s.renderFeedback(width, height)
	case quiz.PhaseSummary:
		return s.renderWait(width, "Saving session...")
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)

	case verdictMsg:
		return s.handleVerdict(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case spinnerTickMsg:
		return s.handleSpinnerTick()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case sessionDoneMsg:
		return s.handleSessionDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a question is on screen.
	if s.state != nil && s.state.Phase == quiz.PhaseAsking && !s.state.ShowingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initSession loads the vault and snapshot, runs the decay check, and
// builds the session plan.
func (s *SessionScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		tutorials, err := s.vault.List()
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		snap, err := s.snapshots.Latest(ctx)
		if err != nil {
			return sessionInitMsg{Err: err}
		}
		var snapData *store.SnapshotData
		var learner *store.LearnerSummaryData
		if snap != nil && snap.Data.Version == store.SnapshotVersion {
			snapData = &snap.Data
			learner = snap.Data.Learner
		}

		scheduler := review.NewScheduler(snapData, s.events)
		scheduler.Bootstrap(tutorials)
		scheduler.RunDecayCheck(ctx, now, tutorials)

		var plan *quiz.Plan
		if s.tutorialID != "" {
			plan, err = s.planner.PlanFor(s.tutorialID, now, tutorials, scheduler)
			if err != nil {
				return sessionInitMsg{Err: err}
			}
		} else {
			plan = s.planner.BuildPlan(now, tutorials, scheduler)
		}
		if len(plan.Slots) == 0 {
			return sessionInitMsg{Err: errors.New("no tutorials available to quiz")}
		}

		state := quiz.NewState(plan)

		planSummary := make([]store.PlanSlot, len(plan.Slots))
		for i, slot := range plan.Slots {
			planSummary[i] = store.PlanSlot{TutorialID: slot.TutorialID, Category: string(slot.Category)}
		}
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:   state.SessionID,
			Action:      "start",
			PlanSummary: planSummary,
		})

		days, _ := s.events.StudyDays(ctx)

		return sessionInitMsg{
			State: state,
			Finalizer: &quiz.Finalizer{
				Vault:         s.vault,
				Events:        s.events,
				Snapshots:     s.snapshots,
				Scheduler:     scheduler,
				Learner:       learner,
				KeepSnapshots: s.keepSnapshots,
			},
			Due:    len(scheduler.DueTutorials(now, tutorials)),
			Streak: stats.ComputeStreak(days, now).Current,
		}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.finalizer = msg.Finalizer
	return s, tea.Batch(
		s.fetchQuestions(),
		tickCmd(),
		func() tea.Msg { return screen.HeaderStatsMsg{Due: msg.Due, Streak: msg.Streak} },
	)
}

func (s *SessionScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}
	if msg.Err != nil {
		slog.Warn("skipping slot", "error", msg.Err)
		if quiz.SkipSlot(s.state) {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		return s, s.fetchQuestions()
	}

	s.state.SetQuestions(msg.Questions)
	s.input.Reset()
	return s, s.input.Init()
}

func (s *SessionScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase != quiz.PhaseGrading {
		return s, nil
	}
	if msg.Err != nil {
		slog.Warn("answer grading failed, falling back to self grade", "error", msg.Err)
		s.selfGrade = true
		return s, nil
	}
	s.applyVerdict(msg.Given, msg.Verdict)
	return s, nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == quiz.PhaseSummary {
		return s, nil
	}
	s.state.Elapsed = time.Since(s.state.StartTime)
	return s, tickCmd()
}

func (s *SessionScreen) handleSpinnerTick() (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, nil
	}
	s.spinnerFrame++
	return s, spinnerTickCmd()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, tea.Quit
	}
	quiz.End(s.state)
	return s, s.finalizeCmd()
}

func (s *SessionScreen) handleSessionDone(msg sessionDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("finalizing session", "error", msg.Err)
	}
	if msg.Summary == nil {
		return s, tea.Quit
	}
	// Swap in the summary so Esc cannot land back on a dead session.
	next := summary.New(msg.Summary)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state. Any key leaves.
	if s.errMsg != "" {
		return s, tea.Quit
	}

	if s.state == nil {
		return s, nil
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	if s.selfGrade {
		switch key {
		case "y", "Y":
			s.applyVerdict(s.pending, quiz.Verdict{Correct: true, GradedBy: quiz.GradedBySelf})
		case "n", "N":
			s.applyVerdict(s.pending, quiz.Verdict{Correct: false, GradedBy: quiz.GradedBySelf})
		case "esc":
			s.state.ShowingQuitConfirm = true
		}
		return s, nil
	}

	switch s.state.Phase {
	case quiz.PhaseFeedback:
		// Any key moves on.
		return s.advance()

	case quiz.PhaseAsking:
		switch key {
		case "esc":
			s.state.ShowingQuitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case quiz.PhaseLoading, quiz.PhaseGrading:
		if key == "esc" {
			s.state.ShowingQuitConfirm = true
		}
		return s, nil
	}

	return s, nil
}

// submitAnswer grades the typed answer: exact match immediately, otherwise
// through the grader, otherwise by self-judgment.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion()
	if q == nil {
		return s, nil
	}
	given := strings.TrimSpace(s.input.Value())
	if given == "" {
		return s, nil
	}

	if quiz.ExactMatch(given, q.Expected) {
		s.applyVerdict(given, quiz.Verdict{Correct: true, GradedBy: quiz.GradedByExact})
		return s, nil
	}

	s.pending = given
	quiz.BeginGrading(s.state)
	if s.grader == nil {
		s.selfGrade = true
		return s, nil
	}
	return s, s.gradeCmd(*q, given)
}

// applyVerdict records the graded answer and shows feedback.
func (s *SessionScreen) applyVerdict(given string, v quiz.Verdict) {
	slot := s.state.CurrentSlot()
	q := s.state.CurrentQuestion()
	if slot == nil || q == nil {
		return
	}

	quiz.HandleVerdict(s.state, given, v)
	s.input.Submit(v.Correct)
	s.selfGrade = false
	s.pending = ""

	_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:      s.state.SessionID,
		TutorialID:     slot.TutorialID,
		Category:       string(slot.Category),
		QuestionText:   q.Prompt,
		ExpectedAnswer: q.Expected,
		LearnerAnswer:  given,
		Correct:        v.Correct,
		GradedBy:       v.GradedBy,
	})
}

// advance leaves the feedback phase for the next question, slot, or the
// session end.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if quiz.Advance(s.state) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.input.Reset()
	if s.state.Phase == quiz.PhaseLoading {
		return s, s.fetchQuestions()
	}
	return s, s.input.Init()
}

// fetchQuestions pulls the question batch for the current slot.
func (s *SessionScreen) fetchQuestions() tea.Cmd {
	state := s.state
	return func() tea.Msg {
		slot := state.CurrentSlot()
		if slot == nil {
			return sessionEndMsg{}
		}
		t, err := s.vault.Get(slot.TutorialID)
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		qs, err := s.source.Questions(context.Background(), t, state.Plan.QuestionsPerTutorial, state.Asked[slot.TutorialID])
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		return questionsReadyMsg{Questions: qs}
	}
}

// gradeCmd judges the answer asynchronously.
func (s *SessionScreen) gradeCmd(q tutorgen.Question, given string) tea.Cmd {
	grader := s.grader
	return func() tea.Msg {
		res, err := grader.GradeAnswer(context.Background(), q.Prompt, q.Expected, given)
		if err != nil {
			return verdictMsg{Given: given, Err: err}
		}
		return verdictMsg{
			Given: given,
			Verdict: quiz.Verdict{
				Correct:  res.Correct,
				Feedback: res.Feedback,
				GradedBy: quiz.GradedByLLM,
			},
		}
	}
}

// finalizeCmd commits the session and builds the summary.
func (s *SessionScreen) finalizeCmd() tea.Cmd {
	state := s.state
	fin := s.finalizer
	return func() tea.Msg {
		sum, err := fin.Complete(context.Background(), state)
		return sessionDoneMsg{Summary: sum, Err: err}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
