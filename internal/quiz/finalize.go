package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

// DefaultKeepSnapshots is how many snapshots survive pruning.
const DefaultKeepSnapshots = 10

// Finalizer commits a finished session: quiz records and blended scores
// into the vault, score and session events into the event log, and the
// updated review schedule into a fresh snapshot.
type Finalizer struct {
	Vault     *vault.Vault
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Scheduler *review.Scheduler

	// Learner carries the profile summary from the loaded snapshot so
	// it survives into the one written here.
	Learner *store.LearnerSummaryData

	KeepSnapshots int
}

// Complete writes everything the session produced and returns the enriched
// summary. Tutorials the learner never reached are untouched. Persistence
// failures are joined into the returned error but never stop the remaining
// tutorials from being committed, so the summary is always usable.
func (f *Finalizer) Complete(ctx context.Context, s *State) (*Summary, error) {
	if s.Elapsed == 0 {
		End(s)
	}
	summary := BuildSummary(s)
	now := time.Now()
	var errs []error

	for i := range summary.Tutorials {
		outcome := &summary.Tutorials[i]
		if err := f.commitTutorial(ctx, s, outcome, now); err != nil {
			errs = append(errs, fmt.Errorf("committing %s: %w", outcome.TutorialID, err))
		}
	}

	if err := f.Events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       s.SessionID,
		Action:          "end",
		QuestionsServed: s.TotalQuestions,
		CorrectAnswers:  s.TotalCorrect,
		DurationSecs:    int(s.Elapsed.Seconds()),
		PlanSummary:     planSummary(s.Plan),
	}); err != nil {
		errs = append(errs, fmt.Errorf("recording session end: %w", err))
	}

	if err := f.saveSnapshot(ctx, now); err != nil {
		errs = append(errs, err)
	}

	return summary, errors.Join(errs...)
}

func (f *Finalizer) commitTutorial(ctx context.Context, s *State, outcome *TutorialOutcome, now time.Time) error {
	t, err := f.Vault.Get(outcome.TutorialID)
	if err != nil {
		return err
	}

	quizScore := scoring.FromAccuracy(outcome.Correct, outcome.Attempted)
	rusty := f.Scheduler.Rusty()[t.ID]
	tr := scoring.Apply(t, quizScore, rusty)

	outcome.QuizScore = quizScore
	if prev, ok := t.Score(); ok {
		outcome.ScoreBefore = &prev
	}
	outcome.ScoreAfter = tr.ToScore
	outcome.FromState = tr.From
	outcome.ToState = tr.To

	result := s.Results[t.ID]
	rec := vault.QuizRecord{
		Date:      vault.Today(),
		Score:     quizScore,
		Questions: result.Answers,
	}
	if _, _, err := f.Vault.RecordQuiz(t.ID, rec, tr.ToScore); err != nil {
		return err
	}

	if err := f.Events.AppendScoreEvent(ctx, store.ScoreEventData{
		TutorialID: tr.TutorialID,
		FromScore:  tr.FromScore,
		ToScore:    tr.ToScore,
		FromState:  string(tr.From),
		ToState:    string(tr.To),
		Trigger:    tr.Trigger,
		SessionID:  s.SessionID,
	}); err != nil {
		return err
	}

	f.Scheduler.ApplyQuizResult(tr, quizScore, now)
	return nil
}

func (f *Finalizer) saveSnapshot(ctx context.Context, now time.Time) error {
	seq, err := f.Events.CurrentSequence(ctx)
	if err != nil {
		return fmt.Errorf("reading event sequence: %w", err)
	}

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data: store.SnapshotData{
			Version: store.SnapshotVersion,
			Reviews: f.Scheduler.SnapshotData(),
			Learner: f.Learner,
		},
	}
	if err := f.Snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	keep := f.KeepSnapshots
	if keep <= 0 {
		keep = DefaultKeepSnapshots
	}
	if err := f.Snapshots.Prune(ctx, keep); err != nil {
		return fmt.Errorf("pruning snapshots: %w", err)
	}
	return nil
}

func planSummary(p *Plan) []store.PlanSlot {
	slots := make([]store.PlanSlot, len(p.Slots))
	for i, s := range p.Slots {
		slots[i] = store.PlanSlot{TutorialID: s.TutorialID, Category: string(s.Category)}
	}
	return slots
}
