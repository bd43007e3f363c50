package review

import (
	"context"
	"sort"
	"time"

	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

// Scheduler manages spaced repetition review scheduling for solid
// tutorials. State is loaded from the latest snapshot and bootstrapped
// from front matter for tutorials the snapshot has never seen.
type Scheduler struct {
	reviews map[string]*State
	events  store.EventRepo
}

// NewScheduler creates a scheduler, loading review state from the snapshot.
func NewScheduler(snap *store.SnapshotData, events store.EventRepo) *Scheduler {
	s := &Scheduler{
		reviews: make(map[string]*State),
		events:  events,
	}
	if snap == nil || snap.Reviews == nil {
		return s
	}

	for id, rd := range snap.Reviews {
		next, err := time.Parse(time.RFC3339, rd.NextReviewDate)
		if err != nil {
			continue
		}
		last, err := time.Parse(time.RFC3339, rd.LastReviewDate)
		if err != nil {
			continue
		}
		s.reviews[id] = &State{
			TutorialID:      rd.TutorialID,
			Stage:           rd.Stage,
			NextReviewDate:  next,
			ConsecutiveHits: rd.ConsecutiveHits,
			Graduated:       rd.Graduated,
			Rusty:           rd.Rusty,
			LastReviewDate:  last,
		}
	}
	return s
}

// Bootstrap derives review state from front matter for solid tutorials
// the scheduler is not yet tracking. It never overwrites snapshot state,
// so quizzing outside a session or hand-editing a score picks up a
// schedule on the next run.
func (s *Scheduler) Bootstrap(tutorials []*vault.Tutorial) {
	for _, t := range tutorials {
		score, scored := t.Score()
		if !scored || score < scoring.SolidThreshold {
			continue
		}
		if _, ok := s.reviews[t.ID]; ok {
			continue
		}

		last := t.Created.Time
		if t.LastQuizzed != nil {
			last = t.LastQuizzed.Time
		}
		s.reviews[t.ID] = &State{
			TutorialID:     t.ID,
			Stage:          0,
			NextReviewDate: last.AddDate(0, 0, BaseIntervals[0]),
			LastReviewDate: last,
		}
	}
}

// RunDecayCheck scans tracked tutorials and marks overdue ones rusty.
// Called at session start. Returns the transitions that occurred, after
// recording them as score events.
func (s *Scheduler) RunDecayCheck(ctx context.Context, now time.Time, tutorials []*vault.Tutorial) []scoring.Transition {
	byID := make(map[string]*vault.Tutorial, len(tutorials))
	for _, t := range tutorials {
		byID[t.ID] = t
	}

	var transitions []scoring.Transition
	for _, id := range s.sortedIDs() {
		rs := s.reviews[id]
		if rs.Rusty {
			continue
		}
		t := byID[id]
		if t == nil {
			continue
		}
		score, scored := t.Score()
		if !scored || score < scoring.SolidThreshold {
			continue
		}
		if !rs.PastGrace(now) {
			continue
		}

		rs.Rusty = true
		tr := scoring.Transition{
			TutorialID: id,
			From:       scoring.StateSolid,
			To:         scoring.StateRusty,
			FromScore:  score,
			ToScore:    score,
			Trigger:    scoring.TriggerTimeDecay,
		}
		transitions = append(transitions, tr)

		if s.events != nil {
			_ = s.events.AppendScoreEvent(ctx, store.ScoreEventData{
				TutorialID: tr.TutorialID,
				FromScore:  tr.FromScore,
				ToScore:    tr.ToScore,
				FromState:  string(tr.From),
				ToState:    string(tr.To),
				Trigger:    tr.Trigger,
			})
		}
	}
	return transitions
}

// DueTutorials returns solid tutorials due for review, sorted by most
// overdue first. Rusty tutorials are due by definition and sort to the
// front. Used by the session planner for review slot selection.
func (s *Scheduler) DueTutorials(now time.Time, tutorials []*vault.Tutorial) []string {
	byID := make(map[string]*vault.Tutorial, len(tutorials))
	for _, t := range tutorials {
		byID[t.ID] = t
	}

	type dueTutorial struct {
		id      string
		overdue float64
	}
	var due []dueTutorial

	for id, rs := range s.reviews {
		t := byID[id]
		if t == nil {
			continue
		}
		score, scored := t.Score()
		if !scored || score < scoring.SolidThreshold {
			continue
		}
		if rs.IsDue(now) {
			due = append(due, dueTutorial{id: id, overdue: rs.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// RecordReview updates the review schedule after a review sitting. A
// correct review advances the stage and pushes the next date out; a miss
// resets the hit streak and leaves the tutorial due.
func (s *Scheduler) RecordReview(tutorialID string, correct bool, now time.Time) {
	rs := s.reviews[tutorialID]
	if rs == nil {
		return
	}

	rs.LastReviewDate = now

	if correct {
		rs.ConsecutiveHits++

		if !rs.Graduated {
			rs.Stage++
			if rs.ConsecutiveHits >= GraduationStage {
				rs.Graduated = true
			}
		}

		rs.NextReviewDate = now.AddDate(0, 0, rs.CurrentIntervalDays())
	} else {
		rs.ConsecutiveHits = 0
	}
}

// Track initializes review state for a tutorial that just turned solid.
func (s *Scheduler) Track(tutorialID string, now time.Time) {
	s.reviews[tutorialID] = &State{
		TutorialID:     tutorialID,
		Stage:          0,
		NextReviewDate: now.AddDate(0, 0, BaseIntervals[0]),
		LastReviewDate: now,
	}
}

// Retrack resets review state after recovery (rusty back to solid).
func (s *Scheduler) Retrack(tutorialID string, now time.Time) {
	s.Track(tutorialID, now)
}

// ApplyQuizResult advances the schedule after a graded sitting. The
// caller has already run scoring.Apply; quizScore is the sitting's raw
// 0-10 result, which decides whether a review counts as a hit.
func (s *Scheduler) ApplyQuizResult(tr scoring.Transition, quizScore int, now time.Time) {
	switch {
	case tr.Trigger == scoring.TriggerReviewRecovery:
		s.Retrack(tr.TutorialID, now)
	case tr.To == scoring.StateSolid && s.reviews[tr.TutorialID] == nil:
		s.Track(tr.TutorialID, now)
	case s.reviews[tr.TutorialID] != nil:
		s.RecordReview(tr.TutorialID, quizScore >= scoring.SolidThreshold, now)
	}
}

// Get returns the review state for a tutorial, or nil if not tracked.
func (s *Scheduler) Get(tutorialID string) *State {
	return s.reviews[tutorialID]
}

// All returns all review states (for stats and list views).
func (s *Scheduler) All() map[string]*State {
	result := make(map[string]*State, len(s.reviews))
	for id, rs := range s.reviews {
		result[id] = rs
	}
	return result
}

// Rusty returns the set of tutorials currently marked rusty.
func (s *Scheduler) Rusty() map[string]bool {
	rusty := make(map[string]bool)
	for id, rs := range s.reviews {
		if rs.Rusty {
			rusty[id] = true
		}
	}
	return rusty
}

// SnapshotData exports the current review state for persistence.
func (s *Scheduler) SnapshotData() map[string]*store.ReviewStateData {
	data := make(map[string]*store.ReviewStateData, len(s.reviews))
	for id, rs := range s.reviews {
		data[id] = &store.ReviewStateData{
			TutorialID:      rs.TutorialID,
			Stage:           rs.Stage,
			NextReviewDate:  rs.NextReviewDate.Format(time.RFC3339),
			ConsecutiveHits: rs.ConsecutiveHits,
			Graduated:       rs.Graduated,
			Rusty:           rs.Rusty,
			LastReviewDate:  rs.LastReviewDate.Format(time.RFC3339),
		}
	}
	return data
}

func (s *Scheduler) sortedIDs() []string {
	ids := make([]string, 0, len(s.reviews))
	for id := range s.reviews {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
