// Package stats aggregates vault and event-log data into the numbers the
// stats command renders. Everything here is pure; callers fetch the inputs.
package stats

import (
	"time"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

// Streak describes consecutive study days.
type Streak struct {
	Current int
	Longest int
}

// ComputeStreak derives streaks from distinct study days, newest first.
// The current streak survives until a full calendar day is skipped, so
// studying yesterday but not yet today still counts.
func ComputeStreak(days []time.Time, now time.Time) Streak {
	if len(days) == 0 {
		return Streak{}
	}

	today := midnight(now)
	var s Streak

	if d := int(today.Sub(midnight(days[0])).Hours() / 24); d <= 1 {
		s.Current = 1
		for i := 1; i < len(days); i++ {
			gap := midnight(days[i-1]).Sub(midnight(days[i])).Hours() / 24
			if int(gap) != 1 {
				break
			}
			s.Current++
		}
	}

	run := 1
	s.Longest = 1
	for i := 1; i < len(days); i++ {
		gap := midnight(days[i-1]).Sub(midnight(days[i])).Hours() / 24
		if int(gap) == 1 {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}
	return s
}

// Overview is the headline block of the stats command.
type Overview struct {
	TotalTutorials int
	Unread         int
	Learning       int
	Solid          int
	Rusty          int
	AvgScore       float64
	Due            int

	Sessions       int
	TotalQuestions int
	TotalCorrect   int

	Streak Streak
}

// Accuracy returns the all-time answer accuracy across sessions.
func (o *Overview) Accuracy() float64 {
	if o.TotalQuestions == 0 {
		return 0
	}
	return float64(o.TotalCorrect) / float64(o.TotalQuestions)
}

// BuildOverview folds the vault, the review schedule, and session history
// into one overview.
func BuildOverview(tutorials []*vault.Tutorial, sched *review.Scheduler, sessions []store.SessionSummaryRecord, days []time.Time, now time.Time) *Overview {
	o := &Overview{TotalTutorials: len(tutorials)}

	rusty := sched.Rusty()
	scoreSum := 0
	scored := 0
	for _, t := range tutorials {
		score, ok := t.Score()
		switch scoring.StateFor(score, ok, rusty[t.ID]) {
		case scoring.StateUnread:
			o.Unread++
		case scoring.StateLearning:
			o.Learning++
		case scoring.StateSolid:
			o.Solid++
		case scoring.StateRusty:
			o.Rusty++
		}
		if ok {
			scoreSum += score
			scored++
		}
	}
	if scored > 0 {
		o.AvgScore = float64(scoreSum) / float64(scored)
	}
	o.Due = len(sched.DueTutorials(now, tutorials))

	o.Sessions = len(sessions)
	for _, s := range sessions {
		o.TotalQuestions += s.QuestionsServed
		o.TotalCorrect += s.CorrectAnswers
	}

	o.Streak = ComputeStreak(days, now)
	return o
}

// TutorialRow is one line of the per-tutorial stats table.
type TutorialRow struct {
	ID       string
	Title    string
	Score    int // -1 when unscored
	State    scoring.State
	Sittings int
	Accuracy float64
	Next     *time.Time // next review, when tracked
}

// TutorialRows builds the table in vault order (chronological by ID).
func TutorialRows(tutorials []*vault.Tutorial, sched *review.Scheduler) []TutorialRow {
	rusty := sched.Rusty()
	rows := make([]TutorialRow, 0, len(tutorials))
	for _, t := range tutorials {
		score, ok := t.Score()
		row := TutorialRow{
			ID:       t.ID,
			Title:    t.Title(),
			Score:    -1,
			State:    scoring.StateFor(score, ok, rusty[t.ID]),
			Sittings: len(t.Quizzes),
		}
		if ok {
			row.Score = score
		}

		attempted, correct := 0, 0
		for _, rec := range t.Quizzes {
			attempted += len(rec.Questions)
			for _, q := range rec.Questions {
				if q.Correct {
					correct++
				}
			}
		}
		if attempted > 0 {
			row.Accuracy = float64(correct) / float64(attempted)
		}

		if rs := sched.Get(t.ID); rs != nil {
			next := rs.NextReviewDate
			row.Next = &next
		}
		rows = append(rows, row)
	}
	return rows
}

func midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
