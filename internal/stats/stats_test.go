package stats

import (
	"testing"
	"time"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

func day(now time.Time, daysAgo int) time.Time {
	d := now.AddDate(0, 0, -daysAgo)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.Local)

	tests := []struct {
		name        string
		daysAgo     []int // newest first
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 0, 0},
		{"studied today only", []int{0}, 1, 1},
		{"three day run ending today", []int{0, 1, 2}, 3, 3},
		{"run ending yesterday still counts", []int{1, 2, 3}, 3, 3},
		{"gap two days ago breaks current", []int{0, 1, 3, 4, 5}, 2, 3},
		{"stale history has no current streak", []int{5, 6, 7, 8}, 0, 4},
		{"single gaps everywhere", []int{0, 2, 4}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var days []time.Time
			for _, ago := range tt.daysAgo {
				days = append(days, day(now, ago))
			}
			got := ComputeStreak(days, now)
			if got.Current != tt.wantCurrent || got.Longest != tt.wantLongest {
				t.Errorf("streak = %+v, want current %d longest %d",
					got, tt.wantCurrent, tt.wantLongest)
			}
		})
	}
}

func statsTutorial(id string, score int, created time.Time) *vault.Tutorial {
	t := &vault.Tutorial{ID: id}
	t.Created = vault.DateOf(created)
	if score >= 0 {
		s := score
		t.UnderstandingScore = &s
	}
	return t
}

func TestBuildOverview(t *testing.T) {
	now := time.Now()
	tutorials := []*vault.Tutorial{
		statsTutorial("05-01-2026-rails-boot-process", 8, now.AddDate(0, 0, -30)),
		statsTutorial("12-01-2026-activerecord-callbacks", 4, now.AddDate(0, 0, -10)),
		statsTutorial("20-01-2026-turbo-streams", -1, now.AddDate(0, 0, -5)),
	}
	sched := review.NewScheduler(nil, nil)
	sched.Bootstrap(tutorials)

	sessions := []store.SessionSummaryRecord{
		{SessionID: "a", QuestionsServed: 10, CorrectAnswers: 7},
		{SessionID: "b", QuestionsServed: 5, CorrectAnswers: 5},
	}
	days := []time.Time{day(now, 0), day(now, 1)}

	o := BuildOverview(tutorials, sched, sessions, days, now)

	if o.TotalTutorials != 3 || o.Solid != 1 || o.Learning != 1 || o.Unread != 1 {
		t.Errorf("state counts = %+v", o)
	}
	if o.AvgScore != 6 {
		t.Errorf("avg score = %v, want 6", o.AvgScore)
	}
	if o.Due != 1 {
		t.Errorf("due = %d, want the overdue solid tutorial", o.Due)
	}
	if o.Sessions != 2 || o.TotalQuestions != 15 || o.TotalCorrect != 12 {
		t.Errorf("session totals = %+v", o)
	}
	if got := o.Accuracy(); got != 0.8 {
		t.Errorf("accuracy = %v, want 0.8", got)
	}
	if o.Streak.Current != 2 {
		t.Errorf("current streak = %d, want 2", o.Streak.Current)
	}
}

func TestTutorialRows(t *testing.T) {
	now := time.Now()
	quizzed := statsTutorial("05-01-2026-rails-boot-process", 8, now.AddDate(0, 0, -3))
	quizzed.Quizzes = []vault.QuizRecord{
		{
			Date:  vault.Today().AddDays(-2),
			Score: 8,
			Questions: []vault.QuizQuestion{
				{Prompt: "q1", Correct: true},
				{Prompt: "q2", Correct: true},
				{Prompt: "q3", Correct: false},
				{Prompt: "q4", Correct: true},
			},
		},
	}
	fresh := statsTutorial("20-01-2026-turbo-streams", -1, now)

	sched := review.NewScheduler(nil, nil)
	sched.Bootstrap([]*vault.Tutorial{quizzed, fresh})

	rows := TutorialRows([]*vault.Tutorial{quizzed, fresh}, sched)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Score != 8 || rows[0].Sittings != 1 || rows[0].Accuracy != 0.75 {
		t.Errorf("quizzed row = %+v", rows[0])
	}
	if rows[0].Next == nil {
		t.Error("tracked tutorial missing next review date")
	}
	if rows[1].Score != -1 || rows[1].Next != nil {
		t.Errorf("fresh row = %+v", rows[1])
	}
}
