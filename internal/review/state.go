package review

import "time"

// State holds the spaced repetition state for a single tutorial.
type State struct {
	TutorialID      string    `json:"tutorial_id"`
	Stage           int       `json:"stage"`
	NextReviewDate  time.Time `json:"next_review_date"`
	ConsecutiveHits int       `json:"consecutive_hits"`
	Graduated       bool      `json:"graduated"`
	Rusty           bool      `json:"rusty"`
	LastReviewDate  time.Time `json:"last_review_date"`
}

// IsDue returns true if the tutorial is due for review (at or past the
// review date).
func (rs *State) IsDue(now time.Time) bool {
	return !now.Before(rs.NextReviewDate)
}

// OverdueDays returns how many days past due the tutorial is. Returns 0
// if not yet due.
func (rs *State) OverdueDays(now time.Time) float64 {
	if now.Before(rs.NextReviewDate) {
		return 0
	}
	return now.Sub(rs.NextReviewDate).Hours() / 24.0
}

// PastGrace returns true if the tutorial has exceeded its grace period
// (half the current interval past the due date) and should be marked
// rusty.
func (rs *State) PastGrace(now time.Time) bool {
	if !rs.IsDue(now) {
		return false
	}
	interval := rs.CurrentIntervalDays()
	graceHours := float64(interval) * 0.5 * 24.0
	threshold := rs.NextReviewDate.Add(time.Duration(graceHours * float64(time.Hour)))
	return now.After(threshold)
}

// CurrentIntervalDays returns the current interval in days.
func (rs *State) CurrentIntervalDays() int {
	if rs.Graduated {
		return GraduatedIntervalDays
	}
	if rs.Stage >= len(BaseIntervals) {
		return BaseIntervals[len(BaseIntervals)-1]
	}
	return BaseIntervals[rs.Stage]
}

// Status describes a tutorial's review status for display.
type Status string

const (
	StatusNotDue    Status = "not_due"
	StatusDue       Status = "due"
	StatusOverdue   Status = "overdue"
	StatusGraduated Status = "graduated"
)

// Status returns the review status for UI display.
func (rs *State) Status(now time.Time) Status {
	if rs.Graduated && !rs.IsDue(now) {
		return StatusGraduated
	}
	if rs.Rusty || rs.PastGrace(now) {
		return StatusOverdue
	}
	if rs.IsDue(now) {
		return StatusDue
	}
	if rs.Graduated {
		return StatusGraduated
	}
	return StatusNotDue
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (rs *State) DaysUntilReview(now time.Time) int {
	if rs.IsDue(now) {
		return 0
	}
	return int(rs.NextReviewDate.Sub(now).Hours()/24.0) + 1
}
