package review

import (
	"testing"
	"time"
)

func TestIsDue_BeforeDate(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := &State{NextReviewDate: now.Add(24 * time.Hour)}
	if rs.IsDue(now) {
		t.Error("expected not due before review date")
	}
}

func TestIsDue_OnDate(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := &State{NextReviewDate: now}
	if !rs.IsDue(now) {
		t.Error("expected due on review date")
	}
}

func TestIsDue_AfterDate(t *testing.T) {
	now := time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC)
	rs := &State{NextReviewDate: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	if !rs.IsDue(now) {
		t.Error("expected due after review date")
	}
}

func TestOverdueDays_NotDue(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := &State{NextReviewDate: now.Add(48 * time.Hour)}
	if got := rs.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays() = %f, want 0", got)
	}
}

func TestOverdueDays_ThreeDaysOverdue(t *testing.T) {
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(3 * 24 * time.Hour)
	rs := &State{NextReviewDate: reviewDate}
	got := rs.OverdueDays(now)
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
}

func TestPastGrace_WithinGrace(t *testing.T) {
	// Stage 2 (7-day interval), 2 days overdue -> grace is 3.5 days -> fine
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(2 * 24 * time.Hour)
	rs := &State{Stage: 2, NextReviewDate: reviewDate}
	if rs.PastGrace(now) {
		t.Error("expected within grace period")
	}
}

func TestPastGrace_PastGrace(t *testing.T) {
	// Stage 2 (7-day interval), 4 days overdue -> grace is 3.5 days -> rusty
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(4 * 24 * time.Hour)
	rs := &State{Stage: 2, NextReviewDate: reviewDate}
	if !rs.PastGrace(now) {
		t.Error("expected past grace period")
	}
}

func TestPastGrace_Stage0(t *testing.T) {
	// Stage 0 (1-day interval), 1 day overdue -> grace is 0.5 days -> rusty
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(1 * 24 * time.Hour)
	rs := &State{Stage: 0, NextReviewDate: reviewDate}
	if !rs.PastGrace(now) {
		t.Error("expected past grace for stage 0 after 1 day overdue")
	}
}

func TestPastGrace_Graduated(t *testing.T) {
	// Graduated (90-day interval), 30 days overdue -> grace is 45 days -> fine
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(30 * 24 * time.Hour)
	rs := &State{Stage: 6, Graduated: true, NextReviewDate: reviewDate}
	if rs.PastGrace(now) {
		t.Error("expected graduated tutorial within 45-day grace")
	}

	now = reviewDate.Add(50 * 24 * time.Hour)
	if !rs.PastGrace(now) {
		t.Error("expected graduated tutorial past 45-day grace")
	}
}

func TestCurrentIntervalDays(t *testing.T) {
	tests := []struct {
		name string
		rs   State
		want int
	}{
		{"stage 0", State{Stage: 0}, 1},
		{"stage 3", State{Stage: 3}, 14},
		{"stage beyond table", State{Stage: 9}, 60},
		{"graduated", State{Stage: 6, Graduated: true}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rs.CurrentIntervalDays(); got != tt.want {
				t.Errorf("CurrentIntervalDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatus_NotDue(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := &State{Stage: 2, NextReviewDate: now.Add(5 * 24 * time.Hour)}
	if got := rs.Status(now); got != StatusNotDue {
		t.Errorf("Status() = %q, want %q", got, StatusNotDue)
	}
}

func TestStatus_Due(t *testing.T) {
	// Past review date, within grace period
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(1 * 24 * time.Hour) // 1 day overdue, stage 2 grace is 3.5 days
	rs := &State{Stage: 2, NextReviewDate: reviewDate}
	if got := rs.Status(now); got != StatusDue {
		t.Errorf("Status() = %q, want %q", got, StatusDue)
	}
}

func TestStatus_Overdue(t *testing.T) {
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(5 * 24 * time.Hour) // 5 days overdue, stage 2 grace is 3.5 days
	rs := &State{Stage: 2, NextReviewDate: reviewDate}
	if got := rs.Status(now); got != StatusOverdue {
		t.Errorf("Status() = %q, want %q", got, StatusOverdue)
	}
}

func TestStatus_RustyFlagForcesOverdue(t *testing.T) {
	// A decay check already marked it rusty; status reflects that even
	// though the clock alone would only say "due".
	reviewDate := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(1 * 24 * time.Hour)
	rs := &State{Stage: 2, NextReviewDate: reviewDate, Rusty: true}
	if got := rs.Status(now); got != StatusOverdue {
		t.Errorf("Status() = %q, want %q", got, StatusOverdue)
	}
}

func TestStatus_Graduated(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := &State{Stage: 6, Graduated: true, NextReviewDate: now.Add(30 * 24 * time.Hour)}
	if got := rs.Status(now); got != StatusGraduated {
		t.Errorf("Status() = %q, want %q", got, StatusGraduated)
	}
}

func TestDaysUntilReview(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	// 4.5 days in the future -> int(4.5) + 1 = 5
	rs := &State{NextReviewDate: now.Add(108 * time.Hour)}
	if got := rs.DaysUntilReview(now); got != 5 {
		t.Errorf("DaysUntilReview() = %d, want 5", got)
	}

	rs = &State{NextReviewDate: now.Add(-24 * time.Hour)}
	if got := rs.DaysUntilReview(now); got != 0 {
		t.Errorf("DaysUntilReview() = %d, want 0 when due", got)
	}
}

func TestSetBaseIntervals_ReplacesLadder(t *testing.T) {
	origIntervals := BaseIntervals
	origGraduation := GraduationStage
	t.Cleanup(func() {
		BaseIntervals = origIntervals
		GraduationStage = origGraduation
	})

	if err := SetBaseIntervals([]int{2, 5, 9}); err != nil {
		t.Fatalf("SetBaseIntervals: %v", err)
	}
	if GraduationStage != 3 {
		t.Errorf("graduation stage = %d, want 3", GraduationStage)
	}
	rs := &State{Stage: 1}
	if got := rs.CurrentIntervalDays(); got != 5 {
		t.Errorf("interval at stage 1 = %d, want 5", got)
	}
	rs = &State{Stage: 7}
	if got := rs.CurrentIntervalDays(); got != 9 {
		t.Errorf("interval past the ladder = %d, want the last rung", got)
	}
}

func TestSetBaseIntervals_Rejections(t *testing.T) {
	for _, days := range [][]int{nil, {}, {0, 1}, {3, 3}, {7, 3, 1}} {
		if err := SetBaseIntervals(days); err == nil {
			t.Errorf("SetBaseIntervals(%v) accepted, want error", days)
		}
	}
}
