// Package review schedules spaced-repetition reviews for solid tutorials.
// Each tutorial that reaches the solid threshold gets an expanding review
// interval; missing a review long enough marks the tutorial rusty until a
// recovery quiz brings it back.
package review

import "fmt"

// BaseIntervals defines the expanding interval schedule in days.
// Stage 0 = first review after a tutorial turns solid.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// GraduationStage is the consecutive-hit count at which a tutorial
// graduates: one pass per stage of the ladder.
var GraduationStage = len(BaseIntervals)

// GraduatedIntervalDays is the review interval for graduated tutorials.
const GraduatedIntervalDays = 90

// SetBaseIntervals replaces the review ladder. Called once at startup when
// the config overrides the defaults; scheduling state created before the
// call is not rescaled.
func SetBaseIntervals(days []int) error {
	if len(days) == 0 {
		return fmt.Errorf("review intervals must not be empty")
	}
	prev := 0
	for _, d := range days {
		if d <= prev {
			return fmt.Errorf("review intervals must be positive and ascending, got %v", days)
		}
		prev = d
	}
	BaseIntervals = days
	GraduationStage = len(days)
	return nil
}
