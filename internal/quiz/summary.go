package quiz

import (
	"time"

	"github.com/abhisek/railz/internal/scoring"
)

// TutorialOutcome is one tutorial's row in the session summary. The score
// and state fields are filled in by Finalize once results are committed.
type TutorialOutcome struct {
	TutorialID string
	Title      string
	Category   Category
	Attempted  int
	Correct    int

	QuizScore   int
	ScoreBefore *int
	ScoreAfter  int
	FromState   scoring.State
	ToState     scoring.State
}

// Summary is what the summary screen and the stats command render after a
// session ends.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Tutorials      []TutorialOutcome
}

// Accuracy returns the session-wide fraction of correct answers.
func (s *Summary) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions)
}

// BuildSummary collects the answered slots in plan order. Slots the session
// quit before reaching are left out.
func BuildSummary(s *State) *Summary {
	summary := &Summary{
		SessionID:      s.SessionID,
		Duration:       s.Elapsed,
		TotalQuestions: s.TotalQuestions,
		TotalCorrect:   s.TotalCorrect,
	}
	for _, slot := range s.Plan.Slots {
		result := s.Results[slot.TutorialID]
		if result == nil || result.Attempted == 0 {
			continue
		}
		summary.Tutorials = append(summary.Tutorials, TutorialOutcome{
			TutorialID: result.TutorialID,
			Title:      result.Title,
			Category:   result.Category,
			Attempted:  result.Attempted,
			Correct:    result.Correct,
		})
	}
	return summary
}
