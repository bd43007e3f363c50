package quiz

import (
	"time"

	"github.com/abhisek/railz/internal/vault"
)

// HandleVerdict records a graded answer against the current question and
// moves the session into the feedback phase. It is a no-op when no question
// is active.
func HandleVerdict(s *State, given string, v Verdict) {
	slot := s.CurrentSlot()
	q := s.CurrentQuestion()
	if slot == nil || q == nil {
		return
	}

	s.TotalQuestions++
	if v.Correct {
		s.TotalCorrect++
	}

	result := s.Results[slot.TutorialID]
	if result != nil {
		result.Attempted++
		if v.Correct {
			result.Correct++
		}
		result.Answers = append(result.Answers, vault.QuizQuestion{
			Prompt:   q.Prompt,
			Expected: q.Expected,
			Given:    given,
			Correct:  v.Correct,
		})
	}

	s.LastVerdict = &v
	s.Phase = PhaseFeedback
}

// BeginGrading parks the session while a submitted answer is judged.
func BeginGrading(s *State) {
	s.Phase = PhaseGrading
}

// Advance moves past the feedback phase to the next question, or to the
// next slot when the current one is exhausted. It returns true when the
// session is over.
func Advance(s *State) bool {
	s.LastVerdict = nil
	s.QuestionIndex++
	if s.QuestionIndex < len(s.Questions) {
		s.Phase = PhaseAsking
		return false
	}
	return SkipSlot(s)
}

// SkipSlot abandons the current slot and moves to the next, used when a
// slot's questions cannot be fetched. It returns true when the session is
// over.
func SkipSlot(s *State) bool {
	s.SlotIndex++
	s.Questions = nil
	s.QuestionIndex = 0
	if s.SlotIndex >= len(s.Plan.Slots) {
		s.Phase = PhaseSummary
		return true
	}
	s.Phase = PhaseLoading
	return false
}

// End stamps the elapsed duration and forces the summary phase. Used both
// for natural completion and early quits.
func End(s *State) {
	s.Elapsed = time.Since(s.StartTime)
	s.Phase = PhaseSummary
}
