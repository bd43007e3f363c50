package scoring

import (
	"math"

	"github.com/abhisek/railz/internal/vault"
)

// SolidThreshold is the understanding score at which a tutorial's
// prerequisite obligations are considered met.
const SolidThreshold = 7

// Blend weights: recent quizzes move the score without erasing history.
const (
	prevWeight = 0.6
	quizWeight = 0.4
)

// FromAccuracy converts a quiz sitting into a 0-10 score.
func FromAccuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return clamp(int(math.Round(10 * float64(correct) / float64(total))))
}

// Blend folds a quiz score into the previous understanding score. The first
// quiz sets the score outright; afterwards the previous value dominates so a
// single bad day cannot wipe out an established rating.
func Blend(prev *int, quizScore int) int {
	if prev == nil {
		return clamp(quizScore)
	}
	blended := prevWeight*float64(*prev) + quizWeight*float64(quizScore)
	return clamp(int(math.Round(blended)))
}

// Apply computes the post-quiz transition for a tutorial.
func Apply(t *vault.Tutorial, quizScore int, rusty bool) Transition {
	prev, scored := t.Score()
	var prevPtr *int
	fromScore := -1
	if scored {
		prevPtr = &prev
		fromScore = prev
	}

	to := Blend(prevPtr, quizScore)
	trigger := TriggerQuizResult
	if !scored {
		trigger = TriggerFirstQuiz
	} else if rusty && to >= SolidThreshold {
		trigger = TriggerReviewRecovery
	}

	return Transition{
		TutorialID: t.ID,
		From:       StateFor(prev, scored, rusty),
		To:         StateFor(to, true, false),
		FromScore:  fromScore,
		ToScore:    to,
		Trigger:    trigger,
	}
}

// SolidIDs returns the set of tutorials whose score meets the solid
// threshold, excluding any marked rusty by the review scheduler.
func SolidIDs(tutorials []*vault.Tutorial, rusty map[string]bool) map[string]bool {
	solid := make(map[string]bool, len(tutorials))
	for _, t := range tutorials {
		score, scored := t.Score()
		if scored && score >= SolidThreshold && !rusty[t.ID] {
			solid[t.ID] = true
		}
	}
	return solid
}

func clamp(n int) int {
	if n < vault.MinScore {
		return vault.MinScore
	}
	if n > vault.MaxScore {
		return vault.MaxScore
	}
	return n
}
