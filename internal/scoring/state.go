// Package scoring maps quiz results onto the 0-10 understanding score kept
// in tutorial front matter, and derives the lifecycle state shown across
// the UI.
package scoring

// State represents a tutorial's position in the learning lifecycle.
type State string

const (
	StateUnread   State = "unread"   // never quizzed, no score
	StateLearning State = "learning" // scored below the solid threshold
	StateSolid    State = "solid"    // at or above the solid threshold
	StateRusty    State = "rusty"    // was solid, but overdue for review
)

// Triggers name the cause of a transition in score events.
const (
	TriggerFirstQuiz      = "first-quiz"
	TriggerQuizResult     = "quiz-result"
	TriggerTimeDecay      = "time-decay"
	TriggerReviewRecovery = "review-recovery"
)

// Transition records an understanding-score state change for display and
// event logging.
type Transition struct {
	TutorialID string
	From       State
	To         State
	FromScore  int // -1 when previously unscored
	ToScore    int
	Trigger    string
}

// StateFor derives the lifecycle state from a front-matter score. rusty
// comes from the review scheduler's decay check and only demotes a solid
// tutorial.
func StateFor(score int, scored, rusty bool) State {
	switch {
	case !scored:
		return StateUnread
	case score >= SolidThreshold && rusty:
		return StateRusty
	case score >= SolidThreshold:
		return StateSolid
	default:
		return StateLearning
	}
}
