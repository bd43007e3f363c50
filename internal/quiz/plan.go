// Package quiz plans and runs quiz sessions: picking which tutorials to
// test, tracking answers as the session moves through its slots, and
// committing the results back to the vault and the event store when the
// session ends.
package quiz

// Category records why a tutorial earned a slot in the session plan.
type Category string

const (
	// CategoryReview marks tutorials due under the spaced repetition schedule.
	CategoryReview Category = "review"
	// CategoryFrontier marks tutorials whose prerequisites are all solid.
	CategoryFrontier Category = "frontier"
	// CategoryCatchup marks the lowest-scored tutorials used to fill a plan
	// when nothing is due and the frontier is empty.
	CategoryCatchup Category = "catchup"
)

const (
	// DefaultQuestionsPerTutorial is how many questions each slot asks.
	DefaultQuestionsPerTutorial = 5
	// DefaultTutorialsPerSession caps how many tutorials one session covers.
	DefaultTutorialsPerSession = 2
)

// Slot is one tutorial scheduled for a block of questions.
type Slot struct {
	TutorialID string
	Title      string
	Category   Category
}

// Plan is the ordered set of slots for a single session.
type Plan struct {
	Slots                []Slot
	QuestionsPerTutorial int
}

// TotalQuestions returns the number of questions the plan intends to ask.
func (p *Plan) TotalQuestions() int {
	return len(p.Slots) * p.QuestionsPerTutorial
}
