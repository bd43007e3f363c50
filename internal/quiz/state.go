package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

// Phase is where the session currently sits in its question loop.
type Phase int

const (
	// PhaseLoading means questions for the current slot are being fetched.
	PhaseLoading Phase = iota
	// PhaseAsking means a question is on screen awaiting an answer.
	PhaseAsking
	// PhaseGrading means an answer was submitted and is being judged.
	PhaseGrading
	// PhaseFeedback shows the verdict before moving on.
	PhaseFeedback
	// PhaseSummary means the session is over.
	PhaseSummary
)

// SlotResult accumulates the graded answers for one slot's tutorial.
type SlotResult struct {
	TutorialID string
	Title      string
	Category   Category
	Attempted  int
	Correct    int
	Answers    []vault.QuizQuestion
}

// State is the full mutable state of a running quiz session. The screens
// own one of these and drive it through the pure functions in this package.
type State struct {
	Plan      *Plan
	SessionID string
	StartTime time.Time
	Elapsed   time.Duration

	Phase         Phase
	SlotIndex     int
	Questions     []tutorgen.Question
	QuestionIndex int

	TotalQuestions int
	TotalCorrect   int
	Results        map[string]*SlotResult

	// Asked holds the prompts served per tutorial this session so slot
	// reloads and follow-up batches never repeat a question.
	Asked map[string][]string

	LastVerdict        *Verdict
	ShowingQuitConfirm bool
}

// NewState builds the starting state for a plan.
func NewState(plan *Plan) *State {
	results := make(map[string]*SlotResult, len(plan.Slots))
	for _, slot := range plan.Slots {
		results[slot.TutorialID] = &SlotResult{
			TutorialID: slot.TutorialID,
			Title:      slot.Title,
			Category:   slot.Category,
		}
	}
	return &State{
		Plan:      plan,
		SessionID: uuid.NewString(),
		StartTime: time.Now(),
		Phase:     PhaseLoading,
		Results:   results,
		Asked:     make(map[string][]string),
	}
}

// CurrentSlot returns the slot the session is on, or nil once past the end.
func (s *State) CurrentSlot() *Slot {
	if s.SlotIndex < 0 || s.SlotIndex >= len(s.Plan.Slots) {
		return nil
	}
	return &s.Plan.Slots[s.SlotIndex]
}

// CurrentQuestion returns the question awaiting an answer, or nil while the
// slot is still loading.
func (s *State) CurrentQuestion() *tutorgen.Question {
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.QuestionIndex]
}

// SetQuestions installs a freshly fetched question batch for the current
// slot and moves the session into the asking phase.
func (s *State) SetQuestions(questions []tutorgen.Question) {
	s.Questions = questions
	s.QuestionIndex = 0
	s.Phase = PhaseAsking
	slot := s.CurrentSlot()
	if slot == nil {
		return
	}
	for _, q := range questions {
		s.Asked[slot.TutorialID] = append(s.Asked[slot.TutorialID], q.Prompt)
	}
}
