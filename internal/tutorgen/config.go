package tutorgen

// Config holds token budgets and sampling settings per generation kind.
type Config struct {
	// DraftMaxTokens is the budget for full tutorial drafts. Tutorial
	// bodies run to several screens of prose and code excerpts.
	DraftMaxTokens int

	// AnswerMaxTokens is the budget for Q&A answers.
	AnswerMaxTokens int

	// QuizMaxTokens is the budget for a whole question batch.
	QuizMaxTokens int

	// GradeMaxTokens is the budget for grading one answer.
	GradeMaxTokens int

	// ProfileMaxTokens is the budget for learner profile summaries.
	ProfileMaxTokens int

	// InterviewMaxTokens is the budget for one interview question.
	InterviewMaxTokens int

	// Temperature controls output randomness for drafting and quiz
	// generation (0.0-1.0).
	Temperature float64

	// GradeTemperature is used for grading, where determinism matters
	// more than variety.
	GradeTemperature float64

	// MaxPriorQuestions is the maximum number of prior questions to
	// include in the quiz prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		DraftMaxTokens:     4096,
		AnswerMaxTokens:    1024,
		QuizMaxTokens:      2048,
		GradeMaxTokens:     256,
		ProfileMaxTokens:   512,
		InterviewMaxTokens: 256,
		Temperature:        0.7,
		GradeTemperature:   0.2,
		MaxPriorQuestions:  12,
	}
}
