// Package tutorgen generates vault content through the LLM layer: tutorial
// drafts, Q&A answers, quiz questions, prose-answer grading, interview
// questions, and learner profile summaries. Every call is schema-constrained
// and purpose-labeled for the LLM event log.
package tutorgen

import "github.com/abhisek/railz/internal/vault"

// TutorialDraft is a generated tutorial before it is written to the vault.
type TutorialDraft struct {
	Title         string
	Description   string
	Concepts      []string
	Prerequisites []string // filtered to existing tutorial IDs
	Body          string   // markdown, starts with the title heading
}

// Draft converts the generated content into a vault.Draft for Create.
func (d *TutorialDraft) Draft(topic, sourceRepo string) vault.Draft {
	return vault.Draft{
		Topic:         topic,
		Concepts:      d.Concepts,
		SourceRepo:    sourceRepo,
		Description:   d.Description,
		Prerequisites: d.Prerequisites,
		Body:          d.Body,
	}
}

// DraftInput holds all context needed to draft a tutorial.
type DraftInput struct {
	// Topic is the subject the learner asked to be taught.
	Topic string

	// Concepts are optional concept hints from the learner (--concepts).
	Concepts []string

	// SourceRepo is the codebase the tutorial should draw its examples
	// from, e.g. "basecamp/once-campfire".
	SourceRepo string

	// Profile is the learner profile document, included verbatim when
	// available so drafts match the learner's background.
	Profile string

	// Existing describes the tutorials already in the vault. Generated
	// prerequisites are constrained to this set.
	Existing []ExistingTutorial
}

// ExistingTutorial is the minimal view of a vault tutorial exposed to the
// drafting prompt.
type ExistingTutorial struct {
	ID          string
	Description string
}

// Question is a generated quiz question ready to be asked.
type Question struct {
	// Prompt is the question shown to the learner.
	Prompt string

	// Expected is the model answer used for grading and feedback.
	Expected string

	// Explanation is shown after grading, regardless of outcome.
	Explanation string
}

// QuizInput holds all context needed to generate quiz questions.
type QuizInput struct {
	// Tutorial is the document being quizzed.
	Tutorial *vault.Tutorial

	// Count is the number of questions to generate.
	Count int

	// PriorQuestions contains prompts already asked about this tutorial,
	// from this session and from archived quiz history. Used for
	// deduplication in the prompt.
	PriorQuestions []string

	// Profile is the learner profile document, when available.
	Profile string
}

// GradeResult is the verdict on a prose answer.
type GradeResult struct {
	Correct  bool
	Feedback string
}

// LearnerSummary is the distilled learner profile kept in snapshots and
// shown by `railz stats`.
type LearnerSummary struct {
	Summary    string
	Strengths  []string
	Weaknesses []string
	Patterns   []string
}

// TutorialStat is a per-tutorial evidence row for profile generation.
type TutorialStat struct {
	ID       string
	Score    int     // current understanding score, -1 when unset
	Accuracy float64 // lifetime quiz accuracy, 0..1
}

// ProfileInput holds all context for learner profile generation.
type ProfileInput struct {
	// Transcript is the learner profile document (all interviews).
	Transcript string

	// Previous is the last generated summary, when one exists.
	Previous *LearnerSummary

	// Stats summarizes quiz evidence per tutorial.
	Stats []TutorialStat

	// SessionCount is the number of completed quiz sessions.
	SessionCount int
}

// InterviewTurn is one exchange in an ongoing interview.
type InterviewTurn struct {
	Question string
	Answer   string
}

// InterviewInput holds all context for generating the next interview question.
type InterviewInput struct {
	// Profile is the learner profile document so far.
	Profile string

	// Turns are the exchanges from the current interview session.
	Turns []InterviewTurn
}
