package tutorgen

import "github.com/abhisek/railz/internal/llm"

// TutorialSchema defines the JSON schema for tutorial drafting.
var TutorialSchema = &llm.Schema{
	Name:        "tutorial-draft",
	Description: "A complete tutorial document for the learner's vault",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short display title for the tutorial (3-8 words)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One-sentence summary for the front matter",
			},
			"concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-6 concept tags, lowercase, hyphenated",
			},
			"prerequisites": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "IDs of existing tutorials the learner should read first. Only IDs from the provided list. Empty if none apply.",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "The tutorial body in markdown: prose sections with annotated code excerpts from the source repository. No front matter, no title heading.",
			},
		},
		"required":             []any{"title", "description", "concepts", "prerequisites", "body"},
		"additionalProperties": false,
	},
}

// AnswerSchema defines the JSON schema for Q&A answers.
var AnswerSchema = &llm.Schema{
	Name:        "qa-answer",
	Description: "An answer to a learner question about a tutorial",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "Markdown answer grounded in the tutorial body (2-6 sentences, code excerpts where they help)",
			},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz question batches.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of quiz questions for one tutorial",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner, answerable in one or two sentences",
						},
						"expected_answer": map[string]any{
							"type":        "string",
							"description": "The model answer used for grading",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation shown after grading, citing the tutorial where possible",
						},
					},
					"required":             []any{"prompt", "expected_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// GradeSchema defines the JSON schema for grading verdicts.
var GradeSchema = &llm.Schema{
	Name:        "grade-verdict",
	Description: "Verdict on whether a learner's prose answer matches the expected answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "True when the answer demonstrates the same understanding as the expected answer",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences: what was right, what was missing",
			},
		},
		"required":             []any{"correct", "feedback"},
		"additionalProperties": false,
	},
}

// ProfileSchema defines the JSON schema for learner profile summaries.
var ProfileSchema = &llm.Schema{
	Name:        "learner-profile",
	Description: "Holistic learner profile summarizing strengths, weaknesses, and patterns",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence overview of the learner's background, goals, and current grasp",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific strengths (5-10 words each)",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific weaknesses (5-10 words each)",
			},
			"patterns": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 observed learning patterns (5-10 words each)",
			},
		},
		"required":             []any{"summary", "strengths", "weaknesses", "patterns"},
		"additionalProperties": false,
	},
}

// InterviewSchema defines the JSON schema for interview questions.
var InterviewSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "The next question in a learner background interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "A single open question about background, goals, or preferences. Not yet covered by the profile or this session.",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}
