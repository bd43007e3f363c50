package tutorgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/railz/internal/vault"
)

const draftSystemPrompt = `You are a senior engineer writing a tutorial for a developer learning framework internals (Rails, Next.js) by reading real open-source codebases.

Rules:
- Teach one topic per tutorial, grounded in the given source repository. Quote short, annotated code excerpts rather than inventing toy examples.
- Structure the body with ## sections: motivation, the mechanism, a walk through the actual code, and common pitfalls.
- Write for the learner described in the profile. Skip what they already know, expand what they struggle with.
- Concept tags are lowercase and hyphenated (e.g. "active-record", "server-components").
- Prerequisites may only name tutorials from the provided list. When nothing on the list applies, return an empty array. Never invent IDs.
- Do not include YAML front matter or a title heading in the body; both are added by the caller.`

func buildDraftUserMessage(input DraftInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Source repository: %s\n", input.SourceRepo)
	if len(input.Concepts) > 0 {
		fmt.Fprintf(&b, "Concept hints: %s\n", strings.Join(input.Concepts, ", "))
	}

	b.WriteString("\nExisting tutorials (the only valid prerequisite IDs):\n")
	if len(input.Existing) == 0 {
		b.WriteString("None\n")
	} else {
		for _, t := range input.Existing {
			fmt.Fprintf(&b, "- %s: %s\n", t.ID, t.Description)
		}
	}

	if input.Profile != "" {
		b.WriteString("\nLearner profile:\n")
		b.WriteString(input.Profile)
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
Write the tutorial. Pick prerequisites only from the list above, choosing the tutorials whose material this topic builds on directly.`)

	return b.String()
}

const answerSystemPrompt = `You are a tutor answering a follow-up question about a tutorial the learner has already read. Ground the answer in the tutorial body; when the tutorial does not cover the question, say so and answer from the underlying framework anyway. Keep answers short and concrete, with code excerpts where they help.`

func buildAnswerUserMessage(t *vault.Tutorial, question, profile string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tutorial: %s\n", t.Title())
	fmt.Fprintf(&b, "Source repository: %s\n\n", t.SourceRepo)
	b.WriteString("Tutorial body:\n")
	b.WriteString(t.Body)
	b.WriteString("\n")

	if len(t.QA) > 0 {
		b.WriteString("\nEarlier questions on this tutorial:\n")
		for _, qa := range t.QA {
			fmt.Fprintf(&b, "- %s\n", qa.Question)
		}
	}

	if profile != "" {
		b.WriteString("\nLearner profile:\n")
		b.WriteString(profile)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n", question)

	return b.String()
}

const quizSystemPrompt = `You are a tutor writing quiz questions that check whether a developer understood a tutorial they read.

Rules:
- Every question must be answerable from the tutorial body alone, in one or two prose sentences. No trick questions, no trivia about line numbers.
- Prefer "why" and "what happens when" questions over definitions.
- The expected answer states the key fact the grader should look for, in one or two sentences.
- Do not repeat any question from the "already asked" list, and do not produce two questions covering the same point.`

func buildQuizUserMessage(input QuizInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tutorial: %s\n", input.Tutorial.Title())
	fmt.Fprintf(&b, "Questions wanted: %d\n\n", input.Count)
	b.WriteString("Tutorial body:\n")
	b.WriteString(input.Tutorial.Body)
	b.WriteString("\n")

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))
	b.WriteString("\n")

	if input.Profile != "" {
		b.WriteString("\nLearner profile:\n")
		b.WriteString(input.Profile)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nInstructions:\nWrite exactly %d questions.", input.Count)

	return b.String()
}

const gradeSystemPrompt = `You are grading a developer's prose answer to a quiz question. Judge understanding, not wording: accept paraphrases, different terminology, and partial code where the underlying mechanism is right. Mark incorrect when the answer misses or contradicts the key fact in the expected answer. Feedback is one or two sentences and names what was missing when incorrect.`

func buildGradeUserMessage(question, expected, given string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Expected answer: %s\n\n", expected)
	fmt.Fprintf(&b, "Learner's answer: %s\n", given)

	return b.String()
}

const profileSystemPrompt = `You are maintaining a learner profile for a tutoring system that teaches framework internals. The profile personalizes future tutorials and quizzes. Base it on the interview transcripts and the quiz evidence; do not invent facts.`

func buildProfileUserMessage(input ProfileInput) string {
	var b strings.Builder

	b.WriteString("Interview transcripts:\n")
	if strings.TrimSpace(input.Transcript) == "" {
		b.WriteString("None recorded yet.\n")
	} else {
		b.WriteString(input.Transcript)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nCompleted quiz sessions: %d\n", input.SessionCount)

	if len(input.Stats) > 0 {
		b.WriteString("\nQuiz evidence per tutorial:\n")
		for _, s := range input.Stats {
			score := "unset"
			if s.Score >= 0 {
				score = fmt.Sprintf("%d/10", s.Score)
			}
			fmt.Fprintf(&b, "- %s: score %s, accuracy %.0f%%\n", s.ID, score, s.Accuracy*100)
		}
	}

	if input.Previous != nil {
		fmt.Fprintf(&b, "\nPrevious profile:\n%s\n", input.Previous.Summary)
		fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(input.Previous.Strengths, ", "))
		fmt.Fprintf(&b, "Weaknesses: %s\n", strings.Join(input.Previous.Weaknesses, ", "))
	}

	b.WriteString(`
Instructions:
Create a concise learner profile:
1. Write a 3-5 sentence summary of the learner's background, goals, and current grasp of the material.
2. List 2-4 specific strengths (e.g. "solid on ActiveRecord query interface").
3. List 2-4 specific weaknesses (e.g. "hazy on Turbo Stream broadcast flow").
4. List 1-3 learning patterns (e.g. "retains concepts better with code excerpts").

If a previous profile exists, update it with new evidence rather than starting fresh. Keep all entries concise (5-10 words each for strengths/weaknesses/patterns).`)

	return b.String()
}

const interviewSystemPrompt = `You are interviewing a developer to build their learner profile for a tutoring system. Ask one open question at a time about background, goals, prior experience, or learning preferences. Never re-ask something the profile or this session already covers. Keep questions short and conversational.`

func buildInterviewUserMessage(input InterviewInput) string {
	var b strings.Builder

	b.WriteString("Profile so far:\n")
	if strings.TrimSpace(input.Profile) == "" {
		b.WriteString("Empty. This is the first interview.\n")
	} else {
		b.WriteString(input.Profile)
		b.WriteString("\n")
	}

	b.WriteString("\nThis session:\n")
	if len(input.Turns) == 0 {
		b.WriteString("No questions asked yet.\n")
	} else {
		for _, turn := range input.Turns {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", turn.Question, turn.Answer)
		}
	}

	b.WriteString("\nInstructions:\nAsk the next question.")

	return b.String()
}
