package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

// QuestionSource yields the question batch for one slot. prior holds the
// prompts already served this session; each source layers its own history
// filter on top.
type QuestionSource interface {
	Questions(ctx context.Context, t *vault.Tutorial, n int, prior []string) ([]tutorgen.Question, error)
}

// LLMSource generates fresh questions through the tutorial generation
// service, steering them with the learner profile. Every prompt already
// archived in the tutorial is off limits alongside the session's own.
type LLMSource struct {
	Service *tutorgen.Service
	Profile string
}

func (s *LLMSource) Questions(ctx context.Context, t *vault.Tutorial, n int, prior []string) ([]tutorgen.Question, error) {
	return s.Service.QuizQuestions(ctx, tutorgen.QuizInput{
		Tutorial:       t,
		Count:          n,
		PriorQuestions: append(ArchivedPrompts(t), prior...),
		Profile:        s.Profile,
	})
}

// ArchiveSource re-asks questions already stored in the tutorial, for
// offline sessions with no provider configured. Questions missed on their
// most recent asking come first, then the rest of the quiz archive, then
// Q&A entries.
type ArchiveSource struct{}

func (ArchiveSource) Questions(ctx context.Context, t *vault.Tutorial, n int, prior []string) ([]tutorgen.Question, error) {
	skip := make(map[string]bool, len(prior))
	for _, p := range prior {
		skip[Normalize(p)] = true
	}

	type candidate struct {
		question tutorgen.Question
		missed   bool
	}
	var order []string
	latest := make(map[string]candidate)
	for _, rec := range t.Quizzes {
		for _, q := range rec.Questions {
			key := Normalize(q.Prompt)
			if key == "" || skip[key] {
				continue
			}
			if _, seen := latest[key]; !seen {
				order = append(order, key)
			}
			// Records are stored oldest first, so the last write wins.
			latest[key] = candidate{
				question: tutorgen.Question{Prompt: q.Prompt, Expected: q.Expected},
				missed:   !q.Correct,
			}
		}
	}

	var questions []tutorgen.Question
	for _, key := range order {
		if c := latest[key]; c.missed {
			questions = append(questions, c.question)
		}
	}
	for _, key := range order {
		if c := latest[key]; !c.missed {
			questions = append(questions, c.question)
		}
	}
	for _, qa := range t.QA {
		key := Normalize(qa.Question)
		if key == "" || skip[key] {
			continue
		}
		if _, seen := latest[key]; seen {
			continue
		}
		questions = append(questions, tutorgen.Question{Prompt: qa.Question, Expected: qa.Answer})
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("tutorial %s has no archived questions to re-ask", t.ID)
	}
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions, nil
}

// ArchivedPrompts returns every question prompt already stored in the
// tutorial, for seeding a session's duplicate filter.
func ArchivedPrompts(t *vault.Tutorial) []string {
	var prompts []string
	for _, rec := range t.Quizzes {
		for _, q := range rec.Questions {
			prompts = append(prompts, q.Prompt)
		}
	}
	for _, qa := range t.QA {
		prompts = append(prompts, qa.Question)
	}
	return prompts
}
