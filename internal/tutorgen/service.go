package tutorgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/railz/internal/llm"
	"github.com/abhisek/railz/internal/vault"
)

// Service generates vault content through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type draftOutput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Concepts      []string `json:"concepts"`
	Prerequisites []string `json:"prerequisites"`
	Body          string   `json:"body"`
}

// DraftTutorial generates a complete tutorial draft. Prerequisites returned
// by the model are filtered against the existing tutorial IDs; anything the
// model invented is dropped.
func (s *Service) DraftTutorial(ctx context.Context, input DraftInput) (*TutorialDraft, error) {
	ctx = llm.WithPurpose(ctx, "tutorial-gen")

	req := llm.Request{
		System: draftSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDraftUserMessage(input)},
		},
		Schema:      TutorialSchema,
		MaxTokens:   s.cfg.DraftMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutorial drafting: %w", err)
	}

	var out draftOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tutorial draft: %w", err)
	}
	if strings.TrimSpace(out.Body) == "" {
		return nil, fmt.Errorf("tutorial drafting: empty body")
	}

	existing := make(map[string]bool, len(input.Existing))
	for _, t := range input.Existing {
		existing[t.ID] = true
	}
	var prereqs []string
	for _, id := range out.Prerequisites {
		if existing[id] {
			prereqs = append(prereqs, id)
		}
	}

	title := strings.TrimSpace(out.Title)
	if title == "" {
		title = input.Topic
	}

	return &TutorialDraft{
		Title:         title,
		Description:   out.Description,
		Concepts:      out.Concepts,
		Prerequisites: prereqs,
		Body:          "# " + title + "\n\n" + strings.TrimSpace(out.Body) + "\n",
	}, nil
}

type answerOutput struct {
	Answer string `json:"answer"`
}

// AnswerQuestion answers a learner question grounded in the tutorial body.
func (s *Service) AnswerQuestion(ctx context.Context, t *vault.Tutorial, question, profile string) (string, error) {
	ctx = llm.WithPurpose(ctx, "qa")

	req := llm.Request{
		System: answerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerUserMessage(t, question, profile)},
		},
		Schema:      AnswerSchema,
		MaxTokens:   s.cfg.AnswerMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}

	var out answerOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse answer: %w", err)
	}
	if strings.TrimSpace(out.Answer) == "" {
		return "", fmt.Errorf("answering question: empty answer")
	}
	return strings.TrimSpace(out.Answer), nil
}

type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Prompt         string `json:"prompt"`
	ExpectedAnswer string `json:"expected_answer"`
	Explanation    string `json:"explanation"`
}

// QuizQuestions generates up to input.Count quiz questions for a tutorial.
// Questions duplicating a prior prompt, or another prompt in the same batch,
// are dropped.
func (s *Service) QuizQuestions(ctx context.Context, input QuizInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(input, s.cfg)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz questions: %w", err)
	}

	seen := make(map[string]bool, len(input.PriorQuestions))
	for _, p := range input.PriorQuestions {
		seen[normalizePrompt(p)] = true
	}

	var questions []Question
	for _, q := range out.Questions {
		key := normalizePrompt(q.Prompt)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		questions = append(questions, Question{
			Prompt:      q.Prompt,
			Expected:    q.ExpectedAnswer,
			Explanation: q.Explanation,
		})
		if input.Count > 0 && len(questions) == input.Count {
			break
		}
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz generation: no usable questions returned")
	}
	return questions, nil
}

type gradeOutput struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// GradeAnswer judges a prose answer against the expected answer.
func (s *Service) GradeAnswer(ctx context.Context, question, expected, given string) (*GradeResult, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeUserMessage(question, expected, given)},
		},
		Schema:      GradeSchema,
		MaxTokens:   s.cfg.GradeMaxTokens,
		Temperature: s.cfg.GradeTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading answer: %w", err)
	}

	var out gradeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grade verdict: %w", err)
	}
	return &GradeResult{Correct: out.Correct, Feedback: out.Feedback}, nil
}

type profileOutput struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Patterns   []string `json:"patterns"`
}

// ProfileSummary distills interview transcripts and quiz evidence into a
// learner summary.
func (s *Service) ProfileSummary(ctx context.Context, input ProfileInput) (*LearnerSummary, error) {
	ctx = llm.WithPurpose(ctx, "profile")

	req := llm.Request{
		System: profileSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildProfileUserMessage(input)},
		},
		Schema:      ProfileSchema,
		MaxTokens:   s.cfg.ProfileMaxTokens,
		Temperature: s.cfg.GradeTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("profile generation: %w", err)
	}

	var out profileOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse learner profile: %w", err)
	}
	return &LearnerSummary{
		Summary:    out.Summary,
		Strengths:  out.Strengths,
		Weaknesses: out.Weaknesses,
		Patterns:   out.Patterns,
	}, nil
}

type interviewOutput struct {
	Question string `json:"question"`
}

// InterviewQuestion generates the next interview question.
func (s *Service) InterviewQuestion(ctx context.Context, input InterviewInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "interview")

	req := llm.Request{
		System: interviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInterviewUserMessage(input)},
		},
		Schema:      InterviewSchema,
		MaxTokens:   s.cfg.InterviewMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("interview question: %w", err)
	}

	var out interviewOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse interview question: %w", err)
	}
	if strings.TrimSpace(out.Question) == "" {
		return "", fmt.Errorf("interview question: empty question")
	}
	return strings.TrimSpace(out.Question), nil
}
