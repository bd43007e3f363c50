// Package vault implements the markdown tutorial store: a flat directory of
// tutorial documents with YAML front matter, an appended Q&A log and quiz
// history per document, and a learner profile built from interview
// transcripts. Files are the canonical state; every mutation is an append
// or a front-matter field update, and tutorials are never deleted.
package vault

import (
	"fmt"
	"regexp"
	"strings"
)

// FrontMatter is the YAML metadata block at the top of every tutorial file.
// Field order here is the canonical serialization order.
type FrontMatter struct {
	Concepts           []string `yaml:"concepts,flow"`
	SourceRepo         string   `yaml:"source_repo"`
	Description        string   `yaml:"description"`
	UnderstandingScore *int     `yaml:"understanding_score"`
	Prerequisites      []string `yaml:"prerequisites,flow"`
	Created            Date     `yaml:"created"`
	LastUpdated        Date     `yaml:"last_updated"`
	LastQuizzed        *Date    `yaml:"last_quizzed"`
}

// Score returns the understanding score and whether it has been set.
func (fm FrontMatter) Score() (int, bool) {
	if fm.UnderstandingScore == nil {
		return 0, false
	}
	return *fm.UnderstandingScore, true
}

// QAEntry is one question/answer pair in a tutorial's Q&A section.
type QAEntry struct {
	Question string
	Answer   string
	Asked    Date
}

// QuizQuestion is a single graded question inside a quiz record.
type QuizQuestion struct {
	Prompt   string
	Expected string
	Given    string
	Correct  bool
}

// QuizRecord is one quiz sitting appended to a tutorial's quiz history.
type QuizRecord struct {
	Date      Date
	Score     int // 0..10
	Questions []QuizQuestion
}

// Accuracy returns the fraction of correct answers in the record.
func (r QuizRecord) Accuracy() float64 {
	if len(r.Questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range r.Questions {
		if q.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(r.Questions))
}

// Tutorial is a fully parsed tutorial document.
type Tutorial struct {
	ID   string // filename minus .md: DD-MM-YYYY-slug
	Path string

	FrontMatter

	Body    string // markdown between front matter and the Q&A section
	QA      []QAEntry
	Quizzes []QuizRecord
}

// Title derives a display title from the first ATX heading in the body,
// falling back to the slug.
func (t *Tutorial) Title() string {
	for _, line := range strings.Split(t.Body, "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return strings.ReplaceAll(t.Slug(), "-", " ")
}

// Slug returns the topic part of the ID, without the date prefix.
func (t *Tutorial) Slug() string {
	_, slug, err := SplitID(t.ID)
	if err != nil {
		return t.ID
	}
	return slug
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a topic and collapses every non-alphanumeric run to a
// single hyphen.
func Slugify(topic string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(topic), "-")
	return strings.Trim(s, "-")
}

// MakeID composes a tutorial ID from a creation date and a slug.
func MakeID(created Date, slug string) string {
	return created.Format(DateLayout) + "-" + slug
}

// SplitID separates a tutorial ID into its date prefix and slug.
func SplitID(id string) (Date, string, error) {
	if len(id) < len(DateLayout)+2 || id[len(DateLayout)] != '-' {
		return Date{}, "", fmt.Errorf("malformed tutorial ID %q: expected DD-MM-YYYY-slug", id)
	}
	d, err := ParseDate(id[:len(DateLayout)])
	if err != nil {
		return Date{}, "", fmt.Errorf("malformed tutorial ID %q: %w", id, err)
	}
	return d, id[len(DateLayout)+1:], nil
}
