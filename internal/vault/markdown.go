package vault

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Section headings every tutorial document carries, in canonical order.
const (
	qaHeading   = "## Q&A"
	quizHeading = "## Quiz History"
)

const qaEntryPrefix = "### Q: "

var (
	askedLineRe  = regexp.MustCompile(`^_Asked: (\d{2}-\d{2}-\d{4})_$`)
	quizBlockRe  = regexp.MustCompile(`^### Quiz (\d{2}-\d{2}-\d{4}) \(score (\d+)/10\)$`)
	quizPromptRe = regexp.MustCompile(`^\d+\. \*\*Q:\*\* (.*)$`)
	expectedRe   = regexp.MustCompile(`^\s+\*\*Expected:\*\* (.*)$`)
	givenRe      = regexp.MustCompile(`^\s+\*\*Given:\*\* (.*) \[(correct|incorrect)\]$`)
)

// parseDocument assembles a Tutorial from a raw file.
func parseDocument(path, id string, data []byte) (*Tutorial, error) {
	fmBytes, rest, err := splitFrontMatter(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	fm, err := parseFrontMatter(path, fmBytes)
	if err != nil {
		return nil, err
	}

	body, qaText, quizText := splitSections(string(rest))
	qa, err := parseQASection(qaText)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	quizzes, err := parseQuizSection(quizText)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Tutorial{
		ID:          id,
		Path:        path,
		FrontMatter: fm,
		Body:        strings.TrimSpace(body),
		QA:          qa,
		Quizzes:     quizzes,
	}, nil
}

// splitSections divides the document rest into body, Q&A and quiz history
// content by scanning for the canonical level-2 headings.
func splitSections(doc string) (body, qa, quiz string) {
	current := &body
	for _, line := range strings.Split(doc, "\n") {
		switch strings.TrimRight(line, " \t") {
		case qaHeading:
			current = &qa
		case quizHeading:
			current = &quiz
		default:
			*current += line + "\n"
		}
	}
	return body, qa, quiz
}

// parseQASection reads "### Q:" entries: heading line, optional asked-date
// line, then answer text until the next entry.
func parseQASection(text string) ([]QAEntry, error) {
	var entries []QAEntry
	var cur *QAEntry
	var answer []string

	flush := func() {
		if cur != nil {
			cur.Answer = strings.TrimSpace(strings.Join(answer, "\n"))
			entries = append(entries, *cur)
		}
		cur = nil
		answer = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if question, ok := strings.CutPrefix(line, qaEntryPrefix); ok {
			flush()
			cur = &QAEntry{Question: strings.TrimSpace(question)}
			continue
		}
		if cur == nil {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("stray content in Q&A section: %q", line)
			}
			continue
		}
		if m := askedLineRe.FindStringSubmatch(line); m != nil && cur.Asked.IsZero() && allBlank(answer) {
			d, err := ParseDate(m[1])
			if err != nil {
				return nil, fmt.Errorf("Q&A entry %q: %w", cur.Question, err)
			}
			cur.Asked = d
			continue
		}
		answer = append(answer, line)
	}
	flush()
	return entries, nil
}

// parseQuizSection reads "### Quiz <date> (score N/10)" blocks with their
// numbered question items.
func parseQuizSection(text string) ([]QuizRecord, error) {
	var records []QuizRecord
	var cur *QuizRecord

	flush := func() {
		if cur != nil {
			records = append(records, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := quizBlockRe.FindStringSubmatch(line); m != nil {
			flush()
			d, err := ParseDate(m[1])
			if err != nil {
				return nil, fmt.Errorf("quiz record: %w", err)
			}
			score, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("quiz record %s: bad score: %w", m[1], err)
			}
			if err := ValidateScore(score); err != nil {
				return nil, fmt.Errorf("quiz record %s: %w", m[1], err)
			}
			cur = &QuizRecord{Date: d, Score: score}
			continue
		}
		if cur == nil {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("stray content in quiz history: %q", line)
			}
			continue
		}
		switch {
		case quizPromptRe.MatchString(line):
			m := quizPromptRe.FindStringSubmatch(line)
			cur.Questions = append(cur.Questions, QuizQuestion{Prompt: m[1]})
		case expectedRe.MatchString(line):
			if len(cur.Questions) == 0 {
				return nil, fmt.Errorf("quiz record %s: expected-answer line before any question", cur.Date)
			}
			m := expectedRe.FindStringSubmatch(line)
			cur.Questions[len(cur.Questions)-1].Expected = m[1]
		case givenRe.MatchString(line):
			if len(cur.Questions) == 0 {
				return nil, fmt.Errorf("quiz record %s: given-answer line before any question", cur.Date)
			}
			m := givenRe.FindStringSubmatch(line)
			q := &cur.Questions[len(cur.Questions)-1]
			q.Given = m[1]
			q.Correct = m[2] == "correct"
		case strings.TrimSpace(line) == "":
			// blank separator
		default:
			return nil, fmt.Errorf("quiz record %s: unrecognized line %q", cur.Date, line)
		}
	}
	flush()
	return records, nil
}

// renderDocument serializes a tutorial back to its canonical file form.
func renderDocument(t *Tutorial) ([]byte, error) {
	fm, err := renderFrontMatter(t.FrontMatter)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.Write(fm)
	b.WriteString("\n")
	if body := strings.TrimSpace(t.Body); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString("\n" + qaHeading + "\n")
	for _, e := range t.QA {
		b.WriteString("\n" + qaEntryPrefix + flatten(e.Question) + "\n")
		if !e.Asked.IsZero() {
			fmt.Fprintf(&b, "_Asked: %s_\n", e.Asked)
		}
		if e.Answer != "" {
			b.WriteString("\n" + strings.TrimSpace(e.Answer) + "\n")
		}
	}

	b.WriteString("\n" + quizHeading + "\n")
	for _, r := range t.Quizzes {
		fmt.Fprintf(&b, "\n### Quiz %s (score %d/10)\n\n", r.Date, r.Score)
		for i, q := range r.Questions {
			verdict := "incorrect"
			if q.Correct {
				verdict = "correct"
			}
			fmt.Fprintf(&b, "%d. **Q:** %s\n", i+1, flatten(q.Prompt))
			fmt.Fprintf(&b, "   **Expected:** %s\n", flatten(q.Expected))
			fmt.Fprintf(&b, "   **Given:** %s [%s]\n", flatten(q.Given), verdict)
		}
	}
	return []byte(b.String()), nil
}

// flatten collapses a possibly multi-line string to one line so it fits the
// single-line record format.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func allBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
