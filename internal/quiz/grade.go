package quiz

import "strings"

// GradedBy values recorded alongside each answer event.
const (
	GradedByExact = "exact"
	GradedByLLM   = "llm"
	GradedBySelf  = "self"
)

// Verdict is the judgment on one submitted answer.
type Verdict struct {
	Correct  bool
	Feedback string
	GradedBy string
}

// Normalize lowercases, collapses whitespace, and strips trailing sentence
// punctuation so trivially different phrasings of the same answer compare
// equal.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.TrimRight(s, ".!?")
}

// ExactMatch reports whether the given answer matches the expected one after
// normalization. Empty answers never match.
func ExactMatch(given, expected string) bool {
	g := Normalize(given)
	return g != "" && g == Normalize(expected)
}
