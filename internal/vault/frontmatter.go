package vault

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// delimiter marks the start and end of the front-matter block.
const delimiter = "---"

// MinScore and MaxScore bound the understanding score.
const (
	MinScore = 0
	MaxScore = 10
)

// requiredKeys lists every front-matter key that must be present in a
// tutorial file. Nullable fields are still required to appear, as null.
var requiredKeys = []string{
	"concepts",
	"source_repo",
	"description",
	"understanding_score",
	"prerequisites",
	"created",
	"last_updated",
	"last_quizzed",
}

// ValidateScore checks that an understanding score is within bounds.
func ValidateScore(n int) error {
	if n < MinScore || n > MaxScore {
		return fmt.Errorf("understanding score %d out of range [%d, %d]", n, MinScore, MaxScore)
	}
	return nil
}

// splitFrontMatter separates the front-matter block from the document rest.
// The file must open with a "---" line; the block ends at the next one.
func splitFrontMatter(data []byte) (fm, rest []byte, err error) {
	trimmed := bytes.TrimLeft(data, "\uFEFF")
	lines := bytes.SplitAfter(trimmed, []byte("\n"))
	if len(lines) == 0 || string(bytes.TrimRight(lines[0], "\r\n")) != delimiter {
		return nil, nil, fmt.Errorf("missing front matter: file must open with %q", delimiter)
	}
	offset := len(lines[0])
	for _, line := range lines[1:] {
		if string(bytes.TrimRight(line, "\r\n")) == delimiter {
			return trimmed[len(lines[0]):offset], trimmed[offset+len(line):], nil
		}
		offset += len(line)
	}
	return nil, nil, fmt.Errorf("unterminated front matter: no closing %q", delimiter)
}

// parseFrontMatter decodes and validates a front-matter block.
func parseFrontMatter(path string, data []byte) (FrontMatter, error) {
	// Probe key presence first so missing-key errors name the key.
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return FrontMatter{}, &ParseError{Path: path, Err: fmt.Errorf("invalid front matter: %w", err)}
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return FrontMatter{}, &ParseError{Path: path, Key: key, Err: fmt.Errorf("required key missing")}
		}
	}

	var fm FrontMatter
	if err := yaml.Unmarshal(data, &fm); err != nil {
		return FrontMatter{}, &ParseError{Path: path, Err: fmt.Errorf("invalid front matter: %w", err)}
	}
	if score, ok := fm.Score(); ok {
		if err := ValidateScore(score); err != nil {
			return FrontMatter{}, &ParseError{Path: path, Key: "understanding_score", Err: err}
		}
	}
	return fm, nil
}

// renderFrontMatter serializes fm in canonical form: fixed key order, flow
// lists, DD-MM-YYYY dates, explicit null for unset nullable fields.
func renderFrontMatter(fm FrontMatter) ([]byte, error) {
	// Nil slices would serialize as null; the canonical form is [].
	if fm.Concepts == nil {
		fm.Concepts = []string{}
	}
	if fm.Prerequisites == nil {
		fm.Prerequisites = []string{}
	}

	body, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	buf.Write(body)
	buf.WriteString(delimiter + "\n")
	return buf.Bytes(), nil
}
