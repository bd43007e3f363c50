package vault

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a tutorial ID does not resolve to a file.
var ErrNotFound = errors.New("tutorial not found")

// ParseError describes a tutorial file that could not be parsed. Key is set
// when a specific front-matter key is missing or malformed.
type ParseError struct {
	Path string
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: front matter key %q: %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
