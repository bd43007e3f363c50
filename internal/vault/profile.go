package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// profileHeader opens the learner profile document on first write.
const profileHeader = `# Learner Profile

Interview transcripts captured by railz. Newest interviews are appended at
the end; the tutor reads the whole document when drafting tutorials.
`

// ProfilePath returns the learner profile file path.
func (v *Vault) ProfilePath() string {
	return filepath.Join(v.dir, ProfileDirName, ProfileFileName)
}

// ReadProfile returns the learner profile document, or "" when no interview
// has been recorded yet.
func (v *Vault) ReadProfile() (string, error) {
	data, err := os.ReadFile(v.ProfilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read learner profile: %w", err)
	}
	return string(data), nil
}

// AppendInterview appends a dated interview transcript section to the
// learner profile, creating the document on first use.
func (v *Vault) AppendInterview(date Date, transcript string) error {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return fmt.Errorf("append interview: empty transcript")
	}
	if date.IsZero() {
		date = Today()
	}

	existing, err := v.ReadProfile()
	if err != nil {
		return err
	}

	var b strings.Builder
	if existing == "" {
		b.WriteString(profileHeader)
	} else {
		b.WriteString(strings.TrimRight(existing, "\n"))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n## Interview %s\n\n%s\n", date, transcript)

	if err := os.MkdirAll(filepath.Join(v.dir, ProfileDirName), 0o755); err != nil {
		return fmt.Errorf("append interview: %w", err)
	}
	if err := os.WriteFile(v.ProfilePath(), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("append interview: %w", err)
	}
	return nil
}
