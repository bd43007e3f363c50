package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Vault layout names.
const (
	TutorialsDirName = "tutorials"
	ProfileDirName   = "profile"
	IndexFileName    = "README.md"
	ProfileFileName  = "learner-profile.md"
)

// Vault is a tutorial store rooted at a directory.
type Vault struct {
	dir string
}

// DefaultDir resolves the vault location: RAILZ_VAULT first, then
// $HOME/railz.
func DefaultDir() (string, error) {
	if dir := os.Getenv("RAILZ_VAULT"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "railz"), nil
}

// Open opens an existing vault. The directory must contain a tutorials
// subdirectory; Init creates one.
func Open(dir string) (*Vault, error) {
	info, err := os.Stat(filepath.Join(dir, TutorialsDirName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s is not a vault (missing %s/, run 'railz init')", dir, TutorialsDirName)
		}
		return nil, fmt.Errorf("open vault %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open vault %s: %s is not a directory", dir, TutorialsDirName)
	}
	return &Vault{dir: dir}, nil
}

// Init creates the vault layout (tutorials/, profile/, index README) and
// returns the opened vault. Existing files are left untouched.
func Init(dir string) (*Vault, error) {
	for _, sub := range []string{TutorialsDirName, ProfileDirName} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create vault layout: %w", err)
		}
	}
	indexPath := filepath.Join(dir, IndexFileName)
	if _, err := os.Stat(indexPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(indexPath, []byte(indexContent), 0o644); err != nil {
			return nil, fmt.Errorf("write vault index: %w", err)
		}
	}
	return &Vault{dir: dir}, nil
}

// Dir returns the vault root directory.
func (v *Vault) Dir() string { return v.dir }

// TutorialsDir returns the directory holding tutorial files.
func (v *Vault) TutorialsDir() string { return filepath.Join(v.dir, TutorialsDirName) }

// ProfileDir returns the directory holding the learner profile.
func (v *Vault) ProfileDir() string { return filepath.Join(v.dir, ProfileDirName) }

// Path returns the file path for a tutorial ID.
func (v *Vault) Path(id string) string {
	return filepath.Join(v.dir, TutorialsDirName, id+".md")
}

// IDs returns all tutorial IDs, sorted, without parsing file contents.
func (v *Vault) IDs() ([]string, error) {
	entries, err := os.ReadDir(v.TutorialsDir())
	if err != nil {
		return nil, fmt.Errorf("scan tutorials: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Exists reports whether a tutorial file with the given ID is present.
func (v *Vault) Exists(id string) bool {
	_, err := os.Stat(v.Path(id))
	return err == nil
}

// Get loads and parses one tutorial.
func (v *Vault) Get(id string) (*Tutorial, error) {
	path := v.Path(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read tutorial %s: %w", id, err)
	}
	return parseDocument(path, id, data)
}

// List loads every tutorial, sorted by creation date then ID. A single
// unparseable file fails the whole listing; Check reports issues instead.
func (v *Vault) List() ([]*Tutorial, error) {
	ids, err := v.IDs()
	if err != nil {
		return nil, err
	}
	tutorials := make([]*Tutorial, 0, len(ids))
	for _, id := range ids {
		t, err := v.Get(id)
		if err != nil {
			return nil, err
		}
		tutorials = append(tutorials, t)
	}
	sort.SliceStable(tutorials, func(i, j int) bool {
		if !tutorials[i].Created.Equal(tutorials[j].Created.Time) {
			return tutorials[i].Created.Before(tutorials[j].Created.Time)
		}
		return tutorials[i].ID < tutorials[j].ID
	})
	return tutorials, nil
}

// Draft holds the inputs for creating a tutorial.
type Draft struct {
	Topic         string
	Concepts      []string
	SourceRepo    string
	Description   string
	Prerequisites []string
	Body          string
	Created       Date // zero means today
}

// Create writes a new tutorial file and returns the parsed result. The ID is
// derived from the creation date and slugified topic; a numeric suffix
// resolves collisions. Prerequisites must name existing tutorials.
func (v *Vault) Create(d Draft) (*Tutorial, error) {
	slug := Slugify(d.Topic)
	if slug == "" {
		return nil, fmt.Errorf("topic %q produces an empty slug", d.Topic)
	}
	created := d.Created
	if created.IsZero() {
		created = Today()
	}

	if err := v.checkPrereqs(d.Prerequisites); err != nil {
		return nil, err
	}

	id := MakeID(created, slug)
	for n := 2; v.Exists(id); n++ {
		id = fmt.Sprintf("%s-%d", MakeID(created, slug), n)
	}

	t := &Tutorial{
		ID:   id,
		Path: v.Path(id),
		FrontMatter: FrontMatter{
			Concepts:      d.Concepts,
			SourceRepo:    d.SourceRepo,
			Description:   d.Description,
			Prerequisites: d.Prerequisites,
			Created:       created,
			LastUpdated:   created,
		},
		Body: strings.TrimSpace(d.Body),
	}
	if err := v.write(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AppendQA appends a question/answer pair to a tutorial's Q&A section and
// bumps last_updated. Re-applying the same question is a no-op; the returned
// bool reports whether an entry was added.
func (v *Vault) AppendQA(id, question, answer string) (*Tutorial, bool, error) {
	t, err := v.Get(id)
	if err != nil {
		return nil, false, err
	}
	q := flatten(question)
	if q == "" {
		return nil, false, fmt.Errorf("append Q&A to %s: empty question", id)
	}
	for _, e := range t.QA {
		if strings.EqualFold(flatten(e.Question), q) {
			return t, false, nil
		}
	}
	t.QA = append(t.QA, QAEntry{
		Question: q,
		Answer:   strings.TrimSpace(answer),
		Asked:    Today(),
	})
	t.LastUpdated = Today()
	if err := v.write(t); err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// RecordQuiz appends a quiz record and moves understanding_score to score,
// setting last_quizzed to the record date. Re-applying a record with the
// same date and questions is a no-op; the returned bool reports whether the
// record was added.
func (v *Vault) RecordQuiz(id string, rec QuizRecord, score int) (*Tutorial, bool, error) {
	if err := ValidateScore(rec.Score); err != nil {
		return nil, false, fmt.Errorf("record quiz for %s: %w", id, err)
	}
	if err := ValidateScore(score); err != nil {
		return nil, false, fmt.Errorf("record quiz for %s: %w", id, err)
	}
	if len(rec.Questions) == 0 {
		return nil, false, fmt.Errorf("record quiz for %s: no questions", id)
	}
	if rec.Date.IsZero() {
		rec.Date = Today()
	}

	t, err := v.Get(id)
	if err != nil {
		return nil, false, err
	}
	for _, existing := range t.Quizzes {
		if sameQuiz(existing, rec) {
			return t, false, nil
		}
	}

	t.Quizzes = append(t.Quizzes, rec)
	t.UnderstandingScore = &score
	quizzed := rec.Date
	t.LastQuizzed = &quizzed
	t.LastUpdated = Today()
	if err := v.write(t); err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// sameQuiz reports whether two records represent the same sitting: same day
// and the same question prompts in the same order.
func sameQuiz(a, b QuizRecord) bool {
	if !a.Date.Equal(b.Date.Time) || len(a.Questions) != len(b.Questions) {
		return false
	}
	for i := range a.Questions {
		if flatten(a.Questions[i].Prompt) != flatten(b.Questions[i].Prompt) {
			return false
		}
	}
	return true
}

func (v *Vault) checkPrereqs(prereqs []string) error {
	var missing []string
	for _, p := range prereqs {
		if !v.Exists(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown prerequisites: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (v *Vault) write(t *Tutorial) error {
	data, err := renderDocument(t)
	if err != nil {
		return fmt.Errorf("render tutorial %s: %w", t.ID, err)
	}
	if err := os.MkdirAll(v.TutorialsDir(), 0o755); err != nil {
		return fmt.Errorf("write tutorial %s: %w", t.ID, err)
	}
	if err := os.WriteFile(t.Path, data, 0o644); err != nil {
		return fmt.Errorf("write tutorial %s: %w", t.ID, err)
	}
	return nil
}

const indexContent = `# Tutorial Vault

Markdown notes maintained by railz, an AI terminal tutor.

## Layout

- ` + "`tutorials/`" + ` holds one file per tutorial, named DD-MM-YYYY-slug.md.
  Each file opens with YAML front matter (concepts, source_repo,
  description, understanding_score, prerequisites, created, last_updated,
  last_quizzed) followed by the lesson body, a Q&A log, and a quiz history.
- ` + "`profile/learner-profile.md`" + ` collects interview transcripts used to
  personalize new tutorials.

## Workflow

Tutorials are created once and then grow by appends: questions land in the
Q&A section, quiz sittings land in the quiz history together with an
updated understanding score. Files are never deleted. Edit them freely in
any editor; railz re-reads the directory on every run.
`
