package vault

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	v, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("init vault: %v", err)
	}
	return v
}

func createTutorial(t *testing.T, v *Vault, topic string, prereqs ...string) *Tutorial {
	t.Helper()
	tut, err := v.Create(Draft{
		Topic:         topic,
		Concepts:      []string{"c"},
		SourceRepo:    "campfire",
		Description:   "about " + topic,
		Prerequisites: prereqs,
		Body:          "# " + topic + "\n\nBody.",
	})
	if err != nil {
		t.Fatalf("create %q: %v", topic, err)
	}
	return tut
}

func TestInit_Layout(t *testing.T) {
	v := newTestVault(t)

	for _, path := range []string{v.TutorialsDir(), v.ProfileDir()} {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			t.Errorf("missing directory %s: %v", path, err)
		}
	}
	data, err := os.ReadFile(v.Dir() + "/" + IndexFileName)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(data), "tutorials/") {
		t.Error("index does not describe the layout")
	}
}

func TestInit_PreservesExistingIndex(t *testing.T) {
	dir := t.TempDir()
	v, err := Init(dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	custom := []byte("# my own index\n")
	if err := os.WriteFile(dir+"/"+IndexFileName, custom, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Init(dir); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	data, _ := os.ReadFile(v.Dir() + "/" + IndexFileName)
	if string(data) != string(custom) {
		t.Error("re-init overwrote an existing index")
	}
}

func TestOpen_NotAVault(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("expected error opening a bare directory")
	}
	if !strings.Contains(err.Error(), "railz init") {
		t.Errorf("error should point at init: %v", err)
	}
}

func TestCreate_IDFromDateAndSlug(t *testing.T) {
	v := newTestVault(t)
	tut, err := v.Create(Draft{
		Topic:       "ActiveRecord: Lazy Loading!",
		Description: "d",
		Created:     mustDate(t, "05-03-2026"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tut.ID != "05-03-2026-activerecord-lazy-loading" {
		t.Errorf("ID = %q", tut.ID)
	}
	if !v.Exists(tut.ID) {
		t.Error("file not written")
	}
}

func TestCreate_CollisionSuffix(t *testing.T) {
	v := newTestVault(t)
	d := mustDate(t, "05-03-2026")

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		tut, err := v.Create(Draft{Topic: "Turbo Frames", Description: "d", Created: d})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, tut.ID)
	}
	want := []string{
		"05-03-2026-turbo-frames",
		"05-03-2026-turbo-frames-2",
		"05-03-2026-turbo-frames-3",
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestCreate_RejectsUnknownPrerequisites(t *testing.T) {
	v := newTestVault(t)
	_, err := v.Create(Draft{
		Topic:         "Advanced",
		Description:   "d",
		Prerequisites: []string{"01-01-2026-nonexistent"},
	})
	if err == nil {
		t.Fatal("expected error for unknown prerequisite")
	}
	if !strings.Contains(err.Error(), "01-01-2026-nonexistent") {
		t.Errorf("error should name the missing ID: %v", err)
	}
}

func TestCreate_EmptySlug(t *testing.T) {
	v := newTestVault(t)
	if _, err := v.Create(Draft{Topic: "!!!", Description: "d"}); err == nil {
		t.Fatal("expected error for unusable topic")
	}
}

func TestGet_NotFound(t *testing.T) {
	v := newTestVault(t)
	_, err := v.Get("01-01-2026-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAppendQA(t *testing.T) {
	v := newTestVault(t)
	tut := createTutorial(t, v, "Rails MVC")

	updated, added, err := v.AppendQA(tut.ID, "What dispatches requests?", "The router maps verbs and paths to controller actions.")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !added {
		t.Fatal("expected entry to be added")
	}
	if len(updated.QA) != 1 {
		t.Fatalf("len(QA) = %d, want 1", len(updated.QA))
	}
	if updated.LastUpdated.IsZero() {
		t.Error("last_updated not set")
	}

	// Survives a reload.
	reloaded, err := v.Get(tut.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(reloaded.QA) != 1 || reloaded.QA[0].Question != "What dispatches requests?" {
		t.Errorf("QA after reload: %+v", reloaded.QA)
	}
}

func TestAppendQA_Idempotent(t *testing.T) {
	v := newTestVault(t)
	tut := createTutorial(t, v, "Rails MVC")

	if _, added, err := v.AppendQA(tut.ID, "Same question?", "a1"); err != nil || !added {
		t.Fatalf("first append: added=%v err=%v", added, err)
	}
	// Re-application differs only in whitespace and case.
	_, added, err := v.AppendQA(tut.ID, "  same   QUESTION? ", "a2")
	if err != nil {
		t.Fatalf("second append: %v", err)
	}
	if added {
		t.Error("duplicate question should be a no-op")
	}
	reloaded, _ := v.Get(tut.ID)
	if len(reloaded.QA) != 1 {
		t.Errorf("len(QA) = %d, want 1", len(reloaded.QA))
	}
}

func TestRecordQuiz(t *testing.T) {
	v := newTestVault(t)
	tut := createTutorial(t, v, "Rails MVC")

	rec := QuizRecord{
		Date:  mustDate(t, "20-03-2026"),
		Score: 8,
		Questions: []QuizQuestion{
			{Prompt: "p1", Expected: "e1", Given: "e1", Correct: true},
			{Prompt: "p2", Expected: "e2", Given: "x", Correct: false},
		},
	}
	updated, added, err := v.RecordQuiz(tut.ID, rec, 8)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !added {
		t.Fatal("expected record to be added")
	}
	score, ok := updated.Score()
	if !ok || score != 8 {
		t.Errorf("understanding_score = %d (set=%v), want 8", score, ok)
	}
	if updated.LastQuizzed == nil || updated.LastQuizzed.String() != "20-03-2026" {
		t.Errorf("last_quizzed = %v", updated.LastQuizzed)
	}

	reloaded, _ := v.Get(tut.ID)
	if len(reloaded.Quizzes) != 1 || len(reloaded.Quizzes[0].Questions) != 2 {
		t.Fatalf("quiz history after reload: %+v", reloaded.Quizzes)
	}
}

func TestRecordQuiz_Idempotent(t *testing.T) {
	v := newTestVault(t)
	tut := createTutorial(t, v, "Rails MVC")

	rec := QuizRecord{
		Date:      mustDate(t, "20-03-2026"),
		Score:     6,
		Questions: []QuizQuestion{{Prompt: "p1", Expected: "e", Given: "g"}},
	}
	if _, added, err := v.RecordQuiz(tut.ID, rec, 6); err != nil || !added {
		t.Fatalf("first record: added=%v err=%v", added, err)
	}
	_, added, err := v.RecordQuiz(tut.ID, rec, 9)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if added {
		t.Error("same-day same-questions record should be a no-op")
	}
	reloaded, _ := v.Get(tut.ID)
	if len(reloaded.Quizzes) != 1 {
		t.Errorf("len(Quizzes) = %d, want 1", len(reloaded.Quizzes))
	}
	if score, _ := reloaded.Score(); score != 6 {
		t.Errorf("no-op must not move the score: got %d", score)
	}
}

func TestRecordQuiz_ScoreBounds(t *testing.T) {
	v := newTestVault(t)
	tut := createTutorial(t, v, "Rails MVC")

	rec := QuizRecord{Score: 11, Questions: []QuizQuestion{{Prompt: "p"}}}
	if _, _, err := v.RecordQuiz(tut.ID, rec, 5); err == nil {
		t.Error("expected error for out-of-range quiz score")
	}
	rec.Score = 5
	if _, _, err := v.RecordQuiz(tut.ID, rec, -1); err == nil {
		t.Error("expected error for out-of-range understanding score")
	}
}

func TestList_SortedByCreation(t *testing.T) {
	v := newTestVault(t)
	for _, spec := range []struct{ topic, date string }{
		{"later", "10-03-2026"},
		{"earlier", "01-03-2026"},
		{"middle", "05-03-2026"},
	} {
		if _, err := v.Create(Draft{Topic: spec.topic, Description: "d", Created: mustDate(t, spec.date)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := v.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var slugs []string
	for _, tut := range all {
		slugs = append(slugs, tut.Slug())
	}
	want := "earlier,middle,later"
	if got := strings.Join(slugs, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
}

func TestList_FailsOnCorruptFile(t *testing.T) {
	v := newTestVault(t)
	createTutorial(t, v, "fine")
	if err := os.WriteFile(v.Path("01-01-2026-broken"), []byte("no front matter"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := v.List(); err == nil {
		t.Fatal("expected list to surface the corrupt file")
	}
}

func TestCheck_ReportsIssues(t *testing.T) {
	v := newTestVault(t)
	base := createTutorial(t, v, "base")
	dependent := createTutorial(t, v, "dependent", base.ID)

	// Hand-edit the dependent to reference a ghost and itself.
	tut, err := v.Get(dependent.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	tut.Prerequisites = []string{base.ID, "01-01-2020-ghost", dependent.ID}
	if err := v.write(tut); err != nil {
		t.Fatalf("write: %v", err)
	}
	// And drop in a file that cannot parse.
	if err := os.WriteFile(v.Path("junk"), []byte("not markdown with front matter"), 0o644); err != nil {
		t.Fatalf("write junk: %v", err)
	}

	issues, err := v.Check()
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	var found struct{ ghost, self, parse bool }
	for _, issue := range issues {
		switch {
		case strings.Contains(issue.Msg, "ghost"):
			found.ghost = true
		case strings.Contains(issue.Msg, "itself"):
			found.self = true
		case issue.ID == "junk" && strings.Contains(issue.Msg, "front matter"):
			found.parse = true
		}
	}
	if !found.ghost || !found.self || !found.parse {
		t.Errorf("issues missing expected entries: %+v\n%v", found, issues)
	}
}

func TestCheck_CleanVault(t *testing.T) {
	v := newTestVault(t)
	base := createTutorial(t, v, "base")
	createTutorial(t, v, "next", base.ID)

	issues, err := v.Check()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("expected clean vault, got %v", issues)
	}
}

func TestProfile_AppendAndRead(t *testing.T) {
	v := newTestVault(t)

	got, err := v.ReadProfile()
	if err != nil || got != "" {
		t.Fatalf("empty profile: %q, %v", got, err)
	}

	d := mustDate(t, "02-03-2026")
	if err := v.AppendInterview(d, "**Q:** Why Rails?\n**A:** Day job."); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := v.AppendInterview(d.AddDays(30), "**Q:** Progress?\n**A:** Shipping."); err != nil {
		t.Fatalf("append second: %v", err)
	}

	profile, err := v.ReadProfile()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(profile, "# Learner Profile") {
		t.Error("profile missing header")
	}
	if !strings.Contains(profile, "## Interview 02-03-2026") ||
		!strings.Contains(profile, "## Interview 01-04-2026") {
		t.Errorf("profile missing interview sections:\n%s", profile)
	}
	if strings.Index(profile, "02-03-2026") > strings.Index(profile, "01-04-2026") {
		t.Error("interviews out of order")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ActiveRecord Lazy Loading", "activerecord-lazy-loading"},
		{"  Hotwire/Turbo: Frames!  ", "hotwire-turbo-frames"},
		{"N+1 queries", "n-1-queries"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitID(t *testing.T) {
	d, slug, err := SplitID("05-03-2026-turbo-frames")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if d.String() != "05-03-2026" || slug != "turbo-frames" {
		t.Errorf("got %s / %q", d, slug)
	}

	for _, bad := range []string{"turbo-frames", "2026-03-05-x", "05-03-2026-", "05-03-2026"} {
		if _, _, err := SplitID(bad); err == nil {
			t.Errorf("SplitID(%q): expected error", bad)
		}
	}
}
