package scoring

import (
	"testing"

	"github.com/abhisek/railz/internal/vault"
)

func TestFromAccuracy(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 5, 0},
		{5, 5, 10},
		{3, 5, 6},
		{4, 5, 8},
		{1, 3, 3},
		{2, 3, 7},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := FromAccuracy(tt.correct, tt.total); got != tt.want {
			t.Errorf("FromAccuracy(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestBlend_FirstQuiz(t *testing.T) {
	if got := Blend(nil, 8); got != 8 {
		t.Errorf("Blend(nil, 8) = %d, want 8", got)
	}
}

func TestBlend_WeightsPreviousScore(t *testing.T) {
	tests := []struct {
		prev, quiz int
		want       int
	}{
		{8, 4, 6},  // 0.6*8 + 0.4*4 = 6.4
		{4, 10, 6}, // 2.4 + 4.0 = 6.4
		{7, 7, 7},
		{10, 0, 6},
		{0, 10, 4},
		{9, 10, 9}, // 5.4 + 4.0 = 9.4
	}
	for _, tt := range tests {
		prev := tt.prev
		if got := Blend(&prev, tt.quiz); got != tt.want {
			t.Errorf("Blend(%d, %d) = %d, want %d", tt.prev, tt.quiz, got, tt.want)
		}
	}
}

func TestBlend_Clamped(t *testing.T) {
	if got := Blend(nil, 15); got != 10 {
		t.Errorf("Blend(nil, 15) = %d, want 10", got)
	}
	if got := Blend(nil, -3); got != 0 {
		t.Errorf("Blend(nil, -3) = %d, want 0", got)
	}
}

func TestStateFor(t *testing.T) {
	tests := []struct {
		name          string
		score         int
		scored, rusty bool
		want          State
	}{
		{"never quizzed", 0, false, false, StateUnread},
		{"below threshold", 5, true, false, StateLearning},
		{"at threshold", 7, true, false, StateSolid},
		{"top score", 10, true, false, StateSolid},
		{"solid but decayed", 8, true, true, StateRusty},
		{"low score decay flag ignored", 4, true, true, StateLearning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateFor(tt.score, tt.scored, tt.rusty); got != tt.want {
				t.Errorf("StateFor(%d, %v, %v) = %s, want %s", tt.score, tt.scored, tt.rusty, got, tt.want)
			}
		})
	}
}

func scored(id string, score int) *vault.Tutorial {
	return &vault.Tutorial{
		ID:          id,
		FrontMatter: vault.FrontMatter{UnderstandingScore: &score},
	}
}

func TestApply_FirstQuiz(t *testing.T) {
	tut := &vault.Tutorial{ID: "a"}
	tr := Apply(tut, 8, false)

	if tr.From != StateUnread || tr.To != StateSolid {
		t.Errorf("transition %s -> %s, want unread -> solid", tr.From, tr.To)
	}
	if tr.FromScore != -1 || tr.ToScore != 8 {
		t.Errorf("scores %d -> %d, want -1 -> 8", tr.FromScore, tr.ToScore)
	}
	if tr.Trigger != "first-quiz" {
		t.Errorf("trigger = %q", tr.Trigger)
	}
}

func TestApply_QuizResult(t *testing.T) {
	tr := Apply(scored("a", 8), 4, false)
	if tr.Trigger != "quiz-result" {
		t.Errorf("trigger = %q", tr.Trigger)
	}
	if tr.ToScore != 6 {
		t.Errorf("ToScore = %d, want 6", tr.ToScore)
	}
	if tr.From != StateSolid || tr.To != StateLearning {
		t.Errorf("transition %s -> %s, want solid -> learning", tr.From, tr.To)
	}
}

func TestApply_ReviewRecovery(t *testing.T) {
	tr := Apply(scored("a", 8), 9, true)
	if tr.From != StateRusty {
		t.Errorf("From = %s, want rusty", tr.From)
	}
	if tr.To != StateSolid {
		t.Errorf("To = %s, want solid", tr.To)
	}
	if tr.Trigger != "review-recovery" {
		t.Errorf("trigger = %q", tr.Trigger)
	}
}

func TestSolidIDs(t *testing.T) {
	tutorials := []*vault.Tutorial{
		scored("solid", 8),
		scored("edge", 7),
		scored("learning", 5),
		{ID: "unread"},
		scored("decayed", 9),
	}
	solid := SolidIDs(tutorials, map[string]bool{"decayed": true})

	for _, want := range []string{"solid", "edge"} {
		if !solid[want] {
			t.Errorf("%s missing from solid set", want)
		}
	}
	for _, reject := range []string{"learning", "unread", "decayed"} {
		if solid[reject] {
			t.Errorf("%s should not be solid", reject)
		}
	}
}
