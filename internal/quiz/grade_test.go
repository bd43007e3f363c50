package quiz

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Save Callbacks", "save callbacks"},
		{"collapses whitespace", "  after_commit   runs\tlast  ", "after_commit runs last"},
		{"strips trailing punctuation", "It runs inside the transaction.", "it runs inside the transaction"},
		{"keeps interior punctuation", "belongs_to :user, optional: true", "belongs_to :user, optional: true"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name     string
		given    string
		expected string
		want     bool
	}{
		{"identical", "after_commit", "after_commit", true},
		{"case and spacing differ", "After_Commit ", "after_commit", true},
		{"trailing period", "it uses a write barrier.", "It uses a write barrier", true},
		{"different answers", "before_save", "after_commit", false},
		{"empty given never matches", "", "", false},
		{"whitespace only given", "   ", "anything", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExactMatch(tt.given, tt.expected); got != tt.want {
				t.Errorf("ExactMatch(%q, %q) = %v, want %v", tt.given, tt.expected, got, tt.want)
			}
		})
	}
}
