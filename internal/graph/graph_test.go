package graph

import (
	"strings"
	"testing"

	"github.com/abhisek/railz/internal/vault"
)

// tut builds a minimal tutorial for graph construction.
func tut(id string, prereqs ...string) *vault.Tutorial {
	return &vault.Tutorial{
		ID: id,
		FrontMatter: vault.FrontMatter{
			Prerequisites: prereqs,
		},
	}
}

// linear: basics <- models <- callbacks, plus an independent root.
func linearFixture() *Graph {
	return Build([]*vault.Tutorial{
		tut("01-03-2026-rails-basics"),
		tut("05-03-2026-activerecord-models", "01-03-2026-rails-basics"),
		tut("09-03-2026-callbacks", "05-03-2026-activerecord-models"),
		tut("02-03-2026-nextjs-routing"),
	})
}

func TestTopologicalOrder(t *testing.T) {
	g := linearFixture()
	order := g.TopologicalOrder()
	if len(order) != 4 {
		t.Fatalf("len(order) = %d, want 4", len(order))
	}

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos["01-03-2026-rails-basics"] > pos["05-03-2026-activerecord-models"] {
		t.Error("basics must come before models")
	}
	if pos["05-03-2026-activerecord-models"] > pos["09-03-2026-callbacks"] {
		t.Error("models must come before callbacks")
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	first := linearFixture().TopologicalOrder()
	for i := 0; i < 5; i++ {
		again := linearFixture().TopologicalOrder()
		if strings.Join(again, ",") != strings.Join(first, ",") {
			t.Fatalf("order changed between builds:\n%v\n%v", first, again)
		}
	}
}

func TestChain(t *testing.T) {
	g := linearFixture()
	chain, err := g.Chain("09-03-2026-callbacks")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	want := []string{
		"01-03-2026-rails-basics",
		"05-03-2026-activerecord-models",
		"09-03-2026-callbacks",
	}
	if strings.Join(chain, ",") != strings.Join(want, ",") {
		t.Errorf("chain = %v, want %v", chain, want)
	}
}

func TestChain_Root(t *testing.T) {
	g := linearFixture()
	chain, err := g.Chain("01-03-2026-rails-basics")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if len(chain) != 1 || chain[0] != "01-03-2026-rails-basics" {
		t.Errorf("chain = %v, want just the root", chain)
	}
}

func TestChain_SharedPrereqListedOnce(t *testing.T) {
	g := Build([]*vault.Tutorial{
		tut("a"),
		tut("b", "a"),
		tut("c", "a"),
		tut("d", "b", "c"),
	})
	chain, err := g.Chain("d")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if len(chain) != 4 {
		t.Fatalf("chain = %v, want 4 unique entries", chain)
	}
	if chain[0] != "a" || chain[3] != "d" {
		t.Errorf("chain = %v, want a first and d last", chain)
	}
}

func TestChain_UnknownTutorial(t *testing.T) {
	if _, err := linearFixture().Chain("missing"); err == nil {
		t.Fatal("expected error for unknown tutorial")
	}
}

func TestChain_DanglingPrereq(t *testing.T) {
	g := Build([]*vault.Tutorial{tut("a", "ghost")})
	if _, err := g.Chain("a"); err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("expected dangling-prereq error naming ghost, got %v", err)
	}
}

func TestUnlockedAndAvailable(t *testing.T) {
	g := linearFixture()
	solid := map[string]bool{"01-03-2026-rails-basics": true}

	if !g.Unlocked("05-03-2026-activerecord-models", solid) {
		t.Error("models should be unlocked once basics is solid")
	}
	if g.Unlocked("09-03-2026-callbacks", solid) {
		t.Error("callbacks should stay locked")
	}

	available := g.Available(solid)
	got := strings.Join(available, ",")
	for _, want := range []string{"05-03-2026-activerecord-models", "02-03-2026-nextjs-routing"} {
		if !strings.Contains(got, want) {
			t.Errorf("available = %v, missing %s", available, want)
		}
	}
	if strings.Contains(got, "callbacks") {
		t.Errorf("available = %v, callbacks is locked", available)
	}
}

func TestFrontier_PrefersProgress(t *testing.T) {
	g := linearFixture()
	solid := map[string]bool{"01-03-2026-rails-basics": true}

	frontier := g.Frontier(solid)
	if len(frontier) != 1 || frontier[0] != "05-03-2026-activerecord-models" {
		t.Errorf("frontier = %v, want only models", frontier)
	}
}

func TestFrontier_FallsBackToRoots(t *testing.T) {
	g := linearFixture()
	frontier := g.Frontier(map[string]bool{})
	if len(frontier) != 2 {
		t.Errorf("frontier = %v, want the two roots", frontier)
	}
}

func TestValidate_Clean(t *testing.T) {
	if err := linearFixture().Validate(); err != nil {
		t.Errorf("expected clean graph, got %v", err)
	}
}

func TestValidate_Dangling(t *testing.T) {
	g := Build([]*vault.Tutorial{tut("a", "ghost")})
	err := g.Validate()
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("expected dangling error, got %v", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := Build([]*vault.Tutorial{
		tut("a", "b"),
		tut("b", "a"),
		tut("root"),
	})
	err := g.Validate()
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
	for _, id := range []string{"a", "b"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("cycle error should name %q: %v", id, err)
		}
	}
}

func TestValidate_SelfReference(t *testing.T) {
	g := Build([]*vault.Tutorial{tut("a", "a")})
	err := g.Validate()
	if err == nil || !strings.Contains(err.Error(), "itself") {
		t.Errorf("expected self-reference error, got %v", err)
	}
}

func TestValidate_NoRoots(t *testing.T) {
	g := Build([]*vault.Tutorial{
		tut("a", "b"),
		tut("b", "a"),
	})
	err := g.Validate()
	if err == nil || !strings.Contains(err.Error(), "root") {
		t.Errorf("expected no-roots error, got %v", err)
	}
}

func TestDependents(t *testing.T) {
	g := linearFixture()
	deps := g.Dependents("01-03-2026-rails-basics")
	if len(deps) != 1 || deps[0] != "05-03-2026-activerecord-models" {
		t.Errorf("dependents = %v", deps)
	}
}

func TestRoots(t *testing.T) {
	g := linearFixture()
	roots := g.Roots()
	if len(roots) != 2 {
		t.Errorf("roots = %v, want 2", roots)
	}
}
