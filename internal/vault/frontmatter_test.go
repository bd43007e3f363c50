package vault

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `---
concepts: [activerecord, lazy-loading]
source_repo: campfire
description: How ActiveRecord relations defer query execution
understanding_score: 7
prerequisites: [01-03-2026-rails-mvc-basics]
created: 05-03-2026
last_updated: 12-03-2026
last_quizzed: 12-03-2026
---

# ActiveRecord Relations

Body text.

## Q&A

## Quiz History
`

func TestParseDocument_FrontMatterFields(t *testing.T) {
	tut, err := parseDocument("x.md", "05-03-2026-activerecord-relations", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := tut.Concepts; len(got) != 2 || got[0] != "activerecord" || got[1] != "lazy-loading" {
		t.Errorf("concepts = %v, want [activerecord lazy-loading]", got)
	}
	if tut.SourceRepo != "campfire" {
		t.Errorf("source_repo = %q, want %q", tut.SourceRepo, "campfire")
	}
	score, ok := tut.Score()
	if !ok || score != 7 {
		t.Errorf("understanding_score = %d (set=%v), want 7", score, ok)
	}
	if tut.Created.String() != "05-03-2026" {
		t.Errorf("created = %s, want 05-03-2026", tut.Created)
	}
	if tut.LastQuizzed == nil || tut.LastQuizzed.String() != "12-03-2026" {
		t.Errorf("last_quizzed = %v, want 12-03-2026", tut.LastQuizzed)
	}
	if !strings.Contains(tut.Body, "# ActiveRecord Relations") {
		t.Errorf("body lost heading: %q", tut.Body)
	}
}

func TestParseDocument_NullableFields(t *testing.T) {
	doc := strings.ReplaceAll(sampleDoc, "understanding_score: 7", "understanding_score: null")
	doc = strings.ReplaceAll(doc, "last_quizzed: 12-03-2026", "last_quizzed: null")

	tut, err := parseDocument("x.md", "id", []byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := tut.Score(); ok {
		t.Error("expected unset understanding_score")
	}
	if tut.LastQuizzed != nil {
		t.Errorf("last_quizzed = %v, want nil", tut.LastQuizzed)
	}
}

func TestParseDocument_MissingKeyNamesKey(t *testing.T) {
	doc := strings.ReplaceAll(sampleDoc, "source_repo: campfire\n", "")

	_, err := parseDocument("x.md", "id", []byte(doc))
	if err == nil {
		t.Fatal("expected error for missing source_repo")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Key != "source_repo" {
		t.Errorf("error key = %q, want source_repo", perr.Key)
	}
}

func TestParseDocument_EveryKeyRequired(t *testing.T) {
	for _, key := range requiredKeys {
		t.Run(key, func(t *testing.T) {
			var kept []string
			for _, line := range strings.Split(sampleDoc, "\n") {
				if strings.HasPrefix(line, key+":") {
					continue
				}
				kept = append(kept, line)
			}
			_, err := parseDocument("x.md", "id", []byte(strings.Join(kept, "\n")))
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Key != key {
				t.Errorf("dropping %q: got err %v, want ParseError naming it", key, err)
			}
		})
	}
}

func TestParseDocument_ScoreOutOfRange(t *testing.T) {
	for _, bad := range []string{"-1", "11", "42"} {
		doc := strings.ReplaceAll(sampleDoc, "understanding_score: 7", "understanding_score: "+bad)
		_, err := parseDocument("x.md", "id", []byte(doc))
		if err == nil {
			t.Errorf("score %s: expected range error", bad)
		}
	}
}

func TestParseDocument_MissingFrontMatter(t *testing.T) {
	_, err := parseDocument("x.md", "id", []byte("# no front matter\n"))
	if err == nil {
		t.Fatal("expected error for missing front matter")
	}
}

func TestParseDocument_UnterminatedFrontMatter(t *testing.T) {
	_, err := parseDocument("x.md", "id", []byte("---\nconcepts: []\n"))
	if err == nil {
		t.Fatal("expected error for unterminated front matter")
	}
}

func TestRoundTrip_FrontMatterExact(t *testing.T) {
	tut, err := parseDocument("x.md", "id", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out, err := renderDocument(tut)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	again, err := parseDocument("x.md", "id", out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	a, b := tut.FrontMatter, again.FrontMatter
	if strings.Join(a.Concepts, ",") != strings.Join(b.Concepts, ",") {
		t.Errorf("concepts changed: %v vs %v", a.Concepts, b.Concepts)
	}
	if a.SourceRepo != b.SourceRepo || a.Description != b.Description {
		t.Error("string fields changed across round trip")
	}
	as, aok := a.Score()
	bs, bok := b.Score()
	if as != bs || aok != bok {
		t.Errorf("score changed: %d/%v vs %d/%v", as, aok, bs, bok)
	}
	if strings.Join(a.Prerequisites, ",") != strings.Join(b.Prerequisites, ",") {
		t.Errorf("prerequisites changed: %v vs %v", a.Prerequisites, b.Prerequisites)
	}
	for _, dates := range [][2]string{
		{a.Created.String(), b.Created.String()},
		{a.LastUpdated.String(), b.LastUpdated.String()},
		{a.LastQuizzed.String(), b.LastQuizzed.String()},
	} {
		if dates[0] != dates[1] {
			t.Errorf("date changed: %s vs %s", dates[0], dates[1])
		}
	}
}

func TestRoundTrip_CanonicalFormStable(t *testing.T) {
	tut, err := parseDocument("x.md", "id", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	first, err := renderDocument(tut)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	reparsed, err := parseDocument("x.md", "id", first)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	second, err := renderDocument(reparsed)
	if err != nil {
		t.Fatalf("rerender: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("canonical form not stable:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

func TestRenderFrontMatter_NullsAndEmptyLists(t *testing.T) {
	out, err := renderFrontMatter(FrontMatter{
		SourceRepo:  "fizzy",
		Description: "d",
		Created:     mustDate(t, "01-01-2026"),
		LastUpdated: mustDate(t, "01-01-2026"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		"concepts: []",
		"prerequisites: []",
		"understanding_score: null",
		"last_quizzed: null",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("rendered front matter missing %q:\n%s", want, s)
		}
	}
}

func TestRenderFrontMatter_KeyOrder(t *testing.T) {
	tut, err := parseDocument("x.md", "id", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := renderFrontMatter(tut.FrontMatter)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	last := -1
	s := string(out)
	for _, key := range requiredKeys {
		idx := strings.Index(s, "\n"+key+":")
		if idx < 0 {
			t.Fatalf("key %q missing from output:\n%s", key, s)
		}
		if idx < last {
			t.Errorf("key %q out of canonical order", key)
		}
		last = idx
	}
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
