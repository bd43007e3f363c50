package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/vault"
)

// plannerTutorial builds a minimal tutorial for planning tests. A negative
// score leaves the tutorial unscored.
func plannerTutorial(id string, score int, created time.Time, prereqs ...string) *vault.Tutorial {
	t := &vault.Tutorial{ID: id}
	t.Created = vault.DateOf(created)
	t.Prerequisites = prereqs
	if score >= 0 {
		s := score
		t.UnderstandingScore = &s
	}
	return t
}

// bootstrappedScheduler tracks the solid tutorials from front matter alone.
func bootstrappedScheduler(tutorials []*vault.Tutorial) *review.Scheduler {
	sched := review.NewScheduler(nil, nil)
	sched.Bootstrap(tutorials)
	return sched
}

func TestBuildPlan_DueReviewsComeFirst(t *testing.T) {
	now := time.Now()
	tutorials := []*vault.Tutorial{
		plannerTutorial("05-01-2026-rails-boot-process", 8, now.AddDate(0, 0, -30)),
		plannerTutorial("12-01-2026-activerecord-callbacks", 7, now.AddDate(0, 0, -10)),
		plannerTutorial("20-01-2026-turbo-streams", 3, now.AddDate(0, 0, -5)),
	}
	sched := bootstrappedScheduler(tutorials)

	plan := NewPlanner(5, 2).BuildPlan(now, tutorials, sched)

	if len(plan.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(plan.Slots))
	}
	if plan.Slots[0].TutorialID != "05-01-2026-rails-boot-process" {
		t.Errorf("first slot = %s, want the most overdue tutorial", plan.Slots[0].TutorialID)
	}
	if plan.Slots[1].TutorialID != "12-01-2026-activerecord-callbacks" {
		t.Errorf("second slot = %s, want the other due tutorial", plan.Slots[1].TutorialID)
	}
	for _, slot := range plan.Slots {
		if slot.Category != CategoryReview {
			t.Errorf("slot %s category = %s, want review", slot.TutorialID, slot.Category)
		}
	}
}

func TestBuildPlan_FrontierFillsAfterReviews(t *testing.T) {
	now := time.Now()
	tutorials := []*vault.Tutorial{
		plannerTutorial("05-01-2026-rails-boot-process", 8, now.AddDate(0, 0, -30)),
		plannerTutorial("12-01-2026-activerecord-callbacks", -1, now.AddDate(0, 0, -2),
			"05-01-2026-rails-boot-process"),
	}
	sched := bootstrappedScheduler(tutorials)

	plan := NewPlanner(5, 2).BuildPlan(now, tutorials, sched)

	if len(plan.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(plan.Slots))
	}
	if plan.Slots[0].Category != CategoryReview {
		t.Errorf("first slot category = %s, want review", plan.Slots[0].Category)
	}
	if plan.Slots[1].TutorialID != "12-01-2026-activerecord-callbacks" {
		t.Errorf("second slot = %s, want the frontier tutorial", plan.Slots[1].TutorialID)
	}
	if plan.Slots[1].Category != CategoryFrontier {
		t.Errorf("second slot category = %s, want frontier", plan.Slots[1].Category)
	}
}

func TestBuildPlan_RustyPrerequisiteDoesNotUnlockFrontier(t *testing.T) {
	now := time.Now()
	// The prerequisite is solid on paper but 30 days overdue, so it is due
	// for review and must not count toward unlocking its dependent.
	tutorials := []*vault.Tutorial{
		plannerTutorial("05-01-2026-rails-boot-process", 8, now.AddDate(0, 0, -30)),
		plannerTutorial("12-01-2026-activerecord-callbacks", -1, now.AddDate(0, 0, -2),
			"05-01-2026-rails-boot-process"),
	}
	sched := bootstrappedScheduler(tutorials)
	sched.RunDecayCheck(context.Background(), now, tutorials)

	plan := NewPlanner(5, 2).BuildPlan(now, tutorials, sched)

	if len(plan.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(plan.Slots))
	}
	if plan.Slots[0].TutorialID != "05-01-2026-rails-boot-process" {
		t.Errorf("first slot = %s, want the rusty prerequisite", plan.Slots[0].TutorialID)
	}
	if plan.Slots[0].Category != CategoryReview {
		t.Errorf("first slot category = %s, want review", plan.Slots[0].Category)
	}
	if plan.Slots[1].Category != CategoryCatchup {
		t.Errorf("dependent placed as %s, want catchup while its prerequisite is rusty",
			plan.Slots[1].Category)
	}
}

func TestBuildPlan_CatchupWhenNothingDueOrUnlocked(t *testing.T) {
	now := time.Now()
	// Everything solid and freshly quizzed: nothing due, nothing available.
	tutorials := []*vault.Tutorial{
		plannerTutorial("05-01-2026-rails-boot-process", 9, now),
		plannerTutorial("12-01-2026-activerecord-callbacks", 7, now),
	}
	sched := bootstrappedScheduler(tutorials)

	plan := NewPlanner(5, 2).BuildPlan(now, tutorials, sched)

	if len(plan.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(plan.Slots))
	}
	if plan.Slots[0].TutorialID != "12-01-2026-activerecord-callbacks" {
		t.Errorf("first slot = %s, want the lowest-scored tutorial", plan.Slots[0].TutorialID)
	}
	for _, slot := range plan.Slots {
		if slot.Category != CategoryCatchup {
			t.Errorf("slot %s category = %s, want catchup", slot.TutorialID, slot.Category)
		}
	}
}

func TestBuildPlan_LockedTutorialFallsToCatchup(t *testing.T) {
	now := time.Now()
	tutorials := []*vault.Tutorial{
		plannerTutorial("05-01-2026-rails-boot-process", 2, now),
		plannerTutorial("12-01-2026-activerecord-callbacks", -1, now,
			"20-01-2026-turbo-streams"),
		plannerTutorial("20-01-2026-turbo-streams", 1, now),
	}
	sched := bootstrappedScheduler(tutorials)

	plan := NewPlanner(5, 3).BuildPlan(now, tutorials, sched)

	if len(plan.Slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(plan.Slots))
	}
	// Only roots are available, so they fill first and catchup takes the
	// tutorial whose prerequisite is not yet solid.
	last := plan.Slots[2]
	if last.TutorialID != "12-01-2026-activerecord-callbacks" || last.Category != CategoryCatchup {
		t.Errorf("last slot = %s (%s), want the locked tutorial as catchup", last.TutorialID, last.Category)
	}
}

func TestCatchupOrder_UnscoredFirstThenLowestScore(t *testing.T) {
	now := time.Now()
	tutorials := []*vault.Tutorial{
		plannerTutorial("01-02-2026-action-cable-pubsub", 5, now),
		plannerTutorial("02-02-2026-hotwire-morphing", -1, now),
		plannerTutorial("03-02-2026-solid-queue-polling", 1, now),
	}

	got := catchupOrder(tutorials, map[string]bool{})

	want := []string{
		"02-02-2026-hotwire-morphing",
		"03-02-2026-solid-queue-polling",
		"01-02-2026-action-cable-pubsub",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("catchup order = %v, want %v", got, want)
		}
	}
}

func TestBuildPlan_EmptyVault(t *testing.T) {
	sched := review.NewScheduler(nil, nil)
	plan := NewPlanner(0, 0).BuildPlan(time.Now(), nil, sched)

	if len(plan.Slots) != 0 {
		t.Fatalf("got %d slots, want 0", len(plan.Slots))
	}
	if plan.QuestionsPerTutorial != DefaultQuestionsPerTutorial {
		t.Errorf("questions per tutorial = %d, want default %d",
			plan.QuestionsPerTutorial, DefaultQuestionsPerTutorial)
	}
}

func TestBuildPlan_RespectsSessionLimit(t *testing.T) {
	now := time.Now()
	var tutorials []*vault.Tutorial
	for _, id := range []string{
		"01-02-2026-action-cable-pubsub",
		"02-02-2026-hotwire-morphing",
		"03-02-2026-solid-queue-polling",
		"04-02-2026-nextjs-app-router",
	} {
		tutorials = append(tutorials, plannerTutorial(id, 2, now))
	}
	sched := bootstrappedScheduler(tutorials)

	plan := NewPlanner(3, 2).BuildPlan(now, tutorials, sched)

	if len(plan.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(plan.Slots))
	}
	if plan.TotalQuestions() != 6 {
		t.Errorf("total questions = %d, want 6", plan.TotalQuestions())
	}
}

func TestPlanFor_UnknownTutorial(t *testing.T) {
	sched := review.NewScheduler(nil, nil)
	_, err := NewPlanner(5, 2).PlanFor("09-09-2026-nope", time.Now(), nil, sched)
	if !errors.Is(err, vault.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPlanFor_ClassifiesDueTutorialAsReview(t *testing.T) {
	now := time.Now()
	tutorials := []*vault.Tutorial{
		plannerTutorial("05-01-2026-rails-boot-process", 8, now.AddDate(0, 0, -30)),
	}
	sched := bootstrappedScheduler(tutorials)

	plan, err := NewPlanner(5, 2).PlanFor("05-01-2026-rails-boot-process", now, tutorials, sched)
	if err != nil {
		t.Fatalf("PlanFor: %v", err)
	}
	if len(plan.Slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(plan.Slots))
	}
	if plan.Slots[0].Category != CategoryReview {
		t.Errorf("category = %s, want review", plan.Slots[0].Category)
	}
}
