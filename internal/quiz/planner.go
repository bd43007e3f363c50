package quiz

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/railz/internal/graph"
	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/vault"
)

// Planner selects which tutorials a session quizzes. Due reviews come
// first, then frontier tutorials, then a lowest-score catchup fill.
type Planner struct {
	QuestionsPerTutorial int
	TutorialsPerSession  int
}

// NewPlanner returns a planner with defaults applied for non-positive limits.
func NewPlanner(questionsPerTutorial, tutorialsPerSession int) *Planner {
	if questionsPerTutorial <= 0 {
		questionsPerTutorial = DefaultQuestionsPerTutorial
	}
	if tutorialsPerSession <= 0 {
		tutorialsPerSession = DefaultTutorialsPerSession
	}
	return &Planner{
		QuestionsPerTutorial: questionsPerTutorial,
		TutorialsPerSession:  tutorialsPerSession,
	}
}

// BuildPlan assembles the session plan. Due tutorials are taken in
// most-overdue-first order from the scheduler. Remaining slots go to the
// prerequisite frontier in topological order, and finally to the
// lowest-scored tutorials not yet placed. The plan may be empty when the
// vault is.
func (p *Planner) BuildPlan(now time.Time, tutorials []*vault.Tutorial, sched *review.Scheduler) *Plan {
	plan := &Plan{QuestionsPerTutorial: p.QuestionsPerTutorial}
	if len(tutorials) == 0 {
		return plan
	}

	byID := make(map[string]*vault.Tutorial, len(tutorials))
	for _, t := range tutorials {
		byID[t.ID] = t
	}
	placed := make(map[string]bool)

	add := func(id string, cat Category) bool {
		t, ok := byID[id]
		if !ok || placed[id] {
			return len(plan.Slots) < p.TutorialsPerSession
		}
		plan.Slots = append(plan.Slots, Slot{TutorialID: id, Title: t.Title(), Category: cat})
		placed[id] = true
		return len(plan.Slots) < p.TutorialsPerSession
	}

	for _, id := range sched.DueTutorials(now, tutorials) {
		if !add(id, CategoryReview) {
			return plan
		}
	}

	g := graph.Build(tutorials)
	solid := scoring.SolidIDs(tutorials, sched.Rusty())
	for _, id := range g.Frontier(solid) {
		if !add(id, CategoryFrontier) {
			return plan
		}
	}

	for _, id := range catchupOrder(tutorials, placed) {
		if !add(id, CategoryCatchup) {
			return plan
		}
	}
	return plan
}

// PlanFor builds a single-slot plan for an explicitly chosen tutorial,
// classifying it the same way BuildPlan would have.
func (p *Planner) PlanFor(id string, now time.Time, tutorials []*vault.Tutorial, sched *review.Scheduler) (*Plan, error) {
	var target *vault.Tutorial
	for _, t := range tutorials {
		if t.ID == id {
			target = t
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("tutorial %q: %w", id, vault.ErrNotFound)
	}

	cat := CategoryCatchup
	for _, due := range sched.DueTutorials(now, tutorials) {
		if due == id {
			cat = CategoryReview
			break
		}
	}
	if cat != CategoryReview {
		g := graph.Build(tutorials)
		solid := scoring.SolidIDs(tutorials, sched.Rusty())
		for _, fid := range g.Frontier(solid) {
			if fid == id {
				cat = CategoryFrontier
				break
			}
		}
	}

	return &Plan{
		Slots:                []Slot{{TutorialID: id, Title: target.Title(), Category: cat}},
		QuestionsPerTutorial: p.QuestionsPerTutorial,
	}, nil
}

// catchupOrder sorts unplaced tutorials by understanding score ascending,
// unscored first. Ties break on ID so plans are stable run to run.
func catchupOrder(tutorials []*vault.Tutorial, placed map[string]bool) []string {
	type entry struct {
		id    string
		score int
	}
	var entries []entry
	for _, t := range tutorials {
		if placed[t.ID] {
			continue
		}
		score, ok := t.Score()
		if !ok {
			score = vault.MinScore - 1
		}
		entries = append(entries, entry{id: t.ID, score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score < entries[j].score
		}
		return entries[i].id < entries[j].id
	})
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}
