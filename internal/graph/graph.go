// Package graph builds the prerequisite DAG over vault tutorials and
// answers ordering and unlock queries against it.
package graph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/railz/internal/vault"
)

// Graph holds the prerequisite DAG with precomputed indices. Dangling
// prerequisites and cycles survive construction so that Validate can report
// them; ordering queries simply skip unresolvable nodes.
type Graph struct {
	tutorials  []*vault.Tutorial
	byID       map[string]*vault.Tutorial
	dependents map[string][]string
	roots      []string
	topoOrder  []string
	topoIndex  map[string]int
}

// Build constructs the graph from loaded tutorials.
// It builds all indices including topological order (Kahn's algorithm).
func Build(tutorials []*vault.Tutorial) *Graph {
	g := &Graph{
		tutorials:  tutorials,
		byID:       make(map[string]*vault.Tutorial, len(tutorials)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(tutorials)),
	}

	for _, t := range tutorials {
		g.byID[t.ID] = t
	}

	// Reverse edges. Dangling prerequisite references are dropped here;
	// Validate reports them.
	for _, t := range tutorials {
		for _, prereq := range t.Prerequisites {
			if _, ok := g.byID[prereq]; ok {
				g.dependents[prereq] = append(g.dependents[prereq], t.ID)
			}
		}
	}

	// Topological sort (Kahn's algorithm). In-degrees count only edges that
	// resolve, so a dangling reference cannot wedge the whole order.
	inDegree := make(map[string]int, len(tutorials))
	for _, t := range tutorials {
		deg := 0
		for _, prereq := range t.Prerequisites {
			if _, ok := g.byID[prereq]; ok {
				deg++
			}
		}
		inDegree[t.ID] = deg
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoOrder = append(g.topoOrder, id)

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	for i, id := range g.topoOrder {
		g.topoIndex[id] = i
	}

	for _, t := range tutorials {
		if len(t.Prerequisites) == 0 {
			g.roots = append(g.roots, t.ID)
		}
	}
	sort.Strings(g.roots)

	return g
}

// Get returns the tutorial for an ID.
func (g *Graph) Get(id string) (*vault.Tutorial, bool) {
	t, ok := g.byID[id]
	return t, ok
}

// Len returns the number of tutorials in the graph.
func (g *Graph) Len() int { return len(g.tutorials) }

// Roots returns the IDs of tutorials with no prerequisites.
func (g *Graph) Roots() []string {
	return slices.Clone(g.roots)
}

// Dependents returns the IDs that directly list id as a prerequisite.
func (g *Graph) Dependents(id string) []string {
	deps := slices.Clone(g.dependents[id])
	sort.Strings(deps)
	return deps
}

// TopologicalOrder returns all resolvable tutorial IDs in dependency order.
// Tutorials caught in a prerequisite cycle are absent.
func (g *Graph) TopologicalOrder() []string {
	return slices.Clone(g.topoOrder)
}

// Chain resolves a tutorial's transitive prerequisites in dependency order,
// ending with the tutorial itself. This is the reading order for the topic.
func (g *Graph) Chain(id string) ([]string, error) {
	if _, ok := g.byID[id]; !ok {
		return nil, fmt.Errorf("tutorial not in graph: %q", id)
	}
	if _, ok := g.topoIndex[id]; !ok {
		return nil, fmt.Errorf("prerequisite cycle involving %q", id)
	}

	needed := map[string]bool{}
	var visit func(string) error
	visit = func(cur string) error {
		if needed[cur] {
			return nil
		}
		needed[cur] = true
		t, ok := g.byID[cur]
		if !ok {
			return fmt.Errorf("prerequisite %q does not exist", cur)
		}
		for _, prereq := range t.Prerequisites {
			if err := visit(prereq); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(id); err != nil {
		return nil, err
	}

	chain := make([]string, 0, len(needed))
	for _, ordered := range g.topoOrder {
		if needed[ordered] {
			chain = append(chain, ordered)
		}
	}
	return chain, nil
}

// Unlocked reports whether every prerequisite of id is in the solid set.
func (g *Graph) Unlocked(id string, solid map[string]bool) bool {
	t, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereq := range t.Prerequisites {
		if !solid[prereq] {
			return false
		}
	}
	return true
}

// Available returns tutorials that are unlocked but not yet solid, in
// topological order.
func (g *Graph) Available(solid map[string]bool) []string {
	var result []string
	for _, id := range g.topoOrder {
		if !solid[id] && g.Unlocked(id, solid) {
			result = append(result, id)
		}
	}
	return result
}

// Frontier returns the available tutorials that represent forward progress:
// those with at least one prerequisite. When only roots are available they
// are returned instead.
func (g *Graph) Frontier(solid map[string]bool) []string {
	available := g.Available(solid)
	if len(available) == 0 {
		return nil
	}
	var frontier []string
	for _, id := range available {
		if len(g.byID[id].Prerequisites) > 0 {
			frontier = append(frontier, id)
		}
	}
	if len(frontier) == 0 {
		return available
	}
	return frontier
}
