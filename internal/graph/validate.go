package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks the prerequisite graph for structural issues.
// Returns a combined error describing all problems found, or nil if valid.
func (g *Graph) Validate() error {
	var errs []string

	// Dangling prerequisites.
	for _, t := range g.tutorials {
		for _, prereq := range t.Prerequisites {
			if prereq == t.ID {
				errs = append(errs, fmt.Sprintf("tutorial %q lists itself as a prerequisite", t.ID))
				continue
			}
			if _, ok := g.byID[prereq]; !ok {
				errs = append(errs, fmt.Sprintf("tutorial %q references nonexistent prerequisite %q", t.ID, prereq))
			}
		}
	}

	// Cycles: anything Kahn's algorithm could not order is in or behind a
	// cycle (self-references included, dangling refs excluded above).
	if len(g.topoOrder) < len(g.tutorials) {
		var stuck []string
		for _, t := range g.tutorials {
			if _, ok := g.topoIndex[t.ID]; !ok {
				stuck = append(stuck, t.ID)
			}
		}
		sort.Strings(stuck)
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(stuck, ", ")))
	}

	// A non-empty graph needs at least one starting point.
	if len(g.tutorials) > 0 && len(g.roots) == 0 {
		errs = append(errs, "no root tutorials found (every tutorial has prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("prerequisite graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
