package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/graph"
	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tutorials",
	RunE: func(cmd *cobra.Command, args []string) error {
		order, _ := cmd.Flags().GetString("order")
		dueOnly, _ := cmd.Flags().GetBool("due")
		frontierOnly, _ := cmd.Flags().GetBool("frontier")
		if dueOnly && frontierOnly {
			return fmt.Errorf("use --due or --frontier, not both")
		}

		v, err := openVault()
		if err != nil {
			return err
		}
		tutorials, err := v.List()
		if err != nil {
			return err
		}
		if len(tutorials) == 0 {
			fmt.Println("No tutorials yet. Run 'railz new <topic>' to create one.")
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(cmd.Context())
		if err != nil {
			return err
		}
		var snapData *store.SnapshotData
		if snap != nil && snap.Data.Version == store.SnapshotVersion {
			snapData = &snap.Data
		}
		sched := review.NewScheduler(snapData, st.EventRepo())
		sched.Bootstrap(tutorials)
		now := time.Now()
		rusty := sched.Rusty()

		switch {
		case dueOnly:
			tutorials = filterByID(tutorials, sched.DueTutorials(now, tutorials))
		case frontierOnly:
			g := graph.Build(tutorials)
			solid := scoring.SolidIDs(tutorials, rusty)
			tutorials = filterByID(tutorials, g.Frontier(solid))
		}

		switch order {
		case "date":
			// vault.List is already chronological.
		case "deps":
			tutorials = dependencyOrder(tutorials)
		case "score":
			tutorials = scoreOrder(tutorials)
		default:
			return fmt.Errorf("unknown order %q: must be date, deps, or score", order)
		}

		if len(tutorials) == 0 {
			fmt.Println("Nothing matches.")
			return nil
		}

		fmt.Printf("%-34s  %-30s  %5s  %-8s  %s\n", "ID", "Title", "Score", "State", "Next")
		fmt.Println(strings.Repeat("─", 92))
		for _, t := range tutorials {
			score, ok := t.Score()
			scoreCell := "-"
			if ok {
				scoreCell = fmt.Sprintf("%d", score)
			}
			state := scoring.StateFor(score, ok, rusty[t.ID])

			next := "-"
			if rs := sched.Get(t.ID); rs != nil {
				if rs.IsDue(now) {
					next = "due"
				} else {
					next = fmt.Sprintf("in %dd", rs.DaysUntilReview(now))
				}
			}

			fmt.Printf("%-34s  %-30s  %5s  %-8s  %s\n",
				t.ID, truncate(t.Title(), 30), scoreCell, state, next)
		}
		fmt.Printf("\n%d tutorials\n", len(tutorials))
		return nil
	},
}

func init() {
	listCmd.Flags().String("order", "date", "Sort order: date, deps, or score")
	listCmd.Flags().Bool("due", false, "Only tutorials due for review")
	listCmd.Flags().Bool("frontier", false, "Only unlocked tutorials that are not yet solid")
}

// filterByID keeps the listed IDs, in the order given.
func filterByID(tutorials []*vault.Tutorial, ids []string) []*vault.Tutorial {
	byID := make(map[string]*vault.Tutorial, len(tutorials))
	for _, t := range tutorials {
		byID[t.ID] = t
	}
	var out []*vault.Tutorial
	for _, id := range ids {
		if t := byID[id]; t != nil {
			out = append(out, t)
		}
	}
	return out
}

// dependencyOrder sorts topologically; tutorials caught in a prerequisite
// cycle keep their chronological position at the end.
func dependencyOrder(tutorials []*vault.Tutorial) []*vault.Tutorial {
	g := graph.Build(tutorials)
	ordered := filterByID(tutorials, g.TopologicalOrder())
	seen := make(map[string]bool, len(ordered))
	for _, t := range ordered {
		seen[t.ID] = true
	}
	for _, t := range tutorials {
		if !seen[t.ID] {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

// scoreOrder sorts ascending by score with unscored tutorials first, the
// same priority a catchup slot uses.
func scoreOrder(tutorials []*vault.Tutorial) []*vault.Tutorial {
	out := make([]*vault.Tutorial, len(tutorials))
	copy(out, tutorials)
	sort.SliceStable(out, func(i, j int) bool {
		si, oki := out[i].Score()
		sj, okj := out[j].Score()
		if !oki {
			si = vault.MinScore - 1
		}
		if !okj {
			sj = vault.MinScore - 1
		}
		if si != sj {
			return si < sj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
