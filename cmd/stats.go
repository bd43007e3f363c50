package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/stats"
	"github.com/abhisek/railz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		v, err := openVault()
		if err != nil {
			return err
		}
		tutorials, err := v.List()
		if err != nil {
			return err
		}

		if err := review.SetBaseIntervals(cfg.Review.Intervals); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		events := st.EventRepo()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return err
		}
		var snapData *store.SnapshotData
		var learner *store.LearnerSummaryData
		if snap != nil && snap.Data.Version == store.SnapshotVersion {
			snapData = &snap.Data
			learner = snap.Data.Learner
		}
		sched := review.NewScheduler(snapData, events)
		sched.Bootstrap(tutorials)

		sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{})
		if err != nil {
			return err
		}
		days, err := events.StudyDays(ctx)
		if err != nil {
			return err
		}

		now := time.Now()
		o := stats.BuildOverview(tutorials, sched, sessions, days, now)

		fmt.Println("Overview")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Tutorials:  %d (%d unread, %d learning, %d solid, %d rusty)\n",
			o.TotalTutorials, o.Unread, o.Learning, o.Solid, o.Rusty)
		if o.TotalTutorials > o.Unread {
			fmt.Printf("Avg score:  %.1f\n", o.AvgScore)
		}
		fmt.Printf("Due now:    %d\n", o.Due)
		fmt.Printf("Sessions:   %d\n", o.Sessions)
		if o.TotalQuestions > 0 {
			fmt.Printf("Answers:    %d (%.0f%% correct)\n", o.TotalQuestions, o.Accuracy()*100)
		}
		if o.Streak.Current > 0 {
			fmt.Printf("Streak:     %d days (longest %d)\n", o.Streak.Current, o.Streak.Longest)
		} else if o.Streak.Longest > 0 {
			fmt.Printf("Streak:     none (longest %d)\n", o.Streak.Longest)
		}

		if learner != nil && learner.Summary != "" {
			fmt.Println()
			fmt.Println("Learner profile")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println(learner.Summary)
			if len(learner.Strengths) > 0 {
				fmt.Println("Strengths: ", strings.Join(learner.Strengths, "; "))
			}
			if len(learner.Weaknesses) > 0 {
				fmt.Println("Weaknesses:", strings.Join(learner.Weaknesses, "; "))
			}
		}

		rows := stats.TutorialRows(tutorials, sched)
		if len(rows) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Per tutorial")
		fmt.Println(strings.Repeat("─", 104))
		fmt.Printf("%-34s  %-26s  %5s  %-8s  %8s  %4s  %s\n",
			"ID", "Title", "Score", "State", "Sittings", "Acc", "Next review")
		fmt.Println(strings.Repeat("─", 104))
		for _, row := range rows {
			scoreCell := "-"
			if row.Score >= 0 {
				scoreCell = fmt.Sprintf("%d", row.Score)
			}
			accCell := "-"
			if row.Sittings > 0 {
				accCell = fmt.Sprintf("%.0f%%", row.Accuracy*100)
			}
			nextCell := "-"
			if row.Next != nil {
				if !now.Before(*row.Next) {
					nextCell = "due"
				} else {
					nextCell = row.Next.Local().Format("2006-01-02")
				}
			}
			fmt.Printf("%-34s  %-26s  %5s  %-8s  %8d  %4s  %s\n",
				row.ID, truncate(row.Title, 26), scoreCell, row.State, row.Sittings, accCell, nextCell)
		}
		return nil
	},
}
