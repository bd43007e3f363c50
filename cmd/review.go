package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show tutorials due for review",
	Long: `Runs the decay check and lists what the next quiz session will review:
due tutorials ordered most overdue first, with rusty ones flagged.`,
	Args: cobra.NoArgs,
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
		snapshots := st.SnapshotRepo()

		snap, err := snapshots.Latest(ctx)
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
		now := time.Now()

		transitions := sched.RunDecayCheck(ctx, now, tutorials)
		for _, tr := range transitions {
			fmt.Printf("%s went rusty (overdue past its grace period)\n", tr.TutorialID)
		}
		if len(transitions) > 0 {
			fmt.Println()
		}

		byID := make(map[string]*vault.Tutorial, len(tutorials))
		for _, t := range tutorials {
			byID[t.ID] = t
		}

		due := sched.DueTutorials(now, tutorials)
		if len(due) == 0 {
			fmt.Println("Nothing due for review.")
			fmt.Println("Run 'railz quiz' to push the frontier instead.")
		} else {
			fmt.Printf("%-34s  %-30s  %8s  %s\n", "ID", "Title", "Overdue", "State")
			fmt.Println(strings.Repeat("─", 84))
			for _, id := range due {
				rs := sched.Get(id)
				if rs == nil {
					continue
				}
				state := "solid"
				if rs.Rusty {
					state = "rusty"
				}
				title := ""
				if t := byID[id]; t != nil {
					title = t.Title()
				}
				fmt.Printf("%-34s  %-30s  %7.1fd  %s\n",
					id, truncate(title, 30), rs.OverdueDays(now), state)
			}
			fmt.Printf("\n%d due. Run 'railz quiz' to review.\n", len(due))
		}

		// The decay events are already in the log; the snapshot carries the
		// rusty flags forward so the next run does not re-append them.
		if len(transitions) > 0 {
			seq, err := events.CurrentSequence(ctx)
			if err != nil {
				return err
			}
			if err := snapshots.Save(ctx, &store.Snapshot{
				Sequence:  seq,
				Timestamp: now,
				Data: store.SnapshotData{
					Version: store.SnapshotVersion,
					Reviews: sched.SnapshotData(),
					Learner: learner,
				},
			}); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}
			if err := snapshots.Prune(ctx, cfg.Review.KeepSnapshots); err != nil {
				return fmt.Errorf("pruning snapshots: %w", err)
			}
		}
		return nil
	},
}
