package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/llm"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Build your learner profile",
	Long: `Asks a few questions about your background and goals, appends the
transcript to profile/learner-profile.md, and refreshes the cached profile
summary that personalizes tutorial drafts and quiz questions.

Answer in your own words; an empty answer skips the question.`,
	Args: cobra.NoArgs,
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().Int("questions", 5, "Number of interview questions")
}

func runInterview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("questions")
	if count < 1 || count > 20 {
		return fmt.Errorf("--questions must be 1-20 (got %d)", count)
	}

	v, err := openVault()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	events := st.EventRepo()

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		return err
	}
	svc := tutorgen.NewService(provider, tutorgen.DefaultConfig())

	profile, err := v.ReadProfile()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	var turns []tutorgen.InterviewTurn

	for i := 1; i <= count; i++ {
		question, err := svc.InterviewQuestion(ctx, tutorgen.InterviewInput{
			Profile: profile,
			Turns:   turns,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(question)
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		fmt.Println()
		if answer == "" {
			continue
		}
		turns = append(turns, tutorgen.InterviewTurn{Question: question, Answer: answer})
	}

	if len(turns) == 0 {
		fmt.Println("Nothing recorded.")
		return nil
	}

	var b strings.Builder
	for _, turn := range turns {
		fmt.Fprintf(&b, "**Q:** %s\n\n**A:** %s\n\n", turn.Question, turn.Answer)
	}
	if err := v.AppendInterview(vault.Today(), strings.TrimSpace(b.String())); err != nil {
		return err
	}
	for _, turn := range turns {
		_ = events.AppendQAEvent(ctx, store.QAEventData{
			Question: turn.Question,
			Answer:   turn.Answer,
			Source:   "interview",
		})
	}
	fmt.Printf("Recorded %d answers in %s\n", len(turns), v.ProfilePath())

	if err := refreshProfileSummary(cmd, v, st, svc); err != nil {
		fmt.Fprintln(os.Stderr, "Profile summary not refreshed:", err)
	}
	return nil
}

// refreshProfileSummary re-distills the learner summary from the full
// transcript plus quiz evidence, and snapshots it alongside the current
// review state.
func refreshProfileSummary(cmd *cobra.Command, v *vault.Vault, st *store.Store, svc *tutorgen.Service) error {
	ctx := cmd.Context()
	events := st.EventRepo()
	snapshots := st.SnapshotRepo()

	transcript, err := v.ReadProfile()
	if err != nil {
		return err
	}

	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return err
	}
	var reviews map[string]*store.ReviewStateData
	var previous *tutorgen.LearnerSummary
	if snap != nil && snap.Data.Version == store.SnapshotVersion {
		reviews = snap.Data.Reviews
		if l := snap.Data.Learner; l != nil {
			previous = &tutorgen.LearnerSummary{
				Summary:    l.Summary,
				Strengths:  l.Strengths,
				Weaknesses: l.Weaknesses,
				Patterns:   l.Patterns,
			}
		}
	}

	tutorials, err := v.List()
	if err != nil {
		return err
	}
	tutStats := make([]tutorgen.TutorialStat, 0, len(tutorials))
	for _, t := range tutorials {
		score, ok := t.Score()
		if !ok {
			score = -1
		}
		attempted, correct := 0, 0
		for _, rec := range t.Quizzes {
			attempted += len(rec.Questions)
			for _, q := range rec.Questions {
				if q.Correct {
					correct++
				}
			}
		}
		stat := tutorgen.TutorialStat{ID: t.ID, Score: score}
		if attempted > 0 {
			stat.Accuracy = float64(correct) / float64(attempted)
		}
		tutStats = append(tutStats, stat)
	}

	sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{})
	if err != nil {
		return err
	}

	summary, err := svc.ProfileSummary(ctx, tutorgen.ProfileInput{
		Transcript:   transcript,
		Previous:     previous,
		Stats:        tutStats,
		SessionCount: len(sessions),
	})
	if err != nil {
		return err
	}

	now := time.Now()
	seq, err := events.CurrentSequence(ctx)
	if err != nil {
		return err
	}
	if err := snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data: store.SnapshotData{
			Version: store.SnapshotVersion,
			Reviews: reviews,
			Learner: &store.LearnerSummaryData{
				Summary:    summary.Summary,
				Strengths:  summary.Strengths,
				Weaknesses: summary.Weaknesses,
				Patterns:   summary.Patterns,
				UpdatedAt:  now.Format(time.RFC3339),
			},
		},
	}); err != nil {
		return err
	}
	if err := snapshots.Prune(ctx, cfg.Review.KeepSnapshots); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Profile summary:")
	fmt.Println(" ", summary.Summary)
	if len(summary.Strengths) > 0 {
		fmt.Println("  Strengths: ", strings.Join(summary.Strengths, "; "))
	}
	if len(summary.Weaknesses) > 0 {
		fmt.Println("  Weaknesses:", strings.Join(summary.Weaknesses, "; "))
	}
	return nil
}
