package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/app"
	"github.com/abhisek/railz/internal/llm"
	"github.com/abhisek/railz/internal/quiz"
	"github.com/abhisek/railz/internal/review"
	"github.com/abhisek/railz/internal/screens/session"
	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [tutorial-id]",
	Short: "Start a quiz session",
	Long: `Runs an interactive quiz session. Without an argument the planner picks
tutorials: due reviews first, then the prerequisite frontier, then the
lowest scores. Pass a tutorial ID to quiz just that one.

Without an LLM provider the session re-asks questions from the tutorial's
own quiz history and Q&A log, self-graded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		v, err := openVault()
		if err != nil {
			return err
		}

		tutorialID := ""
		if len(args) == 1 {
			tutorialID = args[0]
			if !v.Exists(tutorialID) {
				return fmt.Errorf("tutorial %q: %w", tutorialID, vault.ErrNotFound)
			}
		}

		if err := review.SetBaseIntervals(cfg.Review.Intervals); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := v.ReadProfile()
		if err != nil {
			return err
		}

		// The session works offline: archived questions, self-graded.
		var source quiz.QuestionSource = quiz.ArchiveSource{}
		var grader session.Grader
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Re-asking archived questions instead.")
		} else {
			svc := tutorgen.NewService(provider, tutorgen.DefaultConfig())
			source = &quiz.LLMSource{Service: svc, Profile: profile}
			grader = svc
		}

		planner := quiz.NewPlanner(cfg.Quiz.QuestionsPerTutorial, cfg.Quiz.TutorialsPerSession)
		root := session.New(v, st.EventRepo(), st.SnapshotRepo(), source, grader, planner, tutorialID, cfg.Review.KeepSnapshots)
		return app.Run(root)
	},
}
