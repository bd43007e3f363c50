package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/llm"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/tutorgen"
)

var askCmd = &cobra.Command{
	Use:   "ask <tutorial-id> <question>...",
	Short: "Ask a question about a tutorial",
	Long: `Answers a question grounded in the tutorial body and appends the exchange
to the tutorial's Q&A log. Asking the same question twice returns a fresh
answer but does not duplicate the log entry.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		question := strings.TrimSpace(strings.Join(args[1:], " "))
		if question == "" {
			return fmt.Errorf("empty question")
		}

		v, err := openVault()
		if err != nil {
			return err
		}
		t, err := v.Get(id)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return err
		}
		svc := tutorgen.NewService(provider, tutorgen.DefaultConfig())

		profile, err := v.ReadProfile()
		if err != nil {
			return err
		}

		answer, err := svc.AnswerQuestion(ctx, t, question, profile)
		if err != nil {
			return err
		}

		fmt.Println(answer)

		if _, added, err := v.AppendQA(id, question, answer); err != nil {
			return fmt.Errorf("append Q&A: %w", err)
		} else if !added {
			fmt.Fprintln(os.Stderr, "(question already in the Q&A log, not appended again)")
		}

		_ = st.EventRepo().AppendQAEvent(ctx, store.QAEventData{
			TutorialID: id,
			Question:   question,
			Answer:     answer,
			Source:     "ask",
		})
		return nil
	},
}
