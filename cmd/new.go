package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/llm"
	"github.com/abhisek/railz/internal/tutorgen"
	"github.com/abhisek/railz/internal/vault"
)

var newCmd = &cobra.Command{
	Use:   "new <topic>",
	Short: "Create a tutorial",
	Long: `Drafts a tutorial on the topic through the configured LLM provider, grounded
in the learner profile and aware of the tutorials already in the vault so
prerequisites land on real IDs. Use --blank to scaffold the file without a
provider and write the body yourself.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().Bool("blank", false, "Scaffold an empty tutorial instead of drafting one")
	newCmd.Flags().String("repo", "", "Source repository the tutorial draws from (e.g. rails/rails)")
	newCmd.Flags().StringSlice("concepts", nil, "Concept tags (comma separated or repeated)")
	newCmd.Flags().StringSlice("prereq", nil, "Prerequisite tutorial IDs (must exist, overrides drafted ones)")
	newCmd.Flags().String("description", "", "One-line description (used with --blank)")
}

func runNew(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(args[0])
	blank, _ := cmd.Flags().GetBool("blank")
	repo, _ := cmd.Flags().GetString("repo")
	concepts, _ := cmd.Flags().GetStringSlice("concepts")
	prereqs, _ := cmd.Flags().GetStringSlice("prereq")
	description, _ := cmd.Flags().GetString("description")

	v, err := openVault()
	if err != nil {
		return err
	}

	if blank {
		t, err := v.Create(vault.Draft{
			Topic:         topic,
			Concepts:      concepts,
			SourceRepo:    repo,
			Description:   description,
			Prerequisites: prereqs,
			Body:          "# " + topic + "\n",
		})
		if err != nil {
			return err
		}
		fmt.Println("Created", t.ID)
		fmt.Println(t.Path)
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("%w (or pass --blank to scaffold without one)", err)
	}
	svc := tutorgen.NewService(provider, tutorgen.DefaultConfig())

	profile, err := v.ReadProfile()
	if err != nil {
		return err
	}
	tutorials, err := v.List()
	if err != nil {
		return err
	}
	existing := make([]tutorgen.ExistingTutorial, 0, len(tutorials))
	for _, t := range tutorials {
		existing = append(existing, tutorgen.ExistingTutorial{ID: t.ID, Description: t.Description})
	}

	if repo != "" {
		fmt.Printf("Drafting %q from %s...\n", topic, repo)
	} else {
		fmt.Printf("Drafting %q...\n", topic)
	}

	draft, err := svc.DraftTutorial(ctx, tutorgen.DraftInput{
		Topic:      topic,
		Concepts:   concepts,
		SourceRepo: repo,
		Profile:    profile,
		Existing:   existing,
	})
	if err != nil {
		return err
	}

	d := draft.Draft(topic, repo)
	if len(prereqs) > 0 {
		d.Prerequisites = prereqs
	}

	t, err := v.Create(d)
	if err != nil {
		return err
	}

	fmt.Println("Created", t.ID)
	fmt.Println(t.Path)
	if t.Description != "" {
		fmt.Println(t.Description)
	}
	if len(t.Prerequisites) > 0 {
		fmt.Println("Prerequisites:", strings.Join(t.Prerequisites, ", "))
	}
	return nil
}
