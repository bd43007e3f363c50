package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/graph"
)

var showCmd = &cobra.Command{
	Use:   "show <tutorial-id>",
	Short: "Show a tutorial's metadata and history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		v, err := openVault()
		if err != nil {
			return err
		}
		t, err := v.Get(id)
		if err != nil {
			return err
		}

		fmt.Println(t.Title())
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("ID:           %s\n", t.ID)
		fmt.Printf("File:         %s\n", t.Path)
		if t.Description != "" {
			fmt.Printf("Description:  %s\n", t.Description)
		}
		if t.SourceRepo != "" {
			fmt.Printf("Source repo:  %s\n", t.SourceRepo)
		}
		if len(t.Concepts) > 0 {
			fmt.Printf("Concepts:     %s\n", strings.Join(t.Concepts, ", "))
		}
		if score, ok := t.Score(); ok {
			fmt.Printf("Score:        %d/10\n", score)
		} else {
			fmt.Printf("Score:        not yet quizzed\n")
		}
		fmt.Printf("Created:      %s\n", t.Created)
		fmt.Printf("Last updated: %s\n", t.LastUpdated)
		if t.LastQuizzed != nil {
			fmt.Printf("Last quizzed: %s\n", *t.LastQuizzed)
		}

		tutorials, err := v.List()
		if err != nil {
			return err
		}
		g := graph.Build(tutorials)

		if len(t.Prerequisites) > 0 {
			fmt.Println()
			fmt.Println("Reading order:")
			chain, err := g.Chain(id)
			if err != nil {
				fmt.Printf("  (cannot resolve: %v)\n", err)
			} else {
				for i, cid := range chain {
					marker := "  "
					if cid == id {
						marker = "> "
					}
					fmt.Printf("%s%d. %s\n", marker, i+1, cid)
				}
			}
		}
		if deps := g.Dependents(id); len(deps) > 0 {
			fmt.Println()
			fmt.Printf("Unlocks: %s\n", strings.Join(deps, ", "))
		}

		fmt.Println()
		fmt.Printf("Q&A entries:   %d\n", len(t.QA))
		fmt.Printf("Quiz sittings: %d\n", len(t.Quizzes))
		for _, rec := range t.Quizzes {
			correct := 0
			for _, q := range rec.Questions {
				if q.Correct {
					correct++
				}
			}
			fmt.Printf("  %s  score %2d  %d/%d correct\n",
				rec.Date, rec.Score, correct, len(rec.Questions))
		}
		return nil
	},
}
