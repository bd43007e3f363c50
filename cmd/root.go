package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/config"
	"github.com/abhisek/railz/internal/logging"
	"github.com/abhisek/railz/internal/store"
	"github.com/abhisek/railz/internal/vault"
)

var (
	// cfg is loaded once per invocation, before any RunE fires.
	cfg      *config.Config
	closeLog func()
)

var rootCmd = &cobra.Command{
	Use:   "railz",
	Short: "AI tutor for framework internals",
	Long: `Railz keeps a markdown vault of tutorials about how frameworks work under
the hood, answers your questions about them, and quizzes you with spaced
repetition so the understanding scores in the front matter stay honest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("vault"); dir != "" {
			c.Vault.Dir = dir
		}
		if path, _ := cmd.Flags().GetString("db"); path != "" {
			c.Database.Path = path
		}
		cfg = c

		_, closer, err := logging.Setup(c.Log, ownsTerminal(cmd))
		if err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
		closeLog = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLog != nil {
			closeLog()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("vault", "", "Vault directory (overrides RAILZ_VAULT)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides RAILZ_DB)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// ownsTerminal reports whether the command draws or prompts on the
// terminal, in which case stderr logging would corrupt the display.
func ownsTerminal(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "quiz", "interview":
		return true
	}
	return false
}

// openVault opens the configured vault.
func openVault() (*vault.Vault, error) {
	dir, err := cfg.VaultDir()
	if err != nil {
		return nil, err
	}
	return vault.Open(dir)
}

// openStore opens the event database, creating it on first use.
func openStore() (*store.Store, error) {
	path, err := cfg.DBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
