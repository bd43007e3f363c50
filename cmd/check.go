package cmd

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/vault"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the vault",
	Long: `Scans every tutorial for structural problems: files that fail to parse,
dangling or self-referencing prerequisites, and malformed IDs. With --watch
the check re-runs whenever a markdown file changes, which catches editor
mistakes as they happen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		v, err := openVault()
		if err != nil {
			return err
		}

		issues, err := runCheck(v)
		if err != nil {
			return err
		}

		if !watch {
			if issues > 0 {
				return fmt.Errorf("%d issues found", issues)
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w, err := v.Watch(slog.Default(), 0)
		if err != nil {
			return err
		}
		defer w.Close()

		fmt.Printf("Watching %s (ctrl+c to stop)\n", v.Dir())
		for {
			select {
			case <-ctx.Done():
				fmt.Println()
				return nil
			case <-w.Events():
				fmt.Printf("\n%s vault changed\n", time.Now().Format("15:04:05"))
				if _, err := runCheck(v); err != nil {
					return err
				}
			}
		}
	},
}

func init() {
	checkCmd.Flags().Bool("watch", false, "Re-run on every vault change")
}

// runCheck prints the issue list and returns how many were found.
func runCheck(v *vault.Vault) (int, error) {
	issues, err := v.Check()
	if err != nil {
		return 0, err
	}
	ids, err := v.IDs()
	if err != nil {
		return 0, err
	}

	if len(issues) == 0 {
		fmt.Printf("Vault clean: %d tutorials\n", len(ids))
		return 0, nil
	}
	for _, issue := range issues {
		fmt.Println(issue)
	}
	fmt.Printf("%d issues across %d tutorials\n", len(issues), len(ids))
	return len(issues), nil
}
