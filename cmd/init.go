package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/railz/internal/vault"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create the vault skeleton",
	Long: `Creates the vault layout: tutorials/, profile/, and an index README
describing the file format. Existing files are left alone, so init is safe
to re-run. Without an argument the configured vault directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dir string
		if len(args) == 1 {
			dir = args[0]
		} else {
			var err error
			dir, err = cfg.VaultDir()
			if err != nil {
				return err
			}
		}

		v, err := vault.Init(dir)
		if err != nil {
			return err
		}

		fmt.Println("Vault ready at", v.Dir())
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  railz interview       tell the tutor about yourself")
		fmt.Println("  railz new <topic>     draft your first tutorial")
		fmt.Println("  railz quiz            start a quiz session")
		return nil
	},
}
