package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/store"
)

var (
	updateDir   string
	updateForce bool
)

// updateCmd represents the update command.
var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update the .aiassisted content tree",
	Long:    `Download files whose checksum changed since the last install or update.`,
	Example: `  # Update changed files only
  aiassisted update

  # Re-download everything
  aiassisted update --force`,
	GroupID: "content",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st := store.NewOS()
		syncer := newSyncer(st)

		result, err := syncer.Update(cmd.Context(), updateDir, updateForce)
		if err != nil {
			return err
		}

		if len(result.Downloaded) == 0 && len(result.Failed) == 0 {
			fmt.Println("Already up to date.")
			return nil
		}

		fmt.Printf("Updated to version %s: %d file(s) downloaded\n",
			result.Version, len(result.Downloaded))

		if len(result.Failed) > 0 {
			for _, ferr := range result.Failed {
				fmt.Printf("  failed: %v\n", ferr)
			}
			return fmt.Errorf("%d file(s) failed to download", len(result.Failed))
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateDir, "dir", "d", ".",
		"Directory holding the content tree")
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false,
		"Re-download every file regardless of checksums")
	rootCmd.AddCommand(updateCmd)
}
