package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/internal/cmd/table"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

var checkDir string

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Check for content updates without downloading",
	GroupID: "content",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st := store.NewOS()
		syncer := newSyncer(st)

		result, err := syncer.Check(cmd.Context(), checkDir)
		if err != nil {
			return err
		}

		fmt.Printf("Local: v%s, Remote: v%s\n", result.LocalVersion, result.RemoteVersion)

		if !result.Diff.HasChanges() {
			fmt.Println("No updates available. You're up to date!")
			return nil
		}

		fmt.Printf("Updates available: %d new, %d modified\n",
			len(result.Diff.New), len(result.Diff.Modified))

		if err := renderTable(table.ManifestDiffToTableData(result.Diff)); err != nil {
			return err
		}

		fmt.Println("Run 'aiassisted update' to download updates.")
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkDir, "dir", "d", ".",
		"Directory holding the content tree")
	rootCmd.AddCommand(checkCmd)
}
