package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/store"
)

var installDir string

// installCmd represents the install command.
var installCmd = &cobra.Command{
	Use:     "install",
	Short:   "Install the .aiassisted content tree",
	Long:    `Download the published .aiassisted content tree into the target directory.`,
	Example: `  # Install into the current project
  aiassisted install

  # Install into another directory
  aiassisted install --dir ~/work/service`,
	GroupID: "content",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st := store.NewOS()
		syncer := newSyncer(st)

		result, err := syncer.Install(cmd.Context(), installDir)
		if err != nil {
			return err
		}

		fmt.Printf("Installed version %s: %d file(s) downloaded\n",
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
	installCmd.Flags().StringVarP(&installDir, "dir", "d", ".",
		"Target directory for the content tree")
	rootCmd.AddCommand(installCmd)
}
