package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/internal/cmd/table"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
	"github.com/rstlix0x0/aiassisted/pkg/skills"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

var (
	skillsProject string
	skillsTool    string
	skillsDryRun  bool
	skillsForce   bool
)

// skillsCmd represents the skills command group.
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage skill bundles",
	Long: `Manage skill bundles: list the bundles under .aiassisted/skills, and
mirror them into the detected tool's skills directory.`,
	GroupID: "management",
}

// skillsListCmd represents the skills list command.
var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skill bundles",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		st := store.NewOS()
		detector := skills.NewDetector(st, skillsProject)

		units, err := skills.Discover(st, detector.SourceDir())
		if err != nil {
			return err
		}
		if len(units) == 0 {
			fmt.Println("No skill bundles found.")
			return nil
		}

		rows := make([][]string, 0, len(units))
		for _, unit := range units {
			files, err := st.WalkFiles(unit.Location)
			if err != nil {
				return err
			}
			rows = append(rows, []string{unit.Name, fmt.Sprintf("%d", len(files)), unit.Location})
		}

		return renderTable(table.Data{
			Headers: []string{"Name", "Files", "Location"},
			Rows:    rows,
		})
	},
}

// skillsSetupCmd represents the skills setup command.
var skillsSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Mirror skill bundles into the tool's skills directory",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSkillsSync(false)
	},
}

// skillsUpdateCmd represents the skills update command.
var skillsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-mirror skill bundles whose source changed",
	Long: `Compare every mirrored bundle file against its source and rewrite what
differs. Locally modified files are kept unless --force is given; bundles
whose source was deleted are reported but never removed.`,
	Example: `  # Preview what would change
  aiassisted skills update --dry-run

  # Mirror into a specific tool's directory
  aiassisted skills update --tool opencode`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSkillsSync(skillsForce)
	},
}

func runSkillsSync(force bool) error {
	st := store.NewOS()
	detector := skills.NewDetector(st, skillsProject)

	tool, err := resolveTool(st, skillsTool)
	if err != nil {
		return err
	}

	source, err := skills.Discover(st, detector.SourceDir())
	if err != nil {
		return err
	}
	targetRoot := detector.SkillsDir(tool)
	target, err := skills.DiscoverInstalled(st, targetRoot)
	if err != nil {
		return err
	}

	run := &syncRun{
		engine:     reconcile.New(st, skills.NewMaterializer(st)),
		source:     source,
		target:     target,
		targetRoot: targetRoot,
		dryRun:     skillsDryRun,
		force:      force,
	}
	return run.execute()
}

func init() {
	skillsCmd.PersistentFlags().StringVarP(&skillsProject, "project", "p", ".",
		"Project directory")
	skillsCmd.PersistentFlags().StringVarP(&skillsTool, "tool", "t", "",
		"Target tool: auto, claude, or opencode")

	skillsSetupCmd.Flags().BoolVar(&skillsDryRun, "dry-run", false,
		"Show what would be written without writing")
	skillsUpdateCmd.Flags().BoolVar(&skillsDryRun, "dry-run", false,
		"Show what would be written without writing")
	skillsUpdateCmd.Flags().BoolVarP(&skillsForce, "force", "f", false,
		"Overwrite locally modified mirrored files")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsSetupCmd)
	skillsCmd.AddCommand(skillsUpdateCmd)
	rootCmd.AddCommand(skillsCmd)
}
