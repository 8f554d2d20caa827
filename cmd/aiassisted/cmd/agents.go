package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/internal/cmd/table"
	"github.com/rstlix0x0/aiassisted/pkg/agents"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
	"github.com/rstlix0x0/aiassisted/pkg/skills"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

var (
	agentsProject string
	agentsTool    string
	agentsDryRun  bool
	agentsForce   bool
)

// agentsCmd represents the agents command group.
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage agent definitions",
	Long: `Manage agent definitions: list the definitions under
.aiassisted/agents, and compile them into the detected tool's agents
directory.`,
	GroupID: "management",
}

// agentsListCmd represents the agents list command.
var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agent definitions",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		st := store.NewOS()
		detector := skills.NewDetector(st, agentsProject)

		units, err := agents.Discover(st, detector.AgentsSourceDir())
		if err != nil {
			return err
		}
		if len(units) == 0 {
			fmt.Println("No agent definitions found.")
			return nil
		}

		mat := agents.NewMaterializer(st, agents.PlatformClaudeCode, detector.SourceDir())
		rows := make([][]string, 0, len(units))
		for _, unit := range units {
			agent, err := mat.Load(unit.Location)
			if err != nil {
				rows = append(rows, []string{unit.Name, "-", "-", "-", "invalid: " + err.Error()})
				continue
			}
			skillList := strings.Join(agent.Spec.Skills, ", ")
			if skillList == "" {
				skillList = "-"
			}
			rows = append(rows, []string{
				agent.Spec.Name,
				agent.Spec.Capabilities.String(),
				agent.Spec.ModelTier.String(),
				skillList,
				agent.Spec.Description,
			})
		}

		return renderTable(table.Data{
			Headers: []string{"Name", "Capabilities", "Tier", "Skills", "Description"},
			Rows:    rows,
		})
	},
}

// agentsSetupCmd represents the agents setup command.
var agentsSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Compile agents into the tool's agents directory",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runAgentsSync(false)
	},
}

// agentsUpdateCmd represents the agents update command.
var agentsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Recompile agents whose definitions changed",
	Long: `Compare every compiled agent against its definition and rewrite what
differs. Locally modified outputs are kept unless --force is given; compiled
agents whose definition was deleted are reported but never removed.`,
	Example: `  # Preview what would change
  aiassisted agents update --dry-run

  # Overwrite local edits to compiled agents
  aiassisted agents update --force`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runAgentsSync(agentsForce)
	},
}

func runAgentsSync(force bool) error {
	st := store.NewOS()
	detector := skills.NewDetector(st, agentsProject)

	tool, err := resolveTool(st, agentsTool)
	if err != nil {
		return err
	}

	platform := agents.PlatformClaudeCode
	if detector.Resolve(tool) == skills.ToolOpenCode {
		platform = agents.PlatformOpenCode
	}

	source, err := agents.Discover(st, detector.AgentsSourceDir())
	if err != nil {
		return err
	}
	targetRoot := detector.AgentsDir(tool)
	target, err := agents.DiscoverCompiled(st, targetRoot)
	if err != nil {
		return err
	}

	run := &syncRun{
		engine:     reconcile.New(st, agents.NewMaterializer(st, platform, detector.SourceDir())),
		source:     source,
		target:     target,
		targetRoot: targetRoot,
		dryRun:     agentsDryRun,
		force:      force,
	}
	return run.execute()
}

func init() {
	agentsCmd.PersistentFlags().StringVarP(&agentsProject, "project", "p", ".",
		"Project directory")
	agentsCmd.PersistentFlags().StringVarP(&agentsTool, "tool", "t", "",
		"Target tool: auto, claude, or opencode")

	agentsSetupCmd.Flags().BoolVar(&agentsDryRun, "dry-run", false,
		"Show what would be written without writing")
	agentsUpdateCmd.Flags().BoolVar(&agentsDryRun, "dry-run", false,
		"Show what would be written without writing")
	agentsUpdateCmd.Flags().BoolVarP(&agentsForce, "force", "f", false,
		"Overwrite locally modified compiled agents")

	agentsCmd.AddCommand(agentsListCmd)
	agentsCmd.AddCommand(agentsSetupCmd)
	agentsCmd.AddCommand(agentsUpdateCmd)
	rootCmd.AddCommand(agentsCmd)
}
