// Package skills manages skill bundles: multi-file directories marked by a
// SKILL.md that are mirrored verbatim into the detected tool's skills
// directory. It also owns tool detection, since the target layout depends on
// which assistant a project uses.
package skills

import (
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Tool identifies which AI assistant a project is set up for.
type Tool string

// String returns the string representation of a Tool.
func (t Tool) String() string {
	return string(t)
}

// Supported tools. ToolAuto defers the choice to marker-file detection.
const (
	ToolAuto     Tool = "auto"
	ToolClaude   Tool = "claude"
	ToolOpenCode Tool = "opencode"
)

// ParseTool parses a tool name given on the command line.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "", "auto":
		return ToolAuto, nil
	case "claude":
		return ToolClaude, nil
	case "opencode":
		return ToolOpenCode, nil
	default:
		return "", errors.NewValidationError("", "tool",
			"invalid tool: "+s+". Expected 'auto', 'claude', or 'opencode'")
	}
}

// Detector resolves which tool a project uses and where its content lives.
type Detector struct {
	store   *store.Store
	project string
}

// NewDetector creates a detector rooted at the project directory.
func NewDetector(st *store.Store, project string) *Detector {
	return &Detector{store: st, project: project}
}

// Detect inspects the project's marker files: an .opencode.json selects
// opencode, a .claude directory or CLAUDE.md selects claude. Claude is the
// default when nothing matches.
func (d *Detector) Detect() Tool {
	if d.store.Exists(filepath.Join(d.project, constants.OpenCodeConfigFile)) {
		return ToolOpenCode
	}
	if d.store.Exists(filepath.Join(d.project, constants.ClaudeDir)) ||
		d.store.Exists(filepath.Join(d.project, constants.ClaudeMemoryFile)) {
		return ToolClaude
	}
	return ToolClaude
}

// Resolve maps ToolAuto to the detected tool and passes others through.
func (d *Detector) Resolve(tool Tool) Tool {
	if tool == ToolAuto {
		return d.Detect()
	}
	return tool
}

// SkillsDir returns the skills output directory for a tool.
func (d *Detector) SkillsDir(tool Tool) string {
	if d.Resolve(tool) == ToolOpenCode {
		return filepath.Join(d.project, constants.OpenCodeSkillsDir)
	}
	return filepath.Join(d.project, constants.ClaudeSkillsDir)
}

// AgentsDir returns the compiled agents output directory for a tool.
func (d *Detector) AgentsDir(tool Tool) string {
	if d.Resolve(tool) == ToolOpenCode {
		return filepath.Join(d.project, constants.OpenCodeAgentsDir)
	}
	return filepath.Join(d.project, constants.ClaudeAgentsDir)
}

// SourceDir returns the managed skills source directory.
func (d *Detector) SourceDir() string {
	return filepath.Join(d.project, constants.SkillsDir)
}

// AgentsSourceDir returns the managed agent definitions source directory.
func (d *Detector) AgentsSourceDir() string {
	return filepath.Join(d.project, constants.AgentsDir)
}

// Discover enumerates skill bundles under root: subdirectories containing a
// SKILL.md marker.
func Discover(st *store.Store, root string) ([]reconcile.Unit, error) {
	return reconcile.DiscoverDirs(st, root, constants.SkillMarker)
}

// DiscoverInstalled enumerates skill bundles previously mirrored into a
// target skills directory. No marker is required: a partially written
// bundle still counts as present so reconciliation can repair it.
func DiscoverInstalled(st *store.Store, root string) ([]reconcile.Unit, error) {
	return reconcile.DiscoverDirs(st, root, "")
}
