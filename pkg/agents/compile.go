package agents

import (
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
)

// Platform is a compilation target for agent definitions.
type Platform string

// String returns the string representation of a Platform.
func (p Platform) String() string {
	return string(p)
}

// Supported compilation targets.
const (
	PlatformClaudeCode Platform = "claude-code"
	PlatformOpenCode   Platform = "opencode"
)

// Compiled is the output of compiling one agent for one platform: a single
// markdown file with YAML front matter followed by the system prompt.
type Compiled struct {
	Name     string
	Filename string
	Content  []byte
}

// Compile deterministically renders an agent for the given platform.
// Identical input always yields byte-identical output; field order in the
// front matter is fixed.
func Compile(agent *Agent, platform Platform) *Compiled {
	var fm []string
	switch platform {
	case PlatformOpenCode:
		fm = opencodeFrontMatter(&agent.Spec)
	default:
		fm = claudeFrontMatter(&agent.Spec)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(strings.Join(fm, "\n"))
	b.WriteString("\n---\n\n")
	b.WriteString(agent.Prompt)

	return &Compiled{
		Name:     agent.Spec.Name,
		Filename: agent.Spec.Name + constants.CompiledExtension,
		Content:  []byte(b.String()),
	}
}

func claudeFrontMatter(spec *Spec) []string {
	lines := []string{
		"name: " + spec.Name,
		"description: " + spec.Description,
	}

	if spec.Capabilities == CapabilitiesReadOnly {
		lines = append(lines, "disallowedTools: Write, Edit")
	}

	lines = append(lines, "model: "+claudeModel(spec.ModelTier))

	if len(spec.Skills) > 0 {
		lines = append(lines, "skills:")
		for _, skill := range spec.Skills {
			lines = append(lines, "  - "+skill)
		}
	}

	return lines
}

func opencodeFrontMatter(spec *Spec) []string {
	lines := []string{
		"description: " + spec.Description,
		"mode: subagent",
		"model: " + opencodeModel(spec.ModelTier),
	}

	// Skills are not part of the opencode format and are dropped here.
	if spec.Capabilities == CapabilitiesReadOnly {
		lines = append(lines,
			"tools:",
			"  write: false",
			"  edit: false")
	}

	return lines
}

func claudeModel(tier ModelTier) string {
	switch tier {
	case ModelTierFast:
		return "haiku"
	case ModelTierCapable:
		return "opus"
	default:
		return "sonnet"
	}
}

func opencodeModel(tier ModelTier) string {
	switch tier {
	case ModelTierFast:
		return "anthropic/claude-haiku-4-20250514"
	case ModelTierCapable:
		return "anthropic/claude-opus-4-20250514"
	default:
		return "anthropic/claude-sonnet-4-20250514"
	}
}
