// Package agents manages agent definitions: discovery of AGENT.md units,
// front matter parsing, validation, and compilation into platform-specific
// output files. An agent definition is a directory holding one AGENT.md with
// YAML front matter and a markdown system prompt body.
package agents

import (
	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Capabilities describes which tools an agent may use.
type Capabilities string

// String returns the string representation of a Capabilities.
func (c Capabilities) String() string {
	return string(c)
}

// Supported capability modes.
const (
	CapabilitiesReadOnly  Capabilities = "read-only"  // Agent can only read, never modify
	CapabilitiesReadWrite Capabilities = "read-write" // Agent can read and write (default)
)

// ParseCapabilities parses a front matter capabilities value. Both hyphenated
// and compact spellings are accepted, case-insensitively.
func ParseCapabilities(s string) (Capabilities, error) {
	switch normalize(s) {
	case "read-only", "readonly":
		return CapabilitiesReadOnly, nil
	case "read-write", "readwrite":
		return CapabilitiesReadWrite, nil
	default:
		return "", errors.NewValidationError("", "capabilities",
			"invalid capabilities: "+s+". Expected 'read-only' or 'read-write'")
	}
}

// ModelTier selects how capable a model the agent should run on. Each
// platform maps tiers to its own model identifiers at compile time.
type ModelTier string

// String returns the string representation of a ModelTier.
func (t ModelTier) String() string {
	return string(t)
}

// Supported model tiers.
const (
	ModelTierFast     ModelTier = "fast"     // Cheapest, lowest latency
	ModelTierBalanced ModelTier = "balanced" // Default
	ModelTierCapable  ModelTier = "capable"  // Most capable
)

// ParseModelTier parses a front matter model-tier value, case-insensitively.
func ParseModelTier(s string) (ModelTier, error) {
	switch normalize(s) {
	case "fast":
		return ModelTierFast, nil
	case "balanced":
		return ModelTierBalanced, nil
	case "capable":
		return ModelTierCapable, nil
	default:
		return "", errors.NewValidationError("", "model-tier",
			"invalid model-tier: "+s+". Expected 'fast', 'balanced', or 'capable'")
	}
}

// Spec is the declarative part of an agent definition, taken from the YAML
// front matter of its AGENT.md.
type Spec struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Capabilities Capabilities `yaml:"capabilities"`
	ModelTier    ModelTier    `yaml:"model-tier"`
	Skills       []string     `yaml:"skills"`
}

// Agent is a fully parsed agent definition: spec, system prompt body, and
// the AGENT.md path it came from.
type Agent struct {
	Spec       Spec
	Prompt     string
	SourcePath string
}

// Discover enumerates agent definition units under root: subdirectories
// containing an AGENT.md marker.
func Discover(st *store.Store, root string) ([]reconcile.Unit, error) {
	return reconcile.DiscoverDirs(st, root, constants.AgentMarker)
}

// DiscoverCompiled enumerates previously compiled agents under a platform's
// agents directory: flat .md files named after the agent.
func DiscoverCompiled(st *store.Store, root string) ([]reconcile.Unit, error) {
	return reconcile.DiscoverFiles(st, root, constants.CompiledExtension)
}
