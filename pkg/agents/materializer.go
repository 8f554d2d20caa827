package agents

import (
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Materializer compiles agent definition units into their single-file
// platform output. It reads the unit's AGENT.md, parses and validates it,
// and renders the compiled form for one platform.
type Materializer struct {
	store     *store.Store
	platform  Platform
	skillsDir string
}

// NewMaterializer creates a compiling materializer targeting the given
// platform. skillsDir is the skills source root used to resolve skill
// references during validation.
func NewMaterializer(st *store.Store, platform Platform, skillsDir string) *Materializer {
	return &Materializer{store: st, platform: platform, skillsDir: skillsDir}
}

// Materialize implements reconcile.Materializer. The returned path is the
// compiled filename, relative to the platform's agents directory.
func (m *Materializer) Materialize(source reconcile.Unit) ([]reconcile.File, error) {
	agent, err := m.Load(source.Location)
	if err != nil {
		return nil, err
	}

	compiled := Compile(agent, m.platform)
	return []reconcile.File{{Path: compiled.Filename, Content: compiled.Content}}, nil
}

// Load reads, parses, and validates the agent definition rooted at dir.
func (m *Materializer) Load(dir string) (*Agent, error) {
	path := filepath.Join(dir, constants.AgentMarker)
	content, err := m.store.Read(path)
	if err != nil {
		return nil, err
	}

	agent, err := Parse(content, path)
	if err != nil {
		return nil, err
	}
	if err := Validate(m.store, agent, m.skillsDir); err != nil {
		return nil, err
	}
	return agent, nil
}
