package agents

import (
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// frontMatter is the raw YAML shape of an AGENT.md header. Enum fields stay
// strings here so that invalid values produce a clear message instead of a
// decode failure deep inside the YAML library.
type frontMatter struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Capabilities string   `yaml:"capabilities"`
	ModelTier    string   `yaml:"model-tier"`
	Skills       []string `yaml:"skills"`
}

// Parse parses AGENT.md content: YAML front matter delimited by ---, then a
// markdown body that becomes the system prompt. Capabilities default to
// read-write and model tier to balanced when omitted.
func Parse(content []byte, sourcePath string) (*Agent, error) {
	parts := strings.SplitN(string(content), "---", 3)
	if len(parts) < 3 {
		return nil, errors.NewParseError("agent", sourcePath,
			"AGENT.md must have YAML front matter delimited by ---", nil)
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, errors.WrapParse("yaml", sourcePath, err)
	}

	spec := Spec{
		Name:         fm.Name,
		Description:  fm.Description,
		Capabilities: CapabilitiesReadWrite,
		ModelTier:    ModelTierBalanced,
		Skills:       fm.Skills,
	}

	if fm.Capabilities != "" {
		caps, err := ParseCapabilities(fm.Capabilities)
		if err != nil {
			return nil, err
		}
		spec.Capabilities = caps
	}
	if fm.ModelTier != "" {
		tier, err := ParseModelTier(fm.ModelTier)
		if err != nil {
			return nil, err
		}
		spec.ModelTier = tier
	}

	return &Agent{
		Spec:       spec,
		Prompt:     strings.TrimSpace(parts[2]),
		SourcePath: sourcePath,
	}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
