package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

func TestParseValidAgent(t *testing.T) {
	content := []byte(`---
name: test-agent
description: A test agent for testing
capabilities: read-only
model-tier: fast
skills:
  - review-codes
  - doc-code
---

You are a test agent.

## Instructions

Do testing things.
`)

	agent, err := Parse(content, "/project/.aiassisted/agents/test-agent/AGENT.md")
	require.NoError(t, err)

	assert.Equal(t, "test-agent", agent.Spec.Name)
	assert.Equal(t, "A test agent for testing", agent.Spec.Description)
	assert.Equal(t, CapabilitiesReadOnly, agent.Spec.Capabilities)
	assert.Equal(t, ModelTierFast, agent.Spec.ModelTier)
	assert.Equal(t, []string{"review-codes", "doc-code"}, agent.Spec.Skills)
	assert.Contains(t, agent.Prompt, "You are a test agent.")
	assert.Contains(t, agent.Prompt, "Do testing things.")
}

func TestParseDefaults(t *testing.T) {
	content := []byte(`---
name: minimal-agent
description: Minimal agent
---

System prompt here.
`)

	agent, err := Parse(content, "/test/AGENT.md")
	require.NoError(t, err)

	assert.Equal(t, CapabilitiesReadWrite, agent.Spec.Capabilities)
	assert.Equal(t, ModelTierBalanced, agent.Spec.ModelTier)
	assert.Empty(t, agent.Spec.Skills)
	assert.Equal(t, "System prompt here.", agent.Prompt)
}

func TestParseMissingFrontMatter(t *testing.T) {
	_, err := Parse([]byte("Just markdown without front matter"), "/test/AGENT.md")
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseInvalidYAML(t *testing.T) {
	content := []byte(`---
name: [invalid yaml
description: test
---

Body
`)

	_, err := Parse(content, "/test/AGENT.md")
	assert.Error(t, err)
}

func TestParseInvalidEnums(t *testing.T) {
	t.Run("capabilities", func(t *testing.T) {
		content := []byte("---\nname: test\ndescription: test\ncapabilities: invalid\n---\n\nBody\n")
		_, err := Parse(content, "/test/AGENT.md")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("model tier", func(t *testing.T) {
		content := []byte("---\nname: test\ndescription: test\nmodel-tier: ultra\n---\n\nBody\n")
		_, err := Parse(content, "/test/AGENT.md")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestParseCapabilitiesVariants(t *testing.T) {
	tests := []struct {
		input string
		want  Capabilities
	}{
		{"read-only", CapabilitiesReadOnly},
		{"readonly", CapabilitiesReadOnly},
		{"READ-ONLY", CapabilitiesReadOnly},
		{"read-write", CapabilitiesReadWrite},
		{"readwrite", CapabilitiesReadWrite},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCapabilities(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseModelTierVariants(t *testing.T) {
	tests := []struct {
		input string
		want  ModelTier
	}{
		{"fast", ModelTierFast},
		{"balanced", ModelTierBalanced},
		{"capable", ModelTierCapable},
		{"Capable", ModelTierCapable},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModelTier(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
