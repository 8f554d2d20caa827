package agents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAgent(caps Capabilities, tier ModelTier, skills []string) *Agent {
	return &Agent{
		Spec: Spec{
			Name:         "test-agent",
			Description:  "A test agent",
			Capabilities: caps,
			ModelTier:    tier,
			Skills:       skills,
		},
		Prompt:     "You are a test agent.",
		SourcePath: "/test/AGENT.md",
	}
}

func TestCompileClaudeCode(t *testing.T) {
	t.Run("read-only fast", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadOnly, ModelTierFast, nil), PlatformClaudeCode)

		assert.Equal(t, "test-agent", compiled.Name)
		assert.Equal(t, "test-agent.md", compiled.Filename)

		content := string(compiled.Content)
		assert.Contains(t, content, "model: haiku")
		assert.Contains(t, content, "disallowedTools: Write, Edit")
		assert.Contains(t, content, "You are a test agent.")
	})

	t.Run("read-write omits tool restrictions", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadWrite, ModelTierBalanced, nil), PlatformClaudeCode)

		content := string(compiled.Content)
		assert.Contains(t, content, "model: sonnet")
		assert.NotContains(t, content, "disallowedTools")
	})

	t.Run("capable maps to opus", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadWrite, ModelTierCapable, nil), PlatformClaudeCode)
		assert.Contains(t, string(compiled.Content), "model: opus")
	})

	t.Run("skills listed", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadWrite, ModelTierBalanced,
			[]string{"review-codes", "doc-code"}), PlatformClaudeCode)

		content := string(compiled.Content)
		assert.Contains(t, content, "skills:\n  - review-codes\n  - doc-code")
	})

	t.Run("front matter structure", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadOnly, ModelTierFast, []string{"skill1"}), PlatformClaudeCode)

		content := string(compiled.Content)
		assert.True(t, strings.HasPrefix(content, "---\n"))
		assert.Contains(t, content, "\n---\n\n")
		assert.Contains(t, content, "name: test-agent")
		assert.Contains(t, content, "description: A test agent")
	})
}

func TestCompileOpenCode(t *testing.T) {
	t.Run("read-only fast", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadOnly, ModelTierFast, nil), PlatformOpenCode)

		assert.Equal(t, "test-agent.md", compiled.Filename)

		content := string(compiled.Content)
		assert.Contains(t, content, "mode: subagent")
		assert.Contains(t, content, "model: anthropic/claude-haiku-4-20250514")
		assert.Contains(t, content, "tools:\n  write: false\n  edit: false")
	})

	t.Run("read-write omits tools block", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadWrite, ModelTierBalanced, nil), PlatformOpenCode)

		content := string(compiled.Content)
		assert.Contains(t, content, "anthropic/claude-sonnet-4-20250514")
		assert.NotContains(t, content, "tools:")
	})

	t.Run("capable maps to opus", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadWrite, ModelTierCapable, nil), PlatformOpenCode)
		assert.Contains(t, string(compiled.Content), "anthropic/claude-opus-4-20250514")
	})

	t.Run("skills dropped", func(t *testing.T) {
		compiled := Compile(makeAgent(CapabilitiesReadWrite, ModelTierBalanced, []string{"some-skill"}), PlatformOpenCode)

		content := string(compiled.Content)
		assert.NotContains(t, content, "skills")
		assert.NotContains(t, content, "some-skill")
		assert.NotContains(t, content, "name: test-agent")
	})
}

func TestCompilePreservesPrompt(t *testing.T) {
	agent := makeAgent(CapabilitiesReadWrite, ModelTierBalanced, nil)
	agent.Prompt = "Custom system prompt\n\nWith multiple lines."

	for _, platform := range []Platform{PlatformClaudeCode, PlatformOpenCode} {
		compiled := Compile(agent, platform)
		assert.Contains(t, string(compiled.Content), "Custom system prompt\n\nWith multiple lines.")
	}
}

func TestCompileDeterministic(t *testing.T) {
	agent := makeAgent(CapabilitiesReadOnly, ModelTierCapable, []string{"a", "b"})

	first := Compile(agent, PlatformClaudeCode)
	second := Compile(agent, PlatformClaudeCode)
	require.Equal(t, first.Content, second.Content)
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "claude-code", PlatformClaudeCode.String())
	assert.Equal(t, "opencode", PlatformOpenCode.String())
}
