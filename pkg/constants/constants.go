// Package constants provides shared constants used throughout the aiassisted
// codebase. This includes directory layout, marker filenames, file
// permissions, and timeouts that should be consistent across the application.
package constants

import "time"

// Directory layout constants define where content lives relative to a project
// root.
const (
	// SourceDir is the directory holding all aiassisted-managed content.
	SourceDir = ".aiassisted"

	// AgentsDir is the agent definitions directory, relative to the project root.
	AgentsDir = ".aiassisted/agents"

	// SkillsDir is the skills source directory, relative to the project root.
	SkillsDir = ".aiassisted/skills"

	// ClaudeAgentsDir is the compiled-agent output directory for Claude Code.
	ClaudeAgentsDir = ".claude/agents"

	// OpenCodeAgentsDir is the compiled-agent output directory for OpenCode.
	OpenCodeAgentsDir = ".opencode/agents"

	// ClaudeSkillsDir is the skills output directory for Claude Code.
	ClaudeSkillsDir = ".claude/skills"

	// OpenCodeSkillsDir is the skills output directory for OpenCode.
	OpenCodeSkillsDir = ".opencode/skills"
)

// Marker filename constants identify unit directories during discovery.
const (
	// AgentMarker is the manifest file identifying an agent source directory.
	AgentMarker = "AGENT.md"

	// SkillMarker is the manifest file identifying a skill source directory.
	SkillMarker = "SKILL.md"

	// ManifestFile is the cached remote-content manifest kept inside SourceDir.
	ManifestFile = "manifest.json"

	// CompiledExtension is the file extension of compiled agent outputs.
	CompiledExtension = ".md"
)

// Tool detection constants identify which AI tool a project is set up for.
const (
	// OpenCodeConfigFile marks a project configured for OpenCode.
	OpenCodeConfigFile = ".opencode.json"

	// ClaudeDir marks a project configured for Claude Code.
	ClaudeDir = ".claude"

	// ClaudeMemoryFile also marks a project configured for Claude Code.
	ClaudeMemoryFile = "CLAUDE.md"
)

// Timeout constants define various timeout durations used in the application.
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// content host.
	DefaultHTTPTimeout = 30 * time.Second

	// DownloadTimeout is the timeout for downloading a full manifest batch.
	DownloadTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x).
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0644
)

// Validation limit constants bound agent definition fields.
const (
	// MaxNameLength is the maximum length of a unit name.
	MaxNameLength = 64

	// MaxDescriptionLength is the maximum length of an agent description.
	MaxDescriptionLength = 1024
)

// Remote content constants locate the published .aiassisted tree.
const (
	// ContentBaseURL is the base URL for raw published content.
	ContentBaseURL = "https://raw.githubusercontent.com/rstlix0x0/aiassisted/main"

	// ManifestPath is the manifest location relative to the repository root.
	ManifestPath = ".aiassisted/manifest.json"
)
