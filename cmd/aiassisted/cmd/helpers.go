package cmd

import (
	"os"

	"github.com/rstlix0x0/aiassisted/internal/cmd/table"
	"github.com/rstlix0x0/aiassisted/internal/transport"
	"github.com/rstlix0x0/aiassisted/pkg/config"
	"github.com/rstlix0x0/aiassisted/pkg/content"
	"github.com/rstlix0x0/aiassisted/pkg/skills"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// newSyncer builds the remote content syncer with the OS store.
func newSyncer(st *store.Store) *content.Syncer {
	return content.NewSyncer(st, transport.New())
}

// configStore opens the persistent settings store at its default location.
func configStore(st *store.Store) (*config.Store, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.NewStore(st.Fs(), path), nil
}

// resolveTool picks the tool for a command: an explicit --tool flag wins,
// otherwise the configured default applies. ToolAuto defers to project
// marker detection downstream.
func resolveTool(st *store.Store, flag string) (skills.Tool, error) {
	if flag != "" {
		return skills.ParseTool(flag)
	}

	cfg, err := configStore(st)
	if err != nil {
		return skills.ToolAuto, nil
	}
	settings, err := cfg.Load()
	if err != nil {
		return skills.ToolAuto, nil
	}
	return skills.ParseTool(settings.DefaultTool)
}

// renderTable prints tabular data to stdout unless quiet output is on.
func renderTable(data table.Data) error {
	if globalFlags != nil && globalFlags.Quiet {
		return nil
	}
	if len(data.Rows) == 0 {
		return nil
	}
	return table.Render(os.Stdout, data)
}
