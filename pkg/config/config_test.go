package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

func newTestStore() *Store {
	return NewStore(afero.NewMemMapFs(), "home/.aiassisted/config.yaml")
}

func TestLoadDefaults(t *testing.T) {
	settings, err := newTestStore().Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("default_tool: opencode\nverbosity: 2\nauto_update: false\n")
	require.NoError(t, afero.WriteFile(fs, "home/.aiassisted/config.yaml", content, 0o644))

	store := NewStore(fs, "home/.aiassisted/config.yaml")
	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "opencode", settings.DefaultTool)
	assert.Equal(t, 2, settings.Verbosity)
	assert.False(t, settings.AutoUpdate)
	// Unset keys fall back to defaults.
	assert.True(t, settings.PreferProject)
}

func TestLoadInvalidVerbosity(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.yaml", []byte("verbosity: 7\n"), 0o644))

	_, err := NewStore(fs, "config.yaml").Load()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSetAndGet(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Set("default_tool", "claude"))
	require.NoError(t, store.Set("verbosity", "0"))
	require.NoError(t, store.Set("auto_update", "false"))

	got, err := store.Get("default_tool")
	require.NoError(t, err)
	assert.Equal(t, "claude", got)

	got, err = store.Get("verbosity")
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = store.Get("auto_update")
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	got, err = store.Get("prefer_project")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestSetInvalidValues(t *testing.T) {
	store := newTestStore()

	assert.Error(t, store.Set("default_tool", "cursor"))
	assert.Error(t, store.Set("verbosity", "nope"))
	assert.Error(t, store.Set("verbosity", "5"))
	assert.Error(t, store.Set("auto_update", "maybe"))
	assert.Error(t, store.Set("unknown_key", "x"))
}

func TestGetUnknownKey(t *testing.T) {
	_, err := newTestStore().Get("unknown_key")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestReset(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Set("verbosity", "2"))
	require.NoError(t, store.Reset())

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestKeys(t *testing.T) {
	store := newTestStore()
	for _, key := range Keys() {
		_, err := store.Get(key)
		assert.NoError(t, err, key)
	}
}
