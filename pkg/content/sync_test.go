package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fingerprint"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

const testBaseURL = "https://content.test"

// fakeGetter serves canned responses keyed by URL.
type fakeGetter struct {
	responses map[string][]byte
	requests  []string
}

func (g *fakeGetter) Get(_ context.Context, url string) ([]byte, error) {
	g.requests = append(g.requests, url)
	body, ok := g.responses[url]
	if !ok {
		return nil, errors.NewNetworkError(url, 404, nil)
	}
	return body, nil
}

// serveManifest registers a manifest plus its content files on the getter.
func serveManifest(t *testing.T, g *fakeGetter, version string, files map[string][]byte) {
	t.Helper()

	m := Manifest{Version: version}
	for path, content := range files {
		m.Files = append(m.Files, Entry{Path: path, Checksum: string(fingerprint.New(content))})
		g.responses[testBaseURL+"/.aiassisted/"+path] = content
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	g.responses[testBaseURL+"/.aiassisted/manifest.json"] = data
}

func newTestSyncer(t *testing.T) (*Syncer, *store.Store, *fakeGetter) {
	t.Helper()
	st := store.New(afero.NewMemMapFs())
	getter := &fakeGetter{responses: make(map[string][]byte)}
	return NewSyncer(st, getter, WithBaseURL(testBaseURL)), st, getter
}

func TestInstall(t *testing.T) {
	syncer, st, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"guidelines/arch.md":       []byte("architecture doc"),
		"agents/reviewer/AGENT.md": []byte("agent def"),
	})

	result, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", result.Version)
	assert.Len(t, result.Downloaded, 2)
	assert.Empty(t, result.Failed)

	content, err := st.Read("proj/.aiassisted/guidelines/arch.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("architecture doc"), content)

	// Manifest is cached locally for later diffing.
	cached, err := LoadManifest(st, "proj/.aiassisted/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cached.Version)
}

func TestInstallAlreadyInstalled(t *testing.T) {
	syncer, st, _ := newTestSyncer(t)
	require.NoError(t, st.MkdirAll("proj/.aiassisted"))

	_, err := syncer.Install(context.Background(), "proj")
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestInstallIntegrityFailureContinuesBatch(t *testing.T) {
	syncer, st, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"good.md": []byte("good"),
		"bad.md":  []byte("bad"),
	})
	// Corrupt one file after checksums were computed.
	getter.responses[testBaseURL+"/.aiassisted/bad.md"] = []byte("tampered")

	result, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	require.Len(t, result.Failed, 1)
	assert.True(t, errors.IsIntegrity(result.Failed[0]))
	assert.Len(t, result.Downloaded, 1)
	assert.True(t, st.Exists("proj/.aiassisted/good.md"))
	assert.False(t, st.Exists("proj/.aiassisted/bad.md"))

	// The manifest cache is withheld so a retry sees the incomplete state.
	assert.False(t, st.Exists("proj/.aiassisted/manifest.json"))
}

func TestUpdateDownloadsOnlyChanges(t *testing.T) {
	syncer, st, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"keep.md":   []byte("stable"),
		"change.md": []byte("old"),
	})
	_, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	serveManifest(t, getter, "1.1.0", map[string][]byte{
		"keep.md":   []byte("stable"),
		"change.md": []byte("new"),
		"added.md":  []byte("brand new"),
	})
	getter.requests = nil

	result, err := syncer.Update(context.Background(), "proj", false)
	require.NoError(t, err)

	assert.Equal(t, "1.1.0", result.Version)
	assert.Len(t, result.Downloaded, 2)
	assert.NotContains(t, getter.requests, testBaseURL+"/.aiassisted/keep.md")

	content, err := st.Read("proj/.aiassisted/change.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), content)

	cached, err := LoadManifest(st, "proj/.aiassisted/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", cached.Version)
}

func TestUpdateNoChanges(t *testing.T) {
	syncer, _, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{"a.md": []byte("x")})
	_, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	result, err := syncer.Update(context.Background(), "proj", false)
	require.NoError(t, err)
	assert.Empty(t, result.Downloaded)
	assert.Empty(t, result.Failed)
}

func TestUpdateForceDownloadsEverything(t *testing.T) {
	syncer, _, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"a.md": []byte("x"),
		"b.md": []byte("y"),
	})
	_, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	result, err := syncer.Update(context.Background(), "proj", true)
	require.NoError(t, err)
	assert.Len(t, result.Downloaded, 2)
}

func TestUpdateNotInstalled(t *testing.T) {
	syncer, _, _ := newTestSyncer(t)
	_, err := syncer.Update(context.Background(), "proj", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotInstalled)
}

func TestCheck(t *testing.T) {
	syncer, _, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{"a.md": []byte("x")})
	_, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	serveManifest(t, getter, "2.0.0", map[string][]byte{
		"a.md": []byte("x2"),
		"b.md": []byte("y"),
	})
	getter.requests = nil

	check, err := syncer.Check(context.Background(), "proj")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", check.LocalVersion)
	assert.Equal(t, "2.0.0", check.RemoteVersion)
	assert.True(t, check.Diff.HasChanges())
	assert.Len(t, check.Diff.New, 1)
	assert.Len(t, check.Diff.Modified, 1)

	// Check never downloads content files.
	for _, url := range getter.requests {
		assert.NotContains(t, url, "/a.md")
		assert.NotContains(t, url, "/b.md")
	}
}

func TestCheckNotInstalled(t *testing.T) {
	syncer, _, _ := newTestSyncer(t)
	_, err := syncer.Check(context.Background(), "proj")
	assert.ErrorIs(t, err, errors.ErrNotInstalled)
}

func TestUpdateRepairsPartialInstall(t *testing.T) {
	syncer, st, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"good.md": []byte("good"),
		"bad.md":  []byte("bad"),
	})
	getter.responses[testBaseURL+"/.aiassisted/bad.md"] = []byte("tampered")

	result, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
	require.False(t, st.Exists("proj/.aiassisted/manifest.json"))

	// The remote side recovers; an update fetches only what is missing.
	getter.responses[testBaseURL+"/.aiassisted/bad.md"] = []byte("bad")
	getter.requests = nil

	result, err = syncer.Update(context.Background(), "proj", false)
	require.NoError(t, err)

	assert.Empty(t, result.Failed)
	assert.Len(t, result.Downloaded, 1)
	assert.NotContains(t, getter.requests, testBaseURL+"/.aiassisted/good.md")

	content, err := st.Read("proj/.aiassisted/bad.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("bad"), content)

	// The cache advances now that the tree is complete.
	cached, err := LoadManifest(st, "proj/.aiassisted/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cached.Version)

	result, err = syncer.Update(context.Background(), "proj", false)
	require.NoError(t, err)
	assert.Empty(t, result.Downloaded)
}

func TestUpdateRebuildsTamperedFiles(t *testing.T) {
	syncer, st, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"a.md": []byte("x"),
		"b.md": []byte("y"),
	})
	_, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)

	// Drop the cache and corrupt one mirrored file; the update must rebuild
	// its view from the tree and re-fetch only the corrupted file.
	require.NoError(t, st.Fs().Remove("proj/.aiassisted/manifest.json"))
	require.NoError(t, st.Write("proj/.aiassisted/b.md", []byte("edited")))
	getter.requests = nil

	result, err := syncer.Update(context.Background(), "proj", false)
	require.NoError(t, err)

	assert.Len(t, result.Downloaded, 1)
	assert.NotContains(t, getter.requests, testBaseURL+"/.aiassisted/a.md")

	content, err := st.Read("proj/.aiassisted/b.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), content)
}

func TestCheckWithoutCachedManifest(t *testing.T) {
	syncer, st, getter := newTestSyncer(t)
	serveManifest(t, getter, "1.0.0", map[string][]byte{
		"good.md": []byte("good"),
		"bad.md":  []byte("bad"),
	})
	getter.responses[testBaseURL+"/.aiassisted/bad.md"] = []byte("tampered")

	_, err := syncer.Install(context.Background(), "proj")
	require.NoError(t, err)
	require.False(t, st.Exists("proj/.aiassisted/manifest.json"))

	check, err := syncer.Check(context.Background(), "proj")
	require.NoError(t, err)

	assert.Equal(t, "unknown", check.LocalVersion)
	assert.True(t, check.Diff.HasChanges())
	assert.Len(t, check.Diff.New, 1)
}
