package content

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fingerprint"
	"github.com/rstlix0x0/aiassisted/pkg/logging"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Getter fetches remote content. Satisfied by transport.Client.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Syncer installs and updates the managed content tree from its published
// remote location.
type Syncer struct {
	store   *store.Store
	client  Getter
	baseURL string
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithBaseURL overrides the published content base URL.
func WithBaseURL(url string) SyncerOption {
	return func(s *Syncer) {
		s.baseURL = url
	}
}

// NewSyncer creates a syncer over the store and remote client.
func NewSyncer(st *store.Store, client Getter, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		store:   st,
		client:  client,
		baseURL: constants.ContentBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result summarizes an install or update pass. Failed downloads do not abort
// the batch; each failure is collected per file.
type Result struct {
	Version    string
	Downloaded []string
	Failed     []error
}

// CheckResult reports what an update would do, without downloading.
type CheckResult struct {
	LocalVersion  string
	RemoteVersion string
	Diff          *ManifestDiff
}

// Install downloads the full published tree into targetDir/.aiassisted. An
// existing installation is an error; Update handles that case.
func (s *Syncer) Install(ctx context.Context, targetDir string) (*Result, error) {
	root := filepath.Join(targetDir, constants.SourceDir)
	if s.store.Exists(root) {
		return nil, fmt.Errorf("directory %s: %w", root, errors.ErrAlreadyExists)
	}

	manifest, err := s.fetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("version", manifest.Version).
		Int("files", len(manifest.Files)).
		Msg("manifest loaded")

	if err := s.store.MkdirAll(root); err != nil {
		return nil, err
	}

	result := s.download(ctx, manifest.Version, manifest.Files, targetDir)

	// The cached manifest marks a complete install; keep it out while files
	// are missing so a later update rebuilds state from the tree itself and
	// fetches what failed.
	if len(result.Failed) == 0 {
		if err := manifest.Save(s.store, filepath.Join(root, constants.ManifestFile)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Update brings an existing installation up to date. Only files whose
// checksum changed since the cached manifest are fetched, unless force is
// set, which re-downloads everything.
func (s *Syncer) Update(ctx context.Context, targetDir string, force bool) (*Result, error) {
	root := filepath.Join(targetDir, constants.SourceDir)
	if !s.store.Exists(root) {
		return nil, fmt.Errorf("directory %s: %w", root, errors.ErrNotInstalled)
	}

	remote, err := s.fetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if force {
		entries = remote.Files
	} else {
		local, err := s.localManifest(root, remote)
		if err != nil {
			return nil, err
		}

		logging.Info().
			Str("local", local.Version).
			Str("remote", remote.Version).
			Msg("manifest versions")

		diff := local.Diff(remote)
		if !diff.HasChanges() {
			return &Result{Version: remote.Version}, nil
		}
		entries = diff.ToDownload()
	}

	result := s.download(ctx, remote.Version, entries, targetDir)

	// Only advance the cached manifest when everything landed, so failed
	// files stay flagged for the next update.
	if len(result.Failed) == 0 {
		if err := remote.Save(s.store, filepath.Join(root, constants.ManifestFile)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Check compares the cached manifest against the remote one without
// downloading any content.
func (s *Syncer) Check(ctx context.Context, targetDir string) (*CheckResult, error) {
	root := filepath.Join(targetDir, constants.SourceDir)
	if !s.store.Exists(root) {
		return nil, fmt.Errorf("directory %s: %w", root, errors.ErrNotInstalled)
	}

	remote, err := s.fetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	local, err := s.localManifest(root, remote)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		LocalVersion:  local.Version,
		RemoteVersion: remote.Version,
		Diff:          local.Diff(remote),
	}, nil
}

// localManifest returns the cached manifest when present, and otherwise
// rebuilds one by fingerprinting the mirrored tree against the remote file
// list. The cache is an optimization only: a partly failed install withholds
// it, and the rebuilt form omits missing or mismatched files so a later
// update fetches them.
func (s *Syncer) localManifest(root string, remote *Manifest) (*Manifest, error) {
	path := filepath.Join(root, constants.ManifestFile)
	if s.store.Exists(path) {
		return LoadManifest(s.store, path)
	}

	local := &Manifest{Version: "unknown"}
	for _, v := range remote.Verify(s.store, root) {
		if v.OK {
			local.Files = append(local.Files, v.Entry)
		}
	}
	return local, nil
}

// ManifestURL returns the remote manifest location.
func (s *Syncer) ManifestURL() string {
	return s.baseURL + "/" + constants.ManifestPath
}

func (s *Syncer) contentURL(path string) string {
	return s.baseURL + "/" + constants.SourceDir + "/" + path
}

func (s *Syncer) fetchManifest(ctx context.Context) (*Manifest, error) {
	data, err := s.client.Get(ctx, s.ManifestURL())
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// download fetches and verifies each entry. A failed file is recorded and
// the rest of the batch continues.
func (s *Syncer) download(ctx context.Context, version string, entries []Entry, targetDir string) *Result {
	ctx, cancel := context.WithTimeout(ctx, constants.DownloadTimeout)
	defer cancel()

	result := &Result{Version: version}

	for _, entry := range entries {
		path, err := s.downloadFile(ctx, entry, targetDir)
		if err != nil {
			logging.Err(err).Str("path", entry.Path).Msg("download failed")
			result.Failed = append(result.Failed, err)
			continue
		}
		logging.Debug().Str("path", path).Msg("downloaded")
		result.Downloaded = append(result.Downloaded, path)
	}

	return result
}

func (s *Syncer) downloadFile(ctx context.Context, entry Entry, targetDir string) (string, error) {
	data, err := s.client.Get(ctx, s.contentURL(entry.Path))
	if err != nil {
		return "", err
	}

	if actual := string(fingerprint.New(data)); actual != entry.Checksum {
		return "", errors.NewIntegrityError(entry.Path, entry.Checksum, actual)
	}

	dest := filepath.Join(targetDir, constants.SourceDir, entry.Path)
	if err := s.store.Write(dest, data); err != nil {
		return "", err
	}
	return dest, nil
}
