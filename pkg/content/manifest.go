// Package content installs and updates the managed .aiassisted tree from its
// published remote form. The remote side publishes a manifest listing every
// file with its checksum; install and update reconcile the local tree against
// that manifest, verifying each download.
package content

import (
	"encoding/json"
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fingerprint"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Entry is one manifest line: a file path relative to the managed tree and
// the sha256 checksum of its content.
type Entry struct {
	Path     string `json:"path"`
	Checksum string `json:"checksum"`
}

// Manifest lists every file of a published content tree.
type Manifest struct {
	Version string  `json:"version"`
	Files   []Entry `json:"files"`
}

// ParseManifest decodes manifest JSON.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("json", "manifest", err)
	}
	return &m, nil
}

// LoadManifest reads and decodes the manifest cached at path.
func LoadManifest(st *store.Store, path string) (*Manifest, error) {
	data, err := st.Read(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// Save writes the manifest as indented JSON to path.
func (m *Manifest) Save(st *store.Store, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.WrapParse("json", "manifest", err)
	}
	return st.Write(path, append(data, '\n'))
}

// Diff compares the local manifest against a remote one. Entries are keyed
// by path; remote entries missing locally are new, differing checksums are
// modified. Local-only entries are not reported: the remote manifest is
// authoritative for what should exist.
func (m *Manifest) Diff(remote *Manifest) *ManifestDiff {
	local := make(map[string]string, len(m.Files))
	for _, e := range m.Files {
		local[e.Path] = e.Checksum
	}

	diff := &ManifestDiff{}
	for _, e := range remote.Files {
		checksum, ok := local[e.Path]
		switch {
		case !ok:
			diff.New = append(diff.New, e)
		case checksum != e.Checksum:
			diff.Modified = append(diff.Modified, e)
		default:
			diff.Unchanged = append(diff.Unchanged, e)
		}
	}
	return diff
}

// Verify checks every manifest entry against the files under base, returning
// one result per entry. A missing or unreadable file counts as a mismatch.
func (m *Manifest) Verify(st *store.Store, base string) []Verification {
	results := make([]Verification, 0, len(m.Files))
	for _, e := range m.Files {
		path := filepath.Join(base, e.Path)
		fp, err := fingerprint.OfFile(st.Fs(), path)
		results = append(results, Verification{
			Entry: e,
			OK:    err == nil && string(fp) == e.Checksum,
		})
	}
	return results
}

// Verification pairs a manifest entry with its local checksum result.
type Verification struct {
	Entry Entry
	OK    bool
}

// ManifestDiff classifies remote manifest entries against the local cache.
type ManifestDiff struct {
	New       []Entry
	Modified  []Entry
	Unchanged []Entry
}

// HasChanges reports whether any entry needs downloading.
func (d *ManifestDiff) HasChanges() bool {
	return len(d.New) > 0 || len(d.Modified) > 0
}

// ToDownload returns the entries an update must fetch, new first.
func (d *ManifestDiff) ToDownload() []Entry {
	files := make([]Entry, 0, len(d.New)+len(d.Modified))
	files = append(files, d.New...)
	files = append(files, d.Modified...)
	return files
}
