package skills

import (
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Materializer mirrors skill bundles verbatim: every file under the source
// bundle maps to the same relative path under the bundle's name in the
// target skills directory. No transformation is applied to content.
type Materializer struct {
	store *store.Store
}

// NewMaterializer creates a verbatim materializer over the store.
func NewMaterializer(st *store.Store) *Materializer {
	return &Materializer{store: st}
}

// Materialize implements reconcile.Materializer. Returned paths are prefixed
// with the unit name so that bundles land in their own directory under the
// target root.
func (m *Materializer) Materialize(source reconcile.Unit) ([]reconcile.File, error) {
	rels, err := m.store.WalkFiles(source.Location)
	if err != nil {
		return nil, err
	}

	files := make([]reconcile.File, 0, len(rels))
	for _, rel := range rels {
		content, err := m.store.Read(filepath.Join(source.Location, rel))
		if err != nil {
			return nil, err
		}
		files = append(files, reconcile.File{
			Path:    filepath.Join(source.Name, rel),
			Content: content,
		})
	}
	return files, nil
}
