package reconcile

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Unit is a named, self-contained piece of content rooted at one location.
// Location is a directory for multi-file units and a file for single-file
// units. A unit is immutable once discovered for the duration of one pass.
type Unit struct {
	Name     string
	Location string
}

// DiscoverDirs enumerates directory-rooted units under root: immediate
// subdirectories that contain the marker file. An empty marker accepts any
// subdirectory. A missing root is a valid empty state, not an error. Results
// are sorted by name; if the underlying store ever yields duplicate names the
// last one wins.
func DiscoverDirs(st *store.Store, root, marker string) ([]Unit, error) {
	if !st.Exists(root) {
		return nil, nil
	}

	names, err := st.List(root)
	if err != nil {
		return nil, err
	}

	var units []Unit
	for _, name := range names {
		loc := filepath.Join(root, name)
		if !st.IsDir(loc) {
			continue
		}
		if marker != "" && !st.Exists(filepath.Join(loc, marker)) {
			continue
		}
		units = append(units, Unit{Name: name, Location: loc})
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units, nil
}

// DiscoverFiles enumerates single-file units under root: immediate files
// whose name ends in ext. The unit name is the file stem. A missing root is
// a valid empty state.
func DiscoverFiles(st *store.Store, root, ext string) ([]Unit, error) {
	if !st.Exists(root) {
		return nil, nil
	}

	names, err := st.List(root)
	if err != nil {
		return nil, err
	}

	var units []Unit
	for _, name := range names {
		loc := filepath.Join(root, name)
		if st.IsDir(loc) || !strings.HasSuffix(name, ext) {
			continue
		}
		units = append(units, Unit{
			Name:     strings.TrimSuffix(name, ext),
			Location: loc,
		})
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units, nil
}
