package reconcile

import (
	"path/filepath"
	"sort"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fingerprint"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// Engine computes diffs between a source unit set and a target unit set, and
// applies them. One engine serves one content kind: the materializer defines
// how a source unit maps to target bytes.
type Engine struct {
	store *store.Store
	mat   Materializer
}

// New creates an engine over the given store and materializer.
func New(st *store.Store, mat Materializer) *Engine {
	return &Engine{store: st, mat: mat}
}

// Reconcile classifies every unit in source ∪ target and returns the
// resulting diff, sorted by unit name. Units present on both sides are
// materialized and compared file-by-file via fingerprints. Units only in the
// source are new; the materializer is not invoked for them here, since their
// status is known without it. Units only in the target are removed.
//
// A unit whose materialization or fingerprinting fails carries an error
// marker instead of a status; remaining units still get classified.
func (e *Engine) Reconcile(source, target []Unit, targetRoot string) (*Diff, error) {
	sourceByName := make(map[string]Unit, len(source))
	for _, u := range source {
		sourceByName[u.Name] = u
	}
	targetByName := make(map[string]Unit, len(target))
	for _, u := range target {
		targetByName[u.Name] = u
	}

	names := make([]string, 0, len(sourceByName)+len(targetByName))
	for name := range sourceByName {
		names = append(names, name)
	}
	for name := range targetByName {
		if _, ok := sourceByName[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	diff := &Diff{TargetRoot: targetRoot}
	for _, name := range names {
		src, inSource := sourceByName[name]
		tgt, inTarget := targetByName[name]

		switch {
		case inSource && !inTarget:
			diff.Units = append(diff.Units, UnitDiff{
				Name:       name,
				Status:     StatusNew,
				SourcePath: src.Location,
				TargetPath: filepath.Join(targetRoot, name),
			})

		case !inSource && inTarget:
			diff.Units = append(diff.Units, UnitDiff{
				Name:       name,
				Status:     StatusRemoved,
				TargetPath: tgt.Location,
			})

		default:
			diff.Units = append(diff.Units, e.compare(src, tgt, targetRoot))
		}
	}

	return diff, nil
}

// compare classifies a unit present on both sides by materializing the source
// and fingerprint-comparing each expected file against the existing target.
func (e *Engine) compare(src, tgt Unit, targetRoot string) UnitDiff {
	unit := UnitDiff{
		Name:       src.Name,
		SourcePath: src.Location,
		TargetPath: tgt.Location,
	}

	expected, err := e.mat.Materialize(src)
	if err != nil {
		unit.Err = errors.WrapSync(src.Name, "materialize", err)
		return unit
	}

	existing, err := e.existingFiles(tgt, targetRoot)
	if err != nil {
		unit.Err = errors.WrapSync(src.Name, "discover", err)
		return unit
	}

	var files []FileDiff
	seen := make(map[string]bool, len(expected))
	for _, f := range expected {
		seen[f.Path] = true

		full, exists := existing[f.Path]
		if !exists {
			files = append(files, FileDiff{Path: f.Path, Status: StatusNew, Content: f.Content})
			continue
		}

		targetFP, err := fingerprint.OfFile(e.store.Fs(), full)
		if err != nil {
			unit.Err = errors.WrapSync(src.Name, "fingerprint", err)
			return unit
		}
		if fingerprint.New(f.Content) == targetFP {
			files = append(files, FileDiff{Path: f.Path, Status: StatusUnchanged})
		} else {
			files = append(files, FileDiff{Path: f.Path, Status: StatusModified, Content: f.Content})
		}
	}

	for path := range existing {
		if !seen[path] {
			files = append(files, FileDiff{Path: path, Status: StatusRemoved})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	unit.Files = files

	// A unit with no files on either side is vacuously unchanged.
	unit.Status = StatusUnchanged
	for _, f := range files {
		if f.Status != StatusUnchanged {
			unit.Status = StatusModified
			break
		}
	}
	return unit
}

// existingFiles maps target-root-relative paths to full paths for every file
// the target unit currently holds.
func (e *Engine) existingFiles(tgt Unit, targetRoot string) (map[string]string, error) {
	existing := make(map[string]string)

	if e.store.IsDir(tgt.Location) {
		rels, err := e.store.WalkFiles(tgt.Location)
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			full := filepath.Join(tgt.Location, rel)
			relToRoot, err := filepath.Rel(targetRoot, full)
			if err != nil {
				return nil, errors.WrapIO("walk", full, err)
			}
			existing[relToRoot] = full
		}
		return existing, nil
	}

	rel, err := filepath.Rel(targetRoot, tgt.Location)
	if err != nil {
		return nil, errors.WrapIO("walk", tgt.Location, err)
	}
	existing[rel] = tgt.Location
	return existing, nil
}
