// Package reconcile implements the reconciliation engine: it classifies every
// content unit as new, modified, unchanged, or removed relative to its source,
// and drives an idempotent, selectively-applied synchronization from that
// classification. Comparison is always fingerprint-based; modification times
// and sizes are never used to decide status.
package reconcile

import (
	"fmt"
	"strings"
)

// Status classifies a unit, or a file within a unit, relative to its source.
type Status string

const (
	// StatusNew indicates the item exists in the source but not the target.
	StatusNew Status = "new"
	// StatusModified indicates the item exists in both and content differs.
	StatusModified Status = "modified"
	// StatusUnchanged indicates the item exists in both with identical content.
	StatusUnchanged Status = "unchanged"
	// StatusRemoved indicates the item exists in the target but not the source.
	StatusRemoved Status = "removed"
)

// FileDiff describes one file within a unit. Path is relative to the target
// root. Content holds the expected target bytes when the source side was
// materialized; it is nil for unchanged and removed files.
type FileDiff struct {
	Path    string
	Status  Status
	Content []byte
}

// UnitDiff describes one unit's outcome for a reconciliation pass. When
// materialization of the unit failed, Err carries the failure and Status is
// empty; the rest of the batch is unaffected.
type UnitDiff struct {
	Name       string
	Status     Status
	SourcePath string // empty for removed units
	TargetPath string
	Files      []FileDiff // per-file breakdown; empty for new and removed units
	Err        error
}

// Failed reports whether this unit could not be classified.
func (u *UnitDiff) Failed() bool {
	return u.Err != nil
}

// Diff is the immutable result of one reconciliation pass: every unit's
// outcome, ordered by name, plus the target root the pass ran against. It is
// a snapshot, not a live view.
type Diff struct {
	TargetRoot string
	Units      []UnitDiff
}

// NewCount returns the number of new units.
func (d *Diff) NewCount() int { return d.count(StatusNew) }

// ModifiedCount returns the number of modified units.
func (d *Diff) ModifiedCount() int { return d.count(StatusModified) }

// UnchangedCount returns the number of unchanged units.
func (d *Diff) UnchangedCount() int { return d.count(StatusUnchanged) }

// RemovedCount returns the number of removed units.
func (d *Diff) RemovedCount() int { return d.count(StatusRemoved) }

// ErrorCount returns the number of units that failed to classify.
func (d *Diff) ErrorCount() int {
	n := 0
	for i := range d.Units {
		if d.Units[i].Failed() {
			n++
		}
	}
	return n
}

func (d *Diff) count(status Status) int {
	n := 0
	for i := range d.Units {
		if !d.Units[i].Failed() && d.Units[i].Status == status {
			n++
		}
	}
	return n
}

// HasChanges reports whether any unit is something other than unchanged.
func (d *Diff) HasChanges() bool {
	for i := range d.Units {
		if d.Units[i].Failed() || d.Units[i].Status != StatusUnchanged {
			return true
		}
	}
	return false
}

// String returns a one-line human-readable summary.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return "No changes detected"
	}

	var parts []string
	if n := d.NewCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d new", n))
	}
	if n := d.ModifiedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", n))
	}
	if n := d.UnchangedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", n))
	}
	if n := d.RemovedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", n))
	}
	if n := d.ErrorCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	return strings.Join(parts, ", ")
}
