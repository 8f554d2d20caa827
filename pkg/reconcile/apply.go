package reconcile

import (
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// Policy controls how a diff is applied.
type Policy struct {
	// DryRun suppresses all writes while still reporting exactly what a live
	// run would do.
	DryRun bool

	// Force overwrites target files whose content differs from the expected
	// output. Without it, modified files are left untouched.
	Force bool
}

// UnitResult records the apply outcome for one unit.
type UnitResult struct {
	Name         string
	Status       Status
	FilesWritten int
	Err          error
}

// Report summarizes an apply pass. Removed units are never deleted; they are
// counted in Retained and left in place.
type Report struct {
	Applied      int
	Skipped      int
	Retained     int
	FilesWritten int
	DryRun       bool
	Units        []UnitResult
	Errors       []error
}

// Apply performs the minimal set of writes that brings the target into
// agreement with the diff, honoring the policy:
//
//   - unchanged units are never touched;
//   - new units are always written;
//   - modified files are overwritten only under force, though files missing
//     from the target are written regardless;
//   - removed units are reported and retained, never deleted.
//
// Writes are independent per file; a failure partway through leaves earlier
// writes in place and is collected into the report rather than aborting. A
// unit that erred counts only toward Errors, never toward Applied or
// Skipped, though its successful writes still show in FilesWritten.
func (e *Engine) Apply(diff *Diff, policy Policy) (*Report, error) {
	report := &Report{DryRun: policy.DryRun}

	for i := range diff.Units {
		unit := &diff.Units[i]
		result := UnitResult{Name: unit.Name, Status: unit.Status}

		switch {
		case unit.Failed():
			result.Err = unit.Err
			report.Errors = append(report.Errors, unit.Err)

		case unit.Status == StatusUnchanged:
			report.Skipped++

		case unit.Status == StatusRemoved:
			report.Retained++

		case unit.Status == StatusNew:
			e.applyNew(diff.TargetRoot, unit, policy, &result, report)

		case unit.Status == StatusModified:
			e.applyModified(diff.TargetRoot, unit, policy, &result, report)
		}

		report.Units = append(report.Units, result)
	}

	return report, nil
}

// applyNew materializes a new unit and writes every file. Materialization is
// deferred to this point so that reconcile-only invocations never pay for it.
func (e *Engine) applyNew(targetRoot string, unit *UnitDiff, policy Policy, result *UnitResult, report *Report) {
	files, err := e.mat.Materialize(Unit{Name: unit.Name, Location: unit.SourcePath})
	if err != nil {
		result.Err = errors.WrapSync(unit.Name, "materialize", err)
		report.Errors = append(report.Errors, result.Err)
		return
	}

	for _, f := range files {
		if err := e.write(unit.Name, filepath.Join(targetRoot, f.Path), f.Content, policy); err != nil {
			result.Err = err
			report.Errors = append(report.Errors, err)
			continue
		}
		result.FilesWritten++
	}

	report.FilesWritten += result.FilesWritten
	switch {
	case result.Err != nil:
		// Counted in Errors only.
	case result.FilesWritten > 0:
		report.Applied++
	default:
		report.Skipped++
	}
}

// applyModified writes the changed files of a unit present on both sides.
func (e *Engine) applyModified(targetRoot string, unit *UnitDiff, policy Policy, result *UnitResult, report *Report) {
	for _, f := range unit.Files {
		write := false
		switch f.Status {
		case StatusNew:
			write = true
		case StatusModified:
			write = policy.Force
		case StatusUnchanged, StatusRemoved:
			// Unchanged files are never touched; removed files are retained.
		}
		if !write {
			continue
		}

		if err := e.write(unit.Name, filepath.Join(targetRoot, f.Path), f.Content, policy); err != nil {
			result.Err = err
			report.Errors = append(report.Errors, err)
			continue
		}
		result.FilesWritten++
	}

	report.FilesWritten += result.FilesWritten
	switch {
	case result.Err != nil:
		// Counted in Errors only.
	case result.FilesWritten > 0:
		report.Applied++
	default:
		report.Skipped++
	}
}

// write performs one target write unless the policy is dry-run.
func (e *Engine) write(unit, path string, content []byte, policy Policy) error {
	if policy.DryRun {
		return nil
	}
	if err := e.store.Write(path, content); err != nil {
		return errors.WrapSync(unit, "write", err)
	}
	return nil
}
