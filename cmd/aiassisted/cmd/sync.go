package cmd

import (
	"fmt"

	"github.com/rstlix0x0/aiassisted/internal/cmd/table"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
)

// syncRun drives one reconciliation pass for a command: compute the diff,
// show it, and apply it unless the command is check-only.
type syncRun struct {
	engine     *reconcile.Engine
	source     []reconcile.Unit
	target     []reconcile.Unit
	targetRoot string

	dryRun    bool
	force     bool
	checkOnly bool
}

func (r *syncRun) execute() error {
	diff, err := r.engine.Reconcile(r.source, r.target, r.targetRoot)
	if err != nil {
		return err
	}

	if !diff.HasChanges() {
		fmt.Println("No changes detected")
		return nil
	}

	fmt.Println(diff.String())
	if err := renderTable(table.DiffToTableData(diff)); err != nil {
		return err
	}

	if r.checkOnly {
		return nil
	}

	report, err := r.engine.Apply(diff, reconcile.Policy{
		DryRun: r.dryRun,
		Force:  r.force,
	})
	if err != nil {
		return err
	}

	if err := renderTable(table.ReportToTableData(report)); err != nil {
		return err
	}

	verb := "Applied"
	if r.dryRun {
		verb = "Would apply"
	}
	fmt.Printf("%s %d unit(s), %d file(s) written, %d skipped, %d retained\n",
		verb, report.Applied, report.FilesWritten, report.Skipped, report.Retained)

	if len(report.Errors) > 0 {
		return fmt.Errorf("%d unit(s) failed", len(report.Errors))
	}
	return nil
}
