// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/rstlix0x0/aiassisted/pkg/content"
	"github.com/rstlix0x0/aiassisted/pkg/reconcile"
)

// Data represents table formatting data.
type Data struct {
	Headers []string
	Rows    [][]string
}

// Render writes the data as an aligned table.
func Render(w io.Writer, data Data) error {
	t := tablewriter.NewTable(w)

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		t.Header(headers...)
	}

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := t.Append(cells...); err != nil {
			return err
		}
	}

	return t.Render()
}

// DiffToTableData converts a reconciliation diff to table format. File counts
// summarize the per-file breakdown of modified units.
func DiffToTableData(diff *reconcile.Diff) Data {
	rows := make([][]string, 0, len(diff.Units))
	for i := range diff.Units {
		unit := &diff.Units[i]

		if unit.Failed() {
			rows = append(rows, []string{unit.Name, "error", unit.Err.Error()})
			continue
		}
		rows = append(rows, []string{unit.Name, string(unit.Status), fileSummary(unit)})
	}

	return Data{
		Headers: []string{"Name", "Status", "Details"},
		Rows:    rows,
	}
}

// ReportToTableData converts an apply report to table format.
func ReportToTableData(report *reconcile.Report) Data {
	rows := make([][]string, 0, len(report.Units))
	for _, unit := range report.Units {
		outcome := "skipped"
		switch {
		case unit.Err != nil:
			outcome = "error: " + unit.Err.Error()
		case unit.Status == reconcile.StatusRemoved:
			outcome = "retained"
		case unit.FilesWritten > 0:
			outcome = fmt.Sprintf("%d file(s) written", unit.FilesWritten)
		}
		rows = append(rows, []string{unit.Name, string(unit.Status), outcome})
	}

	return Data{
		Headers: []string{"Name", "Status", "Outcome"},
		Rows:    rows,
	}
}

// ManifestDiffToTableData converts a remote-content check result to table
// format.
func ManifestDiffToTableData(diff *content.ManifestDiff) Data {
	rows := make([][]string, 0, len(diff.New)+len(diff.Modified))
	for _, e := range diff.New {
		rows = append(rows, []string{"+ " + e.Path, "new"})
	}
	for _, e := range diff.Modified {
		rows = append(rows, []string{"~ " + e.Path, "modified"})
	}

	return Data{
		Headers: []string{"File", "Status"},
		Rows:    rows,
	}
}

func fileSummary(unit *reconcile.UnitDiff) string {
	if len(unit.Files) == 0 {
		return "-"
	}

	counts := map[reconcile.Status]int{}
	for _, f := range unit.Files {
		counts[f.Status]++
	}

	var parts []string
	for _, status := range []reconcile.Status{
		reconcile.StatusNew,
		reconcile.StatusModified,
		reconcile.StatusUnchanged,
		reconcile.StatusRemoved,
	} {
		if n := counts[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	return strings.Join(parts, ", ")
}
