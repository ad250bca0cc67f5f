package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"treetop/internal/report"
	"treetop/internal/scan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// printSummary outputs the scan result in human-readable table format.
func printSummary(w io.Writer, result *scan.Result, reportPath string) error {
	tw := tabwriter.NewWriter(w, 0, 4, TabSpacing, ' ', 0)

	if result.Mode == scan.ModeDirectories {
		fmt.Fprintln(tw, "\nTop directories:\t\t")
	} else {
		fmt.Fprintln(tw, "\nTop files:\t\t")
	}

	if len(result.Rows) == 0 {
		fmt.Fprintln(tw, "  (none matched)")
	}

	for i, row := range result.Rows {
		fmt.Fprintf(tw, "  %d) '%s'\t%s\tmodified %s\n",
			i+1,
			row.Path,
			humanize.IBytes(uint64(row.SizeBytes)), //nolint:gosec // Sizes are non-negative
			row.ModifiedAt.Local().Format(report.TimeLayout),
		)
	}

	fmt.Fprintln(tw, "\nStats:\t\t")
	fmt.Fprintf(tw, "Entries scanned:\t%d\n", result.TotalScanned)
	fmt.Fprintf(tw, "Access denied:\t%d\n", len(result.AccessDenied))
	fmt.Fprintf(tw, "Report:\t%s\n", reportPath)
	fmt.Fprintf(tw, "\nElapsed:\t%v\n", result.Elapsed)

	return tw.Flush()
}
