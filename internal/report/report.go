// Package report serializes scan results: a CSV report of the selected
// rows, a JSON dump of the full result, and a plain-text log of the
// access-denied paths. All formatting happens here; the scan core hands
// over raw byte counts and raw timestamps.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"treetop/internal/scan"
)

// TimeLayout is the timestamp format used in reports, rendered in local
// time.
const TimeLayout = "2006-01-02 15:04:05"

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with binary (1024-based) units and two
// decimal places, e.g. 1536 -> "1.50 KB".
func FormatSize(bytes int64) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Local().Format(TimeLayout)
}

// WriteCSV writes the selected rows as a CSV report: a header followed by
// one record per row, each carrying both the formatted size and the raw
// byte count.
func WriteCSV(w io.Writer, result *scan.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Path", "Size", "Size (bytes)", "Created", "Accessed", "Modified"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range result.Rows {
		record := []string{
			row.Path,
			FormatSize(row.SizeBytes),
			strconv.FormatInt(row.SizeBytes, 10),
			formatTime(row.CreatedAt),
			formatTime(row.AccessedAt),
			formatTime(row.ModifiedAt),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV record for %q: %w", row.Path, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteJSON writes the full result, including statistics and the denied
// set, as indented JSON.
func WriteJSON(w io.Writer, result *scan.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// WriteDeniedLog writes the access-denied paths one per line, preceded by
// a count header. Nothing is written when the set is empty.
func WriteDeniedLog(w io.Writer, result *scan.Result) error {
	if len(result.AccessDenied) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "# %d path(s) could not be accessed\n", len(result.AccessDenied)); err != nil {
		return err
	}

	for _, path := range result.AccessDenied {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}

	return nil
}

// FileName builds the default report file name for a scan mode, e.g.
// "treetop-files-20260825-153000.csv".
func FileName(mode scan.Mode, now time.Time) string {
	kind := "files"
	if mode == scan.ModeDirectories {
		kind = "dirs"
	}

	return fmt.Sprintf("treetop-%s-%s.csv", kind, now.Format("20060102-150405"))
}

// DeniedLogName derives the denied-log name from a report file name by
// swapping the extension for ".log".
func DeniedLogName(reportName string) string {
	ext := ".csv"
	if len(reportName) > len(ext) && reportName[len(reportName)-len(ext):] == ext {
		return reportName[:len(reportName)-len(ext)] + ".log"
	}

	return reportName + ".log"
}
