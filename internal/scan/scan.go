package scan

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTop is the number of results reported when Options.Top is unset.
const DefaultTop = 20

// ErrNotDirectory is returned by Run when the root exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// Mode selects what a scan reports on.
type Mode string

const (
	// ModeFiles reports the largest individual files.
	ModeFiles Mode = "files"
	// ModeDirectories reports the largest non-overlapping directories.
	ModeDirectories Mode = "directories"
)

// ParseMode maps a user-supplied mode string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFiles, ModeDirectories:
		return Mode(s), nil
	case "dirs":
		return ModeDirectories, nil
	default:
		return "", errors.New("scan mode must be one of: files, directories")
	}
}

// Entry is a single filesystem node yielded by the walk. Immutable once
// produced.
type Entry struct {
	// Path is the node's path as walked.
	Path string
	// IsDir indicates a directory.
	IsDir bool
	// Regular indicates a regular file: false for directories, symlinks
	// and other special files.
	Regular bool
	// SizeBytes is the file's own length. Zero for directories and
	// irregular files.
	SizeBytes int64
	// CreatedAt is the creation (or platform-nearest) timestamp.
	CreatedAt time.Time
	// AccessedAt is the last-access timestamp.
	AccessedAt time.Time
	// ModifiedAt is the last-modification timestamp.
	ModifiedAt time.Time
}

func newEntry(path string, info fs.FileInfo) Entry {
	created, accessed := entryTimes(info)

	entry := Entry{
		Path:       path,
		IsDir:      info.IsDir(),
		Regular:    info.Mode().IsRegular(),
		CreatedAt:  created,
		AccessedAt: accessed,
		ModifiedAt: info.ModTime(),
	}

	if entry.Regular {
		entry.SizeBytes = info.Size()
	}

	return entry
}

// NodeError records a non-fatal per-node failure encountered during the
// walk. Permission failures are not NodeErrors; they land in
// Result.AccessDenied instead.
type NodeError struct {
	// Path is the node the failure is attributed to.
	Path string
	// Err is the underlying cause.
	Err error
}

// MarshalJSON renders the cause as its message, since error values have
// no useful default JSON form.
func (e NodeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path  string `json:"path"`
		Cause string `json:"cause"`
	}{Path: e.Path, Cause: e.Err.Error()})
}

// ReportRow is one selected result, carrying raw bytes and raw timestamps
// so the report writer owns all presentation formatting.
type ReportRow struct {
	// Path is the file or directory path.
	Path string `json:"path"`
	// SizeBytes is the file size, or the directory's aggregate size.
	SizeBytes int64 `json:"size_bytes"`
	// CreatedAt is the node's creation timestamp.
	CreatedAt time.Time `json:"created_at"`
	// AccessedAt is the node's last-access timestamp.
	AccessedAt time.Time `json:"accessed_at"`
	// ModifiedAt is the node's last-modification timestamp.
	ModifiedAt time.Time `json:"modified_at"`
}

// Result is the outcome of one scan.
type Result struct {
	// Mode is the scan mode the rows were selected under.
	Mode Mode `json:"mode"`
	// Top is the requested result count.
	Top int `json:"top"`
	// Rows holds up to Top results, descending by size.
	Rows []ReportRow `json:"rows"`
	// TotalScanned counts every node the walker yielded, before any
	// filtering.
	TotalScanned int64 `json:"total_scanned"`
	// AccessDenied lists each path that failed with a permission error,
	// deduplicated and sorted.
	AccessDenied []string `json:"access_denied"`
	// Warnings lists the non-permission per-node failures.
	Warnings []NodeError `json:"warnings,omitempty"`
	// Elapsed is the total scan duration.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a single scan. All per-scan state lives inside Run,
// so independent scans may run concurrently with separate Options.
type Options struct {
	// Root is the directory to scan. Defaults to ".".
	Root string
	// Mode selects files or directories. Defaults to ModeFiles.
	Mode Mode
	// Top is the number of results to report. Defaults to DefaultTop.
	Top int
	// OlderThan excludes entries modified after the given instant from
	// selection. Nil means no age filter. In directory mode the cutoff
	// applies to a directory's own modification time only; it never
	// changes which files count toward aggregates.
	OlderThan *time.Time
	// MinSize excludes files smaller than this many bytes (file mode).
	MinSize int64
	// Parallel walks with fastwalk instead of the sequential walker.
	// Results are identical; sibling visit order is not.
	Parallel bool
	// ProgressInterval controls the progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives per-node warnings and scan diagnostics. The zero
	// value discards everything.
	Logger zerolog.Logger
}

// passesAge reports whether a node modified at the given instant is
// eligible under the threshold. Entries modified exactly at the cutoff
// pass ("older than or at", not strictly older).
func passesAge(threshold *time.Time, modified time.Time) bool {
	return threshold == nil || !modified.After(*threshold)
}
