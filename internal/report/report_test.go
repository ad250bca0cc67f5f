package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treetop/internal/scan"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 Bytes"},
		{512, "512.00 Bytes"},
		{1023, "1023.00 Bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{1073741824, "1.00 GB"},
		{1099511627776, "1.00 TB"},
		// TB is the largest unit; bigger sizes stay in TB.
		{1099511627776 * 2048, "2048.00 TB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSize(tc.bytes), "bytes=%d", tc.bytes)
	}
}

func TestWriteCSV(t *testing.T) {
	modified := time.Date(2026, 8, 25, 14, 30, 0, 0, time.Local)

	result := &scan.Result{
		Mode: scan.ModeFiles,
		Rows: []scan.ReportRow{
			{
				Path:       "/data/big.bin",
				SizeBytes:  1536,
				CreatedAt:  modified.Add(-time.Hour),
				AccessedAt: modified.Add(-time.Minute),
				ModifiedAt: modified,
			},
			{Path: "/data/empty", SizeBytes: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Path", "Size", "Size (bytes)", "Created", "Accessed", "Modified"}, records[0])

	assert.Equal(t, "/data/big.bin", records[1][0])
	assert.Equal(t, "1.50 KB", records[1][1])
	assert.Equal(t, "1536", records[1][2])
	assert.Equal(t, "2026-08-25 14:30:00", records[1][5])

	// Zero timestamps render as empty cells, not the zero time.
	assert.Equal(t, "", records[2][5])
}

func TestWriteJSON(t *testing.T) {
	result := &scan.Result{
		Mode:         scan.ModeDirectories,
		Top:          5,
		Rows:         []scan.ReportRow{{Path: "/d", SizeBytes: 42}},
		TotalScanned: 7,
		AccessDenied: []string{"/d/locked"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.EqualValues(t, 7, decoded["total_scanned"])
	assert.Equal(t, "directories", decoded["mode"])
}

func TestWriteDeniedLog(t *testing.T) {
	t.Run("writes a count header and one path per line", func(t *testing.T) {
		result := &scan.Result{AccessDenied: []string{"/a", "/b"}}

		var buf bytes.Buffer
		require.NoError(t, WriteDeniedLog(&buf, result))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "2 path(s)")
		assert.Equal(t, "/a", lines[1])
		assert.Equal(t, "/b", lines[2])
	})

	t.Run("empty set writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDeniedLog(&buf, &scan.Result{}))
		assert.Zero(t, buf.Len())
	})
}

func TestFileNames(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 30, 0, 0, time.Local)

	assert.Equal(t, "treetop-files-20260825-153000.csv", FileName(scan.ModeFiles, now))
	assert.Equal(t, "treetop-dirs-20260825-153000.csv", FileName(scan.ModeDirectories, now))

	assert.Equal(t, "treetop-dirs-20260825-153000.log", DeniedLogName("treetop-dirs-20260825-153000.csv"))
	assert.Equal(t, "report.json.log", DeniedLogName("report.json"))
}
