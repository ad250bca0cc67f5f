package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeAggregator(t *testing.T) {
	dirEntry := func(path string, modified time.Time) Entry {
		return Entry{Path: path, IsDir: true, ModifiedAt: modified}
	}
	fileEntry := func(path string, size int64) Entry {
		return Entry{Path: path, SizeBytes: size}
	}

	t.Run("every ancestor counts each file once", func(t *testing.T) {
		agg := newSizeAggregator("/root")

		agg.observe(dirEntry("/root", time.Time{}))
		agg.observe(dirEntry("/root/a", time.Time{}))
		agg.observe(fileEntry("/root/a/file1", 10))
		agg.observe(fileEntry("/root/a/file2", 5))
		agg.observe(dirEntry("/root/b", time.Time{}))
		agg.observe(fileEntry("/root/b/file3", 1))

		totals := totalsByPath(agg)
		assert.EqualValues(t, 16, totals["/root"])
		assert.EqualValues(t, 15, totals["/root/a"])
		assert.EqualValues(t, 1, totals["/root/b"])
	})

	t.Run("deep nesting accumulates through every level", func(t *testing.T) {
		agg := newSizeAggregator("/r")

		agg.observe(dirEntry("/r", time.Time{}))
		agg.observe(dirEntry("/r/a", time.Time{}))
		agg.observe(dirEntry("/r/a/b", time.Time{}))
		agg.observe(dirEntry("/r/a/b/c", time.Time{}))
		agg.observe(fileEntry("/r/a/b/c/leaf", 8))
		agg.observe(fileEntry("/r/a/top", 2))

		totals := totalsByPath(agg)
		assert.EqualValues(t, 10, totals["/r"])
		assert.EqualValues(t, 10, totals["/r/a"])
		assert.EqualValues(t, 8, totals["/r/a/b"])
		assert.EqualValues(t, 8, totals["/r/a/b/c"])
	})

	t.Run("file observed before its parent directory", func(t *testing.T) {
		// The parallel walker yields entries in arbitrary order.
		agg := newSizeAggregator("/r")

		agg.observe(fileEntry("/r/late/file", 4))

		modified := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		agg.observe(dirEntry("/r/late", modified))
		agg.observe(dirEntry("/r", modified))

		totals := totalsByPath(agg)
		assert.EqualValues(t, 4, totals["/r/late"])
		assert.EqualValues(t, 4, totals["/r"])

		for _, node := range agg.aggregates() {
			if node.Path == "/r/late" {
				assert.Equal(t, modified, node.ModifiedAt, "late directory entry must still set its own timestamps")
			}
		}
	})

	t.Run("empty directories report zero", func(t *testing.T) {
		agg := newSizeAggregator("/r")

		agg.observe(dirEntry("/r", time.Time{}))
		agg.observe(dirEntry("/r/empty", time.Time{}))

		totals := totalsByPath(agg)
		assert.EqualValues(t, 0, totals["/r/empty"])
	})

	t.Run("accumulation stops at the scan root", func(t *testing.T) {
		agg := newSizeAggregator("/a/b/root")

		agg.observe(fileEntry("/a/b/root/sub/file", 3))

		totals := totalsByPath(agg)
		assert.EqualValues(t, 3, totals["/a/b/root"])
		assert.NotContains(t, totals, "/a/b")
		assert.NotContains(t, totals, "/a")
	})

	t.Run("aggregates are ordered by path", func(t *testing.T) {
		agg := newSizeAggregator("/r")

		agg.observe(dirEntry("/r", time.Time{}))
		agg.observe(dirEntry("/r/z", time.Time{}))
		agg.observe(dirEntry("/r/a", time.Time{}))

		nodes := agg.aggregates()
		require.Len(t, nodes, 3)
		assert.Equal(t, "/r", nodes[0].Path)
		assert.Equal(t, "/r/a", nodes[1].Path)
		assert.Equal(t, "/r/z", nodes[2].Path)
	})
}

func totalsByPath(agg *sizeAggregator) map[string]int64 {
	totals := make(map[string]int64)
	for _, node := range agg.aggregates() {
		totals[node.Path] = node.AggregateSizeBytes
	}

	return totals
}
