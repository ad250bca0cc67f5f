package scan

import (
	"path/filepath"
	"sort"
	"strings"
)

// selectTopFiles returns the k largest files, descending by size. Equal
// sizes are ordered by ascending path so a scan's output is stable.
func selectTopFiles(files []Entry, k int) []Entry {
	sorted := append([]Entry(nil), files...)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SizeBytes != sorted[j].SizeBytes {
			return sorted[i].SizeBytes > sorted[j].SizeBytes
		}

		return sorted[i].Path < sorted[j].Path
	})

	if len(sorted) > k {
		sorted = sorted[:k]
	}

	return sorted
}

// selectTopDirs picks up to k directory aggregates, descending by size,
// such that no two picks are in an ancestor/descendant relation: a
// parent's aggregate already subsumes its descendants' bytes, so
// reporting both would double-count the same disk usage.
//
// The entire candidate list is considered. Truncating it up front (say to
// the top 2k) is unsound: when many high-ranked candidates nest inside
// each other the truncated pool can run dry before k disjoint picks are
// found, even though eligible candidates remain further down.
func selectTopDirs(candidates []*DirectoryAggregate, k int) []*DirectoryAggregate {
	sorted := append([]*DirectoryAggregate(nil), candidates...)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AggregateSizeBytes != sorted[j].AggregateSizeBytes {
			return sorted[i].AggregateSizeBytes > sorted[j].AggregateSizeBytes
		}

		return sorted[i].Path < sorted[j].Path
	})

	accepted := make([]*DirectoryAggregate, 0, k)

	for _, candidate := range sorted {
		if len(accepted) == k {
			break
		}

		if overlapsAny(accepted, candidate.Path) {
			continue
		}

		accepted = append(accepted, candidate)
	}

	return accepted
}

// overlapsAny reports whether path is an ancestor or descendant of any
// already-accepted entry.
func overlapsAny(accepted []*DirectoryAggregate, path string) bool {
	for _, entry := range accepted {
		if isAncestor(entry.Path, path) || isAncestor(path, entry.Path) {
			return true
		}
	}

	return false
}

// isAncestor reports whether ancestor strictly contains descendant.
// Both paths are normalized to a cleaned, lower-cased form with a
// trailing separator before the prefix test, so the comparison is
// case-insensitive and separator-bounded: a directory named "Data" is
// not an ancestor of a sibling named "DataArchive".
func isAncestor(ancestor, descendant string) bool {
	a := normalizePath(ancestor)
	d := normalizePath(descendant)

	return a != d && strings.HasPrefix(d, a)
}

func normalizePath(path string) string {
	path = strings.ToLower(filepath.Clean(path))

	if !strings.HasSuffix(path, string(filepath.Separator)) {
		path += string(filepath.Separator)
	}

	return path
}
