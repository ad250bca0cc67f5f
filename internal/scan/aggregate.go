package scan

import (
	"path/filepath"
	"sort"
	"time"
)

// DirectoryAggregate is the total size of all files transitively beneath
// one directory, together with the directory's own metadata timestamps.
// Aggregates live for a single scan and are discarded afterwards.
type DirectoryAggregate struct {
	// Path is the directory path as walked.
	Path string
	// AggregateSizeBytes is the sum of every contained file's size.
	AggregateSizeBytes int64
	// CreatedAt is the directory's own creation timestamp.
	CreatedAt time.Time
	// AccessedAt is the directory's own last-access timestamp.
	AccessedAt time.Time
	// ModifiedAt is the directory's own last-modification timestamp.
	ModifiedAt time.Time
}

// sizeAggregator computes every directory's aggregate size in one
// bottom-up pass: as each file is discovered, its size is added to the
// running total of every ancestor from the immediate parent up to the
// scan root. Each file contributes to each ancestor exactly once; no
// subtree is ever re-walked.
type sizeAggregator struct {
	root string
	dirs map[string]*DirectoryAggregate
}

func newSizeAggregator(root string) *sizeAggregator {
	return &sizeAggregator{
		root: filepath.Clean(root),
		dirs: make(map[string]*DirectoryAggregate),
	}
}

// observe folds one walked entry into the aggregates. Directory entries
// record their own timestamps; file entries add their size to every
// ancestor. Observation order does not matter: a file may arrive before
// the entry for its parent directory.
func (a *sizeAggregator) observe(entry Entry) {
	if entry.IsDir {
		node := a.node(filepath.Clean(entry.Path))
		node.CreatedAt = entry.CreatedAt
		node.AccessedAt = entry.AccessedAt
		node.ModifiedAt = entry.ModifiedAt

		return
	}

	dir := filepath.Dir(filepath.Clean(entry.Path))
	for {
		a.node(dir).AggregateSizeBytes += entry.SizeBytes

		if dir == a.root {
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root without meeting the scan root;
			// nothing above can be attributed to this scan.
			return
		}

		dir = parent
	}
}

func (a *sizeAggregator) node(path string) *DirectoryAggregate {
	node, ok := a.dirs[path]
	if !ok {
		node = &DirectoryAggregate{Path: path}
		a.dirs[path] = node
	}

	return node
}

// aggregates returns every directory total, ordered by path for
// deterministic downstream processing.
func (a *sizeAggregator) aggregates() []*DirectoryAggregate {
	out := make([]*DirectoryAggregate, 0, len(a.dirs))
	for _, node := range a.dirs {
		out = append(out, node)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
