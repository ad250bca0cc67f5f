package scan

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
)

// accumulator collects the walk's side effects: the visited counter, the
// deduplicated set of permission failures, and the warning records for
// other per-node errors. Safe for concurrent use; the parallel walker
// calls it from multiple goroutines.
type accumulator struct {
	visited  atomic.Int64
	mu       sync.Mutex
	denied   map[string]struct{}
	warnings []NodeError
}

func newAccumulator() *accumulator {
	return &accumulator{denied: make(map[string]struct{})}
}

func (a *accumulator) visit() {
	a.visited.Add(1)
}

// fail classifies a non-fatal per-node failure: permission errors go into
// the denied set, everything else becomes a warning record. The scan never
// aborts on either.
func (a *accumulator) fail(path string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if errors.Is(err, fs.ErrPermission) {
		a.denied[path] = struct{}{}

		return
	}

	a.warnings = append(a.warnings, NodeError{Path: path, Err: err})
}

// deniedPaths returns the permission-failure set as a sorted slice.
func (a *accumulator) deniedPaths() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	paths := make([]string, 0, len(a.denied))
	for path := range a.denied {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

// walkTree enumerates every file and directory under root sequentially in
// lexical sibling order, yielding one Entry per node. A failure visiting a
// node is recorded in acc and traversal continues with the rest of the
// tree. Cancellation is checked between node visits.
func walkTree(ctx context.Context, root string, acc *accumulator, visit func(Entry)) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			acc.fail(path, err)

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := entry.Info()
		if err != nil {
			acc.fail(path, err)

			return nil
		}

		acc.visit()
		visit(newEntry(path, info))

		return nil
	})
}
