package scan

import (
	"context"
	"io/fs"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// walkTreeParallel is the fastwalk-backed variant of walkTree for large
// trees. It keeps the same contract: every reachable node is yielded
// exactly once and non-fatal failures are recorded in acc. Visits are
// serialized through a mutex since fastwalk runs the callback from
// multiple goroutines; sibling order is arbitrary, which is fine because
// all downstream computation is order-independent.
func walkTreeParallel(ctx context.Context, root string, acc *accumulator, visit func(Entry)) error {
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	var mu sync.Mutex

	return fastwalk.Walk(conf, root, func(path string, entry fs.DirEntry, err error) error {
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

		mu.Lock()
		visit(newEntry(path, info))
		mu.Unlock()

		return nil
	})
}
