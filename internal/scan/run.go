package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook(visited) on each tick until ctx is
// done.
func startProgressReporter(ctx context.Context, acc *accumulator, hook func(int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(acc.visited.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run performs one scan and returns the assembled result.
//
// The root must exist and be a directory; anything else is fatal and
// rejected before traversal begins. Every other failure is per-node and
// non-fatal: the result always reflects whatever portion of the tree was
// reachable. Cancelling ctx stops the walk between node visits and
// returns the context's error with no partial result.
func Run(ctx context.Context, opts Options, progressHook func(visited int64)) (*Result, error) {
	log := opts.Logger

	if opts.Root == "" {
		opts.Root = "."
	}

	// Normalize to native format to handle both slash styles on Windows.
	opts.Root = filepath.Clean(opts.Root)

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("accessing root %q: %w", opts.Root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root %q: %w", opts.Root, ErrNotDirectory)
	}

	if opts.Top <= 0 {
		opts.Top = DefaultTop
	}

	if opts.Mode == "" {
		opts.Mode = ModeFiles
	}

	if opts.Mode != ModeFiles && opts.Mode != ModeDirectories {
		return nil, fmt.Errorf("unknown scan mode %q", opts.Mode)
	}

	acc := newAccumulator()

	// Child context so the progress reporter is always cleaned up.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, acc, progressHook, opts.ProgressInterval)

	start := time.Now()

	var (
		files      []Entry
		aggregator *sizeAggregator
		visit      func(Entry)
	)

	switch opts.Mode {
	case ModeFiles:
		visit = func(entry Entry) {
			// Only regular files compete; symlinks and other special
			// files have no length of their own.
			if !entry.Regular || entry.SizeBytes < opts.MinSize {
				return
			}

			if !passesAge(opts.OlderThan, entry.ModifiedAt) {
				return
			}

			files = append(files, entry)
		}
	case ModeDirectories:
		// Aggregation sees every file regardless of age; the threshold
		// only gates which directories are eligible for selection below.
		aggregator = newSizeAggregator(opts.Root)
		visit = aggregator.observe
	}

	walk := walkTree
	if opts.Parallel {
		walk = walkTreeParallel
	}

	if err := walk(ctx, opts.Root, acc, visit); err != nil {
		return nil, fmt.Errorf("walking %q: %w", opts.Root, err)
	}

	result := &Result{
		Mode:         opts.Mode,
		Top:          opts.Top,
		TotalScanned: acc.visited.Load(),
		AccessDenied: acc.deniedPaths(),
		Warnings:     acc.warnings,
	}

	switch opts.Mode {
	case ModeFiles:
		for _, entry := range selectTopFiles(files, opts.Top) {
			result.Rows = append(result.Rows, ReportRow{
				Path:       entry.Path,
				SizeBytes:  entry.SizeBytes,
				CreatedAt:  entry.CreatedAt,
				AccessedAt: entry.AccessedAt,
				ModifiedAt: entry.ModifiedAt,
			})
		}
	case ModeDirectories:
		all := aggregator.aggregates()

		candidates := make([]*DirectoryAggregate, 0, len(all))
		for _, dir := range all {
			if passesAge(opts.OlderThan, dir.ModifiedAt) {
				candidates = append(candidates, dir)
			}
		}

		for _, dir := range selectTopDirs(candidates, opts.Top) {
			result.Rows = append(result.Rows, ReportRow{
				Path:       dir.Path,
				SizeBytes:  dir.AggregateSizeBytes,
				CreatedAt:  dir.CreatedAt,
				AccessedAt: dir.AccessedAt,
				ModifiedAt: dir.ModifiedAt,
			})
		}
	}

	result.Elapsed = time.Since(start)

	for _, warning := range result.Warnings {
		log.Warn().Str("path", warning.Path).Err(warning.Err).Msg("error visiting node")
	}

	log.Debug().
		Int64("visited", result.TotalScanned).
		Int("denied", len(result.AccessDenied)).
		Dur("elapsed", result.Elapsed).
		Msg("scan complete")

	return result, nil
}
