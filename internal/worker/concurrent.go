package worker

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// runConcurrent aligns files with bounded parallelism. Results land at
// their input index, so no ordering pass is needed afterwards.
func runConcurrent(ctx context.Context, files []string, opts Options, runID string) []Result {
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{File: file, Err: err}
				return nil
			}

			res, err := alignFile(file, opts, runID)
			if err != nil {
				slog.Warn("alignment failed", "file", filepath.Base(file), "err", err)
			}
			results[i] = Result{File: file, Result: res, Err: err}
			return nil
		})
	}

	// Failures are recorded per result, never returned, so Wait cannot
	// surface one.
	_ = g.Wait()
	return results
}
