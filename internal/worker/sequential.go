package worker

import (
	"context"
	"log/slog"
	"path/filepath"
)

// runSequential aligns files one at a time, stopping early only on context
// cancellation.
func runSequential(ctx context.Context, files []string, opts Options, runID string) []Result {
	results := make([]Result, len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			results[i] = Result{File: file, Err: err}
			continue
		}

		res, err := alignFile(file, opts, runID)
		if err != nil {
			slog.Warn("alignment failed", "file", filepath.Base(file), "err", err)
		}
		results[i] = Result{File: file, Result: res, Err: err}
	}

	return results
}
