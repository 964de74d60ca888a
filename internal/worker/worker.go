// Package worker aligns batches of transcript files against one set of
// reference lyrics, concurrently when asked to. Each file gets its own
// alignment engine; engines are not safe for concurrent use.
package worker

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sile16/karaoke/internal/align"
	"github.com/sile16/karaoke/internal/transcript"
)

// Matching strategies selectable per run. Auto routes on the transcript's
// language probability; the rest force one matcher.
const (
	StrategyAuto   = "auto"
	StrategyDTW    = "dtw"
	StrategyDirect = "direct"
	StrategyGreedy = "greedy"
)

// ValidStrategy reports whether name is a known matching strategy.
func ValidStrategy(name string) bool {
	switch name {
	case StrategyAuto, StrategyDTW, StrategyDirect, StrategyGreedy:
		return true
	}
	return false
}

// Options configures a batch run.
type Options struct {
	// Lyrics is the shared reference line sequence.
	Lyrics []string
	// Title and Artists are stamped into every result's metadata.
	Title   string
	Artists []string
	// Strategy selects the matcher; empty means auto.
	Strategy string
	// Concurrency bounds parallel alignments; values below 2 run
	// sequentially.
	Concurrency int
	// Engine configures the per-file alignment engine.
	Engine align.Options
	// Group configures word→segment grouping.
	Group transcript.GroupOptions
}

// Result is the outcome for one transcript file. Exactly one of Result and
// Err is set.
type Result struct {
	File   string
	Result *align.Result
	Err    error
}

// Run aligns every transcript file against the shared lyrics and returns
// one result per file in input order. A file's failure is recorded in its
// result and does not abort the rest; only context cancellation stops the
// run early.
func Run(ctx context.Context, files []string, opts Options) []Result {
	runID := uuid.NewString()
	slog.Info("starting alignment run",
		"run_id", runID,
		"files", len(files),
		"lines", len(opts.Lyrics),
		"strategy", strategyName(opts.Strategy),
		"concurrency", opts.Concurrency)

	if opts.Concurrency > 1 && len(files) > 1 {
		return runConcurrent(ctx, files, opts, runID)
	}
	return runSequential(ctx, files, opts, runID)
}

func strategyName(s string) string {
	if s == "" {
		return StrategyAuto
	}
	return s
}

// alignFile loads, groups and aligns a single transcript file.
func alignFile(path string, opts Options, runID string) (*align.Result, error) {
	resp, err := transcript.LoadFile(path)
	if err != nil {
		return nil, err
	}
	segments := resp.Segments(opts.Group)

	eng := align.New(opts.Engine)

	var res *align.Result
	switch opts.Strategy {
	case StrategyDTW:
		res, err = eng.Align(segments, opts.Lyrics)
	case StrategyDirect:
		res, err = eng.DirectMatch(segments, opts.Lyrics)
	case StrategyGreedy:
		res, err = eng.MatchGreedy(segments, opts.Lyrics)
	default:
		res, err = eng.Process(segments, opts.Lyrics, resp.LanguageProbability)
	}
	if err != nil {
		return nil, err
	}

	res.Metadata.Title = opts.Title
	res.Metadata.Artists = opts.Artists
	res.Metadata.Language = resp.LanguageCode
	res.Metadata.RunID = runID

	slog.Info("aligned",
		"file", filepath.Base(path),
		"segments", len(res.Segments),
		"method", res.Metadata.Method,
		"quality", res.Metadata.Quality)

	return res, nil
}
