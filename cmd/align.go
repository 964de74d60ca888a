package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sile16/karaoke/internal/config"
	"github.com/sile16/karaoke/internal/export"
	"github.com/sile16/karaoke/internal/lyrics"
	"github.com/sile16/karaoke/internal/worker"
)

// Below this overall quality the alignment is usually unusable and the
// lyrics file should be checked against the recording.
const lowQuality = 0.2

var (
	lyricsPath  string
	songTitle   string
	songArtists []string
	outDir      string
	outFormat   string
	strategy    string
	concurrency int
	configPath  string
)

var alignCmd = &cobra.Command{
	Use:   "align <transcript.json>...",
	Short: "Align transcripts against a lyrics file",
	Long: `Align reads one or more word-timestamped transcript JSON files, matches
them against the lines of a reference lyrics file and writes the aligned
result next to each transcript (or into --out).

The strategy is chosen per file by default: transcripts whose language
probability is high are matched line by line, low-signal transcripts go
through dynamic time warping over the whole song.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAlign,
}

func init() {
	defaults := config.Default()

	alignCmd.Flags().StringVarP(&lyricsPath, "lyrics", "l", "", "reference lyrics file, one line per lyric (required)")
	alignCmd.Flags().StringVar(&songTitle, "title", "", "song title for the output metadata")
	alignCmd.Flags().StringArrayVar(&songArtists, "artist", nil, "artist name, repeatable")
	alignCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: next to each transcript)")
	alignCmd.Flags().StringVarP(&outFormat, "format", "f", defaults.Output.Format, "output format: json, srt, lrc or all")
	alignCmd.Flags().StringVarP(&strategy, "strategy", "s", worker.StrategyAuto, "matching strategy: auto, dtw, direct or greedy")
	alignCmd.Flags().IntVarP(&concurrency, "concurrency", "j", defaults.Batch.Concurrency, "transcripts to align in parallel")
	alignCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	alignCmd.MarkFlagRequired("lyrics")

	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	// Explicit flags win over the config file.
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = outFormat
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Batch.Concurrency = concurrency
	}

	if !worker.ValidStrategy(strategy) {
		return fmt.Errorf("unknown strategy %q (want auto, dtw, direct or greedy)", strategy)
	}
	formats, err := export.Formats(cfg.Output.Format)
	if err != nil {
		return err
	}

	lines, err := lyrics.LoadFile(lyricsPath)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no usable lyric lines in %s", lyricsPath)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := worker.Run(ctx, args, worker.Options{
		Lyrics:      lines,
		Title:       songTitle,
		Artists:     songArtists,
		Strategy:    strategy,
		Concurrency: cfg.Batch.Concurrency,
		Engine:      cfg.EngineOptions(),
		Group:       cfg.GroupOptions(),
	})

	exportOpts := export.Options{
		RoundTimes: cfg.Output.RoundTimes,
		Indent:     cfg.Output.Indent,
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Transcript", "Segments", "Method", "Quality", "Output"})
	if isatty.IsTerminal(os.Stdout.Fd()) {
		tw.SetStyle(table.StyleRounded)
	}

	failed := 0
	for _, r := range results {
		name := filepath.Base(r.File)
		if r.Err != nil {
			failed++
			tw.AppendRow(table.Row{name, "-", "-", "-", r.Err.Error()})
			continue
		}

		res := r.Result
		if res.Metadata.Quality < lowQuality {
			slog.Warn("low alignment quality, check the lyrics file",
				"file", name,
				"quality", fmt.Sprintf("%.2f", res.Metadata.Quality))
		}

		written := make([]string, 0, len(formats))
		var writeErr error
		for _, f := range formats {
			path := outputPath(r.File, outDir, f)
			if writeErr = export.WriteFile(path, res, f, exportOpts); writeErr != nil {
				break
			}
			written = append(written, filepath.Base(path))
		}

		quality := fmt.Sprintf("%.2f", res.Metadata.Quality)
		if writeErr != nil {
			failed++
			tw.AppendRow(table.Row{name, len(res.Segments), res.Metadata.Method, quality, writeErr.Error()})
			continue
		}
		tw.AppendRow(table.Row{name, len(res.Segments), res.Metadata.Method, quality, strings.Join(written, ", ")})
	}
	tw.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(results))
	}
	return nil
}

// outputPath derives the output file for one transcript and format,
// e.g. song.json -> song.aligned.srt. Keeping the extra suffix means the
// JSON output never overwrites the input transcript.
func outputPath(input, outDir, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, base+".aligned."+format)
}
