// Package export renders alignment results into distributable formats: a
// JSON document, SRT subtitles and enhanced LRC karaoke lines.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sile16/karaoke/internal/align"
)

// Output format names as accepted on the CLI and in configuration.
const (
	FormatJSON = "json"
	FormatSRT  = "srt"
	FormatLRC  = "lrc"
	FormatAll  = "all"
)

// Options tunes the writers.
type Options struct {
	// RoundTimes rounds every emitted time to milliseconds. Applied
	// uniformly, so contiguous spans stay contiguous.
	RoundTimes bool
	// Indent pretty-prints JSON output.
	Indent bool
}

// Formats expands a format name into the concrete formats to write.
func Formats(format string) ([]string, error) {
	switch format {
	case FormatJSON, FormatSRT, FormatLRC:
		return []string{format}, nil
	case FormatAll:
		return []string{FormatJSON, FormatSRT, FormatLRC}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// WriteFile renders res in the given format and writes it to path.
func WriteFile(path string, res *align.Result, format string, opts Options) error {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJSON:
		err = WriteJSON(&buf, res, opts)
	case FormatSRT:
		err = WriteSRT(&buf, res)
	case FormatLRC:
		err = WriteLRC(&buf, res)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
