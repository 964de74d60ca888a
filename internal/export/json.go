package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/sile16/karaoke/internal/align"
)

// WriteJSON encodes res as a UTF-8 JSON document. With RoundTimes on, every
// segment, word and syllable time is rounded to milliseconds before
// encoding; res itself is never mutated.
func WriteJSON(w io.Writer, res *align.Result, opts Options) error {
	if opts.RoundTimes {
		res = rounded(res)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// rounded deep-copies res with all times rounded to milliseconds. Equal
// inputs round to equal outputs, so word and syllable boundaries that
// coincide keep coinciding.
func rounded(res *align.Result) *align.Result {
	out := *res
	out.Metadata.Duration = round3(res.Metadata.Duration)

	out.Segments = make([]align.AlignedSegment, len(res.Segments))
	for i, seg := range res.Segments {
		seg.Start, seg.End = round3(seg.Start), round3(seg.End)

		words := make([]align.AlignedWord, len(seg.Words))
		for j, word := range seg.Words {
			word.Start, word.End = round3(word.Start), round3(word.End)

			sylls := make([]align.Syllable, len(word.Syllables))
			for k, syll := range word.Syllables {
				syll.Start, syll.End = round3(syll.Start), round3(syll.End)
				sylls[k] = syll
			}
			word.Syllables = sylls
			words[j] = word
		}
		seg.Words = words
		out.Segments[i] = seg
	}

	return &out
}
