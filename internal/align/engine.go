// Package align matches noisy, word-timestamped transcript segments
// against an authoritative sequence of reference lines and synthesizes
// timing down to words and syllables. The engine is pure computation over
// fully materialized inputs: no IO, no shared state, parallelizable per
// call by the caller.
package align

import (
	"log/slog"
	"strings"

	"github.com/sile16/karaoke/internal/syllable"
)

// Alignment method names reported in result metadata.
const (
	MethodDTW    = "DTW"
	MethodDirect = "direct"
	MethodGreedy = "greedy"
)

// rawKeep caps the correspondences kept on a result for debugging.
const rawKeep = 10

// Options configures the alignment engine.
type Options struct {
	// Strategy steers the direct and greedy matchers; the DTW cost space
	// always scores with token-set similarity. Empty means char-sequence.
	Strategy Strategy
	// DirectThreshold is the minimum confidence signal routing a batch to
	// the direct path.
	DirectThreshold float64
	// AcceptThreshold is the minimum similarity for a direct match to
	// adopt a reference line.
	AcceptThreshold float64
	// MatchThreshold is the minimum bonused score for the greedy matcher
	// to accept a line.
	MatchThreshold float64
	// Stopwords are dropped during tokenization.
	Stopwords []string
}

// DefaultOptions returns the standard engine configuration.
func DefaultOptions() Options {
	return Options{
		Strategy:        StrategyCharSequence,
		DirectThreshold: 0.9,
		AcceptThreshold: 0.6,
		MatchThreshold:  0.3,
		Stopwords:       DefaultStopwords,
	}
}

// Engine aligns transcript segments against reference lines. Engines are
// cheap to build and not safe for concurrent use; create one per parallel
// alignment call.
type Engine struct {
	opts   Options
	norm   *Normalizer
	scorer *Scorer // configured strategy, direct + greedy paths
	tokens *Scorer // token-set strategy, DTW cost space
}

// New creates an engine from opts.
func New(opts Options) *Engine {
	norm := NewNormalizer(opts.Stopwords)
	return &Engine{
		opts:   opts,
		norm:   norm,
		scorer: NewScorer(opts.Strategy, norm),
		tokens: NewScorer(StrategyTokenSet, norm),
	}
}

// Process validates and merges the transcript, then routes the whole batch
// to one matching strategy based on the confidence signal: the direct path
// when the signal clears the direct threshold, full DTW alignment
// otherwise. Strategies are never mixed within a call; a direct pass in
// which no segment clears the acceptance bar is rerun through DTW.
func (e *Engine) Process(segments []Segment, lines []string, signal float64) (*Result, error) {
	merged, err := Merge(segments)
	if err != nil {
		return nil, err
	}

	if signal >= e.opts.DirectThreshold {
		slog.Debug("routing to direct path", "signal", signal, "segments", len(merged))
		res, accepted, err := e.direct(merged, lines)
		if err != nil {
			return nil, err
		}
		if accepted > 0 || len(merged) == 0 {
			return res, nil
		}
		slog.Debug("direct path accepted nothing, realigning with dtw")
	} else {
		slog.Debug("routing to dtw", "signal", signal, "segments", len(merged))
	}

	return e.align(merged, lines), nil
}

// Align runs the full DTW alignment regardless of any confidence signal.
// The transcript is validated and merged first; an empty transcript or
// empty reference sequence yields an empty result without error.
func (e *Engine) Align(segments []Segment, lines []string) (*Result, error) {
	merged, err := Merge(segments)
	if err != nil {
		return nil, err
	}
	return e.align(merged, lines), nil
}

// DirectMatch forces the direct 1:1 path regardless of any confidence
// signal and without the DTW fallback. A non-empty transcript requires at
// least one reference line.
func (e *Engine) DirectMatch(segments []Segment, lines []string) (*Result, error) {
	merged, err := Merge(segments)
	if err != nil {
		return nil, err
	}
	res, _, err := e.direct(merged, lines)
	return res, err
}

// MatchGreedy forces the greedy fallback matcher. A non-empty transcript
// requires at least one reference line.
func (e *Engine) MatchGreedy(segments []Segment, lines []string) (*Result, error) {
	merged, err := Merge(segments)
	if err != nil {
		return nil, err
	}
	return e.greedy(merged, lines)
}

// synthesizeWords lays the text's whitespace-split words evenly across
// [start, end] and splits each word into timed syllables. The words
// contiguously partition the span.
func synthesizeWords(text string, start, end, confidence float64) []AlignedWord {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	spans := Distribute(start, end, len(fields))
	words := make([]AlignedWord, len(fields))
	for i, field := range fields {
		words[i] = AlignedWord{
			Text:       field,
			Start:      spans[i].Start,
			End:        spans[i].End,
			Confidence: confidence,
			Syllables:  syllableSpans(field, spans[i].Start, spans[i].End),
		}
	}
	return words
}

// contiguizeWords pins a segment's own timed words into a gapless
// partition of [start, end]: each word ends where its successor begins,
// the first and last are pinned to the segment bounds. Word confidences
// are kept.
func contiguizeWords(words []Word, start, end float64) []AlignedWord {
	out := make([]AlignedWord, len(words))
	for i, w := range words {
		s := w.Start
		if i == 0 {
			s = start
		}
		e := end
		if i+1 < len(words) {
			e = words[i+1].Start
		}
		if e < s {
			e = s
		}
		out[i] = AlignedWord{
			Text:       w.Text,
			Start:      s,
			End:        e,
			Confidence: w.Confidence,
			Syllables:  syllableSpans(w.Text, s, e),
		}
	}
	return out
}

// syllableSpans splits a word and distributes its time span across the
// syllables.
func syllableSpans(word string, start, end float64) []Syllable {
	parts := syllable.Split(word)
	spans := Distribute(start, end, len(parts))

	sylls := make([]Syllable, len(parts))
	for i, part := range parts {
		sylls[i] = Syllable{Text: part, Start: spans[i].Start, End: spans[i].End}
	}
	return sylls
}

// meanQuality averages per-segment alignment quality; the overall quality
// reported in metadata.
func meanQuality(segments []AlignedSegment) float64 {
	if len(segments) == 0 {
		return 0
	}
	var sum float64
	for _, s := range segments {
		sum += s.Quality
	}
	return sum / float64(len(segments))
}

// maxEnd is the duration reported in metadata: the latest end time over
// the aligned segments.
func maxEnd(segments []AlignedSegment) float64 {
	var end float64
	for _, s := range segments {
		if s.End > end {
			end = s.End
		}
	}
	return end
}
