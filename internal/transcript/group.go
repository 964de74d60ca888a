package transcript

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sile16/karaoke/internal/align"
)

// GroupOptions tunes word→segment grouping.
type GroupOptions struct {
	// MaxWords closes a segment once it holds this many words.
	MaxWords int
	// MaxGap closes a segment when the next word starts more than this many
	// seconds after the current one ends.
	MaxGap float64
	// BreakPunctuation closes a segment after a word ending in any of these
	// runes.
	BreakPunctuation string
}

// DefaultGroupOptions returns the standard grouping parameters.
func DefaultGroupOptions() GroupOptions {
	return GroupOptions{
		MaxWords:         8,
		MaxGap:           1.0,
		BreakPunctuation: ".?!,",
	}
}

// Segments groups the response's word stream into transcript segments. Only
// "word" tokens survive (spacing and audio events are dropped); a segment
// closes on trailing break punctuation, on a silence gap longer than MaxGap,
// on reaching MaxWords, and at the end of the stream. Segment confidence is
// the mean confidence of its scored words, falling back to the response's
// language probability when none are scored.
func (r *Response) Segments(opts GroupOptions) []align.Segment {
	words := r.spokenWords()
	if len(words) == 0 {
		return nil
	}

	var segments []align.Segment
	var current []Word

	for i, w := range words {
		current = append(current, w)

		gap := i+1 < len(words) && words[i+1].Start-w.End > opts.MaxGap
		if endsWithBreak(w.Text, opts.BreakPunctuation) || gap ||
			len(current) >= opts.MaxWords || i == len(words)-1 {
			segments = append(segments, r.buildSegment(current, len(segments)))
			current = nil
		}
	}

	return segments
}

// spokenWords filters the raw token stream down to trimmed, non-empty word
// tokens. A missing type counts as a word: not every service tags tokens.
func (r *Response) spokenWords() []Word {
	var words []Word
	for _, w := range r.Words {
		if w.Type != TypeWord && w.Type != "" {
			continue
		}
		w.Text = strings.TrimSpace(w.Text)
		if w.Text == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

func (r *Response) buildSegment(words []Word, index int) align.Segment {
	texts := make([]string, len(words))
	aligned := make([]align.Word, len(words))
	scored, sum := 0, 0.0
	for i, w := range words {
		texts[i] = w.Text
		aligned[i] = align.Word{Text: w.Text, Start: w.Start, End: w.End, Confidence: w.Confidence}
		if w.Confidence > 0 {
			scored++
			sum += w.Confidence
		}
	}

	confidence := r.LanguageProbability
	if scored > 0 {
		confidence = sum / float64(scored)
	}

	return align.Segment{
		ID:         fmt.Sprintf("segment_%03d", index),
		Text:       strings.Join(texts, " "),
		Start:      words[0].Start,
		End:        words[len(words)-1].End,
		Confidence: confidence,
		Words:      aligned,
	}
}

// endsWithBreak reports whether text's last rune is break punctuation.
func endsWithBreak(text, breaks string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	return strings.ContainsRune(breaks, last)
}
