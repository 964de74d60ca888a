package align

import (
	"fmt"
	"log/slog"
)

// sequentialBonus rewards greedy matches that advance past the last
// matched line, nudging the result toward canonical lyric order.
const sequentialBonus = 0.1

// greedy walks merged segments in transcript order and gives each the
// highest-scoring reference line not yet taken. Scores earn the sequential
// bonus when the candidate line lies past the last match (or nothing has
// matched yet). Segments whose best bonused score stays at or below the
// match threshold are dropped, and every line is used at most once. It
// stands in for an external reasoning-assisted matcher when none is
// available.
func (e *Engine) greedy(segments []Segment, lines []string) (*Result, error) {
	res := &Result{Metadata: Metadata{Method: MethodGreedy}}
	if len(segments) == 0 {
		return res, nil
	}
	if len(lines) == 0 {
		return nil, ErrNoReferenceLines
	}

	used := make(map[int]bool, len(lines))
	lastMatched := -1

	for _, seg := range segments {
		best, bestScore := -1, 0.0
		for j, line := range lines {
			if used[j] {
				continue
			}
			score := e.scorer.Similarity(seg.Text, line)
			if j > lastMatched {
				score += sequentialBonus
			}
			if score > bestScore {
				best, bestScore = j, score
			}
		}
		if best < 0 || bestScore <= e.opts.MatchThreshold {
			continue
		}

		used[best] = true
		lastMatched = best

		quality := bestScore
		if quality > 1 {
			quality = 1
		}
		res.Segments = append(res.Segments, AlignedSegment{
			ID:         fmt.Sprintf("aligned_%03d", best),
			Text:       lines[best],
			Start:      seg.Start,
			End:        seg.End,
			Confidence: seg.Confidence,
			Quality:    quality,
			Words:      synthesizeWords(lines[best], seg.Start, seg.End, seg.Confidence),
		})
	}

	res.Metadata.Quality = meanQuality(res.Segments)
	res.Metadata.Duration = maxEnd(res.Segments)

	slog.Debug("greedy matching complete",
		"segments", len(segments),
		"matched", len(res.Segments),
		"quality", res.Metadata.Quality)

	return res, nil
}
