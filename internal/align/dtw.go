package align

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// align is the full DTW path: build the cost matrix, walk the minimum-cost
// monotonic path, reduce it to correspondences and synthesize one aligned
// segment per matched reference line. Inputs are already validated and
// merged; either being empty yields an empty result.
func (e *Engine) align(segments []Segment, lines []string) *Result {
	res := &Result{Metadata: Metadata{Method: MethodDTW}}
	if len(segments) == 0 || len(lines) == 0 {
		return res
	}

	cost := e.costMatrix(segments, lines)
	path, total := dtwPath(cost)
	corrs := pathCorrespondences(path, cost)

	res.Metadata.TotalCost = total
	res.Raw = corrs
	if len(corrs) > rawKeep {
		res.Raw = corrs[:rawKeep]
	}

	res.Segments = e.buildAligned(corrs, segments, lines)
	res.Metadata.Quality = meanQuality(res.Segments)
	res.Metadata.Duration = maxEnd(res.Segments)

	slog.Debug("dtw alignment complete",
		"segments", len(segments),
		"lines", len(lines),
		"matched", len(res.Segments),
		"quality", res.Metadata.Quality,
		"total_cost", total)

	return res
}

// costMatrix fills cost[i][j] = 1 - similarity(segment i, line j). The DTW
// cost space always uses token-set similarity; the configured strategy
// only steers the direct and greedy matchers.
func (e *Engine) costMatrix(segments []Segment, lines []string) *mat.Dense {
	cost := mat.NewDense(len(segments), len(lines), nil)
	for i, seg := range segments {
		for j, line := range lines {
			cost.Set(i, j, 1-e.tokens.Similarity(seg.Text, line))
		}
	}
	return cost
}

// dtwPath accumulates minimum path costs over the matrix and backtraces
// the cheapest monotonic path from the last cell to the first. Both the
// accumulation and the backtrace prefer the diagonal step on ties, which
// keeps one-to-many degeneration in check. Returns the path cells in
// forward order and the total accumulated cost.
func dtwPath(cost *mat.Dense) ([][2]int, float64) {
	r, c := cost.Dims()

	acc := mat.NewDense(r, c, nil)
	acc.Set(0, 0, cost.At(0, 0))
	for i := 1; i < r; i++ {
		acc.Set(i, 0, acc.At(i-1, 0)+cost.At(i, 0))
	}
	for j := 1; j < c; j++ {
		acc.Set(0, j, acc.At(0, j-1)+cost.At(0, j))
	}
	for i := 1; i < r; i++ {
		for j := 1; j < c; j++ {
			best := acc.At(i-1, j-1)
			if v := acc.At(i-1, j); v < best {
				best = v
			}
			if v := acc.At(i, j-1); v < best {
				best = v
			}
			acc.Set(i, j, cost.At(i, j)+best)
		}
	}

	path := [][2]int{{r - 1, c - 1}}
	i, j := r-1, c-1
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			diag := acc.At(i-1, j-1)
			up := acc.At(i-1, j)
			left := acc.At(i, j-1)
			if diag <= up && diag <= left {
				i--
				j--
			} else if up < left {
				i--
			} else {
				j--
			}
		}
		path = append(path, [2]int{i, j})
	}

	for lo, hi := 0, len(path)-1; lo < hi; lo, hi = lo+1, hi-1 {
		path[lo], path[hi] = path[hi], path[lo]
	}

	return path, acc.At(r-1, c-1)
}

// pathCorrespondences reduces raw path cells to one correspondence per
// transcript segment: its best-similarity cell, the earliest line on ties.
// Cells sharing a segment index are consecutive on a monotonic path, and
// the reduction keeps line indices non-decreasing.
func pathCorrespondences(path [][2]int, cost *mat.Dense) []Correspondence {
	var out []Correspondence
	for _, cell := range path {
		i, j := cell[0], cell[1]
		sim := 1 - cost.At(i, j)

		if n := len(out); n > 0 && out[n-1].SegmentIndex == i {
			if sim > out[n-1].Similarity {
				out[n-1].LineIndex = j
				out[n-1].Similarity = sim
			}
			continue
		}
		out = append(out, Correspondence{SegmentIndex: i, LineIndex: j, Similarity: sim})
	}
	return out
}

// buildAligned groups correspondences by reference line and emits one
// aligned segment per matched line in canonical order: the timing spans
// the grouped transcript segments, confidence and quality are their means,
// and the text is the reference line itself. Lines with no correspondence
// are omitted.
func (e *Engine) buildAligned(corrs []Correspondence, segments []Segment, lines []string) []AlignedSegment {
	groups := make(map[int][]Correspondence)
	for _, c := range corrs {
		groups[c.LineIndex] = append(groups[c.LineIndex], c)
	}

	indices := make([]int, 0, len(groups))
	for idx := range groups {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	aligned := make([]AlignedSegment, 0, len(indices))
	for _, idx := range indices {
		group := groups[idx]

		first := segments[group[0].SegmentIndex]
		start, end := first.Start, first.End
		var confidence, quality float64
		for _, c := range group {
			seg := segments[c.SegmentIndex]
			if seg.Start < start {
				start = seg.Start
			}
			if seg.End > end {
				end = seg.End
			}
			confidence += seg.Confidence
			quality += c.Similarity
		}
		confidence /= float64(len(group))
		quality /= float64(len(group))

		aligned = append(aligned, AlignedSegment{
			ID:         fmt.Sprintf("aligned_%03d", idx),
			Text:       lines[idx],
			Start:      start,
			End:        end,
			Confidence: confidence,
			Quality:    quality,
			Words:      synthesizeWords(lines[idx], start, end, confidence),
		})
	}

	return aligned
}
