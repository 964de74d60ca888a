package align

import "log/slog"

// direct maps each merged segment 1:1 to its most similar reference line,
// keeping the segment's own timing. Lines clearing the acceptance
// threshold replace the segment's text and words; the rest keep the
// original transcription with their word boundaries snapped contiguous.
// Per-segment quality is the best similarity found either way. The
// accepted count lets the router fall back to DTW when nothing cleared.
func (e *Engine) direct(segments []Segment, lines []string) (*Result, int, error) {
	res := &Result{Metadata: Metadata{Method: MethodDirect}}
	if len(segments) == 0 {
		return res, 0, nil
	}
	if len(lines) == 0 {
		return nil, 0, ErrNoReferenceLines
	}

	accepted := 0
	res.Segments = make([]AlignedSegment, 0, len(segments))

	for _, seg := range segments {
		best, bestSim := -1, 0.0
		for j, line := range lines {
			if sim := e.scorer.Similarity(seg.Text, line); sim > bestSim {
				best, bestSim = j, sim
			}
		}

		out := AlignedSegment{
			ID:         seg.ID,
			Text:       seg.Text,
			Start:      seg.Start,
			End:        seg.End,
			Confidence: seg.Confidence,
			Quality:    bestSim,
		}
		switch {
		case best >= 0 && bestSim > e.opts.AcceptThreshold:
			out.Text = lines[best]
			out.Words = synthesizeWords(lines[best], seg.Start, seg.End, seg.Confidence)
			accepted++
		case len(seg.Words) > 0:
			out.Words = contiguizeWords(seg.Words, seg.Start, seg.End)
		default:
			out.Words = synthesizeWords(seg.Text, seg.Start, seg.End, seg.Confidence)
		}
		res.Segments = append(res.Segments, out)
	}

	res.Metadata.Quality = meanQuality(res.Segments)
	res.Metadata.Duration = maxEnd(res.Segments)

	slog.Debug("direct matching complete",
		"segments", len(segments),
		"accepted", accepted,
		"quality", res.Metadata.Quality)

	return res, accepted, nil
}
