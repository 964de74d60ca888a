package align

import "sort"

// Merge deduplicates time-overlapping segments into an ordered,
// non-overlapping sequence. Segments are walked in start order keeping one
// open segment; a newcomer overlapping it (next.Start <= current.End)
// replaces its text, words and confidence only when strictly more
// confident, extending the span to cover both. Lower-confidence overlaps
// are absorbed without extending. Exactly one segment survives per maximal
// overlap run, and merging an already non-overlapping sequence returns it
// unchanged. Structural validation runs first; the first inconsistent unit
// aborts with a typed error.
func Merge(segments []Segment) ([]Segment, error) {
	if err := ValidateSegments(segments); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}

	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Segment, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			if next.Confidence > current.Confidence {
				current.Text = next.Text
				current.Words = next.Words
				current.Confidence = next.Confidence
				if next.End > current.End {
					current.End = next.End
				}
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged, nil
}
