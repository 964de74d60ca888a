package align

// Span is a closed time interval in seconds.
type Span struct {
	Start float64
	End   float64
}

// Distribute partitions [start, end] into n equal-length contiguous spans:
// the first span starts at start, every span ends exactly where its
// successor begins, and the last end is pinned to end so accumulated
// floating-point drift never leaks into the output. A zero-duration input
// yields n zero-length spans. n < 1 returns nil; callers guarantee at least
// one unit. This is the single timing-allocation primitive, reused at word
// and syllable granularity.
func Distribute(start, end float64, n int) []Span {
	if n < 1 {
		return nil
	}

	width := (end - start) / float64(n)
	spans := make([]Span, n)
	for i := range spans {
		spans[i].Start = start + float64(i)*width
		spans[i].End = start + float64(i+1)*width
	}
	spans[0].Start = start
	spans[n-1].End = end

	return spans
}
