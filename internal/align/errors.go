package align

import (
	"errors"
	"fmt"
)

// ErrNoReferenceLines is returned when a matching mode that structurally
// requires reference lines is invoked without any.
var ErrNoReferenceLines = errors.New("no reference lines")

// TimingError reports a segment or word whose start lies after its end.
// Word is -1 when the segment's own span is inconsistent.
type TimingError struct {
	Segment int
	Word    int
	Start   float64
	End     float64
}

func (e *TimingError) Error() string {
	if e.Word < 0 {
		return fmt.Sprintf("segment %d: start %.3f after end %.3f", e.Segment, e.Start, e.End)
	}
	return fmt.Sprintf("segment %d word %d: start %.3f after end %.3f", e.Segment, e.Word, e.Start, e.End)
}

// OrderError reports a word that starts before its predecessor within one
// segment. Downstream timing synthesis assumes words arrive in time order.
type OrderError struct {
	Segment int
	Word    int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("segment %d word %d starts before word %d", e.Segment, e.Word, e.Word-1)
}

// ValidateSegments fails fast on the first unit breaking the non-negative
// duration or word ordering invariants, naming the offending index. A valid
// empty input returns nil.
func ValidateSegments(segments []Segment) error {
	for i, seg := range segments {
		if seg.Start > seg.End {
			return &TimingError{Segment: i, Word: -1, Start: seg.Start, End: seg.End}
		}
		for j, w := range seg.Words {
			if w.Start > w.End {
				return &TimingError{Segment: i, Word: j, Start: w.Start, End: w.End}
			}
			if j > 0 && w.Start < seg.Words[j-1].Start {
				return &OrderError{Segment: i, Word: j}
			}
		}
	}
	return nil
}
