package transcript

import (
	"math"
	"testing"
)

func word(text string, start, end float64) Word {
	return Word{Text: text, Start: start, End: end, Type: TypeWord}
}

func TestSegments_Empty(t *testing.T) {
	r := &Response{}
	if segs := r.Segments(DefaultGroupOptions()); segs != nil {
		t.Errorf("expected nil for empty response, got %v", segs)
	}
}

func TestSegments_PunctuationBreak(t *testing.T) {
	r := &Response{Words: []Word{
		word("yana", 0, 0.5),
		word("sevdik.", 0.5, 1),
		word("bazen", 1.1, 1.6),
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "yana sevdik." {
		t.Errorf("first text = %q, want 'yana sevdik.'", segs[0].Text)
	}
	if segs[1].Text != "bazen" {
		t.Errorf("second text = %q, want 'bazen'", segs[1].Text)
	}
}

func TestSegments_GapBreak(t *testing.T) {
	r := &Response{Words: []Word{
		word("yana", 0, 1),
		word("sevdik", 2.5, 3), // 1.5s of silence before this word
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].End != 1 || segs[1].Start != 2.5 {
		t.Errorf("segment bounds = %v and %v, want 1 and 2.5", segs[0].End, segs[1].Start)
	}
}

func TestSegments_GapWithinLimitKeepsGoing(t *testing.T) {
	r := &Response{Words: []Word{
		word("yana", 0, 1),
		word("sevdik", 1.8, 2.3), // 0.8s gap, under the 1.0s limit
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
}

func TestSegments_MaxWordsBreak(t *testing.T) {
	var words []Word
	for i := 0; i < 10; i++ {
		s := float64(i) * 0.5
		words = append(words, word("la", s, s+0.4))
	}
	r := &Response{Words: words}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if len(segs[0].Words) != 8 || len(segs[1].Words) != 2 {
		t.Errorf("segment word counts = %d and %d, want 8 and 2", len(segs[0].Words), len(segs[1].Words))
	}
}

func TestSegments_DropsNonWordTokens(t *testing.T) {
	r := &Response{Words: []Word{
		word("yana", 0, 0.5),
		{Text: " ", Start: 0.5, End: 0.5, Type: TypeSpacing},
		{Text: "(applause)", Start: 0.5, End: 1, Type: TypeAudioEvent},
		word("sevdik", 1, 1.5),
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Text != "yana sevdik" {
		t.Errorf("text = %q, want 'yana sevdik'", segs[0].Text)
	}
	if len(segs[0].Words) != 2 {
		t.Errorf("got %d words, want 2", len(segs[0].Words))
	}
}

func TestSegments_UntypedTokensCountAsWords(t *testing.T) {
	r := &Response{Words: []Word{
		{Text: "yana", Start: 0, End: 0.5},
		{Text: "sevdik", Start: 0.5, End: 1},
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 1 || segs[0].Text != "yana sevdik" {
		t.Fatalf("segments = %+v, want one 'yana sevdik'", segs)
	}
}

func TestSegments_ConfidenceFromWords(t *testing.T) {
	r := &Response{LanguageProbability: 0.95, Words: []Word{
		{Text: "yana", Start: 0, End: 0.5, Type: TypeWord, Confidence: 0.8},
		{Text: "sevdik", Start: 0.5, End: 1, Type: TypeWord, Confidence: 0.6},
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if got := segs[0].Confidence; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("confidence = %v, want mean 0.7", got)
	}
}

func TestSegments_ConfidenceFallsBackToLanguageProbability(t *testing.T) {
	r := &Response{LanguageProbability: 0.92, Words: []Word{
		word("yana", 0, 0.5),
		word("sevdik", 0.5, 1),
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", segs[0].Confidence)
	}
}

func TestSegments_IDsAndTiming(t *testing.T) {
	r := &Response{Words: []Word{
		word("yana.", 0.2, 0.9),
		word("sevdik.", 1.4, 2.1),
	}}

	segs := r.Segments(DefaultGroupOptions())
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].ID != "segment_000" || segs[1].ID != "segment_001" {
		t.Errorf("IDs = %q, %q, want segment_000, segment_001", segs[0].ID, segs[1].ID)
	}
	if segs[0].Start != 0.2 || segs[0].End != 0.9 {
		t.Errorf("first segment spans [%v, %v], want [0.2, 0.9]", segs[0].Start, segs[0].End)
	}
}

func TestEndsWithBreak(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"sevdik.", true},
		{"bazen?", true},
		{"yana!", true},
		{"ardından,", true},
		{"yana", false},
		{"", false},
		{"  ", false},
	}

	for _, tt := range tests {
		if got := endsWithBreak(tt.text, DefaultGroupOptions().BreakPunctuation); got != tt.want {
			t.Errorf("endsWithBreak(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
