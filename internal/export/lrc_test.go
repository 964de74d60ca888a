package export

import (
	"strings"
	"testing"

	"github.com/sile16/karaoke/internal/align"
)

func TestWriteLRC_TagsAndWordTiming(t *testing.T) {
	var b strings.Builder
	if err := WriteLRC(&b, sampleResult()); err != nil {
		t.Fatalf("WriteLRC: %v", err)
	}

	want := `[ti:Yana Yana]
[ar:Semicenk, Reynmen]
[la:tur]

[00:00.00]<00:00.00>Yana <00:00.75>yana <00:01.50>sevdik <00:02.25>bazen<00:03.00>
`
	if b.String() != want {
		t.Errorf("WriteLRC =\n%q\nwant\n%q", b.String(), want)
	}
}

func TestWriteLRC_NoMetadataNoTags(t *testing.T) {
	res := sampleResult()
	res.Metadata = align.Metadata{}

	var b strings.Builder
	if err := WriteLRC(&b, res); err != nil {
		t.Fatalf("WriteLRC: %v", err)
	}

	got := b.String()
	if strings.Contains(got, "[ti:") || strings.Contains(got, "[ar:") {
		t.Errorf("unexpected ID tags:\n%q", got)
	}
	if !strings.HasPrefix(got, "[00:00.00]") {
		t.Errorf("expected output to start with the line tag:\n%q", got)
	}
}

func TestWriteLRC_SegmentWithoutWords(t *testing.T) {
	res := &align.Result{Segments: []align.AlignedSegment{{
		Text: "Yana yana", Start: 12.34, End: 15,
	}}}

	var b strings.Builder
	if err := WriteLRC(&b, res); err != nil {
		t.Fatalf("WriteLRC: %v", err)
	}
	want := "[00:12.34]Yana yana\n"
	if b.String() != want {
		t.Errorf("WriteLRC = %q, want %q", b.String(), want)
	}
}

func TestLrcTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00.00"},
		{0.007, "00:00.01"},
		{12.34, "00:12.34"},
		{61.5, "01:01.50"},
		{600, "10:00.00"},
		{-0.5, "00:00.00"}, // clamped
	}

	for _, tt := range tests {
		got := lrcTime(tt.seconds)
		if got != tt.want {
			t.Errorf("lrcTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
