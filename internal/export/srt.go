package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sile16/karaoke/internal/align"
)

// WriteSRT renders one numbered SRT entry per aligned segment.
func WriteSRT(w io.Writer, res *align.Result) error {
	var b strings.Builder
	for i, seg := range res.Segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n", i+1, srtTime(seg.Start), srtTime(seg.End), seg.Text)
		if i < len(res.Segments)-1 {
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// srtTime converts seconds to the SRT time format HH:MM:SS,mmm.
func srtTime(seconds float64) string {
	ms := int(math.Round(seconds * 1000))
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
