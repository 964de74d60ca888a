package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sile16/karaoke/internal/align"
)

// WriteLRC renders enhanced LRC: ID tags from metadata, then one line per
// aligned segment with a [mm:ss.xx] line tag, a <mm:ss.xx> tag before each
// word and a closing tag at the segment end.
func WriteLRC(w io.Writer, res *align.Result) error {
	var b strings.Builder

	meta := res.Metadata
	if meta.Title != "" {
		fmt.Fprintf(&b, "[ti:%s]\n", meta.Title)
	}
	if len(meta.Artists) > 0 {
		fmt.Fprintf(&b, "[ar:%s]\n", strings.Join(meta.Artists, ", "))
	}
	if meta.Language != "" {
		fmt.Fprintf(&b, "[la:%s]\n", meta.Language)
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}

	for _, seg := range res.Segments {
		fmt.Fprintf(&b, "[%s]", lrcTime(seg.Start))
		if len(seg.Words) == 0 {
			b.WriteString(seg.Text)
			b.WriteByte('\n')
			continue
		}
		for i, word := range seg.Words {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "<%s>%s", lrcTime(word.Start), word.Text)
		}
		fmt.Fprintf(&b, "<%s>\n", lrcTime(seg.End))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// lrcTime converts seconds to the LRC time format mm:ss.xx (centiseconds).
func lrcTime(seconds float64) string {
	cs := int(math.Round(seconds * 100))
	if cs < 0 {
		cs = 0
	}
	m := cs / 6000
	cs -= m * 6000
	s := cs / 100
	cs -= s * 100
	return fmt.Sprintf("%02d:%02d.%02d", m, s, cs)
}
