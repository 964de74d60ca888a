// Package lyrics loads reference lyric lines from plain text files. Line
// order is load-bearing: the alignment engine treats it as the canonical
// sequence of the song.
package lyrics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads one lyric line per input line, skipping blank lines and
// [section] header lines such as [Chorus].
func Load(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isSectionHeader(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lyrics: %w", err)
	}

	return lines, nil
}

// LoadFile reads the lyrics file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lyrics: %w", err)
	}
	defer f.Close()

	lines, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

func isSectionHeader(line string) bool {
	return strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}
