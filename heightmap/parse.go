package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 8 * 1024 * 1024

// Parse builds a HeightMap from text holding one row per line, each
// character a decimal digit. A trailing newline and CRLF line endings are
// accepted; the empty string yields an empty map.
func Parse(text string) (*HeightMap, error) {
	return Read(strings.NewReader(text))
}

// Read is the streaming form of Parse.
func Read(r io.Reader) (*HeightMap, error) {
	hm := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		row, err := parseRow(strings.TrimSuffix(sc.Text(), "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := hm.AddRow(row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}

	return hm, nil
}

func parseRow(s string) ([]uint8, error) {
	row := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w %q at column %d", ErrNonDigit, c, i+1)
		}
		row[i] = c - '0'
	}

	return row, nil
}
