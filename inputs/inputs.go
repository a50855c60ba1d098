// Package inputs supplies the heightmap texts: the two datasets embedded at
// build time and files on disk, optionally zstd-compressed.
package inputs

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//go:embed data/test.txt
var testText string

//go:embed data/input.txt
var fullText string

// ErrEmptyPath is returned when Load is called without a path.
var ErrEmptyPath = errors.New("inputs: empty path")

// Test returns the embedded sample grid.
func Test() string { return testText }

// Full returns the embedded full-size grid.
func Full() string { return fullText }

// Load reads the file at path. Names ending in ".zst" are decompressed.
func Load(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("inputs: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("inputs: %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("inputs: %s: %w", path, err)
	}

	return string(b), nil
}

// Resolve loads path, or returns fallback when path is empty.
func Resolve(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, nil
	}
	return Load(path)
}
