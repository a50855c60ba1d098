package heightmap

import "errors"

var (
	// ErrEmptyRow indicates a row with no cells.
	ErrEmptyRow = errors.New("heightmap: row must have at least one cell")
	// ErrRaggedRow indicates rows of differing lengths.
	ErrRaggedRow = errors.New("heightmap: all rows must have the same length")
	// ErrBadHeight indicates a cell value above MaxHeight.
	ErrBadHeight = errors.New("heightmap: height out of range")
	// ErrNonDigit indicates a character that is not a decimal digit.
	ErrNonDigit = errors.New("heightmap: non-digit character")
)
