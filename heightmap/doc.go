// Package heightmap stores a rectangular grid of digit heights and answers
// bounded point queries over it.
//
// What:
//
//   - HeightMap keeps Width×Height values (0–9) in a flat row-major slice.
//   - Value reports absence for coordinates outside the grid instead of failing,
//     so callers can treat the outside as "infinitely high".
//   - LowPoints enumerates every cell strictly lower than its four orthogonal
//     neighbours.
//   - Parse and Read build a HeightMap from newline-separated digit rows.
//
// Complexity:
//
//   - AddRow:     O(W) amortised.
//   - Value:      O(1).
//   - LowPoints:  O(W×H), Memory: O(number of low points).
//
// Errors:
//
//   - ErrEmptyRow: a row with no cells was appended.
//   - ErrRaggedRow: a row length differs from the established width.
//   - ErrBadHeight: a row holds a value above MaxHeight.
//   - ErrNonDigit: input text contains a character other than 0–9.
package heightmap
