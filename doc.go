// Package basins surveys heightmaps: grids of digit heights in which local
// minima ("low points") drain into basins bounded by height-9 cells.
//
// The module is organized into small subpackages:
//
//	heightmap/ — grid storage, parsing, bounded lookups and low points
//	basin/     — worklist flood fill from a seed, basin sets and options
//	survey/    — risk level sum, top-k basin product and report lines
//	inputs/    — embedded datasets and plain or zstd-compressed files
//	config/    — YAML settings with defaults and validation
//	cmd/basins — the command line entry point
//
// Quick ASCII example (· = part of the top-left basin):
//
//	· · 9 9 9
//	· 9 8 7 8
//	9 8 5 6 7
//
// Run it with:
//
//	go run ./cmd/basins
package basins
