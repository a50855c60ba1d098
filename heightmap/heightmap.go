package heightmap

import (
	"fmt"
	"strings"
)

// New returns an empty HeightMap with zero width and height.
func New() *HeightMap {
	return &HeightMap{}
}

// AddRow appends a row of heights. The first row fixes Width; every later
// row must match it. The map is left untouched when an error is returned.
// Complexity: O(len(row)) amortised.
func (hm *HeightMap) AddRow(row []uint8) error {
	if len(row) == 0 {
		return ErrEmptyRow
	}
	if hm.Width != 0 && len(row) != hm.Width {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, hm.Height, len(row), hm.Width)
	}
	for x, v := range row {
		if v > MaxHeight {
			return fmt.Errorf("%w: %d at (%d,%d)", ErrBadHeight, v, x, hm.Height)
		}
	}
	if hm.Width == 0 {
		hm.Width = len(row)
	}
	hm.data = append(hm.data, row...)
	hm.Height++

	return nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (hm *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && x < hm.Width && y >= 0 && y < hm.Height
}

// Value returns the height at (x,y). The boolean is false when the
// coordinate is outside the grid.
// Complexity: O(1).
func (hm *HeightMap) Value(x, y int) (uint8, bool) {
	if !hm.InBounds(x, y) {
		return 0, false
	}

	return hm.data[hm.index(x, y)], true
}

// At is Value for a Point.
func (hm *HeightMap) At(p Point) (uint8, bool) {
	return hm.Value(p.X, p.Y)
}

// Neighbors returns the four orthogonal neighbours of p in N, E, S, W order.
// Some of them may be out of bounds.
func (hm *HeightMap) Neighbors(p Point) [4]Point {
	var out [4]Point
	for i, d := range neighborOffsets {
		out[i] = p.Add(d[0], d[1])
	}

	return out
}

// IsLowerThanNeighbours reports whether the cell at (x,y) is strictly lower
// than each orthogonal neighbour. A missing neighbour counts as higher than
// any cell. It panics if (x,y) is out of bounds.
// Complexity: O(1).
func (hm *HeightMap) IsLowerThanNeighbours(x, y int) bool {
	v, ok := hm.Value(x, y)
	if !ok {
		panic(fmt.Sprintf("heightmap: IsLowerThanNeighbours(%d,%d) outside %dx%d grid", x, y, hm.Width, hm.Height))
	}
	for _, d := range neighborOffsets {
		n, ok := hm.Value(x+d[0], y+d[1])
		if ok && v >= n {
			return false
		}
	}

	return true
}

// LowPoints returns every cell lower than all of its neighbours.
// Cells are visited column by column (x outer, y inner).
// Complexity: O(W×H).
func (hm *HeightMap) LowPoints() []Point {
	var out []Point
	for x := 0; x < hm.Width; x++ {
		for y := 0; y < hm.Height; y++ {
			if hm.IsLowerThanNeighbours(x, y) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}

	return out
}

// String renders the grid as newline-separated digit rows.
func (hm *HeightMap) String() string {
	var sb strings.Builder
	sb.Grow(hm.Height * (hm.Width + 1))
	for y := 0; y < hm.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range hm.data[y*hm.Width : (y+1)*hm.Width] {
			sb.WriteByte('0' + v)
		}
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (hm *HeightMap) index(x, y int) int {
	return y*hm.Width + x
}
