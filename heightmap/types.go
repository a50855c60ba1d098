package heightmap

// MaxHeight is the largest value a cell may hold.
const MaxHeight uint8 = 9

// Point is a signed grid coordinate. It may lie outside the grid.
type Point struct {
	X, Y int
}

// Add returns p shifted by the given offset.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// neighborOffsets lists the orthogonal directions N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// HeightMap is a rectangular grid of heights stored row-major.
// Width is fixed by the first row; cell (x,y) lives at data[y*Width+x].
// A HeightMap is only mutated through AddRow and is read-only afterwards.
type HeightMap struct {
	Width, Height int
	data          []uint8
}
