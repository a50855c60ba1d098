package heightmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-basins/heightmap"
)

const sample = "2199943210\n3987894921\n9856789892\n8767896789\n9899965678\n"

//----------------------------------------------------------------------------//
// AddRow Tests
//----------------------------------------------------------------------------//

// TestAddRow_Errors verifies that AddRow rejects empty, ragged and out-of-range rows.
func TestAddRow_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
		err  error
	}{
		{"EmptyFirst", [][]uint8{{}}, heightmap.ErrEmptyRow},
		{"EmptyLater", [][]uint8{{1, 2}, {}}, heightmap.ErrEmptyRow},
		{"Shorter", [][]uint8{{1, 2, 3}, {3}}, heightmap.ErrRaggedRow},
		{"Longer", [][]uint8{{1}, {3, 4}}, heightmap.ErrRaggedRow},
		{"BadHeight", [][]uint8{{1, 10}}, heightmap.ErrBadHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hm := heightmap.New()
			var err error
			for _, row := range tc.rows {
				if err = hm.AddRow(row); err != nil {
					break
				}
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("AddRow(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestAddRow_FailureLeavesMapIntact checks that a rejected row changes nothing.
func TestAddRow_FailureLeavesMapIntact(t *testing.T) {
	hm := heightmap.New()
	require.NoError(t, hm.AddRow([]uint8{1, 2, 3}))
	require.ErrorIs(t, hm.AddRow([]uint8{4, 5}), heightmap.ErrRaggedRow)
	require.ErrorIs(t, hm.AddRow([]uint8{4, 5, 11}), heightmap.ErrBadHeight)

	assert.Equal(t, 3, hm.Width)
	assert.Equal(t, 1, hm.Height)
	assert.Equal(t, "123", hm.String())
}

// TestAddRow_Shape verifies that width comes from the first row and height counts rows.
func TestAddRow_Shape(t *testing.T) {
	hm := heightmap.New()
	assert.Equal(t, 0, hm.Width)
	assert.Equal(t, 0, hm.Height)

	require.NoError(t, hm.AddRow([]uint8{0, 1, 2, 3}))
	require.NoError(t, hm.AddRow([]uint8{4, 5, 6, 7}))
	assert.Equal(t, 4, hm.Width)
	assert.Equal(t, 2, hm.Height)

	v, ok := hm.Value(3, 1)
	require.True(t, ok)
	assert.Equal(t, uint8(7), v)
}

//----------------------------------------------------------------------------//
// Value and InBounds Tests
//----------------------------------------------------------------------------//

// TestValue_BoundarySentinel checks that absence is reported exactly outside the grid.
func TestValue_BoundarySentinel(t *testing.T) {
	hm, err := heightmap.Parse("123\n456")
	require.NoError(t, err)

	for y := -2; y <= hm.Height+1; y++ {
		for x := -2; x <= hm.Width+1; x++ {
			_, ok := hm.Value(x, y)
			inside := x >= 0 && x < hm.Width && y >= 0 && y < hm.Height
			assert.Equal(t, inside, ok, "Value(%d,%d)", x, y)
			assert.Equal(t, inside, hm.InBounds(x, y), "InBounds(%d,%d)", x, y)
		}
	}

	v, ok := hm.At(heightmap.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, uint8(5), v)
}

// TestNeighbors verifies N, E, S, W order including out-of-bounds points.
func TestNeighbors(t *testing.T) {
	hm := heightmap.New()
	got := hm.Neighbors(heightmap.Point{X: 0, Y: 0})
	want := [4]heightmap.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	assert.Equal(t, want, got)
}

//----------------------------------------------------------------------------//
// Low point Tests
//----------------------------------------------------------------------------//

// TestIsLowerThanNeighbours_SingleRow covers a row [9,6,5]: only x=2 is low,
// since its missing right neighbour counts as higher.
func TestIsLowerThanNeighbours_SingleRow(t *testing.T) {
	hm := heightmap.New()
	require.NoError(t, hm.AddRow([]uint8{9, 6, 5}))

	assert.False(t, hm.IsLowerThanNeighbours(0, 0))
	assert.False(t, hm.IsLowerThanNeighbours(1, 0))
	assert.True(t, hm.IsLowerThanNeighbours(2, 0))
	assert.Equal(t, []heightmap.Point{{X: 2, Y: 0}}, hm.LowPoints())
}

// TestIsLowerThanNeighbours_Equal verifies that equal neighbours are not lower.
func TestIsLowerThanNeighbours_Equal(t *testing.T) {
	hm, err := heightmap.Parse("33\n33")
	require.NoError(t, err)
	assert.Empty(t, hm.LowPoints())

	single, err := heightmap.Parse("7")
	require.NoError(t, err)
	assert.True(t, single.IsLowerThanNeighbours(0, 0), "lone cell has no neighbours")
}

// TestIsLowerThanNeighbours_OutOfBoundsPanics checks the precondition.
func TestIsLowerThanNeighbours_OutOfBoundsPanics(t *testing.T) {
	hm, err := heightmap.Parse("12")
	require.NoError(t, err)
	assert.Panics(t, func() { hm.IsLowerThanNeighbours(2, 0) })
	assert.Panics(t, func() { hm.IsLowerThanNeighbours(0, -1) })
}

// TestLowPoints_Sample checks the worked example and the x-outer enumeration order.
func TestLowPoints_Sample(t *testing.T) {
	hm, err := heightmap.Parse(sample)
	require.NoError(t, err)

	want := []heightmap.Point{{X: 1, Y: 0}, {X: 2, Y: 2}, {X: 6, Y: 4}, {X: 9, Y: 0}}
	require.Equal(t, want, hm.LowPoints())

	var values []uint8
	for _, p := range want {
		v, ok := hm.At(p)
		require.True(t, ok)
		values = append(values, v)
	}
	assert.Equal(t, []uint8{1, 5, 5, 0}, values)
}

// TestLowPoints_Empty verifies an empty map yields no low points.
func TestLowPoints_Empty(t *testing.T) {
	assert.Empty(t, heightmap.New().LowPoints())
}
