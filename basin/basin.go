package basin

import (
	"sort"

	"github.com/katalvlaran/lvlath-basins/heightmap"
)

// From floods outward from seed and returns the basin that contains it.
// Cells at or above the wall height and cells outside the grid end the
// expansion; a seed that is itself a wall or outside the grid yields an
// empty basin.
// Complexity: O(B) time and memory, B = basin size.
func From(hm *heightmap.HeightMap, seed heightmap.Point, opts ...Option) (*Basin, error) {
	if hm == nil {
		return nil, ErrNilMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return flood(hm, seed, o.Wall), nil
}

// FromLowPoints returns one basin per low point of hm, in LowPoints order.
// Basins are not merged, so two low points sharing a region yield two
// equal basins.
func FromLowPoints(hm *heightmap.HeightMap, opts ...Option) ([]*Basin, error) {
	if hm == nil {
		return nil, ErrNilMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return fromSeeds(hm, hm.LowPoints(), o.Wall), nil
}

// FromSeeds returns one basin per seed, in seed order. It lets callers that
// already hold the low points skip a second scan of the grid.
func FromSeeds(hm *heightmap.HeightMap, seeds []heightmap.Point, opts ...Option) ([]*Basin, error) {
	if hm == nil {
		return nil, ErrNilMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return fromSeeds(hm, seeds, o.Wall), nil
}

func fromSeeds(hm *heightmap.HeightMap, seeds []heightmap.Point, wall uint8) []*Basin {
	out := make([]*Basin, 0, len(seeds))
	for _, p := range seeds {
		out = append(out, flood(hm, p, wall))
	}

	return out
}

// Sizes returns the cell count of each basin.
func Sizes(basins []*Basin) []int {
	out := make([]int, len(basins))
	for i, b := range basins {
		out[i] = b.Len()
	}

	return out
}

// Points returns the basin cells sorted by Y, then X.
func (b *Basin) Points() []heightmap.Point {
	out := make([]heightmap.Point, 0, len(b.points))
	for p := range b.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// flood runs the worklist expansion. A point is added to the basin when
// popped; already-added points are skipped, which breaks grid cycles.
func flood(hm *heightmap.HeightMap, seed heightmap.Point, wall uint8) *Basin {
	b := newBasin()
	stack := []heightmap.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v, ok := hm.At(p)
		if !ok || v >= wall {
			continue
		}
		if _, seen := b.points[p]; seen {
			continue
		}
		b.points[p] = struct{}{}
		for _, n := range hm.Neighbors(p) {
			if !b.Contains(n) {
				stack = append(stack, n)
			}
		}
	}

	return b
}
