// Package survey computes the aggregate metrics over a heightmap: the risk
// level sum of its low points and the product of its largest basins.
package survey

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath-basins/basin"
	"github.com/katalvlaran/lvlath-basins/heightmap"
)

// DefaultTop is how many of the largest basins are multiplied.
const DefaultTop = 3

var (
	// ErrNilMap is returned if a nil heightmap pointer is passed.
	ErrNilMap = errors.New("survey: heightmap is nil")
	// ErrBadTop indicates a non-positive basin count.
	ErrBadTop = errors.New("survey: top must be at least 1")
	// ErrProductOverflow indicates a basin product that does not fit in an int.
	ErrProductOverflow = errors.New("survey: basin product overflows int")
)

// RiskLevel is a low point's height plus one.
func RiskLevel(h uint8) int {
	return int(h) + 1
}

// RiskLevelSum adds up the risk level of every low point of hm.
// Complexity: O(W×H).
func RiskLevelSum(hm *heightmap.HeightMap) (int, error) {
	if hm == nil {
		return 0, ErrNilMap
	}

	return riskSum(hm, hm.LowPoints()), nil
}

func riskSum(hm *heightmap.HeightMap, lows []heightmap.Point) int {
	sum := 0
	for _, p := range lows {
		v, _ := hm.At(p)
		sum += RiskLevel(v)
	}

	return sum
}

// TopProduct multiplies the k largest values of sizes. With fewer than k
// values it multiplies all of them; with none it returns 1. Sizes are
// counts and must not be negative. A product above math.MaxInt returns
// ErrProductOverflow. The input slice is not modified.
func TopProduct(sizes []int, k int) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadTop, k)
	}
	sorted := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	product := 1
	for i, s := range sorted {
		if s > 0 && product > math.MaxInt/s {
			return 0, fmt.Errorf("%w: %v", ErrProductOverflow, sorted[:i+1])
		}
		product *= s
	}

	return product, nil
}

// LargestBasinsProduct floods a basin from every low point of hm and
// multiplies the sizes of the k largest.
// Complexity: O(W×H + k log k) for disjoint basins.
func LargestBasinsProduct(hm *heightmap.HeightMap, k int, opts ...basin.Option) (int, error) {
	if hm == nil {
		return 0, ErrNilMap
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadTop, k)
	}
	basins, err := basin.FromLowPoints(hm, opts...)
	if err != nil {
		return 0, err
	}

	return TopProduct(basin.Sizes(basins), k)
}
