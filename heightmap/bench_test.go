package heightmap_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlath-basins/heightmap"
)

// randomGrid renders an n×n grid of random digits.
func randomGrid(n int) string {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures parsing of a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	text := randomGrid(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := heightmap.Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLowPoints measures low-point enumeration on a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkLowPoints(b *testing.B) {
	hm, err := heightmap.Parse(randomGrid(1000))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hm.LowPoints()
	}
}
