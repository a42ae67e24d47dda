package knight_test

import (
	"testing"

	"github.com/katalvlaran/knightmoves/knight"
)

// BenchmarkDistance_Corner measures the (0,0)→(7,7) distance search.
func BenchmarkDistance_Corner(b *testing.B) {
	target := knight.Position{Row: 7, Col: 7}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = knight.Distance(knight.Position{}, target)
	}
}

// BenchmarkPath_Far measures path reconstruction for a target ~50 squares away.
func BenchmarkPath_Far(b *testing.B) {
	target := knight.Position{Row: 50, Col: -35}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = knight.Path(knight.Position{}, target)
	}
}
