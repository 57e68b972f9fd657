// Package tsp_test — benchmarks for the search hot path.
//
// Policy:
//   - Fixed seeds; inputs built outside the timer.
//   - Instances sized to finish quickly on CI.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/katalvlaran/lvltsp/tsp"
)

func benchBranchAndBound(b *testing.B, n int) {
	s := generated(b, n, scenario.Normal, 1)
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.BranchAndBound(s, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBranchAndBound_n8(b *testing.B)  { benchBranchAndBound(b, 8) }
func BenchmarkBranchAndBound_n12(b *testing.B) { benchBranchAndBound(b, 12) }

func BenchmarkGreedy_n100(b *testing.B) {
	s := generated(b, 100, scenario.Hard, 1)
	opts := tsp.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Greedy(s, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStateExpand_n30(b *testing.B) {
	s := generated(b, 30, scenario.Normal, 1)
	root, err := tsp.NewState(s.CostMatrix(), 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = root.Expand()
	}
}
