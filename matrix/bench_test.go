// Package matrix_test provides benchmarks for the reductions used by the
// transport solver, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wot/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkD *matrix.Dense
)

func BenchmarkRowSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.RowSums(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkColSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.ColSums(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkSelectRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 11)
			idx := make([]int, 0, n/2)
			for i := 0; i < n; i += 2 {
				idx = append(idx, i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.SelectRows(idx)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}
