// SPDX-License-Identifier: MIT
// Package sinkhorn_test: benchmarks.
//
// Policy:
//   - Inputs are built outside the timer from fixed seeds.
//   - Tol = 0 so every run performs exactly MaxIter iterations.

package sinkhorn_test

import (
	"testing"

	"github.com/katalvlaran/wot/sinkhorn"
)

var sinkRes sinkhorn.Result

func benchSolve(b *testing.B, n int, opts ...sinkhorn.Option) {
	c := randomCost(b, n, n, seedDet)
	a := uniform(n, 1)
	p := sinkhorn.Params{Epsilon: 0.05, Lambda1: 1, Lambda2: 1, MaxIter: 50, Tol: 0}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := sinkhorn.Solve(c, a, a, p, opts...)
		if err != nil {
			b.Fatal(err)
		}
		sinkRes = res
	}
}

func BenchmarkSolve_128(b *testing.B)           { benchSolve(b, 128) }
func BenchmarkSolve_512(b *testing.B)           { benchSolve(b, 512) }
func BenchmarkSolve_512_Workers4(b *testing.B)  { benchSolve(b, 512, sinkhorn.WithWorkers(4)) }
func BenchmarkSolve_1024_Workers8(b *testing.B) { benchSolve(b, 1024, sinkhorn.WithWorkers(8)) }
