// SPDX-License-Identifier: MIT
// Package sinkhorn_test: shared fixtures.
//
// Policy:
//   - Fixed seeds only; every fixture is reproducible across runs.
//   - Costs are built the way the pipeline builds them (squared distances).

package sinkhorn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wot/matrix"
	"github.com/stretchr/testify/require"
)

const seedDet = 42

func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)
	return m
}

// randomCost returns an n1×n2 squared-distance cost between points drawn
// uniformly from the unit square.
func randomCost(tb testing.TB, n1, n2 int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([][2]float64, n1)
	ys := make([][2]float64, n2)
	for i := range xs {
		xs[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	for j := range ys {
		ys[j] = [2]float64{rng.Float64(), rng.Float64()}
	}

	c, err := matrix.NewDense(n1, n2)
	require.NoError(tb, err)
	data := c.RawData()
	var dx, dy float64
	for i := range xs {
		for j := range ys {
			dx, dy = xs[i][0]-ys[j][0], xs[i][1]-ys[j][1]
			data[i*n2+j] = dx*dx + dy*dy
		}
	}
	return c
}

func uniform(n int, total float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = total / float64(n)
	}
	return out
}

// normalized returns the plan divided by its total mass.
func normalized(tb testing.TB, m *matrix.Dense) []float64 {
	tb.Helper()
	p, err := matrix.Normalize(m)
	require.NoError(tb, err)
	return p.RawData()
}
