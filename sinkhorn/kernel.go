// SPDX-License-Identifier: MIT

package sinkhorn

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// kernel is the stabilized Gibbs kernel K̃ (row-major, n1×n2) together with
// the worker split used for its products.
type kernel struct {
	n1, n2  int
	k       []float64
	workers int
}

// seed sets f to the row minima of C and g to the column minima of the
// residual C − f. Every row and every column of the resulting K̃ then holds
// an entry of 1, so no product K̃v or K̃ᵀu starts at zero whatever the ratio
// of cost to ε.
// Complexity: O(n1·n2).
func (kn *kernel) seed(c, f, g []float64) {
	var i, j int
	for i = 0; i < kn.n1; i++ {
		f[i] = floats.Min(c[i*kn.n2 : (i+1)*kn.n2])
	}
	var r, m float64
	for j = 0; j < kn.n2; j++ {
		m = math.Inf(1)
		for i = 0; i < kn.n1; i++ {
			if r = c[i*kn.n2+j] - f[i]; r < m {
				m = r
			}
		}
		g[j] = m
	}
}

// rebuild sets K̃ij = exp((f_i + g_j − C_ij)/ε).
// Returns the first (i, j) whose entry is not finite, or (-1, -1).
// Complexity: O(n1·n2).
func (kn *kernel) rebuild(c []float64, f, g []float64, eps float64) (int, int) {
	var i, j, off int
	var v float64
	for i = 0; i < kn.n1; i++ {
		off = i * kn.n2
		for j = 0; j < kn.n2; j++ {
			v = math.Exp((f[i] + g[j] - c[off+j]) / eps)
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return i, j
			}
			kn.k[off+j] = v
		}
	}

	return -1, -1
}

// mulVec writes dst[i] = Σ_j K̃ij·v[j]; rows are shared out among workers.
func (kn *kernel) mulVec(dst, v []float64) {
	rowDot := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = floats.Dot(kn.k[i*kn.n2:(i+1)*kn.n2], v)
		}
	}
	kn.split(kn.n1, rowDot)
}

// mulVecT writes dst[j] = Σ_i K̃ij·u[i], accumulated in increasing i for every
// j; columns are shared out among workers in contiguous blocks.
func (kn *kernel) mulVecT(dst, u []float64) {
	colBlock := func(lo, hi int) {
		out := dst[lo:hi]
		for j := range out {
			out[j] = 0
		}
		for i := 0; i < kn.n1; i++ {
			floats.AddScaled(out, u[i], kn.k[i*kn.n2+lo:i*kn.n2+hi])
		}
	}
	kn.split(kn.n2, colBlock)
}

// split runs fn over [0,n) in at most kn.workers contiguous chunks.
func (kn *kernel) split(n int, fn func(lo, hi int)) {
	w := kn.workers
	if w > n {
		w = n
	}
	if w <= 1 {
		fn(0, n)
		return
	}

	var eg errgroup.Group
	chunk := (n + w - 1) / w
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = eg.Wait() // chunks never fail
}
