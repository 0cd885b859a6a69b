// SPDX-License-Identifier: MIT

package sinkhorn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/matrix"
)

// Result is the outcome of one solve.
type Result struct {
	// Plan is the n1×n2 transport plan: finite, >= 0, freshly allocated.
	Plan *matrix.Dense

	// Iterations is the number of scaling iterations actually run.
	Iterations int

	// Converged reports whether the potentials settled below Tol before the
	// budget ran out.
	Converged bool

	// Delta is the sup-norm change of the effective potentials in the last
	// iteration.
	Delta float64
}

// Solve computes the unbalanced entropic transport plan between a source
// marginal a (len n1) and a target marginal b (len n2) under cost c (n1×n2).
//
// Implementation:
//   - Stage 1: validate params, shapes and numeric policy (no iteration runs
//     on invalid input).
//   - Stage 2: f, g = row and residual column minima of C, u = v = 1,
//     K̃ = exp((f ⊕ g − C)/ε).
//   - Stage 3: alternate the u and v updates; absorb out-of-range scalings
//     into f, g; stop on Tol or MaxIter.
//   - Stage 4: P = diag(u)·K̃·diag(v), checked finite.
//
// Errors:
//   - wot.ErrInputShape - empty cost, len(a) != n1 or len(b) != n2.
//   - wot.ErrInvalidParameter - bad Params, or marginals not finite and > 0.
//   - matrix.ErrNaNInf / matrix.ErrNegative - invalid cost entries.
//   - wot.ErrNumericalInstability - a zero or non-finite scaling, kernel or
//     plan entry. Typically a row or column whose cheapest cost is so large
//     against λ that its transported mass is not representable.
//
// Complexity: O(MaxIter·n1·n2) time, O(n1·n2) extra space.
func Solve(c matrix.Matrix, a, b []float64, p Params, opts ...Option) (Result, error) {
	// Stage 1: validation.
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	cd, n1, n2, err := validateInputs(c, a, b)
	if err != nil {
		return Result{}, err
	}
	cfg := gatherOptions(opts...)

	// Stage 2: state.
	var (
		eps    = p.Epsilon
		cost   = cd.RawData()
		f      = make([]float64, n1)
		g      = make([]float64, n2)
		u      = ones(n1)
		v      = ones(n2)
		kv     = make([]float64, n1)
		ktu    = make([]float64, n2)
		fEff   = make([]float64, n1)
		gEff   = make([]float64, n2)
		alpha1 = p.Lambda1 / (p.Lambda1 + eps)
		alpha2 = p.Lambda2 / (p.Lambda2 + eps)
		damp1  = 1 / (p.Lambda1 + eps)
		damp2  = 1 / (p.Lambda2 + eps)
		lo, hi = 1 / cfg.tau, cfg.tau
		kn     = &kernel{n1: n1, n2: n2, k: make([]float64, n1*n2), workers: cfg.workers}
	)
	kn.seed(cost, f, g)
	copy(fEff, f)
	copy(gEff, g)
	if i, j := kn.rebuild(cost, f, g, eps); i >= 0 {
		return Result{}, instability("kernel", i, j, 0, eps)
	}

	// Stage 3: scaling iterations.
	var (
		res     Result
		iter, i int
		delta   float64
		absorb  bool
		x       float64
	)
	for iter = 1; iter <= p.MaxIter; iter++ {
		absorb = false

		kn.mulVec(kv, v)
		for i = 0; i < n1; i++ {
			x = math.Pow(a[i]/kv[i], alpha1) * math.Exp(-f[i]*damp1)
			if !usable(x) {
				return Result{}, instability("row", i, -1, iter, eps)
			}
			u[i] = x
			absorb = absorb || x < lo || x > hi
		}

		kn.mulVecT(ktu, u)
		for i = 0; i < n2; i++ {
			x = math.Pow(b[i]/ktu[i], alpha2) * math.Exp(-g[i]*damp2)
			if !usable(x) {
				return Result{}, instability("col", -1, i, iter, eps)
			}
			v[i] = x
			absorb = absorb || x < lo || x > hi
		}

		delta = 0
		delta = track(fEff, f, u, eps, delta)
		delta = track(gEff, g, v, eps, delta)
		res.Iterations, res.Delta = iter, delta

		if absorb {
			for i = 0; i < n1; i++ {
				f[i] += eps * math.Log(u[i])
				u[i] = 1
			}
			for i = 0; i < n2; i++ {
				g[i] += eps * math.Log(v[i])
				v[i] = 1
			}
			if ri, cj := kn.rebuild(cost, f, g, eps); ri >= 0 {
				return Result{}, instability("kernel", ri, cj, iter, eps)
			}
		}

		if delta < p.Tol {
			res.Converged = true
			break
		}
	}

	// Stage 4: assemble P = diag(u)·K̃·diag(v).
	dst := make([]float64, n1*n2)
	var j, off int
	for i = 0; i < n1; i++ {
		off = i * n2
		for j = 0; j < n2; j++ {
			x = u[i] * kn.k[off+j] * v[j]
			if math.IsInf(x, 0) || math.IsNaN(x) {
				return Result{}, instability("plan", i, j, res.Iterations, eps)
			}
			dst[off+j] = x
		}
	}
	if res.Plan, err = matrix.NewDenseData(n1, n2, dst); err != nil {
		return Result{}, fmt.Errorf("sinkhorn: %w", err)
	}

	return res, nil
}

// track stores the effective potential pot + ε·log(s) into eff and returns
// max(prev, sup-norm of the change).
func track(eff, pot, s []float64, eps, prev float64) float64 {
	var next, d float64
	for i := range eff {
		next = pot[i] + eps*math.Log(s[i])
		if d = math.Abs(next - eff[i]); d > prev {
			prev = d
		}
		eff[i] = next
	}
	return prev
}

func usable(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// instability formats the error context: what failed, where, when and at which ε.
func instability(what string, row, col, iter int, eps float64) error {
	switch {
	case row >= 0 && col >= 0:
		return fmt.Errorf("sinkhorn: %s entry (%d,%d) not finite at iteration %d (epsilon=%g): %w",
			what, row, col, iter, eps, wot.ErrNumericalInstability)
	case row >= 0:
		return fmt.Errorf("sinkhorn: %s scaling %d vanished or overflowed at iteration %d (epsilon=%g): %w",
			what, row, iter, eps, wot.ErrNumericalInstability)
	default:
		return fmt.Errorf("sinkhorn: %s scaling %d vanished or overflowed at iteration %d (epsilon=%g): %w",
			what, col, iter, eps, wot.ErrNumericalInstability)
	}
}
