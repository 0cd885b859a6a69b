// SPDX-License-Identifier: MIT

package sinkhorn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/matrix"
)

// Params are the numeric knobs of one solve.
type Params struct {
	Epsilon float64 // entropy strength, > 0
	Lambda1 float64 // source marginal penalty, > 0
	Lambda2 float64 // target marginal penalty, > 0
	MaxIter int     // iteration budget, > 0
	Tol     float64 // sup-norm stop on potentials, >= 0 (0 runs the full budget)
}

// ParamsFromConfig extracts the solver parameters from a pipeline config.
func ParamsFromConfig(cfg wot.Config) Params {
	return Params{
		Epsilon: cfg.Epsilon,
		Lambda1: cfg.Lambda1,
		Lambda2: cfg.Lambda2,
		MaxIter: cfg.ScalingIter,
		Tol:     cfg.ScalingTol,
	}
}

// Validate reports the first parameter outside its domain.
func (p Params) Validate() error {
	if !positive(p.Epsilon) {
		return fmt.Errorf("sinkhorn: epsilon=%g: %w", p.Epsilon, wot.ErrInvalidParameter)
	}
	if !positive(p.Lambda1) {
		return fmt.Errorf("sinkhorn: lambda1=%g: %w", p.Lambda1, wot.ErrInvalidParameter)
	}
	if !positive(p.Lambda2) {
		return fmt.Errorf("sinkhorn: lambda2=%g: %w", p.Lambda2, wot.ErrInvalidParameter)
	}
	if p.MaxIter <= 0 {
		return fmt.Errorf("sinkhorn: max_iter=%d: %w", p.MaxIter, wot.ErrInvalidParameter)
	}
	if !(p.Tol >= 0) || math.IsInf(p.Tol, 1) {
		return fmt.Errorf("sinkhorn: tol=%g: %w", p.Tol, wot.ErrInvalidParameter)
	}

	return nil
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

// validateInputs checks shapes and numeric policy of (C, a, b).
// Returns the dense view of C and its shape.
func validateInputs(c matrix.Matrix, a, b []float64) (*matrix.Dense, int, int, error) {
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, 0, 0, fmt.Errorf("sinkhorn: cost: %w", wot.ErrInputShape)
	}
	n1, n2 := c.Rows(), c.Cols()
	if n1 == 0 || n2 == 0 {
		return nil, 0, 0, fmt.Errorf("sinkhorn: cost is %d×%d: %w", n1, n2, wot.ErrInputShape)
	}
	if len(a) != n1 {
		return nil, 0, 0, fmt.Errorf("sinkhorn: cost has %d rows, source marginal has %d entries: %w",
			n1, len(a), wot.ErrInputShape)
	}
	if len(b) != n2 {
		return nil, 0, 0, fmt.Errorf("sinkhorn: cost has %d cols, target marginal has %d entries: %w",
			n2, len(b), wot.ErrInputShape)
	}
	if err := matrix.ValidateNonNegative(c); err != nil {
		return nil, 0, 0, fmt.Errorf("sinkhorn: cost: %w", err)
	}
	if err := matrix.ValidateVecPositive(a); err != nil {
		return nil, 0, 0, fmt.Errorf("sinkhorn: source marginal: %w: %w", err, wot.ErrInvalidParameter)
	}
	if err := matrix.ValidateVecPositive(b); err != nil {
		return nil, 0, 0, fmt.Errorf("sinkhorn: target marginal: %w: %w", err, wot.ErrInvalidParameter)
	}
	d, err := matrix.AsDense(c)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("sinkhorn: cost: %w", err)
	}

	return d, n1, n2, nil
}
