// SPDX-License-Identifier: MIT
// Package wot: sentinel error set shared by every stage of the pipeline.
//
// Policy:
//   - Stages return these sentinels wrapped with context via fmt.Errorf("...: %w", ErrX).
//   - Callers branch with errors.Is; never on message text.
//   - Shape and parameter errors are detected before any solver iteration.

package wot

import "errors"

var (
	// ErrInputShape indicates that matrix dimensions, vector lengths or
	// identifier lists disagree, or that one of the two cell groups is empty.
	ErrInputShape = errors.New("wot: input shape mismatch")

	// ErrInvalidParameter indicates a parameter outside its domain: non-positive
	// epsilon/lambda/iteration budget, inverted transport-fraction bounds,
	// reversed day ordering, non-positive growth rates.
	ErrInvalidParameter = errors.New("wot: invalid parameter")

	// ErrNumericalInstability indicates that the scaling iteration produced a
	// non-finite or vanishing value (typically epsilon too small for the cost
	// scale). No plan containing NaN/Inf is ever returned.
	ErrNumericalInstability = errors.New("wot: numerical instability")
)
