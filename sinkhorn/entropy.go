// SPDX-License-Identifier: MIT

package sinkhorn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wot/matrix"
)

// Entropy returns −Σ p·log p of plan normalised to unit mass (0·log 0 = 0).
// It is the quantity that decreases as ε shrinks.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf (also for zero mass),
// matrix.ErrNegative.
// Complexity: O(r*c).
func Entropy(plan matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNonNegative(plan); err != nil {
		return 0, fmt.Errorf("sinkhorn: entropy: %w", err)
	}
	p, err := matrix.Normalize(plan)
	if err != nil {
		return 0, fmt.Errorf("sinkhorn: entropy: %w", err)
	}

	var h float64
	for _, x := range p.RawData() {
		if x > 0 {
			h -= x * math.Log(x)
		}
	}

	return h, nil
}
