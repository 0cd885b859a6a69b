// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Non-finite entries are rejected with ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = src.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("FromGonum", i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Gonum returns an independent *mat.Dense copy of m for use with gonum's
// linear algebra.
// Complexity: O(r*c).
func (m *Dense) Gonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
