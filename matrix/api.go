// SPDX-License-Identifier: MIT
// Package matrix: reductions and scaling used by transport plans.
//
// Every function accepts the Matrix interface; *Dense unlocks flat-slice
// fast paths. Sums are accumulated in a fixed i→j order so results are
// reproducible bit for bit.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = floats.Sum(d.data[i*cols : (i+1)*cols])
		}
		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("RowSums", err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns vector c where c[j] = Σ_i m[i,j].
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			floats.Add(out, d.data[i*cols:(i+1)*cols])
		}
		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ColSums", err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// Total returns Σ_ij m[i,j] (row sums added in row order).
// Complexity: O(r*c).
func Total(m Matrix) (float64, error) {
	rs, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf("Total", err)
	}

	return floats.Sum(rs), nil
}

// Scale returns a new Dense equal to alpha·m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	out, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	floats.Scale(alpha, out.data)

	return out, nil
}

// Normalize returns m divided by its total mass. A zero total would divide
// into NaN and is reported as ErrNaNInf.
// Complexity: O(r*c).
func Normalize(m Matrix) (*Dense, error) {
	total, err := Total(m)
	if err != nil {
		return nil, matrixErrorf("Normalize", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("Normalize: zero total mass: %w", ErrNaNInf)
	}

	return Scale(m, 1/total)
}

// toDense returns an independent *Dense copy of any Matrix.
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// AsDense returns m itself when it already is a *Dense, otherwise an
// independent *Dense copy. Callers must treat the result as read-only.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return d, nil
}
