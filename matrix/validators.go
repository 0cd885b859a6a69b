// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/finite/sign checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element scans stop at the first violation and report its coordinates.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Handles typed-nil *Dense as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateFinite scans m for NaN/±Inf and reports the first offending cell.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return scan(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative scans m for NaN/±Inf or negative entries.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return scan(m, "ValidateNonNegative", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// ValidateVecPositive requires every entry of x to be finite and > 0.
// Complexity: O(n).
func ValidateVecPositive(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateVecPositive: x[%d]=%g: %w", i, v, ErrNaNInf)
		}
		if v <= 0 {
			return fmt.Errorf("ValidateVecPositive: x[%d]=%g: %w", i, v, ErrNegative)
		}
	}

	return nil
}

// scan applies check to every element (Dense fast-path; At fallback).
func scan(m Matrix, tag string, check func(v float64) error) error {
	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error

	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if err = check(d.data[i*c+j]); err != nil {
					return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
				}
			}
		}
		return nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
			}
		}
	}

	return nil
}
