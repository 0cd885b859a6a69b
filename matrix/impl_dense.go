// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Expose no-copy row access (RawRow/RawData) for numeric kernels that own the matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SelectRows: O(r'*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxFrom   = "NewDenseFrom"
	ctxData   = "NewDenseData"
	ctxSelect = "SelectRows"
	ctxRow    = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 literal into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty or ragged literal.
//   - ErrNaNInf for any non-finite entry.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: empty literal: %w", ctxFrom, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFrom, i, len(rows[i]), c, ErrInvalidDimensions)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewDenseData wraps a row-major buffer of length rows*cols WITHOUT copying.
// The caller hands ownership of data to the returned Dense.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(1).
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxData, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len(data)=%d: %w", ctxData, rows, cols, len(data), ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Non-finite values are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// CloneDense is Clone without the interface round-trip.
func (m *Dense) CloneDense() *Dense {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRow returns row i as a slice sharing storage with m. It panics on an
// out-of-range index like any slice expression; use Row for checked access.
// Writes through the slice bypass the finite-value policy of Set.
func (m *Dense) RawRow(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// RawData returns the row-major backing buffer (no copy).
// Intended for numeric kernels; callers must not retain it across mutations they do not own.
func (m *Dense) RawData() []float64 {
	return m.data
}

// SelectRows materializes the rows listed in idx (in that order) as a new Dense.
// Duplicates are allowed. An empty idx is ErrInvalidDimensions.
//
// Complexity:
//   - Time O(len(idx)*c), Space O(len(idx)*c).
func (m *Dense) SelectRows(idx []int) (*Dense, error) {
	if len(idx) == 0 {
		return nil, fmt.Errorf("Dense.%s: no rows: %w", ctxSelect, ErrInvalidDimensions)
	}
	out := &Dense{r: len(idx), c: m.c, data: make([]float64, len(idx)*m.c)}

	var i, ri int
	for i = 0; i < len(idx); i++ {
		ri = idx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxSelect, ri, ErrOutOfRange)
		}
		copy(out.data[i*m.c:(i+1)*m.c], m.data[ri*m.c:(ri+1)*m.c])
	}

	return out, nil
}

// DropCols returns a copy of m without the listed columns. Indices may repeat
// and appear in any order. Dropping every column is ErrInvalidDimensions.
//
// Complexity: O(r*c).
func (m *Dense) DropCols(cols ...int) (*Dense, error) {
	drop := make([]bool, m.c)
	var j, kept int
	for _, j = range cols {
		if j < 0 || j >= m.c {
			return nil, fmt.Errorf("Dense.DropCols: col index %d: %w", j, ErrOutOfRange)
		}
		drop[j] = true
	}
	keep := make([]int, 0, m.c)
	for j = 0; j < m.c; j++ {
		if !drop[j] {
			keep = append(keep, j)
		}
	}
	kept = len(keep)
	if kept == 0 {
		return nil, fmt.Errorf("Dense.DropCols: all %d columns dropped: %w", m.c, ErrInvalidDimensions)
	}

	out := &Dense{r: m.r, c: kept, data: make([]float64, m.r*kept)}
	var i, k int
	for i = 0; i < m.r; i++ {
		for k = 0; k < kept; k++ {
			out.data[i*kept+k] = m.data[i*m.c+keep[k]]
		}
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
