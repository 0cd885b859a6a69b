// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/matrix"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Build computes the squared Euclidean cost between the rows of x and y and
// divides it by its median.
//
// Errors:
//   - wot.ErrInputShape - an empty group or differing feature counts.
//   - matrix.ErrNaNInf  - a non-finite expression value.
//   - ErrZeroMedian     - the median cost is zero.
func Build(x, y matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	raw, err := SqEuclidean(x, y, opts...)
	if err != nil {
		return nil, err
	}
	out, _, err := NormalizeByMedian(raw)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SqEuclidean returns the n1×n2 matrix D with D[i][j] = Σ_k (x[i][k] − y[j][k])².
//
// Implementation:
//   - Stage 1: validate both groups (non-empty, finite).
//   - Stage 2: drop excluded columns; feature counts must then agree.
//   - Stage 3: i→j double loop over row views; one scratch buffer for differences.
//
// Complexity: O(n1·n2·d) time, O(n1·n2 + d) space.
func SqEuclidean(x, y matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	// Stage 1: shape and numeric policy.
	xd, err := group("source", x)
	if err != nil {
		return nil, err
	}
	yd, err := group("target", y)
	if err != nil {
		return nil, err
	}

	// Stage 2: feature selection.
	if len(cfg.exclude) > 0 {
		if xd, err = xd.DropCols(cfg.exclude...); err != nil {
			return nil, fmt.Errorf("cost: source features: %w", err)
		}
		if yd, err = yd.DropCols(cfg.exclude...); err != nil {
			return nil, fmt.Errorf("cost: target features: %w", err)
		}
	}
	if xd.Cols() != yd.Cols() {
		return nil, fmt.Errorf("cost: source has %d features, target has %d: %w",
			xd.Cols(), yd.Cols(), wot.ErrInputShape)
	}

	// Stage 3: pairwise distances.
	n1, n2 := xd.Rows(), yd.Rows()
	dst := make([]float64, n1*n2)
	diff := make([]float64, xd.Cols())

	var i, j int
	var xi []float64
	for i = 0; i < n1; i++ {
		xi = xd.RawRow(i)
		for j = 0; j < n2; j++ {
			floats.SubTo(diff, xi, yd.RawRow(j))
			dst[i*n2+j] = floats.Dot(diff, diff)
		}
	}
	out, err := matrix.NewDenseData(n1, n2, dst)
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}

	return out, nil
}

// NormalizeByMedian returns c / median(c) as a new matrix together with the
// median used. The median of an even number of entries is the mean of the two
// middle values. c itself is not modified.
//
// Errors: matrix.ErrNaNInf / matrix.ErrNegative for invalid entries,
// ErrZeroMedian when the median is zero.
//
// Complexity: O(n log n) for n = rows·cols (sort inside the median).
func NormalizeByMedian(c *matrix.Dense) (*matrix.Dense, float64, error) {
	if c == nil {
		return nil, 0, fmt.Errorf("cost: normalize: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNonNegative(c); err != nil {
		return nil, 0, fmt.Errorf("cost: normalize: %w", err)
	}

	med, err := stats.Median(stats.Float64Data(c.RawData()))
	if err != nil {
		return nil, 0, fmt.Errorf("cost: median: %w", err)
	}
	if med == 0 {
		r, k := c.Shape()
		return nil, 0, fmt.Errorf("cost: %d×%d matrix: %w", r, k, ErrZeroMedian)
	}

	out := c.CloneDense()
	data := out.RawData()
	for k := range data {
		data[k] /= med
	}

	return out, med, nil
}

// group validates one cell group and returns it as a read-only *Dense.
func group(side string, m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("cost: %s group: %w", side, wot.ErrInputShape)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("cost: %s group is %d×%d: %w", side, m.Rows(), m.Cols(), wot.ErrInputShape)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("cost: %s group: %w", side, err)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, fmt.Errorf("cost: %s group: %w", side, err)
	}

	return d, nil
}
