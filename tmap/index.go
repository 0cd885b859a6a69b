// SPDX-License-Identifier: MIT

package tmap

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/wot"
)

// Index maps each day label to the ordered row indices of its cells.
// Cells keep the order in which they appear in the dataset.
type Index struct {
	days  []float64
	cells map[float64][]int
}

// NewIndex groups row indices by day label. Labels must be finite.
// Complexity: O(n log d) for n cells and d distinct days.
func NewIndex(days []float64) (*Index, error) {
	idx := &Index{cells: make(map[float64][]int)}
	for i, d := range days {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("tmap: day[%d]=%g: %w", i, d, wot.ErrInvalidParameter)
		}
		if d == 0 {
			d = 0 // fold -0 into +0
		}
		if _, ok := idx.cells[d]; !ok {
			idx.days = append(idx.days, d)
		}
		idx.cells[d] = append(idx.cells[d], i)
	}
	sort.Float64s(idx.days)

	return idx, nil
}

// Days returns the distinct day labels in ascending order.
func (x *Index) Days() []float64 {
	return append([]float64(nil), x.days...)
}

// Cells returns a copy of the row indices for day, or false if absent.
func (x *Index) Cells(day float64) ([]int, bool) {
	rows, ok := x.cells[day]
	if !ok {
		return nil, false
	}
	return append([]int(nil), rows...), true
}

// Len returns the number of distinct days.
func (x *Index) Len() int { return len(x.days) }

// ConsecutivePairs returns (d0,d1), (d1,d2), … over the sorted days.
func (x *Index) ConsecutivePairs() []DayPair {
	if len(x.days) < 2 {
		return nil
	}
	out := make([]DayPair, 0, len(x.days)-1)
	for i := 1; i < len(x.days); i++ {
		out = append(out, DayPair{T1: x.days[i-1], T2: x.days[i]})
	}
	return out
}
