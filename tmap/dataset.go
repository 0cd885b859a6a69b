// SPDX-License-Identifier: MIT

package tmap

import (
	"fmt"

	"github.com/katalvlaran/wot"
	"gonum.org/v1/gonum/mat"
)

// Dataset is the in-memory hand-off from an I/O layer: one row per cell.
type Dataset struct {
	CellIDs []string   // unique, non-empty
	Days    []float64  // day label per cell
	Growth  []float64  // observed per-day growth rate per cell; nil means no growth information
	Expr    mat.Matrix // cells × features
}

// Validate checks that every column of the dataset describes the same cells.
func (ds Dataset) Validate() error {
	if ds.Expr == nil {
		return fmt.Errorf("tmap: dataset has no expression matrix: %w", wot.ErrInputShape)
	}
	n, f := ds.Expr.Dims()
	if n == 0 || f == 0 {
		return fmt.Errorf("tmap: expression matrix is %d×%d: %w", n, f, wot.ErrInputShape)
	}
	if len(ds.CellIDs) != n {
		return fmt.Errorf("tmap: %d cell ids for %d expression rows: %w", len(ds.CellIDs), n, wot.ErrInputShape)
	}
	if len(ds.Days) != n {
		return fmt.Errorf("tmap: %d day labels for %d expression rows: %w", len(ds.Days), n, wot.ErrInputShape)
	}
	if ds.Growth != nil && len(ds.Growth) != n {
		return fmt.Errorf("tmap: %d growth rates for %d expression rows: %w", len(ds.Growth), n, wot.ErrInputShape)
	}

	return checkIDs("cell", ds.CellIDs)
}

// subset returns the ids and rates of the given rows.
func (ds Dataset) subset(rows []int) ([]string, []float64) {
	ids := make([]string, len(rows))
	var rates []float64
	if ds.Growth != nil {
		rates = make([]float64, len(rows))
	}
	for k, r := range rows {
		ids[k] = ds.CellIDs[r]
		if rates != nil {
			rates[k] = ds.Growth[r]
		}
	}
	return ids, rates
}

// checkIDs rejects empty and duplicate identifiers.
func checkIDs(side string, ids []string) error {
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("tmap: %s id %d is empty: %w", side, i, wot.ErrInputShape)
		}
		if j, dup := seen[id]; dup {
			return fmt.Errorf("tmap: %s id %q at %d and %d: %w", side, id, j, i, wot.ErrInputShape)
		}
		seen[id] = i
	}
	return nil
}
