// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/tmap"
	"gonum.org/v1/gonum/mat"
)

// Timecourse samples cellsPerDay cells at every day in days.
//
// Cell k of day t has features centre(t) + N(0, noise²) with
// centre(t)[f] = drift·t·w_f, where w is a fixed unit direction, and an
// observed growth rate drawn uniformly from the growth range. Rows are
// ordered by day as given, then by k.
//
// Errors: ErrTooFewCells (empty days or cellsPerDay < 1), ErrDuplicateDay,
// wot.ErrInvalidParameter for non-finite days.
// Complexity: O(len(days)·cellsPerDay·features).
func Timecourse(days []float64, cellsPerDay int, opts ...Option) (tmap.Dataset, error) {
	if len(days) == 0 || cellsPerDay < 1 {
		return tmap.Dataset{}, fmt.Errorf("synth: %d days × %d cells: %w", len(days), cellsPerDay, ErrTooFewCells)
	}
	seen := make(map[float64]bool, len(days))
	for _, d := range days {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return tmap.Dataset{}, fmt.Errorf("synth: day %g: %w", d, wot.ErrInvalidParameter)
		}
		if seen[d] {
			return tmap.Dataset{}, fmt.Errorf("synth: day %g: %w", d, ErrDuplicateDay)
		}
		seen[d] = true
	}
	cfg := newConfig(opts...)

	// One parent draw; everything else comes from per-day streams.
	parent := cfg.rng.Int63()
	dir := direction(cfg.features)

	n := len(days) * cellsPerDay
	ds := tmap.Dataset{
		CellIDs: make([]string, 0, n),
		Days:    make([]float64, 0, n),
		Growth:  make([]float64, 0, n),
	}
	data := make([]float64, 0, n*cfg.features)
	span := cfg.growthHi - cfg.growthLo
	for _, day := range days {
		r := dayStream(parent, day)
		for k := 0; k < cellsPerDay; k++ {
			ds.CellIDs = append(ds.CellIDs, cfg.idFn(day, k))
			ds.Days = append(ds.Days, day)
			ds.Growth = append(ds.Growth, cfg.growthLo+span*r.Float64())
			for f := 0; f < cfg.features; f++ {
				data = append(data, cfg.drift*day*dir[f]+cfg.noise*r.NormFloat64())
			}
		}
	}
	ds.Expr = mat.NewDense(n, cfg.features, data)

	return ds, nil
}

// direction is the unit vector (1, 2, …, f) / ‖·‖.
func direction(f int) []float64 {
	w := make([]float64, f)
	var norm float64
	for i := range w {
		w[i] = float64(i + 1)
		norm += w[i] * w[i]
	}
	norm = math.Sqrt(norm)
	for i := range w {
		w[i] /= norm
	}
	return w
}
