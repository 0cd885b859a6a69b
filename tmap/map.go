// SPDX-License-Identifier: MIT

package tmap

import (
	"fmt"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/calibrate"
	"github.com/katalvlaran/wot/matrix"
	"gonum.org/v1/gonum/mat"
)

// Map is a calibrated transport plan labelled with its source (row) and
// target (column) cell ids. It is read-only after Assemble.
type Map struct {
	plan        *matrix.Dense
	sources     []string
	targets     []string
	srcPos      map[string]int
	dstPos      map[string]int
	Diagnostics calibrate.Diagnostics
}

// Assemble wraps plan with its cell ids. No numeric transformation happens;
// plan is copied so later changes by the caller do not leak in.
//
// Errors: wot.ErrInputShape when a length differs from the plan's shape, or
// an id is empty or repeated; matrix.ErrNilMatrix for a nil plan.
func Assemble(plan *matrix.Dense, sourceIDs, targetIDs []string, d calibrate.Diagnostics) (*Map, error) {
	if err := matrix.ValidateNotNil(plan); err != nil {
		return nil, fmt.Errorf("tmap: assemble: %w", err)
	}
	r, c := plan.Shape()
	if len(sourceIDs) != r {
		return nil, fmt.Errorf("tmap: plan has %d rows, %d source ids: %w", r, len(sourceIDs), wot.ErrInputShape)
	}
	if len(targetIDs) != c {
		return nil, fmt.Errorf("tmap: plan has %d cols, %d target ids: %w", c, len(targetIDs), wot.ErrInputShape)
	}
	if err := checkIDs("source", sourceIDs); err != nil {
		return nil, err
	}
	if err := checkIDs("target", targetIDs); err != nil {
		return nil, err
	}

	m := &Map{
		plan:        plan.CloneDense(),
		sources:     append([]string(nil), sourceIDs...),
		targets:     append([]string(nil), targetIDs...),
		srcPos:      positions(sourceIDs),
		dstPos:      positions(targetIDs),
		Diagnostics: d,
	}

	return m, nil
}

func positions(ids []string) map[string]int {
	out := make(map[string]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}
	return out
}

// Rows returns the source cell ids in row order.
func (m *Map) Rows() []string { return append([]string(nil), m.sources...) }

// Cols returns the target cell ids in column order.
func (m *Map) Cols() []string { return append([]string(nil), m.targets...) }

// Shape returns (number of sources, number of targets).
func (m *Map) Shape() (int, int) { return m.plan.Shape() }

// At returns the mass sent from src to dst. Unknown ids give ErrUnknownCell.
func (m *Map) At(src, dst string) (float64, error) {
	i, ok := m.srcPos[src]
	if !ok {
		return 0, fmt.Errorf("tmap: source %q: %w", src, ErrUnknownCell)
	}
	j, ok := m.dstPos[dst]
	if !ok {
		return 0, fmt.Errorf("tmap: target %q: %w", dst, ErrUnknownCell)
	}
	return m.plan.At(i, j)
}

// Descendants returns the row of src: mass sent to every target, in Cols order.
func (m *Map) Descendants(src string) ([]float64, error) {
	i, ok := m.srcPos[src]
	if !ok {
		return nil, fmt.Errorf("tmap: source %q: %w", src, ErrUnknownCell)
	}
	return m.plan.Row(i)
}

// Ancestors returns the column of dst: mass received from every source, in
// Rows order.
func (m *Map) Ancestors(dst string) ([]float64, error) {
	j, ok := m.dstPos[dst]
	if !ok {
		return nil, fmt.Errorf("tmap: target %q: %w", dst, ErrUnknownCell)
	}
	r := m.plan.Rows()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.plan.RawRow(i)[j]
	}
	return out, nil
}

// RowSums returns the mass leaving each source cell.
func (m *Map) RowSums() []float64 {
	out, _ := matrix.RowSums(m.plan) // plan is non-nil by construction
	return out
}

// ColSums returns the mass arriving at each target cell.
func (m *Map) ColSums() []float64 {
	out, _ := matrix.ColSums(m.plan)
	return out
}

// Plan returns a copy of the underlying plan.
func (m *Map) Plan() *matrix.Dense { return m.plan.CloneDense() }

// Gonum returns a copy of the plan as a gonum matrix.
func (m *Map) Gonum() *mat.Dense { return m.plan.Gonum() }
