// SPDX-License-Identifier: MIT

package tmap_test

import (
	"testing"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/calibrate"
	"github.com/katalvlaran/wot/matrix"
	"github.com/katalvlaran/wot/tmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plan(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom([][]float64{
		{0.1, 0.2, 0.0},
		{0.3, 0.0, 0.4},
	})
	require.NoError(t, err)
	return m
}

func TestAssemble_Accessors(t *testing.T) {
	d := calibrate.Diagnostics{Converged: true, CalibrationTrials: 3}
	m, err := tmap.Assemble(plan(t), []string{"a", "b"}, []string{"x", "y", "z"}, d)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, m.Rows())
	assert.Equal(t, []string{"x", "y", "z"}, m.Cols())
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, d, m.Diagnostics)

	v, err := m.At("b", "z")
	require.NoError(t, err)
	assert.Equal(t, 0.4, v)

	desc, err := m.Descendants("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0}, desc)

	anc, err := m.Ancestors("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.3}, anc)

	assert.InDeltaSlice(t, []float64{0.3, 0.7}, m.RowSums(), 1e-15)
	assert.InDeltaSlice(t, []float64{0.4, 0.2, 0.4}, m.ColSums(), 1e-15)

	g := m.Gonum()
	assert.Equal(t, 0.3, g.At(1, 0))
}

// TestAssemble_NoNumericChange and isolation from the caller's plan.
func TestAssemble_NoNumericChange(t *testing.T) {
	p := plan(t)
	m, err := tmap.Assemble(p, []string{"a", "b"}, []string{"x", "y", "z"}, calibrate.Diagnostics{})
	require.NoError(t, err)
	assert.Equal(t, p.RawData(), m.Plan().RawData())

	p.RawData()[0] = 42
	v, _ := m.At("a", "x")
	assert.Equal(t, 0.1, v)
}

func TestAssemble_Errors(t *testing.T) {
	p := plan(t)
	cases := []struct {
		name     string
		src, dst []string
	}{
		{"short sources", []string{"a"}, []string{"x", "y", "z"}},
		{"long targets", []string{"a", "b"}, []string{"x", "y", "z", "w"}},
		{"empty id", []string{"a", ""}, []string{"x", "y", "z"}},
		{"duplicate id", []string{"a", "b"}, []string{"x", "y", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tmap.Assemble(p, tc.src, tc.dst, calibrate.Diagnostics{})
			assert.ErrorIs(t, err, wot.ErrInputShape)
		})
	}

	_, err := tmap.Assemble(nil, nil, nil, calibrate.Diagnostics{})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMap_UnknownCell(t *testing.T) {
	m, err := tmap.Assemble(plan(t), []string{"a", "b"}, []string{"x", "y", "z"}, calibrate.Diagnostics{})
	require.NoError(t, err)

	_, err = m.At("q", "x")
	assert.ErrorIs(t, err, tmap.ErrUnknownCell)
	_, err = m.At("a", "q")
	assert.ErrorIs(t, err, tmap.ErrUnknownCell)
	_, err = m.Descendants("q")
	assert.ErrorIs(t, err, tmap.ErrUnknownCell)
	_, err = m.Ancestors("q")
	assert.ErrorIs(t, err, tmap.ErrUnknownCell)
}
