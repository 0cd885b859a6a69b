// SPDX-License-Identifier: MIT

package synth_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTimecourse_Shape(t *testing.T) {
	ds, err := synth.Timecourse([]float64{0, 1, 2.5}, 4, synth.WithFeatures(3))
	require.NoError(t, err)
	require.NoError(t, ds.Validate())

	r, c := ds.Expr.Dims()
	assert.Equal(t, 12, r)
	assert.Equal(t, 3, c)
	assert.Len(t, ds.Growth, 12)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1, 2.5, 2.5, 2.5, 2.5}, ds.Days)
	assert.Equal(t, "d0_0", ds.CellIDs[0])
	assert.Equal(t, "d2.5_3", ds.CellIDs[11])
	for _, g := range ds.Growth {
		assert.GreaterOrEqual(t, g, synth.DefaultGrowthLo)
		assert.LessOrEqual(t, g, synth.DefaultGrowthHi)
	}
}

func TestTimecourse_Deterministic(t *testing.T) {
	a, err := synth.Timecourse([]float64{0, 1}, 5, synth.WithSeed(7))
	require.NoError(t, err)
	b, err := synth.Timecourse([]float64{0, 1}, 5, synth.WithSeed(7))
	require.NoError(t, err)
	c, err := synth.Timecourse([]float64{0, 1}, 5, synth.WithSeed(8))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.Expr, b.Expr))
	assert.Equal(t, a.Growth, b.Growth)
	assert.False(t, mat.Equal(a.Expr, c.Expr))

	// WithRand with the same seed matches WithSeed.
	d, err := synth.Timecourse([]float64{0, 1}, 5, synth.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.True(t, mat.Equal(a.Expr, d.Expr))
}

// TestTimecourse_DayStreams: adding a day leaves the others untouched.
func TestTimecourse_DayStreams(t *testing.T) {
	two, err := synth.Timecourse([]float64{0, 1}, 3, synth.WithSeed(3), synth.WithFeatures(2))
	require.NoError(t, err)
	three, err := synth.Timecourse([]float64{0, 1, 2}, 3, synth.WithSeed(3), synth.WithFeatures(2))
	require.NoError(t, err)

	sub := three.Expr.(*mat.Dense).Slice(0, 6, 0, 2)
	assert.True(t, mat.Equal(two.Expr, sub))
	assert.Equal(t, two.Growth, three.Growth[:6])
}

// TestTimecourse_Drift: without noise every cell sits on the trajectory.
func TestTimecourse_Drift(t *testing.T) {
	ds, err := synth.Timecourse([]float64{0, 2}, 2, synth.WithNoise(0), synth.WithDrift(1), synth.WithFeatures(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2, 2}, mat.Col(nil, 0, ds.Expr))
}

func TestTimecourse_Invalid(t *testing.T) {
	_, err := synth.Timecourse(nil, 3)
	assert.ErrorIs(t, err, synth.ErrTooFewCells)
	assert.ErrorIs(t, err, wot.ErrInvalidParameter)

	_, err = synth.Timecourse([]float64{0}, 0)
	assert.ErrorIs(t, err, synth.ErrTooFewCells)

	_, err = synth.Timecourse([]float64{1, 1}, 2)
	assert.ErrorIs(t, err, synth.ErrDuplicateDay)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { synth.WithRand(nil) })
	assert.Panics(t, func() { synth.WithIDScheme(nil) })
	assert.Panics(t, func() { synth.WithFeatures(0) })
	assert.Panics(t, func() { synth.WithNoise(-1) })
	assert.Panics(t, func() { synth.WithGrowthRange(0, 1) })
	assert.Panics(t, func() { synth.WithGrowthRange(2, 1) })
	assert.NotPanics(t, func() { synth.WithGrowthRange(1, 1) })
}
