// SPDX-License-Identifier: MIT

package growth_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/growth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRates_PowerAndClip raises to Δt and clips at the ceiling.
func TestRates_PowerAndClip(t *testing.T) {
	g, err := growth.Rates([]float64{2, 0.5, 10}, 2, 50)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0.25, 50}, g)

	g, err = growth.Rates([]float64{4}, 0.5, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, g[0], 1e-12, "fractional days")
}

// TestRates_Overflow clips even when the power overflows.
func TestRates_Overflow(t *testing.T) {
	g, err := growth.Rates([]float64{1e10}, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, g)
}

// TestRates_Underflow names the cell whose factor vanishes instead of
// handing a zero mass downstream.
func TestRates_Underflow(t *testing.T) {
	_, err := growth.Rates([]float64{1, 1e-5}, 100, 100)
	require.ErrorIs(t, err, growth.ErrGrowthUnderflow)
	assert.ErrorIs(t, err, wot.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "rate[1]=1e-05 over delta_days=100")

	_, err = growth.Rates([]float64{1e10}, -40, 100)
	assert.ErrorIs(t, err, growth.ErrGrowthUnderflow, "reversed interval")

	g, err := growth.Rates([]float64{1e-5}, 60, 100)
	require.NoError(t, err)
	assert.Positive(t, g[0], "tiny but representable")
}

// TestRates_Invalid covers each rejected input.
func TestRates_Invalid(t *testing.T) {
	_, err := growth.Rates(nil, 1, 100)
	assert.ErrorIs(t, err, wot.ErrInputShape)

	cases := []struct {
		name  string
		rate  []float64
		delta float64
		l0    float64
	}{
		{"zero rate", []float64{1, 0}, 1, 100},
		{"negative rate", []float64{-1}, 1, 100},
		{"nan rate", []float64{math.NaN()}, 1, 100},
		{"zero delta", []float64{1}, 0, 100},
		{"inf delta", []float64{1}, math.Inf(1), 100},
		{"zero ceiling", []float64{1}, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := growth.Rates(tc.rate, tc.delta, tc.l0)
			assert.ErrorIs(t, err, wot.ErrInvalidParameter)
		})
	}
}

// TestDeltaDays enforces forward ordering unless reversal is allowed.
func TestDeltaDays(t *testing.T) {
	d, err := growth.DeltaDays(1.5, 3, false)
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)

	_, err = growth.DeltaDays(3, 1, false)
	assert.ErrorIs(t, err, growth.ErrReversedTime)
	assert.ErrorIs(t, err, wot.ErrInvalidParameter)

	d, err = growth.DeltaDays(3, 1, true)
	require.NoError(t, err)
	assert.Equal(t, -2.0, d)

	_, err = growth.DeltaDays(2, 2, true)
	assert.ErrorIs(t, err, growth.ErrReversedTime)
}

// TestRates_Reversed shrinks mass when looking backward in time.
func TestRates_Reversed(t *testing.T) {
	g, err := growth.Rates([]float64{2}, -1, 100)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, g)
}

func TestUniform(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, growth.Uniform(3))
}
