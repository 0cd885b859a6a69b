// SPDX-License-Identifier: MIT

package sinkhorn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wot/matrix"
	"github.com/katalvlaran/wot/sinkhorn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	h, err := sinkhorn.Entropy(mustFrom(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), h, 1e-12)

	// Scale does not matter: the plan is normalised first.
	h, err = sinkhorn.Entropy(mustFrom(t, [][]float64{{7, 0}, {0, 7}}))
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), h, 1e-12)

	h, err = sinkhorn.Entropy(mustFrom(t, [][]float64{{3}}))
	require.NoError(t, err)
	assert.Zero(t, h)
}

func TestEntropy_Errors(t *testing.T) {
	_, err := sinkhorn.Entropy(mustFrom(t, [][]float64{{0, 0}}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = sinkhorn.Entropy(mustFrom(t, [][]float64{{1, -1}}))
	assert.ErrorIs(t, err, matrix.ErrNegative)

	_, err = sinkhorn.Entropy(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
