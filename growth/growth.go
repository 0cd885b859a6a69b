// SPDX-License-Identifier: MIT

package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wot"
)

// ErrReversedTime indicates that the second timepoint does not come after the
// first one. It wraps wot.ErrInvalidParameter.
var ErrReversedTime = fmt.Errorf("growth: reversed day ordering: %w", wot.ErrInvalidParameter)

// ErrGrowthUnderflow indicates that rate^Δt is too small to be represented,
// so the cell would carry no mass. It wraps wot.ErrInvalidParameter.
var ErrGrowthUnderflow = fmt.Errorf("growth: factor underflows to zero: %w", wot.ErrInvalidParameter)

var errEmptyRates = errors.New("growth: no growth rates")

// DeltaDays returns t2 − t1.
//
// Policy:
//   - t2 > t1 is always accepted.
//   - t2 < t1 is accepted only when allowReversed is true (backward maps).
//   - t2 == t1 is never accepted: a zero interval carries no growth.
//   - Non-finite labels are rejected.
func DeltaDays(t1, t2 float64, allowReversed bool) (float64, error) {
	if math.IsNaN(t1) || math.IsInf(t1, 0) || math.IsNaN(t2) || math.IsInf(t2, 0) {
		return 0, fmt.Errorf("growth: days (%g, %g) must be finite: %w", t1, t2, wot.ErrInvalidParameter)
	}
	d := t2 - t1
	if d == 0 {
		return 0, fmt.Errorf("growth: t1=%g equals t2: %w", t1, ErrReversedTime)
	}
	if d < 0 && !allowReversed {
		return 0, fmt.Errorf("growth: t1=%g after t2=%g: %w", t1, t2, ErrReversedTime)
	}

	return d, nil
}

// Rates returns min(rate[i]^deltaDays, l0Max) for every source cell.
//
// Errors (all wrap wot.ErrInvalidParameter unless noted):
//   - empty rate slice            → wot.ErrInputShape
//   - rate[i] not finite or <= 0
//   - deltaDays zero or not finite
//   - l0Max not finite or <= 0
//   - rate[i]^deltaDays underflows to 0 → ErrGrowthUnderflow
//
// Complexity: O(n).
func Rates(rate []float64, deltaDays, l0Max float64) ([]float64, error) {
	if len(rate) == 0 {
		return nil, fmt.Errorf("%w: %w", errEmptyRates, wot.ErrInputShape)
	}
	if deltaDays == 0 || math.IsNaN(deltaDays) || math.IsInf(deltaDays, 0) {
		return nil, fmt.Errorf("growth: delta_days=%g: %w", deltaDays, wot.ErrInvalidParameter)
	}
	if !(l0Max > 0) || math.IsInf(l0Max, 1) {
		return nil, fmt.Errorf("growth: l0_max=%g: %w", l0Max, wot.ErrInvalidParameter)
	}

	out := make([]float64, len(rate))
	var g float64
	for i, r := range rate {
		if !(r > 0) || math.IsInf(r, 1) {
			return nil, fmt.Errorf("growth: rate[%d]=%g: %w", i, r, wot.ErrInvalidParameter)
		}
		g = math.Pow(r, deltaDays)
		if g == 0 {
			return nil, fmt.Errorf("growth: rate[%d]=%g over delta_days=%g: %w", i, r, deltaDays, ErrGrowthUnderflow)
		}
		if g > l0Max || math.IsInf(g, 1) {
			g = l0Max
		}
		out[i] = g
	}

	return out, nil
}

// Uniform returns n growth factors equal to one (no growth information).
func Uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
