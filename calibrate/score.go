// SPDX-License-Identifier: MIT

package calibrate

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// varTol is the relative spread below which a vector counts as constant.
const varTol = 1e-9

// GrowthFit scores how well the plan's row sums recover the observed growth.
//
//   - Both vectors vary: Pearson correlation (gonum stat.Correlation).
//   - Otherwise correlation is undefined; the score is 1 − Σ(r̂−g)²/Σg² with
//     r̂ = rows rescaled to the total of g. Constant rows against constant g
//     score exactly 1.
//
// rows and g must have equal length; a zero row total scores 0.
func GrowthFit(rows, g []float64) float64 {
	if varies(rows) && varies(g) {
		return stat.Correlation(rows, g, nil)
	}

	rt, gt := floats.Sum(rows), floats.Sum(g)
	if rt == 0 || gt == 0 {
		return 0
	}
	k := gt / rt
	var num, den, d float64
	for i := range rows {
		d = rows[i]*k - g[i]
		num += d * d
		den += g[i] * g[i]
	}

	return 1 - num/den
}

// violation measures how far a trial is from meeting both criteria
// (0 = both hold).
func violation(fraction, fit, minF, maxF, minFit float64) float64 {
	var v float64
	switch {
	case fraction < minF:
		v = minF - fraction
	case fraction > maxF:
		v = fraction - maxF
	}
	if !(fit >= minFit) {
		v += minFit - fit
	}
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

func varies(x []float64) bool {
	if len(x) < 2 {
		return false
	}
	hi, lo := floats.Max(x), floats.Min(x)
	scale := math.Max(math.Abs(hi), math.Abs(lo))
	return hi-lo > varTol*scale
}
