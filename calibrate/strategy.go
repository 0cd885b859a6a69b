// SPDX-License-Identifier: MIT

package calibrate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wot"
)

// Trial records one solver invocation of the calibration loop.
type Trial struct {
	Factor     float64 // s applied to the observed source marginal
	Fraction   float64 // ΣP / Σa_obs
	Fit        float64 // growth fit score
	Lambda1    float64 // λ1 used for this trial
	Epsilon    float64 // ε used for this trial
	Iterations int     // scaling iterations of the solve
	Violation  float64 // 0 when both criteria hold
}

// Bracket is the current search interval for the factor, plus the fraction
// the search aims for (the band centre).
type Bracket struct {
	Lo, Hi float64
	Target float64
}

// Mid returns the geometric midpoint √(Lo·Hi).
func (b Bracket) Mid() float64 { return math.Sqrt(b.Lo * b.Hi) }

// Contains reports whether s lies strictly inside (Lo, Hi).
func (b Bracket) Contains(s float64) bool { return s > b.Lo && s < b.Hi }

// Strategy proposes the next calibration factor.
//
// history holds the trials since the last bracket reset, oldest first, and is
// never empty. A proposal outside the open bracket (or NaN) is treated as
// oscillation and the loop switches to Bisection.
type Strategy interface {
	Name() string
	Next(history []Trial, b Bracket) float64
}

// Bisection halves the bracket in log space.
type Bisection struct{}

func (Bisection) Name() string { return wot.StrategyBisection }

func (Bisection) Next(_ []Trial, b Bracket) float64 { return b.Mid() }

// FixedStep multiplies the last factor by Step when the fraction is below
// target and divides by Step when above.
type FixedStep struct {
	Step float64 // > 1
}

func (FixedStep) Name() string { return wot.StrategyFixedStep }

func (f FixedStep) Next(history []Trial, b Bracket) float64 {
	last := history[len(history)-1]
	if last.Fraction > b.Target {
		return last.Factor / f.Step
	}
	return last.Factor * f.Step
}

// Secant runs the secant method on (log s, log F − log Target). Until two
// usable trials exist it moves like FixedStep.
type Secant struct {
	Step float64 // first move, > 1
}

func (Secant) Name() string { return wot.StrategySecant }

func (s Secant) Next(history []Trial, b Bracket) float64 {
	n := len(history)
	last := history[n-1]
	if n < 2 || last.Fraction <= 0 || history[n-2].Fraction <= 0 || b.Target <= 0 {
		return FixedStep{Step: s.Step}.Next(history, b)
	}
	prev := history[n-2]

	x0, x1 := math.Log(prev.Factor), math.Log(last.Factor)
	y0 := math.Log(prev.Fraction) - math.Log(b.Target)
	y1 := math.Log(last.Fraction) - math.Log(b.Target)
	if y1 == y0 || x1 == x0 {
		return FixedStep{Step: s.Step}.Next(history, b)
	}

	return math.Exp(x1 - y1*(x1-x0)/(y1-y0))
}

// NewStrategy returns the strategy named by cc.Strategy (empty = bisection).
func NewStrategy(cc wot.CalibrationConfig) (Strategy, error) {
	switch cc.StrategyName() {
	case wot.StrategyBisection:
		return Bisection{}, nil
	case wot.StrategyFixedStep:
		return FixedStep{Step: cc.Step}, nil
	case wot.StrategySecant:
		return Secant{Step: cc.Step}, nil
	default:
		return nil, fmt.Errorf("calibrate: strategy %q: %w", cc.Strategy, wot.ErrInvalidParameter)
	}
}
