// SPDX-License-Identifier: MIT

package calibrate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/matrix"
	"github.com/katalvlaran/wot/sinkhorn"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
)

// Stop reasons reported in Diagnostics.Reason when the loop did not converge.
const (
	ReasonBudget    = "trial budget exhausted"
	ReasonCollapsed = "bracket collapsed"
	ReasonLambdaCap = "growth fit below minimum at maximum lambda1 boost"
)

// Diagnostics describes how the returned plan was obtained.
type Diagnostics struct {
	IterationsUsed      int     // scaling iterations of the returned plan's solve
	CalibrationTrials   int     // solver invocations (instability retries excluded)
	Converged           bool    // both criteria met
	RecoveredGrowthFit  float64 // growth fit of the returned plan
	TransportFraction   float64 // ΣP / Σa_obs of the returned plan
	Factor              float64 // s of the returned plan
	Lambda1             float64 // λ1 of the returned plan (after boosts)
	Epsilon             float64 // ε of the returned plan (after recovery)
	Strategy            string  // configured strategy name
	FellBackToBisection bool
	Reason              string // empty when converged
}

// Result is a calibrated plan with its diagnostics.
type Result struct {
	Plan        *matrix.Dense
	Diagnostics Diagnostics
}

// Calibrator searches the source-mass factor for one timepoint pair.
// It holds only immutable settings and may be shared between goroutines.
type Calibrator struct {
	cfg        wot.Config
	strategy   Strategy
	log        zerolog.Logger
	solverOpts []sinkhorn.Option
}

// New validates cfg and builds a Calibrator.
func New(cfg wot.Config, opts ...Option) (*Calibrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := NewStrategy(cfg.Calibration)
	if err != nil {
		return nil, err
	}
	c := &Calibrator{cfg: cfg, strategy: s, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// Config returns the calibrator's configuration.
func (c *Calibrator) Config() wot.Config { return c.cfg }

// Run calibrates the plan between the rows (sources) and columns (targets)
// of cost, starting from the observed growth vector.
//
// Implementation:
//   - Stage 1: shapes and growth values (fail fast, no solve).
//   - Stage 2: marginals a_obs = g/n1 and b_j = Σa_obs/n2.
//   - Stage 3: trial loop (see package doc) until converged, collapsed,
//     λ1 capped or out of trials.
//   - Stage 4: best trial → Result.
//
// Errors: wot.ErrInputShape, wot.ErrInvalidParameter, and solver errors
// (wot.ErrNumericalInstability after the ε retry). Non-convergence is not an
// error.
func (c *Calibrator) Run(cost matrix.Matrix, growth []float64) (Result, error) {
	// Stage 1: validation.
	if err := matrix.ValidateNotNil(cost); err != nil {
		return Result{}, fmt.Errorf("calibrate: cost: %w", wot.ErrInputShape)
	}
	n1, n2 := cost.Rows(), cost.Cols()
	if n1 == 0 || n2 == 0 {
		return Result{}, fmt.Errorf("calibrate: cost is %d×%d: %w", n1, n2, wot.ErrInputShape)
	}
	if len(growth) != n1 {
		return Result{}, fmt.Errorf("calibrate: cost has %d rows, growth vector has %d entries: %w",
			n1, len(growth), wot.ErrInputShape)
	}
	if err := matrix.ValidateVecPositive(growth); err != nil {
		return Result{}, fmt.Errorf("calibrate: growth: %w: %w", err, wot.ErrInvalidParameter)
	}

	// Stage 2: marginals.
	aObs := make([]float64, n1)
	floats.ScaleTo(aObs, 1/float64(n1), growth)
	massObs := floats.Sum(aObs)
	b := make([]float64, n2)
	for j := range b {
		b[j] = massObs / float64(n2)
	}

	// Stage 3: control loop.
	var (
		cc       = c.cfg.Calibration
		minF     = c.cfg.MinTransportFraction
		maxF     = c.cfg.MaxTransportFraction
		minFit   = c.cfg.MinGrowthFit
		initial  = Bracket{Lo: cc.FactorMin, Hi: cc.FactorMax, Target: (minF + maxF) / 2}
		br       = initial
		strat    = c.strategy
		ev       = evaluator{cost: cost, aObs: aObs, b: b, mass: massObs, growth: growth, opts: c.solverOpts}
		params   = sinkhorn.ParamsFromConfig(c.cfg)
		s        = initialFactor(initial)
		boost    = 1.0
		history  []Trial
		best     Trial
		bestPlan *matrix.Dense
		trials   int
		lastDir  int
		reversal int
		fellBack bool
		done     bool
		reason   string
		dir      int
	)
	for !done && trials < cc.MaxTrials {
		trials++
		t, plan, err := c.trial(&ev, &params, s)
		if err != nil {
			return Result{}, err
		}
		t.Violation = violation(t.Fraction, t.Fit, minF, maxF, minFit)
		c.log.Debug().
			Int("trial", trials).
			Float64("factor", t.Factor).
			Float64("fraction", t.Fraction).
			Float64("fit", t.Fit).
			Float64("lambda1", t.Lambda1).
			Float64("epsilon", t.Epsilon).
			Int("iterations", t.Iterations).
			Msg("calibration trial")

		if bestPlan == nil || t.Violation < best.Violation {
			best, bestPlan = t, plan
		}
		history = append(history, t)

		inBand := t.Fraction >= minF && t.Fraction <= maxF
		switch {
		case inBand && t.Fit >= minFit:
			done = true
		case inBand:
			// Fraction is fine; tighten the source marginal and search again.
			if boost*cc.LambdaAdjust > cc.MaxLambdaBoost {
				reason, done = ReasonLambdaCap, true
				break
			}
			boost *= cc.LambdaAdjust
			params.Lambda1 = c.cfg.Lambda1 * boost
			br, history, lastDir, reversal = initial, nil, 0, 0
		default:
			if t.Fraction > maxF {
				br.Hi, dir = s, -1
			} else {
				br.Lo, dir = s, 1
			}
			if lastDir != 0 && dir != lastDir {
				reversal++
			}
			lastDir = dir
			if br.Hi/br.Lo-1 < cc.FactorTol {
				reason, done = ReasonCollapsed, true
				break
			}

			next := strat.Next(history, br)
			if _, bisect := strat.(Bisection); !bisect && (reversal >= cc.OscillationLimit || !br.Contains(next)) {
				c.log.Debug().
					Str("strategy", strat.Name()).
					Int("reversals", reversal).
					Float64("proposal", next).
					Msg("calibration oscillating, falling back to bisection")
				strat, fellBack = Bisection{}, true
				next = br.Mid()
			}
			s = next
		}
	}
	converged := best.Violation == 0
	if !converged && reason == "" {
		reason = ReasonBudget
	}

	// Stage 4: report.
	d := Diagnostics{
		IterationsUsed:      best.Iterations,
		CalibrationTrials:   trials,
		Converged:           converged,
		RecoveredGrowthFit:  best.Fit,
		TransportFraction:   best.Fraction,
		Factor:              best.Factor,
		Lambda1:             best.Lambda1,
		Epsilon:             best.Epsilon,
		Strategy:            c.strategy.Name(),
		FellBackToBisection: fellBack,
		Reason:              reason,
	}
	c.log.Debug().
		Bool("converged", d.Converged).
		Int("trials", d.CalibrationTrials).
		Str("reason", d.Reason).
		Msg("calibration finished")

	return Result{Plan: bestPlan, Diagnostics: d}, nil
}

// trial solves once at factor s. On numerical instability it retries a single
// time per run with ε multiplied by EpsilonRecovery and keeps that ε.
func (c *Calibrator) trial(ev *evaluator, p *sinkhorn.Params, s float64) (Trial, *matrix.Dense, error) {
	t, plan, err := ev.eval(*p, s)
	if err == nil || ev.recovered || !errors.Is(err, wot.ErrNumericalInstability) {
		return t, plan, err
	}

	ev.recovered = true
	prev := p.Epsilon
	p.Epsilon *= c.cfg.Calibration.EpsilonRecovery
	c.log.Warn().
		Err(err).
		Float64("epsilon", prev).
		Float64("retry_epsilon", p.Epsilon).
		Msg("solver unstable, retrying with larger epsilon")

	return ev.eval(*p, s)
}

// evaluator owns the per-run marginals and scores trials.
type evaluator struct {
	cost      matrix.Matrix
	aObs, b   []float64
	mass      float64 // Σa_obs
	growth    []float64
	opts      []sinkhorn.Option
	recovered bool
}

func (ev *evaluator) eval(p sinkhorn.Params, s float64) (Trial, *matrix.Dense, error) {
	a := make([]float64, len(ev.aObs))
	floats.ScaleTo(a, s, ev.aObs)

	res, err := sinkhorn.Solve(ev.cost, a, ev.b, p, ev.opts...)
	if err != nil {
		return Trial{}, nil, fmt.Errorf("calibrate: factor %g: %w", s, err)
	}
	rows, err := matrix.RowSums(res.Plan)
	if err != nil {
		return Trial{}, nil, fmt.Errorf("calibrate: %w", err)
	}

	return Trial{
		Factor:     s,
		Fraction:   floats.Sum(rows) / ev.mass,
		Fit:        GrowthFit(rows, ev.growth),
		Lambda1:    p.Lambda1,
		Epsilon:    p.Epsilon,
		Iterations: res.Iterations,
	}, res.Plan, nil
}

// initialFactor starts from the observed growth as is (s = 1) when the
// bracket allows it.
func initialFactor(b Bracket) float64 {
	if b.Lo <= 1 && 1 <= b.Hi {
		return 1
	}
	return b.Mid()
}
