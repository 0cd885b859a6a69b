// SPDX-License-Identifier: MIT
// Package wot: regularization and calibration parameters.
//
// Design goals:
//   - One explicit value instead of ambient, script-level settings.
//   - Config is passed BY VALUE into solver and calibrator; callees never
//     observe later mutations made by the caller.
//   - Defaults are the single source of truth (constants below).

package wot

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

// Regularization defaults.
const (
	// DefaultEpsilon controls the entropy of the plan. Large values give
	// near-uniform plans; tiny values approach a deterministic matching
	// and may become numerically unstable.
	DefaultEpsilon = 0.1

	// DefaultLambda1 weighs fidelity of the plan's row sums to the source marginal.
	DefaultLambda1 = 1.0

	// DefaultLambda2 weighs fidelity of the plan's column sums to the target marginal.
	DefaultLambda2 = 1.0

	// DefaultScalingIter is the iteration budget of one scaling solve.
	DefaultScalingIter = 250

	// DefaultScalingTol stops a solve early once the dual potentials move less
	// than this (sup-norm) between two iterations.
	DefaultScalingTol = 1e-9

	// DefaultMinTransportFraction is the lower bound of the transported-mass band.
	DefaultMinTransportFraction = 0.05

	// DefaultMaxTransportFraction is the upper bound of the transported-mass band.
	DefaultMaxTransportFraction = 0.4

	// DefaultMinGrowthFit is the minimal agreement between recovered and observed growth.
	DefaultMinGrowthFit = 0.9

	// DefaultL0Max caps a single cell's growth factor over one interval.
	DefaultL0Max = 100.0
)

// Calibration defaults.
const (
	DefaultMaxTrials        = 32
	DefaultFactorMin        = 1e-6
	DefaultFactorMax        = 1e6
	DefaultFactorTol        = 1e-6
	DefaultStep             = 1.5
	DefaultLambdaAdjust     = 1.5
	DefaultMaxLambdaBoost   = 100.0
	DefaultEpsilonRecovery  = 10.0
	DefaultOscillationLimit = 2
)

// Strategy names accepted in CalibrationConfig.Strategy.
const (
	StrategyBisection = "bisection"
	StrategyFixedStep = "fixed-step"
	StrategySecant    = "secant"
)

// DefaultStrategy is used when CalibrationConfig.Strategy is empty.
const DefaultStrategy = StrategyBisection

// Config bundles every numeric parameter of one transport computation.
type Config struct {
	Epsilon     float64 // entropy strength, > 0
	Lambda1     float64 // source marginal penalty, > 0
	Lambda2     float64 // target marginal penalty, > 0
	ScalingIter int     // iteration budget per solve, > 0
	ScalingTol  float64 // early-stop tolerance on potentials, >= 0 (0 disables)

	MinTransportFraction float64 // in [0,1]
	MaxTransportFraction float64 // in [0,1], >= MinTransportFraction
	MinGrowthFit         float64 // in [0,1]
	L0Max                float64 // growth ceiling, > 0

	Calibration CalibrationConfig
}

// CalibrationConfig tunes the outer search over the source-mass factor.
type CalibrationConfig struct {
	MaxTrials        int     // solver invocations allowed, > 0
	Strategy         string  // StrategyBisection | StrategyFixedStep | StrategySecant
	FactorMin        float64 // lower end of the initial bracket, > 0
	FactorMax        float64 // upper end of the initial bracket, > FactorMin
	FactorTol        float64 // bracket collapse threshold on Hi/Lo-1, > 0
	Step             float64 // multiplicative step of FixedStep, > 1
	LambdaAdjust     float64 // λ1 boost per failed growth fit, > 1
	MaxLambdaBoost   float64 // cap on the cumulative λ1 boost, >= 1
	EpsilonRecovery  float64 // ε multiplier for the single instability retry, > 1
	OscillationLimit int     // direction reversals tolerated before bisection, >= 1
}

// DefaultConfig returns the documented defaults.
// Complexity: O(1).
func DefaultConfig() Config {
	return Config{
		Epsilon:              DefaultEpsilon,
		Lambda1:              DefaultLambda1,
		Lambda2:              DefaultLambda2,
		ScalingIter:          DefaultScalingIter,
		ScalingTol:           DefaultScalingTol,
		MinTransportFraction: DefaultMinTransportFraction,
		MaxTransportFraction: DefaultMaxTransportFraction,
		MinGrowthFit:         DefaultMinGrowthFit,
		L0Max:                DefaultL0Max,
		Calibration:          DefaultCalibrationConfig(),
	}
}

// DefaultCalibrationConfig returns the calibration defaults.
func DefaultCalibrationConfig() CalibrationConfig {
	return CalibrationConfig{
		MaxTrials:        DefaultMaxTrials,
		Strategy:         DefaultStrategy,
		FactorMin:        DefaultFactorMin,
		FactorMax:        DefaultFactorMax,
		FactorTol:        DefaultFactorTol,
		Step:             DefaultStep,
		LambdaAdjust:     DefaultLambdaAdjust,
		MaxLambdaBoost:   DefaultMaxLambdaBoost,
		EpsilonRecovery:  DefaultEpsilonRecovery,
		OscillationLimit: DefaultOscillationLimit,
	}
}

// Validate checks every field and returns the first violation wrapped around
// ErrInvalidParameter, naming the field and the offending value.
//
// Order: regularization → bounds → calibration.
// Complexity: O(1).
func (c Config) Validate() error {
	// Stage 1: regularization strengths and iteration budget.
	if !positiveFinite(c.Epsilon) {
		return paramErrorf("epsilon", c.Epsilon)
	}
	if !positiveFinite(c.Lambda1) {
		return paramErrorf("lambda1", c.Lambda1)
	}
	if !positiveFinite(c.Lambda2) {
		return paramErrorf("lambda2", c.Lambda2)
	}
	if c.ScalingIter <= 0 {
		return paramErrorf("scaling_iter", float64(c.ScalingIter))
	}
	if c.ScalingTol < 0 || math.IsNaN(c.ScalingTol) || math.IsInf(c.ScalingTol, 0) {
		return paramErrorf("scaling_tol", c.ScalingTol)
	}

	// Stage 2: bands and ceilings.
	if !unitInterval(c.MinTransportFraction) {
		return paramErrorf("min_transport_fraction", c.MinTransportFraction)
	}
	if !unitInterval(c.MaxTransportFraction) {
		return paramErrorf("max_transport_fraction", c.MaxTransportFraction)
	}
	if c.MinTransportFraction > c.MaxTransportFraction {
		return fmt.Errorf("wot: min_transport_fraction=%g > max_transport_fraction=%g: %w",
			c.MinTransportFraction, c.MaxTransportFraction, ErrInvalidParameter)
	}
	if !unitInterval(c.MinGrowthFit) {
		return paramErrorf("min_growth_fit", c.MinGrowthFit)
	}
	if !positiveFinite(c.L0Max) {
		return paramErrorf("l0_max", c.L0Max)
	}

	// Stage 3: calibration block.
	return c.Calibration.Validate()
}

// Validate checks the calibration block on its own.
func (c CalibrationConfig) Validate() error {
	if c.MaxTrials <= 0 {
		return paramErrorf("calibration.max_trials", float64(c.MaxTrials))
	}
	switch c.Strategy {
	case "", StrategyBisection, StrategyFixedStep, StrategySecant:
		// ok; empty resolves to DefaultStrategy
	default:
		return fmt.Errorf("wot: calibration.strategy=%q unknown: %w", c.Strategy, ErrInvalidParameter)
	}
	if !positiveFinite(c.FactorMin) {
		return paramErrorf("calibration.factor_min", c.FactorMin)
	}
	if !positiveFinite(c.FactorMax) || c.FactorMax <= c.FactorMin {
		return paramErrorf("calibration.factor_max", c.FactorMax)
	}
	if !positiveFinite(c.FactorTol) {
		return paramErrorf("calibration.factor_tol", c.FactorTol)
	}
	if !(c.Step > 1) || math.IsInf(c.Step, 0) {
		return paramErrorf("calibration.step", c.Step)
	}
	if !(c.LambdaAdjust > 1) || math.IsInf(c.LambdaAdjust, 0) {
		return paramErrorf("calibration.lambda_adjust", c.LambdaAdjust)
	}
	if !(c.MaxLambdaBoost >= 1) || math.IsInf(c.MaxLambdaBoost, 0) {
		return paramErrorf("calibration.max_lambda_boost", c.MaxLambdaBoost)
	}
	if !(c.EpsilonRecovery > 1) || math.IsInf(c.EpsilonRecovery, 0) {
		return paramErrorf("calibration.epsilon_recovery", c.EpsilonRecovery)
	}
	if c.OscillationLimit < 1 {
		return paramErrorf("calibration.oscillation_limit", float64(c.OscillationLimit))
	}

	return nil
}

// StrategyName resolves an empty Strategy to DefaultStrategy.
func (c CalibrationConfig) StrategyName() string {
	if c.Strategy == "" {
		return DefaultStrategy
	}

	return c.Strategy
}

func paramErrorf(field string, v float64) error {
	return fmt.Errorf("wot: %s=%g: %w", field, v, ErrInvalidParameter)
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func unitInterval(x float64) bool {
	return x >= 0 && x <= 1
}
