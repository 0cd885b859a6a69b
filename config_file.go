// SPDX-License-Identifier: MIT

package wot

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with TOML keys. Only keys present in the file are
// applied on top of DefaultConfig.
type fileConfig struct {
	Epsilon              float64         `toml:"epsilon"`
	Lambda1              float64         `toml:"lambda1"`
	Lambda2              float64         `toml:"lambda2"`
	ScalingIter          int             `toml:"scaling_iter"`
	ScalingTol           float64         `toml:"scaling_tol"`
	MinTransportFraction float64         `toml:"min_transport_fraction"`
	MaxTransportFraction float64         `toml:"max_transport_fraction"`
	MinGrowthFit         float64         `toml:"min_growth_fit"`
	L0Max                float64         `toml:"l0_max"`
	Calibration          fileCalibration `toml:"calibration"`
}

type fileCalibration struct {
	MaxTrials        int     `toml:"max_trials"`
	Strategy         string  `toml:"strategy"`
	FactorMin        float64 `toml:"factor_min"`
	FactorMax        float64 `toml:"factor_max"`
	FactorTol        float64 `toml:"factor_tol"`
	Step             float64 `toml:"step"`
	LambdaAdjust     float64 `toml:"lambda_adjust"`
	MaxLambdaBoost   float64 `toml:"max_lambda_boost"`
	EpsilonRecovery  float64 `toml:"epsilon_recovery"`
	OscillationLimit int     `toml:"oscillation_limit"`
}

// LoadConfig reads a TOML file and overlays it on DefaultConfig.
// The result is validated; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("wot: load config %s: %w", path, err)
	}

	return overlay(raw, meta)
}

// DecodeConfig is LoadConfig for an already opened stream.
func DecodeConfig(r io.Reader) (Config, error) {
	var raw fileConfig
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Config{}, fmt.Errorf("wot: decode config: %w", err)
	}

	return overlay(raw, meta)
}

func overlay(raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("wot: unknown config keys [%s]: %w",
			strings.Join(keys, ", "), ErrInvalidParameter)
	}

	cfg := DefaultConfig()

	if meta.IsDefined("epsilon") {
		cfg.Epsilon = raw.Epsilon
	}
	if meta.IsDefined("lambda1") {
		cfg.Lambda1 = raw.Lambda1
	}
	if meta.IsDefined("lambda2") {
		cfg.Lambda2 = raw.Lambda2
	}
	if meta.IsDefined("scaling_iter") {
		cfg.ScalingIter = raw.ScalingIter
	}
	if meta.IsDefined("scaling_tol") {
		cfg.ScalingTol = raw.ScalingTol
	}
	if meta.IsDefined("min_transport_fraction") {
		cfg.MinTransportFraction = raw.MinTransportFraction
	}
	if meta.IsDefined("max_transport_fraction") {
		cfg.MaxTransportFraction = raw.MaxTransportFraction
	}
	if meta.IsDefined("min_growth_fit") {
		cfg.MinGrowthFit = raw.MinGrowthFit
	}
	if meta.IsDefined("l0_max") {
		cfg.L0Max = raw.L0Max
	}

	cal := &cfg.Calibration
	if meta.IsDefined("calibration", "max_trials") {
		cal.MaxTrials = raw.Calibration.MaxTrials
	}
	if meta.IsDefined("calibration", "strategy") {
		cal.Strategy = strings.ToLower(strings.TrimSpace(raw.Calibration.Strategy))
	}
	if meta.IsDefined("calibration", "factor_min") {
		cal.FactorMin = raw.Calibration.FactorMin
	}
	if meta.IsDefined("calibration", "factor_max") {
		cal.FactorMax = raw.Calibration.FactorMax
	}
	if meta.IsDefined("calibration", "factor_tol") {
		cal.FactorTol = raw.Calibration.FactorTol
	}
	if meta.IsDefined("calibration", "step") {
		cal.Step = raw.Calibration.Step
	}
	if meta.IsDefined("calibration", "lambda_adjust") {
		cal.LambdaAdjust = raw.Calibration.LambdaAdjust
	}
	if meta.IsDefined("calibration", "max_lambda_boost") {
		cal.MaxLambdaBoost = raw.Calibration.MaxLambdaBoost
	}
	if meta.IsDefined("calibration", "epsilon_recovery") {
		cal.EpsilonRecovery = raw.Calibration.EpsilonRecovery
	}
	if meta.IsDefined("calibration", "oscillation_limit") {
		cal.OscillationLimit = raw.Calibration.OscillationLimit
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
