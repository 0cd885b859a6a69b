// SPDX-License-Identifier: MIT
// Package: wot/synth
//
// options.go: functional options for the generators.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: WithSeed (default seed 1) or WithRand.

package synth

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Defaults.
const (
	DefaultSeed      int64 = 1
	DefaultFeatures        = 5
	DefaultDrift           = 1.0
	DefaultNoise           = 0.3
	DefaultGrowthLo        = 0.8
	DefaultGrowthHi        = 1.6
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	seed     int64
	idFn     func(day float64, k int) string
	features int
	drift    float64
	noise    float64
	growthLo float64
	growthHi float64
}

func newConfig(opts ...Option) config {
	c := config{
		seed:     DefaultSeed,
		idFn:     DefaultID,
		features: DefaultFeatures,
		drift:    DefaultDrift,
		noise:    DefaultNoise,
		growthLo: DefaultGrowthLo,
		growthHi: DefaultGrowthHi,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(c.seed)
	}
	return c
}

// DefaultID labels the k-th cell of a day as "d<day>_<k>".
func DefaultID(day float64, k int) string {
	return "d" + strconv.FormatFloat(day, 'g', -1, 64) + "_" + strconv.Itoa(k)
}

// WithSeed makes generation reproducible. Seed 0 maps to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithIDScheme sets the cell id generator. It must be injective. Panics on nil.
func WithIDScheme(fn func(day float64, k int) string) Option {
	if fn == nil {
		panic("synth: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithFeatures sets the number of expression features. Panics if n < 1.
func WithFeatures(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("synth: WithFeatures(%d)", n))
	}
	return func(c *config) { c.features = n }
}

// WithDrift sets how far the population centre moves per day. Any real value.
func WithDrift(k float64) Option {
	return func(c *config) { c.drift = k }
}

// WithNoise sets the per-feature Gaussian spread around the centre.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noise = sigma }
}

// WithGrowthRange draws per-day growth rates uniformly from [lo, hi].
// Panics unless 0 < lo <= hi.
func WithGrowthRange(lo, hi float64) Option {
	if !(lo > 0) || hi < lo {
		panic(fmt.Sprintf("synth: WithGrowthRange(%g, %g)", lo, hi))
	}
	return func(c *config) { c.growthLo, c.growthHi = lo, hi }
}
