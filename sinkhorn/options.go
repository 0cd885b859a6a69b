// SPDX-License-Identifier: MIT
// Package: wot/sinkhorn
//
// options.go: functional options for Solve.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Solve itself never panics; it returns sentinel errors.
//   • Defaults below are the single source of truth.

package sinkhorn

import "fmt"

// DefaultStabilizeThreshold is τ: a scaling outside [1/τ, τ] is absorbed
// into the log potentials.
const DefaultStabilizeThreshold = 1e50

// Option customizes a solve.
type Option func(*config)

type config struct {
	workers int     // goroutines for matrix–vector products; 1 = sequential
	tau     float64 // absorption threshold
}

func defaultConfig() config {
	return config{workers: 1, tau: DefaultStabilizeThreshold}
}

// WithWorkers splits the matrix–vector products of every iteration across n
// goroutines. Results are bit-identical to n == 1. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sinkhorn: WithWorkers(%d): need at least one worker", n))
	}
	return func(c *config) { c.workers = n }
}

// WithStabilizeThreshold sets τ. Panics unless τ > 1 and finite.
func WithStabilizeThreshold(tau float64) Option {
	if !(tau > 1) || tau > 1e300 {
		panic(fmt.Sprintf("sinkhorn: WithStabilizeThreshold(%g): need 1 < tau <= 1e300", tau))
	}
	return func(c *config) { c.tau = tau }
}

func gatherOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
