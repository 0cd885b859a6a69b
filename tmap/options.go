// SPDX-License-Identifier: MIT

package tmap

import (
	"fmt"

	"github.com/katalvlaran/wot/sinkhorn"
	"github.com/rs/zerolog"
)

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	workers       int
	log           zerolog.Logger
	allowReversed bool
	exclude       []int
	solverOpts    []sinkhorn.Option
}

func defaultRunConfig() runConfig {
	return runConfig{workers: 1, log: zerolog.Nop()}
}

// WithWorkers bounds the number of day pairs computed at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("tmap: WithWorkers(%d): need at least one worker", n))
	}
	return func(c *runConfig) { c.workers = n }
}

// WithLogger sets the pipeline logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(c *runConfig) { c.log = l }
}

// WithAllowReversed accepts pairs with t2 < t1 (backward maps).
func WithAllowReversed(allow bool) Option {
	return func(c *runConfig) { c.allowReversed = allow }
}

// WithExcludedColumns drops non-feature expression columns before distances.
// Panics on a negative index.
func WithExcludedColumns(cols ...int) Option {
	for _, col := range cols {
		if col < 0 {
			panic(fmt.Sprintf("tmap: WithExcludedColumns(%d): negative index", col))
		}
	}
	cp := append([]int(nil), cols...)
	return func(c *runConfig) { c.exclude = append(c.exclude, cp...) }
}

// WithSolverOptions forwards options to every solve (e.g. sinkhorn.WithWorkers).
func WithSolverOptions(opts ...sinkhorn.Option) Option {
	cp := append([]sinkhorn.Option(nil), opts...)
	return func(c *runConfig) { c.solverOpts = append(c.solverOpts, cp...) }
}
