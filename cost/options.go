// SPDX-License-Identifier: MIT
// Package: wot/cost
//
// options.go: functional options for the cost builder.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic; they return sentinel errors.
//   • No hidden globals; everything flows through config.

package cost

import "fmt"

// Option customizes a cost computation.
type Option func(*config)

type config struct {
	exclude []int // column indices dropped from both inputs before distances
}

// WithExcludedColumns drops the listed columns (e.g. growth rate and day label)
// from both inputs before distances are computed. Panics on a negative index.
func WithExcludedColumns(cols ...int) Option {
	for _, c := range cols {
		if c < 0 {
			panic(fmt.Sprintf("cost: WithExcludedColumns(%d): negative index", c))
		}
	}
	cp := append([]int(nil), cols...)
	return func(cfg *config) {
		cfg.exclude = append(cfg.exclude, cp...)
	}
}

func gatherOptions(opts ...Option) config {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
