// SPDX-License-Identifier: MIT

package calibrate

import (
	"github.com/katalvlaran/wot/sinkhorn"
	"github.com/rs/zerolog"
)

// Option customizes a Calibrator.
type Option func(*Calibrator)

// WithLogger sets the logger for per-trial debug events (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calibrator) { c.log = l }
}

// WithStrategy overrides the strategy named in the config. Panics on nil.
func WithStrategy(s Strategy) Option {
	if s == nil {
		panic("calibrate: WithStrategy(nil)")
	}
	return func(c *Calibrator) { c.strategy = s }
}

// WithSolverOptions forwards options to every sinkhorn.Solve call.
func WithSolverOptions(opts ...sinkhorn.Option) Option {
	cp := append([]sinkhorn.Option(nil), opts...)
	return func(c *Calibrator) { c.solverOpts = append(c.solverOpts, cp...) }
}
