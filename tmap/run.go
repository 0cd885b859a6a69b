// SPDX-License-Identifier: MIT

package tmap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/calibrate"
	"github.com/katalvlaran/wot/cost"
	"github.com/katalvlaran/wot/growth"
	"github.com/katalvlaran/wot/matrix"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DayPair names a source day T1 and a target day T2.
type DayPair struct {
	T1, T2 float64
}

func (p DayPair) String() string { return fmt.Sprintf("%g→%g", p.T1, p.T2) }

// Transition is the map computed for one day pair.
type Transition struct {
	Pair DayPair
	Map  *Map
}

// Run computes a transport map for every pair, concurrently across pairs.
// Results are returned in the order of pairs.
//
// Implementation:
//   - Stage 1: validate config and dataset; build the day index and the
//     expression matrix once.
//   - Stage 2: fan out pairs through errgroup (limit = WithWorkers). ctx is
//     checked before each pair starts; the first failure cancels the rest.
//   - Stage 3 (per pair): cost → growth → calibration → Assemble.
//
// Errors: wot sentinels from every stage, ErrMissingDay, ctx.Err().
func Run(ctx context.Context, ds Dataset, pairs []DayPair, cfg wot.Config, opts ...Option) ([]Transition, error) {
	rc := defaultRunConfig()
	for _, o := range opts {
		o(&rc)
	}

	// Stage 1: shared read-only state.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	idx, err := NewIndex(ds.Days)
	if err != nil {
		return nil, err
	}
	expr, err := matrix.FromGonum(ds.Expr)
	if err != nil {
		return nil, fmt.Errorf("tmap: expression: %w", err)
	}

	runID := uuid.NewString()
	log := rc.log.With().Str("run_id", runID).Logger()
	log.Info().Int("pairs", len(pairs)).Int("cells", expr.Rows()).Int("workers", rc.workers).Msg("transport run started")

	// Stage 2: fan-out.
	out := make([]Transition, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.workers)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := computePair(ds, idx, expr, p, cfg, rc, log.With().Stringer("pair", p).Logger())
			if err != nil {
				return fmt.Errorf("tmap: pair %s: %w", p, err)
			}
			out[i] = Transition{Pair: p, Map: m}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("transport run failed")
		return nil, err
	}
	log.Info().Msg("transport run finished")

	return out, nil
}

// computePair runs the pipeline for one pair. All state is local.
func computePair(ds Dataset, idx *Index, expr *matrix.Dense, p DayPair, cfg wot.Config, rc runConfig, log zerolog.Logger) (*Map, error) {
	start := time.Now()

	src, ok := idx.Cells(p.T1)
	if !ok {
		return nil, fmt.Errorf("day %g: %w", p.T1, ErrMissingDay)
	}
	dst, ok := idx.Cells(p.T2)
	if !ok {
		return nil, fmt.Errorf("day %g: %w", p.T2, ErrMissingDay)
	}
	delta, err := growth.DeltaDays(p.T1, p.T2, rc.allowReversed)
	if err != nil {
		return nil, err
	}

	x, err := expr.SelectRows(src)
	if err != nil {
		return nil, err
	}
	y, err := expr.SelectRows(dst)
	if err != nil {
		return nil, err
	}
	c, err := cost.Build(x, y, cost.WithExcludedColumns(rc.exclude...))
	if err != nil {
		return nil, err
	}

	srcIDs, rates := ds.subset(src)
	dstIDs, _ := ds.subset(dst)
	var g []float64
	if rates == nil {
		g = growth.Uniform(len(src))
	} else if g, err = growth.Rates(rates, delta, cfg.L0Max); err != nil {
		return nil, err
	}

	cal, err := calibrate.New(cfg,
		calibrate.WithLogger(log),
		calibrate.WithSolverOptions(rc.solverOpts...),
	)
	if err != nil {
		return nil, err
	}
	res, err := cal.Run(c, g)
	if err != nil {
		return nil, err
	}
	m, err := Assemble(res.Plan, srcIDs, dstIDs, res.Diagnostics)
	if err != nil {
		return nil, err
	}

	d := res.Diagnostics
	ev := log.Info()
	if !d.Converged {
		ev = log.Warn().Str("reason", d.Reason)
	}
	ev.Int("sources", len(src)).
		Int("targets", len(dst)).
		Float64("delta_days", delta).
		Bool("converged", d.Converged).
		Int("trials", d.CalibrationTrials).
		Float64("fraction", d.TransportFraction).
		Float64("growth_fit", d.RecoveredGrowthFit).
		Dur("elapsed", time.Since(start)).
		Msg("transport map computed")

	return m, nil
}
