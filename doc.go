// Package wot computes optimal-transport maps that link cell states sampled at
// one timepoint to cell states sampled at the next.
//
// 🚀 What is in the box?
//
//	A deterministic, pure-Go pipeline built from small packages:
//		• cost      - squared Euclidean cost between two cell groups, median-normalised
//		• growth    - per-day growth rates turned into growth factors over Δt
//		• sinkhorn  - entropic, unbalanced transport by stabilized iterative scaling
//		• calibrate - outer loop that tunes the source mass until the plan carries
//		              a plausible fraction of it and still reflects observed growth
//		• tmap      - labelled transport maps, day index and a concurrent pair runner
//		• matrix    - row-major Dense storage shared by all of the above
//		• synth     - seeded synthetic timecourses for examples and benchmarks
//		• logging   - zerolog setup with runtime/test profiles and env overrides
//
// The root package holds what every stage shares: the immutable Config
// (regularization + calibration parameters) and the error taxonomy.
//
// Quick sketch:
//
//	cfg := wot.DefaultConfig()
//	maps, err := tmap.Run(ctx, dataset, []tmap.DayPair{{T1: 0, T2: 1}}, cfg)
//
// Errors are sentinels matched with errors.Is:
//
//	ErrInputShape           - dimensions disagree or a cell group is empty
//	ErrInvalidParameter     - non-positive ε/λ/iterations, inverted bounds, reversed days
//	ErrNumericalInstability - scaling produced non-finite values
//
// Calibration that runs out of budget is NOT an error: the best plan comes back
// with calibrate.Diagnostics.Converged == false.
package wot
