// Package tmap assembles calibrated plans into labelled transport maps and
// drives the per-day-pair pipeline.
//
// Pipeline for one pair (t1, t2):
//
//	Index (day → ordered cells, built once)
//	  → cost.Build on the two expression groups
//	  → growth.Rates(rate, t2−t1, L0Max)
//	  → calibrate.Calibrator.Run
//	  → Assemble(plan, source ids, target ids, diagnostics)
//
// Pairs are independent: Run computes them concurrently with a bounded
// worker count, each pair owning all of its state. Within a pair everything
// is sequential.
package tmap
