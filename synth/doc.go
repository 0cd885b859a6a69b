// Package synth generates seeded synthetic timecourses: cells sampled at a
// few days, drifting along a trajectory in feature space, each with an
// observed per-day growth rate.
//
// Output is a tmap.Dataset, ready for tmap.Run. Generation is deterministic
// for a given seed, and each day draws from its own derived stream so adding
// a day never changes the cells of the others.
package synth
