// Package growth turns observed per-day growth rates into multiplicative
// growth factors over the interval between two timepoints.
//
// A cell with daily rate r observed Δt days before the next sample is
// expected to contribute r^Δt descendants' worth of mass. Factors are
// clipped to a ceiling (l0_max) so a handful of extreme rates cannot make the
// source mass explode.
//
// The factors seed the source marginal of the transport problem; the
// calibrate package may still rescale them as a whole.
package growth
