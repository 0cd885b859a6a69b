// Package calibrate runs the outer control loop around the transport solver.
//
// The observed growth vector g fixes the shape of the source marginal
// (a_obs = g/n1); its scale is unknown. The calibrator searches a scalar
// factor s > 0, solves with a = s·a_obs, and scores the plan on two criteria:
//
//   - transport fraction F(s) = ΣP / Σa_obs must lie in
//     [MinTransportFraction, MaxTransportFraction];
//   - growth fit between the plan's row sums and g must reach MinGrowthFit.
//
// F is increasing in s, so trials keep a bracket [Lo, Hi] around the band and
// a pluggable Strategy proposes the next factor inside it. Oscillating or
// out-of-bracket proposals make the loop fall back to bisection. When the
// fraction is right but the fit is not, λ1 is raised and the bracket reset.
//
// The loop never fails for lack of convergence: it returns the best plan seen
// with Diagnostics.Converged = false. Solver errors do propagate, after a
// single retry with a larger ε on numerical instability.
package calibrate
