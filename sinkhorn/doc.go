// Package sinkhorn solves entropy-regularized, unbalanced optimal transport
// problems by iterative scaling.
//
// Objective:
//
//	min_P  <C,P> − ε·H(P) + λ1·KL(P·1 | a) + λ2·KL(Pᵀ·1 | b)
//
// where KL is the generalized Kullback–Leibler divergence
// KL(x|y) = Σ x·log(x/y) − x + y, so marginals are soft targets and total
// masses need not agree.
//
// Algorithm (stabilized scaling):
//
//   - Keep absorbed log potentials f, g and scalings u, v. The working
//     kernel is K̃ij = exp((f_i + g_j − C_ij)/ε).
//   - Alternate u = (a / K̃v)^{λ1/(λ1+ε)} · exp(−f/(λ1+ε)) and
//     v = (b / K̃ᵀu)^{λ2/(λ2+ε)} · exp(−g/(λ2+ε)).
//   - When a scaling leaves [1/τ, τ] its log is absorbed into f or g, the
//     kernel is rebuilt and u, v are reset to one. Kernel entries therefore
//     stay representable for far smaller ε than the plain kernel exp(−C/ε).
//   - Stop after MaxIter iterations, or once the effective potentials
//     f + ε·log u and g + ε·log v move less than Tol in sup-norm.
//
// Numerical policy:
//
//   - A zero or non-finite scaling, kernel entry or plan entry aborts the
//     solve with wot.ErrNumericalInstability. No plan with NaN/Inf is ever
//     returned.
//
// Determinism:
//
//   - All reductions run in a fixed order. WithWorkers splits the two
//     matrix–vector products across goroutines by whole output elements, so
//     every element is reduced exactly as in the sequential path and results
//     are bit-identical for any worker count.
package sinkhorn
