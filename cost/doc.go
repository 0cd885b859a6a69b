// Package cost builds the pairwise cost matrix between two cell groups.
//
// Each row of the inputs is one cell, each column one feature. The cost of
// moving cell i (first group) to cell j (second group) is the squared
// Euclidean distance between their feature rows. Build then divides the
// whole matrix by its median so that a fixed entropy parameter means the
// same thing for every timepoint pair, whatever the raw feature scale.
//
// Non-feature columns (growth rate, day label, ...) are dropped with
// WithExcludedColumns before any distance is taken.
//
// Performance:
//
//   - Time:   O(n1·n2·d)
//   - Memory: O(n1·n2)
package cost
