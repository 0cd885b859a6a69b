// Package matrix provides the row-major Dense storage shared by the cost
// builder, the scaling solver and transport maps.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows/Cols/At/Set/Clone) with safe,
//     error-returning accessors.
//   - Dense, a flat row-major implementation with no-copy fast paths
//     (RawData, RawRow) for hot numeric loops.
//   - Validators for shape, vector length, finiteness and sign.
//   - Reductions (RowSums, ColSums, Total) and scaling helpers.
//   - Interop with gonum.org/v1/gonum/mat (FromGonum, Dense.Gonum).
//
// Loops always run i→j in a fixed order so repeated calls are bit-identical.
package matrix
