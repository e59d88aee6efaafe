// Package matrix2d is a small toolkit for dense two-dimensional data: an
// owning row-major buffer, zero-copy rectangular views over it, and the
// iteration and formatting glue that lets ordinary Go code consume both.
//
// 🚀 What is in the box?
//
//	• Storage: Matrix[T] with checked and unchecked element access
//	• Views: Submatrix, Row, Column and their ranges, composable in O(1)
//	• Iteration: iter.Seq / iter.Seq2 and a begin/end Cursor, stride-aware
//	• Formatting: aligned text via Stringer, fmt.Formatter and Fprint
//	• Interop: blas64.General and *mat.Dense backed by the same memory
//
// Layout:
//
//	matrix/          Matrix, View, Grid, iteration, formatting, options
//	matrix/interop/  gonum bridge (zero-copy in both directions)
//	internal/cli/    cobra command tree (demo, print)
//	cmd/matrix2d/    CLI entry point
//
// Quick ASCII example, a 2×2 view cut from a 3×4 owner:
//
//	 0  1  2  3
//	 4 [5  6] 7      stride 4, offset 5
//	 8 [9 10]11
//
// Writes through the view land in the owner's buffer.
//
//	go get github.com/katalvlaran/matrix2d/matrix
package matrix2d
