// SPDX-License-Identifier: MIT

// Package matrix: free functions over the Grid contract.
//
// These work identically on *Matrix and View (and on any other Grid), so
// callers never need to know whether they hold an owner or a window.
package matrix

// Equal reports whether a and b have the same shape and equal elements.
// Owners and views compare by visible content only: a Matrix equals any view
// showing the same elements.
//
// Complexity: O(r*c), no allocations.
func Equal[T comparable](a, b Grid[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison (e.g. a
// float tolerance, or comparing grids of different element types).
func EqualFunc[T, U any](a Grid[T], b Grid[U], eq func(T, U) bool) bool {
	if isNilGrid(a) || isNilGrid(b) {
		return isNilGrid(a) == isNilGrid(b)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !eq(a.AtUnchecked(i, j), b.AtUnchecked(i, j)) {
				return false
			}
		}
	}

	return true
}

// isNilGrid reports a nil interface or a typed nil *Matrix.
func isNilGrid[T any](g Grid[T]) bool {
	if g == nil {
		return true
	}
	m, ok := g.(*Matrix[T])

	return ok && m == nil
}
