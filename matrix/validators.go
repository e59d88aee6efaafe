// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape, index and range checks.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with their own method tag and coordinates.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

import "math"

// validateShape checks that rows/cols are non-negative and that rows*cols
// fits in an int.
//
// Returns:
//   - nil on success; ErrBadShape for negatives; ErrShapeOverflow on overflow.
//
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	// Division form avoids computing the overflowing product.
	if rows != 0 && cols > math.MaxInt/rows {
		return ErrShapeOverflow
	}

	return nil
}

// validateIndex checks 0 ≤ i < rows and 0 ≤ j < cols.
func validateIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// validateSpan checks that [start, start+count) lies within [0, extent).
// A zero-length span is legal anywhere in [0, extent], including at extent.
// Written as count > extent-start so start+count cannot overflow.
func validateSpan(start, count, extent int) error {
	if start < 0 || count < 0 || start > extent || count > extent-start {
		return ErrOutOfRange
	}

	return nil
}

// validateBuffer checks that a strided window (off, rows, cols, stride) fits
// inside a buffer of length n.
//
// Implementation:
//   - Stage 1: reject negatives and stride < cols (rows would overlap).
//   - Stage 2: empty windows only need 0 ≤ off ≤ n.
//   - Stage 3: last element off + (rows-1)*stride + cols-1 must be < n,
//     evaluated without overflow.
//
// Complexity: O(1).
func validateBuffer(n, off, rows, cols, stride int) error {
	if off < 0 || rows < 0 || cols < 0 || stride < 0 {
		return ErrBadShape
	}
	if rows > 0 && cols > 0 && stride < cols {
		return ErrBadShape
	}
	if off > n {
		return ErrOutOfRange
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	avail := n - off // elements available from off onwards
	if rows-1 > 0 && stride > (avail-cols)/(rows-1) {
		return ErrOutOfRange
	}
	if cols > avail {
		return ErrOutOfRange
	}

	return nil
}
