// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer an explicit unchecked fast path (AtUnchecked/SetUnchecked) for hot loops.
//   - Hand out no-copy views (View) and copy-based materialization (Clone).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Take: O(1); slicing: O(1).

package matrix

import (
	"fmt"
)

const (
	ctxNew       = "New"
	ctxNewFilled = "NewFilled"
	ctxFromSlice = "FromSlice"
	ctxFromRows  = "FromRows"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates (or shape for constructors)
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an owning row-major rows×cols container of T.
//   - r,c hold dimensions (both >= 0; zero means empty).
//   - data is a flat buffer of length exactly r*c (offset = i*c + j).
//
// A Matrix must be used through a pointer: copying the struct value would
// share the buffer. Use Clone for a deep copy and Take to move ownership.
type Matrix[T any] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an r×c matrix of zero values.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; empty shapes are legal.
//
// Implementation:
//   - Stage 1: validate rows, cols >= 0 and rows*cols representable.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrBadShape for negative dimensions.
//   - ErrShapeOverflow when rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, rows, cols, err)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Errors and complexity as New.
func NewFilled[T any](rows, cols int, v T) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNewFilled, rows, cols, err)
	}
	m := &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	m.Fill(v)

	return m, nil
}

// FromSlice creates an r×c matrix holding a copy of data (row-major).
//
// Errors:
//   - ErrBadShape / ErrShapeOverflow as New.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The input is copied so the Matrix owns its buffer exclusively; use
//     NewView to address a caller-owned buffer without copying.
func FromSlice[T any](rows, cols int, data []T) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromSlice, rows, cols, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): len %d: %w",
			ctxFromSlice, rows, cols, len(data), ErrDimensionMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows creates a matrix from a slice of equally long rows (copied).
// An empty input yields a 0×0 matrix; a list of empty rows yields n×0.
//
// Errors:
//   - ErrDimensionMismatch when rows are ragged.
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	if err := validateShape(r, c); err != nil {
		return nil, matrixErrorf(ctxFromRows, r, c, err)
	}
	buf := make([]T, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(row), c, ErrDimensionMismatch)
		}
		copy(buf[i*c:(i+1)*c], row)
	}

	return &Matrix[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the row count. O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols(). O(1).
func (m *Matrix[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Len returns rows*cols, the buffer length. O(1).
func (m *Matrix[T]) Len() int { return len(m.data) }

// Empty reports whether the matrix holds no elements.
func (m *Matrix[T]) Empty() bool { return len(m.data) == 0 }

// Data returns the flat row-major buffer itself (not a copy), for interop
// with code that consumes contiguous slices. Element (i, j) is Data()[i*Cols()+j].
func (m *Matrix[T]) Data() []T { return m.data }

// View returns a view of the whole matrix (stride == Cols). O(1).
func (m *Matrix[T]) View() View[T] {
	return View[T]{data: m.data, off: 0, stride: m.c, r: m.r, c: m.c}
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read; never clamps or wraps.
//
// Errors:
//   - ErrOutOfRange wrapped as "Matrix.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// AtIndex is At addressed by an Index.
func (m *Matrix[T]) AtIndex(idx Index) (T, error) { return m.At(idx.Row, idx.Col) }

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[row*m.c+col] = v

	return nil
}

// SetIndex is Set addressed by an Index.
func (m *Matrix[T]) SetIndex(idx Index, v T) error { return m.Set(idx.Row, idx.Col, v) }

// Ref returns a pointer to element (row, col) for in-place updates.
// The pointer stays valid while the buffer is alive; after Take it points
// into the new owner's storage.
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		return nil, matrixErrorf(ctxRef, row, col, err)
	}

	return &m.data[row*m.c+col], nil
}

// AtUnchecked reads (row, col) with no bounds checks.
// For tight loops after the caller validated the indices. A column index
// past Cols silently reads from the next row; an offset past the buffer
// panics with a runtime error.
func (m *Matrix[T]) AtUnchecked(row, col int) T { return m.data[row*m.c+col] }

// SetUnchecked writes (row, col) with no bounds checks. Same contract as AtUnchecked.
func (m *Matrix[T]) SetUnchecked(row, col int, v T) { m.data[row*m.c+col] = v }

// Row returns row i as a 1×Cols view.
func (m *Matrix[T]) Row(i int) (View[T], error) {
	if i < 0 || i >= m.r {
		return View[T]{}, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.View().sub(i, 1, 0, m.c)
}

// RowRange returns rows [start, start+count) as a view.
func (m *Matrix[T]) RowRange(start, count int) (View[T], error) {
	v, err := m.View().sub(start, count, 0, m.c)
	if err != nil {
		return View[T]{}, matrixErrorf(ctxRowRange, start, count, err)
	}

	return v, nil
}

// Column returns column j as a Rows×1 strided view.
func (m *Matrix[T]) Column(j int) (View[T], error) {
	if j < 0 || j >= m.c {
		return View[T]{}, matrixErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return m.View().sub(0, m.r, j, 1)
}

// ColumnRange returns columns [start, start+count) as a view.
func (m *Matrix[T]) ColumnRange(start, count int) (View[T], error) {
	v, err := m.View().sub(0, m.r, start, count)
	if err != nil {
		return View[T]{}, matrixErrorf(ctxColumnRange, start, count, err)
	}

	return v, nil
}

// Submatrix returns the rowCount×colCount block at (rowStart, colStart)
// without copying. The view's stride is Cols(), so element (r, c) of the
// view is element (rowStart+r, colStart+c) of the matrix.
//
// Errors:
//   - ErrOutOfRange when the rectangle is not fully contained.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Submatrix(rowStart, rowCount, colStart, colCount int) (View[T], error) {
	v, err := m.View().sub(rowStart, rowCount, colStart, colCount)
	if err != nil {
		return View[T]{}, fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w",
			ctxSubmatrix, rowStart, rowCount, colStart, colCount, err)
	}

	return v, nil
}

// RowSlice returns row i as a contiguous sub-slice of Data().
func (m *Matrix[T]) RowSlice(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(ctxRowSlice, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Fill assigns v to every element. O(r*c).
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// Take moves the buffer into a new Matrix and leaves the receiver empty (0×0).
// Nothing is copied. Views created before the move keep aliasing the buffer,
// which now belongs to the returned Matrix.
// Complexity: O(1).
func (m *Matrix[T]) Take() *Matrix[T] {
	out := &Matrix[T]{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Do visits each element in row-major order; stops when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) { m.View().Do(f) }

// Apply replaces each element with f(i, j, v) in place, row-major.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) { m.View().Apply(f) }
