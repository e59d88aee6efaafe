// SPDX-License-Identifier: MIT

// Package matrix - View: non-owning strided windows over a flat buffer.
//
// Purpose:
//   - Address a rectangular region of a row-major buffer as (offset, stride, rows, cols).
//   - Derive sub-views in O(1) without copying: rows, columns, ranges, blocks.
//   - Share one addressing formula with the owner: off + i*stride + j.
//
// Lifetime & aliasing:
//   - A View is a borrow. It holds the backing slice, so the garbage collector
//     keeps the memory alive, but it carries no link to the Matrix it came
//     from: writes through any view are visible through the owner and every
//     overlapping view. There is no copy-on-write and no locking.
//   - Matrix.Take moves the buffer to a new owner; views taken earlier keep
//     aliasing that same buffer under its new owner.
//
// Complexity quicksheet:
//   - Submatrix/Row/Column/*Range: O(1); At/Set: O(1); Fill/Clone: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxRef         = "Ref"
	ctxRow         = "Row"
	ctxRowRange    = "RowRange"
	ctxColumn      = "Column"
	ctxColumnRange = "ColumnRange"
	ctxSubmatrix   = "Submatrix"
	ctxRowSlice    = "RowSlice"
	ctxNewView     = "NewView"
)

// View is a non-owning rows×cols window into a row-major buffer.
//
// Element (i, j) of the view lives at data[off + i*stride + j]. For a view of
// a whole matrix stride == cols; for a sub-block stride is the stride of the
// source, so stepping one row down skips the columns that were not selected.
//
// The zero View is a valid empty (0×0) view. Views are small values: pass and
// return them by value.
type View[T any] struct {
	data   []T // shared backing buffer (never reallocated by a View)
	off    int // flat offset of element (0,0)
	stride int // flat distance between consecutive rows
	r, c   int // view height and width
}

// viewErrorf wraps err with the View method tag and two coordinates.
func viewErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("View.%s(%d,%d): %w", method, a, b, err)
}

// NewView builds a raw non-owning handle over a caller-owned buffer.
// MAIN DESCRIPTION:
//   - Explicit entry point for interop: wraps data as rows×cols starting at
//     offset with the given row stride. Nothing is copied.
//
// Implementation:
//   - Stage 1: validate shape (non-negative, no overflow).
//   - Stage 2: validate the strided window fits inside data.
//
// Inputs:
//   - data: backing buffer; the caller keeps ownership.
//   - offset: flat index of element (0,0).
//   - rows, cols: window extent (zero allowed).
//   - stride: flat distance between rows; must be >= cols for non-empty views.
//
// Errors:
//   - ErrBadShape for negative values or stride < cols.
//   - ErrShapeOverflow when rows*cols overflows.
//   - ErrOutOfRange when the window would read past len(data).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The caller must not shrink or reuse data while the view is in use.
func NewView[T any](data []T, offset, rows, cols, stride int) (View[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return View[T]{}, viewErrorf(ctxNewView, rows, cols, err)
	}
	if err := validateBuffer(len(data), offset, rows, cols, stride); err != nil {
		return View[T]{}, fmt.Errorf("View.%s(off=%d,stride=%d,len=%d): %w",
			ctxNewView, offset, stride, len(data), err)
	}

	return View[T]{data: data, off: offset, stride: stride, r: rows, c: cols}, nil
}

// Rows returns the view height. O(1).
func (v View[T]) Rows() int { return v.r }

// Cols returns the view width. O(1).
func (v View[T]) Cols() int { return v.c }

// Shape returns (Rows, Cols). O(1).
func (v View[T]) Shape() Shape { return Shape{Rows: v.r, Cols: v.c} }

// Len returns Rows*Cols, the number of visible elements.
func (v View[T]) Len() int { return v.r * v.c }

// Empty reports whether the view has no visible elements.
func (v View[T]) Empty() bool { return v.r == 0 || v.c == 0 }

// Stride returns the flat distance between consecutive rows.
func (v View[T]) Stride() int { return v.stride }

// Contiguous reports whether the visible elements occupy one unbroken run of
// the buffer (single row, or stride == cols).
func (v View[T]) Contiguous() bool { return v.r <= 1 || v.stride == v.c }

// Raw returns the buffer span starting at element (0,0) and the row stride.
// The span ends right after the last visible element, so len(data) is
// (rows-1)*stride + cols for non-empty views. Writes through data are
// visible through the view.
//
// Complexity: O(1).
func (v View[T]) Raw() (data []T, stride int) {
	if v.Empty() {
		return v.data[v.off:v.off:v.off], v.stride
	}
	end := v.off + (v.r-1)*v.stride + v.c

	return v.data[v.off:end:end], v.stride
}

// offset is the single addressing formula for the package.
func (v View[T]) offset(i, j int) int { return v.off + i*v.stride + j }

// At returns element (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (v View[T]) At(i, j int) (T, error) {
	if err := validateIndex(i, j, v.r, v.c); err != nil {
		var zero T
		return zero, viewErrorf(ctxAt, i, j, err)
	}

	return v.data[v.offset(i, j)], nil
}

// AtIndex is At addressed by an Index.
func (v View[T]) AtIndex(idx Index) (T, error) { return v.At(idx.Row, idx.Col) }

// Set writes val at (i, j) through to the backing buffer or returns ErrOutOfRange.
// Complexity: O(1).
func (v View[T]) Set(i, j int, val T) error {
	if err := validateIndex(i, j, v.r, v.c); err != nil {
		return viewErrorf(ctxSet, i, j, err)
	}
	v.data[v.offset(i, j)] = val // write through

	return nil
}

// SetIndex is Set addressed by an Index.
func (v View[T]) SetIndex(idx Index, val T) error { return v.Set(idx.Row, idx.Col, val) }

// Ref returns a pointer to element (i, j) inside the backing buffer, for
// in-place updates of large element types. The pointer is valid as long as
// the buffer is.
func (v View[T]) Ref(i, j int) (*T, error) {
	if err := validateIndex(i, j, v.r, v.c); err != nil {
		return nil, viewErrorf(ctxRef, i, j, err)
	}

	return &v.data[v.offset(i, j)], nil
}

// AtUnchecked reads (i, j) without bounds checks.
// Indices outside the view are a caller bug: they may silently read another
// element of the shared buffer or panic with a runtime index error.
func (v View[T]) AtUnchecked(i, j int) T { return v.data[v.off+i*v.stride+j] }

// SetUnchecked writes (i, j) without bounds checks. Same contract as AtUnchecked.
func (v View[T]) SetUnchecked(i, j int, val T) { v.data[v.off+i*v.stride+j] = val }

// sub derives a sub-view; err is a bare sentinel for the caller to wrap.
func (v View[T]) sub(r0, nr, c0, nc int) (View[T], error) {
	if err := validateSpan(r0, nr, v.r); err != nil {
		return View[T]{}, err
	}
	if err := validateSpan(c0, nc, v.c); err != nil {
		return View[T]{}, err
	}
	off := v.off
	if nr > 0 && nc > 0 {
		off = v.offset(r0, c0) // composes with any parent offset/stride
	}

	return View[T]{data: v.data, off: off, stride: v.stride, r: nr, c: nc}, nil
}

// Submatrix returns the rowCount×colCount block starting at (rowStart, colStart).
// MAIN DESCRIPTION:
//   - Zero-copy rectangular window; element (r, c) of the result is element
//     (rowStart+r, colStart+c) of the receiver.
//
// Implementation:
//   - Stage 1: validate both spans are fully contained (no clamping).
//   - Stage 2: compose offset, keep the receiver's stride.
//
// Errors:
//   - ErrOutOfRange when the rectangle is not contained in the receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v View[T]) Submatrix(rowStart, rowCount, colStart, colCount int) (View[T], error) {
	s, err := v.sub(rowStart, rowCount, colStart, colCount)
	if err != nil {
		return View[T]{}, fmt.Errorf("View.%s(%d,%d,%d,%d): %w",
			ctxSubmatrix, rowStart, rowCount, colStart, colCount, err)
	}

	return s, nil
}

// Row returns row i as a 1×Cols view.
func (v View[T]) Row(i int) (View[T], error) {
	if i < 0 || i >= v.r {
		return View[T]{}, viewErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return v.sub(i, 1, 0, v.c)
}

// RowRange returns rows [start, start+count) spanning all columns.
func (v View[T]) RowRange(start, count int) (View[T], error) {
	s, err := v.sub(start, count, 0, v.c)
	if err != nil {
		return View[T]{}, viewErrorf(ctxRowRange, start, count, err)
	}

	return s, nil
}

// Column returns column j as a Rows×1 view. The result is strided, not
// contiguous: consecutive elements are Stride() apart in the buffer.
func (v View[T]) Column(j int) (View[T], error) {
	if j < 0 || j >= v.c {
		return View[T]{}, viewErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return v.sub(0, v.r, j, 1)
}

// ColumnRange returns columns [start, start+count) spanning all rows.
func (v View[T]) ColumnRange(start, count int) (View[T], error) {
	s, err := v.sub(0, v.r, start, count)
	if err != nil {
		return View[T]{}, viewErrorf(ctxColumnRange, start, count, err)
	}

	return s, nil
}

// RowSlice returns row i as a slice aliasing the buffer (always contiguous,
// length Cols, capacity clipped so appends cannot spill into the next row).
func (v View[T]) RowSlice(i int) ([]T, error) {
	if i < 0 || i >= v.r {
		return nil, viewErrorf(ctxRowSlice, i, 0, ErrOutOfRange)
	}

	return v.rowSlice(i), nil
}

// rowSlice is the unchecked form shared by iterators.
func (v View[T]) rowSlice(i int) []T {
	if v.c == 0 {
		return nil
	}
	start := v.off + i*v.stride

	return v.data[start : start+v.c : start+v.c]
}

// Fill assigns val to every visible element; elements outside the window are untouched.
// Complexity: O(r*c).
func (v View[T]) Fill(val T) {
	for i := 0; i < v.r; i++ {
		row := v.rowSlice(i)
		for j := range row {
			row[j] = val
		}
	}
}

// Clone materializes the visible elements into a new owning Matrix.
// The result is independent of the receiver.
// Complexity: O(r*c) time and memory.
func (v View[T]) Clone() *Matrix[T] {
	buf := make([]T, v.r*v.c)
	if v.c > 0 {
		for i := 0; i < v.r; i++ {
			copy(buf[i*v.c:(i+1)*v.c], v.rowSlice(i))
		}
	}

	return &Matrix[T]{r: v.r, c: v.c, data: buf}
}

// Do visits each element (i, j) in row-major order and calls f(i, j, val);
// it stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (v View[T]) Do(f func(i, j int, val T) bool) {
	for i := 0; i < v.r; i++ {
		row := v.rowSlice(i)
		for j, val := range row {
			if !f(i, j, val) {
				return
			}
		}
	}
}

// Apply replaces each visible element with f(i, j, val), row-major, in place.
func (v View[T]) Apply(f func(i, j int, val T) T) {
	for i := 0; i < v.r; i++ {
		row := v.rowSlice(i)
		for j, val := range row {
			row[j] = f(i, j, val)
		}
	}
}
