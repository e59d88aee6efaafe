// SPDX-License-Identifier: MIT

// Package matrix - iteration adapter.
//
// Every sequence is implemented once, on View, from (offset, stride, extents);
// Matrix delegates with stride == cols. Order is always row-major, also for
// strided views: after the last column of a row the next element is taken
// Stride() further on, not at the next buffer slot.
//
// Sequences are finite and restartable (each range re-runs from (0,0)) and
// compose with slices.Collect, slices.Sorted and any iter.Seq consumer.

package matrix

import (
	"fmt"
	"iter"
)

// Values yields the visible elements in row-major order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.r; i++ {
			for _, val := range v.rowSlice(i) {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Cells yields (Index, element) pairs in row-major order.
func (v View[T]) Cells() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := 0; i < v.r; i++ {
			for j, val := range v.rowSlice(i) {
				if !yield(Index{Row: i, Col: j}, val) {
					return
				}
			}
		}
	}
}

// RowViews yields (i, row i) for every row; each row is a 1×Cols view.
func (v View[T]) RowViews() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		for i := 0; i < v.r; i++ {
			row := View[T]{data: v.data, off: v.off + i*v.stride, stride: v.stride, r: 1, c: v.c}
			if !yield(i, row) {
				return
			}
		}
	}
}

// ColumnViews yields (j, column j) for every column; each column is a Rows×1
// strided view. A 0×C view yields C empty 0×1 columns, mirroring RowViews
// on an R×0 view.
func (v View[T]) ColumnViews() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		for j := 0; j < v.c; j++ {
			col := View[T]{data: v.data, off: v.off + j, stride: v.stride, r: v.r, c: 1}
			if !yield(j, col) {
				return
			}
		}
	}
}

// Cursor returns a begin/end style cursor positioned on element (0,0).
func (v View[T]) Cursor() *Cursor[T] { return &Cursor[T]{v: v} }

// Values yields all elements in row-major order (buffer order).
func (m *Matrix[T]) Values() iter.Seq[T] { return m.View().Values() }

// Cells yields (Index, element) pairs in row-major order.
func (m *Matrix[T]) Cells() iter.Seq2[Index, T] { return m.View().Cells() }

// RowViews yields (i, row i) for every row.
func (m *Matrix[T]) RowViews() iter.Seq2[int, View[T]] { return m.View().RowViews() }

// ColumnViews yields (j, column j) for every column.
func (m *Matrix[T]) ColumnViews() iter.Seq2[int, View[T]] { return m.View().ColumnViews() }

// Cursor returns a cursor over the whole matrix.
func (m *Matrix[T]) Cursor() *Cursor[T] { return m.View().Cursor() }

// Cursor is a forward, restartable, stride-aware position inside a View.
//
// It is the explicit begin/end form of the iteration contract:
//
//	for c := m.Cursor(); c.Valid(); c.Next() {
//		_ = c.Value()
//	}
//
// The cursor is a snapshot of the view descriptor; it never allocates.
type Cursor[T any] struct {
	v    View[T]
	i, j int // current row/col; i == v.r marks the end
}

// Valid reports whether the cursor addresses an element (i.e. is not at end).
func (c *Cursor[T]) Valid() bool { return c.v.c > 0 && c.i < c.v.r }

// Value returns the current element. Panics with ErrOutOfRange when !Valid().
func (c *Cursor[T]) Value() T { return c.v.data[c.at("Value")] }

// Ptr returns a pointer to the current element. Panics with ErrOutOfRange
// when !Valid().
func (c *Cursor[T]) Ptr() *T { return &c.v.data[c.at("Ptr")] }

// Set writes the current element through to the buffer. Panics with
// ErrOutOfRange when !Valid().
func (c *Cursor[T]) Set(val T) { c.v.data[c.at("Set")] = val }

// at returns the buffer offset of the current element. At end the raw offset
// can still land inside the parent buffer, outside the window, so it panics.
func (c *Cursor[T]) at(method string) int {
	if !c.Valid() {
		panic(fmt.Errorf("Cursor.%s(%d,%d): %w", method, c.i, c.j, ErrOutOfRange))
	}

	return c.v.offset(c.i, c.j)
}

// Index returns the current (row, col) position. At the end of a non-empty
// view it is (Rows, 0).
func (c *Cursor[T]) Index() Index { return Index{Row: c.i, Col: c.j} }

// Pos returns the row-major ordinal of the current position (Len at end).
func (c *Cursor[T]) Pos() int { return c.i*c.v.c + c.j }

// Len returns the number of elements the cursor walks over.
func (c *Cursor[T]) Len() int { return c.v.r * c.v.c }

// Next advances one element, stepping over the stride gap at row ends.
// Calling Next at end is a no-op.
func (c *Cursor[T]) Next() {
	if !c.Valid() {
		return
	}
	c.j++
	if c.j == c.v.c {
		c.j = 0
		c.i++
	}
}

// Advance moves n elements forward (n > 0) or backward (n < 0) in row-major
// order, clamping to [begin, end].
func (c *Cursor[T]) Advance(n int) {
	if c.v.c == 0 {
		return
	}
	p := c.Pos() + n
	switch {
	case p < 0:
		p = 0
	case p > c.Len():
		p = c.Len()
	}
	c.i, c.j = p/c.v.c, p%c.v.c
}

// Reset rewinds the cursor to (0,0).
func (c *Cursor[T]) Reset() { c.i, c.j = 0, 0 }
