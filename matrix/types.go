// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, views and formatting.
// This file contains ONLY value types (Shape, Index) and the Grid contract.
package matrix

import (
	"fmt"
	"iter"
)

// Shape is a (rows, cols) extent. Both fields are non-negative for every
// Shape produced by this package.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// Len returns Rows*Cols. Shapes handed out by this package never overflow.
// Complexity: O(1).
func (s Shape) Len() int { return s.Rows * s.Cols }

// Empty reports whether the shape holds no elements (zero rows or zero cols).
func (s Shape) Empty() bool { return s.Rows == 0 || s.Cols == 0 }

// Contains reports whether idx addresses an element inside the shape.
func (s Shape) Contains(idx Index) bool {
	return idx.Row >= 0 && idx.Row < s.Rows && idx.Col >= 0 && idx.Col < s.Cols
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Index is a (row, col) position. Indices are ordered row-major: first by
// Row, then by Col, which is also the iteration order of every Grid.
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Compare returns -1, 0 or +1 depending on whether i sorts before, equal to,
// or after o in row-major order. Suitable for slices.SortFunc.
func (i Index) Compare(o Index) int {
	switch {
	case i.Row < o.Row:
		return -1
	case i.Row > o.Row:
		return 1
	case i.Col < o.Col:
		return -1
	case i.Col > o.Col:
		return 1
	}

	return 0
}

// Less reports whether i sorts strictly before o in row-major order.
func (i Index) Less(o Index) bool { return i.Compare(o) < 0 }

// String renders the index as "[row, col]".
func (i Index) String() string { return fmt.Sprintf("[%d, %d]", i.Row, i.Col) }

// Grid is the read contract shared by *Matrix and View.
//
// It is the only thing formatting, equality and external algorithms need:
// shape queries, unchecked element reads and row-major sequences. Whether the
// elements live in a contiguous owner or a strided view is invisible here.
type Grid[T any] interface {
	// Rows returns the row count. O(1).
	Rows() int
	// Cols returns the column count. O(1).
	Cols() int
	// Shape returns (Rows, Cols). O(1).
	Shape() Shape
	// AtUnchecked reads (i, j) without bounds checks; callers validate first.
	AtUnchecked(i, j int) T
	// Values yields every element in row-major order.
	Values() iter.Seq[T]
	// Cells yields (Index, element) pairs in row-major order.
	Cells() iter.Seq2[Index, T]
}

// Compile-time assertions: both layers satisfy the shared contract and fmt.
var (
	_ Grid[int]     = (*Matrix[int])(nil)
	_ Grid[int]     = View[int]{}
	_ fmt.Stringer  = (*Matrix[int])(nil)
	_ fmt.Formatter = View[int]{}
)
