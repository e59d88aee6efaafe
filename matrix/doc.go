// Package matrix provides a generic two-dimensional container with contiguous,
// row-major storage and zero-copy views.
//
// The matrix package provides:
//
//   - Matrix[T]: an owning rows×cols buffer (element (i, j) at i*cols + j) with
//     bounds-checked At/Set/Ref, an explicit unchecked fast path
//     (AtUnchecked/SetUnchecked), Fill, Clone (deep copy) and Take (move).
//   - View[T]: a non-owning (offset, stride, rows, cols) window. Submatrix,
//     Row, RowRange, Column and ColumnRange are O(1) on both owners and views,
//     and compose: a sub-view of a sub-view is still a single descriptor.
//   - Iteration: Values, Cells, RowViews and ColumnViews return iter.Seq /
//     iter.Seq2 in row-major order regardless of stride; Cursor is the
//     begin/end form.
//   - Formatting: Format/Fprint and fmt.Formatter render aligned rows.
//
// Errors are sentinel values (ErrOutOfRange, ErrBadShape, ...) wrapped with
// call-site context; match them with errors.Is.
//
// Views borrow: they alias the buffer they were cut from, writes through a view
// are visible everywhere, and nothing here synchronizes concurrent writers.
//
// See the examples in this package and matrix/interop for gonum integration.
package matrix
