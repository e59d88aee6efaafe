// SPDX-License-Identifier: MIT

// Package interop bridges matrix.View[float64] and gonum without copying.
//
// A View is (buffer, offset, stride, rows, cols); gonum's blas64.General is
// (Data, Stride, Rows, Cols) with Data starting at element (0,0). The two
// describe the same thing, so every conversion here is O(1) and aliases the
// same memory: writes on either side are visible on the other.
package interop

import (
	"fmt"

	"github.com/katalvlaran/matrix2d/matrix"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// General returns the blas64.General describing v. For an empty view the
// result has zero Rows or Cols and an empty Data slice.
// Complexity: O(1).
func General(v matrix.View[float64]) blas64.General {
	data, stride := v.Raw()

	return blas64.General{Rows: v.Rows(), Cols: v.Cols(), Data: data, Stride: stride}
}

// FromGeneral wraps g as a View. g.Data is borrowed, not copied.
//
// Errors:
//   - matrix.ErrBadShape / matrix.ErrOutOfRange when g is not a valid
//     strided window (stride < cols, Data too short).
func FromGeneral(g blas64.General) (matrix.View[float64], error) {
	v, err := matrix.NewView(g.Data, 0, g.Rows, g.Cols, g.Stride)
	if err != nil {
		return matrix.View[float64]{}, fmt.Errorf("interop.FromGeneral: %w", err)
	}

	return v, nil
}

// FromDense wraps the storage of d as a View (zero-copy).
func FromDense(d *mat.Dense) (matrix.View[float64], error) {
	if d == nil {
		return matrix.View[float64]{}, fmt.Errorf("interop.FromDense: %w", matrix.ErrNilMatrix)
	}

	return FromGeneral(d.RawMatrix())
}

// Dense returns a *mat.Dense backed by the view's buffer (zero-copy).
//
// Errors:
//   - matrix.ErrBadShape for empty views: gonum does not allow zero-sized Dense.
func Dense(v matrix.View[float64]) (*mat.Dense, error) {
	if v.Empty() {
		return nil, fmt.Errorf("interop.Dense(%s): %w", v.Shape(), matrix.ErrBadShape)
	}
	d := &mat.Dense{}
	d.SetRawMatrix(General(v))

	return d, nil
}

// Adapter presents a View[float64] as a gonum matrix.
//
// It follows gonum conventions rather than this module's: At and Set panic on
// out-of-range indices (with matrix.ErrOutOfRange as the panic value's cause).
type Adapter struct {
	V matrix.View[float64]
}

// Compile-time assertions for gonum interface conformance.
var (
	_ mat.Matrix      = Adapter{}
	_ mat.Mutable     = Adapter{}
	_ mat.RawMatrixer = Adapter{}
)

// Dims returns (rows, cols).
func (a Adapter) Dims() (r, c int) { return a.V.Rows(), a.V.Cols() }

// At returns element (i, j); panics when out of range.
func (a Adapter) At(i, j int) float64 {
	v, err := a.V.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// Set writes element (i, j) through to the shared buffer; panics when out of range.
func (a Adapter) Set(i, j int, v float64) {
	if err := a.V.Set(i, j, v); err != nil {
		panic(err)
	}
}

// T returns the implicit transpose (no copy).
func (a Adapter) T() mat.Matrix { return mat.Transpose{Matrix: a} }

// RawMatrix exposes the strided storage so gonum can take its fast paths.
func (a Adapter) RawMatrix() blas64.General { return General(a.V) }
