// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by storage, view, iteration and
//     formatting tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrix2d/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew allocates an r×c matrix or aborts the test.
func mustNew[T any](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustIota returns an r×c int matrix holding 0, 1, 2, ... in row-major order,
// so element (i, j) == i*c + j and every position is recognizable in asserts.
func mustIota(tb testing.TB, r, c int) *matrix.Matrix[int] {
	tb.Helper()
	m := mustNew[int](tb, r, c)
	for k := range m.Data() {
		m.Data()[k] = k
	}

	return m
}

// mustSub cuts a sub-view or aborts the test.
func mustSub[T any](tb testing.TB, v matrix.View[T], r0, nr, c0, nc int) matrix.View[T] {
	tb.Helper()
	s, err := v.Submatrix(r0, nr, c0, nc)
	require.NoError(tb, err)

	return s
}

// collect drains a row-major sequence into a slice.
func collect[T any](g matrix.Grid[T]) []T {
	out := make([]T, 0, g.Shape().Len())
	for v := range g.Values() {
		out = append(out, v)
	}

	return out
}
