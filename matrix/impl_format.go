// SPDX-License-Identifier: MIT

// Package matrix - formatting adapter.
//
// Purpose:
//   - Render any Grid as aligned text: one line per row, columns padded to a
//     common width, a fixed delimiter between elements.
//   - Consume only the Grid contract (Shape + Cells), never storage internals.
//
// Width is measured in terminal cells, so wide runes (CJK, emoji) still line
// up. The measuring condition is fixed (narrow East-Asian ambiguous width) so
// output does not depend on the process locale.
//
// Complexity:
//   - Time O(r*c) formatting plus O(r*c) padding; Space O(r*c) for the cell strings.

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellWidth is the display-width condition shared by all renderings.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// Format renders g with the default policy overridden by opts.
// MAIN DESCRIPTION:
//   - Text rendering used by String and fmt; works on owners and views alike.
//
// Implementation:
//   - Stage 1: render every element with the element verb (row-major).
//   - Stage 2: derive widths (per column or global) from display widths.
//   - Stage 3: join padded cells with the delimiter, rows with the row delimiter.
//
// Behavior highlights:
//   - Empty grids (0 rows or 0 cols) and nil grids format to "".
//   - No trailing row delimiter.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Format[T any](g Grid[T], opts ...FormatOption) string {
	var b strings.Builder
	_, _ = writeGrid(&b, g, gatherFormatOptions(opts...)) // strings.Builder never fails

	return b.String()
}

// Fprint writes the rendering of g to w and returns the byte count.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - Any error returned by w.
func Fprint[T any](w io.Writer, g Grid[T], opts ...FormatOption) (int, error) {
	if isNilGrid(g) {
		return 0, fmt.Errorf("matrix.Fprint: %w", ErrNilMatrix)
	}

	return writeGrid(w, g, gatherFormatOptions(opts...))
}

// writeGrid is the single rendering routine behind Format, Fprint and fmt.
func writeGrid[T any](w io.Writer, g Grid[T], o formatOptions) (int, error) {
	if isNilGrid(g) {
		return 0, nil
	}
	s := g.Shape()
	if s.Empty() {
		return 0, nil
	}

	// Stage 1: render cells row-major.
	cells := make([]string, 0, s.Len())
	widths := make([]int, s.Cols)
	maxW := 0
	for idx, val := range g.Cells() {
		txt := fmt.Sprintf(o.verb, val)
		cw := cellWidth.StringWidth(txt)
		if cw > widths[idx.Col] {
			widths[idx.Col] = cw
		}
		if cw > maxW {
			maxW = cw
		}
		cells = append(cells, txt)
	}

	// Stage 2: widths policy.
	for j := range widths {
		if o.policy == Global {
			widths[j] = maxW
		}
		widths[j] += o.pad
	}

	// Stage 3: assemble.
	var b strings.Builder
	for i := 0; i < s.Rows; i++ {
		if i > 0 {
			b.WriteString(o.rowDelim)
		}
		for j := 0; j < s.Cols; j++ {
			if j > 0 {
				b.WriteString(o.delim)
			}
			txt := cells[i*s.Cols+j]
			if o.align == AlignLeft {
				b.WriteString(cellWidth.FillRight(txt, widths[j]))
			} else {
				b.WriteString(cellWidth.FillLeft(txt, widths[j]))
			}
		}
	}

	return io.WriteString(w, b.String())
}

// elementVerb turns the fmt state handed to a Formatter into the directive
// used for every element. %s is mapped to %v so non-string elements render.
func elementVerb(f fmt.State, verb rune) string {
	if verb == 's' {
		verb = 'v'
	}

	return fmt.FormatString(f, verb)
}

// String renders the view with the default policy.
func (v View[T]) String() string { return Format[T](v) }

// Format implements fmt.Formatter: the verb, flags, width and precision
// apply to each element, e.g. fmt.Sprintf("%.2f", v).
func (v View[T]) Format(f fmt.State, verb rune) {
	_, _ = writeGrid[T](f, v, gatherFormatOptions(WithVerb(elementVerb(f, verb))))
}

// String renders the matrix with the default policy ("" for a nil matrix).
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}

	return Format[T](m)
}

// Format implements fmt.Formatter; see View.Format.
func (m *Matrix[T]) Format(f fmt.State, verb rune) {
	if m == nil {
		return
	}
	_, _ = writeGrid[T](f, m, gatherFormatOptions(WithVerb(elementVerb(f, verb))))
}
