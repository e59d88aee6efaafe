// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrix2d/matrix"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// ErrInvalidSpan is returned for a malformed --rows/--cols value.
	ErrInvalidSpan = errors.New("cli: invalid span, want start:count")

	// ErrNoInput is returned when print would read a grid from an interactive terminal.
	ErrNoInput = errors.New("cli: no input, pass a file or pipe a grid on stdin")
)

func newPrintCommand(a *app) *cobra.Command {
	var rowSpan, colSpan string

	cmd := &cobra.Command{
		Use:   "print [file|-]",
		Short: "Read a whitespace-separated grid and print it aligned",
		Long: `Reads one row per line, elements separated by whitespace. Blank lines
are skipped; every other line must have the same number of elements.
--rows and --cols take start:count and print only that block.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.formatOptions(cmd)
			if err != nil {
				return err
			}

			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			m, err := a.readGrid(cmd, src)
			if err != nil {
				return err
			}

			v := m.View()
			r0, nr, err := parseSpan(rowSpan, m.Rows())
			if err != nil {
				return fmt.Errorf("--rows: %w", err)
			}
			c0, nc, err := parseSpan(colSpan, m.Cols())
			if err != nil {
				return fmt.Errorf("--cols: %w", err)
			}
			if v, err = v.Submatrix(r0, nr, c0, nc); err != nil {
				return err
			}
			a.log.Debug("printing block", "shape", v.Shape().String(), "stride", v.Stride())

			return printGrid[string](cmd.OutOrStdout(), v, opts)
		},
	}
	cmd.Flags().StringVar(&rowSpan, "rows", "", "row block as start:count (default all)")
	cmd.Flags().StringVar(&colSpan, "cols", "", "column block as start:count (default all)")

	return cmd
}

// readGrid loads a grid from a file, or from stdin when src is "-".
func (a *app) readGrid(cmd *cobra.Command, src string) (*matrix.Matrix[string], error) {
	var r io.Reader = cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && src == "-" && isTerminal(f) {
		return nil, ErrNoInput
	}
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	m, err := ParseGrid(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	a.log.Debug("grid loaded", "source", src, "shape", m.Shape().String())

	return m, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// MaxLineBytes caps a single input row read by ParseGrid.
const MaxLineBytes = 1 << 20

// ParseGrid reads whitespace-separated rows into a string matrix.
//
// Errors:
//   - matrix.ErrDimensionMismatch when rows have different lengths.
//   - bufio.ErrTooLong, with the line number, for a row over MaxLineBytes.
//   - Any read error from r.
func ParseGrid(r io.Reader) (*matrix.Matrix[string], error) {
	var rows [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d longer than %d bytes: %w", line+1, MaxLineBytes, err)
		}
		return nil, err
	}

	return matrix.FromRows(rows)
}

// parseSpan parses "start:count" against extent. Either side may be omitted:
// "" and ":" select everything, "2:" runs to the end, ":3" starts at 0.
// Range checking is left to Submatrix.
func parseSpan(s string, extent int) (start, count int, err error) {
	if s == "" {
		return 0, extent, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidSpan)
	}
	if lo != "" {
		if start, err = strconv.Atoi(lo); err != nil {
			return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidSpan)
		}
	}
	if hi == "" {
		return start, extent - start, nil
	}
	if count, err = strconv.Atoi(hi); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidSpan)
	}

	return start, count, nil
}
