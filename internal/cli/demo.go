// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matrix2d/matrix"
	"github.com/spf13/cobra"
)

func newDemoCommand(a *app) *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill a matrix 1..N, rewrite each row's first element through row views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.formatOptions(cmd)
			if err != nil {
				return err
			}

			return runDemo(cmd, a, rows, cols, opts)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 5, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 3, "number of columns")

	return cmd
}

func runDemo(cmd *cobra.Command, a *app, rows, cols int, opts []matrix.FormatOption) error {
	m, err := matrix.New[int](rows, cols)
	if err != nil {
		return err
	}
	for k := range m.Data() {
		m.Data()[k] = k + 1
	}
	a.log.Debug("matrix allocated", "shape", m.Shape().String())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "matrix:")
	if err := printGrid[int](out, m, opts); err != nil {
		return err
	}

	for i, row := range m.RowViews() {
		if row.Empty() {
			continue
		}
		if err := row.Set(0, 0, 100); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	fmt.Fprintln(out, "after:")
	if err := printGrid[int](out, m, opts); err != nil {
		return err
	}

	vals := make([]string, 0, m.Len())
	for v := range m.Values() {
		vals = append(vals, fmt.Sprint(v))
	}
	_, err = fmt.Fprintf(out, "values: %s\n", strings.Join(vals, " "))

	return err
}
