// SPDX-License-Identifier: MIT
package cli_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/matrix2d/internal/cli"
	"github.com/katalvlaran/matrix2d/matrix"
	"github.com/stretchr/testify/require"
)

// run executes one command tree with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

const grid = "1 2 3\n10 20 30\n"

func TestDemo(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "demo", "--rows", "2", "--cols", "3")
	require.NoError(t, err)
	require.Equal(t, "matrix:\n1 2 3\n4 5 6\nafter:\n100 2 3\n100 5 6\nvalues: 100 2 3 100 5 6\n", out)
}

func TestDemoDefaultsAndBadShape(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "demo")
	require.NoError(t, err)
	require.Contains(t, out, "100 14 15\n")
	require.Contains(t, out, "values: 100 2 3 100 5 6 100 8 9 100 11 12 100 14 15\n")

	_, _, err = run(t, "", "demo", "--rows", "-1")
	require.ErrorIs(t, err, matrix.ErrBadShape)

	out, _, err = run(t, "", "demo", "--rows", "2", "--cols", "0")
	require.NoError(t, err)
	require.Contains(t, out, "values: \n")
}

func TestPrintStdin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, " 1  2  3\n10 20 30\n"},
		{"dash", []string{"-"}, " 1  2  3\n10 20 30\n"},
		{"cols block", []string{"--cols", "1:2"}, " 2  3\n20 30\n"},
		{"rows tail", []string{"--rows", "1:"}, "10 20 30\n"},
		{"rows head", []string{"--rows", ":1"}, "1 2 3\n"},
		{"delim", []string{"--delim", ","}, " 1, 2, 3\n10,20,30\n"},
		{"left", []string{"--align", "left"}, "1  2  3 \n10 20 30\n"},
		{"mixed case", []string{"--align", "Left", "--width", "GLOBAL"}, "1  2  3 \n10 20 30\n"},
		{"right", []string{"--align", "Right"}, " 1  2  3\n10 20 30\n"},
		{"global pad", []string{"--width", "global", "--pad", "1"}, "  1   2   3\n 10  20  30\n"},
		{"row delim", []string{"--row-delim", " | "}, " 1  2  3 | 10 20 30\n"},
		{"verb", []string{"--verb", "[%s]"}, " [1]  [2]  [3]\n[10] [20] [30]\n"},
		{"empty block", []string{"--cols", "3:0"}, "\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := run(t, grid, append([]string{"print"}, tc.args...)...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestPrintErrors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "1 2\n3\n", "print")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = run(t, grid, "print", "--rows", "0:3")
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, _, err = run(t, grid, "print", "--cols", "x")
	require.ErrorIs(t, err, cli.ErrInvalidSpan)

	_, _, err = run(t, grid, "print", "--cols", "1:y")
	require.ErrorIs(t, err, cli.ErrInvalidSpan)

	_, _, err = run(t, grid, "print", "--align", "center")
	require.ErrorIs(t, err, matrix.ErrInvalidOption)

	_, _, err = run(t, grid, "print", "--pad", "-2")
	require.ErrorIs(t, err, matrix.ErrInvalidOption)

	_, _, err = run(t, grid, "print", "--verb", "%d%d")
	require.ErrorIs(t, err, matrix.ErrInvalidOption)

	_, _, err = run(t, "", "print", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrintFileWithConfig(t *testing.T) {
	t.Parallel()

	data := writeFile(t, "grid.txt", "a bb\n\nccc d\n")
	cfg := writeFile(t, "format.yaml", "align: left\ndelimiter: \"|\"\npad: 2\n")

	out, _, err := run(t, "", "print", data, "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "a    |bb  \nccc  |d   \n", out)

	// Flags override the file.
	out, _, err = run(t, "", "print", data, "--config", cfg, "--pad", "0", "--delim", " ")
	require.NoError(t, err)
	require.Equal(t, "a   bb\nccc d \n", out)

	bad := writeFile(t, "bad.yaml", "aling: left\n")
	_, _, err = run(t, "", "print", data, "--config", bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "aling")
}

// TestPrintStdinFile feeds stdin from a regular file, which is not a terminal.
func TestPrintStdinFile(t *testing.T) {
	t.Parallel()

	f, err := os.Open(writeFile(t, "in.txt", grid))
	require.NoError(t, err)
	defer f.Close()

	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(f)
	cmd.SetArgs([]string{"print", "--rows", "0:1"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "1 2 3\n", out.String())
}

func TestVerboseLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, grid, "print", "--verbose", "--rows", "1:1")
	require.NoError(t, err)
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, `msg="grid loaded"`)
	require.Contains(t, stderr, "shape=2x3")

	_, stderr, err = run(t, grid, "print")
	require.NoError(t, err)
	require.NotContains(t, stderr, "DEBUG")
}

func TestParseGrid(t *testing.T) {
	t.Parallel()

	m, err := cli.ParseGrid(strings.NewReader("  x  y\n\n z\tw \n"))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z", "w"}, m.Data())
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, m.Shape())

	m, err = cli.ParseGrid(strings.NewReader(""))
	require.NoError(t, err)
	require.True(t, m.Empty())
}

// TestParseGridLongLines: rows past bufio's 64 KiB default parse, rows past
// MaxLineBytes fail with the offending line number.
func TestParseGridLongLines(t *testing.T) {
	t.Parallel()

	wide := strings.Repeat("1 ", 50_000) // 100 KB
	m, err := cli.ParseGrid(strings.NewReader("\n" + wide + "\n" + wide + "\n"))
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 50_000}, m.Shape())

	huge := strings.Repeat("x", cli.MaxLineBytes+10)
	_, err = cli.ParseGrid(strings.NewReader("a\nb\n" + huge + "\n"))
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.ErrorContains(t, err, "line 3")

	_, _, err = run(t, huge, "print")
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestFormatConfig(t *testing.T) {
	t.Parallel()

	cfg, err := cli.ParseFormatConfig([]byte("delimiter: \"\"\nwidth: global\nverb: \"%3v\"\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Delimiter)
	require.Equal(t, "", *cfg.Delimiter)
	require.Nil(t, cfg.Pad)

	opts, err := cfg.Options()
	require.NoError(t, err)
	m, err := matrix.FromRows([][]int{{1, 22}, {333, 4}})
	require.NoError(t, err)
	require.Equal(t, "  1 22\n333  4", matrix.Format[int](m, opts...))

	empty, err := cli.ParseFormatConfig(nil)
	require.NoError(t, err)
	opts, err = empty.Options()
	require.NoError(t, err)
	require.Empty(t, opts)

	_, err = cli.FormatConfig{Width: "auto"}.Options()
	require.ErrorIs(t, err, matrix.ErrInvalidOption)

	neg := -1
	err = cli.FormatConfig{Pad: &neg}.Validate()
	require.ErrorIs(t, err, matrix.ErrInvalidOption)
	require.ErrorContains(t, err, "Pad")

	require.ErrorIs(t, cli.FormatConfig{Verb: "%"}.Validate(), matrix.ErrInvalidOption)
	require.NoError(t, cli.FormatConfig{Align: "left", Verb: "%x"}.Validate())
	require.NoError(t, cli.FormatConfig{Align: "LEFT", Width: " Global"}.Validate())
	require.ErrorIs(t, cli.FormatConfig{Align: "centre"}.Validate(), matrix.ErrInvalidOption)

	cfg, err = cli.ParseFormatConfig([]byte("align: Left\nwidth: GLOBAL\n"))
	require.NoError(t, err)
	opts, err = cfg.Options()
	require.NoError(t, err)
	require.Equal(t, "1   22 \n333 4  ", matrix.Format[int](m, opts...))

	_, err = cli.LoadFormatConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
