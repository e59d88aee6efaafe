// SPDX-License-Identifier: MIT

// Package cli implements the matrix2d command tree: a demo of owner/view
// aliasing and a printer for whitespace-separated grids.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/matrix2d/matrix"
	"github.com/spf13/cobra"
)

// Flag names shared by the format policy and the config file.
const (
	flagConfig   = "config"
	flagVerbose  = "verbose"
	flagDelim    = "delim"
	flagRowDelim = "row-delim"
	flagAlign    = "align"
	flagWidth    = "width"
	flagPad      = "pad"
	flagVerb     = "verb"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	delim    string
	rowDelim string
	align    string
	width    string
	pad      int
	verb     string

	log *slog.Logger
}

// NewRootCommand builds a fresh command tree. Each call is independent, so
// tests can run several in parallel.
func NewRootCommand() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:          "matrix2d",
		Short:        "Dense 2D matrices with zero-copy views",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, "", "YAML file with the format policy")
	pf.BoolVarP(&a.verbose, flagVerbose, "v", false, "debug logging to stderr")
	pf.StringVar(&a.delim, flagDelim, matrix.DefaultDelimiter, "separator between elements of a row")
	pf.StringVar(&a.rowDelim, flagRowDelim, matrix.DefaultRowDelimiter, "separator between rows")
	pf.StringVar(&a.align, flagAlign, matrix.DefaultAlign.String(), "element alignment: right|left")
	pf.StringVar(&a.width, flagWidth, matrix.DefaultWidthPolicy.String(), "width policy: column|global")
	pf.IntVar(&a.pad, flagPad, matrix.DefaultPad, "extra spaces added to every column")
	pf.StringVar(&a.verb, flagVerb, matrix.DefaultVerb, "fmt directive applied to each element")

	root.AddCommand(newDemoCommand(a), newPrintCommand(a))

	return root
}

// formatOptions resolves the policy: defaults, then the config file, then
// any flag set explicitly on the command line.
func (a *app) formatOptions(cmd *cobra.Command) ([]matrix.FormatOption, error) {
	var cfg FormatConfig
	if a.configPath != "" {
		var err error
		if cfg, err = LoadFormatConfig(a.configPath); err != nil {
			return nil, err
		}
		a.log.Debug("config loaded", "path", a.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed(flagDelim) {
		cfg.Delimiter = &a.delim
	}
	if flags.Changed(flagRowDelim) {
		cfg.RowDelimiter = &a.rowDelim
	}
	if flags.Changed(flagAlign) {
		cfg.Align = a.align
	}
	if flags.Changed(flagWidth) {
		cfg.Width = a.width
	}
	if flags.Changed(flagPad) {
		cfg.Pad = &a.pad
	}
	if flags.Changed(flagVerb) {
		cfg.Verb = a.verb
	}

	return cfg.Options()
}

// printGrid writes g followed by a newline.
func printGrid[T any](w io.Writer, g matrix.Grid[T], opts []matrix.FormatOption) error {
	if _, err := matrix.Fprint(w, g, opts...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}
