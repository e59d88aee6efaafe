// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the formatting adapter.
// This file defines:
//   - FormatOption / formatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no environment lookups.
//   - No dead switches: each option changes the rendered text and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Align selects how an element is placed inside its column width.
type Align int

const (
	// AlignRight pads on the left (numbers line up on their last digit).
	AlignRight Align = iota
	// AlignLeft pads on the right.
	AlignLeft
)

// String returns the name accepted by ParseAlign.
func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignLeft:
		return "left"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// ParseAlign maps "right"/"left" (case-insensitive) to an Align.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return AlignRight, nil
	case "left":
		return AlignLeft, nil
	}

	return DefaultAlign, fmt.Errorf("align %q: %w", s, ErrInvalidOption)
}

// WidthPolicy selects how column widths are derived.
type WidthPolicy int

const (
	// PerColumn uses the widest element of each column independently.
	PerColumn WidthPolicy = iota
	// Global uses the widest element of the whole grid for every column.
	Global
)

// String returns the name accepted by ParseWidthPolicy.
func (p WidthPolicy) String() string {
	switch p {
	case PerColumn:
		return "column"
	case Global:
		return "global"
	default:
		return fmt.Sprintf("WidthPolicy(%d)", int(p))
	}
}

// ParseWidthPolicy maps "column"/"global" (case-insensitive) to a WidthPolicy.
func ParseWidthPolicy(s string) (WidthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "column":
		return PerColumn, nil
	case "global":
		return Global, nil
	}

	return DefaultWidthPolicy, fmt.Errorf("width policy %q: %w", s, ErrInvalidOption)
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates elements within a row.
	DefaultDelimiter = " "

	// DefaultRowDelimiter separates rows. No trailing delimiter is written.
	DefaultRowDelimiter = "\n"

	// DefaultAlign places elements on the right edge of their column.
	DefaultAlign = AlignRight

	// DefaultWidthPolicy aligns each column on its own widest element.
	DefaultWidthPolicy = PerColumn

	// DefaultPad is the number of extra spaces added to every column width.
	DefaultPad = 0

	// DefaultVerb is the fmt verb applied to every element.
	DefaultVerb = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPadNegative   = "matrix: WithPad: pad must be >= 0"
	panicAlignInvalid  = "matrix: WithAlign: unknown alignment"
	panicPolicyInvalid = "matrix: WithWidthPolicy: unknown width policy"
	panicVerbInvalid   = "matrix: WithVerb: verb must contain a single '%' directive"
)

// FormatOption mutates internal format options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

// formatOptions stores the effective configuration after applying options.
type formatOptions struct {
	delim    string      // DefaultDelimiter
	rowDelim string      // DefaultRowDelimiter
	align    Align       // DefaultAlign
	policy   WidthPolicy // DefaultWidthPolicy
	pad      int         // DefaultPad, >= 0
	verb     string      // DefaultVerb
}

// defaultFormatOptions returns the zero-config policy.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		delim:    DefaultDelimiter,
		rowDelim: DefaultRowDelimiter,
		align:    DefaultAlign,
		policy:   DefaultWidthPolicy,
		pad:      DefaultPad,
		verb:     DefaultVerb,
	}
}

// gatherFormatOptions applies opts over the defaults in order; later options win.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDelimiter sets the separator written between elements of a row.
// Any string is accepted, including "".
func WithDelimiter(delim string) FormatOption {
	return func(o *formatOptions) { o.delim = delim }
}

// WithRowDelimiter sets the separator written between rows.
func WithRowDelimiter(delim string) FormatOption {
	return func(o *formatOptions) { o.rowDelim = delim }
}

// WithAlign sets element alignment inside a column.
// Panics on values other than AlignRight/AlignLeft.
func WithAlign(a Align) FormatOption {
	if a != AlignRight && a != AlignLeft {
		panic(panicAlignInvalid)
	}

	return func(o *formatOptions) { o.align = a }
}

// WithWidthPolicy selects per-column or global widths.
// Panics on values other than PerColumn/Global.
func WithWidthPolicy(p WidthPolicy) FormatOption {
	if p != PerColumn && p != Global {
		panic(panicPolicyInvalid)
	}

	return func(o *formatOptions) { o.policy = p }
}

// WithPad widens every column by n spaces (the "pad" knob).
// Panics when n < 0.
func WithPad(n int) FormatOption {
	if n < 0 {
		panic(panicPadNegative)
	}

	return func(o *formatOptions) { o.pad = n }
}

// WithVerb sets the fmt directive used to render each element, e.g. "%.2f",
// "%x" or "%q". The directive must contain exactly one unescaped '%'.
//
// Complexity: O(len(verb)) validation at construction time.
func WithVerb(verb string) FormatOption {
	if !validVerb(verb) {
		panic(panicVerbInvalid)
	}

	return func(o *formatOptions) { o.verb = verb }
}

// ValidateVerb reports whether verb is acceptable to WithVerb, returning
// ErrInvalidOption instead of panicking.
func ValidateVerb(verb string) error {
	if !validVerb(verb) {
		return fmt.Errorf("verb %q: %w", verb, ErrInvalidOption)
	}

	return nil
}

// validVerb: exactly one '%' left once "%%" escapes are removed, followed by
// optional flags, a literal width and a literal precision, then a verb letter.
// '*' and explicit argument indexes ("[n]") are rejected.
func validVerb(verb string) bool {
	v := strings.ReplaceAll(verb, "%%", "")
	if strings.Count(v, "%") != 1 {
		return false
	}
	rest := v[strings.IndexByte(v, '%')+1:]
	rest = strings.TrimLeft(rest, "+-# 0")
	rest = strings.TrimLeft(rest, "0123456789")
	if strings.HasPrefix(rest, ".") {
		rest = strings.TrimLeft(rest[1:], "0123456789")
	}
	r, _ := utf8.DecodeRuneInString(rest)

	return unicode.IsLetter(r)
}
