// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods wrap
// them with call-site context (method name, coordinates) via %w, so callers
// always match with errors.Is. Checked operations never panic on user input;
// panics are reserved for programmer errors (invalid options, unchecked
// accessors used out of range).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Do not compare errors with ==; wrapped values carry context.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows/cols, or an empty shape where a non-empty one is required).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeOverflow is returned when rows*cols cannot be represented as an int.
	ErrShapeOverflow = errors.New("matrix: shape overflows element count")

	// ErrOutOfRange indicates that an index or a slicing rectangle lies outside
	// the valid extent. Checked accessors and slicing MUST return this; they
	// never clamp, wrap or truncate.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that supplied data does not match the
	// requested shape (flat length != rows*cols, ragged rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidOption is returned by the Parse*/Validate* helpers that turn
	// untrusted text (flags, config files) into format options.
	ErrInvalidOption = errors.New("matrix: invalid format option")
)
