// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private validators and the options snapshot.
//
// Purpose:
//   - Expose unexported validators and the resolved format options to
//     matrix_test ONLY, without widening the production API.
//   - The file name ends in _test.go, so it never ships in a build.

var (
	ExportedValidateShape  = validateShape
	ExportedValidateIndex  = validateIndex
	ExportedValidateSpan   = validateSpan
	ExportedValidateBuffer = validateBuffer
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPadNegative_TestOnly   = panicPadNegative
	PanicAlignInvalid_TestOnly  = panicAlignInvalid
	PanicPolicyInvalid_TestOnly = panicPolicyInvalid
	PanicVerbInvalid_TestOnly   = panicVerbInvalid
)

// FormatOptionsSnapshot is a read-only copy of the resolved format options.
type FormatOptionsSnapshot struct {
	Delim    string
	RowDelim string
	Align    Align
	Policy   WidthPolicy
	Pad      int
	Verb     string
}

// GatherFormatOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherFormatOptionsSnapshot_TestOnly(opts ...FormatOption) FormatOptionsSnapshot {
	o := gatherFormatOptions(opts...)

	return FormatOptionsSnapshot{
		Delim:    o.delim,
		RowDelim: o.rowDelim,
		Align:    o.align,
		Policy:   o.policy,
		Pad:      o.pad,
		Verb:     o.verb,
	}
}
