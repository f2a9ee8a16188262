// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for MSD scanning, parsing, and serialization.

package libmsd

import "fmt"

// StrayTextError reports non-whitespace text encountered outside any
// parameter. It is non-fatal: the parser that returned it remains usable
// and subsequent calls continue from the position after the stray text.
type StrayTextError struct {
	// First non-whitespace character of the stray text.
	Char rune

	// Key of the parameter emitted before the stray text was found.
	// Meaningful only when AtStart is false.
	LastKey string

	// AtStart is true when no parameter had been emitted yet.
	AtStart bool
}

func (e *StrayTextError) Error() string {
	if e.AtStart {
		return fmt.Sprintf("msd: stray '%c' encountered at start of document", e.Char)
	}
	return fmt.Sprintf("msd: stray '%c' encountered after '%s' parameter", e.Char, e.LastKey)
}

// ReaderError reports a failure of the underlying byte source. It is
// fatal: every later call on the scanner or parser returns it again.
type ReaderError struct {
	Offset int
	Err    error
}

func (e *ReaderError) Error() string {
	return fmt.Sprintf("msd: offset %d: %s", e.Offset, e.Err)
}

func (e *ReaderError) Unwrap() error {
	return e.Err
}

// SerializeError reports a component that cannot be written as MSD text
// with escapes disabled because it contains a special substring.
type SerializeError struct {
	Component string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("msd: component %q cannot be serialized without escapes", e.Component)
}
