// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Parameter, the record type produced by the parser, and its MSD
// serialization.

package libmsd

import (
	"io"
	"strings"
)

// MustEscape lists the substrings that cannot appear verbatim inside a
// serialized component: "//" starts a comment, ':' separates components
// and ';' ends the parameter.
var MustEscape = []string{"//", ":", ";"}

// A Parameter is one MSD record: an ordered list of string components.
//
// Component 0 is the key and component 1, when present, the value;
// further components are extra positional values. The parser never
// produces a parameter with zero components, and never mutates a
// parameter after returning it.
type Parameter struct {
	Components []string
}

// Key returns the first component, the part immediately after the '#'
// sign, or "" for a parameter without components.
func (p *Parameter) Key() string {
	if len(p.Components) == 0 {
		return ""
	}
	return p.Components[0]
}

// Value returns the second component, separated from the key by a ':',
// or "" when the parameter ends after its key. A missing value rarely
// occurs in practice and is typically treated the same as a blank one;
// use HasValue to tell the two apart.
func (p *Parameter) Value() string {
	if len(p.Components) < 2 {
		return ""
	}
	return p.Components[1]
}

// HasValue reports whether the parameter has a second component.
func (p *Parameter) HasValue() bool {
	return len(p.Components) >= 2
}

// SerializeComponent writes a single component as MSD text.
//
// With escapes, backslashes are doubled first and each MustEscape
// substring gets a leading backslash. Without escapes the component is
// written unchanged, unless it contains a MustEscape substring, which
// cannot be represented and yields a *SerializeError.
func SerializeComponent(w io.Writer, component string, escapes bool) error {
	if escapes {
		escaped := strings.ReplaceAll(component, `\`, `\\`)
		for _, esc := range MustEscape {
			escaped = strings.ReplaceAll(escaped, esc, `\`+esc)
		}
		_, err := io.WriteString(w, escaped)
		return err
	}
	for _, esc := range MustEscape {
		if strings.Contains(component, esc) {
			return &SerializeError{Component: component}
		}
	}
	_, err := io.WriteString(w, component)
	return err
}

// Serialize writes the parameter as MSD text: a '#', the components
// separated by ':', and a closing ';'.
func (p *Parameter) Serialize(w io.Writer, escapes bool) error {
	if _, err := io.WriteString(w, "#"); err != nil {
		return err
	}
	for i, component := range p.Components {
		if i > 0 {
			if _, err := io.WriteString(w, ":"); err != nil {
				return err
			}
		}
		if err := SerializeComponent(w, component, escapes); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ";")
	return err
}

// String returns the parameter as MSD text with escapes enabled.
func (p *Parameter) String() string {
	var b strings.Builder
	_ = p.Serialize(&b, true) // cannot fail with escapes on
	return b.String()
}
